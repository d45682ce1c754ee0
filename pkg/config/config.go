// Файл: pkg/config/config.go
package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
	EnvTest        = "test"
)

type ServerConfig struct {
	Host string
	Port string
}

// APIConfig описывает backend REST API, из которого консоль берёт все данные.
type APIConfig struct {
	Origin  string
	Port    string
	Prefix  string
	Timeout time.Duration
}

type GoodsConfig struct {
	BaseURL  string
	// Provider - "bienes" (внешний реестр) или "mock" для локальной разработки.
	Provider string
	CacheTTL time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
}

type ListConfig struct {
	PageSize       int
	SearchDebounce time.Duration
}

type LogConfig struct {
	Level string
	File  string
}

type Config struct {
	Env    string
	Server ServerConfig
	API    APIConfig
	Goods  GoodsConfig
	Redis  RedisConfig
	List   ListConfig
	Log    LogConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}
	return FromEnv()
}

// FromEnv собирает конфиг из уже загруженного окружения. Вызывается один раз при старте.
func FromEnv() *Config {
	env := strings.ToLower(getEnv("APP_ENV", EnvProduction))

	server := ServerConfig{
		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", "8080"),
	}
	if env == EnvDevelopment {
		server.Host = getEnv("DEV_HOST", "localhost")
		server.Port = getEnv("DEV_PORT", "3001")
	}

	debounce := time.Duration(getEnvInt("SEARCH_DEBOUNCE_MS", 400)) * time.Millisecond
	if env == EnvTest {
		debounce = 0
	}

	return &Config{
		Env:    env,
		Server: server,
		API: APIConfig{
			Origin:  getEnv("API_ORIGIN", "http://localhost"),
			Port:    getEnv("API_PORT", "3000"),
			Prefix:  getEnv("API_PREFIX", "/api/v1"),
			Timeout: getEnvDuration("HTTP_TIMEOUT", 15*time.Second),
		},
		Goods: GoodsConfig{
			BaseURL:  strings.TrimRight(getEnv("GOODS_API_BASE_URL", ""), "/"),
			Provider: strings.ToLower(getEnv("GOODS_PROVIDER", "bienes")),
			CacheTTL: getEnvDuration("GOODS_CACHE_TTL", 5*time.Minute),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		List: ListConfig{
			PageSize:       getEnvInt("PAGE_SIZE", 8),
			SearchDebounce: debounce,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}
}

// BaseURL склеивает origin, порт и префикс API.
// Порт добавляется только если в origin его ещё нет.
func (c APIConfig) BaseURL() string {
	u, err := url.Parse(strings.TrimRight(c.Origin, "/"))
	if err != nil || u.Host == "" {
		return strings.TrimRight(c.Origin, "/") + normalizePrefix(c.Prefix)
	}
	if u.Port() == "" && c.Port != "" {
		u.Host = net.JoinHostPort(u.Hostname(), c.Port)
	}
	return strings.TrimRight(u.String(), "/") + normalizePrefix(c.Prefix)
}

func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// PublicURL - адрес самой консоли. По нему сервис поиска бьёт в свой же прокси /api/goods.
func (c ServerConfig) PublicURL() string {
	host := c.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, c.Port)
}

func (c *Config) IsTest() bool {
	return c.Env == EnvTest
}

func normalizePrefix(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
