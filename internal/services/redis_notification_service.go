package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const redisFlashTimeout = 2 * time.Second

// RedisNotificationService хранит flash-уведомления в Redis, чтобы тост,
// записанный одной репликой, показала другая после редиректа.
type RedisNotificationService struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

func NewRedisNotificationService(client *redis.Client, logger *zap.Logger) *RedisNotificationService {
	return &RedisNotificationService{client: client, prefix: "flash:", logger: logger}
}

func (s *RedisNotificationService) For(sessionID string) Notifier {
	return redisNotifier{service: s, sessionID: sessionID}
}

func (s *RedisNotificationService) push(sessionID string, t Toast) {
	payload, err := json.Marshal(t)
	if err != nil {
		s.logger.Error("не удалось сериализовать уведомление", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisFlashTimeout)
	defer cancel()

	key := s.prefix + sessionID
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		pipe.LTrim(ctx, key, -maxToastsPerKey, -1)
		pipe.Expire(ctx, key, flashTTL)
		return nil
	})
	if err != nil {
		s.logger.Warn("не удалось сохранить уведомление", zap.String("session", sessionID), zap.Error(err))
	}
}

// Drain читает и удаляет список одной транзакцией: тост показывается ровно один раз.
func (s *RedisNotificationService) Drain(sessionID string) []Toast {
	ctx, cancel := context.WithTimeout(context.Background(), redisFlashTimeout)
	defer cancel()

	key := s.prefix + sessionID
	var lrange *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		s.logger.Warn("не удалось прочитать уведомления", zap.String("session", sessionID), zap.Error(err))
		return nil
	}

	var toasts []Toast
	for _, raw := range lrange.Val() {
		var t Toast
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			s.logger.Warn("битое уведомление в Redis", zap.String("session", sessionID), zap.Error(err))
			continue
		}
		toasts = append(toasts, t)
	}
	return toasts
}

type redisNotifier struct {
	service   *RedisNotificationService
	sessionID string
}

func (n redisNotifier) Success(message string) {
	n.service.push(n.sessionID, Toast{Kind: ToastSuccess, Message: message})
}

func (n redisNotifier) Error(message string) {
	n.service.logger.Debug("уведомление об ошибке", zap.String("session", n.sessionID), zap.String("message", message))
	n.service.push(n.sessionID, Toast{Kind: ToastError, Message: message})
}
