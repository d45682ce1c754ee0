// Файл: internal/integrations/registry.go
package integrations

import (
	"fmt"
	"sync"

	apperrors "facilities-console/pkg/errors"
)

type RegistryInterface interface {
	Register(provider GoodsProvider) error
	Get(name string) (GoodsProvider, error)
	SetActive(name string) error
	// GetActive возвращает ErrConfigMissing, если реестр не настроен.
	GetActive() (GoodsProvider, error)
}

type Registry struct {
	providers map[string]GoodsProvider
	active    string
	mu        sync.RWMutex
}

func NewRegistry() RegistryInterface {
	return &Registry{
		providers: make(map[string]GoodsProvider),
	}
}

func (r *Registry) Register(provider GoodsProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := provider.Name()
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("провайдер с именем '%s' уже зарегистрирован", name)
	}

	r.providers[name] = provider
	return nil
}

func (r *Registry) Get(name string) (GoodsProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("провайдер с именем '%s' не найден", name)
	}
	return provider, nil
}

func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; !exists {
		return fmt.Errorf("невозможно установить активным провайдера '%s': он не зарегистрирован", name)
	}

	r.active = name
	return nil
}

func (r *Registry) GetActive() (GoodsProvider, error) {
	r.mu.RLock()
	activeName := r.active
	r.mu.RUnlock()

	if activeName == "" {
		return nil, fmt.Errorf("%w: GOODS_API_BASE_URL", apperrors.ErrConfigMissing)
	}

	return r.Get(activeName)
}
