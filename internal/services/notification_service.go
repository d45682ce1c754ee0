// Файл: internal/services/notification_service.go
package services

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast - одно всплывающее уведомление.
type Toast struct {
	Kind    ToastKind
	Message string
}

// Notifier передаётся компонентам явно, глобального состояния уведомлений нет.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type NotificationServiceInterface interface {
	// For возвращает Notifier, привязанный к сессии браузера.
	For(sessionID string) Notifier
	// Drain забирает накопленные уведомления сессии (показываются один раз).
	Drain(sessionID string) []Toast
}

const (
	flashTTL        = 10 * time.Minute
	maxToastsPerKey = 20
)

type flashBucket struct {
	toasts  []Toast
	touched time.Time
}

// NotificationService хранит flash-уведомления в памяти процесса до следующей отрисовки страницы.
type NotificationService struct {
	mu      sync.Mutex
	buckets map[string]*flashBucket
	now     func() time.Time
	logger  *zap.Logger
}

func NewNotificationService(logger *zap.Logger) *NotificationService {
	return &NotificationService{
		buckets: make(map[string]*flashBucket),
		now:     time.Now,
		logger:  logger,
	}
}

func (s *NotificationService) For(sessionID string) Notifier {
	return sessionNotifier{service: s, sessionID: sessionID}
}

func (s *NotificationService) push(sessionID string, t Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	b, ok := s.buckets[sessionID]
	if !ok {
		b = &flashBucket{}
		s.buckets[sessionID] = b
	}
	b.toasts = append(b.toasts, t)
	if len(b.toasts) > maxToastsPerKey {
		b.toasts = b.toasts[len(b.toasts)-maxToastsPerKey:]
	}
	b.touched = s.now()
}

func (s *NotificationService) Drain(sessionID string) []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[sessionID]
	if !ok {
		return nil
	}
	delete(s.buckets, sessionID)
	return b.toasts
}

func (s *NotificationService) evictExpiredLocked() {
	now := s.now()
	for id, b := range s.buckets {
		if now.Sub(b.touched) > flashTTL {
			delete(s.buckets, id)
		}
	}
}

type sessionNotifier struct {
	service   *NotificationService
	sessionID string
}

func (n sessionNotifier) Success(message string) {
	n.service.push(n.sessionID, Toast{Kind: ToastSuccess, Message: message})
}

func (n sessionNotifier) Error(message string) {
	n.service.logger.Debug("уведомление об ошибке", zap.String("session", n.sessionID), zap.String("message", message))
	n.service.push(n.sessionID, Toast{Kind: ToastError, Message: message})
}
