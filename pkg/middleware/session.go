package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-console/pkg/contextkeys"
)

const (
	SessionCookie = "fc_session"
	sessionMaxAge = 30 * 24 * time.Hour
)

// SessionMiddleware выдаёт браузеру анонимный идентификатор сессии.
// По нему хранятся flash-уведомления между редиректом и следующей страницей.
type SessionMiddleware struct {
	secure bool
	logger *zap.Logger
}

func NewSessionMiddleware(secure bool, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{secure: secure, logger: logger}
}

func (m *SessionMiddleware) Session(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := ""
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			if _, perr := uuid.Parse(cookie.Value); perr == nil {
				id = cookie.Value
			}
		}
		if id == "" {
			id = uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(sessionMaxAge.Seconds()),
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
			m.logger.Debug("новая сессия", zap.String("session", id))
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.SessionIDKey, id)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// SessionID достаёт идентификатор, положенный Session. Пустая строка - middleware не подключён.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.SessionIDKey).(string)
	return id
}
