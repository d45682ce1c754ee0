package contextkeys

type contextKey string

const (
	// SessionIDKey - идентификатор браузерной сессии для flash-уведомлений.
	SessionIDKey contextKey = "SessionID"
	RequestIDKey contextKey = "RequestID"
)
