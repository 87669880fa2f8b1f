package constant

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	RequestIDKey contextKey = "request_id"
)

const (
	SessionCookieName = "session"
	SessionKeyPrefix  = "session:"
)
