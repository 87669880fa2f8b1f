package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/agri-market/application/user"
	"github.com/muhammadheryan/agri-market/constant"
	utilsContext "github.com/muhammadheryan/agri-market/utils/context"
	"github.com/muhammadheryan/agri-market/utils/errors"
)

// AuthMiddleware returns a middleware that validates sessions using UserApp.
// The token is read from the Authorization header, falling back to the session cookie.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := tokenFromRequest(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

func tokenFromRequest(r *http.Request) (string, bool) {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		return token, token != ""
	}
	if c, err := r.Cookie(constant.SessionCookieName); err == nil && c.Value != "" {
		return c.Value, true
	}
	return "", false
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	switch path {
	case "/login", "/register", "/health", "/metrics":
		return true
	}
	return false
}
