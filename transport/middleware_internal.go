package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/utils/errors"
)

// InternalMiddleware checks for the static API key in the Authorization header.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Authorization")
			if got == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrForbiddenTarget))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
