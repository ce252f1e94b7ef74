package middleware

import (
	"net/http"
	"strings"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// Recover middleware. Page requests get the page handler (when set), API
// requests get the JSON envelope.
func Recover(logger *zap.Logger, page http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					)

					if page == nil || wantsJSON(r) {
						utils.ResponseInternalError(w, "Internal server error")
						return
					}
					page(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}
