package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/mood-journal/internal/logger"
	"github.com/blaisecz/mood-journal/pkg/problem"
)

// Recovery recovers from panics and returns a 500 problem.
func Recovery(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Ctx(r.Context(), log).Error("panic recovered",
						"panic", err,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					problem.InternalError("An unexpected error occurred").Respond(w, r)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
