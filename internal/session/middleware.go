package session

import (
	"log/slog"
	"net/http"

	"github.com/davijvasconcellos-senai/ProjetoFinal/internal/lib/logger/sl"
)

// Middleware loads the session cookie into the request context.
func Middleware(log *slog.Logger, store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := store.Load(r)
			if err != nil {
				log.Debug("discarding session cookie",
					slog.String("path", r.URL.Path),
					sl.Err(err),
				)
			}
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), sess)))
		})
	}
}
