package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/plebtools/plebtools/internal/ctxkeys"
)

// RequestID tags every request with a generated id, exposed both in the
// context (for log correlation) and as a response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		ctx := ctxkeys.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
