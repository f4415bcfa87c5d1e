package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/templui/inorbit/internal/ctxkeys"
)

const RequestIDHeader = "X-Request-ID"

// RequestID takes the request id from the incoming header or generates one,
// stores it in the context and echoes it in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := ctxkeys.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
