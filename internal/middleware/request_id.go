package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type requestIdKey string

const RequestIdKey requestIdKey = "requestId"

// WithRequestId reuses an upstream X-Request-ID when a proxy already
// assigned one, otherwise mints a fresh uuid.
func WithRequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqId := r.Header.Get("X-Request-ID")
		if reqId == "" {
			reqId = uuid.New().String()
			r.Header.Set("X-Request-ID", reqId)
		}

		ctx := context.WithValue(r.Context(), RequestIdKey, reqId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
