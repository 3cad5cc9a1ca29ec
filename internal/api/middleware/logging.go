package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestLogging логирует каждый запрос и пробрасывает request id в контекст и заголовок ответа
func RequestLogging(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			r = r.WithContext(context.WithValue(r.Context(), RequestIDKey, requestID))
			w.Header().Set(HeaderRequestID, requestID)

			wrapped := wrap(w)
			next.ServeHTTP(wrapped, r)

			log.Info("%s %s - status=%d duration=%dms request_id=%s",
				r.Method, r.URL.Path, wrapped.statusCode, time.Since(start).Milliseconds(), requestID)
		})
	}
}

// GetRequestID возвращает request id из контекста
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
