package middleware

import (
	"net/http"
	"runtime/debug"
)

func Recovery(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("Panic recovered: request_id=%s, method=%s, path=%s, error=%v\n%s",
						GetRequestID(r.Context()), r.Method, r.URL.Path, err, debug.Stack())

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"code":500,"message":"внутренняя ошибка сервера"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
