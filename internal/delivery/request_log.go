package delivery

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestLogger проставляет X-Request-Id и пишет одну строку лога на запрос.
func RequestLogger(log *logger.ZapLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Log(logger.LogEntry{
				Level: "info",
				Message: fmt.Sprintf("%s %s %d %s req=%s outcome=%s",
					r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond), id,
					ww.Header().Get(OutcomeHeader)),
				Service: "http",
			})
		})
	}
}
