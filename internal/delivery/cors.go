package delivery

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/cors"
)

var corsMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// CORS: любой origin, заголовок и метод. go-chi/cors не умеет "*" для методов,
// поэтому методы вне списка обслуживаются здесь, эхом запрошенного метода.
func CORS() func(http.Handler) http.Handler {
	chiCORS := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: corsMethods,
		AllowedHeaders: []string{"*"},
	})

	return func(next http.Handler) http.Handler {
		standard := chiCORS(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Origin") == "" {
				standard.ServeHTTP(w, r)
				return
			}

			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
			method := r.Method
			if preflight {
				method = strings.ToUpper(r.Header.Get("Access-Control-Request-Method"))
			}
			if slices.Contains(corsMethods, strings.ToUpper(method)) {
				standard.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			if !preflight {
				h.Add("Vary", "Origin")
				next.ServeHTTP(w, r)
				return
			}

			h.Add("Vary", "Origin")
			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			h.Set("Access-Control-Allow-Methods", method)
			if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				h.Set("Access-Control-Allow-Headers", reqHeaders)
			}
			w.WriteHeader(http.StatusOK)
		})
	}
}
