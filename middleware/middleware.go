package middleware

import (
	"log"
	"net/http"
	"time"
)

// LoggingMiddleware es un middleware que registra las solicitudes HTTP.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inicio := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(inicio))
	})
}
