package middlewares

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// AccessLog writes a plain-text access line per request.
func (m *Middlewares) AccessLog(log *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			duration := time.Since(start)

			log.Printf("%s | %s | %s ==> %s | %s", time.Now().Format(time.RFC850), r.RemoteAddr, r.Method, r.RequestURI, duration)
		})
	}
}
