package api

import (
	"log"
	"net/http"
	"time"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		// State polling would drown everything else.
		if r.URL.Path == "/api/state" && wrapped.statusCode == http.StatusOK {
			return
		}
		log.Printf("%s %s - %d (%v) from %s", r.Method, r.URL.Path, wrapped.statusCode, time.Since(start).Round(time.Millisecond), r.RemoteAddr)
	})
}

// responseWriter records the status code. It stays a Flusher so the
// audio stream can be wrapped.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
