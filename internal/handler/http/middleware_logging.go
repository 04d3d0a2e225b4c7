package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. Server errors are
// logged at error level so they stand out from routine traffic.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		level := zerolog.InfoLevel
		if status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		log.WithLevel(level).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
