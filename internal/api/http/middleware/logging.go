package middleware

import (
	"net/http"
	"time"

	"github.com/mpetrov/storefront-server/internal/logger"
)

// Logging logs every request with method, path, status and duration.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (m *Logging) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.logger.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.statusCode,
			"duration", time.Since(start).String(),
			"request_id", RequestIDFromContext(r.Context()))
	})
}
