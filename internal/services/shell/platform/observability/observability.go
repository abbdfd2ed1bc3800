// Package observability provides request logging for the shell server.
package observability

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/appshell/internal/services/shell/platform/httpx"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request once the handler returns.
func RequestLogger(logger logrus.FieldLogger) httpx.Middleware {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := httpx.NewStatusRecorder(w)
			next.ServeHTTP(rec, r)

			requestID := strings.TrimSpace(r.Header.Get(httpx.RequestIDHeader))
			if requestID == "" {
				requestID = "-"
			}
			entry := logger.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.Status,
				"bytes":      rec.Bytes,
				"latency":    time.Since(start).String(),
				"request_id": requestID,
				"htmx":       httpx.IsHTMXRequest(r),
			})
			if rec.Status >= http.StatusInternalServerError {
				entry.Error("request")
				return
			}
			entry.Info("request")
		})
	}
}
