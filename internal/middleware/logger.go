package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aishwaryaDel/aihub-bolt/internal/logs"
)

// statusWriter captures what the handler actually answered.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) { w.status = code; w.ResponseWriter.WriteHeader(code) }
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// LoggerMW writes one structured access-log line per request.
func LoggerMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w}
		start := time.Now()
		next.ServeHTTP(sw, r)

		logs.Logger.WithFields(logrus.Fields{
			"reqid":    GetRequestID(r),
			"method":   r.Method,
			"uri":      r.RequestURI,
			"status":   sw.status,
			"bytes":    sw.bytes,
			"duration": time.Since(start).String(),
			"ip":       r.RemoteAddr,
		}).Info("request")
	})
}
