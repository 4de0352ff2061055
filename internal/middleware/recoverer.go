package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/aishwaryaDel/aihub-bolt/internal/logs"
	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

// Recoverer catches handler panics, logs the stack and answers with the
// generic error envelope. The reqid in the log line is the way back to the
// full detail.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				reqid := GetRequestID(r)
				logs.Logger.Errorf("panic: %v reqid=%s uri=%s method=%s\nstack:\n%s",
					rec, reqid, r.RequestURI, r.Method, string(debug.Stack()))
				models.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
