package health

import (
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

// RegisterRoutes wires /healthz (liveness) and /readyz (DB reachability).
// Both answer with the standard envelope so probes and humans read the same
// shape as every other endpoint.
func RegisterRoutes(r *mux.Router, db *gorm.DB) {
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		models.WriteData(w, http.StatusOK, nil, "ok")
	}).Methods(http.MethodGet)

	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if err := ping(db); err != nil {
			models.WriteError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		models.WriteData(w, http.StatusOK, nil, "ok")
	}).Methods(http.MethodGet)
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
