package usecases

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aishwaryaDel/aihub-bolt/internal/middleware"
	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

// RegisterRoutes wires the catalog endpoints. Reads need a valid token;
// mutations are admin-only. Literal paths are registered before /{id} so
// "count" and "search" never match as ids.
func RegisterRoutes(r *mux.Router, h *Handler, auth *middleware.Auth) {
	read := r.PathPrefix("/use-cases").Subrouter()
	read.Use(auth.Authenticate)
	read.HandleFunc("", h.List).Methods(http.MethodGet)
	read.HandleFunc("/count", h.Count).Methods(http.MethodGet)
	read.HandleFunc("/search", h.Search).Methods(http.MethodGet)
	read.HandleFunc("/department/{department}", h.ListByDepartment).Methods(http.MethodGet)
	read.HandleFunc("/status/{status}", h.ListByStatus).Methods(http.MethodGet)
	read.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)

	admin := r.PathPrefix("/use-cases").Subrouter()
	admin.Use(auth.Authenticate, middleware.Authorize(models.RoleAdmin))
	admin.HandleFunc("", h.Create).Methods(http.MethodPost)
	admin.HandleFunc("/{id}", h.Update).Methods(http.MethodPut)
	admin.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
}
