package users

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aishwaryaDel/aihub-bolt/internal/middleware"
	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

// RegisterRoutes wires user management. Everything except /users/me is
// admin-only. /me is registered before /{id} so it never matches as an id.
func RegisterRoutes(r *mux.Router, h *Handler, auth *middleware.Auth) {
	me := r.PathPrefix("/users").Subrouter()
	me.Use(auth.Authenticate)
	me.HandleFunc("/me", h.Me).Methods(http.MethodGet)

	admin := r.PathPrefix("/users").Subrouter()
	admin.Use(auth.Authenticate, middleware.Authorize(models.RoleAdmin))
	admin.HandleFunc("", h.List).Methods(http.MethodGet)
	admin.HandleFunc("/count", h.Count).Methods(http.MethodGet)
	admin.HandleFunc("/role/{role}", h.ListByRole).Methods(http.MethodGet)
	admin.HandleFunc("/email/{email}", h.GetByEmail).Methods(http.MethodGet)
	admin.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	admin.HandleFunc("/{id}", h.Update).Methods(http.MethodPut)
	admin.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
}
