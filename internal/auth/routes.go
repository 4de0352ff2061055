package auth

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aishwaryaDel/aihub-bolt/internal/middleware"
)

// RegisterRoutes wires the auth endpoints. Login and register are public;
// verify and change-password require a valid token.
func RegisterRoutes(r *mux.Router, h *Handler, auth *middleware.Auth) {
	pub := r.PathPrefix("/auth").Subrouter()
	pub.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	pub.HandleFunc("/register", h.Register).Methods(http.MethodPost)

	priv := r.PathPrefix("/auth").Subrouter()
	priv.Use(auth.Authenticate)
	priv.HandleFunc("/verify", h.Verify).Methods(http.MethodGet)
	priv.HandleFunc("/change-password", h.ChangePassword).Methods(http.MethodPost)
}
