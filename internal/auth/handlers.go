package auth

import (
	"encoding/json"
	"net/http"

	"github.com/aishwaryaDel/aihub-bolt/internal/middleware"
	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, result, "Login successful")
}

// POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in models.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.svc.Register(r.Context(), &in)
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusCreated, u, "User registered successfully")
}

// GET /auth/verify — reaching the handler means the token already passed the
// authenticate gate, so just echo the identity.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	models.WriteData(w, http.StatusOK, middleware.UserFrom(r), "Token is valid")
}

// POST /auth/change-password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity := middleware.UserFrom(r)
	if identity == nil {
		models.WriteError(w, http.StatusUnauthorized, "Unauthorized access")
		return
	}
	var in models.ChangePasswordInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.ChangePassword(r.Context(), identity.ID, in.OldPassword, in.NewPassword); err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, nil, "Password changed successfully")
}
