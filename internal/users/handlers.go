package users

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aishwaryaDel/aihub-bolt/internal/middleware"
	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// GET /users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.GetAll(r.Context())
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteList(w, users, len(users))
}

// GET /users/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.UserFrom(r)
	if identity == nil {
		models.WriteError(w, http.StatusUnauthorized, "Unauthorized access")
		return
	}
	u, err := h.svc.GetByID(r.Context(), identity.ID)
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, u, "")
}

// GET /users/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, u, "")
}

// GET /users/role/{role}
func (h *Handler) ListByRole(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.GetByRole(r.Context(), mux.Vars(r)["role"])
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteList(w, users, len(users))
}

// GET /users/email/{email}
func (h *Handler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, u, "")
}

// GET /users/count
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Count(r.Context())
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, map[string]int64{"count": n}, "")
}

// PUT /users/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], &in)
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, u, "User updated successfully")
}

// DELETE /users/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, nil, "User deleted successfully")
}
