package usecases

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aishwaryaDel/aihub-bolt/internal/models"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// GET /use-cases
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ucs, err := h.svc.GetAll(r.Context())
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteList(w, ucs, len(ucs))
}

// GET /use-cases/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	uc, err := h.svc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, uc, "")
}

// GET /use-cases/department/{department}
func (h *Handler) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	ucs, err := h.svc.GetByDepartment(r.Context(), mux.Vars(r)["department"])
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteList(w, ucs, len(ucs))
}

// GET /use-cases/status/{status}
func (h *Handler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	ucs, err := h.svc.GetByStatus(r.Context(), mux.Vars(r)["status"])
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteList(w, ucs, len(ucs))
}

// GET /use-cases/search?q=
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ucs, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteList(w, ucs, len(ucs))
}

// GET /use-cases/count
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Count(r.Context())
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, map[string]int64{"count": n}, "")
}

// POST /use-cases
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateUseCaseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	uc, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusCreated, uc, "Use case created successfully")
}

// PUT /use-cases/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateUseCaseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	uc, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], &in)
	if err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, uc, "Use case updated successfully")
}

// DELETE /use-cases/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		models.WriteServiceError(w, err)
		return
	}
	models.WriteData(w, http.StatusOK, nil, "Use case deleted successfully")
}
