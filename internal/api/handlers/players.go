package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/player-registry/internal/api/httpx"
	"github.com/baharkarakas/player-registry/internal/form"
	"github.com/baharkarakas/player-registry/internal/models"
	"github.com/baharkarakas/player-registry/internal/repository"
	"github.com/baharkarakas/player-registry/internal/services"
)

// PlayerHandler is the JSON face of the player form.
type PlayerHandler struct {
	svc *services.PlayerService
}

func NewPlayerHandler(svc *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{svc: svc}
}

type validateResp struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

type formResp struct {
	Mode   form.Mode   `json:"mode"`
	ID     string      `json:"id,omitempty"`
	Values form.Values `json:"values"`
}

func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.svc.List(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
		return
	}
	if players == nil {
		players = []models.Player{}
	}
	httpx.WriteJSON(w, http.StatusOK, players)
}

// Form returns the editable state for ?id=, or the blank form.
func (h *PlayerHandler) Form(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	httpx.WriteJSON(w, http.StatusOK, formResp{
		Mode:   form.ModeOf(id),
		ID:     id,
		Values: h.svc.Form(r.Context(), id),
	})
}

func (h *PlayerHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var v form.Values
	if err := httpx.ReadJSON(w, r, &v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	errs := h.svc.Validate(v)
	httpx.WriteJSON(w, http.StatusOK, validateResp{Valid: len(errs) == 0, Errors: errs.Map()})
}

func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "", http.StatusCreated)
}

func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, chi.URLParam(r, "id"), http.StatusOK)
}

func (h *PlayerHandler) submit(w http.ResponseWriter, r *http.Request, id string, okStatus int) {
	var v form.Values
	if err := httpx.ReadJSON(w, r, &v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	nav := form.NavigatorFunc(func(path string) { w.Header().Set("Location", path) })

	act, errs, err := h.svc.Submit(r.Context(), nav, id, v)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "player not found", nil)
	case errors.Is(err, repository.ErrDuplicateID):
		httpx.WriteError(w, http.StatusConflict, "conflict", "player id already exists", nil)
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "could not save player", nil)
	case len(errs) > 0:
		httpx.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", "invalid player form", errs)
	default:
		httpx.WriteJSON(w, okStatus, act)
	}
}

func (h *PlayerHandler) History(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}
	httpx.WriteJSON(w, http.StatusOK, logs)
}
