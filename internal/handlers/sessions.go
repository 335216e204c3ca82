package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
	"github.com/itlaf/fotostudio/internal/utils"
)

type SessionHandler struct {
	Sessions store.SessionStore
	Logger   *slog.Logger
}

type sessionReq struct {
	ClientID string    `json:"client_id" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Type     string    `json:"type" validate:"required"`
	Location *string   `json:"location"`
	Notes    *string   `json:"notes"`
	Status   string    `json:"status" validate:"omitempty,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED"`
}

type sessionUpdateReq struct {
	ClientID *string    `json:"client_id"`
	Date     *time.Time `json:"date"`
	Type     *string    `json:"type"`
	Location *string    `json:"location"`
	Notes    *string    `json:"notes"`
	Status   *string    `json:"status" validate:"omitempty,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED"`
}

type statusReq struct {
	Status string `json:"status"`
}

type photoReq struct {
	URL         string  `json:"url" validate:"required,url"`
	Filename    string  `json:"filename" validate:"required"`
	Description *string `json:"description"`
}

// ---------------------- CREATE ----------------------

// POST /api/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sessionReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	status := models.SessionScheduled
	if req.Status != "" {
		status = models.SessionStatus(req.Status)
	}

	sess := models.Session{
		ID:       uuid.New().String(),
		ClientID: req.ClientID,
		Date:     req.Date,
		Type:     req.Type,
		Location: req.Location,
		Notes:    req.Notes,
		Status:   status,
	}
	if err := h.Sessions.Create(r.Context(), &sess); err != nil {
		storeError(w, h.Logger, err, "Cliente não encontrado", "", "Erro ao criar sessão")
		return
	}

	utils.JSON(w, http.StatusCreated, sess)
}

// ---------------------- LIST ----------------------

// GET /api/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Sessions.List(r.Context())
	if err != nil {
		h.Logger.Error("list sessions", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao listar sessões")
		return
	}
	utils.JSON(w, http.StatusOK, sessions)
}

// ---------------------- GET ONE ----------------------

// GET /api/sessions/{id}
func (h *SessionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess, err := h.Sessions.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Sessão não encontrada", "", "Erro ao obter sessão")
		return
	}

	utils.JSON(w, http.StatusOK, sess)
}

// ---------------------- UPDATE ----------------------

// Update applies a partial edit: absent fields keep their stored value.
// PUT /api/sessions/{id}
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req sessionUpdateReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	sess, err := h.Sessions.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Sessão não encontrada", "", "Erro ao atualizar sessão")
		return
	}

	if req.ClientID != nil {
		sess.ClientID = *req.ClientID
	}
	if req.Date != nil {
		sess.Date = *req.Date
	}
	if req.Type != nil {
		sess.Type = *req.Type
	}
	if req.Location != nil {
		sess.Location = req.Location
	}
	if req.Notes != nil {
		sess.Notes = req.Notes
	}
	if req.Status != nil {
		sess.Status = models.SessionStatus(*req.Status)
	}

	if err := h.Sessions.Update(r.Context(), sess); err != nil {
		storeError(w, h.Logger, err, "Sessão não encontrada", "", "Erro ao atualizar sessão")
		return
	}

	utils.JSON(w, http.StatusOK, sess)
}

// ---------------------- STATUS ----------------------

// PATCH /api/sessions/{id}/status
func (h *SessionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req statusReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if !models.ValidSessionStatus(req.Status) {
		utils.JSONError(w, http.StatusBadRequest, "Status inválido")
		return
	}

	if err := h.Sessions.UpdateStatus(r.Context(), id, models.SessionStatus(req.Status)); err != nil {
		storeError(w, h.Logger, err, "Sessão não encontrada", "", "Erro ao atualizar status da sessão")
		return
	}

	sess, err := h.Sessions.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Sessão não encontrada", "", "Erro ao atualizar status da sessão")
		return
	}

	utils.JSON(w, http.StatusOK, sess)
}

// ---------------------- DELETE ----------------------

// DELETE /api/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Sessions.Delete(r.Context(), id); err != nil {
		storeError(w, h.Logger, err, "Sessão não encontrada", "", "Erro ao excluir sessão")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------- PHOTOS ----------------------

// POST /api/sessions/{id}/photos
func (h *SessionHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req photoReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	photo := models.Photo{
		ID:          uuid.New().String(),
		SessionID:   id,
		URL:         req.URL,
		Filename:    req.Filename,
		Description: req.Description,
	}
	if err := h.Sessions.AddPhoto(r.Context(), &photo); err != nil {
		storeError(w, h.Logger, err, "Sessão não encontrada", "", "Erro ao adicionar foto")
		return
	}

	utils.JSON(w, http.StatusCreated, photo)
}

// DELETE /api/sessions/{id}/photos/{photoID}
func (h *SessionHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	photoID := chi.URLParam(r, "photoID")

	if err := h.Sessions.DeletePhoto(r.Context(), id, photoID); err != nil {
		storeError(w, h.Logger, err, "Foto não encontrada", "", "Erro ao remover foto")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
