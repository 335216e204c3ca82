package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
	"github.com/itlaf/fotostudio/internal/utils"
)

// SystemHandler serves the key/value configuration endpoints. Responses are
// wrapped in a {"data": ...} envelope, unlike the other resources.
type SystemHandler struct {
	Configs store.SystemConfigStore
	Logger  *slog.Logger
}

type configCreateReq struct {
	Key         string  `json:"key" validate:"required"`
	Value       string  `json:"value" validate:"required"`
	Description *string `json:"description"`
}

type configUpdateReq struct {
	Value       string  `json:"value" validate:"required"`
	Description *string `json:"description"`
}

type dataResp struct {
	Data any `json:"data"`
}

// ---------------------- CREATE ----------------------

// POST /api/system/configs
func (h *SystemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req configCreateReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	cfg := models.SystemConfig{
		ID:          uuid.New().String(),
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
	}
	if err := h.Configs.Create(r.Context(), &cfg); err != nil {
		storeError(w, h.Logger, err, "", "Configuração já existe", "Erro ao criar configuração")
		return
	}

	utils.JSON(w, http.StatusCreated, dataResp{Data: cfg})
}

// ---------------------- LIST ----------------------

// GET /api/system/configs
func (h *SystemHandler) List(w http.ResponseWriter, r *http.Request) {
	cfgs, err := h.Configs.List(r.Context())
	if err != nil {
		h.Logger.Error("list configs", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao listar configurações")
		return
	}
	utils.JSON(w, http.StatusOK, dataResp{Data: cfgs})
}

// ---------------------- GET ONE ----------------------

// GET /api/system/configs/{key}
func (h *SystemHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	cfg, err := h.Configs.GetByKey(r.Context(), key)
	if err != nil {
		storeError(w, h.Logger, err, "Configuração não encontrada", "", "Erro ao buscar configuração")
		return
	}

	utils.JSON(w, http.StatusOK, dataResp{Data: cfg})
}

// ---------------------- UPDATE ----------------------

// PUT /api/system/configs/{key}
func (h *SystemHandler) UpdateByKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req configUpdateReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	cfg, err := h.Configs.GetByKey(r.Context(), key)
	if err != nil {
		storeError(w, h.Logger, err, "Configuração não encontrada", "", "Erro ao atualizar configuração")
		return
	}

	cfg.Value = req.Value
	if req.Description != nil {
		cfg.Description = req.Description
	}

	if err := h.Configs.UpdateByKey(r.Context(), cfg); err != nil {
		storeError(w, h.Logger, err, "Configuração não encontrada", "", "Erro ao atualizar configuração")
		return
	}

	utils.JSON(w, http.StatusOK, dataResp{Data: cfg})
}

// ---------------------- DELETE ----------------------

// DELETE /api/system/configs/{key}
func (h *SystemHandler) DeleteByKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	if err := h.Configs.DeleteByKey(r.Context(), key); err != nil {
		storeError(w, h.Logger, err, "Configuração não encontrada", "", "Erro ao excluir configuração")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
