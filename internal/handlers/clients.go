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

type ClientHandler struct {
	Clients store.ClientStore
	Logger  *slog.Logger
}

type clientReq struct {
	Name    string  `json:"name" validate:"required,min=2"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ---------------------- CREATE ----------------------

// POST /api/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	client := models.Client{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.Clients.Create(r.Context(), &client); err != nil {
		storeError(w, h.Logger, err, "Cliente não encontrado", "Cliente já cadastrado", "Erro ao criar cliente")
		return
	}

	utils.JSON(w, http.StatusCreated, client)
}

// ---------------------- LIST ----------------------

// GET /api/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Clients.List(r.Context())
	if err != nil {
		h.Logger.Error("list clients", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao buscar clientes")
		return
	}
	utils.JSON(w, http.StatusOK, clients)
}

// ---------------------- GET ONE ----------------------

// GetByID returns the client with its sessions and their photos.
// GET /api/clients/{id}
func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	client, err := h.Clients.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Cliente não encontrado", "", "Erro ao buscar cliente")
		return
	}

	utils.JSON(w, http.StatusOK, client)
}

// ---------------------- UPDATE ----------------------

// PUT /api/clients/{id}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req clientReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	client := models.Client{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.Clients.Update(r.Context(), &client); err != nil {
		storeError(w, h.Logger, err, "Cliente não encontrado", "Cliente já cadastrado", "Erro ao atualizar cliente")
		return
	}

	utils.JSON(w, http.StatusOK, client)
}

// ---------------------- DELETE ----------------------

// DELETE /api/clients/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Clients.Delete(r.Context(), id); err != nil {
		storeError(w, h.Logger, err, "Cliente não encontrado", "", "Erro ao excluir cliente")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
