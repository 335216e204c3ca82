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

type TransactionHandler struct {
	Transactions store.TransactionStore
	Logger       *slog.Logger
}

type transactionReq struct {
	Description string    `json:"description" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Type        string    `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Status      string    `json:"status" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	Date        time.Time `json:"date" validate:"required"`
	ClientID    *string   `json:"client_id"`
}

type transactionUpdateReq struct {
	Description *string    `json:"description"`
	Amount      *float64   `json:"amount" validate:"omitempty,gt=0"`
	Type        *string    `json:"type" validate:"omitempty,oneof=INCOME EXPENSE"`
	Status      *string    `json:"status" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	Date        *time.Time `json:"date"`
	ClientID    *string    `json:"client_id"`
}

// ---------------------- CREATE ----------------------

// POST /api/transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req transactionReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	status := models.TransactionPending
	if req.Status != "" {
		status = models.TransactionStatus(req.Status)
	}

	tx := models.Transaction{
		ID:          uuid.New().String(),
		Description: req.Description,
		Amount:      req.Amount,
		Type:        models.TransactionType(req.Type),
		Status:      status,
		Date:        req.Date,
		ClientID:    req.ClientID,
	}
	if err := h.Transactions.Create(r.Context(), &tx); err != nil {
		storeError(w, h.Logger, err, "Cliente não encontrado", "", "Erro ao criar transação")
		return
	}

	utils.JSON(w, http.StatusCreated, tx)
}

// ---------------------- LIST ----------------------

// GET /api/transactions
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Transactions.List(r.Context())
	if err != nil {
		h.Logger.Error("list transactions", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao listar transações")
		return
	}
	utils.JSON(w, http.StatusOK, txs)
}

// ---------------------- GET ONE ----------------------

// GET /api/transactions/{id}
func (h *TransactionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tx, err := h.Transactions.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Transação não encontrada", "", "Erro ao buscar transação")
		return
	}

	utils.JSON(w, http.StatusOK, tx)
}

// ---------------------- UPDATE ----------------------

// PUT /api/transactions/{id}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req transactionUpdateReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	tx, err := h.Transactions.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Transação não encontrada", "", "Erro ao atualizar transação")
		return
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Type != nil {
		tx.Type = models.TransactionType(*req.Type)
	}
	if req.Status != nil {
		tx.Status = models.TransactionStatus(*req.Status)
	}
	if req.Date != nil {
		tx.Date = *req.Date
	}
	if req.ClientID != nil {
		tx.ClientID = req.ClientID
	}

	if err := h.Transactions.Update(r.Context(), tx); err != nil {
		storeError(w, h.Logger, err, "Transação não encontrada", "", "Erro ao atualizar transação")
		return
	}

	utils.JSON(w, http.StatusOK, tx)
}

// ---------------------- DELETE ----------------------

// DELETE /api/transactions/{id}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Transactions.Delete(r.Context(), id); err != nil {
		storeError(w, h.Logger, err, "Transação não encontrada", "", "Erro ao excluir transação")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
