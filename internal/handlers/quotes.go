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

type QuoteHandler struct {
	Quotes store.QuoteStore
	Logger *slog.Logger
}

type quoteItemReq struct {
	Description string  `json:"description" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

type quoteReq struct {
	ClientID    string         `json:"client_id" validate:"required"`
	Title       string         `json:"title" validate:"required"`
	Description *string        `json:"description"`
	ValidUntil  time.Time      `json:"valid_until" validate:"required"`
	Status      string         `json:"status" validate:"required,oneof=DRAFT SENT APPROVED REJECTED EXPIRED"`
	Items       []quoteItemReq `json:"items" validate:"required,min=1,dive"`
}

// toModel builds the quote with item and grand totals computed server-side;
// client-supplied totals are ignored.
func (req *quoteReq) toModel(id string) models.Quote {
	items := make([]models.QuoteItem, 0, len(req.Items))
	var total float64
	for _, it := range req.Items {
		line := float64(it.Quantity) * it.UnitPrice
		total += line
		items = append(items, models.QuoteItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       line,
		})
	}
	return models.Quote{
		ID:          id,
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		ValidUntil:  req.ValidUntil,
		Status:      models.QuoteStatus(req.Status),
		Total:       total,
		Items:       items,
	}
}

// ---------------------- CREATE ----------------------

// POST /api/quotes
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req quoteReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	quote := req.toModel(uuid.New().String())
	if err := h.Quotes.Create(r.Context(), &quote); err != nil {
		storeError(w, h.Logger, err, "Cliente não encontrado", "", "Erro ao criar orçamento")
		return
	}

	utils.JSON(w, http.StatusCreated, quote)
}

// ---------------------- LIST ----------------------

// GET /api/quotes
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Quotes.List(r.Context())
	if err != nil {
		h.Logger.Error("list quotes", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao listar orçamentos")
		return
	}
	utils.JSON(w, http.StatusOK, quotes)
}

// ---------------------- GET ONE ----------------------

// GET /api/quotes/{id}
func (h *QuoteHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	quote, err := h.Quotes.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Orçamento não encontrado", "", "Erro ao buscar orçamento")
		return
	}

	utils.JSON(w, http.StatusOK, quote)
}

// ---------------------- UPDATE ----------------------

// Update replaces the quote and its whole item collection. Item ids are not
// stable across updates; see store.QuoteStore.
// PUT /api/quotes/{id}
func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req quoteReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	quote := req.toModel(id)
	if err := h.Quotes.Update(r.Context(), &quote); err != nil {
		storeError(w, h.Logger, err, "Orçamento não encontrado", "", "Erro ao atualizar orçamento")
		return
	}

	utils.JSON(w, http.StatusOK, quote)
}

// ---------------------- STATUS ----------------------

// PATCH /api/quotes/{id}/status
func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req statusReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if !models.ValidQuoteStatus(req.Status) {
		utils.JSONError(w, http.StatusBadRequest, "Status inválido")
		return
	}

	if err := h.Quotes.UpdateStatus(r.Context(), id, models.QuoteStatus(req.Status)); err != nil {
		storeError(w, h.Logger, err, "Orçamento não encontrado", "", "Erro ao atualizar status")
		return
	}

	quote, err := h.Quotes.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Orçamento não encontrado", "", "Erro ao atualizar status")
		return
	}

	utils.JSON(w, http.StatusOK, quote)
}

// ---------------------- SEND ----------------------

// Send marks the quote as sent to the client.
// TODO: dispatch the quote by e-mail once the mail integration lands.
// POST /api/quotes/{id}/send
func (h *QuoteHandler) Send(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Quotes.UpdateStatus(r.Context(), id, models.QuoteSent); err != nil {
		storeError(w, h.Logger, err, "Orçamento não encontrado", "", "Erro ao enviar orçamento")
		return
	}

	quote, err := h.Quotes.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Orçamento não encontrado", "", "Erro ao enviar orçamento")
		return
	}

	utils.JSON(w, http.StatusOK, quote)
}

// ---------------------- DELETE ----------------------

// DELETE /api/quotes/{id}
func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Quotes.Delete(r.Context(), id); err != nil {
		storeError(w, h.Logger, err, "Orçamento não encontrado", "", "Erro ao excluir orçamento")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
