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

type EquipmentHandler struct {
	Equipments store.EquipmentStore
	Logger     *slog.Logger
}

type equipmentReq struct {
	Name          string     `json:"name" validate:"required"`
	Brand         *string    `json:"brand"`
	Model         *string    `json:"model"`
	SerialNumber  *string    `json:"serial_number"`
	Category      string     `json:"category" validate:"required,oneof=CAMERA LENS LIGHTING SUPPORT ACCESSORY"`
	Status        string     `json:"status" validate:"omitempty,oneof=AVAILABLE IN_USE MAINTENANCE LOW_STOCK"`
	Quantity      int        `json:"quantity" validate:"gte=0"`
	MinQuantity   int        `json:"min_quantity" validate:"gte=0"`
	Location      *string    `json:"location"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	PurchasePrice *float64   `json:"purchase_price" validate:"omitempty,gte=0"`
	Supplier      *string    `json:"supplier"`
	Notes         *string    `json:"notes"`
}

type equipmentUpdateReq struct {
	Name          *string    `json:"name"`
	Brand         *string    `json:"brand"`
	Model         *string    `json:"model"`
	SerialNumber  *string    `json:"serial_number"`
	Category      *string    `json:"category" validate:"omitempty,oneof=CAMERA LENS LIGHTING SUPPORT ACCESSORY"`
	Status        *string    `json:"status" validate:"omitempty,oneof=AVAILABLE IN_USE MAINTENANCE LOW_STOCK"`
	Quantity      *int       `json:"quantity" validate:"omitempty,gte=0"`
	MinQuantity   *int       `json:"min_quantity" validate:"omitempty,gte=0"`
	Location      *string    `json:"location"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	PurchasePrice *float64   `json:"purchase_price" validate:"omitempty,gte=0"`
	Supplier      *string    `json:"supplier"`
	Notes         *string    `json:"notes"`
}

// ---------------------- CREATE ----------------------

// POST /api/equipments
func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req equipmentReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	status := models.EquipmentAvailable
	if req.Status != "" {
		status = models.EquipmentStatus(req.Status)
	}

	eq := models.Equipment{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Brand:         req.Brand,
		Model:         req.Model,
		SerialNumber:  req.SerialNumber,
		Category:      models.EquipmentCategory(req.Category),
		Status:        status,
		Quantity:      req.Quantity,
		MinQuantity:   req.MinQuantity,
		Location:      req.Location,
		PurchaseDate:  req.PurchaseDate,
		PurchasePrice: req.PurchasePrice,
		Supplier:      req.Supplier,
		Notes:         req.Notes,
	}
	if err := h.Equipments.Create(r.Context(), &eq); err != nil {
		storeError(w, h.Logger, err, "", "", "Erro ao criar equipamento")
		return
	}

	utils.JSON(w, http.StatusCreated, eq)
}

// ---------------------- LIST ----------------------

// GET /api/equipments
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	eqs, err := h.Equipments.List(r.Context())
	if err != nil {
		h.Logger.Error("list equipments", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao listar equipamentos")
		return
	}
	utils.JSON(w, http.StatusOK, eqs)
}

// ---------------------- GET ONE ----------------------

// GET /api/equipments/{id}
func (h *EquipmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	eq, err := h.Equipments.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Equipamento não encontrado", "", "Erro ao buscar equipamento")
		return
	}

	utils.JSON(w, http.StatusOK, eq)
}

// ---------------------- UPDATE ----------------------

// PUT /api/equipments/{id}
func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req equipmentUpdateReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.JSONValidationErrors(w, errs)
		return
	}

	eq, err := h.Equipments.GetByID(r.Context(), id)
	if err != nil {
		storeError(w, h.Logger, err, "Equipamento não encontrado", "", "Erro ao atualizar equipamento")
		return
	}

	if req.Name != nil {
		eq.Name = *req.Name
	}
	if req.Brand != nil {
		eq.Brand = req.Brand
	}
	if req.Model != nil {
		eq.Model = req.Model
	}
	if req.SerialNumber != nil {
		eq.SerialNumber = req.SerialNumber
	}
	if req.Category != nil {
		eq.Category = models.EquipmentCategory(*req.Category)
	}
	if req.Status != nil {
		eq.Status = models.EquipmentStatus(*req.Status)
	}
	if req.Quantity != nil {
		eq.Quantity = *req.Quantity
	}
	if req.MinQuantity != nil {
		eq.MinQuantity = *req.MinQuantity
	}
	if req.Location != nil {
		eq.Location = req.Location
	}
	if req.PurchaseDate != nil {
		eq.PurchaseDate = req.PurchaseDate
	}
	if req.PurchasePrice != nil {
		eq.PurchasePrice = req.PurchasePrice
	}
	if req.Supplier != nil {
		eq.Supplier = req.Supplier
	}
	if req.Notes != nil {
		eq.Notes = req.Notes
	}

	if err := h.Equipments.Update(r.Context(), eq); err != nil {
		storeError(w, h.Logger, err, "Equipamento não encontrado", "", "Erro ao atualizar equipamento")
		return
	}

	utils.JSON(w, http.StatusOK, eq)
}

// ---------------------- DELETE ----------------------

// DELETE /api/equipments/{id}
func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Equipments.Delete(r.Context(), id); err != nil {
		storeError(w, h.Logger, err, "Equipamento não encontrado", "", "Erro ao excluir equipamento")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
