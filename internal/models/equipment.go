package models

import "time"

type EquipmentCategory string

const (
	CategoryCamera    EquipmentCategory = "CAMERA"
	CategoryLens      EquipmentCategory = "LENS"
	CategoryLighting  EquipmentCategory = "LIGHTING"
	CategorySupport   EquipmentCategory = "SUPPORT"
	CategoryAccessory EquipmentCategory = "ACCESSORY"
)

func ValidEquipmentCategory(s string) bool {
	switch EquipmentCategory(s) {
	case CategoryCamera, CategoryLens, CategoryLighting, CategorySupport, CategoryAccessory:
		return true
	}
	return false
}

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentInUse       EquipmentStatus = "IN_USE"
	EquipmentMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentLowStock    EquipmentStatus = "LOW_STOCK"
)

func ValidEquipmentStatus(s string) bool {
	switch EquipmentStatus(s) {
	case EquipmentAvailable, EquipmentInUse, EquipmentMaintenance, EquipmentLowStock:
		return true
	}
	return false
}

type Equipment struct {
	ID            string            `db:"id" json:"id"`
	Name          string            `db:"name" json:"name"`
	Brand         *string           `db:"brand" json:"brand,omitempty"`
	Model         *string           `db:"model" json:"model,omitempty"`
	SerialNumber  *string           `db:"serial_number" json:"serial_number,omitempty"`
	Category      EquipmentCategory `db:"category" json:"category"`
	Status        EquipmentStatus   `db:"status" json:"status"`
	Quantity      int               `db:"quantity" json:"quantity"`
	MinQuantity   int               `db:"min_quantity" json:"min_quantity"`
	Location      *string           `db:"location" json:"location,omitempty"`
	PurchaseDate  *time.Time        `db:"purchase_date" json:"purchase_date,omitempty"`
	PurchasePrice *float64          `db:"purchase_price" json:"purchase_price,omitempty"`
	Supplier      *string           `db:"supplier" json:"supplier,omitempty"`
	Notes         *string           `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updated_at"`
}
