package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
)

type EquipmentStore struct {
	DB *sqlx.DB
}

func NewEquipmentStore(db *sqlx.DB) *EquipmentStore {
	return &EquipmentStore{DB: db}
}

const equipmentColumns = `id, name, brand, model, serial_number, category, status, quantity,
	min_quantity, location, purchase_date, purchase_price, supplier, notes, created_at, updated_at`

func (s *EquipmentStore) Create(ctx context.Context, e *models.Equipment) error {
	err := s.DB.QueryRowxContext(ctx, `
		INSERT INTO equipments (id, name, brand, model, serial_number, category, status,
			quantity, min_quantity, location, purchase_date, purchase_price, supplier, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`, e.ID, e.Name, e.Brand, e.Model, e.SerialNumber, e.Category, e.Status,
		e.Quantity, e.MinQuantity, e.Location, e.PurchaseDate, e.PurchasePrice, e.Supplier, e.Notes).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert equipment: %w", mapErr(err))
	}
	return nil
}

func (s *EquipmentStore) GetByID(ctx context.Context, id string) (*models.Equipment, error) {
	var e models.Equipment
	err := s.DB.GetContext(ctx, &e, `SELECT `+equipmentColumns+` FROM equipments WHERE id=$1`, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return &e, nil
}

func (s *EquipmentStore) List(ctx context.Context) ([]models.Equipment, error) {
	items := []models.Equipment{}
	err := s.DB.SelectContext(ctx, &items, `SELECT `+equipmentColumns+` FROM equipments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list equipments: %w", err)
	}
	return items, nil
}

func (s *EquipmentStore) Update(ctx context.Context, e *models.Equipment) error {
	err := s.DB.QueryRowxContext(ctx, `
		UPDATE equipments
		SET name=$1, brand=$2, model=$3, serial_number=$4, category=$5, status=$6,
			quantity=$7, min_quantity=$8, location=$9, purchase_date=$10,
			purchase_price=$11, supplier=$12, notes=$13, updated_at=NOW()
		WHERE id=$14
		RETURNING created_at, updated_at
	`, e.Name, e.Brand, e.Model, e.SerialNumber, e.Category, e.Status,
		e.Quantity, e.MinQuantity, e.Location, e.PurchaseDate,
		e.PurchasePrice, e.Supplier, e.Notes, e.ID).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update equipment: %w", mapErr(err))
	}
	return nil
}

func (s *EquipmentStore) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM equipments WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

var _ store.EquipmentStore = (*EquipmentStore)(nil)
