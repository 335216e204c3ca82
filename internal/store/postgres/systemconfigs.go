package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
)

type SystemConfigStore struct {
	DB *sqlx.DB
}

func NewSystemConfigStore(db *sqlx.DB) *SystemConfigStore {
	return &SystemConfigStore{DB: db}
}

const configColumns = `id, key, value, description, created_at, updated_at`

func (s *SystemConfigStore) Create(ctx context.Context, c *models.SystemConfig) error {
	err := s.DB.QueryRowxContext(ctx, `
		INSERT INTO system_configs (id, key, value, description)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, c.ID, c.Key, c.Value, c.Description).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert config: %w", mapErr(err))
	}
	return nil
}

func (s *SystemConfigStore) GetByKey(ctx context.Context, key string) (*models.SystemConfig, error) {
	var c models.SystemConfig
	err := s.DB.GetContext(ctx, &c, `SELECT `+configColumns+` FROM system_configs WHERE key=$1`, key)
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (s *SystemConfigStore) List(ctx context.Context) ([]models.SystemConfig, error) {
	configs := []models.SystemConfig{}
	err := s.DB.SelectContext(ctx, &configs, `SELECT `+configColumns+` FROM system_configs ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}
	return configs, nil
}

func (s *SystemConfigStore) UpdateByKey(ctx context.Context, c *models.SystemConfig) error {
	err := s.DB.QueryRowxContext(ctx, `
		UPDATE system_configs
		SET value=$1, description=$2, updated_at=NOW()
		WHERE key=$3
		RETURNING id, created_at, updated_at
	`, c.Value, c.Description, c.Key).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update config: %w", mapErr(err))
	}
	return nil
}

func (s *SystemConfigStore) DeleteByKey(ctx context.Context, key string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM system_configs WHERE key=$1`, key)
	if err != nil {
		return fmt.Errorf("delete config: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

var _ store.SystemConfigStore = (*SystemConfigStore)(nil)
