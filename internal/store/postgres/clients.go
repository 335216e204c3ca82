package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
)

type ClientStore struct {
	DB *sqlx.DB
}

func NewClientStore(db *sqlx.DB) *ClientStore {
	return &ClientStore{DB: db}
}

const clientColumns = `id, name, email, phone, address, created_at, updated_at`

func (s *ClientStore) Create(ctx context.Context, c *models.Client) error {
	err := s.DB.QueryRowxContext(ctx, `
		INSERT INTO clients (id, name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, c.ID, c.Name, c.Email, c.Phone, c.Address).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert client: %w", mapErr(err))
	}
	return nil
}

// GetByID loads the client together with its sessions and their photos, the
// shape the detail screen expects.
func (s *ClientStore) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	err := s.DB.GetContext(ctx, &c, `SELECT `+clientColumns+` FROM clients WHERE id=$1`, id)
	if err != nil {
		return nil, mapErr(err)
	}

	sessions := []models.Session{}
	err = s.DB.SelectContext(ctx, &sessions, `
		SELECT `+sessionColumns+` FROM sessions WHERE client_id=$1 ORDER BY date DESC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("load client sessions: %w", err)
	}
	for i := range sessions {
		photos, err := loadPhotos(ctx, s.DB, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Photos = photos
	}
	c.Sessions = sessions
	return &c, nil
}

func (s *ClientStore) List(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	err := s.DB.SelectContext(ctx, &clients, `SELECT `+clientColumns+` FROM clients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *ClientStore) Update(ctx context.Context, c *models.Client) error {
	err := s.DB.QueryRowxContext(ctx, `
		UPDATE clients
		SET name=$1, email=$2, phone=$3, address=$4, updated_at=NOW()
		WHERE id=$5
		RETURNING created_at, updated_at
	`, c.Name, c.Email, c.Phone, c.Address, c.ID).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update client: %w", mapErr(err))
	}
	return nil
}

func (s *ClientStore) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

var _ store.ClientStore = (*ClientStore)(nil)
