// Package store defines the persistence interfaces the handlers depend on.
// Postgres implementations live in store/postgres; store/memory holds the
// in-memory fakes used by tests.
package store

import (
	"context"

	"github.com/itlaf/fotostudio/internal/models"
)

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id string) error
	// EmailTaken reports whether email belongs to a user other than excludeID.
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
}

type ClientStore interface {
	Create(ctx context.Context, c *models.Client) error
	// GetByID loads the client with its sessions and their photos.
	GetByID(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id string) error
}

type SessionStore interface {
	Create(ctx context.Context, s *models.Session) error
	// GetByID loads the session with its client and photos.
	GetByID(ctx context.Context, id string) (*models.Session, error)
	// List returns sessions ordered by date descending, client embedded.
	List(ctx context.Context) ([]models.Session, error)
	Update(ctx context.Context, s *models.Session) error
	UpdateStatus(ctx context.Context, id string, status models.SessionStatus) error
	Delete(ctx context.Context, id string) error
	AddPhoto(ctx context.Context, p *models.Photo) error
	DeletePhoto(ctx context.Context, sessionID, photoID string) error
}

type QuoteStore interface {
	// Create persists the quote and its items in one transaction.
	Create(ctx context.Context, q *models.Quote) error
	// GetByID loads the quote with its client and items.
	GetByID(ctx context.Context, id string) (*models.Quote, error)
	// List returns quotes ordered by creation date descending.
	List(ctx context.Context) ([]models.Quote, error)
	// Update rewrites the quote and replaces its whole item collection
	// (delete-then-recreate) in one transaction.
	Update(ctx context.Context, q *models.Quote) error
	UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) error
	// Delete removes the quote; items cascade.
	Delete(ctx context.Context, id string) error
}

type EquipmentStore interface {
	Create(ctx context.Context, e *models.Equipment) error
	GetByID(ctx context.Context, id string) (*models.Equipment, error)
	List(ctx context.Context) ([]models.Equipment, error)
	Update(ctx context.Context, e *models.Equipment) error
	Delete(ctx context.Context, id string) error
}

type TransactionStore interface {
	Create(ctx context.Context, t *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
	Update(ctx context.Context, t *models.Transaction) error
	Delete(ctx context.Context, id string) error
}

type SystemConfigStore interface {
	Create(ctx context.Context, c *models.SystemConfig) error
	GetByKey(ctx context.Context, key string) (*models.SystemConfig, error)
	// List returns configs ordered by key ascending.
	List(ctx context.Context) ([]models.SystemConfig, error)
	UpdateByKey(ctx context.Context, c *models.SystemConfig) error
	DeleteByKey(ctx context.Context, key string) error
}
