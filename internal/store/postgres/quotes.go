package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
)

type QuoteStore struct {
	DB *sqlx.DB
}

func NewQuoteStore(db *sqlx.DB) *QuoteStore {
	return &QuoteStore{DB: db}
}

const quoteColumns = `id, client_id, title, description, valid_until, status, total, created_at, updated_at`

func insertItems(ctx context.Context, tx *sqlx.Tx, quoteID string, items []models.QuoteItem) ([]models.QuoteItem, error) {
	out := make([]models.QuoteItem, 0, len(items))
	for _, it := range items {
		it.ID = uuid.New().String()
		it.QuoteID = quoteID
		it.Total = float64(it.Quantity) * it.UnitPrice
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO quote_items (id, quote_id, description, quantity, unit_price, total)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at, updated_at
		`, it.ID, it.QuoteID, it.Description, it.Quantity, it.UnitPrice, it.Total).
			Scan(&it.CreatedAt, &it.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert quote item: %w", mapErr(err))
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *QuoteStore) Create(ctx context.Context, q *models.Quote) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO quotes (id, client_id, title, description, valid_until, status, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, q.ID, q.ClientID, q.Title, q.Description, q.ValidUntil, q.Status, q.Total).
		Scan(&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert quote: %w", mapErr(err))
	}

	items, err := insertItems(ctx, tx, q.ID, q.Items)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit quote: %w", err)
	}
	q.Items = items
	return nil
}

func (s *QuoteStore) attach(ctx context.Context, q *models.Quote) error {
	var c models.Client
	err := s.DB.GetContext(ctx, &c, `SELECT `+clientColumns+` FROM clients WHERE id=$1`, q.ClientID)
	if err != nil {
		return fmt.Errorf("load quote client: %w", mapErr(err))
	}
	q.Client = &c

	items := []models.QuoteItem{}
	err = s.DB.SelectContext(ctx, &items, `
		SELECT id, quote_id, description, quantity, unit_price, total, created_at, updated_at
		FROM quote_items WHERE quote_id=$1 ORDER BY created_at
	`, q.ID)
	if err != nil {
		return fmt.Errorf("load quote items: %w", err)
	}
	q.Items = items
	return nil
}

func (s *QuoteStore) GetByID(ctx context.Context, id string) (*models.Quote, error) {
	var q models.Quote
	err := s.DB.GetContext(ctx, &q, `SELECT `+quoteColumns+` FROM quotes WHERE id=$1`, id)
	if err != nil {
		return nil, mapErr(err)
	}
	if err := s.attach(ctx, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *QuoteStore) List(ctx context.Context) ([]models.Quote, error) {
	quotes := []models.Quote{}
	err := s.DB.SelectContext(ctx, &quotes, `SELECT `+quoteColumns+` FROM quotes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	for i := range quotes {
		if err := s.attach(ctx, &quotes[i]); err != nil {
			return nil, err
		}
	}
	return quotes, nil
}

// Update rewrites the quote row and replaces the whole item collection.
// Items are deleted and recreated rather than diffed, so item ids change on
// every update; both steps run in one transaction.
func (s *QuoteStore) Update(ctx context.Context, q *models.Quote) error {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `
		UPDATE quotes
		SET client_id=$1, title=$2, description=$3, valid_until=$4, status=$5, total=$6, updated_at=NOW()
		WHERE id=$7
		RETURNING created_at, updated_at
	`, q.ClientID, q.Title, q.Description, q.ValidUntil, q.Status, q.Total, q.ID).
		Scan(&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update quote: %w", mapErr(err))
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM quote_items WHERE quote_id=$1`, q.ID); err != nil {
		return fmt.Errorf("clear quote items: %w", err)
	}
	items, err := insertItems(ctx, tx, q.ID, q.Items)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit quote: %w", err)
	}
	q.Items = items
	return nil
}

func (s *QuoteStore) UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE quotes SET status=$1, updated_at=NOW() WHERE id=$2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *QuoteStore) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM quotes WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

var _ store.QuoteStore = (*QuoteStore)(nil)
