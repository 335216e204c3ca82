package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
)

type TransactionStore struct {
	DB *sqlx.DB
}

func NewTransactionStore(db *sqlx.DB) *TransactionStore {
	return &TransactionStore{DB: db}
}

const transactionColumns = `id, description, amount, type, status, date, client_id, created_at, updated_at`

func (s *TransactionStore) Create(ctx context.Context, t *models.Transaction) error {
	err := s.DB.QueryRowxContext(ctx, `
		INSERT INTO transactions (id, description, amount, type, status, date, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, t.ID, t.Description, t.Amount, t.Type, t.Status, t.Date, t.ClientID).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", mapErr(err))
	}
	return nil
}

func (s *TransactionStore) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	var t models.Transaction
	err := s.DB.GetContext(ctx, &t, `SELECT `+transactionColumns+` FROM transactions WHERE id=$1`, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

func (s *TransactionStore) List(ctx context.Context) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	err := s.DB.SelectContext(ctx, &txs, `SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (s *TransactionStore) Update(ctx context.Context, t *models.Transaction) error {
	err := s.DB.QueryRowxContext(ctx, `
		UPDATE transactions
		SET description=$1, amount=$2, type=$3, status=$4, date=$5, client_id=$6, updated_at=NOW()
		WHERE id=$7
		RETURNING created_at, updated_at
	`, t.Description, t.Amount, t.Type, t.Status, t.Date, t.ClientID, t.ID).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update transaction: %w", mapErr(err))
	}
	return nil
}

func (s *TransactionStore) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM transactions WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

var _ store.TransactionStore = (*TransactionStore)(nil)
