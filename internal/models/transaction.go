package models

import "time"

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

func ValidTransactionType(s string) bool {
	return TransactionType(s) == TransactionIncome || TransactionType(s) == TransactionExpense
}

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionCancelled TransactionStatus = "CANCELLED"
)

func ValidTransactionStatus(s string) bool {
	switch TransactionStatus(s) {
	case TransactionPending, TransactionCompleted, TransactionCancelled:
		return true
	}
	return false
}

type Transaction struct {
	ID          string            `db:"id" json:"id"`
	Description string            `db:"description" json:"description"`
	Amount      float64           `db:"amount" json:"amount"`
	Type        TransactionType   `db:"type" json:"type"`
	Status      TransactionStatus `db:"status" json:"status"`
	Date        time.Time         `db:"date" json:"date"`
	ClientID    *string           `db:"client_id" json:"client_id,omitempty"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}
