package models

import "time"

type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "DRAFT"
	QuoteSent     QuoteStatus = "SENT"
	QuoteApproved QuoteStatus = "APPROVED"
	QuoteRejected QuoteStatus = "REJECTED"
	QuoteExpired  QuoteStatus = "EXPIRED"
)

func ValidQuoteStatus(s string) bool {
	switch QuoteStatus(s) {
	case QuoteDraft, QuoteSent, QuoteApproved, QuoteRejected, QuoteExpired:
		return true
	}
	return false
}

type Quote struct {
	ID          string      `db:"id" json:"id"`
	ClientID    string      `db:"client_id" json:"client_id"`
	Title       string      `db:"title" json:"title"`
	Description *string     `db:"description" json:"description,omitempty"`
	ValidUntil  time.Time   `db:"valid_until" json:"valid_until"`
	Status      QuoteStatus `db:"status" json:"status"`
	Total       float64     `db:"total" json:"total"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`

	Client *Client     `db:"-" json:"client,omitempty"`
	Items  []QuoteItem `db:"-" json:"items"`
}

// QuoteItem ids are not stable across quote updates: updating a quote
// replaces the whole item collection (delete-then-recreate in one
// transaction).
type QuoteItem struct {
	ID          string    `db:"id" json:"id"`
	QuoteID     string    `db:"quote_id" json:"quote_id"`
	Description string    `db:"description" json:"description"`
	Quantity    int       `db:"quantity" json:"quantity"`
	UnitPrice   float64   `db:"unit_price" json:"unit_price"`
	Total       float64   `db:"total" json:"total"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
