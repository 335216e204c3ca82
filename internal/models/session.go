package models

import "time"

type SessionStatus string

const (
	SessionScheduled  SessionStatus = "SCHEDULED"
	SessionInProgress SessionStatus = "IN_PROGRESS"
	SessionCompleted  SessionStatus = "COMPLETED"
	SessionCancelled  SessionStatus = "CANCELLED"
)

func ValidSessionStatus(s string) bool {
	switch SessionStatus(s) {
	case SessionScheduled, SessionInProgress, SessionCompleted, SessionCancelled:
		return true
	}
	return false
}

// Session is a photo shoot booked for a client.
type Session struct {
	ID        string        `db:"id" json:"id"`
	ClientID  string        `db:"client_id" json:"client_id"`
	Date      time.Time     `db:"date" json:"date"`
	Type      string        `db:"type" json:"type"`
	Location  *string       `db:"location" json:"location,omitempty"`
	Notes     *string       `db:"notes" json:"notes,omitempty"`
	Status    SessionStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`

	Client *Client `db:"-" json:"client,omitempty"`
	Photos []Photo `db:"-" json:"photos"`
}

type Photo struct {
	ID          string    `db:"id" json:"id"`
	SessionID   string    `db:"session_id" json:"session_id"`
	URL         string    `db:"url" json:"url"`
	Filename    string    `db:"filename" json:"filename"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
