package models

import "time"

// Role is the closed set of user roles. Registration always assigns RoleUser;
// only an ADMIN may assign anything else.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleUser         Role = "USER"
	RolePhotographer Role = "PHOTOGRAPHER"
)

// ValidRole reports whether s is a member of the role enum.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleUser, RolePhotographer:
		return true
	}
	return false
}

type User struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password_hash" json:"-"`
	Role      Role      `db:"role" json:"role"`
	Avatar    *string   `db:"avatar" json:"avatar,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
