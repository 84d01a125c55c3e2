package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// User is a platform identity keyed by the national phone number.
// AuthStatus flips false->true exactly once, when phone ownership is
// proven with a verification code, and never reverts.
type User struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	PhoneNumber  string       `db:"phone_number" json:"phone_number"`
	PasswordHash string       `db:"password_hash" json:"-"`
	AuthStatus   bool         `db:"auth_status" json:"auth_status"`
	BirthDate    sql.NullTime `db:"birth_date" json:"-"`
	IsActive     bool         `db:"is_active" json:"is_active"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
