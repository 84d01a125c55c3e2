package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserVerification holds the single active code for a user. The row is
// keyed by user id, so a refresh overwrites the previous code instead of
// accumulating history. ExpiresAt is stamped at write time by the service.
type UserVerification struct {
	UserID    uuid.UUID `db:"user_id"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
