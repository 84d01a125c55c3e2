package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an expert review left by a verified user. Degree is a 1-5 rating.
type Comment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ExpertID    uuid.UUID `db:"expert_id" json:"expert_id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Degree      int       `db:"degree" json:"degree"`
	Description string    `db:"description" json:"description"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
