package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appeal is a consultation request addressed to an expert. Submitted by
// anonymous visitors, so it carries its own contact phone number.
type Appeal struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ExpertID    uuid.UUID `db:"expert_id" json:"expert_id"`
	FullName    string    `db:"full_name" json:"full_name"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	Description string    `db:"description" json:"description"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
