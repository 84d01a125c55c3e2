package domain

import (
	"time"

	"github.com/google/uuid"
)

type Expert struct {
	ID          uuid.UUID `db:"id" json:"id"`
	FirstName   string    `db:"first_name" json:"first_name"`
	LastName    string    `db:"last_name" json:"last_name"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	Description string    `db:"description" json:"description"`
	FreeTime    string    `db:"free_time" json:"free_time"`
	Cost        string    `db:"cost" json:"cost"`
	CategoryID  uuid.UUID `db:"category_id" json:"category_id"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
