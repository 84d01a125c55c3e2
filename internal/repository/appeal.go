package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/maslahat/backend/internal/domain"
)

type appealRepository struct {
	db *sqlx.DB
}

func newAppealRepository(db *sqlx.DB) *appealRepository {
	return &appealRepository{
		db: db,
	}
}

func (r *appealRepository) Create(ctx context.Context, appeal *domain.Appeal) error {
	const query = `
	INSERT INTO appeal (id, expert_id, full_name, phone_number, description)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, appeal.ID, appeal.ExpertID, appeal.FullName, appeal.PhoneNumber, appeal.Description)
	if err != nil {
		return fmt.Errorf("db insert appeal: %w", err)
	}

	return nil
}
