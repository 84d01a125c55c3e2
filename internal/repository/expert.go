package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/maslahat/backend/internal/domain"
)

type expertRepository struct {
	db *sqlx.DB
}

func newExpertRepository(db *sqlx.DB) *expertRepository {
	return &expertRepository{
		db: db,
	}
}

func (r *expertRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Expert, error) {
	const query = `
	SELECT id, first_name, last_name, phone_number, description, free_time, cost, category_id, created_at, updated_at, deleted_at
	FROM expert WHERE id = uuid_to_bin(?) AND deleted_at IS NULL;
	`
	var expert domain.Expert
	if err := r.db.GetContext(ctx, &expert, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from expert by id failed: %w", err)
	}
	return &expert, nil
}
