package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/maslahat/backend/internal/domain"
)

type commentRepository struct {
	db *sqlx.DB
}

func newCommentRepository(db *sqlx.DB) *commentRepository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
	INSERT INTO comment (id, expert_id, user_id, degree, description)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), uuid_to_bin(?), ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, comment.ID, comment.ExpertID, comment.UserID, comment.Degree, comment.Description)
	if err != nil {
		return fmt.Errorf("db insert comment: %w", err)
	}

	return nil
}
