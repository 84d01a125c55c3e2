package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/maslahat/backend/internal/domain"
)

type userVerificationRepository struct {
	db *sqlx.DB
}

func newUserVerificationRepository(db *sqlx.DB) *userVerificationRepository {
	return &userVerificationRepository{
		db: db,
	}
}

// Upsert writes the active code for a user. The table is keyed by user_id,
// so a second issuance atomically overwrites the previous code and expiry
// in a single statement, which keeps concurrent refreshes from interleaving.
func (r *userVerificationRepository) Upsert(ctx context.Context, verification *domain.UserVerification) error {
	const op = "repository.userVerification.Upsert"

	const query = `
    INSERT INTO user_verification (user_id, code, expires_at)
    VALUES (uuid_to_bin(?), ?, ?)
    ON DUPLICATE KEY UPDATE code = VALUES(code), expires_at = VALUES(expires_at)
    `

	if _, err := r.db.ExecContext(ctx, query, verification.UserID, verification.Code, verification.ExpiresAt); err != nil {
		return fmt.Errorf("%s: upsert user verification failed: %w", op, err)
	}

	return nil
}

// Confirm flips auth_status for the user iff the submitted code equals the
// code stored right now and has not expired. Compare and flip happen in one
// statement, so a code rotated concurrently is never matched against a
// stale read. Returns domain.ErrNoRowsAffected on mismatch, expiry, or an
// already verified user.
func (r *userVerificationRepository) Confirm(ctx context.Context, userID uuid.UUID, code string, now time.Time) error {
	const op = "repository.userVerification.Confirm"

	const query = `
    UPDATE user u
    JOIN user_verification v ON v.user_id = u.id
    SET u.auth_status = TRUE
    WHERE u.id = uuid_to_bin(?) AND u.auth_status = FALSE AND v.code = ? AND v.expires_at > ?
    `

	res, err := r.db.ExecContext(ctx, query, userID, code, now)
	if err != nil {
		return fmt.Errorf("%s: confirm verification failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}
