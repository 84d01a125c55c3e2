package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/maslahat/backend/internal/domain"
)

func newVerificationRepoFixture(t *testing.T) (*userVerificationRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return newUserVerificationRepository(sqlx.NewDb(db, "mysql")), mock
}

var (
	confirmPattern = regexp.QuoteMeta("UPDATE user u JOIN user_verification v ON v.user_id = u.id " +
		"SET u.auth_status = TRUE " +
		"WHERE u.id = uuid_to_bin(?) AND u.auth_status = FALSE AND v.code = ? AND v.expires_at > ?")
	upsertPattern = regexp.QuoteMeta("INSERT INTO user_verification (user_id, code, expires_at) " +
		"VALUES (uuid_to_bin(?), ?, ?) " +
		"ON DUPLICATE KEY UPDATE code = VALUES(code), expires_at = VALUES(expires_at)")
)

func TestUserVerificationRepository_Confirm_FlipsAuthStatus(t *testing.T) {
	repo, mock := newVerificationRepoFixture(t)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectExec(confirmPattern).
		WithArgs(userID, "1234", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Confirm(context.Background(), userID, "1234", now)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The expiry bound is enforced inside the statement: the submission time is
// bound to the expires_at comparison, so a correct code presented after its
// expiry matches no row and reports no rows affected.
func TestUserVerificationRepository_Confirm_ExpiredCodeMatchesNoRow(t *testing.T) {
	repo, mock := newVerificationRepoFixture(t)

	userID := uuid.New()
	afterExpiry := time.Now().Add(2 * time.Minute)

	mock.ExpectExec(confirmPattern).
		WithArgs(userID, "1234", afterExpiry).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Confirm(context.Background(), userID, "1234", afterExpiry)
	require.ErrorIs(t, err, domain.ErrNoRowsAffected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserVerificationRepository_Confirm_WrongCodeMatchesNoRow(t *testing.T) {
	repo, mock := newVerificationRepoFixture(t)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectExec(confirmPattern).
		WithArgs(userID, "0000", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Confirm(context.Background(), userID, "0000", now)
	require.ErrorIs(t, err, domain.ErrNoRowsAffected)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Issuing twice for the same user runs the same single upsert statement
// both times: the second call carries the new code and expiry, so the row
// is overwritten rather than accumulated.
func TestUserVerificationRepository_Upsert_RotatesCodeInPlace(t *testing.T) {
	repo, mock := newVerificationRepoFixture(t)

	userID := uuid.New()
	firstExpiry := time.Now().Add(time.Minute)
	secondExpiry := firstExpiry.Add(30 * time.Second)

	mock.ExpectExec(upsertPattern).
		WithArgs(userID, "1111", firstExpiry).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertPattern).
		WithArgs(userID, "2222", secondExpiry).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.Upsert(context.Background(), &domain.UserVerification{
		UserID: userID, Code: "1111", ExpiresAt: firstExpiry,
	})
	require.NoError(t, err)

	err = repo.Upsert(context.Background(), &domain.UserVerification{
		UserID: userID, Code: "2222", ExpiresAt: secondExpiry,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
