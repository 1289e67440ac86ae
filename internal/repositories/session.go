package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sornchai2025/buildmate-auth/internal/logger"
	"github.com/sornchai2025/buildmate-auth/internal/models"
)

const sessionColumns = `id, user_id, token, expires_at, created_at, ip_address, user_agent`

// SessionReadRepository provides read access to session records.
type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// GetByToken returns the session with the given token, or nil if absent.
// Expiry is not checked here; the session service owns that decision.
// Session tokens are bearer credentials and are never logged.
func (r *SessionReadRepository) GetByToken(ctx context.Context, token string) (*models.SessionDB, error) {
	query := `SELECT ` + sessionColumns + ` FROM user_sessions WHERE token = $1`

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, token)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// SessionWriteRepository provides write access to session records.
type SessionWriteRepository struct {
	db *sqlx.DB
}

func NewSessionWriteRepository(db *sqlx.DB) *SessionWriteRepository {
	return &SessionWriteRepository{db: db}
}

// Save inserts a new session and returns the created row.
func (r *SessionWriteRepository) Save(ctx context.Context, userID int64, token string, expiresAt time.Time, ipAddress, userAgent *string) (*models.SessionDB, error) {
	query := `
		INSERT INTO user_sessions (user_id, token, expires_at, created_at, ip_address, user_agent)
		VALUES ($1, $2, $3, NOW(), $4, $5)
		RETURNING ` + sessionColumns

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, userID, token, expiresAt, ipAddress, userAgent)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, expiresAt},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteByToken removes at most one session and returns the number of
// rows removed. A missing token is not an error.
func (r *SessionWriteRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	query := `DELETE FROM user_sessions WHERE token = $1`

	res, err := r.db.ExecContext(ctx, query, token)
	var removed int64
	if res != nil {
		removed, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"result", removed,
		"error", err,
	)

	return removed, err
}

// DeleteAllForUser removes every session owned by the user.
func (r *SessionWriteRepository) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	query := `DELETE FROM user_sessions WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, userID)
	var removed int64
	if res != nil {
		removed, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", removed,
		"error", err,
	)

	return removed, err
}

// DeleteExpired removes every session past its expiry.
func (r *SessionWriteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM user_sessions WHERE expires_at < $1`

	res, err := r.db.ExecContext(ctx, query, now)
	var removed int64
	if res != nil {
		removed, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{now},
		"result", removed,
		"error", err,
	)

	return removed, err
}

// ExtendExpiry pushes a session's expiry forward (sliding refresh).
func (r *SessionWriteRepository) ExtendExpiry(ctx context.Context, token string, expiresAt time.Time) error {
	query := `UPDATE user_sessions SET expires_at = $2 WHERE token = $1`

	_, err := r.db.ExecContext(ctx, query, token, expiresAt)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{expiresAt},
		"error", err,
	)

	return err
}
