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

// UserReadRepository provides read access to user records.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `id, email, username, full_name, password_hash, avatar_url,
	is_verified, verification_token, reset_password_token, reset_password_expires_at,
	created_at, updated_at`

// GetByEmail returns the user with the given email, or nil if absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByResetToken returns the user holding the given reset token, or nil.
// The token itself is deliberately left out of the query log.
func (r *UserReadRepository) GetByResetToken(ctx context.Context, token string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_password_token = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, token)

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
	return &user, nil
}

// UserWriteRepository provides write access to user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new unverified user and returns the created row.
// Unique violations on email or username propagate unchanged; the
// auth service re-tags them.
func (r *UserWriteRepository) Save(ctx context.Context, email, username, passwordHash, verificationToken string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (email, username, password_hash, is_verified, verification_token, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, $4, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email, username, passwordHash, verificationToken)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email, username},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// MarkVerified flips the user to verified and clears the verification
// token, preserving the invariant verified => token is null.
func (r *UserWriteRepository) MarkVerified(ctx context.Context, email string) error {
	query := `
		UPDATE users
		SET is_verified = TRUE, verification_token = NULL, updated_at = NOW()
		WHERE email = $1
	`

	_, err := r.db.ExecContext(ctx, query, email)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	return err
}

// SetResetToken stores a reset token and its expiry on the user.
func (r *UserWriteRepository) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET reset_password_token = $2, reset_password_expires_at = $3, updated_at = NOW()
		WHERE email = $1
	`

	_, err := r.db.ExecContext(ctx, query, email, token, expiresAt)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email, expiresAt},
		"error", err,
	)

	return err
}

// UpdatePassword replaces the password hash and consumes any pending
// reset token in the same statement.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, reset_password_token = NULL, reset_password_expires_at = NULL, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, passwordHash)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}
