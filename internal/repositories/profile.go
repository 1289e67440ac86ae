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

const profileColumns = `user_id, bio, phone, address, birth_date, created_at, updated_at`

// ProfileReadRepository provides read access to user profiles.
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile for the user, or nil if none exists yet.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserProfileDB, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1`

	var profile models.UserProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileWriteRepository provides write access to user profiles.
type ProfileWriteRepository struct {
	db *sqlx.DB
}

func NewProfileWriteRepository(db *sqlx.DB) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db}
}

// Upsert creates or updates the user's profile and returns the stored row.
func (r *ProfileWriteRepository) Upsert(ctx context.Context, userID int64, bio, phone, address *string, birthDate *time.Time) (*models.UserProfileDB, error) {
	query := `
		INSERT INTO user_profiles (user_id, bio, phone, address, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET bio = EXCLUDED.bio,
		    phone = EXCLUDED.phone,
		    address = EXCLUDED.address,
		    birth_date = EXCLUDED.birth_date,
		    updated_at = NOW()
		RETURNING ` + profileColumns

	var profile models.UserProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID, bio, phone, address, birthDate)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &profile, nil
}
