package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		username VARCHAR(50) NOT NULL UNIQUE,
		full_name VARCHAR(255),
		password_hash VARCHAR(255) NOT NULL,
		avatar_url TEXT,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		verification_token VARCHAR(64),
		reset_password_token VARCHAR(64),
		reset_password_expires_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS user_sessions (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token VARCHAR(64) NOT NULL UNIQUE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		ip_address VARCHAR(45),
		user_agent TEXT
	);

	CREATE TABLE IF NOT EXISTS user_profiles (
		user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		bio TEXT,
		phone VARCHAR(20),
		address TEXT,
		birth_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, teardown := setupPostgresContainer(t)
	defer teardown()

	reads := NewUserReadRepository(db)
	writes := NewUserWriteRepository(db)
	ctx := context.Background()

	t.Run("save and read back", func(t *testing.T) {
		user, err := writes.Save(ctx, "alice@example.com", "alice", "salt:hash", "verifytoken")
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.False(t, user.IsVerified)
		require.NotNil(t, user.VerificationToken)
		assert.Equal(t, "verifytoken", *user.VerificationToken)

		byEmail, err := reads.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, user.ID, byEmail.ID)

		byUsername, err := reads.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, byUsername)
		assert.Equal(t, user.ID, byUsername.ID)

		byID, err := reads.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "alice@example.com", byID.Email)
	})

	t.Run("absent user reads as nil without error", func(t *testing.T) {
		user, err := reads.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("duplicate email propagates unchanged", func(t *testing.T) {
		_, err := writes.Save(ctx, "alice@example.com", "alice2", "salt:hash", "verifytoken2")
		assert.Error(t, err)
	})

	t.Run("mark verified clears the token", func(t *testing.T) {
		err := writes.MarkVerified(ctx, "alice@example.com")
		require.NoError(t, err)

		user, err := reads.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.True(t, user.IsVerified)
		assert.Nil(t, user.VerificationToken)
	})

	t.Run("reset token round trip", func(t *testing.T) {
		expiresAt := time.Now().Add(time.Hour)
		err := writes.SetResetToken(ctx, "alice@example.com", "resettoken", expiresAt)
		require.NoError(t, err)

		user, err := reads.GetByResetToken(ctx, "resettoken")
		require.NoError(t, err)
		require.NotNil(t, user)
		require.NotNil(t, user.ResetPasswordExpiresAt)
		assert.WithinDuration(t, expiresAt, *user.ResetPasswordExpiresAt, time.Second)

		err = writes.UpdatePassword(ctx, user.ID, "salt:newhash")
		require.NoError(t, err)

		// Token is consumed by the password update.
		consumed, err := reads.GetByResetToken(ctx, "resettoken")
		require.NoError(t, err)
		assert.Nil(t, consumed)

		updated, err := reads.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "salt:newhash", updated.PasswordHash)
		assert.Nil(t, updated.ResetPasswordToken)
		assert.Nil(t, updated.ResetPasswordExpiresAt)
	})
}

func TestUserReadRepository_QueryError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewUserReadRepository(db)

	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WillReturnError(errors.New("connection reset"))

	user, err := repo.GetByEmail(context.Background(), "alice@example.com")
	assert.Nil(t, user)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
