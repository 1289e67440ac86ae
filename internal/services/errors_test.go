package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestStorageErr(t *testing.T) {
	assert.NoError(t, storageErr(nil))

	err := storageErr(errors.New("broken pipe"))
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrStorageTimeout)

	err = storageErr(fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, err, ErrStorageTimeout)
}

func TestUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "email constraint",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"},
			want: ErrEmailTaken,
		},
		{
			name: "username constraint",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"},
			want: ErrUsernameTaken,
		},
		{
			name: "wrapped pg error",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}),
			want: ErrEmailTaken,
		},
		{
			name: "other pg error",
			err:  &pgconn.PgError{Code: pgerrcode.NotNullViolation},
			want: nil,
		},
		{
			name: "plain error",
			err:  errors.New("broken pipe"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uniqueViolation(tt.err))
		})
	}
}
