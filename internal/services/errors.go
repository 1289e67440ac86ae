package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error variables
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrEmailTaken          = errors.New("email already registered")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExpired      = errors.New("session expired")
	ErrStorage             = errors.New("storage error")
	ErrStorageTimeout      = errors.New("storage timeout")
	ErrMalformedToken      = errors.New("malformed or unknown token")
	ErrResetTokenExpired   = errors.New("reset token expired")
	ErrResendCooldown      = errors.New("verification email was sent recently")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// storageErr tags repository failures, keeping timeouts distinct so the
// request gate can fail closed on them.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrStorageTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

// uniqueViolation re-tags a unique-constraint failure from the store into
// a field-level error, or returns nil if err is something else. The
// constraint is the true duplicate guard; pre-insert existence checks are
// only UX.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "username") {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}
