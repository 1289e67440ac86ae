package services

import (
	"context"
	"time"

	"github.com/sornchai2025/buildmate-auth/internal/logger"
	"github.com/sornchai2025/buildmate-auth/internal/models"
	"github.com/sornchai2025/buildmate-auth/internal/password"
)

// DefaultSessionTTL is the lifetime of a newly created session.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionReader defines read operations for session records.
type SessionReader interface {
	GetByToken(ctx context.Context, token string) (*models.SessionDB, error)
}

// SessionWriter defines write operations for session records.
type SessionWriter interface {
	Save(ctx context.Context, userID int64, token string, expiresAt time.Time, ipAddress, userAgent *string) (*models.SessionDB, error)
	DeleteByToken(ctx context.Context, token string) (int64, error)
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	ExtendExpiry(ctx context.Context, token string, expiresAt time.Time) error
}

// SessionUserReader resolves the owning user of a session.
type SessionUserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// SessionService owns the session token lifecycle: creation, lazy expiry
// on read, revocation, and periodic sweeping. It is the sole mutator of
// session rows.
type SessionService struct {
	reader SessionReader
	writer SessionWriter
	users  SessionUserReader
	ttl    time.Duration
}

// NewSessionService creates a new SessionService. A non-positive ttl
// falls back to DefaultSessionTTL.
func NewSessionService(reader SessionReader, writer SessionWriter, users SessionUserReader, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		reader: reader,
		writer: writer,
		users:  users,
		ttl:    ttl,
	}
}

// Create generates a fresh token and persists a session for the user.
func (svc *SessionService) Create(ctx context.Context, userID int64, ipAddress, userAgent *string) (*models.SessionDB, error) {
	token, err := password.GenerateToken()
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "error", err)
		return nil, err
	}

	session, err := svc.writer.Save(ctx, userID, token, time.Now().Add(svc.ttl), ipAddress, userAgent)
	if err != nil {
		logger.Log.Errorw("failed to save session", "user_id", userID, "error", err)
		return nil, storageErr(err)
	}
	return session, nil
}

// GetState looks up a session by token and returns the per-request view
// the gate consumes. An absent token fails with ErrSessionNotFound; an
// expired one is evicted as a side effect and fails with
// ErrSessionExpired. Callers treat both as "not authenticated".
//
// Live sessions past half their lifetime get their expiry extended, and
// the returned state reports Refreshed so cookies are rewritten.
func (svc *SessionService) GetState(ctx context.Context, token string) (*models.SessionState, error) {
	session, err := svc.reader.GetByToken(ctx, token)
	if err != nil {
		return nil, storageErr(err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	now := time.Now()
	if !session.ExpiresAt.After(now) {
		// Evict on a detached context: an aborted request must not
		// leave a half-applied delete. The racing-delete case is
		// idempotent either way.
		if _, err := svc.writer.DeleteByToken(context.WithoutCancel(ctx), session.Token); err != nil {
			logger.Log.Errorw("failed to evict expired session", "user_id", session.UserID, "error", err)
		}
		return nil, ErrSessionExpired
	}

	user, err := svc.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, storageErr(err)
	}
	if user == nil {
		// Owner vanished; the cascade should have taken the session
		// with it, so treat the token as dead.
		return nil, ErrSessionNotFound
	}

	state := &models.SessionState{
		UserID:    session.UserID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Verified:  user.IsVerified,
	}

	if session.ExpiresAt.Sub(now) < svc.ttl/2 {
		newExpiry := now.Add(svc.ttl)
		if err := svc.writer.ExtendExpiry(ctx, session.Token, newExpiry); err != nil {
			logger.Log.Errorw("failed to refresh session expiry", "user_id", session.UserID, "error", err)
		} else {
			state.ExpiresAt = newExpiry
			state.Refreshed = true
		}
	}

	return state, nil
}

// Revoke deletes at most one session and returns the number of rows
// removed. A missing token yields 0 without error.
func (svc *SessionService) Revoke(ctx context.Context, token string) (int64, error) {
	count, err := svc.writer.DeleteByToken(ctx, token)
	if err != nil {
		return count, storageErr(err)
	}
	return count, nil
}

// RevokeAllForUser deletes every session owned by the user. Used on
// password change for logout-everywhere.
func (svc *SessionService) RevokeAllForUser(ctx context.Context, userID int64) (int64, error) {
	count, err := svc.writer.DeleteAllForUser(ctx, userID)
	if err != nil {
		return count, storageErr(err)
	}
	return count, nil
}

// SweepExpired bulk-deletes sessions past their expiry. Intended for
// periodic background invocation, not per-request.
func (svc *SessionService) SweepExpired(ctx context.Context) (int64, error) {
	count, err := svc.writer.DeleteExpired(ctx, time.Now())
	if err != nil {
		return count, storageErr(err)
	}
	if count > 0 {
		logger.Log.Infow("swept expired sessions", "count", count)
	}
	return count, nil
}
