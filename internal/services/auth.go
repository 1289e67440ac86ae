package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sornchai2025/buildmate-auth/internal/env"
	"github.com/sornchai2025/buildmate-auth/internal/facades"
	"github.com/sornchai2025/buildmate-auth/internal/logger"
	"github.com/sornchai2025/buildmate-auth/internal/models"
	"github.com/sornchai2025/buildmate-auth/internal/password"
)

// resetTokenTTL bounds how long a password reset link stays usable.
const resetTokenTTL = time.Hour

// IdentityProvider defines the external identity collaborator operations
// the gateway delegates to. Every call is a fallible remote call.
type IdentityProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*facades.Principal, error)
	SignUp(ctx context.Context, email, password, redirectURL string) (*facades.Principal, error)
	SignOut(ctx context.Context) error
	ResetPasswordForEmail(ctx context.Context, email, redirectURL string) error
	Resend(ctx context.Context, typ, email, redirectURL string) error
	VerifyOTP(ctx context.Context, email, token, typ string) error
	ExchangeCodeForSession(ctx context.Context, code string) (*facades.Principal, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByResetToken(ctx context.Context, token string) (*models.UserDB, error)
}

// UserWriter defines write operations for users. The auth service is the
// sole mutator of verification and reset tokens.
type UserWriter interface {
	Save(ctx context.Context, email, username, passwordHash, verificationToken string) (*models.UserDB, error)
	MarkVerified(ctx context.Context, email string) error
	SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// SessionCreator defines the session-manager operations the gateway needs.
type SessionCreator interface {
	Create(ctx context.Context, userID int64, ipAddress, userAgent *string) (*models.SessionDB, error)
	Revoke(ctx context.Context, token string) (int64, error)
	RevokeAllForUser(ctx context.Context, userID int64) (int64, error)
}

// CooldownChecker gates verification-email resends.
type CooldownChecker interface {
	Allow(ctx context.Context, email string) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthService orchestrates the identity collaborator and the credential
// store: sign-in, sign-up, sign-out, password reset, and email
// verification. It owns the local business rules; credential mechanics
// stay with the provider.
type AuthService struct {
	identity    IdentityProvider
	userReader  UserReader
	userWriter  UserWriter
	sessions    SessionCreator
	cooldown    CooldownChecker
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	identity IdentityProvider,
	userReader UserReader,
	userWriter UserWriter,
	sessions SessionCreator,
	cooldown CooldownChecker,
	kafkaWriter KafkaWriter,
) *AuthService {
	return &AuthService{
		identity:    identity,
		userReader:  userReader,
		userWriter:  userWriter,
		sessions:    sessions,
		cooldown:    cooldown,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an auth event to Kafka. Best effort: consumers
// are out-of-band (mailer, audit), so failures are logged, never
// surfaced to the request.
func (svc *AuthService) publishEvent(ctx context.Context, eventType, email, redirectURL string) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	event := models.AuthEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		Email:       email,
		RedirectURL: redirectURL,
		Timestamp:   time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal auth event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish auth event", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("auth event published", "event_id", event.EventID, "type", eventType)
	}
}

// SignIn authenticates the user against the identity provider and opens
// a local session. An unverified email fails with ErrEmailNotVerified
// even though the credential check itself succeeded: unverified accounts
// must not obtain an authenticated session.
func (svc *AuthService) SignIn(ctx context.Context, email, pass string, ipAddress, userAgent *string) (*models.SessionDB, error) {
	principal, err := svc.identity.SignInWithPassword(ctx, email, pass)
	if err != nil {
		if errors.Is(err, facades.ErrBadCredentials) {
			return nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("identity sign-in failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if principal.EmailConfirmedAt == nil {
		return nil, ErrEmailNotVerified
	}

	user, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to load user after sign-in", "error", err)
		return nil, storageErr(err)
	}
	if user == nil {
		// Provider knows the account but the local store does not.
		logger.Log.Errorw("no local user for authenticated principal", "principal_id", principal.ID)
		return nil, ErrInvalidCredentials
	}

	session, err := svc.sessions.Create(ctx, user.ID, ipAddress, userAgent)
	if err != nil {
		return nil, err
	}

	svc.publishEvent(ctx, models.EventUserSignedIn, email, "")
	return session, nil
}

// SignUp registers a new, unverified account. The password confirmation
// check is a field-level validation error. The pre-insert existence
// check keeps duplicate registrations from surfacing as generic provider
// errors; the store's uniqueness constraint is the real guard and its
// violations are re-tagged here.
func (svc *AuthService) SignUp(ctx context.Context, email, username, pass, confirmPass string) (*models.UserDB, error) {
	if pass != confirmPass {
		return nil, ErrPasswordMismatch
	}

	if exists := svc.CheckEmailExists(ctx, email); exists {
		return nil, ErrEmailTaken
	}

	redirectURL := env.AuthRedirectURL()
	if _, err := svc.identity.SignUp(ctx, email, pass, redirectURL); err != nil {
		logger.Log.Errorw("identity sign-up failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	hash, err := password.Hash(pass)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}
	verificationToken, err := password.GenerateToken()
	if err != nil {
		logger.Log.Errorw("failed to generate verification token", "error", err)
		return nil, err
	}

	user, err := svc.userWriter.Save(ctx, email, username, hash, verificationToken)
	if err != nil {
		if taken := uniqueViolation(err); taken != nil {
			return nil, taken
		}
		logger.Log.Errorw("failed to save user", "error", err)
		return nil, storageErr(err)
	}

	svc.publishEvent(ctx, models.EventUserSignedUp, email, "")
	svc.publishEvent(ctx, models.EventVerificationRequested, email, redirectURL)
	return user, nil
}

// CheckEmailExists asks the provider whether the email is registered.
// Fails open to false on lookup error: a degraded provider must not
// block sign-ups, and the store uniqueness constraint still enforces
// correctness.
func (svc *AuthService) CheckEmailExists(ctx context.Context, email string) bool {
	exists, err := svc.identity.CheckEmailExists(ctx, email)
	if err != nil {
		logger.Log.Errorw("email existence check failed, assuming absent", "error", err)
		return false
	}
	return exists
}

// SignOut revokes the local session and the provider-side one.
// Idempotent: an unknown or already-revoked token is not an error, and
// neither half failing surfaces to the caller.
func (svc *AuthService) SignOut(ctx context.Context, token string) {
	if token != "" {
		if _, err := svc.sessions.Revoke(ctx, token); err != nil {
			logger.Log.Errorw("failed to revoke local session", "error", err)
		}
	}
	if err := svc.identity.SignOut(ctx); err != nil {
		logger.Log.Errorw("identity sign-out failed", "error", err)
	}
}

// ResetPasswordRequest starts a password reset. It always reports
// success so callers cannot probe which emails exist; every internal
// failure is logged and swallowed.
func (svc *AuthService) ResetPasswordRequest(ctx context.Context, email string) {
	redirectURL := env.AuthRedirectURL() + "?next=/reset-password"

	token, err := password.GenerateToken()
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "error", err)
	} else if err := svc.userWriter.SetResetToken(ctx, email, token, time.Now().Add(resetTokenTTL)); err != nil {
		logger.Log.Errorw("failed to store reset token", "error", err)
	}

	if err := svc.identity.ResetPasswordForEmail(ctx, email, redirectURL); err != nil {
		logger.Log.Errorw("identity reset request failed", "error", err)
		return
	}

	svc.publishEvent(ctx, models.EventResetRequested, email, redirectURL)
}

// CompleteReset trades a reset token for a new password. The token is
// consumed in the same update that writes the hash, and every other
// session the user holds is revoked.
func (svc *AuthService) CompleteReset(ctx context.Context, token, newPassword string) error {
	user, err := svc.userReader.GetByResetToken(ctx, token)
	if err != nil {
		return storageErr(err)
	}
	if user == nil {
		return ErrMalformedToken
	}
	if user.ResetPasswordExpiresAt == nil || user.ResetPasswordExpiresAt.Before(time.Now()) {
		return ErrResetTokenExpired
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash new password", "error", err)
		return err
	}

	if err := svc.userWriter.UpdatePassword(ctx, user.ID, hash); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", user.ID, "error", err)
		return storageErr(err)
	}

	if _, err := svc.sessions.RevokeAllForUser(ctx, user.ID); err != nil {
		logger.Log.Errorw("failed to revoke sessions after reset", "user_id", user.ID, "error", err)
	}

	return nil
}

// ResendVerificationEmail re-triggers the verification message, at most
// once per cooldown window. A broken cooldown store fails open: resends
// are throttling, not correctness.
func (svc *AuthService) ResendVerificationEmail(ctx context.Context, email string) error {
	allowed, err := svc.cooldown.Allow(ctx, email)
	if err != nil {
		logger.Log.Errorw("cooldown check failed, allowing resend", "error", err)
		allowed = true
	}
	if !allowed {
		return ErrResendCooldown
	}

	redirectURL := env.AuthRedirectURL()
	if err := svc.identity.Resend(ctx, "signup", email, redirectURL); err != nil {
		logger.Log.Errorw("identity resend failed", "error", err)
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	svc.publishEvent(ctx, models.EventVerificationRequested, email, redirectURL)
	return nil
}

// VerifyEmailToken exchanges a one-time token for a confirmed state.
// Single use: the provider rejects a second exchange. On success the
// local record flips to verified with its token cleared.
func (svc *AuthService) VerifyEmailToken(ctx context.Context, tokenHash, email string) error {
	if err := svc.identity.VerifyOTP(ctx, email, tokenHash, "email"); err != nil {
		if errors.Is(err, facades.ErrBadCredentials) {
			return ErrMalformedToken
		}
		logger.Log.Errorw("identity verify failed", "error", err)
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if err := svc.userWriter.MarkVerified(ctx, email); err != nil {
		logger.Log.Errorw("failed to mark user verified", "error", err)
		return storageErr(err)
	}
	return nil
}

// ExchangeCode trades an emailed one-time code for a confirmed account
// and, when the account exists locally, a fresh session. The returned
// session may be nil when the provider principal has no local record.
func (svc *AuthService) ExchangeCode(ctx context.Context, code string, ipAddress, userAgent *string) (*models.SessionDB, error) {
	principal, err := svc.identity.ExchangeCodeForSession(ctx, code)
	if err != nil {
		if errors.Is(err, facades.ErrBadCredentials) {
			return nil, ErrMalformedToken
		}
		logger.Log.Errorw("code exchange failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if principal.Email != "" {
		if err := svc.userWriter.MarkVerified(ctx, principal.Email); err != nil {
			logger.Log.Errorw("failed to mark user verified after exchange", "error", err)
		}
	}

	user, err := svc.userReader.GetByEmail(ctx, principal.Email)
	if err != nil || user == nil {
		return nil, nil
	}
	return svc.sessions.Create(ctx, user.ID, ipAddress, userAgent)
}
