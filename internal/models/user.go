package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID                     int64      `json:"id" db:"id"`                                               // Primary key
	Email                  string     `json:"email" db:"email"`                                         // Unique email
	Username               string     `json:"username" db:"username"`                                   // Unique username
	FullName               *string    `json:"full_name,omitempty" db:"full_name"`                       // Optional display name
	PasswordHash           string     `json:"-" db:"password_hash"`                                     // salt:hash composite, never the raw password
	AvatarURL              *string    `json:"avatar_url,omitempty" db:"avatar_url"`                     // Optional avatar
	IsVerified             bool       `json:"is_verified" db:"is_verified"`                             // Email confirmed
	VerificationToken      *string    `json:"-" db:"verification_token"`                                // One-time email verification token, nil once verified
	ResetPasswordToken     *string    `json:"-" db:"reset_password_token"`                              // One-time password reset token
	ResetPasswordExpiresAt *time.Time `json:"-" db:"reset_password_expires_at"`                         // Reset token expiry
	CreatedAt              time.Time  `json:"created_at" db:"created_at"`                               // Creation timestamp
	UpdatedAt              time.Time  `json:"updated_at" db:"updated_at"`                               // Last update timestamp
}
