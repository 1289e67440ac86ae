package models

import "time"

// UserProfileDB represents a user's profile record, one-to-one with UserDB.
type UserProfileDB struct {
	UserID    int64      `json:"user_id" db:"user_id"`         // Primary key, references users.id
	Bio       *string    `json:"bio,omitempty" db:"bio"`       // Free-form bio
	Phone     *string    `json:"phone,omitempty" db:"phone"`   // Contact phone
	Address   *string    `json:"address,omitempty" db:"address"`
	BirthDate *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
