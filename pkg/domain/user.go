package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in canonical UUID form so users serialize with
// readable identifiers instead of byte arrays.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a canonical UUID string.
func (id *UserID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// User represents an account holder. Authorization decisions (active account,
// superuser privileges) are made from this entity; credentials live in
// HashedPassword and must never leave the service boundary.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`
	// HashedPassword is the bcrypt hash of the user's password. It is excluded
	// from JSON so cached or serialized users never carry credentials.
	HashedPassword string `json:"-"`
	// FullName is the user's display name.
	FullName string `json:"fullName"`

	// IsActive marks whether the account may authenticate.
	IsActive bool `json:"isActive"`
	// IsSuperuser grants administrative privileges (user listing, deletes, catalog writes).
	IsSuperuser bool `json:"isSuperuser"`

	// CreatedAt is the time when the account was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the account was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the account was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
