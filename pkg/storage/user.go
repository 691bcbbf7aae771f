package storage

import (
	"context"

	"accounts/pkg/domain"
)

// UserUpdates describes a set of optional fields that can be applied to an
// existing user during an update. Only non-nil fields will be updated.
type UserUpdates struct {
	// Email, when provided, replaces the login email. Uniqueness among live
	// accounts is enforced by the backend.
	Email *string
	// HashedPassword, when provided, replaces the stored credential hash.
	HashedPassword *string
	// FullName, when provided, replaces the display name.
	FullName *string
	// IsActive, when provided, enables or disables the account.
	IsActive *bool
	// IsSuperuser, when provided, grants or revokes administrative privileges.
	IsSuperuser *bool
}

// UserStorage defines CRUD and query operations for user accounts.
// Implementations exclude soft-deleted rows from all reads.
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored row as it exists in
	// the database (including generated fields). ErrDuplicateEmail is returned
	// when the email is already taken by a live account.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail fetches a user by email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateUserByID applies the provided field set to a single user and returns
	// the updated row, or nil when the user does not exist. updated_at is set
	// automatically.
	UpdateUserByID(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	// DeleteUser performs a soft delete and returns the deleted user, or nil if
	// it was not found.
	DeleteUser(ctx context.Context, id domain.UserID) (*domain.User, error)
	// Users returns a page of users ordered by creation time (newest first).
	Users(ctx context.Context, offset, limit uint) ([]domain.User, error)
	// CountUsers returns the total number of live users.
	CountUsers(ctx context.Context) (int64, error)
}
