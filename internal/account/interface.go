package account

import (
	"context"

	"accounts/pkg/domain"
)

// UserUpdates describes optional fields that can be changed on a user account.
// Only non-nil fields are applied. Password is the plain-text replacement; it
// is validated and hashed before it reaches storage.
type UserUpdates struct {
	Email       *string
	Password    *string
	FullName    *string
	IsActive    *bool
	IsSuperuser *bool
}

//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Accounts interface {
	Register(ctx context.Context, email, password, fullName string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	IssueToken(userID domain.UserID) (string, error)
	ParseToken(token string) (domain.UserID, error)
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	DeleteUser(ctx context.Context, id domain.UserID) error
	Users(ctx context.Context, offset, limit uint) ([]domain.User, int64, error)
}
