// Package account implements registration, authentication and user management
// on top of the storage and cache layers.
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"accounts/internal/config"
	"accounts/pkg/cache"
	"accounts/pkg/domain"
	"accounts/pkg/logger"
	"accounts/pkg/serrors"
	"accounts/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure token signing and user caching.
// These settings are typically derived from application configuration.
type Options struct {
	// TokenSecret is the HS256 signing key for access tokens.
	TokenSecret string
	// TokenTTL is how long issued access tokens stay valid.
	TokenTTL time.Duration
	// CacheTTL is how long cached user records stay valid.
	CacheTTL time.Duration
	// MailMaxAttempts is how many times the welcome mail job is retried before
	// being discarded.
	MailMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		TokenSecret:     cfg.JWT.Secret,
		TokenTTL:        cfg.JWT.AccessTokenTTL,
		CacheTTL:        cfg.Redis.UserTTL,
		MailMaxAttempts: cfg.Worker.MailMaxAttempts,
	}
}

// accounts is the concrete implementation of the Accounts interface.
// It coordinates persistence, the user cache and job enqueueing.
type accounts struct {
	// options holds runtime configuration for token signing and caching.
	options Options
	// storage is the persistence layer for users and jobs.
	storage storage.Storage
	// cache holds serialized user records keyed by ID.
	cache cache.Cache
}

// userCacheKey returns the cache key for a user record. Cached values are the
// JSON form of domain.User, which never includes the password hash.
func userCacheKey(id domain.UserID) string {
	return "user:" + uuid.UUID(id).String()
}

// Register creates a new account with the given credentials. The user row and
// the welcome mail job are written in the same transaction, so the mail is only
// sent when the account actually exists.
func (a accounts) Register(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid email address")
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreUser(ctx, domain.User{
			Email:          addr.Address,
			HashedPassword: hash,
			FullName:       fullName,
			IsActive:       true,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateEmail) {
				return serrors.With(serrors.ErrConflict, "email already registered")
			}

			return fmt.Errorf("could not store user: %w", err)
		}
		user = stored

		if _, err := tx.AddJob(ctx, WelcomeEmailJobArgs{
			Email:       user.Email,
			FullName:    user.FullName,
			maxAttempts: a.options.MailMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add welcome mail job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies the given credentials and returns the matching user.
// Unknown email, wrong password and disabled accounts all produce the same
// unauthorized error so callers can't probe which accounts exist.
func (a accounts) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}

	hash := dummyHash
	if user != nil {
		hash = user.HashedPassword
	}
	if !checkPassword(hash, password) || user == nil || !user.IsActive {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	return user, nil
}

// UserByID returns the user with the given ID, serving from the cache when
// possible. Cache failures are logged and fall through to storage.
func (a accounts) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	key := userCacheKey(id)

	cached, found, err := a.cache.Get(ctx, key)
	if err != nil {
		logger.Warn(ctx, "could not read user from cache", zap.Error(err))
	}
	if found {
		var user domain.User
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			return &user, nil
		}
		logger.Warn(ctx, "could not decode cached user", zap.String("key", key))
	}

	user, err := a.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	if encoded, err := json.Marshal(user); err == nil {
		if err := a.cache.Set(ctx, key, string(encoded), a.options.CacheTTL); err != nil {
			logger.Warn(ctx, "could not cache user", zap.Error(err))
		}
	}

	return user, nil
}

// UpdateUser applies the given field changes to a user and invalidates its
// cache entry. A password change is validated and hashed before storage.
func (a accounts) UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error) {
	stored := storage.UserUpdates{
		FullName:    updates.FullName,
		IsActive:    updates.IsActive,
		IsSuperuser: updates.IsSuperuser,
	}

	if updates.Email != nil {
		addr, err := mail.ParseAddress(*updates.Email)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid email address")
		}
		stored.Email = &addr.Address
	}
	if updates.Password != nil {
		if err := ValidatePassword(*updates.Password); err != nil {
			return nil, err
		}
		hash, err := HashPassword(*updates.Password)
		if err != nil {
			return nil, err
		}
		stored.HashedPassword = &hash
	}

	user, err := a.storage.UpdateUserByID(ctx, id, stored)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, serrors.With(serrors.ErrConflict, "email already registered")
		}

		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	if _, err := a.cache.Delete(ctx, userCacheKey(id)); err != nil {
		logger.Warn(ctx, "could not invalidate cached user", zap.Error(err))
	}

	return user, nil
}

// DeleteUser soft-deletes a user and invalidates its cache entry.
func (a accounts) DeleteUser(ctx context.Context, id domain.UserID) error {
	user, err := a.storage.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}

	if _, err := a.cache.Delete(ctx, userCacheKey(id)); err != nil {
		logger.Warn(ctx, "could not invalidate cached user", zap.Error(err))
	}

	return nil
}

// Users returns a page of users together with the total number of live
// accounts.
func (a accounts) Users(ctx context.Context, offset, limit uint) ([]domain.User, int64, error) {
	users, err := a.storage.Users(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("could not list users: %w", err)
	}

	total, err := a.storage.CountUsers(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count users: %w", err)
	}

	return users, total, nil
}

// New creates a new Accounts instance backed by the provided storage and cache.
func New(storage storage.Storage, cache cache.Cache, options Options) Accounts {
	return &accounts{
		options: options,
		storage: storage,
		cache:   cache,
	}
}
