package v1handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"accounts/pkg/domain"
	"accounts/pkg/serrors"
)

type ctxKey string

// userCtxKey is the context key under which the authenticated user is stored.
const userCtxKey ctxKey = "User"

// GetUserFromContext returns the authenticated user placed in the context by
// requireUser, or nil when the request is unauthenticated.
func GetUserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userCtxKey).(*domain.User)

	return user
}

// authenticate resolves the Bearer token on the request to an active user.
func (h *Handler) authenticate(r *http.Request) (*domain.User, error) {
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	userID, err := h.deps.Accounts.ParseToken(token)
	if err != nil {
		return nil, err
	}

	user, err := h.deps.Accounts.UserByID(r.Context(), userID)
	if err != nil {
		// the token subject may point at a deleted account
		if errors.Is(err, serrors.ErrNotFound) {
			return nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
		}

		return nil, err
	}
	if !user.IsActive {
		return nil, serrors.With(serrors.ErrForbidden, "account is disabled")
	}

	return user, nil
}

// requireUser wraps a handler so it only runs for authenticated, active users.
// The resolved user is stored in the request context.
func (h *Handler) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.authenticate(r)
		if err != nil {
			writeError(w, r, err)

			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey, user)
		next(w, r.WithContext(ctx))
	}
}

// requireSuperuser wraps a handler so it only runs for superusers.
func (h *Handler) requireSuperuser(next http.HandlerFunc) http.HandlerFunc {
	return h.requireUser(func(w http.ResponseWriter, r *http.Request) {
		if !GetUserFromContext(r.Context()).IsSuperuser {
			writeError(w, r, serrors.With(serrors.ErrForbidden, "superuser privileges required"))

			return
		}

		next(w, r)
	})
}
