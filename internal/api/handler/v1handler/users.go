package v1handler

import (
	"net/http"

	"accounts/internal/account"
	"accounts/pkg/domain"
	"accounts/pkg/serrors"
)

type updateUserRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FullName    *string `json:"fullName"`
	IsActive    *bool   `json:"isActive"`
	IsSuperuser *bool   `json:"isSuperuser"`
}

// CurrentUser returns the authenticated user's own account.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GetUserFromContext(r.Context()))
}

// GetUser returns a user by ID. Non-superusers may only read their own account.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	caller := GetUserFromContext(r.Context())
	if !caller.IsSuperuser && domain.UserID(id) != caller.ID {
		writeError(w, r, serrors.With(serrors.ErrForbidden, "superuser privileges required"))

		return
	}

	user, err := h.deps.Accounts.UserByID(r.Context(), domain.UserID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateUser applies a partial update to a user. Non-superusers may only
// update their own account and cannot change activation or privilege flags.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	caller := GetUserFromContext(r.Context())
	if !caller.IsSuperuser && domain.UserID(id) != caller.ID {
		writeError(w, r, serrors.With(serrors.ErrForbidden, "superuser privileges required"))

		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	if !caller.IsSuperuser && (req.IsActive != nil || req.IsSuperuser != nil) {
		writeError(w, r, serrors.With(serrors.ErrForbidden, "superuser privileges required"))

		return
	}

	user, err := h.deps.Accounts.UpdateUser(r.Context(), domain.UserID(id), account.UserUpdates{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		IsActive:    req.IsActive,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, user)
}

// DeleteUser soft-deletes a user. Non-superusers may only delete their own account.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	caller := GetUserFromContext(r.Context())
	if !caller.IsSuperuser && domain.UserID(id) != caller.ID {
		writeError(w, r, serrors.With(serrors.ErrForbidden, "superuser privileges required"))

		return
	}

	if err := h.deps.Accounts.DeleteUser(r.Context(), domain.UserID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListUsers returns a paginated list of users. Superuser only.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, pageSize, offset, limit := pageParams(r)

	users, total, err := h.deps.Accounts.Users(r.Context(), offset, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, NewPage(users, total, page, pageSize))
}
