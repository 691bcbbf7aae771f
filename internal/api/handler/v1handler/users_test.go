package v1handler_test

import (
	"net/http"
	"testing"

	"accounts/internal/account"
	"accounts/pkg/domain"
	"accounts/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCurrentUser(t *testing.T) {
	env := newTestEnv(t)

	user := sampleUser(false)
	env.expectAuth(user)

	rec := env.do(authedRequest(http.MethodGet, "/v1/users/me", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, user.ID.String(), body["id"])
	require.Equal(t, user.Email, body["email"])
	require.NotContains(t, rec.Body.String(), "hashedPassword")
}

func TestGetUser_Self(t *testing.T) {
	env := newTestEnv(t)

	user := sampleUser(false)
	env.expectAuth(user)
	env.accounts.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)

	rec := env.do(authedRequest(http.MethodGet, "/v1/users/"+user.ID.String(), ""))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user.ID.String(), decodeBody(t, rec)["id"])
}

func TestGetUser_OtherForbidden(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(false))

	rec := env.do(authedRequest(http.MethodGet, "/v1/users/"+uuid.NewString(), ""))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetUser_SuperuserReadsAnyone(t *testing.T) {
	env := newTestEnv(t)

	admin := sampleUser(true)
	env.expectAuth(admin)

	other := sampleUser(false)
	env.accounts.EXPECT().UserByID(gomock.Any(), other.ID).Return(other, nil)

	rec := env.do(authedRequest(http.MethodGet, "/v1/users/"+other.ID.String(), ""))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, other.ID.String(), decodeBody(t, rec)["id"])
}

func TestGetUser_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(true))

	rec := env.do(authedRequest(http.MethodGet, "/v1/users/not-a-uuid", ""))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUser_Self(t *testing.T) {
	env := newTestEnv(t)

	user := sampleUser(false)
	env.expectAuth(user)

	updated := *user
	updated.FullName = "Renamed"
	env.accounts.EXPECT().
		UpdateUser(gomock.Any(), user.ID, gomock.AssignableToTypeOf(account.UserUpdates{})).
		DoAndReturn(func(_ any, _ domain.UserID, updates account.UserUpdates) (*domain.User, error) {
			require.NotNil(t, updates.FullName)
			require.Equal(t, "Renamed", *updates.FullName)
			require.Nil(t, updates.IsActive)
			require.Nil(t, updates.IsSuperuser)

			return &updated, nil
		})

	rec := env.do(authedRequest(http.MethodPatch, "/v1/users/"+user.ID.String(), `{"fullName":"Renamed"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Renamed", decodeBody(t, rec)["fullName"])
}

func TestUpdateUser_PrivilegeEscalationForbidden(t *testing.T) {
	env := newTestEnv(t)

	user := sampleUser(false)
	env.expectAuth(user)

	rec := env.do(authedRequest(http.MethodPatch, "/v1/users/"+user.ID.String(), `{"isSuperuser":true}`))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateUser_SuperuserSetsFlags(t *testing.T) {
	env := newTestEnv(t)

	admin := sampleUser(true)
	env.expectAuth(admin)

	other := sampleUser(false)
	deactivated := *other
	deactivated.IsActive = false
	env.accounts.EXPECT().
		UpdateUser(gomock.Any(), other.ID, gomock.AssignableToTypeOf(account.UserUpdates{})).
		DoAndReturn(func(_ any, _ domain.UserID, updates account.UserUpdates) (*domain.User, error) {
			require.NotNil(t, updates.IsActive)
			require.False(t, *updates.IsActive)

			return &deactivated, nil
		})

	rec := env.do(authedRequest(http.MethodPatch, "/v1/users/"+other.ID.String(), `{"isActive":false}`))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, decodeBody(t, rec)["isActive"])
}

func TestDeleteUser_Self(t *testing.T) {
	env := newTestEnv(t)

	user := sampleUser(false)
	env.expectAuth(user)
	env.accounts.EXPECT().DeleteUser(gomock.Any(), user.ID).Return(nil)

	rec := env.do(authedRequest(http.MethodDelete, "/v1/users/"+user.ID.String(), ""))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteUser_OtherForbidden(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(false))

	rec := env.do(authedRequest(http.MethodDelete, "/v1/users/"+uuid.NewString(), ""))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)

	admin := sampleUser(true)
	env.expectAuth(admin)

	users := []domain.User{*sampleUser(false), *sampleUser(false)}
	env.accounts.EXPECT().Users(gomock.Any(), uint(0), uint(20)).Return(users, int64(42), nil)

	rec := env.do(authedRequest(http.MethodGet, "/v1/users", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Len(t, body["items"], 2)
	require.EqualValues(t, 42, body["total"])
	require.EqualValues(t, 1, body["page"])
	require.EqualValues(t, 20, body["pageSize"])
	require.EqualValues(t, 3, body["totalPages"])
}

func TestListUsers_NotFoundMapsTo404(t *testing.T) {
	env := newTestEnv(t)

	user := sampleUser(false)
	env.expectAuth(user)
	env.accounts.EXPECT().
		UserByID(gomock.Any(), user.ID).
		Return(nil, serrors.With(serrors.ErrNotFound, "user not found"))

	rec := env.do(authedRequest(http.MethodGet, "/v1/users/"+user.ID.String(), ""))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
