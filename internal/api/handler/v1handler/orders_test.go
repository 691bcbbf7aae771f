package v1handler_test

import (
	"net/http"
	"testing"
	"time"

	"accounts/pkg/domain"
	"accounts/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleOrder(userID domain.UserID) *domain.Order {
	now := time.Now().UTC()

	return &domain.Order{
		ID:     domain.OrderID(uuid.New()),
		UserID: userID,
		Items: []domain.OrderItem{
			{ProductID: domain.ProductID(uuid.New()), PriceCents: 1500},
			{ProductID: domain.ProductID(uuid.New()), PriceCents: 2000},
		},
		TotalCents: 3500,
		Status:     domain.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)

	user := sampleUser(false)
	env.expectAuth(user)

	ord := sampleOrder(user.ID)
	productIDs := []domain.ProductID{ord.Items[0].ProductID, ord.Items[1].ProductID}
	env.orders.EXPECT().Create(gomock.Any(), user.ID, productIDs).Return(ord, nil)

	body := `{"productIds":["` + ord.Items[0].ProductID.String() + `","` + ord.Items[1].ProductID.String() + `"]}`
	rec := env.do(authedRequest(http.MethodPost, "/v1/orders", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody(t, rec)
	require.Equal(t, ord.ID.String(), got["id"])
	require.EqualValues(t, 3500, got["totalCents"])
	require.Equal(t, "PENDING", got["status"])
	require.Len(t, got["items"], 2)
}

func TestCreateOrder_EmptyList(t *testing.T) {
	env := newTestEnv(t)

	user := sampleUser(false)
	env.expectAuth(user)

	env.orders.EXPECT().
		Create(gomock.Any(), user.ID, []domain.ProductID{}).
		Return(nil, serrors.With(serrors.ErrBadRequest, "order must contain at least one product"))

	rec := env.do(authedRequest(http.MethodPost, "/v1/orders", `{"productIds":[]}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	req := authedRequest(http.MethodPost, "/v1/orders", `{"productIds":[]}`)
	req.Header.Del("Authorization")
	rec := env.do(req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetOrder(t *testing.T) {
	env := newTestEnv(t)

	user := sampleUser(false)
	env.expectAuth(user)

	ord := sampleOrder(user.ID)
	env.orders.EXPECT().Order(gomock.Any(), user.ID, ord.ID).Return(ord, nil)

	rec := env.do(authedRequest(http.MethodGet, "/v1/orders/"+ord.ID.String(), ""))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, ord.ID.String(), decodeBody(t, rec)["id"])
}

func TestGetOrder_NotFound(t *testing.T) {
	env := newTestEnv(t)

	user := sampleUser(false)
	env.expectAuth(user)

	id := domain.OrderID(uuid.New())
	env.orders.EXPECT().
		Order(gomock.Any(), user.ID, id).
		Return(nil, serrors.With(serrors.ErrNotFound, "order not found"))

	rec := env.do(authedRequest(http.MethodGet, "/v1/orders/"+id.String(), ""))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOrders(t *testing.T) {
	env := newTestEnv(t)

	user := sampleUser(false)
	env.expectAuth(user)

	orders := []domain.Order{*sampleOrder(user.ID)}
	env.orders.EXPECT().UserOrders(gomock.Any(), user.ID, uint(0), uint(20)).Return(orders, int64(1), nil)

	rec := env.do(authedRequest(http.MethodGet, "/v1/orders", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Len(t, body["items"], 1)
	require.EqualValues(t, 1, body["total"])
}
