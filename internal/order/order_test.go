package order_test

import (
	"context"
	"testing"

	"accounts/internal/order"
	mockcache "accounts/pkg/cache/mock"
	"accounts/pkg/domain"
	"accounts/pkg/logger"
	"accounts/pkg/serrors"
	"accounts/pkg/storage"
	mockstorage "accounts/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestOrders(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, *mockcache.MockCache, order.Orders) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c := mockcache.NewMockCache(ctrl)

	return ctrl, st, c, order.New(st, c)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestOrders_Create_Success(t *testing.T) {
	ctrl, st, c, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	p1 := domain.Product{ID: domain.ProductID(uuid.New()), Name: "A", PriceCents: 1000}
	p2 := domain.Product{ID: domain.ProductID(uuid.New()), Name: "B", PriceCents: 2500}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, IsActive: true}, nil)
		tx.EXPECT().ProductsByIDs(gomock.Any(), []domain.ProductID{p1.ID, p2.ID}).
			Return([]domain.Product{p1, p2}, nil)
		tx.EXPECT().StoreOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ord domain.Order) (*domain.Order, error) {
				require.Equal(t, userID, ord.UserID)
				require.Equal(t, domain.OrderStatusPending, ord.Status)
				require.EqualValues(t, 3500, ord.TotalCents)
				require.Len(t, ord.Items, 2)

				ord.ID = domain.OrderID(uuid.New())

				return &ord, nil
			})
	})
	c.EXPECT().Delete(gomock.Any(), "cart:"+uuid.UUID(userID).String()).Return(true, nil)

	ord, err := o.Create(context.Background(), userID, []domain.ProductID{p1.ID, p2.ID})
	require.NoError(t, err)
	require.NotNil(t, ord)
	require.EqualValues(t, 3500, ord.TotalCents)
}

func TestOrders_Create_DeduplicatesProducts(t *testing.T) {
	ctrl, st, c, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	p := domain.Product{ID: domain.ProductID(uuid.New()), PriceCents: 1000}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, IsActive: true}, nil)
		tx.EXPECT().ProductsByIDs(gomock.Any(), []domain.ProductID{p.ID}).
			Return([]domain.Product{p}, nil)
		tx.EXPECT().StoreOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ord domain.Order) (*domain.Order, error) {
				require.Len(t, ord.Items, 1)
				require.EqualValues(t, 1000, ord.TotalCents)

				return &ord, nil
			})
	})
	c.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err := o.Create(context.Background(), userID, []domain.ProductID{p.ID, p.ID, p.ID})
	require.NoError(t, err)
}

func TestOrders_Create_Failures(t *testing.T) {
	userID := domain.UserID(uuid.New())
	productID := domain.ProductID(uuid.New())

	t.Run("empty product list", func(t *testing.T) {
		_, _, _, o := newTestOrders(t)

		_, err := o.Create(context.Background(), userID, nil)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl, st, _, o := newTestOrders(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), userID).Return(nil, nil)
		})

		_, err := o.Create(context.Background(), userID, []domain.ProductID{productID})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("inactive user", func(t *testing.T) {
		ctrl, st, _, o := newTestOrders(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, IsActive: false}, nil)
		})

		_, err := o.Create(context.Background(), userID, []domain.ProductID{productID})
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})

	t.Run("missing product", func(t *testing.T) {
		ctrl, st, _, o := newTestOrders(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, IsActive: true}, nil)
			tx.EXPECT().ProductsByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		})

		_, err := o.Create(context.Background(), userID, []domain.ProductID{productID})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestOrders_Order(t *testing.T) {
	_, st, _, o := newTestOrders(t)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	id := domain.OrderID(uuid.New())

	st.EXPECT().OrderByID(gomock.Any(), userID, id).Return(&domain.Order{ID: id, UserID: userID}, nil)
	ord, err := o.Order(ctx, userID, id)
	require.NoError(t, err)
	require.Equal(t, id, ord.ID)

	st.EXPECT().OrderByID(gomock.Any(), userID, id).Return(nil, nil)
	_, err = o.Order(ctx, userID, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestOrders_UserOrders(t *testing.T) {
	_, st, _, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	st.EXPECT().UserOrders(gomock.Any(), userID, uint(0), uint(5)).Return([]domain.Order{{}, {}}, nil)
	st.EXPECT().CountUserOrders(gomock.Any(), userID).Return(int64(7), nil)

	ords, total, err := o.UserOrders(context.Background(), userID, 0, 5)
	require.NoError(t, err)
	require.Len(t, ords, 2)
	require.EqualValues(t, 7, total)
}
