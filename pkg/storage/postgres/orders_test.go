package postgres_test

import (
	"context"
	"testing"

	"accounts/pkg/domain"
	"accounts/pkg/storage"
	"accounts/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func storeOrderFixtures(t *testing.T, pgSQL *postgres.PgSQL) (domain.UserID, []domain.Product) {
	t.Helper()
	ctx := context.Background()

	user, err := pgSQL.StoreUser(ctx, testUserRecord(uuid.NewString()+"@orders.example"))
	require.NoError(t, err)

	products, err := pgSQL.StoreProducts(ctx,
		domain.Product{Name: "P1", PriceCents: 1000},
		domain.Product{Name: "P2", PriceCents: 2500},
	)
	require.NoError(t, err)
	require.Len(t, products, 2)

	return user.ID, products
}

func TestPgSQL_StoreOrder(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID, products := storeOrderFixtures(t, pgSQL)

	order := domain.Order{
		UserID:     userID,
		TotalCents: 3500,
		Status:     domain.OrderStatusPending,
		Items: []domain.OrderItem{
			{ProductID: products[0].ID, PriceCents: 1000},
			{ProductID: products[1].ID, PriceCents: 2500},
		},
	}

	stored, err := pgSQL.StoreOrder(ctx, order)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.Equal(t, userID, stored.UserID)
	require.EqualValues(t, 3500, stored.TotalCents)
	require.Equal(t, domain.OrderStatusPending, stored.Status)
	require.Len(t, stored.Items, 2)
}

func TestPgSQL_OrderByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID, products := storeOrderFixtures(t, pgSQL)
	otherID, _ := storeOrderFixtures(t, pgSQL)

	stored, err := pgSQL.StoreOrder(ctx, domain.Order{
		UserID:     userID,
		TotalCents: 1000,
		Status:     domain.OrderStatusPending,
		Items:      []domain.OrderItem{{ProductID: products[0].ID, PriceCents: 1000}},
	})
	require.NoError(t, err)

	got, err := pgSQL.OrderByID(ctx, userID, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)
	require.Len(t, got.Items, 1)
	require.Equal(t, products[0].ID, got.Items[0].ProductID)

	// orders are scoped per user
	got2, err := pgSQL.OrderByID(ctx, otherID, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got2)

	// unknown order
	got3, err := pgSQL.OrderByID(ctx, userID, domain.OrderID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got3)
}

func TestPgSQL_UserOrders_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID, products := storeOrderFixtures(t, pgSQL)

	for range 5 {
		_, err := pgSQL.StoreOrder(ctx, domain.Order{
			UserID:     userID,
			TotalCents: 1000,
			Status:     domain.OrderStatusPending,
			Items:      []domain.OrderItem{{ProductID: products[0].ID, PriceCents: 1000}},
		})
		require.NoError(t, err)
	}

	total, err := pgSQL.CountUserOrders(ctx, userID)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)

	p1, err := pgSQL.UserOrders(ctx, userID, 0, 2)
	require.NoError(t, err)
	require.Len(t, p1, 2)
	for _, o := range p1 {
		require.Len(t, o.Items, 1)
	}

	p3, err := pgSQL.UserOrders(ctx, userID, 4, 2)
	require.NoError(t, err)
	require.Len(t, p3, 1)

	// another user sees nothing
	otherID, _ := storeOrderFixtures(t, pgSQL)
	empty, err := pgSQL.UserOrders(ctx, otherID, 0, 10)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestPgSQL_StoreOrder_WithinTransaction(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID, products := storeOrderFixtures(t, pgSQL)

	var orderID domain.OrderID
	err := pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
		stored, err := s.StoreOrder(ctx, domain.Order{
			UserID:     userID,
			TotalCents: 2500,
			Status:     domain.OrderStatusPending,
			Items:      []domain.OrderItem{{ProductID: products[1].ID, PriceCents: 2500}},
		})
		if err != nil {
			return err
		}
		orderID = stored.ID

		return nil
	})
	require.NoError(t, err)

	got, err := pgSQL.OrderByID(ctx, userID, orderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Items, 1)
}
