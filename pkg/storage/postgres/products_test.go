package postgres_test

import (
	"context"
	"testing"

	"accounts/pkg/domain"
	"accounts/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreProducts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("store single product", func(t *testing.T) {
		res, err := pgSQL.StoreProducts(ctx, domain.Product{
			Name:       "Keyboard",
			PriceCents: 4999,
		})
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, "Keyboard", res[0].Name)
		require.EqualValues(t, 4999, res[0].PriceCents)
		require.NotEqual(t, uuid.Nil, uuid.UUID(res[0].ID))
	})

	t.Run("store multiple products", func(t *testing.T) {
		res, err := pgSQL.StoreProducts(ctx,
			domain.Product{Name: "Mouse", PriceCents: 1999},
			domain.Product{Name: "Monitor", Description: "27 inch", PriceCents: 25999},
		)
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("store empty products", func(t *testing.T) {
		res, err := pgSQL.StoreProducts(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_ProductsByIDs(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreProducts(ctx,
		domain.Product{Name: "A", PriceCents: 100},
		domain.Product{Name: "B", PriceCents: 200},
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	// soft delete B, it should disappear from the result
	_, err = pgSQL.DeleteProduct(ctx, stored[1].ID)
	require.NoError(t, err)

	got, err := pgSQL.ProductsByIDs(ctx, []domain.ProductID{
		stored[0].ID,
		stored[1].ID,
		domain.ProductID(uuid.New()),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, stored[0].ID, got[0].ID)

	empty, err := pgSQL.ProductsByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestPgSQL_UpdateProductByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreProducts(ctx, domain.Product{Name: "Desk", PriceCents: 9900})
	require.NoError(t, err)
	require.Len(t, stored, 1)

	price := int64(8900)
	desc := "standing desk"
	updated, err := pgSQL.UpdateProductByID(ctx, stored[0].ID, storage.ProductUpdates{
		PriceCents:  &price,
		Description: &desc,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.EqualValues(t, 8900, updated.PriceCents)
	require.Equal(t, desc, updated.Description)
	require.Equal(t, "Desk", updated.Name)
	require.False(t, updated.UpdatedAt.IsZero())

	missing, err := pgSQL.UpdateProductByID(ctx, domain.ProductID(uuid.New()), storage.ProductUpdates{PriceCents: &price})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteProduct(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreProducts(ctx, domain.Product{Name: "Lamp", PriceCents: 1500})
	require.NoError(t, err)
	id := stored[0].ID

	deleted, err := pgSQL.DeleteProduct(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, id, deleted.ID)

	got, err := pgSQL.ProductByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, got)

	deleted2, err := pgSQL.DeleteProduct(ctx, id)
	require.NoError(t, err)
	require.Nil(t, deleted2)
}

func TestPgSQL_Products_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	products := make([]domain.Product, 0, 5)
	for i := range 5 {
		products = append(products, domain.Product{
			Name:       uuid.NewString(),
			PriceCents: int64(100 * (i + 1)),
		})
	}
	stored, err := pgSQL.StoreProducts(ctx, products...)
	require.NoError(t, err)
	require.Len(t, stored, 5)

	total, err := pgSQL.CountProducts(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)

	p1, err := pgSQL.Products(ctx, 0, 3)
	require.NoError(t, err)
	require.Len(t, p1, 3)

	p2, err := pgSQL.Products(ctx, 3, 3)
	require.NoError(t, err)
	require.Len(t, p2, 2)
}
