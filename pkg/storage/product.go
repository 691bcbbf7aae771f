package storage

import (
	"context"

	"accounts/pkg/domain"
)

// ProductUpdates describes a set of optional fields that can be applied to an
// existing product during an update. Only non-nil fields will be updated.
type ProductUpdates struct {
	// Name, when provided, replaces the display name.
	Name *string
	// Description, when provided, replaces the description text.
	Description *string
	// PriceCents, when provided, replaces the current price.
	PriceCents *int64
}

// ProductStorage defines CRUD and query operations for catalog products.
// Implementations exclude soft-deleted rows from all reads.
type ProductStorage interface {
	// StoreProducts inserts one or more products and returns the stored rows as
	// they exist in the database (including generated fields).
	StoreProducts(ctx context.Context, products ...domain.Product) ([]domain.Product, error)
	// ProductByID fetches a product by ID. Returns nil when not found.
	ProductByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	// ProductsByIDs fetches the products matching the given IDs. Missing IDs are
	// simply absent from the result; callers decide whether that is an error.
	ProductsByIDs(ctx context.Context, ids []domain.ProductID) ([]domain.Product, error)
	// UpdateProductByID applies the provided field set to a single product and
	// returns the updated row, or nil when the product does not exist.
	UpdateProductByID(ctx context.Context, id domain.ProductID, updates ProductUpdates) (*domain.Product, error)
	// DeleteProduct performs a soft delete and returns the deleted product, or
	// nil if it was not found.
	DeleteProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	// Products returns a page of products ordered by creation time (newest first).
	Products(ctx context.Context, offset, limit uint) ([]domain.Product, error)
	// CountProducts returns the total number of live products.
	CountProducts(ctx context.Context) (int64, error)
}
