package catalog

import (
	"context"

	"accounts/pkg/domain"
)

// ProductUpdates describes optional fields that can be changed on a product.
// Only non-nil fields are applied.
type ProductUpdates struct {
	Name        *string
	Description *string
	PriceCents  *int64
}

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	Create(ctx context.Context, name, description string, priceCents int64) (*domain.Product, error)
	Product(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	Products(ctx context.Context, offset, limit uint) ([]domain.Product, int64, error)
	Update(ctx context.Context, id domain.ProductID, updates ProductUpdates) (*domain.Product, error)
	Delete(ctx context.Context, id domain.ProductID) error
}
