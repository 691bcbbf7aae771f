// Package catalog implements product management on top of the storage layer.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"accounts/pkg/domain"
	"accounts/pkg/serrors"
	"accounts/pkg/storage"
)

// catalog is the concrete implementation of the Catalog interface.
type catalog struct {
	// storage is the persistence layer for products.
	storage storage.Storage
}

func validatePrice(priceCents int64) error {
	if priceCents <= 0 {
		return serrors.With(serrors.ErrBadRequest, "price must be positive")
	}

	return nil
}

// Create stores a new product after validating its name and price.
func (c catalog) Create(ctx context.Context, name, description string, priceCents int64) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "product name is required")
	}
	if err := validatePrice(priceCents); err != nil {
		return nil, err
	}

	stored, err := c.storage.StoreProducts(ctx, domain.Product{
		Name:        name,
		Description: description,
		PriceCents:  priceCents,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store product: %w", err)
	}

	return &stored[0], nil
}

// Product fetches a single product by ID. It returns a not-found error when no
// matching product exists.
func (c catalog) Product(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	product, err := c.storage.ProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get product: %w", err)
	}
	if product == nil {
		return nil, serrors.With(serrors.ErrNotFound, "product not found")
	}

	return product, nil
}

// Products returns a page of products together with the total number of live
// entries.
func (c catalog) Products(ctx context.Context, offset, limit uint) ([]domain.Product, int64, error) {
	products, err := c.storage.Products(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("could not list products: %w", err)
	}

	total, err := c.storage.CountProducts(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count products: %w", err)
	}

	return products, total, nil
}

// Update applies the given field changes to a product.
func (c catalog) Update(ctx context.Context, id domain.ProductID, updates ProductUpdates) (*domain.Product, error) {
	if updates.Name != nil {
		trimmed := strings.TrimSpace(*updates.Name)
		if trimmed == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "product name is required")
		}
		updates.Name = &trimmed
	}
	if updates.PriceCents != nil {
		if err := validatePrice(*updates.PriceCents); err != nil {
			return nil, err
		}
	}

	product, err := c.storage.UpdateProductByID(ctx, id, storage.ProductUpdates{
		Name:        updates.Name,
		Description: updates.Description,
		PriceCents:  updates.PriceCents,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	if product == nil {
		return nil, serrors.With(serrors.ErrNotFound, "product not found")
	}

	return product, nil
}

// Delete removes a product from the catalog. Existing orders keep their
// captured prices, so deleting a product never affects order history.
func (c catalog) Delete(ctx context.Context, id domain.ProductID) error {
	product, err := c.storage.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete product: %w", err)
	}
	if product == nil {
		return serrors.With(serrors.ErrNotFound, "product not found")
	}

	return nil
}

// New creates a new Catalog instance backed by the provided storage.
func New(storage storage.Storage) Catalog {
	return &catalog{storage: storage}
}
