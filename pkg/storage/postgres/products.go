package postgres

import (
	"context"
	"fmt"

	"accounts/pkg/domain"
	"accounts/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const productsTable = "products"

func (p *PgSQL) StoreProducts(ctx context.Context, products ...domain.Product) ([]domain.Product, error) {
	if len(products) == 0 {
		return nil, nil
	}

	rows := domainProductsToPg(products)

	var result []PgProduct
	if err := p.Builder.Insert(productsTable).
		Rows(rows).
		Returning(&PgProduct{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store products into pg: %w", err)
	}

	return pgProductsToDomain(result), nil
}

// ProductByID returns a product by its ID, excluding soft-deleted rows.
func (p *PgSQL) ProductByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.From(productsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch product by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ProductsByIDs returns the live products matching the given IDs. IDs without a
// matching row are absent from the result.
func (p *PgSQL) ProductsByIDs(ctx context.Context, ids []domain.ProductID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, uuid.UUID(id))
	}

	var rows []PgProduct
	if err := p.Builder.From(productsTable).
		Where(
			goqu.I("id").In(raw),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch products by ids: %w", err)
	}

	return pgProductsToDomain(rows), nil
}

// UpdateProductByID updates a single product identified by its ID and returns
// the updated row. Only provided fields are changed; updated_at is set automatically.
func (p *PgSQL) UpdateProductByID(ctx context.Context,
	id domain.ProductID,
	updates storage.ProductUpdates) (*domain.Product, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.PriceCents != nil {
		rec["price_cents"] = *updates.PriceCents
	}

	var row PgProduct
	found, err := p.Builder.Update(productsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProduct{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update product in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteProduct performs a soft delete by setting the deleted_at timestamp,
// returning the deleted record.
func (p *PgSQL) DeleteProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.Update(productsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProduct{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete product in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Products returns a page of products ordered by created_at DESC, id DESC.
func (p *PgSQL) Products(ctx context.Context, offset, limit uint) ([]domain.Product, error) {
	var rows []PgProduct
	if err := p.Builder.From(productsTable).
		Where(goqu.I("deleted_at").IsNull()).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(offset).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch products from pg: %w", err)
	}

	return pgProductsToDomain(rows), nil
}

// CountProducts returns the total number of live products.
func (p *PgSQL) CountProducts(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(productsTable).
		Where(goqu.I("deleted_at").IsNull()).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count products in pg: %w", err)
	}

	return count, nil
}
