package postgres

import (
	"context"
	"fmt"

	"accounts/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	ordersTable     = "orders"
	orderItemsTable = "order_items"
)

// StoreOrder inserts the order row and its item rows. The two inserts are not
// atomic on their own, callers are expected to invoke this inside WithTx.
func (p *PgSQL) StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	var row PgOrder
	row.FromDomain(order)

	var result PgOrder
	found, err := p.Builder.Insert(ordersTable).
		Rows(row).
		Returning(&PgOrder{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store order into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store order into pg: no row returned")
	}

	items := make([]PgOrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, PgOrderItem{
			OrderID:    result.ID,
			ProductID:  uuid.UUID(item.ProductID),
			PriceCents: item.PriceCents,
		})
	}
	if len(items) > 0 {
		if _, err := p.Builder.Insert(orderItemsTable).
			Rows(items).
			Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not store order items into pg: %w", err)
		}
	}

	return result.ToDomain(items), nil
}

func (p *PgSQL) orderItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]PgOrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	var rows []PgOrderItem
	if err := p.Builder.From(orderItemsTable).
		Where(goqu.I("order_id").In(orderIDs)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch order items from pg: %w", err)
	}

	out := make(map[uuid.UUID][]PgOrderItem, len(orderIDs))
	for _, row := range rows {
		out[row.OrderID] = append(out[row.OrderID], row)
	}

	return out, nil
}

// OrderByID returns the order with the given ID, scoped to the given user.
func (p *PgSQL) OrderByID(ctx context.Context, userID domain.UserID, id domain.OrderID) (*domain.Order, error) {
	var row PgOrder
	found, err := p.Builder.From(ordersTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch order by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	items, err := p.orderItems(ctx, []uuid.UUID{row.ID})
	if err != nil {
		return nil, err
	}

	return row.ToDomain(items[row.ID]), nil
}

// UserOrders returns a page of the user's orders ordered by created_at DESC,
// id DESC, each with its items attached.
func (p *PgSQL) UserOrders(ctx context.Context,
	userID domain.UserID,
	offset, limit uint) ([]domain.Order, error) {
	var rows []PgOrder
	if err := p.Builder.From(ordersTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(offset).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch orders from pg: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	items, err := p.orderItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain(items[rows[i].ID]))
	}

	return out, nil
}

// CountUserOrders returns the total number of orders placed by the user.
func (p *PgSQL) CountUserOrders(ctx context.Context, userID domain.UserID) (int64, error) {
	count, err := p.Builder.From(ordersTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count orders in pg: %w", err)
	}

	return count, nil
}
