package storage

import (
	"context"

	"accounts/pkg/domain"
)

// OrderStorage defines persistence operations for orders and their line items.
type OrderStorage interface {
	// StoreOrder inserts an order together with its line items and returns the
	// stored order. The two inserts are not atomic by themselves; callers are
	// expected to run StoreOrder inside WithTx.
	StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	// OrderByID fetches an order with its items for the given user.
	// Returns nil when not found.
	OrderByID(ctx context.Context, userID domain.UserID, id domain.OrderID) (*domain.Order, error)
	// UserOrders returns a page of the user's orders ordered by creation time
	// (newest first), items included.
	UserOrders(ctx context.Context, userID domain.UserID, offset, limit uint) ([]domain.Order, error)
	// CountUserOrders returns the total number of orders placed by the user.
	CountUserOrders(ctx context.Context, userID domain.UserID) (int64, error)
}
