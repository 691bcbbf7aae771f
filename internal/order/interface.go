package order

import (
	"context"

	"accounts/pkg/domain"
)

//go:generate mockgen -package mockorder -source=interface.go -destination=mock/mockorder.go *
type Orders interface {
	Create(ctx context.Context, userID domain.UserID, productIDs []domain.ProductID) (*domain.Order, error)
	Order(ctx context.Context, userID domain.UserID, id domain.OrderID) (*domain.Order, error)
	UserOrders(ctx context.Context, userID domain.UserID, offset, limit uint) ([]domain.Order, int64, error)
}
