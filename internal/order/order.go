// Package order implements order placement and retrieval on top of the storage
// and cache layers.
package order

import (
	"context"
	"fmt"

	"accounts/pkg/cache"
	"accounts/pkg/domain"
	"accounts/pkg/logger"
	"accounts/pkg/serrors"
	"accounts/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// orders is the concrete implementation of the Orders interface.
type orders struct {
	// storage is the persistence layer for orders, users and products.
	storage storage.Storage
	// cache holds per-user cart state that becomes stale once an order is placed.
	cache cache.Cache
}

func cartCacheKey(userID domain.UserID) string {
	return "cart:" + uuid.UUID(userID).String()
}

// Create places a new order for the given user. The prices are captured from
// the catalog at purchase time and the order starts in the pending state. The
// user's cached cart is invalidated once the order is committed.
func (o orders) Create(ctx context.Context,
	userID domain.UserID,
	productIDs []domain.ProductID) (*domain.Order, error) {
	if len(productIDs) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "order must contain at least one product")
	}

	// duplicates collapse into a single line item
	seen := make(map[domain.ProductID]struct{}, len(productIDs))
	unique := make([]domain.ProductID, 0, len(productIDs))
	for _, id := range productIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	var order *domain.Order
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		user, err := tx.UserByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not get user: %w", err)
		}
		if user == nil {
			return serrors.With(serrors.ErrNotFound, "user not found")
		}
		if !user.IsActive {
			return serrors.With(serrors.ErrForbidden, "account is disabled")
		}

		products, err := tx.ProductsByIDs(ctx, unique)
		if err != nil {
			return fmt.Errorf("could not get products: %w", err)
		}
		if len(products) != len(unique) {
			return serrors.With(serrors.ErrBadRequest, "one or more products do not exist")
		}

		var total int64
		items := make([]domain.OrderItem, 0, len(products))
		for _, product := range products {
			total += product.PriceCents
			items = append(items, domain.OrderItem{
				ProductID:  product.ID,
				PriceCents: product.PriceCents,
			})
		}

		stored, err := tx.StoreOrder(ctx, domain.Order{
			UserID:     userID,
			Items:      items,
			TotalCents: total,
			Status:     domain.OrderStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store order: %w", err)
		}
		order = stored

		return nil
	}); err != nil {
		return nil, err
	}

	if _, err := o.cache.Delete(ctx, cartCacheKey(userID)); err != nil {
		logger.Warn(ctx, "could not invalidate cached cart", zap.Error(err))
	}

	return order, nil
}

// Order fetches a single order by ID for the given user. It returns a
// not-found error when no matching order exists.
func (o orders) Order(ctx context.Context, userID domain.UserID, id domain.OrderID) (*domain.Order, error) {
	order, err := o.storage.OrderByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get order: %w", err)
	}
	if order == nil {
		return nil, serrors.With(serrors.ErrNotFound, "order not found")
	}

	return order, nil
}

// UserOrders returns a page of the user's orders together with the total
// number of orders they have placed.
func (o orders) UserOrders(ctx context.Context,
	userID domain.UserID,
	offset, limit uint) ([]domain.Order, int64, error) {
	page, err := o.storage.UserOrders(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("could not list orders: %w", err)
	}

	total, err := o.storage.CountUserOrders(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count orders: %w", err)
	}

	return page, total, nil
}

// New creates a new Orders instance backed by the provided storage and cache.
func New(storage storage.Storage, cache cache.Cache) Orders {
	return &orders{
		storage: storage,
		cache:   cache,
	}
}
