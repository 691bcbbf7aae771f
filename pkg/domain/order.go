package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderID uniquely identifies an order.
type OrderID uuid.UUID

func (id OrderID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in canonical UUID form.
func (id OrderID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a canonical UUID string.
func (id *OrderID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order has been placed but not paid.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusPaid indicates payment has been captured for the order.
	OrderStatusPaid OrderStatus = "PAID"
	// OrderStatusCancelled indicates the order was cancelled before payment.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderItem is a single purchased product within an order. PriceCents is the
// product price captured at purchase time; later catalog edits don't affect it.
type OrderItem struct {
	// ProductID references the purchased product.
	ProductID ProductID `json:"productId"`
	// PriceCents is the unit price at the time the order was placed.
	PriceCents int64 `json:"priceCents"`
}

// Order represents a purchase made by a user.
type Order struct {
	// ID is the unique identifier of the order.
	ID OrderID `json:"id"`
	// UserID is the identifier of the user who placed the order.
	UserID UserID `json:"userId"`

	// Items lists the purchased products with their captured prices.
	Items []OrderItem `json:"items"`
	// TotalCents is the sum of all item prices in minor currency units.
	TotalCents int64 `json:"totalCents"`
	// Status is the current lifecycle state of the order.
	Status OrderStatus `json:"status"`

	// CreatedAt is the time when the order was placed.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the order was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
