package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductID uniquely identifies a catalog product.
type ProductID uuid.UUID

func (id ProductID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in canonical UUID form.
func (id ProductID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a canonical UUID string.
func (id *ProductID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// Product is a purchasable catalog entry. Prices are integer minor units
// (cents) to keep order totals exact.
type Product struct {
	// ID is the unique identifier of the product.
	ID ProductID `json:"id"`

	// Name is the product's display name.
	Name string `json:"name"`
	// Description is free-form text describing the product.
	Description string `json:"description"`
	// PriceCents is the current price in minor currency units.
	PriceCents int64 `json:"priceCents"`

	// CreatedAt is the time when the product was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the product was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the product was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
