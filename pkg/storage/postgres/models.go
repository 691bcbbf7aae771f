package postgres

import (
	"database/sql"
	"time"

	"accounts/pkg/domain"

	"github.com/google/uuid"
)

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Email          string `db:"email"`
	HashedPassword string `db:"hashed_password"`
	FullName       string `db:"full_name"`

	IsActive    bool `db:"is_active"`
	IsSuperuser bool `db:"is_superuser"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:             domain.UserID(p.ID),
		Email:          p.Email,
		HashedPassword: p.HashedPassword,
		FullName:       p.FullName,
		IsActive:       p.IsActive,
		IsSuperuser:    p.IsSuperuser,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
		DeletedAt:      p.DeletedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:             uuid.UUID(user.ID),
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
		FullName:       user.FullName,
		IsActive:       user.IsActive,
		IsSuperuser:    user.IsSuperuser,
		CreatedAt:      user.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  user.UpdatedAt,
			Valid: !user.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  user.DeletedAt,
			Valid: !user.DeletedAt.IsZero(),
		},
	}
}

func pgUsersToDomain(users []PgUser) []domain.User {
	out := make([]domain.User, 0, len(users))
	for i := range users {
		out = append(out, *users[i].ToDomain())
	}

	return out
}

type PgProduct struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name        string `db:"name"`
	Description string `db:"description"`
	PriceCents  int64  `db:"price_cents"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgProduct) ToDomain() *domain.Product {
	return &domain.Product{
		ID:          domain.ProductID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgProduct) FromDomain(product domain.Product) {
	*p = PgProduct{
		ID:          uuid.UUID(product.ID),
		Name:        product.Name,
		Description: product.Description,
		PriceCents:  product.PriceCents,
		CreatedAt:   product.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  product.UpdatedAt,
			Valid: !product.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  product.DeletedAt,
			Valid: !product.DeletedAt.IsZero(),
		},
	}
}

func domainProductsToPg(products []domain.Product) []PgProduct {
	out := make([]PgProduct, len(products))
	for i := range out {
		out[i].FromDomain(products[i])
	}

	return out
}

func pgProductsToDomain(products []PgProduct) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for i := range products {
		out = append(out, *products[i].ToDomain())
	}

	return out
}

type PgOrder struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	TotalCents int64  `db:"total_cents"`
	Status     string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

type PgOrderItem struct {
	OrderID    uuid.UUID `db:"order_id"`
	ProductID  uuid.UUID `db:"product_id"`
	PriceCents int64     `db:"price_cents"`
}

// ToDomain converts the order row together with its item rows.
func (p *PgOrder) ToDomain(items []PgOrderItem) *domain.Order {
	out := &domain.Order{
		ID:         domain.OrderID(p.ID),
		UserID:     domain.UserID(p.UserID),
		TotalCents: p.TotalCents,
		Status:     domain.OrderStatus(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
	}
	for _, item := range items {
		out.Items = append(out.Items, domain.OrderItem{
			ProductID:  domain.ProductID(item.ProductID),
			PriceCents: item.PriceCents,
		})
	}

	return out
}

func (p *PgOrder) FromDomain(order domain.Order) {
	*p = PgOrder{
		ID:         uuid.UUID(order.ID),
		UserID:     uuid.UUID(order.UserID),
		TotalCents: order.TotalCents,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  order.UpdatedAt,
			Valid: !order.UpdatedAt.IsZero(),
		},
	}
}
