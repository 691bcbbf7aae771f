package v1handler

import (
	"net/http"

	"accounts/internal/catalog"
	"accounts/pkg/domain"
)

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
}

type updateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"priceCents"`
}

// ListProducts returns a paginated list of catalog products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, pageSize, offset, limit := pageParams(r)

	products, total, err := h.deps.Catalog.Products(r.Context(), offset, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, NewPage(products, total, page, pageSize))
}

// GetProduct returns a product by ID.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	product, err := h.deps.Catalog.Product(r.Context(), domain.ProductID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, product)
}

// CreateProduct adds a product to the catalog. Superuser only.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	product, err := h.deps.Catalog.Create(r.Context(), req.Name, req.Description, req.PriceCents)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct applies a partial update to a product. Superuser only.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	product, err := h.deps.Catalog.Update(r.Context(), domain.ProductID(id), catalog.ProductUpdates{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct soft-deletes a product. Superuser only. Existing orders keep
// the price captured at purchase time.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Catalog.Delete(r.Context(), domain.ProductID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
