package v1handler

import (
	"net/http"

	"accounts/pkg/domain"

	"github.com/google/uuid"
)

type createOrderRequest struct {
	ProductIDs []uuid.UUID `json:"productIds"`
}

// CreateOrder places an order for the authenticated user.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	productIDs := make([]domain.ProductID, 0, len(req.ProductIDs))
	for _, id := range req.ProductIDs {
		productIDs = append(productIDs, domain.ProductID(id))
	}

	user := GetUserFromContext(r.Context())
	ord, err := h.deps.Orders.Create(r.Context(), user.ID, productIDs)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, ord)
}

// GetOrder returns one of the authenticated user's orders by ID.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	user := GetUserFromContext(r.Context())
	ord, err := h.deps.Orders.Order(r.Context(), user.ID, domain.OrderID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, ord)
}

// ListOrders returns a paginated list of the authenticated user's orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, pageSize, offset, limit := pageParams(r)

	user := GetUserFromContext(r.Context())
	orders, total, err := h.deps.Orders.UserOrders(r.Context(), user.ID, offset, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, NewPage(orders, total, page, pageSize))
}
