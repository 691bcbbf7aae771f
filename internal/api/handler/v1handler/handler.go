// Package v1handler implements the version 1 HTTP API on top of the account,
// catalog and order services. Handlers translate HTTP requests into service
// calls and map semantic errors onto status codes.
package v1handler

import (
	"net/http"

	"accounts/internal/account"
	"accounts/internal/catalog"
	"accounts/internal/order"
)

// Version is the service version reported by the health endpoint. It is
// stamped at build time via -ldflags.
var Version = "dev" //nolint: gochecknoglobals

// Deps bundles the services the handlers delegate to, plus composition-time
// metadata surfaced on the health endpoint.
type Deps struct {
	Accounts account.Accounts
	Catalog  catalog.Catalog
	Orders   order.Orders

	Environment string
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts all v1 routes on the given mux. Patterns use the
// method-aware syntax, so unmatched methods get 405 from the mux itself.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/auth/register", h.RegisterUser)
	mux.HandleFunc("POST /v1/auth/login", h.Login)

	mux.HandleFunc("GET /v1/users/me", h.requireUser(h.CurrentUser))
	mux.HandleFunc("GET /v1/users/{id}", h.requireUser(h.GetUser))
	mux.HandleFunc("PATCH /v1/users/{id}", h.requireUser(h.UpdateUser))
	mux.HandleFunc("DELETE /v1/users/{id}", h.requireUser(h.DeleteUser))
	mux.HandleFunc("GET /v1/users", h.requireSuperuser(h.ListUsers))

	mux.HandleFunc("GET /v1/products", h.requireUser(h.ListProducts))
	mux.HandleFunc("GET /v1/products/{id}", h.requireUser(h.GetProduct))
	mux.HandleFunc("POST /v1/products", h.requireSuperuser(h.CreateProduct))
	mux.HandleFunc("PATCH /v1/products/{id}", h.requireSuperuser(h.UpdateProduct))
	mux.HandleFunc("DELETE /v1/products/{id}", h.requireSuperuser(h.DeleteProduct))

	mux.HandleFunc("POST /v1/orders", h.requireUser(h.CreateOrder))
	mux.HandleFunc("GET /v1/orders", h.requireUser(h.ListOrders))
	mux.HandleFunc("GET /v1/orders/{id}", h.requireUser(h.GetOrder))
}

// Health reports liveness. It carries no dependency checks so it stays cheap
// enough for aggressive probe intervals.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"version":     Version,
		"environment": h.deps.Environment,
	})
}
