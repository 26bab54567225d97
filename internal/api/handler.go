// Package api is the HTTP surface over the store's domain components. It only
// translates between JSON and domain types; all rules live in the domain
// packages.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/franvergara/pepestore/internal/domain/cart"
	"github.com/franvergara/pepestore/internal/domain/order"
	"github.com/franvergara/pepestore/internal/domain/product"
)

// defaultSession is used when a client sends no X-Session-ID header. It keeps
// header-less clients (like the bundled storefront) on one shared cart.
const defaultSession = "demo_session"

// Handler exposes the catalog, cart, and checkout operations over HTTP.
type Handler struct {
	products product.Repository
	carts    cart.Store
	checkout *order.Service
	orders   order.Ledger
}

// NewHandler constructs a Handler with the required domain dependencies.
func NewHandler(
	products product.Repository,
	carts cart.Store,
	checkout *order.Service,
	orders order.Ledger,
) *Handler {
	return &Handler{
		products: products,
		carts:    carts,
		checkout: checkout,
		orders:   orders,
	}
}

// AddRoutes registers all API routes on mux.
func (h *Handler) AddRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /api/cart", h.GetCart)
	mux.HandleFunc("POST /api/cart/items", h.AddCartItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.RemoveCartItem)
	mux.HandleFunc("DELETE /api/cart", h.ClearCart)
	mux.HandleFunc("POST /api/checkout", h.Checkout)
	mux.HandleFunc("GET /api/orders/{id}", h.GetOrder)
}

// sessionID resolves the cart session for a request.
func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return defaultSession
}

// errorResponse is the JSON body for all error statuses.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v with the given status. Encoding failures are logged;
// the status line is already on the wire, so nothing else can be done.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zctx.From(r.Context()).Warn("Encode response", zap.Error(err))
	}
}

// writeError writes the standard error body.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, errorResponse{Code: status, Message: message})
}

// internalError logs err and responds with a generic 500. The error itself is
// never sent to the client.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	zctx.From(r.Context()).Error("Request failed", zap.Error(err))
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}
