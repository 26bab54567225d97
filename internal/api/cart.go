package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/franvergara/pepestore/internal/domain/cart"
	"github.com/franvergara/pepestore/internal/domain/product"
)

type addCartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type cartLineResponse struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   productResponse `json:"product"`
}

type cartResponse struct {
	Items     []cartLineResponse `json:"items"`
	Total     int64              `json:"total"`
	ItemCount int                `json:"itemCount"`
}

func toCartResponse(c *cart.Cart) cartResponse {
	items := make([]cartLineResponse, len(c.Lines))
	for i, l := range c.Lines {
		items[i] = cartLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Product:   toProductResponse(l.Product),
		}
	}
	return cartResponse{
		Items:     items,
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

// GetCart returns the session's cart with its derived total. Sessions that
// never added anything get an empty cart, not an error.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.carts.Get(r.Context(), sessionID(r))
	if err != nil {
		internalError(w, r, errors.Wrap(err, "get cart"))
		return
	}
	writeJSON(w, r, http.StatusOK, toCartResponse(c))
}

// AddCartItem adds a product to the session's cart, merging quantities for a
// product that is already there.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.carts.AddItem(r.Context(), sessionID(r), req.ProductID, req.Quantity)
	if err != nil {
		var iqErr *cart.InvalidQuantityError
		switch {
		case errors.As(err, &iqErr):
			writeError(w, r, http.StatusUnprocessableEntity, iqErr.Error())
		case errors.Is(err, product.ErrNotFound):
			writeError(w, r, http.StatusNotFound, "product not found")
		default:
			internalError(w, r, errors.Wrap(err, "add cart item"))
		}
		return
	}
	writeJSON(w, r, http.StatusOK, toCartResponse(c))
}

// RemoveCartItem removes a product line from the session's cart. Removing a
// product that is not in the cart still returns 204.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.carts.RemoveItem(r.Context(), sessionID(r), id); err != nil {
		internalError(w, r, errors.Wrap(err, "remove cart item"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context(), sessionID(r)); err != nil {
		internalError(w, r, errors.Wrap(err, "clear cart"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
