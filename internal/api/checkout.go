package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-faster/errors"

	"github.com/franvergara/pepestore/internal/domain/order"
	"github.com/franvergara/pepestore/internal/payment"
)

type checkoutRequest struct {
	Items []order.Item `json:"items"`
	Total int64        `json:"total"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
}

type checkoutResponse struct {
	OrderID          string `json:"orderId"`
	SessionToken     string `json:"sessionToken"`
	PaymentSessionID string `json:"paymentSessionId"`
}

type orderResponse struct {
	OrderID          string       `json:"orderId"`
	Email            string       `json:"email"`
	Total            int64        `json:"total"`
	Items            []order.Item `json:"items"`
	PaymentSessionID string       `json:"paymentSessionId"`
	Status           string       `json:"status"`
	CreatedAt        time.Time    `json:"createdAt"`
}

// Checkout validates the submitted order, opens a payment session, records the
// pending order, and returns what the widget needs.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.checkout.Checkout(r.Context(), order.CheckoutRequest{
		Items:         req.Items,
		Total:         req.Total,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
	})
	if err != nil {
		h.writeCheckoutError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, checkoutResponse{
		OrderID:          result.OrderID,
		SessionToken:     result.SessionToken,
		PaymentSessionID: result.PaymentSessionID,
	})
}

// writeCheckoutError maps checkout failures to HTTP statuses.
func (h *Handler) writeCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		iqErr  *order.InvalidQuantityError
		pnfErr *order.ProductNotFoundError
		tmErr  *order.TotalMismatchError
		dupErr *order.DuplicateIDError
		gwErr  *payment.Error
	)
	switch {
	case errors.Is(err, order.ErrEmptyEmail),
		errors.Is(err, order.ErrNegativeTotal),
		errors.Is(err, order.ErrEmptyItems):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &iqErr):
		writeError(w, r, http.StatusUnprocessableEntity, iqErr.Error())
	case errors.As(err, &pnfErr):
		writeError(w, r, http.StatusUnprocessableEntity, pnfErr.Error())
	case errors.As(err, &tmErr):
		writeError(w, r, http.StatusUnprocessableEntity, tmErr.Error())
	case errors.As(err, &dupErr):
		writeError(w, r, http.StatusConflict, dupErr.Error())
	case errors.As(err, &gwErr):
		writeError(w, r, http.StatusBadGateway, "payment session could not be created")
	default:
		internalError(w, r, errors.Wrap(err, "checkout"))
	}
}

// GetOrder returns a recorded order by id.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "order not found")
			return
		}
		internalError(w, r, errors.Wrap(err, "get order"))
		return
	}

	writeJSON(w, r, http.StatusOK, orderResponse{
		OrderID:          o.ID,
		Email:            o.CustomerEmail,
		Total:            o.Total,
		Items:            o.Items,
		PaymentSessionID: o.PaymentSessionID,
		Status:           string(o.Status),
		CreatedAt:        o.CreatedAt,
	})
}
