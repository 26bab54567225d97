// Package payment contains the Fintoc payment gateway client. Fintoc opens
// hosted checkout sessions; the store only needs session creation, everything
// after that happens in the hosted widget.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-faster/errors"

	"github.com/franvergara/pepestore/internal/domain/order"
)

const defaultBaseURL = "https://api.fintoc.com"

var _ order.PaymentGateway = (*Client)(nil)

// Error is returned for any gateway failure: transport, auth, or a rejected
// session request. StatusCode is zero when the request never reached the API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("payment gateway: %s", e.Message)
	}
	return fmt.Sprintf("payment gateway: %s (status %d)", e.Message, e.StatusCode)
}

// Config holds the settings for the Fintoc client.
type Config struct {
	// SecretKey authenticates requests. Sent as the Authorization header,
	// which is Fintoc's scheme (no Bearer prefix).
	SecretKey string
	// BaseURL overrides the production API endpoint, mainly for tests.
	BaseURL string
	// Timeout bounds each API call. Defaults to 30s.
	Timeout time.Duration
}

// Client is an HTTP client for the Fintoc checkout sessions API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

// NewClient creates a Fintoc client from cfg.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		secretKey:  cfg.SecretKey,
	}
}

type createSessionRequest struct {
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email"`
}

type createSessionResponse struct {
	ID           string `json:"id"`
	SessionToken string `json:"session_token"`
}

type apiErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateSession opens a hosted checkout session and returns its id and the
// widget token. Any failure is reported as *Error.
func (c *Client) CreateSession(ctx context.Context, amount int64, currency, customerEmail string) (*order.PaymentSession, error) {
	body, err := json.Marshal(createSessionRequest{
		Amount:        amount,
		Currency:      currency,
		CustomerEmail: customerEmail,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal session request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout_sessions", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build session request")
	}
	req.Header.Set("Authorization", c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    decodeAPIError(resp),
		}
	}

	var out createSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("decode session response: %v", err),
		}
	}

	return &order.PaymentSession{
		ID:    out.ID,
		Token: out.SessionToken,
	}, nil
}

// decodeAPIError extracts the error message from a non-2xx response body,
// falling back to the HTTP status text.
func decodeAPIError(resp *http.Response) string {
	var apiErr apiErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return http.StatusText(resp.StatusCode)
}
