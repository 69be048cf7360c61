// Package payment talks to the Stripe payment-intents API. Only the two
// calls checkout needs are implemented: creating an intent for an exact
// minor-unit amount and retrieving the authoritative state of one.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/verdantgoods/storefront/internal/config"
)

const (
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusRequiresConfirmation  = "requires_confirmation"
	StatusProcessing            = "processing"
	StatusSucceeded             = "succeeded"
	StatusCanceled              = "canceled"
)

// Intent is the provider-side handle for an authorized charge. Amount is
// in minor units (pence).
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

func (i Intent) Succeeded() bool {
	return i.Status == StatusSucceeded
}

// ErrProvider marks any failure talking to the provider, letting callers
// report a gateway error instead of an internal one.
var ErrProvider = errors.New("payment provider error")

type CreateIntentParams struct {
	Amount   int64
	Currency string

	// Traceability metadata attached to the intent.
	CartID int64
	UserID int64
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewClient(cfg config.Stripe) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
	}
}

func (c *Client) CreateIntent(ctx context.Context, params CreateIntentParams) (Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.Amount, 10))
	form.Set("currency", params.Currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	form.Set("metadata[cart_id]", strconv.FormatInt(params.CartID, 10))
	if params.UserID != 0 {
		form.Set("metadata[user_id]", strconv.FormatInt(params.UserID, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return Intent{}, fmt.Errorf("failed to build create intent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

func (c *Client) RetrieveIntent(ctx context.Context, id string) (Intent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/payment_intents/"+url.PathEscape(id), nil)
	if err != nil {
		return Intent{}, fmt.Errorf("failed to build retrieve intent request: %w", err)
	}

	return c.do(req)
}

type apiError struct {
	Err struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(req *http.Request) (Intent, error) {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: request failed: %v", ErrProvider, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Err.Message != "" {
			return Intent{}, fmt.Errorf("%w (%s): %s", ErrProvider, apiErr.Err.Type, apiErr.Err.Message)
		}
		return Intent{}, fmt.Errorf("%w: status %d", ErrProvider, res.StatusCode)
	}

	var intent Intent
	if err := json.NewDecoder(res.Body).Decode(&intent); err != nil {
		return Intent{}, fmt.Errorf("failed to decode payment intent: %w", err)
	}
	return intent, nil
}
