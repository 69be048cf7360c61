package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantgoods/storefront/internal/config"
	"github.com/verdantgoods/storefront/internal/payment"
)

func newClient(baseURL string) *payment.Client {
	return payment.NewClient(config.Stripe{
		SecretKey: "sk_test_123",
		BaseURL:   baseURL,
		Currency:  "gbp",
		Timeout:   time.Second,
	})
}

func TestClient_CreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "5299", r.PostForm.Get("amount"))
		assert.Equal(t, "gbp", r.PostForm.Get("currency"))
		assert.Equal(t, "7", r.PostForm.Get("metadata[cart_id]"))
		assert.Equal(t, "42", r.PostForm.Get("metadata[user_id]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "pi_123",
			"client_secret": "pi_123_secret",
			"amount": 5299,
			"currency": "gbp",
			"status": "requires_payment_method"
		}`))
	}))
	defer srv.Close()

	intent, err := newClient(srv.URL).CreateIntent(context.Background(), payment.CreateIntentParams{
		Amount:   5299,
		Currency: "gbp",
		CartID:   7,
		UserID:   42,
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	assert.Equal(t, int64(5299), intent.Amount)
	assert.False(t, intent.Succeeded())
}

func TestClient_RetrieveIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "pi_123", "amount": 5299, "currency": "gbp", "status": "succeeded"}`))
	}))
	defer srv.Close()

	intent, err := newClient(srv.URL).RetrieveIntent(context.Background(), "pi_123")

	require.NoError(t, err)
	assert.True(t, intent.Succeeded())
	assert.Equal(t, int64(5299), intent.Amount)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"type": "card_error", "code": "card_declined", "message": "Your card was declined."}}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).RetrieveIntent(context.Background(), "pi_bad")

	require.ErrorIs(t, err, payment.ErrProvider)
	assert.Contains(t, err.Error(), "card_error")
	assert.Contains(t, err.Error(), "declined")
}
