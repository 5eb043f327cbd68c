package payment

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePortOne struct {
	tokenCalls atomic.Int32
	payments   map[string]paymentPayload
	failWith   int
}

func (f *fakePortOne) handler(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/getToken", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["imp_key"] != "key" || body["imp_secret"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": -1, "message": "invalid credentials"})

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"response": map[string]any{
				"access_token": "tok",
				"expired_at":   time.Now().Add(30 * time.Minute).Unix(),
			},
		})
	})
	mux.HandleFunc("GET /payments/{impUID}", func(w http.ResponseWriter, r *http.Request) {
		if f.failWith != 0 {
			w.WriteHeader(f.failWith)

			return
		}
		assert.Equal(t, "tok", r.Header.Get("Authorization"))

		payment, ok := f.payments[r.PathValue("impUID")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": 1, "message": "존재하지 않는 결제정보입니다."})

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"code": 0, "response": payment})
	})

	return mux
}

func newTestVerifier(baseURL, key, secret string) service.PaymentVerifier {
	return NewPortOneVerifier(&config.Config{
		Payment: &config.PaymentConfig{
			APIKey:    key,
			APISecret: secret,
			BaseURL:   baseURL,
			Timeout:   2 * time.Second,
		},
	}, slog.Default())
}

func TestPortOneVerifier_FetchPayment(t *testing.T) {
	fake := &fakePortOne{payments: map[string]paymentPayload{
		"imp_123": {ImpUID: "imp_123", MerchantUID: "mid_1", Status: "paid", Amount: 25000},
	}}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	verifier := newTestVerifier(srv.URL, "key", "secret")
	require.True(t, verifier.Configured())

	record, err := verifier.FetchPayment(t.Context(), "imp_123")
	require.NoError(t, err)
	assert.Equal(t, "paid", record.Status)
	assert.InDelta(t, 25000, record.Amount, 0)
	assert.Equal(t, "mid_1", record.MerchantUID)

	// The access token is reused until it nears expiry.
	_, err = verifier.FetchPayment(t.Context(), "imp_123")
	require.NoError(t, err)
	assert.Equal(t, int32(1), fake.tokenCalls.Load())
}

func TestPortOneVerifier_UnknownPayment(t *testing.T) {
	fake := &fakePortOne{payments: map[string]paymentPayload{}}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	_, err := newTestVerifier(srv.URL, "key", "secret").FetchPayment(t.Context(), "imp_missing")
	assert.ErrorIs(t, err, service.ErrPaymentNotFound)
}

func TestPortOneVerifier_ServerError(t *testing.T) {
	fake := &fakePortOne{failWith: http.StatusBadGateway}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	_, err := newTestVerifier(srv.URL, "key", "secret").FetchPayment(t.Context(), "imp_123")
	assert.ErrorIs(t, err, service.ErrPaymentGatewayUnavailable)
}

func TestPortOneVerifier_BadCredentials(t *testing.T) {
	fake := &fakePortOne{}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	_, err := newTestVerifier(srv.URL, "key", "wrong").FetchPayment(t.Context(), "imp_123")
	assert.ErrorIs(t, err, service.ErrPaymentGatewayUnavailable)
}

func TestPortOneVerifier_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	_, err := newTestVerifier(baseURL, "key", "secret").FetchPayment(t.Context(), "imp_123")
	assert.ErrorIs(t, err, service.ErrPaymentGatewayUnavailable)
}

func TestPortOneVerifier_NotConfigured(t *testing.T) {
	verifier := newTestVerifier("http://127.0.0.1:1", "", "")

	assert.False(t, verifier.Configured())
	_, err := verifier.FetchPayment(t.Context(), "imp_123")
	assert.Error(t, err)
}
