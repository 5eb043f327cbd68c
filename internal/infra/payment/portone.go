// Package payment verifies payments against PortOne (iamport).
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// Access tokens are refreshed this long before PortOne says they expire.
const tokenExpiryMargin = time.Minute

// portOneResponse is the common PortOne envelope; code 0 means success.
type portOneResponse[T any] struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Response *T     `json:"response"`
}

type tokenPayload struct {
	AccessToken string `json:"access_token"`
	ExpiredAt   int64  `json:"expired_at"`
}

type paymentPayload struct {
	ImpUID      string  `json:"imp_uid"`
	MerchantUID string  `json:"merchant_uid"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount"`
}

type portOneVerifier struct {
	apiKey    string
	apiSecret string
	baseURL   string
	client    *http.Client
	logger    *slog.Logger

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// NewPortOneVerifier builds the verifier from the payment configuration.
func NewPortOneVerifier(cfg *config.Config, logger *slog.Logger) service.PaymentVerifier {
	paymentCfg := cfg.Payment
	if paymentCfg == nil {
		paymentCfg = &config.PaymentConfig{}
	}

	return &portOneVerifier{
		apiKey:    paymentCfg.APIKey,
		apiSecret: paymentCfg.APISecret,
		baseURL:   strings.TrimRight(paymentCfg.BaseURL, "/"),
		client:    &http.Client{Timeout: paymentCfg.Timeout},
		logger:    logger,
	}
}

// Configured reports whether API credentials are present.
func (v *portOneVerifier) Configured() bool {
	return v.apiKey != "" && v.apiSecret != ""
}

// FetchPayment retrieves the payment recorded under impUID.
func (v *portOneVerifier) FetchPayment(ctx context.Context, impUID string) (*service.PaymentRecord, error) {
	if !v.Configured() {
		return nil, errors.New("portone credentials are not configured")
	}

	token, err := v.token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/payments/"+url.PathEscape(impUID), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build payment request")
	}
	req.Header.Set("Authorization", token)

	var envelope portOneResponse[paymentPayload]
	status, err := v.do(req, &envelope)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		return nil, errors.Wrapf(service.ErrPaymentNotFound, "imp_uid %s", impUID)
	case status == http.StatusUnauthorized:
		// Force a fresh token next time.
		v.resetToken()

		return nil, errors.Wrap(service.ErrPaymentGatewayUnavailable, "portone rejected access token")
	case status >= http.StatusInternalServerError:
		return nil, errors.Wrapf(service.ErrPaymentGatewayUnavailable, "portone answered %d", status)
	case envelope.Code != 0 || envelope.Response == nil:
		return nil, errors.Wrapf(service.ErrPaymentNotFound, "portone: %s", envelope.Message)
	}

	return &service.PaymentRecord{
		ImpUID:      envelope.Response.ImpUID,
		MerchantUID: envelope.Response.MerchantUID,
		Status:      envelope.Response.Status,
		Amount:      envelope.Response.Amount,
	}, nil
}

func (v *portOneVerifier) token(ctx context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.accessToken != "" && time.Now().Before(v.expiresAt) {
		return v.accessToken, nil
	}

	body, err := json.Marshal(map[string]string{
		"imp_key":    v.apiKey,
		"imp_secret": v.apiSecret,
	})
	if err != nil {
		return "", errors.Wrap(err, "encode token request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/users/getToken", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build token request")
	}
	req.Header.Set("Content-Type", "application/json")

	var envelope portOneResponse[tokenPayload]
	status, err := v.do(req, &envelope)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK || envelope.Code != 0 || envelope.Response == nil || envelope.Response.AccessToken == "" {
		return "", errors.Wrapf(service.ErrPaymentGatewayUnavailable, "portone token request failed (%d): %s", status, envelope.Message)
	}

	v.accessToken = envelope.Response.AccessToken
	v.expiresAt = time.Now().Add(tokenExpiryMargin)
	if envelope.Response.ExpiredAt > 0 {
		v.expiresAt = time.Unix(envelope.Response.ExpiredAt, 0).Add(-tokenExpiryMargin)
	}

	return v.accessToken, nil
}

func (v *portOneVerifier) resetToken() {
	v.mu.Lock()
	v.accessToken = ""
	v.mu.Unlock()
}

// do sends req and decodes the JSON body into out. Transport failures map to
// ErrPaymentGatewayUnavailable; the HTTP status is returned for the caller to judge.
func (v *portOneVerifier) do(req *http.Request, out any) (int, error) {
	resp, err := v.client.Do(req)
	if err != nil {
		return 0, errors.Wrapf(service.ErrPaymentGatewayUnavailable, "portone request: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, errors.Wrapf(service.ErrPaymentGatewayUnavailable, "read portone response: %v", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil && resp.StatusCode < http.StatusInternalServerError {
			v.logger.Warn("Undecodable PortOne response",
				slog.Int("status", resp.StatusCode),
				slog.String("path", req.URL.Path),
			)

			return 0, errors.Wrapf(service.ErrPaymentGatewayUnavailable, "decode portone response: %v", err)
		}
	}

	return resp.StatusCode, nil
}
