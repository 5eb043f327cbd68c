package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"payment": map[string]any{
			"apiKey":    "",
			"apiSecret": "",
			"failOpen":  false,
		},
		"order": map[string]any{
			"maxNumberRetries": 3,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PAYMENT_APIKEY", want: "payment.apiKey"},
		{envKey: "PAYMENT_FAILOPEN", want: "payment.failOpen"},
		{envKey: "ORDER_MAXNUMBERRETRIES", want: "order.maxNumberRetries"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 3, cfg.Order.MaxNumberRetries)
	assert.True(t, cfg.Order.DecrementStock)
	assert.Equal(t, "https://api.iamport.kr", cfg.Payment.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Payment.Timeout)
	assert.Nil(t, cfg.Redis)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Order: &OrderConfig{MaxNumberRetries: 5, DecrementStock: false},
		Redis: &RedisConfig{Addr: "localhost:6379"},
	}
	applyDefaults(cfg)

	assert.Equal(t, 5, cfg.Order.MaxNumberRetries)
	assert.False(t, cfg.Order.DecrementStock)
	assert.Equal(t, defaultProductCacheTTL, cfg.Redis.TTL)
}
