package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPaise(t *testing.T) {
	tests := []struct {
		rupees float64
		paise  int
	}{
		{15000, 1500000},
		{0.01, 1},
		{19999.99, 1999999}, // float repr sits just under; truncation would drop a paisa
		{1234.56, 123456},
		{0.1, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.paise, toPaise(tt.rupees), "%.2f rupees", tt.rupees)
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	svc := NewRazorpayService("key", "secret", "whsecret", nil, nil)
	body := []byte(`{"event":"payment.captured"}`)

	mac := hmac.New(sha256.New, []byte("whsecret"))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, svc.VerifyWebhookSignature(body, valid))
	assert.False(t, svc.VerifyWebhookSignature(body, "deadbeef"))
	assert.False(t, svc.VerifyWebhookSignature([]byte("tampered"), valid))
}
