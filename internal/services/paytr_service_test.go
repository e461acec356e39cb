package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hmacBase64(key, payload string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyCallback(t *testing.T) {
	svc := NewPayTRService("123456", "merchant-key", "merchant-salt", true)

	params := CallbackParams{
		OrderNumber: "OX000042",
		Status:      "success",
		TotalAmount: "10000",
	}
	params.Hash = hmacBase64("merchant-key", "OX000042"+"merchant-salt"+"success"+"10000")

	assert.True(t, svc.VerifyCallback(params))
	assert.True(t, params.Succeeded())

	// Any single-field mutation must fail verification.
	mutated := params
	mutated.OrderNumber = "OX000043"
	assert.False(t, svc.VerifyCallback(mutated))

	mutated = params
	mutated.Status = "failed"
	assert.False(t, svc.VerifyCallback(mutated))

	mutated = params
	mutated.TotalAmount = "10001"
	assert.False(t, svc.VerifyCallback(mutated))

	mutated = params
	mutated.Hash = params.Hash[:len(params.Hash)-2] + "=="
	assert.False(t, svc.VerifyCallback(mutated))
}

func TestVerifyCallbackFailedStatus(t *testing.T) {
	svc := NewPayTRService("123456", "merchant-key", "merchant-salt", true)

	params := CallbackParams{
		OrderNumber: "OX000042",
		Status:      "failed",
		TotalAmount: "10000",
	}
	params.Hash = hmacBase64("merchant-key", "OX000042"+"merchant-salt"+"failed"+"10000")

	// A failed payment still verifies; only the status differs.
	assert.True(t, svc.VerifyCallback(params))
	assert.False(t, params.Succeeded())
}

func TestInitPayment(t *testing.T) {
	var posted map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		posted = map[string]string{}
		for key := range r.Form {
			posted[key] = r.Form.Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","token":"iframe-token-1"}`))
	}))
	defer server.Close()

	svc := NewPayTRService("123456", "merchant-key", "merchant-salt", true)
	svc.tokenURL = server.URL

	token, err := svc.InitPayment(context.Background(), PaymentRequest{
		OrderNumber: "OX000001",
		Email:       "ayse@example.com",
		ClientIP:    "203.0.113.7",
		Total:       649.70,
		ProductName: "Oxiva Magnetic Nose Band",
		Quantity:    2,
		UnitPrice:   299.90,
		CallbackOK:  "https://oxiva.co/odeme/basarili",
		CallbackErr: "https://oxiva.co/odeme/hata",
	})
	require.NoError(t, err)
	assert.Equal(t, "iframe-token-1", token)

	assert.Equal(t, "123456", posted["merchant_id"])
	assert.Equal(t, "OX000001", posted["merchant_oid"])
	assert.Equal(t, "64970", posted["payment_amount"], "amount in minor units")
	assert.Equal(t, "1", posted["test_mode"])
	assert.Equal(t, "TL", posted["currency"])

	hashStr := "123456" + "203.0.113.7" + "OX000001" + "ayse@example.com" +
		"64970" + posted["user_basket"] + "0" + "0" + "TL" + "1"
	assert.Equal(t, hmacBase64("merchant-key", hashStr+"merchant-salt"), posted["paytr_token"])
}

func TestInitPaymentGatewayRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"failed","reason":"paytr_token invalid"}`))
	}))
	defer server.Close()

	svc := NewPayTRService("123456", "merchant-key", "merchant-salt", false)
	svc.tokenURL = server.URL

	_, err := svc.InitPayment(context.Background(), PaymentRequest{
		OrderNumber: "OX000001",
		Email:       "ayse@example.com",
		ClientIP:    "203.0.113.7",
		Total:       100,
		ProductName: "Oxiva Magnetic Nose Band",
		Quantity:    1,
		UnitPrice:   100,
	})

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "paytr_token invalid", gwErr.Reason)
}
