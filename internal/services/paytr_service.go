package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultPayTRTokenURL = "https://www.paytr.com/odeme/api/get-token"

// PayTRService builds signed payment-initiation requests for the hosted
// payment page and verifies signed gateway callbacks.
type PayTRService struct {
	merchantID   string
	merchantKey  string
	merchantSalt string
	testMode     bool

	tokenURL string
	client   *http.Client
}

// NewPayTRService constructs PayTRService.
func NewPayTRService(merchantID, merchantKey, merchantSalt string, testMode bool) *PayTRService {
	return &PayTRService{
		merchantID:   merchantID,
		merchantKey:  merchantKey,
		merchantSalt: merchantSalt,
		testMode:     testMode,
		tokenURL:     defaultPayTRTokenURL,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// PaymentRequest describes an outbound payment initiation.
type PaymentRequest struct {
	OrderNumber string
	Email       string
	ClientIP    string
	Total       float64 // major currency units
	ProductName string
	Quantity    int
	UnitPrice   float64
	CallbackOK  string // user redirect on success
	CallbackErr string // user redirect on failure
}

// GatewayError is a rejection reported by the payment gateway itself.
type GatewayError struct {
	Reason string
}

func (e *GatewayError) Error() string {
	return "payment gateway rejected request: " + e.Reason
}

type tokenResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

// InitPayment requests a hosted-page token from the gateway. The request is
// signed with an HMAC over the concatenated merchant fields plus the salt.
func (s *PayTRService) InitPayment(ctx context.Context, req PaymentRequest) (string, error) {
	amount := minorUnits(req.Total)
	basket, err := encodeBasket(req.ProductName, req.UnitPrice, req.Quantity)
	if err != nil {
		return "", err
	}

	const (
		noInstallment  = "0"
		maxInstallment = "0"
		currency       = "TL"
	)
	testMode := "0"
	if s.testMode {
		testMode = "1"
	}

	hashStr := s.merchantID + req.ClientIP + req.OrderNumber + req.Email +
		amount + basket + noInstallment + maxInstallment + currency + testMode
	token := s.sign(hashStr + s.merchantSalt)

	form := url.Values{}
	form.Set("merchant_id", s.merchantID)
	form.Set("user_ip", req.ClientIP)
	form.Set("merchant_oid", req.OrderNumber)
	form.Set("email", req.Email)
	form.Set("payment_amount", amount)
	form.Set("user_basket", basket)
	form.Set("no_installment", noInstallment)
	form.Set("max_installment", maxInstallment)
	form.Set("currency", currency)
	form.Set("test_mode", testMode)
	form.Set("paytr_token", token)
	form.Set("merchant_ok_url", req.CallbackOK)
	form.Set("merchant_fail_url", req.CallbackErr)
	form.Set("timeout_limit", "30")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("invalid gateway response: %w", err)
	}
	if parsed.Status != "success" {
		return "", &GatewayError{Reason: parsed.Reason}
	}

	return parsed.Token, nil
}

// CallbackParams are the fields of an inbound gateway callback.
type CallbackParams struct {
	OrderNumber string // merchant_oid
	Status      string
	TotalAmount string // minor units, as posted
	Hash        string
}

// VerifyCallback recomputes the callback hash and compares it in constant
// time. A mismatched callback must not be trusted at all.
func (s *PayTRService) VerifyCallback(p CallbackParams) bool {
	expected := s.sign(p.OrderNumber + s.merchantSalt + p.Status + p.TotalAmount)
	return hmac.Equal([]byte(expected), []byte(p.Hash))
}

// Succeeded reports whether a verified callback carries a successful payment.
func (p CallbackParams) Succeeded() bool {
	return p.Status == "success"
}

func (s *PayTRService) sign(payload string) string {
	mac := hmac.New(sha256.New, []byte(s.merchantKey))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func minorUnits(total float64) string {
	return strconv.FormatInt(int64(math.Round(total*100)), 10)
}

func encodeBasket(name string, unitPrice float64, quantity int) (string, error) {
	basket := [][]interface{}{{name, fmt.Sprintf("%.2f", unitPrice), quantity}}
	raw, err := json.Marshal(basket)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
