package handlers_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gorkemserezli/oxiva-sub001/internal/config"
	"github.com/gorkemserezli/oxiva-sub001/internal/models"
)

func callbackHash(cfg *config.Config, orderNumber, status, totalAmount string) string {
	mac := hmac.New(sha256.New, []byte(cfg.PayTRMerchantKey))
	mac.Write([]byte(orderNumber + cfg.PayTRSalt + status + totalAmount))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func placeOrder(t *testing.T, app *fiber.App, db *gorm.DB) models.Order {
	t.Helper()

	product := seedActiveProduct(t, db, 10)
	req := jsonRequest(t, http.MethodPost, "/api/checkout", checkoutPayload(product.ID.String(), 1))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order models.Order
	require.NoError(t, db.First(&order, "order_number = ?", "OX000001").Error)
	return order
}

func postCallback(t *testing.T, app *fiber.App, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/payment/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestPaymentCallbackSuccess(t *testing.T) {
	app, db, cfg := newTestApp(t)
	order := placeOrder(t, app, db)

	totalAmount := strconv.FormatInt(int64(order.Total*100), 10)
	form := url.Values{}
	form.Set("merchant_oid", order.OrderNumber)
	form.Set("status", "success")
	form.Set("total_amount", totalAmount)
	form.Set("hash", callbackHash(cfg, order.OrderNumber, "success", totalAmount))

	resp := postCallback(t, app, form)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body), "gateway requires the literal acknowledgment")

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.PaymentStatusCompleted, stored.PaymentStatus)
	assert.Equal(t, models.OrderStatusConfirmed, stored.Status)

	// Gateway retries are acknowledged without re-applying anything.
	resp = postCallback(t, app, form)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPaymentCallbackFailureStatus(t *testing.T) {
	app, db, cfg := newTestApp(t)
	order := placeOrder(t, app, db)

	totalAmount := strconv.FormatInt(int64(order.Total*100), 10)
	form := url.Values{}
	form.Set("merchant_oid", order.OrderNumber)
	form.Set("status", "failed")
	form.Set("total_amount", totalAmount)
	form.Set("hash", callbackHash(cfg, order.OrderNumber, "failed", totalAmount))

	resp := postCallback(t, app, form)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.PaymentStatusFailed, stored.PaymentStatus)
	assert.Equal(t, models.OrderStatusNew, stored.Status)
}

func TestPaymentCallbackBadHash(t *testing.T) {
	app, db, cfg := newTestApp(t)
	order := placeOrder(t, app, db)

	totalAmount := strconv.FormatInt(int64(order.Total*100), 10)
	form := url.Values{}
	form.Set("merchant_oid", order.OrderNumber)
	form.Set("status", "success")
	form.Set("total_amount", totalAmount)
	// Hash computed over a different amount must be rejected.
	form.Set("hash", callbackHash(cfg, order.OrderNumber, "success", totalAmount+"0"))

	resp := postCallback(t, app, form)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.PaymentStatusPending, stored.PaymentStatus, "untrusted callback must not change state")
}
