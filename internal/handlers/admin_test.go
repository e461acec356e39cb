package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gorkemserezli/oxiva-sub001/internal/models"
	"github.com/gorkemserezli/oxiva-sub001/internal/utils"
)

func seedAdmin(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	admin := models.User{
		FirstName:    "Görkem",
		LastName:     "Serezli",
		Email:        "admin@oxiva.co",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "admin@oxiva.co",
		"password": "correct-horse",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok)
	return token
}

func TestLogin(t *testing.T) {
	app, db, _ := newTestApp(t)
	seedAdmin(t, db)

	token := loginAdmin(t, app)
	assert.NotEmpty(t, token)

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "admin@oxiva.co",
		"password": "wrong",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsNonAdminRole(t *testing.T) {
	app, db, _ := newTestApp(t)

	hash, err := utils.HashPassword("customer-pass")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Email:        "customer@example.com",
		PasswordHash: hash,
		Role:         models.RoleUser,
	}).Error)

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "customer@example.com",
		"password": "customer-pass",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := jsonRequest(t, http.MethodGet, "/api/admin/orders", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = jsonRequest(t, http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductSKUConflict(t *testing.T) {
	app, db, _ := newTestApp(t)
	seedAdmin(t, db)
	token := loginAdmin(t, app)

	payload := map[string]interface{}{
		"name":   "Oxiva Magnetic Nose Band",
		"slug":   "oxiva-magnetic-nose-band",
		"sku":    "OXV-001",
		"price":  299.90,
		"stock":  50,
		"status": models.ProductStatusActive,
	}

	req := jsonRequest(t, http.MethodPost, "/api/admin/products", payload)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same SKU under a different slug must be rejected before any write.
	payload["slug"] = "oxiva-nose-band-v2"
	req = jsonRequest(t, http.MethodPost, "/api/admin/products", payload)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOrderLifecycleEndpoints(t *testing.T) {
	app, db, _ := newTestApp(t)
	seedAdmin(t, db)
	token := loginAdmin(t, app)
	order := placeOrder(t, app, db)

	req := jsonRequest(t, http.MethodPut, "/api/admin/orders/"+order.ID.String()+"/status",
		map[string]interface{}{"status": models.OrderStatusConfirmed})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Cancellation must go through the cancel endpoint.
	req = jsonRequest(t, http.MethodPut, "/api/admin/orders/"+order.ID.String()+"/status",
		map[string]interface{}{"status": models.OrderStatusCancelled})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = jsonRequest(t, http.MethodPost, "/api/admin/orders/"+order.ID.String()+"/cancel", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, stored.Status)

	var product models.Product
	require.NoError(t, db.First(&product, "sku = ?", "OXV-001").Error)
	assert.Equal(t, 10, product.Stock, "cancellation restores stock")

	// Terminal state: cancelling again is rejected.
	req = jsonRequest(t, http.MethodPost, "/api/admin/orders/"+order.ID.String()+"/cancel", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSettingsEndpoints(t *testing.T) {
	app, db, _ := newTestApp(t)
	seedAdmin(t, db)
	token := loginAdmin(t, app)

	req := jsonRequest(t, http.MethodPut, "/api/admin/settings", map[string]interface{}{
		"settings": map[string]string{
			"store_name":   "Oxiva",
			"bank_account": "TR00 0000 0000 0000 0000 0000 00",
		},
	})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Public endpoint only exposes allow-listed keys.
	req = jsonRequest(t, http.MethodGet, "/api/settings", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Oxiva", data["store_name"])
	_, leaked := data["bank_account"]
	assert.False(t, leaked, "bank account must stay admin-only")
}
