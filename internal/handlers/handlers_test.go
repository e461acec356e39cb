package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gorkemserezli/oxiva-sub001/internal/config"
	"github.com/gorkemserezli/oxiva-sub001/internal/database"
	"github.com/gorkemserezli/oxiva-sub001/internal/models"
	"github.com/gorkemserezli/oxiva-sub001/internal/routes"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		AppPort:           "0",
		JWTSecret:         "test-secret",
		TokenExpires:      time.Hour,
		PayTRMerchantID:   "123456",
		PayTRMerchantKey:  "merchant-key",
		PayTRSalt:         "merchant-salt",
		PayTRTestMode:     true,
		OrderNumberPrefix: "OX",
		OrderNumberWidth:  6,
		UploadDir:         t.TempDir(),
	}

	app := fiber.New()
	routes.Register(app, db, cfg)
	return app, db, cfg
}

func seedActiveProduct(t *testing.T, db *gorm.DB, stock int) models.Product {
	t.Helper()

	product := models.Product{
		Name:   "Oxiva Magnetic Nose Band",
		Slug:   "oxiva-magnetic-nose-band",
		SKU:    "OXV-001",
		Price:  299.90,
		Stock:  stock,
		Status: models.ProductStatusActive,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed), string(raw))
	return parsed
}
