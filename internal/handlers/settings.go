package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gorkemserezli/oxiva-sub001/internal/models"
)

// SettingsHandler manages the key/value store configuration.
type SettingsHandler struct {
	db *gorm.DB
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// publicSettingKeys is the allow-list exposed to the storefront. Bank
// accounts and gateway credentials stay admin-only.
var publicSettingKeys = map[string]bool{
	"store_name":          true,
	"store_logo":          true,
	"store_favicon":       true,
	"support_email":       true,
	"support_phone":       true,
	"free_shipping_limit": true,
	"payment_card":        true,
	"payment_transfer":    true,
	"payment_cod":         true,
}

// GetPublic returns the storefront-visible settings.
func (h *SettingsHandler) GetPublic(c *fiber.Ctx) error {
	var settings []models.Setting
	if err := h.db.Find(&settings).Error; err != nil {
		return err
	}

	data := make(map[string]string)
	for _, s := range settings {
		if publicSettingKeys[s.Key] {
			data[s.Key] = s.Value
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": data})
}

// GetAll returns every setting for the back-office.
func (h *SettingsHandler) GetAll(c *fiber.Ctx) error {
	var settings []models.Setting
	if err := h.db.Order("key asc").Find(&settings).Error; err != nil {
		return err
	}

	data := make(map[string]string, len(settings))
	for _, s := range settings {
		data[s.Key] = s.Value
	}

	return c.JSON(fiber.Map{"success": true, "data": data})
}

type updateSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}

// Update upserts a batch of settings.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req updateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Settings) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no settings provided")
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range req.Settings {
			key = strings.TrimSpace(key)
			if key == "" {
				return fiber.NewError(fiber.StatusBadRequest, "empty setting key")
			}
			setting := models.Setting{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&setting).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return h.GetAll(c)
}
