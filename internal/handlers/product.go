package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorkemserezli/oxiva-sub001/internal/models"
	"github.com/gorkemserezli/oxiva-sub001/internal/utils"
)

// ProductHandler manages product endpoints.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// ListActive returns active products for the storefront.
func (h *ProductHandler) ListActive(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.db.Where("status = ?", models.ProductStatusActive).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": products})
}

// GetBySlug loads a single active product for the storefront.
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing slug")
	}

	var product models.Product
	if err := h.db.First(&product, "slug = ? AND status = ?", slug, models.ProductStatusActive).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// ListAll returns all products for the back-office with pagination and search.
func (h *ProductHandler) ListAll(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Product{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", q, q)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// Get loads a product by id for the back-office.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

type productRequest struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	SKU          string  `json:"sku"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ComparePrice float64 `json:"compare_price"`
	Stock        int     `json:"stock"`
	Status       string  `json:"status"`
	Image        string  `json:"image"`
}

func (r *productRequest) validate() string {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return "name is required"
	case strings.TrimSpace(r.Slug) == "":
		return "slug is required"
	case strings.TrimSpace(r.SKU) == "":
		return "sku is required"
	case r.Price < 0:
		return "price must not be negative"
	case r.Stock < 0:
		return "stock must not be negative"
	}

	switch r.Status {
	case "", models.ProductStatusDraft, models.ProductStatusActive, models.ProductStatusArchived:
		return ""
	}
	return "invalid status"
}

// Create adds a product after checking sku/slug uniqueness.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	if err := h.ensureUnique(req.SKU, req.Slug, uuid.Nil); err != nil {
		return err
	}

	product := models.Product{
		Name:         req.Name,
		Slug:         req.Slug,
		SKU:          req.SKU,
		Description:  req.Description,
		Price:        req.Price,
		ComparePrice: req.ComparePrice,
		Stock:        req.Stock,
		Status:       req.Status,
		Image:        req.Image,
	}
	if product.Status == "" {
		product.Status = models.ProductStatusDraft
	}

	if err := h.db.Create(&product).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// Update modifies an existing product after checking sku/slug uniqueness.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var existing models.Product
	if err := h.db.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	if err := h.ensureUnique(req.SKU, req.Slug, existing.ID); err != nil {
		return err
	}

	updates := map[string]interface{}{
		"name":          req.Name,
		"slug":          req.Slug,
		"sku":           req.SKU,
		"description":   req.Description,
		"price":         req.Price,
		"compare_price": req.ComparePrice,
		"stock":         req.Stock,
		"image":         req.Image,
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	if err := h.db.Model(&existing).Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": existing})
}

// Delete removes a product.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res := h.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ensureUnique rejects sku/slug values already used by a different product.
func (h *ProductHandler) ensureUnique(sku, slug string, selfID uuid.UUID) error {
	var conflict models.Product
	err := h.db.Where("(sku = ? OR slug = ?) AND id != ?", sku, slug, selfID).First(&conflict).Error
	if err == nil {
		if conflict.SKU == sku {
			return fiber.NewError(fiber.StatusConflict, "sku already in use")
		}
		return fiber.NewError(fiber.StatusConflict, "slug already in use")
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}
