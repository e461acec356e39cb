package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorkemserezli/oxiva-sub001/internal/middleware"
	"github.com/gorkemserezli/oxiva-sub001/internal/models"
	"github.com/gorkemserezli/oxiva-sub001/internal/services"
	"github.com/gorkemserezli/oxiva-sub001/internal/utils"
)

// OrderHandler manages back-office order endpoints.
type OrderHandler struct {
	db     *gorm.DB
	orders *services.OrderService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, orders *services.OrderService) *OrderHandler {
	return &OrderHandler{db: db, orders: orders}
}

// List returns all orders with pagination, filtering and user info.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where(
			"order_number ILIKE ? OR delivery_name ILIKE ? OR delivery_phone ILIKE ?",
			q, q, q,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items").Preload("User").
		Order("placed_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// Get returns a single order with items and timeline.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	order, err := h.orders.GetByID(c.Context(), id)
	if err != nil {
		return mapOrderError(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus applies a lifecycle transition to an order.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	switch req.Status {
	case models.OrderStatusConfirmed, models.OrderStatusDelivered:
	case models.OrderStatusCancelled:
		return fiber.NewError(fiber.StatusBadRequest, "use the cancel endpoint to cancel orders")
	default:
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}

	order, err := h.orders.UpdateStatus(c.Context(), id, req.Status, h.actorName(c))
	if err != nil {
		return mapOrderError(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// Cancel cancels an order and restores its stock.
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	order, err := h.orders.Cancel(c.Context(), id, h.actorName(c))
	if err != nil {
		return mapOrderError(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// Timeline returns the append-only audit entries for an order.
func (h *OrderHandler) Timeline(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var entries []models.OrderTimeline
	if err := h.db.Where("order_id = ?", id).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": entries})
}

func (h *OrderHandler) actorName(c *fiber.Ctx) string {
	claims, ok := middleware.GetCurrentClaims(c)
	if !ok {
		return "system"
	}

	var user models.User
	if err := h.db.Select("first_name, last_name").First(&user, "id = ?", claims.UserID).Error; err != nil {
		return claims.Email
	}

	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		return claims.Email
	}
	return name
}
