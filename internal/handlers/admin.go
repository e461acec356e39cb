package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gorkemserezli/oxiva-sub001/internal/models"
	"github.com/gorkemserezli/oxiva-sub001/internal/utils"
)

// AdminHandler manages the dashboard and customer endpoints.
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// DashboardStats returns aggregate statistics for the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	var totalUsers int64
	if err := h.db.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&totalUsers).Error; err != nil {
		return err
	}

	var totalOrders int64
	if err := h.db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		return err
	}

	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var statusCounts []statusCount
	if err := h.db.Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return err
	}

	ordersByStatus := make(map[string]int64)
	for _, sc := range statusCounts {
		ordersByStatus[sc.Status] = sc.Count
	}

	// Revenue excludes cancelled orders.
	var totalRevenue float64
	if err := h.db.Model(&models.Order{}).
		Where("status != ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return err
	}

	var todayRevenue float64
	if err := h.db.Model(&models.Order{}).
		Where("status != ? AND placed_at::date = CURRENT_DATE", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&todayRevenue).Error; err != nil {
		return err
	}

	var lowStock []models.Product
	if err := h.db.Where("status = ? AND stock <= ?", models.ProductStatusActive, 10).
		Order("stock asc").
		Find(&lowStock).Error; err != nil {
		return err
	}

	var recentOrders []models.Order
	if err := h.db.Preload("Items").
		Order("placed_at desc").
		Limit(5).
		Find(&recentOrders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_customers":  totalUsers,
			"total_orders":     totalOrders,
			"total_revenue":    totalRevenue,
			"today_revenue":    todayRevenue,
			"orders_by_status": ordersByStatus,
			"low_stock":        lowStock,
			"recent_orders":    recentOrders,
		},
	})
}

// ListCustomers returns customers with order counts and totals.
func (h *AdminHandler) ListCustomers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.User{}).Where("role = ?", models.RoleUser)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			q, q, q, q,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var users []models.User
	if err := query.Select("id, first_name, last_name, email, phone, is_guest, email_verified, created_at, updated_at").
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&users).Error; err != nil {
		return err
	}

	type userStats struct {
		UserID     string  `json:"user_id"`
		OrderCount int64   `json:"order_count"`
		TotalSpent float64 `json:"total_spent"`
	}

	var stats []userStats
	h.db.Model(&models.Order{}).
		Select("user_id, count(*) as order_count, COALESCE(SUM(total), 0) as total_spent").
		Where("status != ?", models.OrderStatusCancelled).
		Group("user_id").
		Scan(&stats)

	statsMap := make(map[string]userStats)
	for _, s := range stats {
		statsMap[s.UserID] = s
	}

	type customerResponse struct {
		models.User
		OrderCount int64   `json:"order_count"`
		TotalSpent float64 `json:"total_spent"`
	}

	result := make([]customerResponse, len(users))
	for i, u := range users {
		result[i] = customerResponse{User: u}
		if s, ok := statsMap[u.ID.String()]; ok {
			result[i].OrderCount = s.OrderCount
			result[i].TotalSpent = s.TotalSpent
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}
