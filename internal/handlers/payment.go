package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gorkemserezli/oxiva-sub001/internal/models"
	"github.com/gorkemserezli/oxiva-sub001/internal/services"
)

// PaymentHandler manages payment initiation and the gateway callback.
type PaymentHandler struct {
	orders   *services.OrderService
	paytr    *services.PayTRService
	telegram *services.TelegramService
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(orders *services.OrderService, paytr *services.PayTRService, telegram *services.TelegramService) *PaymentHandler {
	return &PaymentHandler{orders: orders, paytr: paytr, telegram: telegram}
}

type initPaymentRequest struct {
	OrderNumber string `json:"order_number"`
	OKURL       string `json:"ok_url"`
	FailURL     string `json:"fail_url"`
}

// Init requests a hosted-page token for a pending order.
func (h *PaymentHandler) Init(c *fiber.Ctx) error {
	var req initPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.OrderNumber) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "order_number is required")
	}

	order, err := h.orders.GetByNumber(c.Context(), req.OrderNumber)
	if err != nil {
		return mapOrderError(err)
	}

	if order.PaymentStatus == models.PaymentStatusCompleted {
		return fiber.NewError(fiber.StatusConflict, "order is already paid")
	}
	if len(order.Items) == 0 {
		return fiber.NewError(fiber.StatusInternalServerError, "order has no items")
	}

	email := ""
	if order.User != nil {
		email = order.User.Email
	}
	item := order.Items[0]

	token, err := h.paytr.InitPayment(c.Context(), services.PaymentRequest{
		OrderNumber: order.OrderNumber,
		Email:       email,
		ClientIP:    c.IP(),
		Total:       order.Total,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		CallbackOK:  req.OKURL,
		CallbackErr: req.FailURL,
	})
	if err != nil {
		if gwErr, ok := err.(*services.GatewayError); ok {
			log.Printf("[Payment] Gateway rejected order %s: %s", order.OrderNumber, gwErr.Reason)
			return fiber.NewError(fiber.StatusBadGateway, "payment gateway rejected the request")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"token": token},
	})
}

// Callback verifies and applies the gateway's payment notification. The
// gateway retries until it receives a literal "OK" body with HTTP 200.
func (h *PaymentHandler) Callback(c *fiber.Ctx) error {
	params := services.CallbackParams{
		OrderNumber: c.FormValue("merchant_oid"),
		Status:      c.FormValue("status"),
		TotalAmount: c.FormValue("total_amount"),
		Hash:        c.FormValue("hash"),
	}

	if !h.paytr.VerifyCallback(params) {
		log.Printf("[Payment] Callback hash mismatch for order %s", params.OrderNumber)
		return c.Status(fiber.StatusBadRequest).SendString("bad hash")
	}

	if err := h.orders.ApplyPaymentResult(c.Context(), params.OrderNumber, params.Succeeded()); err != nil {
		if err == services.ErrOrderNotFound {
			log.Printf("[Payment] Callback for unknown order %s", params.OrderNumber)
			return c.Status(fiber.StatusNotFound).SendString("order not found")
		}
		return err
	}

	if params.Succeeded() && h.telegram != nil {
		orderNumber := params.OrderNumber
		go func() {
			order, err := h.orders.GetByNumber(context.Background(), orderNumber)
			if err != nil {
				return
			}
			if err := h.telegram.NotifyPaymentCompleted(order.OrderNumber, order.Total); err != nil {
				log.Printf("[Payment] Telegram notification failed: %v", err)
			}
		}()
	}

	return c.SendString("OK")
}
