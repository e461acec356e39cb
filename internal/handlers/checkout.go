package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gorkemserezli/oxiva-sub001/internal/services"
	"github.com/gorkemserezli/oxiva-sub001/internal/utils"
)

// CheckoutHandler manages the public checkout endpoints.
type CheckoutHandler struct {
	orders   *services.OrderService
	telegram *services.TelegramService
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(orders *services.OrderService, telegram *services.TelegramService) *CheckoutHandler {
	return &CheckoutHandler{orders: orders, telegram: telegram}
}

type addressRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Zip      string `json:"zip"`
}

type billingRequest struct {
	addressRequest
	CompanyName string `json:"company_name"`
	TaxOffice   string `json:"tax_office"`
	TaxNumber   string `json:"tax_number"`
	TCKN        string `json:"tckn"`
}

type checkoutRequest struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`

	Delivery              addressRequest `json:"delivery"`
	BillingSameAsDelivery bool           `json:"billing_same_as_delivery"`
	Billing               billingRequest `json:"billing"`

	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`

	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	ShippingCost   float64 `json:"shipping_cost"`
	DiscountAmount float64 `json:"discount_amount"`

	PaymentMethod string `json:"payment_method"`
	CustomerNote  string `json:"customer_note"`
}

// CreateOrder validates the checkout submission and runs the order transaction.
func (h *CheckoutHandler) CreateOrder(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if msg := validateCheckout(&req); msg != "" {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product_id")
	}

	input := services.CreateOrderInput{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Delivery: services.AddressInput{
			Name:     req.Delivery.Name,
			Phone:    req.Delivery.Phone,
			Address:  req.Delivery.Address,
			City:     req.Delivery.City,
			District: req.Delivery.District,
			Zip:      req.Delivery.Zip,
		},
		BillingSameAsDelivery: req.BillingSameAsDelivery,
		ProductID:             productID,
		Quantity:              req.Quantity,
		Subtotal:              req.Subtotal,
		TaxAmount:             req.TaxAmount,
		ShippingCost:          req.ShippingCost,
		DiscountAmount:        req.DiscountAmount,
		PaymentMethod:         req.PaymentMethod,
		CustomerNote:          req.CustomerNote,
	}

	if req.UserID != "" {
		if id, err := uuid.Parse(req.UserID); err == nil {
			input.UserID = &id
		}
	}

	if !req.BillingSameAsDelivery {
		input.Billing = services.BillingInput{
			AddressInput: services.AddressInput{
				Name:     req.Billing.Name,
				Phone:    req.Billing.Phone,
				Address:  req.Billing.Address,
				City:     req.Billing.City,
				District: req.Billing.District,
				Zip:      req.Billing.Zip,
			},
			CompanyName: req.Billing.CompanyName,
			TaxOffice:   req.Billing.TaxOffice,
			TaxNumber:   req.Billing.TaxNumber,
			TCKN:        req.Billing.TCKN,
		}
	}

	order, err := h.orders.CreateOrder(c.Context(), input)
	if err != nil {
		return mapOrderError(err)
	}

	if h.telegram != nil {
		go func() {
			if err := h.telegram.NotifyNewOrder(order); err != nil {
				log.Printf("[Checkout] Telegram notification failed: %v", err)
			}
		}()
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":             order.ID,
			"order_number":   order.OrderNumber,
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
			"total":          order.Total,
			"placed_at":      order.PlacedAt,
			"items":          order.Items,
		},
	})
}

// TrackOrder returns an order by its human-readable number for customers.
func (h *CheckoutHandler) TrackOrder(c *fiber.Ctx) error {
	orderNumber := strings.TrimSpace(c.Params("orderNumber"))
	if orderNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing order number")
	}

	order, err := h.orders.GetByNumber(c.Context(), orderNumber)
	if err != nil {
		return mapOrderError(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

func validateCheckout(req *checkoutRequest) string {
	switch {
	case strings.TrimSpace(req.Email) == "":
		return "email is required"
	case strings.TrimSpace(req.FirstName) == "":
		return "first_name is required"
	case strings.TrimSpace(req.LastName) == "":
		return "last_name is required"
	case req.ProductID == "":
		return "product_id is required"
	case req.Quantity <= 0:
		return "quantity must be positive"
	case strings.TrimSpace(req.Delivery.Address) == "":
		return "delivery address is required"
	case strings.TrimSpace(req.Delivery.City) == "":
		return "delivery city is required"
	case strings.TrimSpace(req.Delivery.District) == "":
		return "delivery district is required"
	}

	if !utils.ValidPhone(req.Phone) {
		return "invalid phone number"
	}

	if !req.BillingSameAsDelivery {
		if req.Billing.TCKN != "" && !utils.ValidTCKN(req.Billing.TCKN) {
			return "invalid tckn"
		}
		if req.Billing.TaxNumber != "" && !utils.ValidVKN(req.Billing.TaxNumber) {
			return "invalid tax number"
		}
	}

	return ""
}

func mapOrderError(err error) error {
	switch err {
	case services.ErrProductNotFound:
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	case services.ErrOrderNotFound:
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	case services.ErrInsufficientStock:
		return fiber.NewError(fiber.StatusConflict, "insufficient stock")
	case services.ErrOrderNotCancellable:
		return fiber.NewError(fiber.StatusConflict, "order can no longer be cancelled")
	case services.ErrInvalidTransition:
		return fiber.NewError(fiber.StatusConflict, "invalid status transition")
	}
	return err
}
