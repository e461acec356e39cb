package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorkemserezli/oxiva-sub001/internal/models"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
	ErrInvalidTransition   = errors.New("invalid order status transition")
)

const orderNumberAttempts = 3

// OrderService owns the checkout transaction and the order lifecycle.
type OrderService struct {
	db           *gorm.DB
	numberPrefix string
	numberWidth  int
}

// NewOrderService constructs OrderService.
func NewOrderService(db *gorm.DB, numberPrefix string, numberWidth int) *OrderService {
	if numberWidth <= 0 {
		numberWidth = 6
	}
	return &OrderService{db: db, numberPrefix: numberPrefix, numberWidth: numberWidth}
}

// AddressInput carries delivery address fields for checkout.
type AddressInput struct {
	Name     string
	Phone    string
	Address  string
	City     string
	District string
	Zip      string
}

// BillingInput carries the billing block including tax identity fields.
type BillingInput struct {
	AddressInput
	CompanyName string
	TaxOffice   string
	TaxNumber   string
	TCKN        string
}

// CreateOrderInput is the checkout submission.
type CreateOrderInput struct {
	UserID    *uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Phone     string

	Delivery              AddressInput
	BillingSameAsDelivery bool
	Billing               BillingInput

	ProductID uuid.UUID
	Quantity  int

	Subtotal       float64
	TaxAmount      float64
	ShippingCost   float64
	DiscountAmount float64

	PaymentMethod string
	CustomerNote  string
}

// CreateOrder runs the checkout transaction: resolve or create the user,
// check stock, snapshot addresses, allocate the order number and write the
// order, its items, a timeline entry and the stock decrement atomically.
// On failure nothing is persisted.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	var created *models.Order

	// The unique index on order_number aborts the whole transaction on a
	// concurrent allocation collision, so the retry wraps the transaction.
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			order, err := s.createOrderTx(tx, input)
			if err != nil {
				return err
			}
			created = order
			return nil
		})
		if err == nil {
			return created, nil
		}
		if isDuplicateOrderNumber(err) {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("could not allocate a unique order number after %d attempts", orderNumberAttempts)
}

func (s *OrderService) createOrderTx(tx *gorm.DB, input CreateOrderInput) (*models.Order, error) {
	user, err := s.resolveUser(tx, input)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := tx.First(&product, "id = ?", input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if product.Stock < input.Quantity {
		return nil, ErrInsufficientStock
	}

	var count int64
	if err := tx.Model(&models.Order{}).Count(&count).Error; err != nil {
		return nil, err
	}

	order := models.Order{
		UserID:        user.ID,
		OrderNumber:   s.formatOrderNumber(count + 1),
		Status:        models.OrderStatusNew,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: input.PaymentMethod,

		Subtotal:       input.Subtotal,
		TaxAmount:      input.TaxAmount,
		ShippingCost:   input.ShippingCost,
		DiscountAmount: input.DiscountAmount,
		Total:          input.Subtotal + input.TaxAmount - input.DiscountAmount + input.ShippingCost,

		DeliveryName:     input.Delivery.Name,
		DeliveryPhone:    input.Delivery.Phone,
		DeliveryAddress:  input.Delivery.Address,
		DeliveryCity:     input.Delivery.City,
		DeliveryDistrict: input.Delivery.District,
		DeliveryZip:      input.Delivery.Zip,

		CustomerNote: input.CustomerNote,
		PlacedAt:     time.Now(),
	}

	if input.BillingSameAsDelivery {
		order.BillingName = input.Delivery.Name
		order.BillingPhone = input.Delivery.Phone
		order.BillingAddress = input.Delivery.Address
		order.BillingCity = input.Delivery.City
		order.BillingDistrict = input.Delivery.District
		order.BillingZip = input.Delivery.Zip
	} else {
		order.BillingName = input.Billing.Name
		order.BillingPhone = input.Billing.Phone
		order.BillingAddress = input.Billing.Address
		order.BillingCity = input.Billing.City
		order.BillingDistrict = input.Billing.District
		order.BillingZip = input.Billing.Zip
		order.BillingCompany = input.Billing.CompanyName
		order.BillingTaxOffice = input.Billing.TaxOffice
		order.BillingTaxNumber = input.Billing.TaxNumber
		order.BillingTCKN = input.Billing.TCKN
	}

	order.Items = []models.OrderItem{{
		ProductID:   &product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    input.Quantity,
		LineTotal:   product.Price * float64(input.Quantity),
	}}

	if err := tx.Create(&order).Error; err != nil {
		return nil, err
	}

	// Guarded decrement: RowsAffected is 0 when a concurrent checkout
	// consumed the stock between the precheck and this statement.
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", product.ID, input.Quantity).
		Update("stock", gorm.Expr("stock - ?", input.Quantity))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInsufficientStock
	}

	timeline := models.OrderTimeline{
		OrderID:     order.ID,
		Action:      "ORDER_CREATED",
		Description: fmt.Sprintf("Order %s created", order.OrderNumber),
		ActorName:   strings.TrimSpace(user.FirstName + " " + user.LastName),
	}
	if err := tx.Create(&timeline).Error; err != nil {
		return nil, err
	}

	order.User = user
	return &order, nil
}

func (s *OrderService) resolveUser(tx *gorm.DB, input CreateOrderInput) (*models.User, error) {
	var user models.User

	if input.UserID != nil {
		if err := tx.First(&user, "id = ?", *input.UserID).Error; err == nil {
			return &user, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	err := tx.First(&user, "email = ?", input.Email).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	guest := models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      models.RoleUser,
		IsGuest:   true,
	}
	if err := tx.Create(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (s *OrderService) formatOrderNumber(n int64) string {
	return fmt.Sprintf("%s%0*d", s.numberPrefix, s.numberWidth, n)
}

func isDuplicateOrderNumber(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "order_number") {
		return false
	}
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}

// GetByID loads an order with items and timeline.
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").Preload("Timeline").Preload("User").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetByNumber loads an order by its human-readable number.
func (s *OrderService) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").Preload("Timeline").
		First(&order, "order_number = ?", orderNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus applies a forward lifecycle transition. Cancellation goes
// through Cancel so stock restoration cannot be skipped.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus, actorName string) (*models.Order, error) {
	var updated *models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if !validTransition(order.Status, newStatus) {
			return ErrInvalidTransition
		}

		updates := map[string]interface{}{"status": newStatus}
		if newStatus == models.OrderStatusDelivered && order.PaymentStatus != models.PaymentStatusCompleted {
			// Manual settlement on delivery (cash on delivery).
			updates["payment_status"] = models.PaymentStatusCompleted
			order.PaymentStatus = models.PaymentStatusCompleted
		}

		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}
		order.Status = newStatus

		timeline := models.OrderTimeline{
			OrderID:     order.ID,
			Action:      "STATUS_" + newStatus,
			Description: fmt.Sprintf("Order status changed to %s", newStatus),
			ActorName:   actorName,
		}
		if err := tx.Create(&timeline).Error; err != nil {
			return err
		}

		updated = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Cancel cancels the order, restores stock for every item and appends a
// timeline entry. DELIVERED and CANCELLED orders are rejected untouched.
func (s *OrderService) Cancel(ctx context.Context, id uuid.UUID, actorName string) (*models.Order, error) {
	var cancelled *models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.Status == models.OrderStatusDelivered || order.Status == models.OrderStatusCancelled {
			return ErrOrderNotCancellable
		}

		for _, item := range order.Items {
			if item.ProductID == nil {
				continue
			}
			if err := tx.Model(&models.Product{}).
				Where("id = ?", *item.ProductID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&order).Update("status", models.OrderStatusCancelled).Error; err != nil {
			return err
		}
		order.Status = models.OrderStatusCancelled

		timeline := models.OrderTimeline{
			OrderID:     order.ID,
			Action:      "ORDER_CANCELLED",
			Description: fmt.Sprintf("Order %s cancelled, stock restored", order.OrderNumber),
			ActorName:   actorName,
		}
		if err := tx.Create(&timeline).Error; err != nil {
			return err
		}

		cancelled = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// ApplyPaymentResult records a verified gateway callback on the order.
// Idempotent: an already-completed order is left untouched.
func (s *OrderService) ApplyPaymentResult(ctx context.Context, orderNumber string, success bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "order_number = ?", orderNumber).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.PaymentStatus == models.PaymentStatusCompleted {
			return nil
		}

		updates := map[string]interface{}{}
		action := "PAYMENT_FAILED"
		description := fmt.Sprintf("Payment for order %s failed", order.OrderNumber)

		if success {
			updates["payment_status"] = models.PaymentStatusCompleted
			if order.Status == models.OrderStatusNew {
				updates["status"] = models.OrderStatusConfirmed
			}
			action = "PAYMENT_COMPLETED"
			description = fmt.Sprintf("Payment for order %s completed", order.OrderNumber)
		} else {
			updates["payment_status"] = models.PaymentStatusFailed
		}

		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}

		timeline := models.OrderTimeline{
			OrderID:     order.ID,
			Action:      action,
			Description: description,
			ActorName:   "payment-gateway",
		}
		return tx.Create(&timeline).Error
	})
}

func validTransition(from, to string) bool {
	switch from {
	case models.OrderStatusNew:
		return to == models.OrderStatusConfirmed
	case models.OrderStatusConfirmed:
		return to == models.OrderStatusDelivered
	default:
		return false
	}
}
