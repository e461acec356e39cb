package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. NEW -> CONFIRMED -> DELIVERED; CANCELLED is reachable
// from NEW or CONFIRMED. DELIVERED and CANCELLED are terminal.
const (
	OrderStatusNew       = "NEW"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Payment statuses.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
)

// Order captures a single checkout. Delivery and billing addresses are
// embedded snapshots, not references, so later profile edits never change
// what was ordered.
type Order struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User        *User     `json:"user,omitempty"`
	OrderNumber string    `gorm:"uniqueIndex" json:"order_number"`
	Status      string    `gorm:"default:NEW" json:"status"`

	PaymentStatus string `gorm:"default:PENDING" json:"payment_status"`
	PaymentMethod string `json:"payment_method"`

	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	ShippingCost   float64 `json:"shipping_cost"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`

	DeliveryName     string `json:"delivery_name"`
	DeliveryPhone    string `json:"delivery_phone"`
	DeliveryAddress  string `json:"delivery_address"`
	DeliveryCity     string `json:"delivery_city"`
	DeliveryDistrict string `json:"delivery_district"`
	DeliveryZip      string `json:"delivery_zip"`

	BillingName      string `json:"billing_name"`
	BillingPhone     string `json:"billing_phone"`
	BillingAddress   string `json:"billing_address"`
	BillingCity      string `json:"billing_city"`
	BillingDistrict  string `json:"billing_district"`
	BillingZip       string `json:"billing_zip"`
	BillingCompany   string `json:"billing_company"`
	BillingTaxOffice string `json:"billing_tax_office"`
	BillingTaxNumber string `json:"billing_tax_number"`
	BillingTCKN      string `gorm:"column:billing_tckn" json:"billing_tckn"`

	CustomerNote string    `json:"customer_note"`
	PlacedAt     time.Time `json:"placed_at"`

	Items    []OrderItem     `json:"items,omitempty"`
	Timeline []OrderTimeline `json:"timeline,omitempty"`
}

// OrderItem snapshots a product line at order time, decoupled from the
// live Product row.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID  `gorm:"type:uuid;index" json:"order_id"`
	ProductID   *uuid.UUID `gorm:"type:uuid" json:"product_id"`
	ProductName string     `json:"product_name"`
	UnitPrice   float64    `json:"unit_price"`
	Quantity    int        `json:"quantity"`
	LineTotal   float64    `json:"line_total"`
}

// OrderTimeline is an append-only audit entry attached to an order.
// Entries are never updated or deleted.
type OrderTimeline struct {
	BaseModel
	OrderID     uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	ActorName   string    `json:"actor_name"`
}
