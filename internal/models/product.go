package models

// Product statuses.
const (
	ProductStatusDraft    = "DRAFT"
	ProductStatusActive   = "ACTIVE"
	ProductStatusArchived = "ARCHIVED"
)

// Product is a catalog item. Stock is mutated only by order creation
// (decrement) and order cancellation (increment) and never goes negative.
type Product struct {
	BaseModel
	Name         string  `json:"name"`
	Slug         string  `gorm:"uniqueIndex" json:"slug"`
	SKU          string  `gorm:"uniqueIndex" json:"sku"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ComparePrice float64 `json:"compare_price"`
	Stock        int     `json:"stock"`
	Status       string  `gorm:"default:DRAFT" json:"status"`
	Image        string  `json:"image"`
}
