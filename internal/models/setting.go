package models

// Setting is a key/value row for store configuration (payment method
// toggles, bank accounts, branding). Values may hold JSON.
type Setting struct {
	BaseModel
	Key   string `gorm:"uniqueIndex" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
