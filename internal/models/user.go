package models

// User roles. Admin-capable roles may access the back-office.
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// User represents a customer or back-office account. Guests are created
// implicitly during checkout with an empty password hash.
type User struct {
	BaseModel
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `gorm:"uniqueIndex" json:"email"`
	Phone         string  `json:"phone"`
	PasswordHash  string  `json:"-"`
	Role          string  `gorm:"default:USER" json:"role"`
	IsGuest       bool    `json:"is_guest"`
	EmailVerified bool    `json:"email_verified"`
	Orders        []Order `json:"orders,omitempty"`
}

// IsAdminRole reports whether the role may access admin endpoints.
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
