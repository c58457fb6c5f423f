package model

import "time"

// Roles supported by the access-control tiers. Comparison is always an
// exact match; ADMIN and SUPERADMIN are the only elevated tiers.
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// User represents an authenticated account of the municipal staff.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"` // Mandatory and unique
	Password string `gorm:"not null" json:"-"`                 // Stored as bcrypt hash, never serialized
	Role     string `gorm:"not null;default:'USER'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the known role constants.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin || role == RoleSuperAdmin
}
