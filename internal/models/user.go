package models

import "gorm.io/gorm"

// Roles a user can carry. Managers may manage the catalog and all orders.
const (
	RoleClient  = "client"
	RoleManager = "manager"
)

// User represents a user of the store.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string `json:"role" gorm:"type:varchar(20);default:client"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Address is the shipping/billing contact for a user. One address per user.
type Address struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,max=15"`
	AddressLine string `json:"address_line" validate:"required,max=255"`
	Street      string `json:"street" validate:"omitempty,max=100"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"required,max=100"`
	PostalCode  string `json:"postal_code" validate:"required,max=20"`
	gorm.Model
}
