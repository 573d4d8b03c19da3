package models

import "gorm.io/gorm"

// Delivery status values for an order.
const (
	DeliveryPending   = "pending"
	DeliveryShipped   = "shipped"
	DeliveryDelivered = "delivered"
	DeliveryCancelled = "cancelled"
)

// ValidDeliveryStatus reports whether s is one of the enumerated delivery states.
func ValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryPending, DeliveryShipped, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

// Order is the immutable record of a completed purchase. Everything except
// DeliveryStatus is frozen at creation time; the shipping fields are a copy
// of the user's address so later address edits don't rewrite history.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount int64       `json:"total_amount"` // paisa

	GatewayOrderID   string `json:"gateway_order_id" gorm:"type:varchar(100)"`
	PaymentID        string `json:"payment_id" gorm:"type:varchar(100)"`
	PaymentSignature string `json:"-" gorm:"type:varchar(128)"`

	DeliveryStatus string `json:"delivery_status" gorm:"type:varchar(20);default:pending"`

	// Shipping contact snapshot.
	RecipientName string `json:"recipient_name"`
	PhoneNumber   string `json:"phone_number"`
	AddressLine   string `json:"address_line"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`

	gorm.Model
}

// OrderItem represents a single item within an order. ProductName and
// UnitPrice are copies taken at purchase time, independent of later
// catalog changes.
type OrderItem struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID     string `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID   string `json:"product_id" gorm:"type:varchar(36)"`
	ProductName string `json:"product"`
	Size        string `json:"size" gorm:"type:varchar(5)"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"price"` // paisa, at purchase time
	gorm.Model
}
