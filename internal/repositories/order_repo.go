package repositories

import (
	"butik/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// immutable after creation except for the delivery status.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	// Create persists the order together with its items.
	Create(order *models.Order) error
	UpdateDeliveryStatus(id string, status string) error
}
