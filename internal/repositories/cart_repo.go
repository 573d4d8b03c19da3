package repositories

import (
	"butik/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// GetOrCreateByUser returns the user's cart, creating it on first access.
	GetOrCreateByUser(userID string) (*models.Cart, error)
	GetItems(cartID string) ([]models.CartItem, error)
	GetItem(cartID, itemID string) (*models.CartItem, error)
	// FindItem returns (nil, nil) when no line exists for (product, size).
	FindItem(cartID, productID, size string) (*models.CartItem, error)
	SaveItem(item *models.CartItem) error
	DeleteItem(cartID, itemID string) error
	// Clear deletes every line in the cart.
	Clear(cartID string) error
}
