package repositories

import (
	"fmt"
	"sync"

	"butik/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]models.Cart     // keyed by cart ID
	items map[string]models.CartItem // keyed by item ID
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.Cart),
		items: make(map[string]models.CartItem),
	}
}

// GetOrCreateByUser returns the user's cart, creating it on first access.
func (r *MockCartRepository) GetOrCreateByUser(userID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.carts {
		if c.UserID == userID {
			return &c, nil
		}
	}
	cart := models.Cart{ID: uuid.New().String(), UserID: userID}
	r.carts[cart.ID] = cart
	return &cart, nil
}

// GetItems returns all lines of a cart.
func (r *MockCartRepository) GetItems(cartID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []models.CartItem
	for _, it := range r.items {
		if it.CartID == cartID {
			items = append(items, it)
		}
	}
	return items, nil
}

// GetItem returns a single line by ID, scoped to the cart.
func (r *MockCartRepository) GetItem(cartID, itemID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok || item.CartID != cartID {
		return nil, fmt.Errorf("cart item %s not found", itemID)
	}
	return &item, nil
}

// FindItem looks up the line for (product, size); (nil, nil) when absent.
func (r *MockCartRepository) FindItem(cartID, productID, size string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.CartID == cartID && it.ProductID == productID && it.Size == size {
			item := it
			return &item, nil
		}
	}
	return nil, nil
}

// SaveItem inserts or updates a cart line.
func (r *MockCartRepository) SaveItem(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[item.ID] = *item
	return nil
}

// DeleteItem removes a line from the cart.
func (r *MockCartRepository) DeleteItem(cartID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok || item.CartID != cartID {
		return fmt.Errorf("cart item %s not found for deletion", itemID)
	}
	delete(r.items, itemID)
	return nil
}

// Clear deletes all lines in the cart.
func (r *MockCartRepository) Clear(cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, it := range r.items {
		if it.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}
