package repositories

import (
	"fmt"
	"sync"

	"butik/internal/models"

	"github.com/google/uuid"
)

// MockStockRepository is an in-memory implementation of StockRepository.
type MockStockRepository struct {
	stocks map[string]models.ProductStock // keyed by productID|size
	mu     sync.RWMutex
}

// NewMockStockRepository creates a new instance of MockStockRepository.
func NewMockStockRepository() *MockStockRepository {
	return &MockStockRepository{
		stocks: make(map[string]models.ProductStock),
	}
}

func stockKey(productID, size string) string {
	return productID + "|" + size
}

// Get returns a ledger row.
func (r *MockStockRepository) Get(productID, size string) (*models.ProductStock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stock, ok := r.stocks[stockKey(productID, size)]
	if !ok {
		return nil, fmt.Errorf("stock for product %s size %s not found", productID, size)
	}
	return &stock, nil
}

// ListByProduct returns all size rows for a product.
func (r *MockStockRepository) ListByProduct(productID string) ([]models.ProductStock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stocks []models.ProductStock
	for _, s := range r.stocks {
		if s.ProductID == productID {
			stocks = append(stocks, s)
		}
	}
	return stocks, nil
}

// Upsert creates or replaces a (product, size) row.
func (r *MockStockRepository) Upsert(stock *models.ProductStock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := stockKey(stock.ProductID, stock.Size)
	if existing, ok := r.stocks[key]; ok {
		stock.ID = existing.ID
	} else if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	r.stocks[key] = *stock
	return nil
}

// GetForUpdate behaves like Get; mutual exclusion is provided by the
// enclosing MockTxManager lock.
func (r *MockStockRepository) GetForUpdate(productID, size string) (*models.ProductStock, error) {
	return r.Get(productID, size)
}

// Debit subtracts quantity, refusing to go negative.
func (r *MockStockRepository) Debit(productID, size string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := stockKey(productID, size)
	stock, ok := r.stocks[key]
	if !ok || stock.Quantity < quantity {
		return fmt.Errorf("stock debit of %d refused for product %s size %s", quantity, productID, size)
	}
	stock.Quantity -= quantity
	r.stocks[key] = stock
	return nil
}
