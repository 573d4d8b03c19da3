package repositories

import (
	"butik/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns catalog products. Hidden products are included only
	// when includeHidden is true (manager views).
	GetAll(includeHidden bool) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// Hide unlists a product (show=false) instead of deleting the row, so
	// order-item references stay intact.
	Hide(id string) error
}

// StockRepository is the inventory ledger: one row per (product, size).
type StockRepository interface {
	// Get is a lock-free read and may be stale relative to in-flight checkouts.
	Get(productID, size string) (*models.ProductStock, error)
	ListByProduct(productID string) ([]models.ProductStock, error)
	Upsert(stock *models.ProductStock) error
	// GetForUpdate reads a ledger row under an exclusive row lock. Only
	// meaningful inside a transaction; callers must acquire rows in a
	// deterministic order to avoid deadlock.
	GetForUpdate(productID, size string) (*models.ProductStock, error)
	// Debit subtracts quantity from the row, refusing to go negative.
	Debit(productID, size string, quantity int) error
}
