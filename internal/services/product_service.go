package services

import (
	"strings"

	"butik/internal/apperr"
	"butik/internal/models"
	"butik/internal/repositories"
)

// ProductService handles business logic related to the catalog and its
// per-size stock ledger.
type ProductService struct {
	repo      repositories.ProductRepository
	stockRepo repositories.StockRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, stockRepo repositories.StockRepository) *ProductService {
	return &ProductService{
		repo:      repo,
		stockRepo: stockRepo,
	}
}

// StockEntry is one per-size quantity in a stock update.
type StockEntry struct {
	Size     string `json:"size" validate:"required,oneof=S M L XL"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// GetAllProducts retrieves catalog products; hidden products only for managers.
func (s *ProductService) GetAllProducts(includeHidden bool) ([]models.Product, error) {
	return s.repo.GetAll(includeHidden)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, apperr.NotFound("product %s not found", id)
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.Show = true
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return apperr.NotFound("product %s not found", product.ID)
		}
		return err
	}
	return nil
}

// DeleteProduct unlists a product. The row is kept so historical orders
// still resolve; cart lines referencing it get dropped by reconcile.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Hide(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return apperr.NotFound("product %s not found", id)
		}
		return err
	}
	return nil
}

// SetStock replaces the per-size quantities of a product's ledger rows.
func (s *ProductService) SetStock(productID string, entries []StockEntry) error {
	if _, err := s.GetProductByID(productID); err != nil {
		return err
	}
	for _, e := range entries {
		if e.Quantity < 0 {
			return apperr.Validation("stock quantity must not be negative")
		}
		stock := &models.ProductStock{
			ProductID: productID,
			Size:      e.Size,
			Quantity:  e.Quantity,
		}
		if err := s.stockRepo.Upsert(stock); err != nil {
			return err
		}
	}
	return nil
}

// GetStock lists the ledger rows of a product. Reads are lock-free and may
// be stale relative to in-flight checkouts.
func (s *ProductService) GetStock(productID string) ([]models.ProductStock, error) {
	if _, err := s.GetProductByID(productID); err != nil {
		return nil, err
	}
	return s.stockRepo.ListByProduct(productID)
}
