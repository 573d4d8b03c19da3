package repositories

import (
	"fmt"

	"butik/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves products from the database, filtering out hidden ones
// unless includeHidden is set.
func (r *GORMProductRepository) GetAll(includeHidden bool) ([]models.Product, error) {
	var products []models.Product
	q := r.db
	if !includeHidden {
		q = q.Where("show = ?", true)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for update", product.ID)
	}
	return nil
}

// Hide unlists a product by setting show=false. The row survives so
// historical order items keep resolving.
func (r *GORMProductRepository) Hide(id string) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Update("show", false)
	if res.Error != nil {
		return fmt.Errorf("failed to hide product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	return nil
}

// GORMStockRepository is a GORM implementation of StockRepository.
type GORMStockRepository struct {
	db *gorm.DB
}

// NewGORMStockRepository creates a new instance of GORMStockRepository.
func NewGORMStockRepository(db *gorm.DB) *GORMStockRepository {
	return &GORMStockRepository{
		db: db,
	}
}

// Get retrieves a ledger row without locking.
func (r *GORMStockRepository) Get(productID, size string) (*models.ProductStock, error) {
	var stock models.ProductStock
	if err := r.db.First(&stock, "product_id = ? AND size = ?", productID, size).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("stock for product %s size %s not found", productID, size)
		}
		return nil, fmt.Errorf("failed to get stock for product %s size %s: %w", productID, size, err)
	}
	return &stock, nil
}

// ListByProduct retrieves all size rows for a product.
func (r *GORMStockRepository) ListByProduct(productID string) ([]models.ProductStock, error) {
	var stocks []models.ProductStock
	if err := r.db.Where("product_id = ?", productID).Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock for product %s: %w", productID, err)
	}
	return stocks, nil
}

// Upsert creates or replaces the quantity of a (product, size) row.
func (r *GORMStockRepository) Upsert(stock *models.ProductStock) error {
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "size"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(stock).Error
	if err != nil {
		return fmt.Errorf("failed to upsert stock for product %s size %s: %w", stock.ProductID, stock.Size, err)
	}
	return nil
}

// GetForUpdate retrieves a ledger row under SELECT ... FOR UPDATE. sqlite
// has no row-level locks; its single writer serializes transactions anyway,
// so the clause is skipped there.
func (r *GORMStockRepository) GetForUpdate(productID, size string) (*models.ProductStock, error) {
	q := r.db
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var stock models.ProductStock
	if err := q.First(&stock, "product_id = ? AND size = ?", productID, size).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("stock for product %s size %s not found", productID, size)
		}
		return nil, fmt.Errorf("failed to lock stock for product %s size %s: %w", productID, size, err)
	}
	return &stock, nil
}

// Debit subtracts quantity from a ledger row. The WHERE guard keeps the
// quantity from ever going negative even if a caller skipped the locked
// re-check.
func (r *GORMStockRepository) Debit(productID, size string, quantity int) error {
	res := r.db.Model(&models.ProductStock{}).
		Where("product_id = ? AND size = ? AND quantity >= ?", productID, size, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("failed to debit stock for product %s size %s: %w", productID, size, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("stock debit of %d refused for product %s size %s", quantity, productID, size)
	}
	return nil
}
