package services_test

import (
	"fmt"
	"testing"

	"butik/internal/apperr"
	"butik/internal/models"
	"butik/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of repositories.ProductRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetAll(includeHidden bool) ([]models.Product, error) {
	args := m.Called(includeHidden)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogRepository) Hide(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockLedgerRepository is a mock implementation of repositories.StockRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Get(productID, size string) (*models.ProductStock, error) {
	args := m.Called(productID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductStock), args.Error(1)
}

func (m *MockLedgerRepository) ListByProduct(productID string) ([]models.ProductStock, error) {
	args := m.Called(productID)
	return args.Get(0).([]models.ProductStock), args.Error(1)
}

func (m *MockLedgerRepository) Upsert(stock *models.ProductStock) error {
	args := m.Called(stock)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetForUpdate(productID, size string) (*models.ProductStock, error) {
	args := m.Called(productID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductStock), args.Error(1)
}

func (m *MockLedgerRepository) Debit(productID, size string, quantity int) error {
	args := m.Called(productID, size, quantity)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	mockStock := new(MockLedgerRepository)
	service := services.NewProductService(mockRepo, mockStock)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Plain Tee", Price: 50000, Category: "Men", Subcategory: "Topwear", Show: true},
		{ID: "2", Name: "Summer Dress", Price: 120000, Category: "Women", Subcategory: "Topwear", Show: true},
	}

	mockRepo.On("GetAll", false).Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts(false)

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)

	// Manager view includes hidden products
	hidden := append(expectedProducts, models.Product{ID: "3", Name: "Retired", Show: false})
	mockRepo.On("GetAll", true).Return(hidden, nil).Once()
	products, err = service.GetAllProducts(true)
	assert.NoError(t, err)
	assert.Len(t, products, 3)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewProductService(mockRepo, new(MockLedgerRepository))

	expectedProduct := &models.Product{ID: "1", Name: "Plain Tee", Price: 50000, Show: true}

	// Test successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()
	product, err = service.GetProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	e, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.CodeNotFound, e.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewProductService(mockRepo, new(MockLedgerRepository))

	newProduct := &models.Product{Name: "New Product", Price: 75000, Category: "Kids", Subcategory: "Bottomwear"}

	// Test successful creation: new products are always listed
	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	assert.True(t, newProduct.Show)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewProductService(mockRepo, new(MockLedgerRepository))

	// Deletion is an unlisting, the row survives for historical orders
	mockRepo.On("Hide", "1").Return(nil).Once()
	err := service.DeleteProduct("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Hide", "99").Return(fmt.Errorf("product with ID 99 not found for deletion")).Once()
	err = service.DeleteProduct("99")
	assert.Error(t, err)
	e, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.CodeNotFound, e.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductService_SetStock(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	mockStock := new(MockLedgerRepository)
	service := services.NewProductService(mockRepo, mockStock)

	product := &models.Product{ID: "1", Name: "Plain Tee", Show: true}

	// Each entry becomes one (product, size) ledger row
	mockRepo.On("GetByID", "1").Return(product, nil).Once()
	mockStock.On("Upsert", &models.ProductStock{ProductID: "1", Size: "M", Quantity: 10}).Return(nil).Once()
	mockStock.On("Upsert", &models.ProductStock{ProductID: "1", Size: "L", Quantity: 0}).Return(nil).Once()

	err := service.SetStock("1", []services.StockEntry{
		{Size: "M", Quantity: 10},
		{Size: "L", Quantity: 0},
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockStock.AssertExpectations(t)

	// Negative quantities never reach the ledger
	mockRepo.On("GetByID", "1").Return(product, nil).Once()
	err = service.SetStock("1", []services.StockEntry{{Size: "M", Quantity: -1}})
	e, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.CodeValidation, e.Code)
	mockStock.AssertExpectations(t)

	// Unknown product
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()
	err = service.SetStock("99", []services.StockEntry{{Size: "M", Quantity: 1}})
	e, ok = apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperr.CodeNotFound, e.Code)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetStock(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	mockStock := new(MockLedgerRepository)
	service := services.NewProductService(mockRepo, mockStock)

	product := &models.Product{ID: "1", Name: "Plain Tee", Show: true}
	rows := []models.ProductStock{
		{ID: "s1", ProductID: "1", Size: "M", Quantity: 10},
		{ID: "s2", ProductID: "1", Size: "L", Quantity: 2},
	}

	mockRepo.On("GetByID", "1").Return(product, nil).Once()
	mockStock.On("ListByProduct", "1").Return(rows, nil).Once()

	stocks, err := service.GetStock("1")
	assert.NoError(t, err)
	assert.Equal(t, rows, stocks)
	mockRepo.AssertExpectations(t)
	mockStock.AssertExpectations(t)
}
