package services_test

import (
	"testing"

	"butik/internal/apperr"
	"butik/internal/models"
	"butik/internal/repositories"
	"butik/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockProductRepository, *repositories.MockStockRepository) {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	stockRepo := repositories.NewMockStockRepository()
	cartRepo := repositories.NewMockCartRepository()
	return services.NewCartService(cartRepo, productRepo, stockRepo), productRepo, stockRepo
}

func seedShirt(t *testing.T, products *repositories.MockProductRepository, stocks *repositories.MockStockRepository, qty int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        "Plain Tee",
		Description: "Cotton t-shirt",
		Price:       50000, // 500 rupees in paisa
		Category:    "Men",
		Subcategory: "Topwear",
		Show:        true,
	}
	require.NoError(t, products.Create(product))
	require.NoError(t, stocks.Upsert(&models.ProductStock{ProductID: product.ID, Size: "M", Quantity: qty}))
	return product
}

func TestCartService_AddItem(t *testing.T) {
	svc, products, stocks := newCartFixture(t)
	product := seedShirt(t, products, stocks, 5)

	item, err := svc.AddItem("user-1", product.ID, "M", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	// Duplicate add increments the same line.
	item, err = svc.AddItem("user-1", product.ID, "M", 2)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)

	// Combined quantity above the ledger is rejected, naming the available amount.
	_, err = svc.AddItem("user-1", product.ID, "M", 2)
	require.Error(t, err)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeInsufficientStock, e.Code)
	assert.Equal(t, 5, e.Details["available"])
	assert.Equal(t, 6, e.Details["requested"])
}

func TestCartService_AddItemValidation(t *testing.T) {
	svc, products, stocks := newCartFixture(t)
	product := seedShirt(t, products, stocks, 5)

	_, err := svc.AddItem("user-1", product.ID, "M", 0)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeValidation, e.Code)

	_, err = svc.AddItem("user-1", "missing-product", "M", 1)
	e, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeNotFound, e.Code)

	// Size without a ledger row does not resolve.
	_, err = svc.AddItem("user-1", product.ID, "XL", 1)
	e, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeNotFound, e.Code)

	// Unlisted products are not purchasable.
	require.NoError(t, products.Hide(product.ID))
	_, err = svc.AddItem("user-1", product.ID, "M", 1)
	e, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeNotFound, e.Code)
}

func TestCartService_SetQuantity(t *testing.T) {
	svc, products, stocks := newCartFixture(t)
	product := seedShirt(t, products, stocks, 3)

	item, err := svc.AddItem("user-1", product.ID, "M", 1)
	require.NoError(t, err)

	updated, err := svc.SetQuantity("user-1", item.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	_, err = svc.SetQuantity("user-1", item.ID, 4)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeInsufficientStock, e.Code)
	assert.Equal(t, 3, e.Details["available"])

	_, err = svc.SetQuantity("user-1", "missing-line", 1)
	e, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeNotFound, e.Code)
}

func TestCartService_ReconcileRemovesUnlisted(t *testing.T) {
	svc, products, stocks := newCartFixture(t)
	product := seedShirt(t, products, stocks, 5)

	_, err := svc.AddItem("user-1", product.ID, "M", 2)
	require.NoError(t, err)

	require.NoError(t, products.Hide(product.ID))

	view, err := svc.GetCart("user-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	require.Len(t, view.Adjustments, 1)
	assert.Equal(t, "removed", view.Adjustments[0].Reason)
	assert.Equal(t, 2, view.Adjustments[0].OldQuantity)
}

func TestCartService_ReconcileClampsToLedger(t *testing.T) {
	svc, products, stocks := newCartFixture(t)
	product := seedShirt(t, products, stocks, 5)

	_, err := svc.AddItem("user-1", product.ID, "M", 4)
	require.NoError(t, err)

	// Stock drops behind the cart's back.
	require.NoError(t, stocks.Upsert(&models.ProductStock{ProductID: product.ID, Size: "M", Quantity: 2}))

	view, err := svc.GetCart("user-1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	require.Len(t, view.Adjustments, 1)
	assert.Equal(t, "adjusted", view.Adjustments[0].Reason)
	assert.Equal(t, 4, view.Adjustments[0].OldQuantity)
	assert.Equal(t, 2, view.Adjustments[0].NewQuantity)

	// Ledger empty: line disappears entirely.
	require.NoError(t, stocks.Upsert(&models.ProductStock{ProductID: product.ID, Size: "M", Quantity: 0}))
	view, err = svc.GetCart("user-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartService_ReconcileIsIdempotent(t *testing.T) {
	svc, products, stocks := newCartFixture(t)
	product := seedShirt(t, products, stocks, 5)

	_, err := svc.AddItem("user-1", product.ID, "M", 4)
	require.NoError(t, err)
	require.NoError(t, stocks.Upsert(&models.ProductStock{ProductID: product.ID, Size: "M", Quantity: 2}))

	_, first, adjustments, err := svc.Reconcile("user-1")
	require.NoError(t, err)
	require.Len(t, adjustments, 1)

	// Second pass with no intervening mutation: same state, no adjustments.
	_, second, adjustments, err := svc.Reconcile("user-1")
	require.NoError(t, err)
	assert.Empty(t, adjustments)
	assert.Equal(t, first, second)
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, products, stocks := newCartFixture(t)
	product := seedShirt(t, products, stocks, 5)

	item, err := svc.AddItem("user-1", product.ID, "M", 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem("user-1", item.ID))

	err = svc.RemoveItem("user-1", item.ID)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeNotFound, e.Code)
}
