package services

import (
	"strings"

	"butik/internal/apperr"
	"butik/internal/models"
	"butik/internal/repositories"
)

// CartService handles business logic related to shopping carts. Cart
// mutations are not locked against each other; last write wins, and any
// resulting drift is corrected by Reconcile before money moves.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	stockRepo   repositories.StockRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, stockRepo repositories.StockRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

// CartLineView is one cart line enriched with live catalog data.
type CartLineView struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

// CartAdjustment records one self-healing change made by Reconcile.
type CartAdjustment struct {
	ProductID   string `json:"product_id"`
	Size        string `json:"size"`
	OldQuantity int    `json:"old_quantity"`
	NewQuantity int    `json:"new_quantity"`
	Reason      string `json:"reason"` // "removed" or "adjusted"
}

// CartView is what a cart read returns.
type CartView struct {
	CartID      string           `json:"cart_id"`
	Items       []CartLineView   `json:"items"`
	Adjustments []CartAdjustment `json:"adjustments,omitempty"`
}

// GetCart reconciles and returns the user's cart.
func (s *CartService) GetCart(userID string) (*CartView, error) {
	cart, items, adjustments, err := s.Reconcile(userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{CartID: cart.ID, Items: []CartLineView{}, Adjustments: adjustments}
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		view.Items = append(view.Items, CartLineView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
		})
	}
	return view, nil
}

// Reconcile self-heals the cart against current catalog and ledger state:
// lines whose product is unlisted are removed, lines above the current
// ledger quantity are clamped down (deleted when the ledger is empty).
// It is idempotent and only touches lines that drifted.
func (s *CartService) Reconcile(userID string) (*models.Cart, []models.CartItem, []CartAdjustment, error) {
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := s.cartRepo.GetItems(cart.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	var kept []models.CartItem
	var adjustments []CartAdjustment
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil || !product.Show {
			if err != nil && !strings.Contains(err.Error(), "not found") {
				return nil, nil, nil, err
			}
			if err := s.cartRepo.DeleteItem(cart.ID, item.ID); err != nil {
				return nil, nil, nil, err
			}
			adjustments = append(adjustments, CartAdjustment{
				ProductID:   item.ProductID,
				Size:        item.Size,
				OldQuantity: item.Quantity,
				Reason:      "removed",
			})
			continue
		}

		available := 0
		if stock, err := s.stockRepo.Get(item.ProductID, item.Size); err == nil {
			available = stock.Quantity
		}
		if item.Quantity <= available {
			kept = append(kept, item)
			continue
		}

		adj := CartAdjustment{
			ProductID:   item.ProductID,
			Size:        item.Size,
			OldQuantity: item.Quantity,
			NewQuantity: available,
			Reason:      "adjusted",
		}
		if available == 0 {
			if err := s.cartRepo.DeleteItem(cart.ID, item.ID); err != nil {
				return nil, nil, nil, err
			}
		} else {
			item.Quantity = available
			if err := s.cartRepo.SaveItem(&item); err != nil {
				return nil, nil, nil, err
			}
			kept = append(kept, item)
		}
		adjustments = append(adjustments, adj)
	}

	return cart, kept, adjustments, nil
}

// AddItem adds quantity of (product, size) to the user's cart. An existing
// line for the same pair is incremented; the combined quantity must not
// exceed the current ledger quantity.
func (s *CartService) AddItem(userID, productID, size string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, apperr.NotFound("product %s not found", productID)
	}
	if !product.Show {
		return nil, apperr.NotFound("product %s is not listed", productID)
	}

	stock, err := s.stockRepo.Get(productID, size)
	if err != nil {
		return nil, apperr.NotFound("size %s is not available for product %s", size, productID)
	}

	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.FindItem(cart.ID, productID, size)
	if err != nil {
		return nil, err
	}
	requested := quantity
	if item != nil {
		requested += item.Quantity
	}
	if requested > stock.Quantity {
		return nil, apperr.InsufficientStock(productID, size, requested, stock.Quantity)
	}

	if item == nil {
		item = &models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Size:      size,
		}
	}
	item.Quantity = requested
	if err := s.cartRepo.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetQuantity replaces a line's quantity, enforcing the same ledger ceiling
// as AddItem.
func (s *CartService) SetQuantity(userID, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}
	item, err := s.cartRepo.GetItem(cart.ID, itemID)
	if err != nil {
		return nil, apperr.NotFound("cart item %s not found", itemID)
	}

	stock, err := s.stockRepo.Get(item.ProductID, item.Size)
	if err != nil {
		return nil, apperr.InsufficientStock(item.ProductID, item.Size, quantity, 0)
	}
	if quantity > stock.Quantity {
		return nil, apperr.InsufficientStock(item.ProductID, item.Size, quantity, stock.Quantity)
	}

	item.Quantity = quantity
	if err := s.cartRepo.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes a line from the user's cart.
func (s *CartService) RemoveItem(userID, itemID string) error {
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return err
	}
	if _, err := s.cartRepo.GetItem(cart.ID, itemID); err != nil {
		return apperr.NotFound("cart item %s not found", itemID)
	}
	return s.cartRepo.DeleteItem(cart.ID, itemID)
}
