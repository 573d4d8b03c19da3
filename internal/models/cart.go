package models

import "gorm.io/gorm"

// Cart is the per-user mutable collection of desired items. One cart per
// user, created lazily on first access.
type Cart struct {
	ID     string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID string `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	gorm.Model
}

// CartItem is one (product, size, quantity) line in a cart. Lines are
// unique per (cart, product, size); adding the same pair again increments
// the existing line instead of creating a new one.
type CartItem struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID    string `json:"cart_id" gorm:"uniqueIndex:idx_cart_product_size;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"uniqueIndex:idx_cart_product_size;type:varchar(36)"`
	Size      string `json:"size" gorm:"uniqueIndex:idx_cart_product_size;type:varchar(5)"`
	Quantity  int    `json:"quantity"`
	gorm.Model
}
