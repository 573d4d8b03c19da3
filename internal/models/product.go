package models

import "gorm.io/gorm"

// Product represents a product in the store. Prices are held in minor
// currency units (paisa) so money arithmetic stays integer-exact.
// Unlisting a product sets Show=false rather than deleting the row, so
// historical order items keep a valid product reference.
type Product struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Price       int64  `json:"price" validate:"required,gt=0"` // paisa
	Category    string `json:"category" gorm:"type:varchar(10)" validate:"required,oneof=Men Women Kids"`
	Subcategory string `json:"subcategory" gorm:"type:varchar(20)" validate:"required,oneof=Topwear Bottomwear"`
	Bestseller  bool   `json:"bestseller"`
	Show        bool   `json:"show" gorm:"default:true"`
	gorm.Model
}

// ProductStock is the inventory ledger entry for one (product, size) pair.
// Quantity is the single source of truth for sellable units and is only
// debited inside the payment-verification transaction.
type ProductStock struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"uniqueIndex:idx_product_size;type:varchar(36)"`
	Size      string `json:"size" gorm:"uniqueIndex:idx_product_size;type:varchar(5)" validate:"required,oneof=S M L XL"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	gorm.Model
}
