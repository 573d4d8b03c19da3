package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// RepoSet bundles the repositories a checkout transaction touches, all bound
// to the same underlying transaction.
type RepoSet struct {
	Products ProductRepository
	Stock    StockRepository
	Carts    CartRepository
	Orders   OrderRepository
}

// TxManager runs a function inside a single atomic transaction. Returning an
// error from fn rolls everything back; commit is the single durability point.
type TxManager interface {
	InTx(fn func(RepoSet) error) error
}

// GORMTxManager implements TxManager on a GORM database.
type GORMTxManager struct {
	db *gorm.DB
}

// NewGORMTxManager creates a new instance of GORMTxManager.
func NewGORMTxManager(db *gorm.DB) *GORMTxManager {
	return &GORMTxManager{
		db: db,
	}
}

// InTx opens a database transaction and hands fn a RepoSet bound to it.
func (m *GORMTxManager) InTx(fn func(RepoSet) error) error {
	err := m.db.Transaction(func(tx *gorm.DB) error {
		return fn(RepoSet{
			Products: NewGORMProductRepository(tx),
			Stock:    NewGORMStockRepository(tx),
			Carts:    NewGORMCartRepository(tx),
			Orders:   NewGORMOrderRepository(tx),
		})
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
