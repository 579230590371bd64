package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, trx *StockTransaction) error
	// ApplyDelta moves the cached product quantity; reports whether the
	// product row existed.
	ApplyDelta(ctx context.Context, db *gorm.DB, tenantID string, productID int64, delta float64) (bool, error)
	Quantity(ctx context.Context, db *gorm.DB, tenantID string, productID int64) (float64, bool, error)
	ListByProduct(ctx context.Context, db *gorm.DB, tenantID string, productID int64) ([]StockTransaction, error)
}
