package repository

import (
	"context"

	"github.com/managekarlo/backoffice/internal/stock/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, trx *domain.StockTransaction) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO stock_transactions (
			id, tenant_id, product_id, type, quantity,
			reference_id, notes, occurred_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trx.ID,
		trx.TenantID,
		trx.ProductID,
		trx.Type,
		trx.Quantity,
		trx.ReferenceID,
		trx.Notes,
		trx.OccurredAt,
		trx.CreatedAt,
	).Error
}

func (r *repo) ApplyDelta(ctx context.Context, db *gorm.DB, tenantID string, productID int64, delta float64) (bool, error) {
	result := db.WithContext(ctx).Exec(
		`UPDATE products
		 SET stock_quantity = stock_quantity + ?, updated_at = CURRENT_TIMESTAMP
		 WHERE tenant_id = ? AND id = ?`,
		delta,
		tenantID,
		productID,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repo) Quantity(ctx context.Context, db *gorm.DB, tenantID string, productID int64) (float64, bool, error) {
	var row struct {
		ID            int64
		StockQuantity float64
	}
	err := db.WithContext(ctx).Raw(
		`SELECT id, stock_quantity FROM products WHERE tenant_id = ? AND id = ?`,
		tenantID,
		productID,
	).Scan(&row).Error
	if err != nil {
		return 0, false, err
	}
	if row.ID == 0 {
		return 0, false, nil
	}
	return row.StockQuantity, true, nil
}

func (r *repo) ListByProduct(ctx context.Context, db *gorm.DB, tenantID string, productID int64) ([]domain.StockTransaction, error) {
	var items []domain.StockTransaction
	err := db.WithContext(ctx).Raw(
		`SELECT id, tenant_id, product_id, type, quantity,
		        reference_id, notes, occurred_at, created_at
		 FROM stock_transactions
		 WHERE tenant_id = ? AND product_id = ?
		 ORDER BY created_at DESC, id DESC`,
		tenantID,
		productID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
