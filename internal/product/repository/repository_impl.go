package repository

import (
	"context"

	"github.com/managekarlo/backoffice/internal/product/domain"
	"github.com/managekarlo/backoffice/pkg/db/option"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO products (
			id, tenant_id, name, description, sku, barcode, category, brand,
			unit_price, cost_price, stock_quantity, min_stock_level,
			supplier_id, metadata, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID,
		product.TenantID,
		product.Name,
		product.Description,
		product.SKU,
		product.Barcode,
		product.Category,
		product.Brand,
		product.UnitPrice,
		product.CostPrice,
		product.StockQuantity,
		product.MinStockLevel,
		product.SupplierID,
		product.Metadata,
		product.CreatedAt,
		product.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, tenantID string, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, tenant_id, name, description, sku, barcode, category, brand,
		        unit_price, cost_price, stock_quantity, min_stock_level,
		        supplier_id, metadata, created_at, updated_at
		 FROM products WHERE tenant_id = ? AND id = ?`,
		tenantID,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, tenantID string, filter domain.ListRequest) ([]domain.Product, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("tenant_id = ?", tenantID)

	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		stmt = stmt.Where("category = ?", filter.Category)
	}
	if filter.LowStock {
		stmt = stmt.Where("stock_quantity <= min_stock_level")
	}

	stmt = option.WithSortBy(option.WithQuerySortBy(filter.SortBy, filter.OrderBy, map[string]bool{
		"created_at":     true,
		"updated_at":     true,
		"name":           true,
		"stock_quantity": true,
	})).Apply(stmt)

	var items []domain.Product
	if err := stmt.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`UPDATE products
		 SET name = ?, description = ?, sku = ?, barcode = ?, category = ?,
		     brand = ?, unit_price = ?, cost_price = ?, min_stock_level = ?,
		     supplier_id = ?, updated_at = ?
		 WHERE tenant_id = ? AND id = ?`,
		product.Name,
		product.Description,
		product.SKU,
		product.Barcode,
		product.Category,
		product.Brand,
		product.UnitPrice,
		product.CostPrice,
		product.MinStockLevel,
		product.SupplierID,
		product.UpdatedAt,
		product.TenantID,
		product.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, tenantID string, id int64) (bool, error) {
	result := db.WithContext(ctx).Exec(
		`DELETE FROM products WHERE tenant_id = ? AND id = ?`,
		tenantID,
		id,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
