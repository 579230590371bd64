// Package domain contains the product catalog model and contracts.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Product is one inventory item. StockQuantity is a derived value: it must
// equal the sum of all stock-transaction deltas for this product and is only
// mutated by the stock ledger, never directly.
type Product struct {
	ID            int64             `json:"id" gorm:"primaryKey"`
	TenantID      string            `json:"tenant_id" gorm:"type:text;not null;index"`
	Name          string            `json:"name" gorm:"type:text;not null"`
	Description   string            `json:"description" gorm:"type:text;not null;default:''"`
	SKU           string            `json:"sku" gorm:"type:text;not null;index"`
	Barcode       string            `json:"barcode" gorm:"type:text;not null;default:''"`
	Category      string            `json:"category" gorm:"type:text;not null;default:''"`
	Brand         string            `json:"brand" gorm:"type:text;not null;default:''"`
	UnitPrice     float64           `json:"unit_price" gorm:"not null;default:0"`
	CostPrice     float64           `json:"cost_price" gorm:"not null;default:0"`
	StockQuantity float64           `json:"stock_quantity" gorm:"not null;default:0"`
	MinStockLevel float64           `json:"min_stock_level" gorm:"not null;default:0"`
	SupplierID    *int64            `json:"supplier_id,omitempty" gorm:"index"`
	Metadata      datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time         `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }

// LowStock reports whether the product is at or below its reorder threshold.
func (p Product) LowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}
