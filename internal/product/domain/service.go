package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidTenant = errors.New("invalid_tenant")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("product_not_found")
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, req ListRequest) ([]Product, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Product, error)
	// Delete removes the product unconditionally. Invoices and stock
	// transactions keep their references; lookups through them resolve to
	// ErrNotFound afterwards.
	Delete(ctx context.Context, id string) error
}

// CreateRequest carries raw form input. Numeric fields arrive as strings and
// are coerced leniently: unparsable input becomes zero rather than an error.
type CreateRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	SKU           string  `json:"sku"`
	Barcode       string  `json:"barcode"`
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
	UnitPrice     string  `json:"unit_price"`
	CostPrice     string  `json:"cost_price"`
	StockQuantity string  `json:"stock_quantity"`
	MinStockLevel string  `json:"min_stock_level"`
	SupplierID    *string `json:"supplier_id"`
}

// UpdateRequest uses pointers for optional fields. SKU and barcode follow
// merge-on-empty semantics: a blank incoming value keeps the stored one.
type UpdateRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	SKU           *string `json:"sku"`
	Barcode       *string `json:"barcode"`
	Category      *string `json:"category"`
	Brand         *string `json:"brand"`
	UnitPrice     *string `json:"unit_price"`
	CostPrice     *string `json:"cost_price"`
	MinStockLevel *string `json:"min_stock_level"`
	SupplierID    *string `json:"supplier_id"`
}

type ListRequest struct {
	Name     string
	Category string
	LowStock bool
	SortBy   string
	OrderBy  string
}
