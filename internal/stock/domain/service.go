package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrInvalidTenant   = errors.New("invalid_tenant")
	ErrInvalidType     = errors.New("invalid_transaction_type")
	ErrInvalidID       = errors.New("invalid_id")
	ErrProductNotFound = errors.New("product_not_found")
)

// Ledger is the only writer of products.stock_quantity. The ledger itself is
// append-only: there is no update or delete, corrections are new entries with
// a negated delta.
type Ledger interface {
	// Append records one transaction and moves the cached quantity inside the
	// given handle, which may be the service's own DB or a transaction owned
	// by the caller.
	Append(ctx context.Context, db *gorm.DB, req AppendRequest) (*StockTransaction, error)
	// Adjust wraps a single Append in its own transaction.
	Adjust(ctx context.Context, req AppendRequest) (*StockTransaction, error)
	CurrentQuantity(ctx context.Context, productID string) (float64, error)
	History(ctx context.Context, productID string) ([]StockTransaction, error)
}

type AppendRequest struct {
	ProductID   int64           `json:"product_id"`
	Type        TransactionType `json:"type"`
	Quantity    float64         `json:"quantity"`
	ReferenceID string          `json:"reference_id"`
	Notes       string          `json:"notes"`
}
