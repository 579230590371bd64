package domain

import "time"

type TransactionType string

const (
	TransactionSale       TransactionType = "sale"
	TransactionPurchase   TransactionType = "purchase"
	TransactionAdjustment TransactionType = "adjustment"
	TransactionReturn     TransactionType = "return"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionSale, TransactionPurchase, TransactionAdjustment, TransactionReturn:
		return true
	}
	return false
}

// StockTransaction is one row of the append-only stock ledger. Quantity is a
// signed delta; the cached products.stock_quantity column is the running sum.
type StockTransaction struct {
	ID          string          `json:"id" gorm:"primaryKey;type:text"`
	TenantID    string          `json:"tenant_id" gorm:"index:ix_stock_transactions_tenant_product,priority:1"`
	ProductID   int64           `json:"product_id" gorm:"index:ix_stock_transactions_tenant_product,priority:2"`
	Type        TransactionType `json:"type"`
	Quantity    float64         `json:"quantity"`
	ReferenceID string          `json:"reference_id"`
	Notes       string          `json:"notes"`
	OccurredAt  time.Time       `json:"occurred_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (StockTransaction) TableName() string {
	return "stock_transactions"
}
