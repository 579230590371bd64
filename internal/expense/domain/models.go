package domain

import "time"

// Expense is a standalone outgoing entry. It never touches the stock ledger
// and is read back only by reporting.
type Expense struct {
	ID          int64     `json:"id,string" gorm:"primaryKey"`
	TenantID    string    `json:"tenant_id" gorm:"index:ix_expenses_tenant_date,priority:1"`
	Date        string    `json:"date" gorm:"index:ix_expenses_tenant_date,priority:2"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}
