package domain

import "time"

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
)

func (p Period) Valid() bool {
	return p == PeriodDaily || p == PeriodMonthly
}

// Report is a pure aggregation over invoices and expenses, matched by date.
// Records with malformed dates are excluded, never fatal.
type Report struct {
	TenantID      string    `json:"tenant_id"`
	Period        Period    `json:"period"`
	Anchor        string    `json:"anchor"`
	SalesTotal    float64   `json:"sales_total"`
	ExpensesTotal float64   `json:"expenses_total"`
	NetTotal      float64   `json:"net_total"`
	InvoiceCount  int       `json:"invoice_count"`
	ExpenseCount  int       `json:"expense_count"`
	Summary       string    `json:"summary"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// InvoiceRow is the slice of an invoice the aggregator needs.
type InvoiceRow struct {
	InvoiceDate string
	CreatedAt   time.Time
	Total       float64
}

type ExpenseRow struct {
	Date   string
	Amount float64
}
