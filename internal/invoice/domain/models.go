package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Invoice struct {
	ID               int64             `json:"id,string" gorm:"primaryKey"`
	TenantID         string            `json:"tenant_id" gorm:"index"`
	InvoiceNumber    string            `json:"invoice_number"`
	InvoiceDate      string            `json:"invoice_date"`
	CustomerName     string            `json:"customer_name"`
	CustomerPhone    string            `json:"customer_phone"`
	CustomerAddress  string            `json:"customer_address"`
	CustomerGSTIN    string            `json:"customer_gstin"`
	Subtotal         float64           `json:"subtotal"`
	Discount         float64           `json:"discount"`
	Tax              float64           `json:"tax"`
	Total            float64           `json:"total"`
	PaymentMode      string            `json:"payment_mode"`
	PaymentReference string            `json:"payment_reference"`
	Notes            string            `json:"notes"`
	Metadata         datatypes.JSONMap `json:"metadata"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`

	Items []InvoiceItem `json:"items" gorm:"-"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type InvoiceItem struct {
	ID          int64   `json:"id,string" gorm:"primaryKey"`
	InvoiceID   int64   `json:"invoice_id,string" gorm:"index"`
	ProductID   *int64  `json:"product_id,string"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

func (InvoiceItem) TableName() string {
	return "invoice_items"
}
