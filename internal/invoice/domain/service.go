package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidTenant    = errors.New("invalid_tenant")
	ErrInvalidID        = errors.New("invalid_id")
	ErrNotFound         = errors.New("invoice_not_found")
	ErrNotCreditInvoice = errors.New("not_credit_invoice")
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Invoice, error)
	Get(ctx context.Context, id string) (*Invoice, error)
	List(ctx context.Context, req ListRequest) ([]Invoice, error)
	// Delete removes the invoice and its items. Stock transactions posted at
	// creation are left in place, inventory is not restocked.
	Delete(ctx context.Context, id string) error
	// ConvertPaymentMode flips a CREDIT invoice to CASH and appends a
	// timestamped note. Any other current mode is a state conflict.
	ConvertPaymentMode(ctx context.Context, id string) (*Invoice, error)
}

// CreateRequest carries raw form input. Numeric fields arrive as strings and
// coerce leniently, unparsable values become zero.
type CreateRequest struct {
	InvoiceDate      string        `json:"invoice_date"`
	CustomerName     string        `json:"customer_name"`
	CustomerPhone    string        `json:"customer_phone"`
	CustomerAddress  string        `json:"customer_address"`
	CustomerGSTIN    string        `json:"customer_gstin"`
	Discount         string        `json:"discount"`
	Tax              string        `json:"tax"`
	PaymentMode      string        `json:"payment_mode"`
	PaymentReference string        `json:"payment_reference"`
	Notes            string        `json:"notes"`
	Items            []ItemRequest `json:"items"`
}

type ItemRequest struct {
	ProductID   *string `json:"product_id"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`
}

type ListRequest struct {
	CustomerPhone string
	InvoiceDate   string
}
