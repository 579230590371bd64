package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrInvalidTenant    = errors.New("invalid_tenant")
	ErrTenantNotFound   = errors.New("tenant_not_found")
	ErrInvalidStoreName = errors.New("invalid_store_name")
)

type Service interface {
	// GetOrCreate returns the tenant, initializing a fresh one with default
	// settings and a zero counter on first access. Callers never observe a
	// partially initialized tenant.
	GetOrCreate(ctx context.Context, id string) (Tenant, error)
	Get(ctx context.Context, id string) (Tenant, error)
	UpdateSettings(ctx context.Context, id string, req UpdateSettingsRequest) (Tenant, error)
}

// Numbering allocates invoice numbers. NextInvoiceNumber must be called inside
// the transaction that persists the invoice: the counter update takes the
// tenant row lock, serializing allocation per tenant.
type Numbering interface {
	NextInvoiceNumber(ctx context.Context, tx *gorm.DB, tenantID string) (string, error)
}

type UpdateSettingsRequest struct {
	StoreName     string  `json:"store_name"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	LogoURL       *string `json:"logo_url"`
	InvoicePrefix *string `json:"invoice_prefix"`
}
