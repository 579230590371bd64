package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	InvoiceRows(ctx context.Context, db *gorm.DB, tenantID string) ([]InvoiceRow, error)
	ExpenseRows(ctx context.Context, db *gorm.DB, tenantID string) ([]ExpenseRow, error)
}
