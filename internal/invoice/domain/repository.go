package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	InsertItems(ctx context.Context, db *gorm.DB, items []InvoiceItem) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID string, id int64) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, tenantID string, filter ListRequest) ([]Invoice, error)
	ListItems(ctx context.Context, db *gorm.DB, invoiceIDs []int64) ([]InvoiceItem, error)
	UpdatePayment(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Delete(ctx context.Context, db *gorm.DB, tenantID string, id int64) (bool, error)
}
