package repository

import (
	"context"

	"github.com/managekarlo/backoffice/internal/report/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InvoiceRows(ctx context.Context, db *gorm.DB, tenantID string) ([]domain.InvoiceRow, error) {
	var rows []domain.InvoiceRow
	err := db.WithContext(ctx).Raw(
		`SELECT invoice_date, created_at, total FROM invoices WHERE tenant_id = ?`,
		tenantID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) ExpenseRows(ctx context.Context, db *gorm.DB, tenantID string) ([]domain.ExpenseRow, error) {
	var rows []domain.ExpenseRow
	err := db.WithContext(ctx).Raw(
		`SELECT date, amount FROM expenses WHERE tenant_id = ?`,
		tenantID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
