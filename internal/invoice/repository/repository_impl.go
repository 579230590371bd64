package repository

import (
	"context"

	"github.com/managekarlo/backoffice/internal/invoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO invoices (
			id, tenant_id, invoice_number, invoice_date,
			customer_name, customer_phone, customer_address, customer_gstin,
			subtotal, discount, tax, total,
			payment_mode, payment_reference, notes, metadata,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.TenantID,
		invoice.InvoiceNumber,
		invoice.InvoiceDate,
		invoice.CustomerName,
		invoice.CustomerPhone,
		invoice.CustomerAddress,
		invoice.CustomerGSTIN,
		invoice.Subtotal,
		invoice.Discount,
		invoice.Tax,
		invoice.Total,
		invoice.PaymentMode,
		invoice.PaymentReference,
		invoice.Notes,
		invoice.Metadata,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	).Error
}

func (r *repo) InsertItems(ctx context.Context, db *gorm.DB, items []domain.InvoiceItem) error {
	for i := range items {
		item := &items[i]
		err := db.WithContext(ctx).Exec(
			`INSERT INTO invoice_items (
				id, invoice_id, product_id, description,
				quantity, unit_price, line_total
			) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			item.ID,
			item.InvoiceID,
			item.ProductID,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.LineTotal,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, tenantID string, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := db.WithContext(ctx).Raw(
		`SELECT id, tenant_id, invoice_number, invoice_date,
		        customer_name, customer_phone, customer_address, customer_gstin,
		        subtotal, discount, tax, total,
		        payment_mode, payment_reference, notes, metadata,
		        created_at, updated_at
		 FROM invoices WHERE tenant_id = ? AND id = ?`,
		tenantID,
		id,
	).Scan(&inv).Error
	if err != nil {
		return nil, err
	}
	if inv.ID == 0 {
		return nil, nil
	}
	return &inv, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, tenantID string, filter domain.ListRequest) ([]domain.Invoice, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("tenant_id = ?", tenantID)

	if filter.CustomerPhone != "" {
		stmt = stmt.Where("customer_phone = ?", filter.CustomerPhone)
	}
	if filter.InvoiceDate != "" {
		stmt = stmt.Where("invoice_date = ?", filter.InvoiceDate)
	}

	var items []domain.Invoice
	if err := stmt.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListItems(ctx context.Context, db *gorm.DB, invoiceIDs []int64) ([]domain.InvoiceItem, error) {
	if len(invoiceIDs) == 0 {
		return nil, nil
	}
	var items []domain.InvoiceItem
	err := db.WithContext(ctx).
		Model(&domain.InvoiceItem{}).
		Where("invoice_id IN ?", invoiceIDs).
		Order("invoice_id, id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdatePayment(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Exec(
		`UPDATE invoices
		 SET payment_mode = ?, notes = ?, updated_at = ?
		 WHERE tenant_id = ? AND id = ?`,
		invoice.PaymentMode,
		invoice.Notes,
		invoice.UpdatedAt,
		invoice.TenantID,
		invoice.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, tenantID string, id int64) (bool, error) {
	result := db.WithContext(ctx).Exec(
		`DELETE FROM invoices WHERE tenant_id = ? AND id = ?`,
		tenantID,
		id,
	)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	err := db.WithContext(ctx).Exec(
		`DELETE FROM invoice_items WHERE invoice_id = ?`,
		id,
	).Error
	if err != nil {
		return false, err
	}
	return true, nil
}
