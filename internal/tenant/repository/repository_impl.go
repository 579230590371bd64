package repository

import (
	"context"

	"github.com/managekarlo/backoffice/internal/tenant/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Tenant, error) {
	var t domain.Tenant
	err := db.WithContext(ctx).Raw(
		`SELECT id, slug, store_name, address, phone, email, logo_url,
		        invoice_prefix, invoice_counter, created_at, updated_at
		 FROM tenants WHERE id = ?`,
		id,
	).Scan(&t).Error
	if err != nil {
		return nil, err
	}
	if t.ID == "" {
		return nil, nil
	}
	return &t, nil
}

func (r *repo) InsertIfAbsent(ctx context.Context, db *gorm.DB, tenant *domain.Tenant) (bool, error) {
	result := db.WithContext(ctx).Exec(
		`INSERT INTO tenants (
			id, slug, store_name, address, phone, email, logo_url,
			invoice_prefix, invoice_counter, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		tenant.ID,
		tenant.Slug,
		tenant.StoreName,
		tenant.Address,
		tenant.Phone,
		tenant.Email,
		tenant.LogoURL,
		tenant.InvoicePrefix,
		tenant.InvoiceCounter,
		tenant.CreatedAt,
		tenant.UpdatedAt,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repo) UpdateSettings(ctx context.Context, db *gorm.DB, tenant *domain.Tenant) error {
	return db.WithContext(ctx).Exec(
		`UPDATE tenants
		 SET slug = ?, store_name = ?, address = ?, phone = ?, email = ?,
		     logo_url = ?, invoice_prefix = ?, updated_at = ?
		 WHERE id = ?`,
		tenant.Slug,
		tenant.StoreName,
		tenant.Address,
		tenant.Phone,
		tenant.Email,
		tenant.LogoURL,
		tenant.InvoicePrefix,
		tenant.UpdatedAt,
		tenant.ID,
	).Error
}
