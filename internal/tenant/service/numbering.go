package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/managekarlo/backoffice/internal/tenant/domain"
	"gorm.io/gorm"
)

// NextInvoiceNumber atomically bumps the tenant counter and formats the next
// number as {PREFIX}-{YYYY}-{NNNN}. The UPDATE takes the tenant row lock, so
// two transactions allocating for the same tenant are serialized and can never
// read the same counter value. The counter never resets; the year portion is
// cosmetic and the numeric suffix keeps growing across year boundaries.
func (s *Service) NextInvoiceNumber(ctx context.Context, tx *gorm.DB, tenantID string) (string, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return "", domain.ErrInvalidTenant
	}

	result := tx.WithContext(ctx).Exec(
		`UPDATE tenants
		 SET invoice_counter = invoice_counter + 1, updated_at = ?
		 WHERE id = ?`,
		s.clock.Now(),
		tenantID,
	)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", domain.ErrTenantNotFound
	}

	var row struct {
		InvoicePrefix  string
		InvoiceCounter int64
	}
	if err := tx.WithContext(ctx).Raw(
		`SELECT invoice_prefix, invoice_counter FROM tenants WHERE id = ?`,
		tenantID,
	).Scan(&row).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%d-%04d", row.InvoicePrefix, s.clock.Now().Year(), row.InvoiceCounter), nil
}
