package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Tenant, error)
	// InsertIfAbsent writes the tenant unless one with the same ID already
	// exists. Returns true when the row was inserted.
	InsertIfAbsent(ctx context.Context, db *gorm.DB, tenant *Tenant) (bool, error)
	UpdateSettings(ctx context.Context, db *gorm.DB, tenant *Tenant) error
}
