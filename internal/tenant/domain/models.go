// Package domain contains the tenant model and service contracts. A tenant is
// one isolated store account; every other collection hangs off it.
package domain

import "time"

// Tenant owns all state for one store: profile, settings and the invoice
// counter. The ID comes from the identity layer and is opaque here.
type Tenant struct {
	ID             string    `json:"id" gorm:"primaryKey;type:text"`
	Slug           string    `json:"slug" gorm:"type:text;not null;default:''"`
	StoreName      string    `json:"store_name" gorm:"type:text;not null"`
	Address        string    `json:"address" gorm:"type:text;not null;default:''"`
	Phone          string    `json:"phone" gorm:"type:text;not null;default:''"`
	Email          string    `json:"email" gorm:"type:text;not null;default:''"`
	LogoURL        string    `json:"logo_url" gorm:"type:text;not null;default:''"`
	InvoicePrefix  string    `json:"invoice_prefix" gorm:"type:text;not null;default:'RS'"`
	InvoiceCounter int64     `json:"invoice_counter" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Tenant) TableName() string { return "tenants" }
