package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidTenant = errors.New("invalid_tenant")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("supplier_not_found")
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Supplier, error)
	Get(ctx context.Context, id string) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Supplier, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

type UpdateRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
}
