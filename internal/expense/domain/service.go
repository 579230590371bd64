package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidTenant      = errors.New("invalid_tenant")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("expense_not_found")
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Expense, error)
	List(ctx context.Context, req ListRequest) ([]*Expense, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest carries raw form input, amount coerces leniently.
type CreateRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
}

type ListRequest struct {
	Date     string
	Category string
}
