package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidTenant = errors.New("invalid_tenant")
	ErrInvalidPeriod = errors.New("invalid_period")
	ErrInvalidAnchor = errors.New("invalid_anchor")
)

type Service interface {
	// BuildReport aggregates invoices and expenses for the anchored period.
	// Anchor is YYYY-MM-DD for daily, YYYY-MM for monthly.
	BuildReport(ctx context.Context, req BuildReportRequest) (*Report, error)
}

type BuildReportRequest struct {
	Period Period `json:"period"`
	Anchor string `json:"anchor"`
}
