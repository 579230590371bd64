package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/managekarlo/backoffice/internal/clock"
	"github.com/managekarlo/backoffice/internal/expense/domain"
	"github.com/managekarlo/backoffice/internal/form"
	"github.com/managekarlo/backoffice/internal/tenantctx"
	"github.com/managekarlo/backoffice/pkg/db/option"
	"github.com/managekarlo/backoffice/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  repository.Repository[domain.Expense]
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  repository.Repository[domain.Expense]
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("expense.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Expense, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, domain.ErrInvalidDescription
	}

	now := s.clock.Now()
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = now.Format("2006-01-02")
	}

	expense := &domain.Expense{
		ID:          s.genID.Generate().Int64(),
		TenantID:    tenantID,
		Date:        date,
		Description: description,
		Category:    strings.TrimSpace(req.Category),
		Amount:      form.Amount(req.Amount),
		CreatedAt:   now,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.log.Info("expense recorded",
		zap.String("tenant_id", tenantID),
		zap.Int64("expense_id", expense.ID),
		zap.Float64("amount", expense.Amount),
	)
	return expense, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]*domain.Expense, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	query := &domain.Expense{
		TenantID: tenantID,
		Category: strings.TrimSpace(req.Category),
	}
	opts := []option.QueryOption{
		option.WithSortBy(option.WithQuerySortBy("date", "desc", map[string]bool{
			"date": true,
		})),
	}
	if date := strings.TrimSpace(req.Date); date != "" {
		opts = append(opts, option.ApplyOperator(option.Condition{
			Field:    "date",
			Operator: option.EQ,
			Value:    date,
		}))
	}
	return s.repo.Find(ctx, query, opts...)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return domain.ErrInvalidTenant
	}

	expenseID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	existing, err := s.repo.FindOne(ctx, &domain.Expense{ID: expenseID.Int64(), TenantID: tenantID})
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := s.repo.Delete(ctx, expenseID.String()); err != nil {
		return err
	}

	s.log.Info("expense deleted",
		zap.String("tenant_id", tenantID),
		zap.Int64("expense_id", existing.ID),
	)
	return nil
}
