package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/managekarlo/backoffice/internal/clock"
	"github.com/managekarlo/backoffice/internal/supplier/domain"
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
	Repo  repository.Repository[domain.Supplier]
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  repository.Repository[domain.Supplier]
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("supplier.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Supplier, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := s.clock.Now()
	supplier := &domain.Supplier{
		ID:            s.genID.Generate().Int64(),
		TenantID:      tenantID,
		Name:          name,
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Phone:         strings.TrimSpace(req.Phone),
		Email:         strings.TrimSpace(req.Email),
		Address:       strings.TrimSpace(req.Address),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	s.log.Info("supplier created",
		zap.String("tenant_id", tenantID),
		zap.Int64("supplier_id", supplier.ID),
	)
	return supplier, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	supplierID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	supplier, err := s.repo.FindOne(ctx, &domain.Supplier{ID: supplierID, TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Supplier, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	return s.repo.Find(ctx, &domain.Supplier{TenantID: tenantID},
		option.WithSortBy(option.WithQuerySortBy("name", "asc", map[string]bool{
			"name": true,
		})))
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*domain.Supplier, error) {
	supplier, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			supplier.Name = name
		}
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = strings.TrimSpace(*req.ContactPerson)
	}
	if req.Phone != nil {
		supplier.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		supplier.Email = strings.TrimSpace(*req.Email)
	}
	if req.Address != nil {
		supplier.Address = strings.TrimSpace(*req.Address)
	}
	supplier.UpdatedAt = s.clock.Now()

	err = s.repo.Update(ctx, snowflake.ID(supplier.ID).String(), map[string]any{
		"name":           supplier.Name,
		"contact_person": supplier.ContactPerson,
		"phone":          supplier.Phone,
		"email":          supplier.Email,
		"address":        supplier.Address,
		"updated_at":     supplier.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	supplier, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, snowflake.ID(supplier.ID).String()); err != nil {
		return err
	}

	s.log.Info("supplier deleted",
		zap.String("tenant_id", supplier.TenantID),
		zap.Int64("supplier_id", supplier.ID),
	)
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	return id.Int64(), nil
}
