package service

import (
	"context"
	"strings"

	"github.com/gosimple/slug"
	"github.com/managekarlo/backoffice/internal/clock"
	"github.com/managekarlo/backoffice/internal/config"
	"github.com/managekarlo/backoffice/internal/tenant/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Cfg   config.Config
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	cfg   config.Config
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) *Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("tenant.service"),
		cfg:   p.Cfg,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) GetOrCreate(ctx context.Context, id string) (domain.Tenant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Tenant{}, domain.ErrInvalidTenant
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Tenant{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	now := s.clock.Now()
	fresh := domain.Tenant{
		ID:            id,
		Slug:          slug.Make(s.cfg.DefaultStoreName),
		StoreName:     s.cfg.DefaultStoreName,
		InvoicePrefix: s.cfg.DefaultInvoicePrefix,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Concurrent first access races here; the conditional insert makes the
	// loser fall through to the winner's row.
	inserted, err := s.repo.InsertIfAbsent(ctx, s.db, &fresh)
	if err != nil {
		return domain.Tenant{}, err
	}
	if inserted {
		s.log.Info("tenant initialized", zap.String("tenant_id", id))
		return fresh, nil
	}

	existing, err = s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Tenant{}, err
	}
	if existing == nil {
		return domain.Tenant{}, domain.ErrTenantNotFound
	}
	return *existing, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Tenant, error) {
	existing, err := s.repo.FindByID(ctx, s.db, strings.TrimSpace(id))
	if err != nil {
		return domain.Tenant{}, err
	}
	if existing == nil {
		return domain.Tenant{}, domain.ErrTenantNotFound
	}
	return *existing, nil
}

func (s *Service) UpdateSettings(ctx context.Context, id string, req domain.UpdateSettingsRequest) (domain.Tenant, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.Tenant{}, err
	}

	storeName := strings.TrimSpace(req.StoreName)
	if storeName == "" {
		return domain.Tenant{}, domain.ErrInvalidStoreName
	}
	current.StoreName = storeName
	current.Slug = slug.Make(storeName)

	if req.Address != nil {
		current.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		current.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		current.Email = strings.TrimSpace(*req.Email)
	}
	if req.LogoURL != nil {
		current.LogoURL = strings.TrimSpace(*req.LogoURL)
	}
	if req.InvoicePrefix != nil {
		if prefix := strings.TrimSpace(*req.InvoicePrefix); prefix != "" {
			current.InvoicePrefix = strings.ToUpper(prefix)
		}
	}
	current.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdateSettings(ctx, s.db, &current); err != nil {
		return domain.Tenant{}, err
	}
	return current, nil
}
