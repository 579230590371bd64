package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/managekarlo/backoffice/internal/clock"
	"github.com/managekarlo/backoffice/internal/observability/metrics"
	"github.com/managekarlo/backoffice/internal/stock/domain"
	"github.com/managekarlo/backoffice/internal/tenantctx"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Repo    domain.Repository
	Metrics *metrics.Metrics
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	clock   clock.Clock
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Ledger {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("stock.service"),
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Append(ctx context.Context, db *gorm.DB, req domain.AppendRequest) (*domain.StockTransaction, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}
	if !req.Type.Valid() {
		return nil, domain.ErrInvalidType
	}

	applied, err := s.repo.ApplyDelta(ctx, db, tenantID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, domain.ErrProductNotFound
	}

	now := s.clock.Now()
	trx := &domain.StockTransaction{
		ID:          ulid.Make().String(),
		TenantID:    tenantID,
		ProductID:   req.ProductID,
		Type:        req.Type,
		Quantity:    req.Quantity,
		ReferenceID: strings.TrimSpace(req.ReferenceID),
		Notes:       strings.TrimSpace(req.Notes),
		OccurredAt:  now,
		CreatedAt:   now,
	}
	if err := s.repo.Insert(ctx, db, trx); err != nil {
		return nil, err
	}

	s.metrics.RecordStockTransaction(ctx, tenantID, string(req.Type))
	s.log.Info("stock transaction appended",
		zap.String("tenant_id", tenantID),
		zap.String("transaction_id", trx.ID),
		zap.Int64("product_id", trx.ProductID),
		zap.String("type", string(trx.Type)),
		zap.Float64("quantity", trx.Quantity),
	)
	return trx, nil
}

func (s *Service) Adjust(ctx context.Context, req domain.AppendRequest) (*domain.StockTransaction, error) {
	var trx *domain.StockTransaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		trx, err = s.Append(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return trx, nil
}

func (s *Service) CurrentQuantity(ctx context.Context, productID string) (float64, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return 0, domain.ErrInvalidTenant
	}

	id, err := parseProductID(productID)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	qty, found, err := s.repo.Quantity(ctx, s.db, tenantID, id)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, domain.ErrProductNotFound
	}
	return qty, nil
}

func (s *Service) History(ctx context.Context, productID string) ([]domain.StockTransaction, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	id, err := parseProductID(productID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	if _, found, err := s.repo.Quantity(ctx, s.db, tenantID, id); err != nil {
		return nil, err
	} else if !found {
		return nil, domain.ErrProductNotFound
	}
	return s.repo.ListByProduct(ctx, s.db, tenantID, id)
}

func parseProductID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	return id.Int64(), nil
}
