package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/managekarlo/backoffice/internal/clock"
	"github.com/managekarlo/backoffice/internal/form"
	"github.com/managekarlo/backoffice/internal/product/domain"
	"github.com/managekarlo/backoffice/internal/tenantctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Product, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	id := s.genID.Generate().Int64()
	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		sku = fmt.Sprintf("SKU-%d", id)
	}
	barcode := strings.TrimSpace(req.Barcode)
	if barcode == "" {
		barcode = fmt.Sprintf("BC-%d", id)
	}

	now := s.clock.Now()
	p := &domain.Product{
		ID:            id,
		TenantID:      tenantID,
		Name:          name,
		Description:   strings.TrimSpace(req.Description),
		SKU:           sku,
		Barcode:       barcode,
		Category:      strings.TrimSpace(req.Category),
		Brand:         strings.TrimSpace(req.Brand),
		UnitPrice:     form.Amount(req.UnitPrice),
		CostPrice:     form.Amount(req.CostPrice),
		StockQuantity: form.Amount(req.StockQuantity),
		MinStockLevel: form.Amount(req.MinStockLevel),
		SupplierID:    form.OptionalID(req.SupplierID),
		Metadata:      datatypes.JSONMap{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, s.db, p); err != nil {
		return nil, err
	}

	s.log.Info("product created",
		zap.String("tenant_id", tenantID),
		zap.Int64("product_id", p.ID),
		zap.String("sku", p.SKU),
	)
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	productID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	p, err := s.repo.FindByID(ctx, s.db, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Product, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	return s.repo.List(ctx, s.db, tenantID, req)
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*domain.Product, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			current.Name = name
		}
	}
	if req.Description != nil {
		current.Description = strings.TrimSpace(*req.Description)
	}
	// SKU and barcode merge on empty: a blank submission keeps the stored
	// value instead of wiping it.
	if req.SKU != nil {
		if sku := strings.TrimSpace(*req.SKU); sku != "" {
			current.SKU = sku
		}
	}
	if req.Barcode != nil {
		if barcode := strings.TrimSpace(*req.Barcode); barcode != "" {
			current.Barcode = barcode
		}
	}
	if req.Category != nil {
		current.Category = strings.TrimSpace(*req.Category)
	}
	if req.Brand != nil {
		current.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.UnitPrice != nil {
		current.UnitPrice = form.Amount(*req.UnitPrice)
	}
	if req.CostPrice != nil {
		current.CostPrice = form.Amount(*req.CostPrice)
	}
	if req.MinStockLevel != nil {
		current.MinStockLevel = form.Amount(*req.MinStockLevel)
	}
	if req.SupplierID != nil {
		current.SupplierID = form.OptionalID(req.SupplierID)
	}
	current.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return domain.ErrInvalidTenant
	}

	productID, err := parseID(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	deleted, err := s.repo.Delete(ctx, s.db, tenantID, productID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}

	s.log.Info("product deleted",
		zap.String("tenant_id", tenantID),
		zap.Int64("product_id", productID),
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
