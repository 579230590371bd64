package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/managekarlo/backoffice/internal/clock"
	"github.com/managekarlo/backoffice/internal/form"
	"github.com/managekarlo/backoffice/internal/invoice/domain"
	"github.com/managekarlo/backoffice/internal/observability/metrics"
	stockdomain "github.com/managekarlo/backoffice/internal/stock/domain"
	tenantdomain "github.com/managekarlo/backoffice/internal/tenant/domain"
	"github.com/managekarlo/backoffice/internal/tenantctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      domain.Repository
	Numbering tenantdomain.Numbering
	Ledger    stockdomain.Ledger
	Metrics   *metrics.Metrics
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	clock     clock.Clock
	repo      domain.Repository
	numbering tenantdomain.Numbering
	ledger    stockdomain.Ledger
	metrics   *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("invoice.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		repo:      p.Repo,
		numbering: p.Numbering,
		ledger:    p.Ledger,
		metrics:   p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Invoice, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	now := s.clock.Now()
	invoiceDate := strings.TrimSpace(req.InvoiceDate)
	if invoiceDate == "" {
		invoiceDate = now.Format("2006-01-02")
	}

	inv := &domain.Invoice{
		ID:               s.genID.Generate().Int64(),
		TenantID:         tenantID,
		InvoiceDate:      invoiceDate,
		CustomerName:     strings.TrimSpace(req.CustomerName),
		CustomerPhone:    strings.TrimSpace(req.CustomerPhone),
		CustomerAddress:  strings.TrimSpace(req.CustomerAddress),
		CustomerGSTIN:    strings.TrimSpace(req.CustomerGSTIN),
		Discount:         form.Amount(req.Discount),
		Tax:              form.Amount(req.Tax),
		PaymentMode:      strings.TrimSpace(req.PaymentMode),
		PaymentReference: strings.TrimSpace(req.PaymentReference),
		Notes:            strings.TrimSpace(req.Notes),
		Metadata:         datatypes.JSONMap{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// Items with a blank description are dropped outright, not stored hidden.
	for _, raw := range req.Items {
		description := strings.TrimSpace(raw.Description)
		if description == "" {
			continue
		}
		qty := form.Amount(raw.Quantity)
		price := form.Amount(raw.UnitPrice)
		inv.Items = append(inv.Items, domain.InvoiceItem{
			ID:          s.genID.Generate().Int64(),
			InvoiceID:   inv.ID,
			ProductID:   form.OptionalID(raw.ProductID),
			Description: description,
			Quantity:    qty,
			UnitPrice:   price,
			LineTotal:   qty * price,
		})
	}
	for _, item := range inv.Items {
		inv.Subtotal += item.LineTotal
	}
	// Total may go negative, the discount is taken at face value.
	inv.Total = inv.Subtotal - inv.Discount + inv.Tax

	err := s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.numbering.NextInvoiceNumber(ctx, tx, tenantID)
		if err != nil {
			return err
		}
		inv.InvoiceNumber = number

		if err := s.repo.Insert(ctx, tx, inv); err != nil {
			return err
		}
		if err := s.repo.InsertItems(ctx, tx, inv.Items); err != nil {
			return err
		}

		for _, item := range inv.Items {
			if item.ProductID == nil || item.Quantity <= 0 {
				continue
			}
			_, err := s.ledger.Append(ctx, tx, stockdomain.AppendRequest{
				ProductID:   *item.ProductID,
				Type:        stockdomain.TransactionSale,
				Quantity:    -item.Quantity,
				ReferenceID: strconv.FormatInt(inv.ID, 10),
				Notes:       fmt.Sprintf("Sale via invoice %s", number),
			})
			if errors.Is(err, stockdomain.ErrProductNotFound) {
				// Stale product reference on the form. The sale still goes
				// through, there is just no inventory to move.
				s.log.Warn("skipping stock posting for unknown product",
					zap.String("tenant_id", tenantID),
					zap.Int64("product_id", *item.ProductID),
					zap.String("invoice_number", number),
				)
				continue
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordInvoiceCreated(ctx, tenantID)
	s.log.Info("invoice created",
		zap.String("tenant_id", tenantID),
		zap.Int64("invoice_id", inv.ID),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.Float64("total", inv.Total),
	)
	return inv, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	invoiceID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	inv, err := s.repo.FindByID(ctx, s.db, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	items, err := s.repo.ListItems(ctx, s.db, []int64{inv.ID})
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Invoice, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}

	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.InvoiceDate = strings.TrimSpace(req.InvoiceDate)

	invoices, err := s.repo.List(ctx, s.db, tenantID, req)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return invoices, nil
	}

	ids := make([]int64, 0, len(invoices))
	for i := range invoices {
		ids = append(ids, invoices[i].ID)
	}
	items, err := s.repo.ListItems(ctx, s.db, ids)
	if err != nil {
		return nil, err
	}
	byInvoice := make(map[int64][]domain.InvoiceItem, len(invoices))
	for _, item := range items {
		byInvoice[item.InvoiceID] = append(byInvoice[item.InvoiceID], item)
	}
	for i := range invoices {
		invoices[i].Items = byInvoice[invoices[i].ID]
	}
	return invoices, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return domain.ErrInvalidTenant
	}

	invoiceID, err := parseID(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	// Stock postings made at creation stay untouched. Deleting a billing
	// mistake does not put goods back on the shelf.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		deleted, err := s.repo.Delete(ctx, tx, tenantID, invoiceID)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.RecordInvoiceDeleted(ctx, tenantID)
	s.log.Info("invoice deleted",
		zap.String("tenant_id", tenantID),
		zap.Int64("invoice_id", invoiceID),
	)
	return nil
}

func (s *Service) ConvertPaymentMode(ctx context.Context, id string) (*domain.Invoice, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(inv.PaymentMode, "CREDIT") {
		return nil, domain.ErrNotCreditInvoice
	}

	now := s.clock.Now()
	note := fmt.Sprintf("Converted from CREDIT to CASH on %s", now.Format("2006-01-02 15:04:05"))
	inv.PaymentMode = "CASH"
	if inv.Notes != "" {
		inv.Notes = inv.Notes + "\n" + note
	} else {
		inv.Notes = note
	}
	inv.UpdatedAt = now

	if err := s.repo.UpdatePayment(ctx, s.db, inv); err != nil {
		return nil, err
	}

	s.log.Info("invoice payment converted",
		zap.String("tenant_id", inv.TenantID),
		zap.Int64("invoice_id", inv.ID),
	)
	return inv, nil
}

func parseID(raw string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	return id.Int64(), nil
}
