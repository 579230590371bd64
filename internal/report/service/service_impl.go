package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/managekarlo/backoffice/internal/cache"
	"github.com/managekarlo/backoffice/internal/clock"
	"github.com/managekarlo/backoffice/internal/observability/metrics"
	"github.com/managekarlo/backoffice/internal/report/domain"
	"github.com/managekarlo/backoffice/internal/tenantctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Repo    domain.Repository
	Cache   *cache.ReportCache
	Metrics *metrics.Metrics
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	clock   clock.Clock
	repo    domain.Repository
	cache   *cache.ReportCache
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("report.service"),
		clock:   p.Clock,
		repo:    p.Repo,
		cache:   p.Cache,
		metrics: p.Metrics,
	}
}

func (s *Service) BuildReport(ctx context.Context, req domain.BuildReportRequest) (*domain.Report, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidTenant
	}
	if !req.Period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}
	anchor, err := normalizeAnchor(req.Period, req.Anchor)
	if err != nil {
		return nil, domain.ErrInvalidAnchor
	}

	cacheKey := cache.Key(tenantID, string(req.Period), anchor)
	if s.cache.Enabled() {
		if payload, hit := s.cache.Get(ctx, cacheKey); hit {
			var cached domain.Report
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
			s.log.Warn("discarding undecodable cached report", zap.String("key", cacheKey))
		}
	}

	invoices, err := s.repo.InvoiceRows(ctx, s.db, tenantID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.ExpenseRows(ctx, s.db, tenantID)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		TenantID:    tenantID,
		Period:      req.Period,
		Anchor:      anchor,
		GeneratedAt: s.clock.Now(),
	}
	for _, row := range invoices {
		date := row.InvoiceDate
		if strings.TrimSpace(date) == "" {
			date = row.CreatedAt.Format(dateLayout)
		}
		if !matches(req.Period, anchor, date) {
			continue
		}
		report.SalesTotal += row.Total
		report.InvoiceCount++
	}
	for _, row := range expenses {
		if !matches(req.Period, anchor, row.Date) {
			continue
		}
		report.ExpensesTotal += row.Amount
		report.ExpenseCount++
	}
	report.NetTotal = report.SalesTotal - report.ExpensesTotal
	report.Summary = summarize(report)

	if s.cache.Enabled() {
		if payload, err := json.Marshal(report); err == nil {
			s.cache.Set(ctx, cacheKey, payload)
		}
	}

	s.metrics.RecordReportBuilt(ctx, tenantID, string(req.Period))
	s.log.Info("report built",
		zap.String("tenant_id", tenantID),
		zap.String("period", string(req.Period)),
		zap.String("anchor", anchor),
		zap.Float64("net_total", report.NetTotal),
	)
	return report, nil
}

func normalizeAnchor(period domain.Period, anchor string) (string, error) {
	anchor = strings.TrimSpace(anchor)
	switch period {
	case domain.PeriodDaily:
		t, err := time.Parse(dateLayout, anchor)
		if err != nil {
			return "", err
		}
		return t.Format(dateLayout), nil
	case domain.PeriodMonthly:
		t, err := time.Parse("2006-01", anchor)
		if err != nil {
			return "", err
		}
		return t.Format("2006-01"), nil
	}
	return "", domain.ErrInvalidPeriod
}

// matches reports whether a record date falls inside the anchored period.
// Unparsable dates never match.
func matches(period domain.Period, anchor, date string) bool {
	t, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return false
	}
	switch period {
	case domain.PeriodDaily:
		return t.Format(dateLayout) == anchor
	case domain.PeriodMonthly:
		return t.Format("2006-01") == anchor
	}
	return false
}

func summarize(r *domain.Report) string {
	if r.InvoiceCount == 0 && r.ExpenseCount == 0 {
		return "No financial activity recorded for this period."
	}
	switch {
	case r.NetTotal > 0:
		return fmt.Sprintf("Profitable period: sales of %.2f against expenses of %.2f, net gain %.2f.",
			r.SalesTotal, r.ExpensesTotal, r.NetTotal)
	case r.NetTotal < 0:
		return fmt.Sprintf("Loss-making period: sales of %.2f against expenses of %.2f, net loss %.2f.",
			r.SalesTotal, r.ExpensesTotal, -r.NetTotal)
	default:
		return fmt.Sprintf("Balanced period: sales exactly offset expenses at %.2f.", r.SalesTotal)
	}
}
