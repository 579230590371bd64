// Package metrics exposes business counters over OpenTelemetry and HTTP
// instrumentation over prometheus.
package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
}

// Metrics exposes application-level instruments. A nil receiver is valid and
// records nothing, so tests can construct services without a provider.
type Metrics struct {
	invoicesCreated   metric.Int64Counter
	invoicesDeleted   metric.Int64Counter
	stockTransactions metric.Int64Counter
	reportsBuilt      metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down meter provider")
			return provider.Shutdown(ctx)
		},
	})

	log.Info("metrics initialized",
		zap.String("endpoint", cfg.ExporterEndpoint),
		zap.String("protocol", cfg.ExporterProtocol),
	)

	return provider, nil
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(protocol)) {
	case "", "grpc":
		return otlpmetricgrpc.New(context.Background(),
			otlpmetricgrpc.WithEndpoint(endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	case "http":
		return otlpmetrichttp.New(context.Background(),
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unsupported metrics exporter protocol %q", protocol)
	}
}

// New configures the domain instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "backoffice"
	}
	meter := provider.Meter(name)

	invoicesCreated, err := meter.Int64Counter("backoffice_invoices_created_total")
	if err != nil {
		return nil, err
	}
	invoicesDeleted, err := meter.Int64Counter("backoffice_invoices_deleted_total")
	if err != nil {
		return nil, err
	}
	stockTransactions, err := meter.Int64Counter("backoffice_stock_transactions_total")
	if err != nil {
		return nil, err
	}
	reportsBuilt, err := meter.Int64Counter("backoffice_reports_built_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		invoicesCreated:   invoicesCreated,
		invoicesDeleted:   invoicesDeleted,
		stockTransactions: stockTransactions,
		reportsBuilt:      reportsBuilt,
	}, nil
}

func (m *Metrics) RecordInvoiceCreated(ctx context.Context, tenantID string) {
	if m == nil {
		return
	}
	m.invoicesCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("tenant_id", tenantID)))
}

func (m *Metrics) RecordInvoiceDeleted(ctx context.Context, tenantID string) {
	if m == nil {
		return
	}
	m.invoicesDeleted.Add(ctx, 1, metric.WithAttributes(attribute.String("tenant_id", tenantID)))
}

func (m *Metrics) RecordStockTransaction(ctx context.Context, tenantID, txType string) {
	if m == nil {
		return
	}
	m.stockTransactions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tenant_id", tenantID),
		attribute.String("type", txType),
	))
}

func (m *Metrics) RecordReportBuilt(ctx context.Context, tenantID, period string) {
	if m == nil {
		return
	}
	m.reportsBuilt.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tenant_id", tenantID),
		attribute.String("period", period),
	))
}
