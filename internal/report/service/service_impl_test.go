package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/managekarlo/backoffice/internal/clock"
	expensedomain "github.com/managekarlo/backoffice/internal/expense/domain"
	invoicedomain "github.com/managekarlo/backoffice/internal/invoice/domain"
	"github.com/managekarlo/backoffice/internal/report/domain"
	"github.com/managekarlo/backoffice/internal/report/repository"
	"github.com/managekarlo/backoffice/internal/tenantctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&invoicedomain.Invoice{}, &expensedomain.Expense{}))

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
	return svc, db
}

func seedInvoice(t *testing.T, db *gorm.DB, id int64, date string, createdAt time.Time, total float64) {
	t.Helper()
	require.NoError(t, db.Create(&invoicedomain.Invoice{
		ID:            id,
		TenantID:      "shop-1",
		InvoiceNumber: "RS-2024-0001",
		InvoiceDate:   date,
		Total:         total,
		CreatedAt:     createdAt,
	}).Error)
}

func seedExpense(t *testing.T, db *gorm.DB, id int64, date string, amount float64) {
	t.Helper()
	require.NoError(t, db.Create(&expensedomain.Expense{
		ID:          id,
		TenantID:    "shop-1",
		Date:        date,
		Description: "rent",
		Amount:      amount,
	}).Error)
}

func tenantContext(tenantID string) context.Context {
	return tenantctx.WithTenantID(context.Background(), tenantID)
}

func TestBuildReport_EmptyPeriod(t *testing.T) {
	svc, _ := newTestService(t)

	report, err := svc.BuildReport(tenantContext("shop-1"), domain.BuildReportRequest{
		Period: domain.PeriodDaily,
		Anchor: "2024-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), report.NetTotal)
	assert.Equal(t, "No financial activity recorded for this period.", report.Summary)
}

func TestBuildReport_Daily(t *testing.T) {
	svc, db := newTestService(t)
	created := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	seedInvoice(t, db, 1, "2024-03-15", created, 500)
	seedInvoice(t, db, 2, "2024-03-16", created, 999)
	seedExpense(t, db, 3, "2024-03-15", 120)

	report, err := svc.BuildReport(tenantContext("shop-1"), domain.BuildReportRequest{
		Period: domain.PeriodDaily,
		Anchor: "2024-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(500), report.SalesTotal)
	assert.Equal(t, float64(120), report.ExpensesTotal)
	assert.Equal(t, float64(380), report.NetTotal)
	assert.Equal(t, 1, report.InvoiceCount)
	assert.Equal(t, 1, report.ExpenseCount)
	assert.Contains(t, report.Summary, "Profitable period")
}

func TestBuildReport_Monthly(t *testing.T) {
	svc, db := newTestService(t)
	created := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	seedInvoice(t, db, 1, "2024-03-01", created, 100)
	seedInvoice(t, db, 2, "2024-03-28", created, 200)
	seedInvoice(t, db, 3, "2024-04-01", created, 999)
	seedExpense(t, db, 4, "2024-03-10", 500)

	report, err := svc.BuildReport(tenantContext("shop-1"), domain.BuildReportRequest{
		Period: domain.PeriodMonthly,
		Anchor: "2024-03",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(300), report.SalesTotal)
	assert.Equal(t, float64(500), report.ExpensesTotal)
	assert.Equal(t, float64(-200), report.NetTotal)
	assert.Contains(t, report.Summary, "Loss-making period")
}

func TestBuildReport_Balanced(t *testing.T) {
	svc, db := newTestService(t)
	created := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	seedInvoice(t, db, 1, "2024-03-15", created, 250)
	seedExpense(t, db, 2, "2024-03-15", 250)

	report, err := svc.BuildReport(tenantContext("shop-1"), domain.BuildReportRequest{
		Period: domain.PeriodDaily,
		Anchor: "2024-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), report.NetTotal)
	assert.Contains(t, report.Summary, "Balanced period")
}

func TestBuildReport_MalformedDatesSkipped(t *testing.T) {
	svc, db := newTestService(t)
	created := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	seedInvoice(t, db, 1, "2024-03-15", created, 100)
	seedInvoice(t, db, 2, "15/03/2024", created, 999)
	seedExpense(t, db, 3, "garbage", 999)

	report, err := svc.BuildReport(tenantContext("shop-1"), domain.BuildReportRequest{
		Period: domain.PeriodDaily,
		Anchor: "2024-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(100), report.SalesTotal)
	assert.Equal(t, float64(0), report.ExpensesTotal)
	assert.Equal(t, 1, report.InvoiceCount)
}

func TestBuildReport_BlankInvoiceDateFallsBackToCreation(t *testing.T) {
	svc, db := newTestService(t)
	seedInvoice(t, db, 1, "", time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC), 75)

	report, err := svc.BuildReport(tenantContext("shop-1"), domain.BuildReportRequest{
		Period: domain.PeriodDaily,
		Anchor: "2024-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(75), report.SalesTotal)
	assert.Equal(t, 1, report.InvoiceCount)
}

func TestBuildReport_InvalidInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := tenantContext("shop-1")

	_, err := svc.BuildReport(ctx, domain.BuildReportRequest{Period: "weekly", Anchor: "2024-03-15"})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	_, err = svc.BuildReport(ctx, domain.BuildReportRequest{Period: domain.PeriodDaily, Anchor: "2024-03"})
	assert.ErrorIs(t, err, domain.ErrInvalidAnchor)

	_, err = svc.BuildReport(ctx, domain.BuildReportRequest{Period: domain.PeriodMonthly, Anchor: "March 2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidAnchor)
}
