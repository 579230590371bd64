package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/managekarlo/backoffice/internal/clock"
	"github.com/managekarlo/backoffice/internal/config"
	"github.com/managekarlo/backoffice/internal/tenant/domain"
	"github.com/managekarlo/backoffice/internal/tenant/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every goroutine on the same in-memory database and
	// serializes writers.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.Tenant{}))
	return db
}

func newTestService(t *testing.T, db *gorm.DB, clk clock.Clock) *Service {
	t.Helper()
	return New(Params{
		DB:  db,
		Log: zap.NewNop(),
		Cfg: config.Config{
			DefaultStoreName:     "Managekarlo",
			DefaultInvoicePrefix: "RS",
		},
		Clock: clk,
		Repo:  repository.Provide(),
	})
}

func TestGetOrCreate_InitializesDefaults(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, clk)

	tenant, err := svc.GetOrCreate(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "shop-1", tenant.ID)
	assert.Equal(t, "Managekarlo", tenant.StoreName)
	assert.Equal(t, "managekarlo", tenant.Slug)
	assert.Equal(t, "RS", tenant.InvoicePrefix)
	assert.Equal(t, int64(0), tenant.InvoiceCounter)

	again, err := svc.GetOrCreate(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, again.ID)
	assert.Equal(t, tenant.CreatedAt, again.CreatedAt)
}

func TestGetOrCreate_BlankID(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, clock.NewSystem())

	_, err := svc.GetOrCreate(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidTenant)
}

func TestGet_UnknownTenant(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, clock.NewSystem())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
}

func TestUpdateSettings(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, clk)

	_, err := svc.GetOrCreate(context.Background(), "shop-1")
	require.NoError(t, err)

	phone := "9876543210"
	prefix := "inv"
	updated, err := svc.UpdateSettings(context.Background(), "shop-1", domain.UpdateSettingsRequest{
		StoreName:     "Karlo Traders",
		Phone:         &phone,
		InvoicePrefix: &prefix,
	})
	require.NoError(t, err)
	assert.Equal(t, "Karlo Traders", updated.StoreName)
	assert.Equal(t, "karlo-traders", updated.Slug)
	assert.Equal(t, "9876543210", updated.Phone)
	assert.Equal(t, "INV", updated.InvoicePrefix)

	// Blank prefix keeps the stored value.
	blank := "  "
	kept, err := svc.UpdateSettings(context.Background(), "shop-1", domain.UpdateSettingsRequest{
		StoreName:     "Karlo Traders",
		InvoicePrefix: &blank,
	})
	require.NoError(t, err)
	assert.Equal(t, "INV", kept.InvoicePrefix)

	_, err = svc.UpdateSettings(context.Background(), "shop-1", domain.UpdateSettingsRequest{StoreName: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidStoreName)
}

func TestNextInvoiceNumber_Sequence(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, clk)

	_, err := svc.GetOrCreate(context.Background(), "shop-1")
	require.NoError(t, err)

	first, err := svc.NextInvoiceNumber(context.Background(), db, "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "RS-2024-0001", first)

	second, err := svc.NextInvoiceNumber(context.Background(), db, "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "RS-2024-0002", second)
}

func TestNextInvoiceNumber_CounterSurvivesYearBoundary(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, clk)

	_, err := svc.GetOrCreate(context.Background(), "shop-1")
	require.NoError(t, err)

	first, err := svc.NextInvoiceNumber(context.Background(), db, "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "RS-2024-0001", first)

	clk.Advance(2 * time.Hour)
	second, err := svc.NextInvoiceNumber(context.Background(), db, "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "RS-2025-0002", second)
}

func TestNextInvoiceNumber_UnknownTenant(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, clock.NewSystem())

	_, err := svc.NextInvoiceNumber(context.Background(), db, "missing")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
}

func TestNextInvoiceNumber_ConcurrentAllocationsAreUnique(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := newTestService(t, db, clk)

	_, err := svc.GetOrCreate(context.Background(), "shop-1")
	require.NoError(t, err)

	const workers = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = make(map[string]int, workers)
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Transaction(func(tx *gorm.DB) error {
				number, err := svc.NextInvoiceNumber(context.Background(), tx, "shop-1")
				if err != nil {
					return err
				}
				mu.Lock()
				numbers[number]++
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, numbers, workers)
	for number, count := range numbers {
		assert.Equal(t, 1, count, fmt.Sprintf("number %s allocated more than once", number))
	}
}
