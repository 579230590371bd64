package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/managekarlo/backoffice/internal/clock"
	productdomain "github.com/managekarlo/backoffice/internal/product/domain"
	"github.com/managekarlo/backoffice/internal/stock/domain"
	"github.com/managekarlo/backoffice/internal/stock/repository"
	"github.com/managekarlo/backoffice/internal/tenantctx"
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
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&productdomain.Product{}, &domain.StockTransaction{}))
	return db
}

func newTestLedger(t *testing.T, db *gorm.DB, clk clock.Clock) domain.Ledger {
	t.Helper()
	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: clk,
		Repo:  repository.Provide(),
	})
}

func seedProduct(t *testing.T, db *gorm.DB, tenantID string, id int64, qty float64) {
	t.Helper()
	require.NoError(t, db.Create(&productdomain.Product{
		ID:            id,
		TenantID:      tenantID,
		Name:          "Pen",
		SKU:           "SKU-" + strconv.FormatInt(id, 10),
		StockQuantity: qty,
	}).Error)
}

func tenantContext(tenantID string) context.Context {
	return tenantctx.WithTenantID(context.Background(), tenantID)
}

func TestAdjust_MovesCachedQuantity(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	ledger := newTestLedger(t, db, clk)
	seedProduct(t, db, "shop-1", 100, 0)
	ctx := tenantContext("shop-1")

	_, err := ledger.Adjust(ctx, domain.AppendRequest{
		ProductID: 100,
		Type:      domain.TransactionPurchase,
		Quantity:  10,
	})
	require.NoError(t, err)

	clk.Advance(time.Minute)
	_, err = ledger.Adjust(ctx, domain.AppendRequest{
		ProductID: 100,
		Type:      domain.TransactionSale,
		Quantity:  -4,
	})
	require.NoError(t, err)

	qty, err := ledger.CurrentQuantity(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, float64(6), qty)

	// Cached column equals the sum of the ledger at every observable point.
	history, err := ledger.History(ctx, "100")
	require.NoError(t, err)
	var sum float64
	for _, trx := range history {
		sum += trx.Quantity
	}
	assert.Equal(t, qty, sum)
}

func TestAdjust_NegativeStockAllowed(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger(t, db, clock.NewSystem())
	seedProduct(t, db, "shop-1", 100, 3)
	ctx := tenantContext("shop-1")

	_, err := ledger.Adjust(ctx, domain.AppendRequest{
		ProductID: 100,
		Type:      domain.TransactionSale,
		Quantity:  -5,
	})
	require.NoError(t, err)

	qty, err := ledger.CurrentQuantity(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, float64(-2), qty)
}

func TestAdjust_UnknownProduct(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger(t, db, clock.NewSystem())
	ctx := tenantContext("shop-1")

	_, err := ledger.Adjust(ctx, domain.AppendRequest{
		ProductID: 999,
		Type:      domain.TransactionAdjustment,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAdjust_ForeignTenantProduct(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger(t, db, clock.NewSystem())
	seedProduct(t, db, "shop-2", 100, 10)

	_, err := ledger.Adjust(tenantContext("shop-1"), domain.AppendRequest{
		ProductID: 100,
		Type:      domain.TransactionAdjustment,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAdjust_InvalidType(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger(t, db, clock.NewSystem())
	seedProduct(t, db, "shop-1", 100, 10)

	_, err := ledger.Adjust(tenantContext("shop-1"), domain.AppendRequest{
		ProductID: 100,
		Type:      domain.TransactionType("refund"),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestHistory_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	clk := clock.NewFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	ledger := newTestLedger(t, db, clk)
	seedProduct(t, db, "shop-1", 100, 0)
	ctx := tenantContext("shop-1")

	first, err := ledger.Adjust(ctx, domain.AppendRequest{ProductID: 100, Type: domain.TransactionPurchase, Quantity: 10})
	require.NoError(t, err)
	clk.Advance(time.Hour)
	second, err := ledger.Adjust(ctx, domain.AppendRequest{ProductID: 100, Type: domain.TransactionSale, Quantity: -2})
	require.NoError(t, err)

	history, err := ledger.History(ctx, "100")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

func TestHistory_UnknownProduct(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger(t, db, clock.NewSystem())

	_, err := ledger.History(tenantContext("shop-1"), "999")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestReversal_IsANewAppend(t *testing.T) {
	db := newTestDB(t)
	ledger := newTestLedger(t, db, clock.NewSystem())
	seedProduct(t, db, "shop-1", 100, 0)
	ctx := tenantContext("shop-1")

	original, err := ledger.Adjust(ctx, domain.AppendRequest{
		ProductID: 100,
		Type:      domain.TransactionSale,
		Quantity:  -5,
	})
	require.NoError(t, err)

	_, err = ledger.Adjust(ctx, domain.AppendRequest{
		ProductID:   100,
		Type:        domain.TransactionReturn,
		Quantity:    5,
		ReferenceID: original.ID,
		Notes:       "reversal of " + original.ID,
	})
	require.NoError(t, err)

	qty, err := ledger.CurrentQuantity(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, float64(0), qty)

	history, err := ledger.History(ctx, "100")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
