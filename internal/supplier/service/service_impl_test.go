package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/managekarlo/backoffice/internal/clock"
	"github.com/managekarlo/backoffice/internal/supplier/domain"
	"github.com/managekarlo/backoffice/internal/tenantctx"
	"github.com/managekarlo/backoffice/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.Supplier{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)),
		Repo:  repository.ProvideStore[domain.Supplier](db),
	})
}

func tenantContext(tenantID string) context.Context {
	return tenantctx.WithTenantID(context.Background(), tenantID)
}

func strptr(s string) *string { return &s }

func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := tenantContext("shop-1")

	created, err := svc.Create(ctx, domain.CreateRequest{
		Name:  "Acme Traders",
		Phone: "12345",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, strconv.FormatInt(created.ID, 10))
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", got.Name)
	assert.Equal(t, "12345", got.Phone)
}

func TestCreate_RequiresName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(tenantContext("shop-1"), domain.CreateRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestList_SortedByName(t *testing.T) {
	svc := newTestService(t)
	ctx := tenantContext("shop-1")

	_, err := svc.Create(ctx, domain.CreateRequest{Name: "Zen Supplies"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateRequest{Name: "Acme Traders"})
	require.NoError(t, err)

	suppliers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	assert.Equal(t, "Acme Traders", suppliers[0].Name)
	assert.Equal(t, "Zen Supplies", suppliers[1].Name)
}

func TestUpdate(t *testing.T) {
	svc := newTestService(t)
	ctx := tenantContext("shop-1")

	created, err := svc.Create(ctx, domain.CreateRequest{Name: "Acme Traders", Phone: "12345"})
	require.NoError(t, err)
	id := strconv.FormatInt(created.ID, 10)

	updated, err := svc.Update(ctx, id, domain.UpdateRequest{
		Phone:   strptr("99999"),
		Address: strptr("12 Market Road"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", updated.Name)
	assert.Equal(t, "99999", updated.Phone)
	assert.Equal(t, "12 Market Road", updated.Address)

	// Blank name keeps the stored one.
	updated, err = svc.Update(ctx, id, domain.UpdateRequest{Name: strptr(" ")})
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", updated.Name)
}

func TestDelete_TenantScoped(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(tenantContext("shop-1"), domain.CreateRequest{Name: "Acme Traders"})
	require.NoError(t, err)
	id := strconv.FormatInt(created.ID, 10)

	err = svc.Delete(tenantContext("shop-2"), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.Delete(tenantContext("shop-1"), id))
	_, err = svc.Get(tenantContext("shop-1"), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
