package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/managekarlo/backoffice/internal/cache"
	"github.com/managekarlo/backoffice/internal/clock"
	"github.com/managekarlo/backoffice/internal/config"
	"github.com/managekarlo/backoffice/internal/expense"
	expensedomain "github.com/managekarlo/backoffice/internal/expense/domain"
	"github.com/managekarlo/backoffice/internal/invoice"
	invoicedomain "github.com/managekarlo/backoffice/internal/invoice/domain"
	obsmetrics "github.com/managekarlo/backoffice/internal/observability/metrics"
	"github.com/managekarlo/backoffice/internal/product"
	productdomain "github.com/managekarlo/backoffice/internal/product/domain"
	"github.com/managekarlo/backoffice/internal/report"
	reportdomain "github.com/managekarlo/backoffice/internal/report/domain"
	"github.com/managekarlo/backoffice/internal/stock"
	stockdomain "github.com/managekarlo/backoffice/internal/stock/domain"
	"github.com/managekarlo/backoffice/internal/supplier"
	supplierdomain "github.com/managekarlo/backoffice/internal/supplier/domain"
	"github.com/managekarlo/backoffice/internal/tenant"
	tenantdomain "github.com/managekarlo/backoffice/internal/tenant/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	cache.Module,
	obsmetrics.Module,
	fx.Provide(registerGin),
	tenant.Module,
	product.Module,
	stock.Module,
	invoice.Module,
	expense.Module,
	supplier.Module,
	report.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(log, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	genID       *snowflake.Node
	clock       clock.Clock
	tenantSvc   tenantdomain.Service
	productSvc  productdomain.Service
	ledger      stockdomain.Ledger
	invoiceSvc  invoicedomain.Service
	expenseSvc  expensedomain.Service
	supplierSvc supplierdomain.Service
	reportSvc   reportdomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	GenID       *snowflake.Node
	Clock       clock.Clock
	TenantSvc   tenantdomain.Service
	ProductSvc  productdomain.Service
	Ledger      stockdomain.Ledger
	InvoiceSvc  invoicedomain.Service
	ExpenseSvc  expensedomain.Service
	SupplierSvc supplierdomain.Service
	ReportSvc   reportdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		genID:       p.GenID,
		clock:       p.Clock,
		tenantSvc:   p.TenantSvc,
		productSvc:  p.ProductSvc,
		ledger:      p.Ledger,
		invoiceSvc:  p.InvoiceSvc,
		expenseSvc:  p.ExpenseSvc,
		supplierSvc: p.SupplierSvc,
		reportSvc:   p.ReportSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.TenantRequired())

	// -------- Invoices --------
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
	api.POST("/invoices/:id/convert", s.ConvertInvoicePaymentMode)

	// -------- Products --------
	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProductByID)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	// -------- Stock --------
	api.GET("/products/:id/stock", s.GetStockQuantity)
	api.GET("/products/:id/stock/history", s.GetStockHistory)
	api.POST("/products/:id/stock/adjust", s.AdjustStock)

	// -------- Expenses --------
	api.POST("/expenses", s.CreateExpense)
	api.GET("/expenses", s.ListExpenses)
	api.DELETE("/expenses/:id", s.DeleteExpense)

	// -------- Suppliers --------
	api.POST("/suppliers", s.CreateSupplier)
	api.GET("/suppliers", s.ListSuppliers)
	api.GET("/suppliers/:id", s.GetSupplierByID)
	api.PATCH("/suppliers/:id", s.UpdateSupplier)
	api.DELETE("/suppliers/:id", s.DeleteSupplier)

	// -------- Reports --------
	api.GET("/reports", s.BuildReport)

	// -------- Settings --------
	api.GET("/settings", s.GetSettings)
	api.PUT("/settings", s.UpdateSettings)
}
