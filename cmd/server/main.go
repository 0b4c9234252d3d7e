package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	batchapp "github.com/fisherp/backend/internal/application/batches"
	closureapp "github.com/fisherp/backend/internal/application/closures"
	invapp "github.com/fisherp/backend/internal/application/inventory"
	refapp "github.com/fisherp/backend/internal/application/refdata"
	reportapp "github.com/fisherp/backend/internal/application/report"
	salesapp "github.com/fisherp/backend/internal/application/sales"
	"github.com/fisherp/backend/internal/infrastructure/config"
	"github.com/fisherp/backend/internal/infrastructure/logger"
	"github.com/fisherp/backend/internal/infrastructure/persistence"
	"github.com/fisherp/backend/internal/interfaces/http/handler"
	"github.com/fisherp/backend/internal/interfaces/http/middleware"
	"github.com/fisherp/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Fisherp Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	batchRepo := persistence.NewGormBatchRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	adjustmentRepo := persistence.NewGormAdjustmentRepository(db.DB)
	closureRepo := persistence.NewGormClosureRepository(db.DB)
	branchRepo := persistence.NewGormBranchRepository(db.DB)
	sizeRepo := persistence.NewGormSizeRepository(db.DB)

	// Transaction scopes, one per write path that touches multiple rows
	batchScope := persistence.NewGormBatchTransactionScope(db.DB)
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)
	saleScope := persistence.NewGormSaleTransactionScope(db.DB)
	closureScope := persistence.NewGormClosureTransactionScope(db.DB)

	// Initialize application services
	batchService := batchapp.NewBatchService(batchRepo, batchScope)
	onHandService := invapp.NewOnHandService(batchRepo, saleRepo, adjustmentRepo)
	adjustmentService := invapp.NewAdjustmentService(inventoryScope, adjustmentRepo)
	saleService := salesapp.NewSaleService(saleScope, saleRepo, cfg.Inventory.WholesaleTolerancePieces)
	allocationService := salesapp.NewAllocationService(saleScope, cfg.Inventory.WholesaleTolerancePieces)
	closureService := closureapp.NewClosureService(
		closureScope,
		closureRepo,
		decimal.NewFromFloat(cfg.Inventory.AutoZeroToleranceKg),
	)
	refDataService := refapp.NewRefDataService(branchRepo, sizeRepo)
	reportService := reportapp.NewReportService(batchRepo, saleRepo, adjustmentRepo, closureRepo)

	// Initialize handlers
	batchHandler := handler.NewBatchHandler(batchService)
	inventoryHandler := handler.NewInventoryHandler(onHandService, adjustmentService)
	saleHandler := handler.NewSaleHandler(saleService, allocationService)
	closureHandler := handler.NewClosureHandler(closureService)
	refDataHandler := handler.NewRefDataHandler(refDataService)
	reportHandler := handler.NewReportHandler(reportService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so recovery and logging can tag
	// everything they emit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Batch domain: intake, lookup, derived positions, closure
	batchRoutes := router.NewDomainGroup("batches", "/batches")
	batchRoutes.POST("", batchHandler.Create)
	batchRoutes.POST("/purchase", batchHandler.CreatePurchase)
	batchRoutes.GET("", batchHandler.ListOpen)
	batchRoutes.GET("/code/:code", batchHandler.GetByCode)
	batchRoutes.GET("/:id", batchHandler.GetByID)
	batchRoutes.GET("/:id/on-hand", inventoryHandler.BatchOnHand)
	batchRoutes.GET("/:id/on-hand/:size_id", inventoryHandler.LineOnHand)
	batchRoutes.GET("/:id/adjustments", inventoryHandler.ListAdjustments)
	batchRoutes.POST("/:id/close", closureHandler.Close)
	batchRoutes.GET("/:id/closure", closureHandler.GetClosure)

	// Inventory domain: FIFO candidates and manual adjustments
	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.GET("/fifo-candidates", inventoryHandler.FIFOCandidates)
	inventoryRoutes.POST("/adjustments", inventoryHandler.CreateAdjustment)

	// Sales domain: direct and FIFO-allocated sales
	saleRoutes := router.NewDomainGroup("sales", "/sales")
	saleRoutes.POST("/retail", saleHandler.RecordRetail)
	saleRoutes.POST("/wholesale", saleHandler.RecordWholesale)
	saleRoutes.POST("/fifo/retail", saleHandler.SellRetailFIFO)
	saleRoutes.POST("/fifo/wholesale", saleHandler.SellWholesaleFIFO)
	saleRoutes.GET("/recent", saleHandler.ListRecent)

	// Reference data: branches and size grades
	refDataRoutes := router.NewDomainGroup("refdata", "/refdata")
	refDataRoutes.POST("/branches", refDataHandler.CreateBranch)
	refDataRoutes.GET("/branches", refDataHandler.ListBranches)
	refDataRoutes.GET("/branches/:id", refDataHandler.GetBranch)
	refDataRoutes.POST("/sizes", refDataHandler.CreateSize)
	refDataRoutes.GET("/sizes", refDataHandler.ListSizes)
	refDataRoutes.GET("/sizes/:id", refDataHandler.GetSize)

	// Reports: read-only projections over the movement ledger
	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.GET("/inventory", reportHandler.InventorySummary)
	reportRoutes.GET("/sales", reportHandler.SalesReport)
	reportRoutes.GET("/losses", reportHandler.LossReport)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(batchRoutes).
		Register(inventoryRoutes).
		Register(saleRoutes).
		Register(refDataRoutes).
		Register(reportRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
