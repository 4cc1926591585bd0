package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rrcamj/khsx-metrics/pkg/application/services/capacity"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/inventory"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/report"
	"github.com/rrcamj/khsx-metrics/pkg/application/services/schedule"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/cache"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/config"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/datastore"
	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/repositories/csv"
	httpiface "github.com/rrcamj/khsx-metrics/pkg/interfaces/http"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("could not initialize logger: %v", err)
	}
	defer logger.Sync()

	store := datastore.NewStore()
	if err := store.LoadFromCSV(csv.NewLoader(), cfg.Data); err != nil {
		logger.Fatal("could not load planning data", zap.Error(err))
	}
	logger.Info("planning data loaded", zap.String("dir", cfg.Data.Dir))

	productionSvc := capacity.NewProductionService(store.Machines, store.Deliveries, store.Standards)
	qcSvc := capacity.NewQCService(store.Labor, store.Deliveries, store.Standards, cfg.QC.Department)
	reportSvc := report.NewService(
		store.Orders,
		inventory.NewService(),
		schedule.NewService(),
		productionSvc,
		qcSvc,
	)

	handler := httpiface.NewHandler(
		reportSvc, productionSvc, qcSvc,
		store, cfg.Data,
		cache.NewReportCache(cfg.Cache.TTL),
		logger,
	)

	app := fiber.New(fiber.Config{AppName: "khsxd"})
	httpiface.RegisterRoutes(app, handler)

	go func() {
		logger.Info("starting HTTP server", zap.String("port", cfg.Server.HTTPPort))
		if err := app.Listen(cfg.Server.HTTPPort); err != nil {
			logger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func newLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	if cfg.Encoding == "json" {
		return zap.NewProduction()
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.DisableCaller = cfg.DisableCaller
	zcfg.DisableStacktrace = cfg.DisableStacktrace
	return zcfg.Build()
}
