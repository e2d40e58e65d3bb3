package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	trmgorm "github.com/avito-tech/go-transaction-manager/drivers/gorm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/app"
	"github.com/mytheresa/go-catalog-service/app/analytics"
	"github.com/mytheresa/go-catalog-service/app/catalog"
	"github.com/mytheresa/go-catalog-service/app/categories"
	"github.com/mytheresa/go-catalog-service/app/departments"
	"github.com/mytheresa/go-catalog-service/app/health"
	"github.com/mytheresa/go-catalog-service/config"
	"github.com/mytheresa/go-catalog-service/database"
	"github.com/mytheresa/go-catalog-service/models"
	"github.com/mytheresa/go-catalog-service/pkg/logger"
	"github.com/mytheresa/go-catalog-service/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	log.Info("starting catalog service",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("database", cfg.Database.Host+":"+cfg.Database.Port+"/"+cfg.Database.Name),
	)

	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(cfg.Database, log); err != nil {
			return err
		}
	}

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	tx := manager.Must(trmgorm.NewDefaultFactory(db))

	departmentRepo := models.NewDepartmentsRepository(db)
	categoryRepo := models.NewCategoriesRepository(db)
	productRepo := models.NewProductsRepository(db)

	handlers := app.Handlers{
		Health: health.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}, log),
		Departments: departments.NewDepartmentHandler(
			service.NewDepartmentService(departmentRepo, tx, log), log),
		Categories: categories.NewCategoryHandler(
			service.NewCategoryService(categoryRepo, departmentRepo, tx, log), log),
		Catalog: catalog.NewCatalogHandler(
			service.NewProductService(productRepo, categoryRepo, departmentRepo, tx, log), log),
		Analytics: analytics.NewAnalyticsHandler(
			service.NewAnalyticsService(models.NewAnalyticsRepository(db)), log),
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.NewRouter(cfg.Server, handlers, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		log.Info("shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}
