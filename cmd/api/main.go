package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"

	"github.com/jhoicas/supermercado-dashboard/internal/application/auth"
	"github.com/jhoicas/supermercado-dashboard/internal/application/binding"
	"github.com/jhoicas/supermercado-dashboard/internal/application/usecase"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/supermercado-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/recordstore"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/supermercado-dashboard/internal/interfaces/http"
	"github.com/jhoicas/supermercado-dashboard/pkg/config"
	"github.com/jhoicas/supermercado-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend := storage.OpenOrUnavailable(ctx, cfg, afero.NewOsFs(), log.Component("storage"))
	defer backend.Close()

	// Métricas opcionales: los recorders quedan en nil si están deshabilitadas.
	var (
		registry      *prometheus.Registry
		storeRecorder recordstore.Recorder
		formRecorder  usecase.ValidationRecorder
		appMetrics    *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		appMetrics = metrics.New("supermercado")
		registry = appMetrics.Registry()
		storeRecorder = appMetrics
		formRecorder = appMetrics
	}

	storeLog := log.Component("recordstore")
	storeCfg := recordstore.Config{
		Namespace: cfg.Storage.Namespace,
		Logger:    &storeLog,
		Recorder:  storeRecorder,
	}
	productStore := recordstore.NewProductStore(backend.Slots, storeCfg)
	categoryStore := recordstore.NewCategoryStore(backend.Slots, storeCfg)

	catalog := usecase.NewCatalog(
		binding.NewProducts(productStore, log.Component("binding")),
		binding.NewCategories(categoryStore, log.Component("binding")),
	)
	if appMetrics != nil {
		catalog.Products.Subscribe(func(s binding.Snapshot[entity.Product]) {
			appMetrics.CollectionChanged(catalog.Products.Name(), s.Version, len(s.Items))
		})
		catalog.Categories.Subscribe(func(s binding.Snapshot[entity.Category]) {
			appMetrics.CollectionChanged(catalog.Categories.Name(), s.Version, len(s.Items))
		})
	}

	// Un slot corrupto no impide arrancar: las rutas devolverán el error hasta que se repare.
	loadCtx, cancelLoad := context.WithTimeout(ctx, 10*time.Second)
	if err := catalog.Load(loadCtx); err != nil {
		log.Error().Err(err).Msg("carga inicial del catálogo")
	}
	cancelLoad()

	productUC := usecase.NewProductUseCase(catalog, formRecorder, log.Component("products"))
	categoryUC := usecase.NewCategoryUseCase(catalog, formRecorder, log.Component("categories"))
	dashboardUC := usecase.NewDashboardUseCase(catalog)
	reportUC := usecase.NewReportUseCase(catalog, infrapdf.NewMarotoPDFGenerator(), spreadsheet.NewExcelExporter())
	authUC := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Login.Delay, log.Component("auth"))

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:     cfg.App.Name,
		Logger:      log.Component("http"),
		Metrics:     registry,
		SwaggerFile: "./docs/swagger.json",
	}, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
