package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/openwarehouses/almacenes-api/internal/application/auth"
	"github.com/openwarehouses/almacenes-api/internal/application/labels"
	"github.com/openwarehouses/almacenes-api/internal/application/usecase"
	"github.com/openwarehouses/almacenes-api/internal/infrastructure/jsonstore"
	infrapdf "github.com/openwarehouses/almacenes-api/internal/infrastructure/pdf"
	httpRouter "github.com/openwarehouses/almacenes-api/internal/interfaces/http"
	"github.com/openwarehouses/almacenes-api/pkg/config"
	"github.com/openwarehouses/almacenes-api/pkg/logger"
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
		Str("datos", cfg.Storage.Dir).
		Msg("iniciando aplicación")

	store, err := jsonstore.New(cfg.Storage.Dir, cfg.Storage.Archivo)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar almacenamiento JSON")
	}

	jerarquiaUC, err := usecase.NewJerarquiaUseCase(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar el bosque de almacenes")
	}

	imprimirUC := labels.NewImprimirUseCase(infrapdf.NewGofpdfLabelRenderer(), cfg.Labels.SalidaDir, cfg.Labels.AbrirPDF)
	reporteUC := labels.NewReporteUseCase(infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el render de etiquetas grandes tarda
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacenes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		JerarquiaUC: jerarquiaUC,
		ImprimirUC:  imprimirUC,
		ReporteUC:   reporteUC,
		AuthUC:      authUC,
		Opciones:    labels.OpcionesRender{QR: cfg.Labels.QR, Barras: cfg.Labels.Barras},
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
