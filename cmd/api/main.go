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

	appauth "github.com/jhoicas/admin-console-api/internal/application/auth"
	"github.com/jhoicas/admin-console-api/internal/application/notify"
	appstore "github.com/jhoicas/admin-console-api/internal/application/store"
	"github.com/jhoicas/admin-console-api/internal/application/usecase"
	"github.com/jhoicas/admin-console-api/internal/domain/repository"
	"github.com/jhoicas/admin-console-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/admin-console-api/internal/infrastructure/pdf"
	"github.com/jhoicas/admin-console-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/admin-console-api/internal/interfaces/http"
	"github.com/jhoicas/admin-console-api/pkg/config"
	"github.com/jhoicas/admin-console-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Backend de los cuatro slots de estado: archivo JSON o PostgreSQL
	var kv repository.KVStore
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Storage.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		kv, err = postgres.NewKVRepository(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar storage en PostgreSQL")
		}
	default:
		kv, err = localstore.OpenFile(cfg.Storage.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir storage de archivo")
		}
	}

	st, err := appstore.Open(kv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar colecciones")
	}

	notifyCh := notify.NewChannel(cfg.Notify.TTL)

	productUC := usecase.NewProductUseCase(st, notifyCh)
	userUC := usecase.NewUserUseCase(st, notifyCh)
	dashboardUC := usecase.NewDashboardUseCase(st)
	authUC, err := appauth.NewUseCase(kv, notifyCh,
		cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, cfg.Auth.LoginDelay,
		appauth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar auth")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Admin Console API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		Notify:      notifyCh,
		Store:       st,
		PDF:         infrapdf.NewCatalogPDFGenerator(),
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
