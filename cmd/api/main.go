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

	"github.com/jhoicas/inventario-oagis/internal/application/inventory"
	"github.com/jhoicas/inventario-oagis/internal/application/oagis"
	inframail "github.com/jhoicas/inventario-oagis/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/inventario-oagis/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-oagis/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventario-oagis/internal/interfaces/http"
	"github.com/jhoicas/inventario-oagis/pkg/config"
	"github.com/jhoicas/inventario-oagis/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	receiveInventoryUC := inventory.NewReceiveInventoryUseCase(txRunner, productRepo, itemRepo)
	queryUC := inventory.NewQueryUseCase(
		postgres.NewStockRepository(pool),
		postgres.NewInventoryMovementRepository(pool),
		itemRepo,
	)
	messageRepo := postgres.NewOagisMessageRepository(pool)

	// Notificación de SYNC_INVENTORY: SMTP si está configurado; si no, solo se registra
	var notifier oagis.Notifier = inframail.NewLogNotifier(log)
	if cfg.SMTP.Enabled() {
		notifier = inframail.NewSMTPNotifier(cfg.SMTP, infrapdf.NewMarotoReportRenderer(), log)
	}

	oagisSvc := oagis.NewService(
		postgres.NewUserLoginRepository(pool),
		messageRepo,
		receiveInventoryUC,
		receiveInventoryUC,
		postgres.NewFacilityContactRepository(pool),
		postgres.NewEmailSettingRepository(pool),
		notifier,
		settingsFrom(cfg.OAGIS),
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario OAGIS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OAGIS:     oagisSvc,
		Messages:  oagis.NewMessageQuery(messageRepo),
		Inventory: queryUC,
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

func settingsFrom(c config.OAGISConfig) oagis.Settings {
	return oagis.Settings{
		SyncFacilityID:             c.SyncFacilityID,
		PoReceiptFacilityID:        c.PoReceiptFacilityID,
		ReturnReceiptLocationSeqID: c.ReturnReceiptLocationSeqID,
		SyncUserLoginID:            c.SyncUserLoginID,
		AckUserLoginID:             c.AckUserLoginID,
		ProductStoreID:             c.ProductStoreID,
		ConfirmEmailType:           c.ConfirmEmailType,
	}
}
