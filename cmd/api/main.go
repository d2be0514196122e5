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

	"github.com/megaar/comercial-api/internal/application/analytics"
	"github.com/megaar/comercial-api/internal/application/auth"
	"github.com/megaar/comercial-api/internal/application/catalog"
	"github.com/megaar/comercial-api/internal/application/fulfillment"
	"github.com/megaar/comercial-api/internal/application/inquiry"
	"github.com/megaar/comercial-api/internal/application/notification"
	"github.com/megaar/comercial-api/internal/application/procurement"
	"github.com/megaar/comercial-api/internal/application/usecase"
	"github.com/megaar/comercial-api/internal/infrastructure/memstore"
	infrapdf "github.com/megaar/comercial-api/internal/infrastructure/pdf"
	"github.com/megaar/comercial-api/internal/infrastructure/redisstore"
	httpRouter "github.com/megaar/comercial-api/internal/interfaces/http"
	"github.com/megaar/comercial-api/pkg/config"
	"github.com/megaar/comercial-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("a iniciar aplicação")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Armazém de documento: snapshot Redis quando configurado, caso
	// contrário só memória (o estado perde-se no shutdown).
	var store *memstore.Store
	var snap *redisstore.Snapshot
	if cfg.Redis.Enabled() {
		snap, err = redisstore.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Key, cfg.Redis.Channel)
		if err != nil {
			log.Fatal().Err(err).Msg("ligação ao Redis")
		}
		defer snap.Close()
		store, err = memstore.Open(ctx, snap)
		if err != nil {
			log.Fatal().Err(err).Msg("carregar documento do snapshot")
		}
		// Outra instância gravou o documento: reler o snapshot.
		go snap.Listen(ctx, func() {
			if err := store.Reload(ctx); err != nil {
				log.Error().Err(err).Msg("reler snapshot após invalidação")
			}
		})
	} else {
		doc, err := memstore.SeedDocument()
		if err != nil {
			log.Fatal().Err(err).Msg("construir documento semente")
		}
		store = memstore.New(doc)
		log.Warn().Msg("REDIS_ADDR não definido, estado apenas em memória")
	}

	repos := memstore.NewRepositories(store)
	txRunner := memstore.NewTxRunner(store)

	authUC := auth.NewAuthUseCase(txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(repos.Clients())
	productUC := usecase.NewProductUseCase(repos.Products())
	supplierUC := usecase.NewSupplierUseCase(repos.Suppliers())
	employeeUC := usecase.NewEmployeeUseCase(repos.Users())
	inquiryUC := inquiry.NewUseCase(txRunner)
	fulfillmentUC := fulfillment.NewUseCase(txRunner)
	orderPDF := fulfillment.NewPDFUseCase(txRunner, infrapdf.NewMarotoPDFGenerator())
	procurementUC := procurement.NewUseCase(txRunner)
	catalogUC := catalog.NewUseCase(txRunner)
	dashboardUC := analytics.NewDashboardUseCase(txRunner)
	dispatcher := notification.NewDispatcher(repos.Notifications())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comercial API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ClientUC:      clientUC,
		ProductUC:     productUC,
		SupplierUC:    supplierUC,
		EmployeeUC:    employeeUC,
		InquiryUC:     inquiryUC,
		FulfillmentUC: fulfillmentUC,
		OrderPDF:      orderPDF,
		ProcurementUC: procurementUC,
		CatalogUC:     catalogUC,
		DashboardUC:   dashboardUC,
		Dispatcher:    dispatcher,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP terminado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de paragem recebido, a fechar o servidor...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("paragem do servidor")
	}

	log.Info().Msg("aplicação parada")
}
