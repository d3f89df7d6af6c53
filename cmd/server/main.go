package main

import (
	"log"
	"strings"

	"vendas-backend/internal/audit"
	"vendas-backend/internal/auth"
	"vendas-backend/internal/catalog"
	"vendas-backend/internal/config"
	"vendas-backend/internal/realtime"
	"vendas-backend/internal/sales"
	"vendas-backend/internal/settings"
	"vendas-backend/internal/store"
	"vendas-backend/internal/whatsapp"

	"github.com/asaskevich/EventBus"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	initLogger(cfg)
	defer func() { _ = zap.L().Sync() }()

	st, err := buildStore(cfg)
	if err != nil {
		zap.S().Fatalf("store não pôde ser inicializado: %v", err)
	}

	bus := EventBus.New()
	notifier := realtime.NewNotifier(bus)

	hub := realtime.NewHub()
	if err := hub.Attach(bus); err != nil {
		zap.S().Fatalf("hub não pôde assinar o bus: %v", err)
	}

	trilha := audit.NewRecorder(1000)
	if err := trilha.Attach(bus); err != nil {
		zap.S().Fatalf("auditoria não pôde assinar o bus: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			// falha inesperada: loga o detalhe, responde genérico
			zap.S().Errorw("erro não tratado", "path", c.Path(), "err", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro interno do servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// canal de push (somente servidor→cliente)
	app.Use("/ws", realtime.UpgradeRequired)
	app.Get("/ws", realtime.WebsocketHandler(hub))

	api := app.Group("/api")

	api.Post("/auth/login", auth.LoginHandler(cfg, st))

	api.Get("/produtos", catalog.ListProdutosHandler(st))
	api.Post("/produtos", catalog.CriarProdutoHandler(st, notifier))
	api.Put("/produtos/:id", catalog.AtualizarProdutoHandler(st, notifier))
	api.Delete("/produtos/:id", catalog.ExcluirProdutoHandler(st, notifier))

	api.Get("/vendas", sales.ListVendasHandler(st))
	api.Post("/vendas", sales.CriarVendaHandler(st, notifier))
	api.Get("/vendas/:id/whatsapp", whatsapp.VendaLinkHandler(st))

	api.Get("/config", settings.GetConfigHandler(st))
	api.Put("/config", settings.UpdateConfigHandler(st, notifier))

	protegido := api.Group("", auth.JWTMiddleware(cfg))
	protegido.Get("/audit-logs", audit.ListRegistrosHandler(trilha))

	zap.S().Infof("Servidor ouvindo na porta %s (store: %s)", cfg.HTTPPort, cfg.StoreDriver)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		zap.S().Fatal(err)
	}
}

func initLogger(cfg *config.Config) {
	var zapConfig zap.Config
	if cfg.LogMode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	logger, err := zapConfig.Build(zap.AddCaller())
	if err != nil {
		log.Fatalf("logger não pôde ser criado: %v", err)
	}
	zap.ReplaceGlobals(logger)
}

func buildStore(cfg *config.Config) (store.Store, error) {
	if cfg.StoreDriver == "postgres" {
		return store.OpenPostgres(cfg.DatabaseDSN)
	}
	return store.NewMemStore(), nil
}
