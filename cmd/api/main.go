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
	"github.com/jhoicas/Herramientas-api/internal/application/auth"
	"github.com/jhoicas/Herramientas-api/internal/application/custody"
	"github.com/jhoicas/Herramientas-api/internal/application/history"
	"github.com/jhoicas/Herramientas-api/internal/application/invite"
	"github.com/jhoicas/Herramientas-api/internal/application/usecase"
	"github.com/jhoicas/Herramientas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Herramientas-api/internal/interfaces/http"
	"github.com/jhoicas/Herramientas-api/pkg/config"
	"github.com/jhoicas/Herramientas-api/pkg/logger"
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
		Msg("iniciando aplicación")

	if err := postgres.Migrate(postgres.MigrateURL(cfg.DB.ConnectionString())); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	toolRepo := postgres.NewToolRepository(pool)
	historyRepo := postgres.NewToolHistoryRepository(pool)
	invitationRepo := postgres.NewInvitationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(txRunner, userRepo, roleRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, toolRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, txRunner)
	roleUC := usecase.NewRoleUseCase(roleRepo, userRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo, toolRepo)
	toolUC := usecase.NewToolUseCase(toolRepo, warehouseRepo, categoryRepo)
	custodyUC := custody.NewCustodyUseCase(txRunner)
	historyUC := history.NewHistoryUseCase(historyRepo, toolRepo)
	inviteUC := invite.NewInviteUseCase(invitationRepo, roleRepo,
		time.Duration(cfg.Invite.TTLDays)*24*time.Hour)

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
		Title:    "Herramientas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		WarehouseUC: warehouseUC,
		CategoryUC:  categoryUC,
		RoleUC:      roleUC,
		UserUC:      userUC,
		ToolUC:      toolUC,
		CustodyUC:   custodyUC,
		HistoryUC:   historyUC,
		InviteUC:    inviteUC,
		RoleRepo:    roleRepo,
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
