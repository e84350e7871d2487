package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/member-api/member_api/internal/auth"
	"github.com/member-api/member_api/internal/config"
	"github.com/member-api/member_api/internal/member"
	"github.com/member-api/member_api/internal/middleware"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// The in-memory store only stands in during development and tests.
	if d.DB == nil && !d.Cfg.IsDev() {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	app.Use(recover.New())
	// Open policy: browser frontends are served from arbitrary origins.
	app.Use(cors.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var repo member.Repository
	if d.DB != nil {
		repo = member.NewPostgresRepository(d.DB)
	} else {
		repo = member.NewMemoryRepository()
	}

	memberSvc := member.NewService(repo)
	authSvc := auth.NewService(repo)
	memberHandler := member.NewHandler(memberSvc)
	authHandler := auth.NewHandler(authSvc)

	api := app.Group("/api")
	RegisterMemberRoutes(api, d.Cfg, memberHandler, authHandler)

	return nil
}
