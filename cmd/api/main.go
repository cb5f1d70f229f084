package main

import (
	"context"
	"fmt"
	"log"

	common_api "sankhya-crm/internal/common/api"
	"sankhya-crm/internal/config"
	"sankhya-crm/internal/connectors/sankhya"
	"sankhya-crm/internal/database"
	"sankhya-crm/internal/features/activity"
	"sankhya-crm/internal/features/lead"
	"sankhya-crm/internal/features/system"
	"sankhya-crm/internal/logger"
	"sankhya-crm/internal/middleware"
	"sankhya-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	return app
}

// NewSankhyaSession builds the process-wide ERP session from the loaded config.
func NewSankhyaSession(cfg *config.Config, logger *zap.Logger) (*sankhya.Session, error) {
	return sankhya.NewSession(sankhya.Config{
		BaseURL:  cfg.Sankhya.BaseURL,
		Token:    cfg.Sankhya.Token,
		AppKey:   cfg.Sankhya.AppKey,
		Username: cfg.Sankhya.Username,
		Password: cfg.Sankhya.Password,
	}, logger)
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for i, route := range routes {
		log.Printf("Setting up route %d: %T\n", i+1, route)
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// ConfigureJWT hands the signing secret to the token helpers.
func ConfigureJWT(cfg *config.Config) {
	utils.SetSecret(cfg.JWTSecret)
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			database.NewDatabase,
			logger.NewLogger,
			NewFiberServer,

			// ERP gateway
			NewSankhyaSession,
			sankhya.NewClient,
			sankhya.NewConnector,

			activity.NewActivityService,
			lead.NewLeadService,

			activity.NewActivityController,
			lead.NewLeadController,
			system.NewHealthController,
			system.NewDebugController,

			AsRoute(activity.NewActivityApi),
			AsRoute(lead.NewLeadApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewDebugApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			ConfigureJWT,
			RegisterAllRoutesWithAnnotation,
			StartServer,
		),
	)

	app.Run()
}
