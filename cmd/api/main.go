package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	common_api "go-agency/internal/common/api"
	"go-agency/internal/config"
	"go-agency/internal/features/agent"
	"go-agency/internal/features/automation"
	"go-agency/internal/features/customer"
	"go-agency/internal/features/report"
	"go-agency/internal/features/system"
	"go-agency/internal/logger"
	"go-agency/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
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

	// Use custom CORS middleware
	app.Use(middleware.CORSMiddleware())

	return app
}

// NewAgentGenerator builds the task generator. AGENT_SEED pins the random
// source for reproducible datasets; 0 seeds from the wall clock.
func NewAgentGenerator(cfg *config.Config) *agent.Generator {
	seed := cfg.AgentSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return agent.NewGenerator(rand.New(rand.NewSource(seed)), time.Now)
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
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

// ConnectActivityFeed pushes every recorded activity entry to the
// websocket hub so the dashboard feed updates live.
func ConnectActivityFeed(activityLog *agent.ActivityLog, hub *system.Hub) {
	activityLog.SetNotifier(func(entry agent.ActivityEntry) {
		hub.Broadcast(entry)
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize the agent engine
			customer.NewCustomerService,
			NewAgentGenerator,
			agent.NewActivityLog,
			agent.NewTaskStore,

			agent.NewAgentService,
			automation.NewAutomationService,
			report.NewReportService,
			system.NewHub,

			// Initialize Controller
			agent.NewAgentController,
			automation.NewAutomationController,
			customer.NewCustomerController,
			report.NewReportController,

			// Initialize API Routes
			AsRoute(agent.NewAgentApi),
			AsRoute(automation.NewAutomationApi),
			AsRoute(customer.NewCustomerApi),
			AsRoute(report.NewReportApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewWebSocketApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			ConnectActivityFeed,
			RegisterAllRoutesWithAnnotation,
			StartServer,
		),
	)

	app.Run()
}
