package api

import (
	"spendsense/internal/api/handlers"
	"spendsense/pkg/auth"
	"spendsense/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	txHandler *handlers.TransactionHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
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

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	api := app.Group("/api")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes. The middleware is attached per subgroup so the
	// public /api/auth prefix stays open.
	authRequired := middleware.AuthMiddleware(jwtManager, appLogger)

	categories := api.Group("/categories", authRequired)
	categories.Get("", categoryHandler.ListCategories)

	rules := api.Group("/rules", authRequired)
	rules.Get("", categoryHandler.ListRules)
	rules.Post("", categoryHandler.CreateRule)
	rules.Delete("/:id", categoryHandler.DeleteRule)

	transactions := api.Group("/transactions", authRequired)
	transactions.Get("", txHandler.List)
	transactions.Post("", txHandler.Create)
	transactions.Get("/stats", txHandler.Stats)
	transactions.Get("/stats/monthly", txHandler.MonthlyStats)
	transactions.Get("/stats/chart", txHandler.ChartStats)
	transactions.Post("/import", txHandler.Import)
	transactions.Get("/export", txHandler.Export)
	transactions.Delete("/:id", txHandler.Delete)

	users := api.Group("/users", authRequired)
	users.Put("/upgrade", authHandler.Upgrade)

	return app
}
