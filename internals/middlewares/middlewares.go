package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"college_backend/internals/middlewares/logger"
)

// SetupMiddlewares mounts the global chain: recover, cors, access log, rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
