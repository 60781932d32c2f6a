package middlewares

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"schoolku_backend/internals/logger"
)

// RecoveryMiddleware menangkap panic; ErrorHandler membalas 500.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			logger.Error("panic", "path", c.Path(), "err", fmt.Sprint(e))
		},
	})
}
