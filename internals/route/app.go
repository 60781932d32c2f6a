package routes

import (
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"schoolku_backend/internals/configs"
	helper "schoolku_backend/internals/helpers"
	middlewares "schoolku_backend/internals/middlewares"
	accessLog "schoolku_backend/internals/middlewares/logger"
)

const requestTimeout = 5 * time.Second

// NewApp membangun fiber app + middleware dasar. accessOut nil → stdout.
func NewApp(cfg *configs.Config, accessOut io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.RequestID(requestTimeout))
	app.Use(accessLog.LoggerMiddleware(accessOut))
	app.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins()))
	app.Use(middlewares.GlobalRateLimiter(cfg.RateLimitMax))

	// ⚙️ performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	return app
}
