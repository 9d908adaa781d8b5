package server

import (
	"errors"

	"github.com/fadilmartias/room-cleaning-report/internal/config"
	"github.com/fadilmartias/room-cleaning-report/internal/middleware"
	"github.com/fadilmartias/room-cleaning-report/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberLogs "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Options configures the Fiber app shared by both services.
type Options struct {
	AppName    string
	Production bool
	AccessLog  bool
}

// New builds a Fiber app with the common middleware stack and a JSON error
// handler. Routes are registered by the caller.
func New(opts Options) *fiber.App {
	production := opts.Production

	app := fiber.New(fiber.Config{
		AppName:   opts.AppName,
		BodyLimit: 4 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if code == fiber.StatusInternalServerError || message == "" {
				message = "Internal Server Error"
			}

			return util.ErrorResponse(c, production, util.ErrorResponseFormat{
				Code:    code,
				Message: message,
			}, err)
		},
	})

	if opts.AccessLog {
		app.Use(fiberLogs.New())
	}
	app.Use(middleware.TraceID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !production,
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	return app
}

// FromConfig is New with values taken from the loaded app config.
func FromConfig(appConfig *config.AppConfig) *fiber.App {
	return New(Options{
		AppName:    appConfig.Name,
		Production: appConfig.IsProduction(),
		AccessLog:  true,
	})
}
