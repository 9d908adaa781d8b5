package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/fadilmartias/room-cleaning-report/internal/config"
	"github.com/fadilmartias/room-cleaning-report/internal/domain/fiber/handler"
	"github.com/fadilmartias/room-cleaning-report/internal/repository"
	"github.com/fadilmartias/room-cleaning-report/internal/server"
	"github.com/fadilmartias/room-cleaning-report/internal/service"
	"github.com/fadilmartias/room-cleaning-report/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

const defaultPort = ":5000"

func main() {
	log := logger.New("field")

	if err := godotenv.Load(); err != nil {
		log.Warn("Could not load .env file", "error", err)
	}

	appConfig := config.LoadAppConfig()
	storageConfig := config.LoadStorageConfig()
	auditorConfig := config.LoadAuditorConfig()

	reportRepo, err := repository.NewReportRepository(storageConfig.ReportsDir)
	if err != nil {
		log.Er("failed to open report directory", err, "dir", storageConfig.ReportsDir)
		os.Exit(1)
	}

	auditor := service.NewAuditorService(auditorConfig.Endpoint, auditorConfig.Timeout)
	if auditor.Enabled() {
		log.Info("Forwarding reports to auditor", "endpoint", auditorConfig.Endpoint)
	} else {
		log.Info("AUDITOR_ENDPOINT not set, forwarding disabled")
	}

	uc := usecase.NewFieldUsecase(reportRepo, auditor)
	app := server.FromConfig(appConfig)
	handler.NewFieldHandler(uc, appConfig.Name, auditor.Enabled(), config.LoadRateLimitConfig()).RegisterRoutes(app)

	port := appConfig.Port
	if port == "" {
		port = defaultPort
	}
	run(app, port, log)
}

// run serves until SIGINT/SIGTERM, then gives in-flight requests five
// seconds to finish.
func run(app *fiber.App, port string, log logger.Logger) {
	go func() {
		log.Info("Server running", "port", port)
		if err := app.Listen(port); err != nil {
			log.Er("server stopped", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down gracefully")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Er("Server forced to shutdown", err)
	}
	log.Info("Server exiting")
}
