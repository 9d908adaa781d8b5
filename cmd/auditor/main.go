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
	"github.com/fadilmartias/room-cleaning-report/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

const defaultPort = ":5001"

func main() {
	log := logger.New("auditor")

	if err := godotenv.Load(); err != nil {
		log.Warn("Could not load .env file", "error", err)
	}

	appConfig := config.LoadAppConfig()
	storageConfig := config.LoadStorageConfig()

	reportRepo, err := repository.NewReportRepository(storageConfig.ReceivedDir)
	if err != nil {
		log.Er("failed to open received report directory", err, "dir", storageConfig.ReceivedDir)
		os.Exit(1)
	}

	uc := usecase.NewAuditorUsecase(reportRepo)
	app := server.FromConfig(appConfig)
	handler.NewAuditorHandler(uc, appConfig.Name).RegisterRoutes(app)

	port := appConfig.Port
	if port == "" {
		port = defaultPort
	}
	run(app, port, log)
}

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
