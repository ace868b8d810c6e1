package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"community-guard/internal/config"
	"community-guard/internal/handler"
	"community-guard/internal/logger"
	"community-guard/internal/notifier"
	"community-guard/internal/service"
	"community-guard/internal/storage"
)

func main() {
	// Define command line flags
	configPath := flag.String("config", "configs/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging first
	if err := logger.Setup(cfg); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	// Initialize database
	if err := storage.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize repositories and run migrations
	if err := service.Setup(storage.GetDB()); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up the moderator alert bot if configured
	if cfg.Moderation.Notify.Enabled {
		tn, err := notifier.NewTelegramNotifier(ctx, &cfg.Moderation.Notify)
		if err != nil {
			log.Fatalf("Failed to initialize moderator notifications: %v", err)
		}
		service.SetBanNotifier(tn)
	}

	// Initialize handler with configuration
	handler.Initialize(cfg)

	app := fiber.New()
	app.Use(recover.New())

	// Access logs rotate separately from the service log
	app.Use(fiberlogger.New(fiberlogger.Config{
		Output: logger.GetRotatingLogWriter(cfg, "access"),
	}))
	handler.RegisterRoutes(app)

	// Start HTTP server in a goroutine
	go func() {
		if err := app.Listen(":" + cfg.Server.ListenPort); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()
	log.Printf("HTTP server listening on :%s", cfg.Server.ListenPort)

	// Create a channel for receiving OS signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Wait for signal
	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down...", sig)

	// Gracefully shutdown server
	if err := app.Shutdown(); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server gracefully stopped")
}
