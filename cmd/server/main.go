package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travelbooking-service/internal/infrastructure/config"
	"travelbooking-service/internal/infrastructure/persistence"
	"travelbooking-service/internal/interface/handler"
	"travelbooking-service/internal/interface/repository"
	"travelbooking-service/internal/usecase"
	"travelbooking-service/pkg/logger"
	"travelbooking-service/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Travel Booking Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up PostgreSQL connection and migrate the schema
	log.Info("Connecting to PostgreSQL")
	db, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	customerRepo := repository.NewGormCustomerRepository(db)
	flightRepo := repository.NewGormFlightRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	travelAgentRepo := repository.NewGormTravelAgentBookingRepository(db)
	transactor := repository.NewGormTransactor(db)

	// Set up validators and services
	validate := usecase.NewValidate()
	customerService := usecase.NewCustomerService(
		customerRepo, usecase.NewCustomerValidator(validate, customerRepo), transactor, log)
	flightService := usecase.NewFlightService(
		flightRepo, usecase.NewFlightValidator(validate, flightRepo), transactor, log)
	bookingService := usecase.NewBookingService(
		bookingRepo, customerRepo, usecase.NewBookingValidator(validate, bookingRepo), transactor, log)
	travelAgentService := usecase.NewTravelAgentBookingService(
		travelAgentRepo, customerRepo, usecase.NewTravelAgentBookingValidator(validate, travelAgentRepo), transactor, log)

	// Set up the REST boundary
	m := metrics.NewMetrics("travelbooking")
	app := fiber.New(fiber.Config{
		AppName:      "travelbooking-service " + cfg.AppVersion,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	app.Use(cors.New())
	app.Use(handler.Metrics(m))
	app.Use(handler.RequestLogger(log))

	api := app.Group("/api")
	handler.NewCustomerHandler(customerService, log).RegisterRoutes(api)
	handler.NewFlightHandler(flightService, log).RegisterRoutes(api)
	handler.NewBookingHandler(bookingService, customerService, flightService, log).RegisterRoutes(api)
	handler.NewTravelAgentBookingHandler(travelAgentService, customerService, flightService, log).RegisterRoutes(api)

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	metricsServer := &http.Server{
		Addr:         ":" + cfg.MetricsPort,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start both servers
	go func() {
		log.Info("Starting metrics server", "port", cfg.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Metrics server error", "error", err)
		}
	}()
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", "error", err)
	}

	log.Info("Travel Booking Service stopped")
}
