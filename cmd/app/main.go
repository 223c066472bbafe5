package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booking/cmd"
	httpin "booking/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Error closing storage", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	return config
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	openAPIValidator, err := httpin.OpenAPIValidator(doc)
	if err != nil {
		log.Fatalf("Error building OpenAPI validator: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpin.NewRequestValidator()
	e.HTTPErrorHandler = httpin.NewErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(httpin.RequestLogger(logger))
	e.Use(httpin.MetricsMiddleware(app.HTTPMetrics()))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(app.Registry(), promhttp.HandlerOpts{})))
	if err := httpin.RegisterSwaggerUI(e, doc); err != nil {
		log.Fatalf("Error publishing OpenAPI document: %v", err)
	}

	server := httpin.NewServer(httpin.Handlers{
		AddLine:           app.CreateAddLineCommandHandler(),
		RemoveLine:        app.CreateRemoveLineCommandHandler(),
		SetQuantity:       app.CreateSetQuantityCommandHandler(),
		UpdateLineDetails: app.CreateUpdateLineDetailsCommandHandler(),
		ClearCart:         app.CreateClearCartCommandHandler(),
		Checkout:          app.CreateCheckoutCommandHandler(),
		SubmitQuote:       app.CreateSubmitQuoteCommandHandler(),
		GetCart:           app.CreateGetCartQueryHandler(),
		GetCatalog:        app.CreateGetCatalogQueryHandler(),
		EstimatePrice:     app.CreateEstimatePriceQueryHandler(),
		GetLastBooking:    app.CreateGetLastBookingQueryHandler(),
		GetLatestQuote:    app.CreateGetLatestQuoteQueryHandler(),
	})
	server.Register(e, openAPIValidator)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down HTTP server", "error", err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
