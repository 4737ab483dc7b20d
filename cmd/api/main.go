package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/karizma-conseil/helpdesk-agent/internal/api/http"
	"github.com/karizma-conseil/helpdesk-agent/internal/api/http/handlers"
	"github.com/karizma-conseil/helpdesk-agent/internal/config"
	"github.com/karizma-conseil/helpdesk-agent/internal/events"
	"github.com/karizma-conseil/helpdesk-agent/internal/genai"
	"github.com/karizma-conseil/helpdesk-agent/internal/ingest"
	"github.com/karizma-conseil/helpdesk-agent/internal/mail"
	"github.com/karizma-conseil/helpdesk-agent/internal/observability"
	"github.com/karizma-conseil/helpdesk-agent/internal/service"
	"github.com/karizma-conseil/helpdesk-agent/internal/store"
	"github.com/karizma-conseil/helpdesk-agent/internal/template"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keywords, err := ingest.LoadKeywordSets(cfg.Data.KeywordsPath)
	if err != nil {
		logger.Warn("keyword override unusable, using defaults", zap.Error(err))
	}
	classifier := ingest.NewClassifier(keywords)
	normalizer := ingest.NewNormalizer(classifier)
	loader := ingest.NewLoader(logger,
		ingest.NewExcelSource(cfg.Data.FilePath),
		ingest.NewSampleSource(),
	)

	ticketStore := store.NewTicketStore(loader, normalizer, logger)
	if err := ticketStore.Reload(ctx); err != nil {
		logger.Fatal("failed to load ticket data", zap.Error(err))
	}
	draftStore := store.NewDraftStore()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	registry := template.NewRegistry()
	generator := genai.NewOpenAIGenerator(cfg.Generator, logger)
	mailer := mail.ForConfig(cfg.Mail, logger)

	workflowService := service.NewWorkflowService(service.WorkflowDependencies{
		TicketStore: ticketStore,
		DraftStore:  draftStore,
		Registry:    registry,
		Generator:   generator,
		Mailer:      mailer,
		Dispatcher:  dispatcher,
		Metrics:     metrics,
		Logger:      logger,
	})
	notificationService := service.NewNotificationService(dispatcher, logger)
	notificationService.RegisterHandlers()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, ticketStore, generator),
		Tickets:   handlers.NewTicketsHandler(ticketStore, workflowService),
		Templates: handlers.NewTemplatesHandler(registry),
		Workflow:  handlers.NewWorkflowHandler(workflowService, ticketStore, draftStore, generator),
		Drafts:    handlers.NewDraftsHandler(draftStore),
	})

	logger.Info("starting server",
		zap.String("addr", cfg.App.Addr()),
		zap.Int("tickets_loaded", ticketStore.Count()),
		zap.String("data_source", ticketStore.Source()),
		zap.Bool("generator_configured", generator.Configured()))

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
