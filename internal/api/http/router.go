package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karizma-conseil/helpdesk-agent/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Tickets   *handlers.TicketsHandler
	Templates *handlers.TemplatesHandler
	Workflow  *handlers.WorkflowHandler
	Drafts    *handlers.DraftsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Check)

	api.Get("/tickets", cfg.Tickets.List)
	api.Get("/tickets/:id", cfg.Tickets.Get)
	api.Get("/tickets/:id/interactions", cfg.Tickets.Interactions)
	api.Get("/stats", cfg.Tickets.Stats)
	api.Get("/data-info", cfg.Tickets.DataInfo)
	api.Post("/reload-data", cfg.Tickets.Reload)

	api.Get("/templates", cfg.Templates.List)
	api.Get("/templates/:response_type", cfg.Templates.Get)

	manual := api.Group("/manual")
	manual.Post("/trigger", cfg.Workflow.Trigger)
	manual.Post("/response-type", cfg.Workflow.ResponseType)
	manual.Post("/generate-content", cfg.Workflow.GenerateContent)
	manual.Post("/merge-content", cfg.Workflow.MergeContent)
	manual.Post("/create-draft", cfg.Workflow.CreateDraft)
	manual.Post("/validate-send", cfg.Workflow.ValidateSend)
	manual.Post("/complete-workflow", cfg.Workflow.CompleteWorkflow)

	api.Post("/test-gpt", cfg.Workflow.TestGenerate)

	api.Get("/drafts/:id", cfg.Drafts.Get)
}
