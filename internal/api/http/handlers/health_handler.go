package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/karizma-conseil/helpdesk-agent/internal/genai"
	"github.com/karizma-conseil/helpdesk-agent/internal/store"
)

// HealthHandler reports service status and data availability.
type HealthHandler struct {
	serviceName string
	version     string
	tickets     *store.TicketStore
	generator   genai.Generator
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, tickets *store.TicketStore, generator genai.Generator) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, tickets: tickets, generator: generator}
}

// Check GET /api/health.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	source := h.tickets.Source()
	return c.JSON(fiber.Map{
		"status":               "OK",
		"service":              h.serviceName,
		"version":              h.version,
		"timestamp":            time.Now().Format(time.RFC3339),
		"tickets_loaded":       h.tickets.Count(),
		"data_source":          source,
		"local_file_loaded":    source == "local_file",
		"generator_configured": h.generator.Configured(),
	})
}
