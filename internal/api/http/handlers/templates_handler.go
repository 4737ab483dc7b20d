package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	"github.com/karizma-conseil/helpdesk-agent/internal/template"
)

// TemplatesHandler exposes the static template registry.
type TemplatesHandler struct {
	registry *template.Registry
}

// NewTemplatesHandler constructs handler.
func NewTemplatesHandler(registry *template.Registry) *TemplatesHandler {
	return &TemplatesHandler{registry: registry}
}

// List GET /api/templates.
func (h *TemplatesHandler) List(c *fiber.Ctx) error {
	all := h.registry.All()
	return c.JSON(fiber.Map{
		"success":        true,
		"templates":      all,
		"template_count": len(all),
	})
}

// Get GET /api/templates/:response_type.
func (h *TemplatesHandler) Get(c *fiber.Ctx) error {
	responseType := domain.ResponseType(c.Params("response_type"))
	tmpl, err := h.registry.Get(responseType)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"template":      tmpl,
		"response_type": responseType,
	})
}
