package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/karizma-conseil/helpdesk-agent/internal/service"
	"github.com/karizma-conseil/helpdesk-agent/internal/store"
	apperrors "github.com/karizma-conseil/helpdesk-agent/pkg/util/errorutil"
)

// TicketsHandler serves the read-only ticket catalog and dataset operations.
type TicketsHandler struct {
	tickets  *store.TicketStore
	workflow *service.WorkflowService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *store.TicketStore, workflow *service.WorkflowService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets, workflow: workflow}
}

// List GET /api/tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	filter := store.TicketFilter{
		Priority: c.Query("priority"),
		Team:     c.Query("team"),
		Stage:    c.Query("stage"),
		Limit:    parseInt(c.Query("limit"), 20),
	}
	tickets := h.tickets.List(filter)
	return c.JSON(fiber.Map{
		"success":        true,
		"tickets":        tickets,
		"total":          h.tickets.Count(),
		"filtered_count": len(tickets),
		"data_source":    h.tickets.Source(),
	})
}

// Get GET /api/tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	ticketID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("ticket id must be an integer", nil)
	}
	ticket, err := h.tickets.GetByID(ticketID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"ticket":  ticket,
	})
}

// Interactions GET /api/tickets/:id/interactions.
func (h *TicketsHandler) Interactions(c *fiber.Ctx) error {
	ticketID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("ticket id must be an integer", nil)
	}
	if _, err := h.tickets.GetByID(ticketID); err != nil {
		return err
	}
	interactions := h.tickets.Interactions(ticketID)
	return c.JSON(fiber.Map{
		"success":      true,
		"ticket_id":    ticketID,
		"interactions": interactions,
		"count":        len(interactions),
	})
}

// Stats GET /api/stats.
func (h *TicketsHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":      true,
		"stats":        h.tickets.Stats(),
		"generated_at": time.Now().Format(time.RFC3339),
	})
}

// DataInfo GET /api/data-info.
func (h *TicketsHandler) DataInfo(c *fiber.Ctx) error {
	if h.tickets.Count() == 0 {
		return apperrors.NewNotFound("dataset", nil)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"data_info": h.tickets.DataInfo(),
	})
}

// Reload POST /api/reload-data.
func (h *TicketsHandler) Reload(c *fiber.Ctx) error {
	if err := h.workflow.Reload(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":          true,
		"message":          "Data reloaded successfully",
		"tickets_loaded":   h.tickets.Count(),
		"data_source":      h.tickets.Source(),
		"reload_timestamp": time.Now().Format(time.RFC3339),
	})
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
