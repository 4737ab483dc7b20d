package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karizma-conseil/helpdesk-agent/internal/store"
)

// DraftsHandler serves draft reads; lifecycle actions go through the
// workflow handler.
type DraftsHandler struct {
	drafts *store.DraftStore
}

// NewDraftsHandler constructs handler.
func NewDraftsHandler(drafts *store.DraftStore) *DraftsHandler {
	return &DraftsHandler{drafts: drafts}
}

// Get GET /api/drafts/:id.
func (h *DraftsHandler) Get(c *fiber.Ctx) error {
	draft, err := h.drafts.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"draft":   draft,
	})
}
