package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/karizma-conseil/helpdesk-agent/internal/api/dto"
	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	"github.com/karizma-conseil/helpdesk-agent/internal/genai"
	"github.com/karizma-conseil/helpdesk-agent/internal/response"
	"github.com/karizma-conseil/helpdesk-agent/internal/service"
	"github.com/karizma-conseil/helpdesk-agent/internal/store"
	"github.com/karizma-conseil/helpdesk-agent/internal/template"
	apperrors "github.com/karizma-conseil/helpdesk-agent/pkg/util/errorutil"
)

// WorkflowHandler exposes the triage pipeline, both end-to-end and as
// standalone steps mirroring each stage.
type WorkflowHandler struct {
	workflow  *service.WorkflowService
	tickets   *store.TicketStore
	drafts    *store.DraftStore
	generator genai.Generator
}

// NewWorkflowHandler constructs handler.
func NewWorkflowHandler(workflow *service.WorkflowService, tickets *store.TicketStore, drafts *store.DraftStore, generator genai.Generator) *WorkflowHandler {
	return &WorkflowHandler{workflow: workflow, tickets: tickets, drafts: drafts, generator: generator}
}

// Trigger POST /api/manual/trigger.
func (h *WorkflowHandler) Trigger(c *fiber.Ctx) error {
	var req dto.TriggerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TicketID == nil {
		return apperrors.NewValidationError("ticket_id is required", nil)
	}
	ticket, err := h.tickets.GetByID(*req.TicketID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"workflow_id": fmt.Sprintf("workflow_%d", time.Now().Unix()),
		"ticket":      ticket,
		"message":     "Manual workflow triggered successfully",
	})
}

// ResponseType POST /api/manual/response-type.
func (h *WorkflowHandler) ResponseType(c *fiber.Ctx) error {
	var req dto.ResponseTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Ticket == nil {
		return apperrors.NewValidationError("ticket data is required", nil)
	}
	ticket := req.Ticket.ToDomain()
	resolution := response.ResolveTicket(ticket)
	return c.JSON(fiber.Map{
		"success":       true,
		"response_type": resolution.Type,
		"reasoning":     resolution.Reasoning,
		"ticket_id":     ticket.TicketID,
		"priority":      ticket.PriorityText,
		"is_functional": ticket.IsFunctional,
		"is_technical":  ticket.IsTechnical,
	})
}

// GenerateContent POST /api/manual/generate-content.
func (h *WorkflowHandler) GenerateContent(c *fiber.Ctx) error {
	var req dto.GenerateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Ticket == nil || req.ResponseType == "" {
		return apperrors.NewValidationError("ticket and response_type are required", nil)
	}
	ticket := req.Ticket.ToDomain()
	content := h.generator.Generate(c.UserContext(), ticket, domain.ResponseType(req.ResponseType))
	return c.JSON(fiber.Map{
		"success":              true,
		"generated_content":    content,
		"ticket_id":            ticket.TicketID,
		"response_type":        req.ResponseType,
		"generation_timestamp": time.Now().Format(time.RFC3339),
	})
}

// MergeContent POST /api/manual/merge-content.
func (h *WorkflowHandler) MergeContent(c *fiber.Ctx) error {
	var req dto.MergeContentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Ticket == nil || req.Template == nil || req.GeneratedContent == "" {
		return apperrors.NewValidationError("ticket, template, and generated_content are required", nil)
	}
	email := template.Merge(req.Ticket.ToDomain(), *req.Template, req.GeneratedContent)
	return c.JSON(fiber.Map{
		"success":         true,
		"final_email":     email,
		"merge_timestamp": time.Now().Format(time.RFC3339),
	})
}

// CreateDraft POST /api/manual/create-draft.
func (h *WorkflowHandler) CreateDraft(c *fiber.Ctx) error {
	var req dto.CreateDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.EmailContent == nil {
		return apperrors.NewValidationError("email_content is required", nil)
	}
	draft := h.drafts.Create(*req.EmailContent, req.TicketID)
	return c.JSON(fiber.Map{
		"success":  true,
		"draft_id": draft.ID,
		"draft":    draft,
		"message":  "Draft created successfully",
	})
}

// ValidateSend POST /api/manual/validate-send.
func (h *WorkflowHandler) ValidateSend(c *fiber.Ctx) error {
	var req dto.ValidateSendRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.DraftID == "" {
		return apperrors.NewValidationError("draft_id is required", nil)
	}
	action := domain.DraftAction(req.Action)
	if action == "" {
		action = domain.DraftActionSend
	}

	draft, err := h.workflow.ValidateDraft(c.UserContext(), req.DraftID, action, req.Modifications)
	if err != nil {
		return err
	}

	resp := fiber.Map{
		"success":  true,
		"draft_id": draft.ID,
	}
	switch action {
	case domain.DraftActionSend:
		resp["message"] = "Email sent successfully"
		resp["action"] = "sent"
	case domain.DraftActionEdit:
		resp["message"] = "Draft updated with modifications"
		resp["action"] = "edited"
		resp["modifications"] = req.Modifications
	case domain.DraftActionCancel:
		resp["message"] = "Draft cancelled"
		resp["action"] = "cancelled"
	}
	return c.JSON(resp)
}

// CompleteWorkflow POST /api/manual/complete-workflow.
func (h *WorkflowHandler) CompleteWorkflow(c *fiber.Ctx) error {
	var req dto.CompleteWorkflowRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TicketID == nil {
		return apperrors.NewValidationError("ticket_id is required", nil)
	}

	result, err := h.workflow.Process(c.UserContext(), *req.TicketID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"workflow_id":   result.WorkflowID,
		"ticket":        result.Ticket,
		"response_type": result.ResponseType,
		"reasoning":     result.Reasoning,
		"gpt_content":   result.GPTContent,
		"final_email":   result.FinalEmail,
		"draft_id":      result.DraftID,
	})
}

// TestGenerate POST /api/test-gpt.
func (h *WorkflowHandler) TestGenerate(c *fiber.Ctx) error {
	var req dto.TestGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	responseType := domain.ResponseType(req.ResponseType)
	if responseType == "" {
		responseType = domain.ResponseStandardAcknowledgment
	}

	testTicket := &domain.Ticket{
		TicketID:         99999,
		Customer:         "Test Client",
		TicketSubject:    "Test Issue",
		PriorityText:     domain.TicketPriorityMedium,
		DescriptionClean: "This is a test ticket for content generation",
		TeamClean:        domain.TeamIntegration1,
	}

	content := h.generator.Generate(c.UserContext(), testTicket, responseType)
	return c.JSON(fiber.Map{
		"success":              true,
		"generated_content":    content,
		"test_ticket":          testTicket,
		"response_type":        responseType,
		"generator_configured": h.generator.Configured(),
	})
}
