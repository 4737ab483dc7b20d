package dto

import (
	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	"github.com/karizma-conseil/helpdesk-agent/internal/store"
	"github.com/karizma-conseil/helpdesk-agent/internal/template"
)

// TicketInput is a ticket posted to the standalone workflow endpoints. Any
// subset of fields may be present; absent fields behave as the normalizer
// defaults.
type TicketInput struct {
	TicketID         int    `json:"ticket_id"`
	Customer         string `json:"customer"`
	CustomerEmail    string `json:"customer_email"`
	TicketSubject    string `json:"ticket_subject"`
	PriorityText     string `json:"priority_text"`
	TeamClean        string `json:"team_clean"`
	StageClean       string `json:"stage_clean"`
	DescriptionClean string `json:"description_clean"`
	IsFunctional     bool   `json:"is_functional"`
	IsTechnical      bool   `json:"is_technical"`
}

// ToDomain converts the posted fields into a ticket with defaulted enums.
func (t *TicketInput) ToDomain() *domain.Ticket {
	priority := domain.TicketPriority(t.PriorityText)
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	team := domain.Team(t.TeamClean)
	if team == "" {
		team = domain.TeamDevOps
	}
	stage := domain.Stage(t.StageClean)
	if stage == "" {
		stage = domain.StageNew
	}
	return &domain.Ticket{
		TicketID:         t.TicketID,
		Customer:         t.Customer,
		CustomerEmail:    t.CustomerEmail,
		TicketSubject:    t.TicketSubject,
		PriorityText:     priority,
		TeamClean:        team,
		StageClean:       stage,
		DescriptionClean: t.DescriptionClean,
		IsFunctional:     t.IsFunctional,
		IsTechnical:      t.IsTechnical,
	}
}

// TriggerRequest starts a manual workflow for a ticket.
type TriggerRequest struct {
	TicketID *int `json:"ticket_id"`
}

// ResponseTypeRequest asks the resolver to decide for a posted ticket.
type ResponseTypeRequest struct {
	Ticket *TicketInput `json:"ticket"`
}

// GenerateContentRequest asks the generator for prose.
type GenerateContentRequest struct {
	Ticket       *TicketInput `json:"ticket"`
	ResponseType string       `json:"response_type"`
}

// MergeContentRequest merges a template with ticket data and generated prose.
type MergeContentRequest struct {
	Ticket           *TicketInput            `json:"ticket"`
	Template         *template.EmailTemplate `json:"template"`
	GeneratedContent string                  `json:"generated_content"`
}

// CreateDraftRequest creates a draft from rendered email content.
type CreateDraftRequest struct {
	EmailContent *domain.Email `json:"email_content"`
	TicketID     int           `json:"ticket_id"`
}

// ValidateSendRequest applies a lifecycle action to a draft.
type ValidateSendRequest struct {
	DraftID       string                    `json:"draft_id"`
	Action        string                    `json:"action"`
	Modifications *store.EmailModifications `json:"modifications"`
}

// CompleteWorkflowRequest runs the pipeline end-to-end.
type CompleteWorkflowRequest struct {
	TicketID *int `json:"ticket_id"`
}

// TestGenerateRequest smoke-tests the generator against a fixed ticket.
type TestGenerateRequest struct {
	ResponseType string `json:"response_type"`
}
