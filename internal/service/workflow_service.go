package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	"github.com/karizma-conseil/helpdesk-agent/internal/events"
	"github.com/karizma-conseil/helpdesk-agent/internal/genai"
	"github.com/karizma-conseil/helpdesk-agent/internal/mail"
	"github.com/karizma-conseil/helpdesk-agent/internal/observability"
	"github.com/karizma-conseil/helpdesk-agent/internal/response"
	"github.com/karizma-conseil/helpdesk-agent/internal/store"
	"github.com/karizma-conseil/helpdesk-agent/internal/template"
)

// WorkflowService sequences the full per-ticket pipeline and the draft
// lifecycle actions that follow it.
type WorkflowService struct {
	tickets    *store.TicketStore
	drafts     *store.DraftStore
	registry   *template.Registry
	generator  genai.Generator
	mailer     mail.Mailer
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// WorkflowDependencies bundles collaborators for the workflow service.
type WorkflowDependencies struct {
	TicketStore *store.TicketStore
	DraftStore  *store.DraftStore
	Registry    *template.Registry
	Generator   genai.Generator
	Mailer      mail.Mailer
	Dispatcher  events.Dispatcher
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

// WorkflowResult aggregates every intermediate product of one pipeline run.
type WorkflowResult struct {
	WorkflowID   string              `json:"workflow_id"`
	Ticket       *domain.Ticket      `json:"ticket"`
	ResponseType domain.ResponseType `json:"response_type"`
	Reasoning    string              `json:"reasoning"`
	GPTContent   string              `json:"gpt_content"`
	FinalEmail   domain.Email        `json:"final_email"`
	DraftID      string              `json:"draft_id"`
}

// NewWorkflowService constructs the service.
func NewWorkflowService(deps WorkflowDependencies) *WorkflowService {
	return &WorkflowService{
		tickets:    deps.TicketStore,
		drafts:     deps.DraftStore,
		registry:   deps.Registry,
		generator:  deps.Generator,
		mailer:     deps.Mailer,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}
}

// Process runs fetch → resolve → template → generate → merge → draft create.
// Any failure aborts before the draft step, so no partial draft exists on
// failure.
func (s *WorkflowService) Process(ctx context.Context, ticketID int) (*WorkflowResult, error) {
	ticket, err := s.tickets.GetByID(ticketID)
	if err != nil {
		s.metrics.RecordWorkflow("", false)
		return nil, err
	}

	resolution := response.ResolveTicket(ticket)

	tmpl, err := s.registry.MustGet(resolution.Type)
	if err != nil {
		s.logger.Error("resolver output missing from template registry",
			zap.String("response_type", string(resolution.Type)))
		s.metrics.RecordWorkflow(string(resolution.Type), false)
		return nil, err
	}

	content := s.generator.Generate(ctx, ticket, resolution.Type)
	email := template.Merge(ticket, tmpl, content)

	draft := s.drafts.Create(email, ticket.TicketID)

	s.publish(ctx, events.Event{
		Type:     events.EventDraftCreated,
		DraftID:  draft.ID,
		TicketID: ticket.TicketID,
		Payload: events.DraftCreatedPayload{
			ResponseType: resolution.Type,
			To:           email.To,
			Subject:      email.Subject,
		},
	})
	s.metrics.RecordWorkflow(string(resolution.Type), true)

	s.logger.Info("workflow completed",
		zap.Int("ticket_id", ticket.TicketID),
		zap.String("response_type", string(resolution.Type)),
		zap.String("draft_id", draft.ID))

	return &WorkflowResult{
		WorkflowID:   fmt.Sprintf("workflow_%d", time.Now().Unix()),
		Ticket:       ticket,
		ResponseType: resolution.Type,
		Reasoning:    resolution.Reasoning,
		GPTContent:   content,
		FinalEmail:   email,
		DraftID:      draft.ID,
	}, nil
}

// ValidateDraft applies a lifecycle action to a draft. Sending delivers the
// email through the transport before the status flips, with the delivery and
// the flip atomic inside the store so a concurrent second send conflicts
// instead of reaching the transport again; a transport failure surfaces and
// leaves the draft editable.
func (s *WorkflowService) ValidateDraft(ctx context.Context, draftID string, action domain.DraftAction, mods *store.EmailModifications) (*domain.Draft, error) {
	if action == domain.DraftActionSend {
		draft, err := s.drafts.Send(draftID, func(email domain.Email) error {
			return s.mailer.Send(ctx, email)
		})
		if err != nil {
			return nil, err
		}
		s.publish(ctx, events.Event{
			Type:     events.EventDraftSent,
			DraftID:  draft.ID,
			TicketID: draft.TicketID,
			Payload:  events.DraftSentPayload{To: draft.Email.To, Subject: draft.Email.Subject},
		})
		return draft, nil
	}

	draft, err := s.drafts.Transition(draftID, action, mods)
	if err != nil {
		return nil, err
	}

	switch action {
	case domain.DraftActionEdit:
		s.publish(ctx, events.Event{Type: events.EventDraftEdited, DraftID: draft.ID, TicketID: draft.TicketID})
	case domain.DraftActionCancel:
		s.publish(ctx, events.Event{Type: events.EventDraftCancelled, DraftID: draft.ID, TicketID: draft.TicketID})
	}
	return draft, nil
}

// Reload refreshes the ticket catalog through the source fallback chain.
func (s *WorkflowService) Reload(ctx context.Context) error {
	if err := s.tickets.Reload(ctx); err != nil {
		return err
	}
	s.publish(ctx, events.Event{
		Type: events.EventDataReloaded,
		Payload: events.DataReloadedPayload{
			Source:  s.tickets.Source(),
			Tickets: s.tickets.Count(),
		},
	})
	return nil
}

func (s *WorkflowService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
