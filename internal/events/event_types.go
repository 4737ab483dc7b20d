package events

import (
	"time"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDraftCreated   EventType = "draft_created"
	EventDraftSent      EventType = "draft_sent"
	EventDraftEdited    EventType = "draft_edited"
	EventDraftCancelled EventType = "draft_cancelled"
	EventDataReloaded   EventType = "data_reloaded"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	DraftID   string      `json:"draft_id,omitempty"`
	TicketID  int         `json:"ticket_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// DraftCreatedPayload payload.
type DraftCreatedPayload struct {
	ResponseType domain.ResponseType `json:"response_type"`
	To           string              `json:"to"`
	Subject      string              `json:"subject"`
}

// DraftSentPayload payload.
type DraftSentPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
}

// DataReloadedPayload payload.
type DataReloadedPayload struct {
	Source  string `json:"source"`
	Tickets int    `json:"tickets"`
}
