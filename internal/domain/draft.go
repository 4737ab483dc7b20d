package domain

import "time"

// DraftStatus enumerates lifecycle states for email drafts.
type DraftStatus string

const (
	DraftStatusDraft     DraftStatus = "draft"
	DraftStatusSent      DraftStatus = "sent"
	DraftStatusCancelled DraftStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s DraftStatus) Terminal() bool {
	return s == DraftStatusSent || s == DraftStatusCancelled
}

// Email is the rendered outbound message attached to a draft.
type Email struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	TicketID int    `json:"ticket_id"`
}

// Draft is a generated, not-yet-confirmed email tied to a ticket.
// The email is mutable only while the status is draft.
type Draft struct {
	ID          string      `json:"id"`
	TicketID    int         `json:"ticket_id"`
	Email       Email       `json:"email_content"`
	Status      DraftStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	SentAt      *time.Time  `json:"sent_at,omitempty"`
	ModifiedAt  *time.Time  `json:"modified_at,omitempty"`
	CancelledAt *time.Time  `json:"cancelled_at,omitempty"`
}

// DraftAction enumerates the operations accepted by the draft lifecycle.
type DraftAction string

const (
	DraftActionSend   DraftAction = "send"
	DraftActionEdit   DraftAction = "edit"
	DraftActionCancel DraftAction = "cancel"
)
