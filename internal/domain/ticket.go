package domain

import "time"

// TicketPriority enumerates the canonical priority labels derived at load time.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityHigh   TicketPriority = "High"
	TicketPriorityUrgent TicketPriority = "Urgent"
)

// Team enumerates the canonical team labels derived from free-text team names.
type Team string

const (
	TeamIntegration1 Team = "Integration 1"
	TeamIntegration2 Team = "Integration 2"
	TeamDevOps       Team = "DevOps"
)

// Stage enumerates the canonical lifecycle stages derived from free-text stage names.
type Stage string

const (
	StageNew        Stage = "New"
	StageInProgress Stage = "In Progress"
	StageClosed     Stage = "Closed"
)

// Ticket is a support request normalized from one raw dataset row.
// Every derived field always holds a value from its enumerated set;
// tickets are immutable after load.
type Ticket struct {
	TicketID         int            `json:"ticket_id"`
	Customer         string         `json:"customer"`
	CustomerEmail    string         `json:"customer_email"`
	TicketSubject    string         `json:"ticket_subject"`
	TeamName         string         `json:"team_name"`
	TeamClean        Team           `json:"team_clean"`
	Priority         *int           `json:"priority"`
	PriorityText     TicketPriority `json:"priority_text"`
	StageName        string         `json:"stage_name"`
	StageClean       Stage          `json:"stage_clean"`
	Description      string         `json:"description"`
	DescriptionClean string         `json:"description_clean"`
	IsFunctional     bool           `json:"is_functional"`
	IsTechnical      bool           `json:"is_technical"`
	CreateDate       *time.Time     `json:"create_date"`
	CloseDate        *time.Time     `json:"close_date"`
}
