package response

import (
	"fmt"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
)

// Resolution carries the chosen strategy and a human-readable reason naming
// the rule that fired.
type Resolution struct {
	Type      domain.ResponseType `json:"response_type"`
	Reasoning string              `json:"reasoning"`
}

// Resolve picks a response type from priority and classification flags.
// Total and deterministic: first rule wins, missing inputs behave as the
// normalizer defaults (Medium priority, both flags false).
func Resolve(priority domain.TicketPriority, isFunctional, isTechnical bool) Resolution {
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}

	switch {
	case priority == domain.TicketPriorityUrgent || priority == domain.TicketPriorityHigh:
		return Resolution{
			Type:      domain.ResponseUrgentAcknowledgment,
			Reasoning: fmt.Sprintf("Priority is %s, requires urgent response", priority),
		}
	case isFunctional:
		return Resolution{
			Type:      domain.ResponseClarificationRequest,
			Reasoning: "Functional issue detected, clarification needed",
		}
	case isTechnical && (priority == domain.TicketPriorityLow || priority == domain.TicketPriorityMedium):
		return Resolution{
			Type:      domain.ResponseStandardAcknowledgment,
			Reasoning: "Technical non-urgent issue, standard acknowledgment",
		}
	default:
		return Resolution{
			Type:      domain.ResponseStandardAcknowledgment,
			Reasoning: "Standard processing",
		}
	}
}

// ResolveTicket resolves directly from a normalized ticket.
func ResolveTicket(ticket *domain.Ticket) Resolution {
	return Resolve(ticket.PriorityText, ticket.IsFunctional, ticket.IsTechnical)
}
