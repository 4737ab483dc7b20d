package response_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	"github.com/karizma-conseil/helpdesk-agent/internal/response"
)

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name         string
		priority     domain.TicketPriority
		isFunctional bool
		isTechnical  bool
		want         domain.ResponseType
	}{
		{
			name:     "urgent wins regardless of flags",
			priority: domain.TicketPriorityUrgent, isFunctional: true, isTechnical: true,
			want: domain.ResponseUrgentAcknowledgment,
		},
		{
			name:     "high wins regardless of flags",
			priority: domain.TicketPriorityHigh,
			want:     domain.ResponseUrgentAcknowledgment,
		},
		{
			name:     "functional precedes technical",
			priority: domain.TicketPriorityMedium, isFunctional: true, isTechnical: true,
			want: domain.ResponseClarificationRequest,
		},
		{
			name:     "functional on low priority",
			priority: domain.TicketPriorityLow, isFunctional: true,
			want: domain.ResponseClarificationRequest,
		},
		{
			name:     "technical non-urgent",
			priority: domain.TicketPriorityMedium, isTechnical: true,
			want: domain.ResponseStandardAcknowledgment,
		},
		{
			name:     "technical low priority",
			priority: domain.TicketPriorityLow, isTechnical: true,
			want: domain.ResponseStandardAcknowledgment,
		},
		{
			name:     "neither flag defaults to standard",
			priority: domain.TicketPriorityMedium,
			want:     domain.ResponseStandardAcknowledgment,
		},
		{
			name: "missing priority behaves as medium",
			want: domain.ResponseStandardAcknowledgment,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolution := response.Resolve(tt.priority, tt.isFunctional, tt.isTechnical)
			assert.Equal(t, tt.want, resolution.Type)
			assert.NotEmpty(t, resolution.Reasoning)
		})
	}
}

func TestResolveReasoningNamesRule(t *testing.T) {
	urgent := response.Resolve(domain.TicketPriorityUrgent, false, true)
	assert.Equal(t, "Priority is Urgent, requires urgent response", urgent.Reasoning)

	functional := response.Resolve(domain.TicketPriorityLow, true, false)
	assert.Equal(t, "Functional issue detected, clarification needed", functional.Reasoning)

	technical := response.Resolve(domain.TicketPriorityMedium, false, true)
	assert.Equal(t, "Technical non-urgent issue, standard acknowledgment", technical.Reasoning)

	standard := response.Resolve(domain.TicketPriorityMedium, false, false)
	assert.Equal(t, "Standard processing", standard.Reasoning)
}

func TestResolveTicketMissingFields(t *testing.T) {
	resolution := response.ResolveTicket(&domain.Ticket{})
	assert.Equal(t, domain.ResponseStandardAcknowledgment, resolution.Type)
}
