package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	"github.com/karizma-conseil/helpdesk-agent/internal/ingest"
)

func newNormalizer() *ingest.Normalizer {
	return ingest.NewNormalizer(ingest.NewClassifier(ingest.DefaultKeywordSets()))
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "html stripped", in: "<p>Hello <b>World</b></p>", want: "Hello World"},
		{name: "empty", in: "", want: ""},
		{name: "no markup", in: "plain text", want: "plain text"},
		{name: "whitespace trimmed", in: "  <div> padded </div>  ", want: "padded"},
		{name: "repeated tags", in: "<a><b><c>x</c></b></a>", want: "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ingest.CleanDescription(tt.in))
		})
	}
}

func TestCleanTeamName(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Team
	}{
		{in: "{'en_US': 'Integration 1', 'fr_FR': 'Intégration 1'}", want: domain.TeamIntegration1},
		{in: "Intégration 1", want: domain.TeamIntegration1},
		{in: "Integration 2", want: domain.TeamIntegration2},
		{in: "Intégration 2", want: domain.TeamIntegration2},
		{in: "DevOps", want: domain.TeamDevOps},
		{in: "anything else", want: domain.TeamDevOps},
		{in: "", want: domain.TeamDevOps},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ingest.CleanTeamName(tt.in), "input %q", tt.in)
	}
}

func TestCleanStageName(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Stage
	}{
		{in: "In Progress", want: domain.StageInProgress},
		{in: "En cours", want: domain.StageInProgress},
		{in: "Closed", want: domain.StageClosed},
		{in: "Cloturé", want: domain.StageClosed},
		{in: "New", want: domain.StageNew},
		{in: "", want: domain.StageNew},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ingest.CleanStageName(tt.in), "input %q", tt.in)
	}
}

func TestNormalizePriority(t *testing.T) {
	n := newNormalizer()

	tests := []struct {
		raw  string
		want domain.TicketPriority
	}{
		{raw: "0", want: domain.TicketPriorityLow},
		{raw: "1", want: domain.TicketPriorityMedium},
		{raw: "2", want: domain.TicketPriorityHigh},
		{raw: "3", want: domain.TicketPriorityUrgent},
		{raw: "7", want: domain.TicketPriorityMedium},
		{raw: "not-a-number", want: domain.TicketPriorityMedium},
		{raw: "", want: domain.TicketPriorityMedium},
	}
	for _, tt := range tests {
		ticket := n.Normalize(ingest.RawRow{"priority": tt.raw})
		assert.Equal(t, tt.want, ticket.PriorityText, "priority %q", tt.raw)
	}
}

func TestNormalizeFullRow(t *testing.T) {
	n := newNormalizer()

	ticket := n.Normalize(ingest.RawRow{
		"ticket_id":      "30002",
		"ticket_subject": "Problème webhook API",
		"customer":       "DataFlow Inc",
		"customer_email": "tech@dataflow.com",
		"team_name":      "{'en_US': 'Integration 2', 'fr_FR': 'Intégration 2'}",
		"priority":       "3",
		"stage_name":     "{'en_US': 'New', 'fr_FR': 'Nouveau'}",
		"description":    "<p>Les webhooks ne sont plus reçus depuis ce matin.</p>",
		"create_date":    "2025-05-31 14:30:00",
	})

	assert.Equal(t, 30002, ticket.TicketID)
	assert.Equal(t, domain.TicketPriorityUrgent, ticket.PriorityText)
	assert.Equal(t, domain.TeamIntegration2, ticket.TeamClean)
	assert.Equal(t, domain.StageNew, ticket.StageClean)
	assert.Equal(t, "Les webhooks ne sont plus reçus depuis ce matin.", ticket.DescriptionClean)
	assert.True(t, ticket.IsTechnical)
	assert.False(t, ticket.IsFunctional)
	require.NotNil(t, ticket.CreateDate)
	assert.Nil(t, ticket.CloseDate)
}

func TestNormalizeEmptyRowDefaults(t *testing.T) {
	n := newNormalizer()

	ticket := n.Normalize(ingest.RawRow{})

	assert.Equal(t, domain.TicketPriorityMedium, ticket.PriorityText)
	assert.Equal(t, domain.TeamDevOps, ticket.TeamClean)
	assert.Equal(t, domain.StageNew, ticket.StageClean)
	assert.Equal(t, "", ticket.DescriptionClean)
	assert.False(t, ticket.IsFunctional)
	assert.False(t, ticket.IsTechnical)
}
