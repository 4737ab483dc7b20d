package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	"github.com/karizma-conseil/helpdesk-agent/internal/template"
	apperrors "github.com/karizma-conseil/helpdesk-agent/pkg/util/errorutil"
)

func TestRegistryCoversResolverOutput(t *testing.T) {
	registry := template.NewRegistry()
	for _, responseType := range domain.ResponseTypes() {
		tmpl, err := registry.MustGet(responseType)
		require.NoError(t, err, "response type %s", responseType)
		assert.NotEmpty(t, tmpl.Subject)
		assert.NotEmpty(t, tmpl.Body)
		assert.Contains(t, tmpl.Body, "{gpt_content}")
	}
	assert.Len(t, registry.All(), 3)
}

func TestRegistryGetUnknownIsNotFound(t *testing.T) {
	registry := template.NewRegistry()
	_, err := registry.Get("nonexistent_type")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRegistryMustGetUnknownIsInternal(t *testing.T) {
	registry := template.NewRegistry()
	_, err := registry.MustGet("nonexistent_type")
	require.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
	assert.Equal(t, "INTERNAL_ERROR", apperrors.ToDomainError(err).Code)
}

func TestMergeSubstitutesPlaceholders(t *testing.T) {
	registry := template.NewRegistry()
	tmpl, err := registry.Get(domain.ResponseUrgentAcknowledgment)
	require.NoError(t, err)

	ticket := &domain.Ticket{
		TicketID:      30002,
		Customer:      "DataFlow Inc",
		CustomerEmail: "tech@dataflow.com",
		TicketSubject: "Problème webhook API",
		TeamClean:     domain.TeamIntegration2,
	}

	email := template.Merge(ticket, tmpl, "Paragraphe généré.")

	assert.Equal(t, "tech@dataflow.com", email.To)
	assert.Equal(t, 30002, email.TicketID)
	assert.Equal(t, "URGENT - Accusé de réception - Ticket #30002", email.Subject)
	assert.Contains(t, email.Body, "Bonjour DataFlow Inc,")
	assert.Contains(t, email.Body, "Problème webhook API")
	assert.Contains(t, email.Body, "Integration 2")
	assert.Contains(t, email.Body, "Paragraphe généré.")
	assert.NotContains(t, email.Body, "{")
}

func TestMergeToleratesMissingFields(t *testing.T) {
	registry := template.NewRegistry()
	tmpl, err := registry.Get(domain.ResponseStandardAcknowledgment)
	require.NoError(t, err)

	email := template.Merge(&domain.Ticket{}, tmpl, "contenu")

	assert.Equal(t, "", email.To)
	assert.Equal(t, "Accusé de réception - Ticket #", email.Subject)
	assert.Contains(t, email.Body, "Bonjour ,")
	assert.NotContains(t, email.Body, "{customer_name}")
}
