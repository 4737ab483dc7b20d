package template

import (
	"fmt"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	apperrors "github.com/karizma-conseil/helpdesk-agent/pkg/util/errorutil"
)

// EmailTemplate pairs a subject and body template. Both may reference the
// placeholders {ticket_id}, {customer_name}, {issue}, {team} and {gpt_content}.
type EmailTemplate struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Registry is the static mapping of response types to email templates. It
// covers the resolver's full output set by construction.
type Registry struct {
	templates map[domain.ResponseType]EmailTemplate
}

// NewRegistry builds the registry with the three supported response types.
func NewRegistry() *Registry {
	return &Registry{
		templates: map[domain.ResponseType]EmailTemplate{
			domain.ResponseUrgentAcknowledgment: {
				Subject: "URGENT - Accusé de réception - Ticket #{ticket_id}",
				Body: `Bonjour {customer_name},

Nous avons bien reçu votre demande URGENTE concernant : {issue}

Notre équipe {team} prend immédiatement en charge votre demande avec la plus haute priorité.

{gpt_content}

Nous vous tiendrons informé de l'avancement dans les plus brefs délais.

Cordialement,
L'équipe Support Karizma

Référence: #{ticket_id}`,
			},
			domain.ResponseClarificationRequest: {
				Subject: "Demande de clarification - Ticket #{ticket_id}",
				Body: `Bonjour {customer_name},

Nous avons bien reçu votre demande concernant : {issue}

Notre équipe {team} étudie votre demande fonctionnelle.

{gpt_content}

N'hésitez pas à nous contacter pour toute information complémentaire.

Cordialement,
L'équipe Support Karizma

Référence: #{ticket_id}`,
			},
			domain.ResponseStandardAcknowledgment: {
				Subject: "Accusé de réception - Ticket #{ticket_id}",
				Body: `Bonjour {customer_name},

Nous avons bien reçu votre demande concernant : {issue}

Notre équipe {team} prend en charge votre demande technique.

{gpt_content}

Nous vous tiendrons informé de l'avancement.

Cordialement,
L'équipe Support Karizma

Référence: #{ticket_id}`,
			},
		},
	}
}

// Get looks up the template for a user-supplied response type.
func (r *Registry) Get(responseType domain.ResponseType) (EmailTemplate, error) {
	template, ok := r.templates[responseType]
	if !ok {
		return EmailTemplate{}, apperrors.NewNotFound("template", map[string]any{"response_type": responseType})
	}
	return template, nil
}

// MustGet looks up a template the resolver produced. A miss means the
// resolver and registry have drifted out of sync, which is a programming
// fault, not a user error.
func (r *Registry) MustGet(responseType domain.ResponseType) (EmailTemplate, error) {
	template, ok := r.templates[responseType]
	if !ok {
		return EmailTemplate{}, apperrors.NewInternalError(
			fmt.Errorf("resolver produced response type %q with no registered template", responseType))
	}
	return template, nil
}

// All returns every registered template keyed by response type.
func (r *Registry) All() map[domain.ResponseType]EmailTemplate {
	all := make(map[domain.ResponseType]EmailTemplate, len(r.templates))
	for responseType, template := range r.templates {
		all[responseType] = template
	}
	return all
}
