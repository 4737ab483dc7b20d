package genai

import (
	"context"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
)

// Generator produces the personalized paragraph inserted into a response
// email. It is the only nondeterministic component, so it is injected as an
// interface everywhere.
//
// Generate never fails and never returns empty text: any provider problem
// falls back to a fixed paragraph for the response type.
type Generator interface {
	Generate(ctx context.Context, ticket *domain.Ticket, responseType domain.ResponseType) string
	Configured() bool
}

// FallbackContent returns the fixed paragraph for a response type, with a
// generic paragraph for anything unrecognized.
func FallbackContent(responseType domain.ResponseType) string {
	switch responseType {
	case domain.ResponseUrgentAcknowledgment:
		return "Cette situation requiert notre attention immédiate et nous mobilisons dès maintenant toutes nos ressources pour vous apporter une solution rapide. Notre équipe technique spécialisée va prendre contact avec vous dans les plus brefs délais."
	case domain.ResponseClarificationRequest:
		return "Afin de vous proposer la solution la plus adaptée à vos besoins, nous souhaiterions obtenir quelques informations complémentaires concernant votre environnement et les circonstances de ce problème. Un membre de notre équipe va vous contacter prochainement."
	case domain.ResponseStandardAcknowledgment:
		return "Nous avons assigné votre demande à notre équipe technique qui possède l'expertise nécessaire pour résoudre ce type de problématique. Nous vous tiendrons informé régulièrement de l'avancement de la résolution."
	default:
		return "Nous prenons en charge votre demande avec toute l'attention qu'elle mérite et vous tiendrons informé de son évolution."
	}
}

// StaticGenerator always answers with fallback content. Used when no
// provider is configured and as the test double.
type StaticGenerator struct{}

// NewStaticGenerator constructs the provider-less generator.
func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

// Generate returns the fixed paragraph for the response type.
func (g *StaticGenerator) Generate(_ context.Context, _ *domain.Ticket, responseType domain.ResponseType) string {
	return FallbackContent(responseType)
}

// Configured reports false; static content needs no provider.
func (g *StaticGenerator) Configured() bool {
	return false
}
