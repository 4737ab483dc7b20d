package genai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/karizma-conseil/helpdesk-agent/internal/config"
	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
)

const systemInstruction = "Tu es un assistant de support client professionnel. Génère des réponses empathiques et professionnelles en français."

// chatClient is the slice of the OpenAI API the generator uses, kept narrow
// so tests can stub the provider.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGenerator calls the chat-completion API with a bounded time budget.
// Every failure path degrades to FallbackContent.
type OpenAIGenerator struct {
	client chatClient
	cfg    config.GeneratorConfig
	logger *zap.Logger
}

// NewOpenAIGenerator constructs the provider-backed generator.
func NewOpenAIGenerator(cfg config.GeneratorConfig, logger *zap.Logger) *OpenAIGenerator {
	var client chatClient
	if cfg.Configured() {
		client = openai.NewClient(cfg.APIKey)
	}
	return &OpenAIGenerator{client: client, cfg: cfg, logger: logger}
}

// Generate produces the contextual paragraph for a ticket, falling back to
// the fixed content on any provider failure, including timeout.
func (g *OpenAIGenerator) Generate(ctx context.Context, ticket *domain.Ticket, responseType domain.ResponseType) string {
	if g.client == nil {
		g.logger.Warn("content provider not configured, using fallback content")
		return FallbackContent(responseType)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout())
	defer cancel()

	resp, err := g.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(ticket, responseType)},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		g.logger.Error("content generation failed", zap.Error(err))
		return FallbackContent(responseType)
	}
	if len(resp.Choices) == 0 {
		g.logger.Error("content generation returned no choices")
		return FallbackContent(responseType)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return FallbackContent(responseType)
	}
	return content
}

// Configured reports whether a provider client is wired.
func (g *OpenAIGenerator) Configured() bool {
	return g.client != nil
}

func buildPrompt(ticket *domain.Ticket, responseType domain.ResponseType) string {
	return fmt.Sprintf(`Contexte: Je dois répondre à un ticket de support client.

Détails du ticket:
- Client: %s
- Sujet: %s
- Priorité: %s
- Description: %s
- Équipe: %s

Type de réponse: %s

Génère un paragraphe professionnel et empathique de 2-3 phrases qui sera inséré dans un email de réponse.
Le paragraphe doit être personnalisé selon le problème du client et montrer que nous comprenons leur situation.
Ne commence pas par "Nous comprenons" mais sois créatif et professionnel.`,
		ticket.Customer,
		ticket.TicketSubject,
		ticket.PriorityText,
		ticket.DescriptionClean,
		ticket.TeamClean,
		responseType,
	)
}
