package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
)

// RawRow is one dataset row keyed by column name, values as raw strings.
type RawRow map[string]string

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// Normalizer converts raw rows into canonical tickets. Every rule defaults
// independently on absent or unparseable input; normalization never fails.
type Normalizer struct {
	classifier *Classifier
}

// NewNormalizer constructs a normalizer using the given classifier.
func NewNormalizer(classifier *Classifier) *Normalizer {
	return &Normalizer{classifier: classifier}
}

// Normalize builds a canonical ticket from one raw row.
func (n *Normalizer) Normalize(row RawRow) domain.Ticket {
	descriptionRaw := row["description"]
	descriptionClean := CleanDescription(descriptionRaw)

	priority := parsePriorityCode(row["priority"])

	ticket := domain.Ticket{
		TicketID:         parseIntOr(row["ticket_id"], 0),
		Customer:         row["customer"],
		CustomerEmail:    row["customer_email"],
		TicketSubject:    row["ticket_subject"],
		TeamName:         row["team_name"],
		TeamClean:        CleanTeamName(row["team_name"]),
		Priority:         priority,
		PriorityText:     PriorityText(priority),
		StageName:        row["stage_name"],
		StageClean:       CleanStageName(row["stage_name"]),
		Description:      descriptionRaw,
		DescriptionClean: descriptionClean,
		IsFunctional:     n.classifier.IsFunctional(descriptionClean),
		IsTechnical:      n.classifier.IsTechnical(descriptionClean),
		CreateDate:       parseDate(row["create_date"]),
		CloseDate:        parseDate(row["close_date"]),
	}
	return ticket
}

// CleanDescription strips HTML tags and surrounding whitespace.
func CleanDescription(description string) string {
	if description == "" {
		return ""
	}
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(description, ""))
}

// CleanTeamName extracts the canonical team from the multilingual free-text label.
func CleanTeamName(teamName string) domain.Team {
	switch {
	case strings.Contains(teamName, "Integration 1"), strings.Contains(teamName, "Intégration 1"):
		return domain.TeamIntegration1
	case strings.Contains(teamName, "Integration 2"), strings.Contains(teamName, "Intégration 2"):
		return domain.TeamIntegration2
	default:
		return domain.TeamDevOps
	}
}

// CleanStageName extracts the canonical stage from the multilingual free-text label.
func CleanStageName(stageName string) domain.Stage {
	switch {
	case strings.Contains(stageName, "In Progress"), strings.Contains(stageName, "En cours"):
		return domain.StageInProgress
	case strings.Contains(stageName, "Closed"), strings.Contains(stageName, "Cloturé"):
		return domain.StageClosed
	default:
		return domain.StageNew
	}
}

// PriorityText maps an integer priority code to its label, defaulting to Medium.
func PriorityText(code *int) domain.TicketPriority {
	if code == nil {
		return domain.TicketPriorityMedium
	}
	switch *code {
	case 0:
		return domain.TicketPriorityLow
	case 1:
		return domain.TicketPriorityMedium
	case 2:
		return domain.TicketPriorityHigh
	case 3:
		return domain.TicketPriorityUrgent
	default:
		return domain.TicketPriorityMedium
	}
}

func parsePriorityCode(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	code, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &code
}

func parseIntOr(raw string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseDate(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return &parsed
		}
	}
	return nil
}
