package store

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	"github.com/karizma-conseil/helpdesk-agent/internal/ingest"
	apperrors "github.com/karizma-conseil/helpdesk-agent/pkg/util/errorutil"
)

// TicketFilter narrows listing results. Empty fields match everything.
type TicketFilter struct {
	Priority string
	Team     string
	Stage    string
	Limit    int
}

// Stats summarizes the loaded dataset.
type Stats struct {
	TotalTickets        int            `json:"total_tickets"`
	PriorityCounts      map[string]int `json:"priority_distribution"`
	TeamCounts          map[string]int `json:"team_distribution"`
	StageCounts         map[string]int `json:"stage_distribution"`
	FunctionalIssues    int            `json:"functional_issues"`
	TechnicalIssues     int            `json:"technical_issues"`
	UrgentTickets       int            `json:"urgent_tickets"`
	HighPriorityTickets int            `json:"high_priority_tickets"`
	OpenTickets         int            `json:"open_tickets"`
	ClosedTickets       int            `json:"closed_tickets"`
	DataSource          string         `json:"data_source"`
}

// DataInfo describes the currently loaded dataset for operators.
type DataInfo struct {
	DataSource      string         `json:"data_source"`
	TotalTickets    int            `json:"total_tickets"`
	Columns         []string       `json:"columns"`
	DateRange       DateRange      `json:"date_range"`
	SampleTicketIDs map[string]int `json:"sample_ticket_ids"`
	UniqueCustomers int            `json:"unique_customers"`
	UniqueTeams     []string       `json:"unique_teams"`
}

// DateRange brackets the creation dates present in the snapshot. Both ends
// are null when no ticket carries a creation date.
type DateRange struct {
	Oldest *time.Time `json:"oldest"`
	Newest *time.Time `json:"newest"`
}

// ticketColumns mirrors the serialized ticket fields in load order.
var ticketColumns = []string{
	"ticket_id", "customer", "customer_email", "ticket_subject",
	"team_name", "team_clean", "priority", "priority_text",
	"stage_name", "stage_clean", "description", "description_clean",
	"is_functional", "is_technical", "create_date", "close_date",
}

// snapshot is one immutable load of the dataset; Reload swaps the whole thing.
type snapshot struct {
	tickets      []domain.Ticket
	byID         map[int]*domain.Ticket
	interactions map[int][]domain.Interaction
	source       string
	loadedAt     time.Time
}

// TicketStore owns the normalized ticket catalog. Normalization and
// classification run once per load, never per request.
type TicketStore struct {
	mu         sync.RWMutex
	current    *snapshot
	loader     *ingest.Loader
	normalizer *ingest.Normalizer
	logger     *zap.Logger
}

// NewTicketStore constructs an empty store; call Reload to populate it.
func NewTicketStore(loader *ingest.Loader, normalizer *ingest.Normalizer, logger *zap.Logger) *TicketStore {
	return &TicketStore{
		current:    &snapshot{byID: map[int]*domain.Ticket{}, interactions: map[int][]domain.Interaction{}},
		loader:     loader,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Reload acquires the dataset through the source fallback chain and swaps in
// a freshly normalized snapshot.
func (s *TicketStore) Reload(ctx context.Context) error {
	dataset, source, err := s.loader.Load(ctx)
	if err != nil {
		return err
	}

	next := &snapshot{
		tickets:      make([]domain.Ticket, 0, len(dataset.Tickets)),
		byID:         make(map[int]*domain.Ticket, len(dataset.Tickets)),
		interactions: make(map[int][]domain.Interaction),
		source:       source,
		loadedAt:     time.Now(),
	}

	for _, row := range dataset.Tickets {
		ticket := s.normalizer.Normalize(row)
		next.tickets = append(next.tickets, ticket)
	}
	for i := range next.tickets {
		next.byID[next.tickets[i].TicketID] = &next.tickets[i]
	}
	for _, row := range dataset.Interactions {
		interaction := normalizeInteraction(row)
		next.interactions[interaction.TicketID] = append(next.interactions[interaction.TicketID], interaction)
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	s.logger.Info("ticket data loaded",
		zap.String("source", source),
		zap.Int("tickets", len(next.tickets)))
	return nil
}

// GetByID returns the ticket or a NotFound error.
func (s *TicketStore) GetByID(ticketID int) (*domain.Ticket, error) {
	snap := s.snapshot()
	ticket, ok := snap.byID[ticketID]
	if !ok {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}
	return ticket, nil
}

// List returns tickets matching the filter, capped at filter.Limit.
func (s *TicketStore) List(filter TicketFilter) []domain.Ticket {
	snap := s.snapshot()
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	result := make([]domain.Ticket, 0, limit)
	for _, ticket := range snap.tickets {
		if filter.Priority != "" && !strings.EqualFold(string(ticket.PriorityText), filter.Priority) {
			continue
		}
		if filter.Team != "" && !strings.EqualFold(string(ticket.TeamClean), filter.Team) {
			continue
		}
		if filter.Stage != "" && !strings.EqualFold(string(ticket.StageClean), filter.Stage) {
			continue
		}
		result = append(result, ticket)
		if len(result) >= limit {
			break
		}
	}
	return result
}

// Interactions returns the thread messages loaded for a ticket.
func (s *TicketStore) Interactions(ticketID int) []domain.Interaction {
	snap := s.snapshot()
	return snap.interactions[ticketID]
}

// Count returns the number of loaded tickets.
func (s *TicketStore) Count() int {
	return len(s.snapshot().tickets)
}

// Source names the data source that served the current snapshot.
func (s *TicketStore) Source() string {
	return s.snapshot().source
}

// Stats computes dataset distributions over the current snapshot.
func (s *TicketStore) Stats() Stats {
	snap := s.snapshot()
	stats := Stats{
		TotalTickets:   len(snap.tickets),
		PriorityCounts: map[string]int{},
		TeamCounts:     map[string]int{},
		StageCounts:    map[string]int{},
		DataSource:     snap.source,
	}
	for _, ticket := range snap.tickets {
		stats.PriorityCounts[string(ticket.PriorityText)]++
		stats.TeamCounts[string(ticket.TeamClean)]++
		stats.StageCounts[string(ticket.StageClean)]++
		if ticket.IsFunctional {
			stats.FunctionalIssues++
		}
		if ticket.IsTechnical {
			stats.TechnicalIssues++
		}
		switch ticket.PriorityText {
		case domain.TicketPriorityUrgent:
			stats.UrgentTickets++
		case domain.TicketPriorityHigh:
			stats.HighPriorityTickets++
		}
		if ticket.StageClean == domain.StageClosed {
			stats.ClosedTickets++
		} else {
			stats.OpenTickets++
		}
	}
	return stats
}

// DataInfo summarizes the current snapshot: source, columns, creation-date
// range, one sample ticket per priority, and the distinct customers and teams.
func (s *TicketStore) DataInfo() DataInfo {
	snap := s.snapshot()
	info := DataInfo{
		DataSource:      snap.source,
		TotalTickets:    len(snap.tickets),
		Columns:         ticketColumns,
		SampleTicketIDs: map[string]int{},
	}

	customers := map[string]bool{}
	teams := map[string]bool{}
	for i := range snap.tickets {
		ticket := &snap.tickets[i]
		if _, ok := info.SampleTicketIDs[string(ticket.PriorityText)]; !ok {
			info.SampleTicketIDs[string(ticket.PriorityText)] = ticket.TicketID
		}
		if ticket.Customer != "" {
			customers[ticket.Customer] = true
		}
		if !teams[string(ticket.TeamClean)] {
			teams[string(ticket.TeamClean)] = true
			info.UniqueTeams = append(info.UniqueTeams, string(ticket.TeamClean))
		}
		if ticket.CreateDate == nil {
			continue
		}
		if info.DateRange.Oldest == nil || ticket.CreateDate.Before(*info.DateRange.Oldest) {
			info.DateRange.Oldest = ticket.CreateDate
		}
		if info.DateRange.Newest == nil || ticket.CreateDate.After(*info.DateRange.Newest) {
			info.DateRange.Newest = ticket.CreateDate
		}
	}
	info.UniqueCustomers = len(customers)
	return info
}

func (s *TicketStore) snapshot() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func normalizeInteraction(row ingest.RawRow) domain.Interaction {
	return domain.Interaction{
		MessageID:     atoiOrZero(row["message_id"]),
		Date:          row["date"],
		AuthorID:      atoiOrZero(row["author_id"]),
		AuthorName:    row["author_name"],
		AuthorCompany: row["author_company"],
		Body:          row["body"],
		MessageType:   row["message_type"],
		TicketID:      atoiOrZero(row["ticket_id"]),
	}
}

func atoiOrZero(raw string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return parsed
}
