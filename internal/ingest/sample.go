package ingest

import "context"

// SampleSource serves a small built-in dataset so the service stays usable
// when no real source is reachable.
type SampleSource struct{}

// NewSampleSource constructs the built-in sample source.
func NewSampleSource() *SampleSource {
	return &SampleSource{}
}

// Name identifies the source in health and stats output.
func (s *SampleSource) Name() string {
	return "sample_data"
}

// Load always succeeds.
func (s *SampleSource) Load(ctx context.Context) (*Dataset, error) {
	tickets := []RawRow{
		{
			"ticket_id":      "30000",
			"ticket_subject": "Synchronisation e-commerce",
			"customer":       "ACME Corp",
			"customer_email": "it@acme.com",
			"team_name":      "{'en_US': 'Integration 1', 'fr_FR': 'Intégration 1'}",
			"priority":       "1",
			"create_date":    "2025-05-29 22:22:08",
			"stage_name":     "{'en_US': 'In Progress', 'fr_FR': 'En cours'}",
			"description":    "<p>Contexte: après migration, plusieurs anomalies constatées.</p>",
		},
		{
			"ticket_id":      "30001",
			"ticket_subject": "Erreurs dashboard utilisateur",
			"customer":       "TechCorp",
			"customer_email": "support@techcorp.com",
			"team_name":      "{'en_US': 'Integration 1', 'fr_FR': 'Intégration 1'}",
			"priority":       "2",
			"create_date":    "2025-05-30 10:15:00",
			"stage_name":     "{'en_US': 'New', 'fr_FR': 'Nouveau'}",
			"description":    "<p>Le dashboard principal ne s'affiche plus correctement après la mise à jour.</p>",
		},
		{
			"ticket_id":      "30002",
			"ticket_subject": "Problème webhook API",
			"customer":       "DataFlow Inc",
			"customer_email": "tech@dataflow.com",
			"team_name":      "{'en_US': 'Integration 2', 'fr_FR': 'Intégration 2'}",
			"priority":       "3",
			"create_date":    "2025-05-31 14:30:00",
			"stage_name":     "{'en_US': 'New', 'fr_FR': 'Nouveau'}",
			"description":    "<p>Les webhooks ne sont plus reçus depuis ce matin. Impact critique sur la production.</p>",
		},
	}

	interactions := []RawRow{
		{
			"message_id":     "500001",
			"date":           "2025-06-07T14:59:39.000Z",
			"author_id":      "104",
			"author_name":    "Support Agent",
			"author_company": "Karizma Conseil",
			"body":           "Ticket créé automatiquement",
			"message_type":   "notification",
			"ticket_id":      "30000",
		},
	}

	return &Dataset{Tickets: tickets, Interactions: interactions}, nil
}
