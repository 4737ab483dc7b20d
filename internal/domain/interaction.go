package domain

// Interaction is one message on a ticket thread, loaded read-only alongside tickets.
type Interaction struct {
	MessageID     int    `json:"message_id"`
	Date          string `json:"date"`
	AuthorID      int    `json:"author_id"`
	AuthorName    string `json:"author_name"`
	AuthorCompany string `json:"author_company"`
	Body          string `json:"body"`
	MessageType   string `json:"message_type"`
	TicketID      int    `json:"ticket_id"`
}
