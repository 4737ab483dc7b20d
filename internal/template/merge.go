package template

import (
	"strconv"
	"strings"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
)

// Merge substitutes ticket fields and generated prose into the template.
// Absent ticket fields substitute as empty strings so the merge never blocks.
func Merge(ticket *domain.Ticket, tmpl EmailTemplate, generated string) domain.Email {
	ticketID := ""
	if ticket.TicketID != 0 {
		ticketID = strconv.Itoa(ticket.TicketID)
	}

	replacer := strings.NewReplacer(
		"{ticket_id}", ticketID,
		"{customer_name}", ticket.Customer,
		"{issue}", ticket.TicketSubject,
		"{team}", string(ticket.TeamClean),
		"{gpt_content}", generated,
	)

	return domain.Email{
		To:       ticket.CustomerEmail,
		Subject:  replacer.Replace(tmpl.Subject),
		Body:     replacer.Replace(tmpl.Body),
		TicketID: ticket.TicketID,
	}
}
