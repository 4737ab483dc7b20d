package domain

// ResponseType enumerates the fixed set of reply strategies.
type ResponseType string

const (
	ResponseUrgentAcknowledgment   ResponseType = "urgent_acknowledgment"
	ResponseClarificationRequest   ResponseType = "clarification_request"
	ResponseStandardAcknowledgment ResponseType = "standard_acknowledgment"
)

// ResponseTypes lists every strategy the resolver can produce, in registry order.
func ResponseTypes() []ResponseType {
	return []ResponseType{
		ResponseUrgentAcknowledgment,
		ResponseClarificationRequest,
		ResponseStandardAcknowledgment,
	}
}
