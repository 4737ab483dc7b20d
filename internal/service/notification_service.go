package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/karizma-conseil/helpdesk-agent/internal/events"
)

// NotificationService logs draft lifecycle events for supervisors following
// the drafts awaiting validation.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventDraftCreated, n.handleDraftCreated)
	n.dispatcher.Subscribe(events.EventDraftSent, n.handleDraftSent)
	n.dispatcher.Subscribe(events.EventDraftEdited, n.handleDraftEdited)
	n.dispatcher.Subscribe(events.EventDraftCancelled, n.handleDraftCancelled)
	n.dispatcher.Subscribe(events.EventDataReloaded, n.handleDataReloaded)
}

func (n *NotificationService) handleDraftCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("DraftCreated",
		zap.String("draft_id", event.DraftID),
		zap.Int("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleDraftSent(ctx context.Context, event events.Event) error {
	n.logger.Info("DraftSent",
		zap.String("draft_id", event.DraftID),
		zap.Int("ticket_id", event.TicketID))
	return nil
}

func (n *NotificationService) handleDraftEdited(ctx context.Context, event events.Event) error {
	n.logger.Info("DraftEdited",
		zap.String("draft_id", event.DraftID),
		zap.Int("ticket_id", event.TicketID))
	return nil
}

func (n *NotificationService) handleDraftCancelled(ctx context.Context, event events.Event) error {
	n.logger.Info("DraftCancelled",
		zap.String("draft_id", event.DraftID),
		zap.Int("ticket_id", event.TicketID))
	return nil
}

func (n *NotificationService) handleDataReloaded(ctx context.Context, event events.Event) error {
	n.logger.Info("DataReloaded", zap.Any("payload", event.Payload))
	return nil
}
