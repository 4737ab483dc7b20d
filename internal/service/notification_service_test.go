package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/karizma-conseil/helpdesk-agent/internal/events"
	"github.com/karizma-conseil/helpdesk-agent/internal/service"
)

func TestNotificationServiceLogsDraftLifecycle(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	service.NewNotificationService(dispatcher, zap.New(core)).RegisterHandlers()

	cases := []struct {
		eventType events.EventType
		message   string
	}{
		{events.EventDraftCreated, "DraftCreated"},
		{events.EventDraftSent, "DraftSent"},
		{events.EventDraftEdited, "DraftEdited"},
		{events.EventDraftCancelled, "DraftCancelled"},
	}
	for _, tc := range cases {
		err := dispatcher.Publish(context.Background(), events.Event{
			Type:     tc.eventType,
			DraftID:  "draft_deadbeef",
			TicketID: 30002,
		})
		require.NoError(t, err)

		entries := logs.FilterMessage(tc.message).All()
		require.Len(t, entries, 1, "expected one log entry for %s", tc.eventType)
		assert.Equal(t, "draft_deadbeef", entries[0].ContextMap()["draft_id"])
	}
}
