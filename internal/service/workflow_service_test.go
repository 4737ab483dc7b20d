package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	"github.com/karizma-conseil/helpdesk-agent/internal/events"
	"github.com/karizma-conseil/helpdesk-agent/internal/genai"
	"github.com/karizma-conseil/helpdesk-agent/internal/ingest"
	"github.com/karizma-conseil/helpdesk-agent/internal/observability"
	"github.com/karizma-conseil/helpdesk-agent/internal/service"
	"github.com/karizma-conseil/helpdesk-agent/internal/store"
	"github.com/karizma-conseil/helpdesk-agent/internal/template"
	apperrors "github.com/karizma-conseil/helpdesk-agent/pkg/util/errorutil"
)

type fakeMailer struct {
	mu    sync.Mutex
	sent  []domain.Email
	err   error
	delay time.Duration
}

func (m *fakeMailer) Send(_ context.Context, email domain.Email) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	m.sent = append(m.sent, email)
	m.mu.Unlock()
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	return nil
}

func (m *fakeMailer) deliveries() []domain.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Email(nil), m.sent...)
}

type fixture struct {
	workflow   *service.WorkflowService
	drafts     *store.DraftStore
	mailer     *fakeMailer
	dispatcher events.Dispatcher
	received   *[]events.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	normalizer := ingest.NewNormalizer(ingest.NewClassifier(ingest.DefaultKeywordSets()))
	loader := ingest.NewLoader(logger, ingest.NewSampleSource())
	tickets := store.NewTicketStore(loader, normalizer, logger)
	require.NoError(t, tickets.Reload(context.Background()))

	drafts := store.NewDraftStore()
	mailer := &fakeMailer{}
	dispatcher := events.NewInMemoryDispatcher()

	received := &[]events.Event{}
	record := func(_ context.Context, event events.Event) error {
		*received = append(*received, event)
		return nil
	}
	dispatcher.Subscribe(events.EventDraftCreated, record)
	dispatcher.Subscribe(events.EventDraftSent, record)
	dispatcher.Subscribe(events.EventDraftCancelled, record)

	workflow := service.NewWorkflowService(service.WorkflowDependencies{
		TicketStore: tickets,
		DraftStore:  drafts,
		Registry:    template.NewRegistry(),
		Generator:   genai.NewStaticGenerator(),
		Mailer:      mailer,
		Dispatcher:  dispatcher,
		Metrics:     observability.NewMetrics(),
		Logger:      logger,
	})

	return &fixture{
		workflow:   workflow,
		drafts:     drafts,
		mailer:     mailer,
		dispatcher: dispatcher,
		received:   received,
	}
}

func TestProcessUrgentTicket(t *testing.T) {
	f := newFixture(t)

	result, err := f.workflow.Process(context.Background(), 30002)
	require.NoError(t, err)

	assert.Equal(t, domain.ResponseUrgentAcknowledgment, result.ResponseType)
	assert.Equal(t, "Priority is Urgent, requires urgent response", result.Reasoning)
	assert.Equal(t, genai.FallbackContent(domain.ResponseUrgentAcknowledgment), result.GPTContent)
	assert.Equal(t, "tech@dataflow.com", result.FinalEmail.To)
	assert.Contains(t, result.FinalEmail.Subject, "URGENT")
	assert.Contains(t, result.FinalEmail.Subject, "#30002")

	draft, err := f.drafts.Get(result.DraftID)
	require.NoError(t, err)
	assert.Equal(t, domain.DraftStatusDraft, draft.Status)
	assert.Equal(t, 30002, draft.TicketID)

	require.Len(t, *f.received, 1)
	assert.Equal(t, events.EventDraftCreated, (*f.received)[0].Type)
}

func TestProcessFunctionalTicket(t *testing.T) {
	f := newFixture(t)

	// Ticket 30001 is High priority, so urgency outranks the functional flag.
	result, err := f.workflow.Process(context.Background(), 30001)
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseUrgentAcknowledgment, result.ResponseType)
}

func TestProcessTechnicalMediumTicket(t *testing.T) {
	f := newFixture(t)

	result, err := f.workflow.Process(context.Background(), 30000)
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseStandardAcknowledgment, result.ResponseType)
	assert.Equal(t, "Technical non-urgent issue, standard acknowledgment", result.Reasoning)
}

func TestProcessUnknownTicketCreatesNoDraft(t *testing.T) {
	f := newFixture(t)

	_, err := f.workflow.Process(context.Background(), 424242)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, 0, f.drafts.Count())
	assert.Empty(t, *f.received)
}

func TestValidateDraftSend(t *testing.T) {
	f := newFixture(t)

	result, err := f.workflow.Process(context.Background(), 30002)
	require.NoError(t, err)

	draft, err := f.workflow.ValidateDraft(context.Background(), result.DraftID, domain.DraftActionSend, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.DraftStatusSent, draft.Status)
	require.NotNil(t, draft.SentAt)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "tech@dataflow.com", f.mailer.sent[0].To)
}

func TestValidateDraftSendTransportFailureKeepsDraft(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = errors.New("smtp unreachable")

	result, err := f.workflow.Process(context.Background(), 30002)
	require.NoError(t, err)

	_, err = f.workflow.ValidateDraft(context.Background(), result.DraftID, domain.DraftActionSend, nil)
	require.Error(t, err)

	draft, err := f.drafts.Get(result.DraftID)
	require.NoError(t, err)
	assert.Equal(t, domain.DraftStatusDraft, draft.Status, "failed send must leave the draft editable")
}

func TestValidateDraftEdit(t *testing.T) {
	f := newFixture(t)

	result, err := f.workflow.Process(context.Background(), 30002)
	require.NoError(t, err)

	subject := "New subject"
	draft, err := f.workflow.ValidateDraft(context.Background(), result.DraftID, domain.DraftActionEdit, &store.EmailModifications{Subject: &subject})
	require.NoError(t, err)

	assert.Equal(t, domain.DraftStatusDraft, draft.Status)
	assert.Equal(t, "New subject", draft.Email.Subject)
	assert.Equal(t, result.FinalEmail.Body, draft.Email.Body)
	assert.Equal(t, result.FinalEmail.To, draft.Email.To)
	assert.Empty(t, f.mailer.sent)
}

func TestValidateDraftCancel(t *testing.T) {
	f := newFixture(t)

	result, err := f.workflow.Process(context.Background(), 30002)
	require.NoError(t, err)

	draft, err := f.workflow.ValidateDraft(context.Background(), result.DraftID, domain.DraftActionCancel, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.DraftStatusCancelled, draft.Status)
	assert.Empty(t, f.mailer.sent)
}

func TestValidateDraftUnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := f.workflow.ValidateDraft(context.Background(), "draft_missing", domain.DraftActionSend, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Empty(t, f.mailer.sent)
}

func TestValidateDraftSendOnSentDraftDoesNotResend(t *testing.T) {
	f := newFixture(t)

	result, err := f.workflow.Process(context.Background(), 30002)
	require.NoError(t, err)

	_, err = f.workflow.ValidateDraft(context.Background(), result.DraftID, domain.DraftActionSend, nil)
	require.NoError(t, err)
	require.Len(t, f.mailer.sent, 1)

	_, err = f.workflow.ValidateDraft(context.Background(), result.DraftID, domain.DraftActionSend, nil)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
	assert.Len(t, f.mailer.sent, 1, "terminal draft must not trigger a second delivery")
}

func TestValidateDraftConcurrentSendsDeliverOnce(t *testing.T) {
	f := newFixture(t)
	f.mailer.delay = 100 * time.Millisecond

	result, err := f.workflow.Process(context.Background(), 30002)
	require.NoError(t, err)

	const senders = 2
	errs := make(chan error, senders)
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.workflow.ValidateDraft(context.Background(), result.DraftID, domain.DraftActionSend, nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, conflicts := 0, 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
		conflicts++
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, senders-1, conflicts)
	assert.Len(t, f.mailer.deliveries(), 1, "the customer must receive the email exactly once")

	draft, err := f.drafts.Get(result.DraftID)
	require.NoError(t, err)
	assert.Equal(t, domain.DraftStatusSent, draft.Status)
}
