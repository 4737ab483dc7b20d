package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/karizma-conseil/helpdesk-agent/internal/domain"
	apperrors "github.com/karizma-conseil/helpdesk-agent/pkg/util/errorutil"
)

// EmailModifications carries the editable draft fields. Nil fields are left
// untouched; there is no way to edit anything outside the email record.
type EmailModifications struct {
	To      *string `json:"to"`
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}

// DraftStore owns every draft for the process lifetime. One lock serializes
// create/get/transition so concurrent actions on the same draft cannot lose
// updates.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]*domain.Draft
	now    func() time.Time
}

// NewDraftStore constructs an empty store.
func NewDraftStore() *DraftStore {
	return &DraftStore{
		drafts: make(map[string]*domain.Draft),
		now:    time.Now,
	}
}

// Create allocates a new draft for the email. Always succeeds.
func (s *DraftStore) Create(email domain.Email, ticketID int) *domain.Draft {
	draft := &domain.Draft{
		ID:        fmt.Sprintf("draft_%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:8]),
		TicketID:  ticketID,
		Email:     email,
		Status:    domain.DraftStatusDraft,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.drafts[draft.ID] = draft
	s.mu.Unlock()
	return copyDraft(draft)
}

// Get returns the draft or a NotFound error.
func (s *DraftStore) Get(draftID string) (*domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, apperrors.NewNotFound("draft", map[string]any{"draft_id": draftID})
	}
	return copyDraft(draft), nil
}

// Send delivers the draft's email through deliver and flips the status to
// sent, all under the store lock. Two concurrent sends for the same draft
// cannot both reach the transport: the loser observes the terminal status and
// gets a conflict without deliver ever running. A delivery failure leaves the
// draft untouched and editable.
func (s *DraftStore) Send(draftID string, deliver func(domain.Email) error) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, apperrors.NewNotFound("draft", map[string]any{"draft_id": draftID})
	}
	if draft.Status.Terminal() {
		return nil, apperrors.NewConflict(
			fmt.Sprintf("draft already %s", draft.Status),
			map[string]any{"draft_id": draftID, "status": draft.Status},
		)
	}

	if deliver != nil {
		if err := deliver(draft.Email); err != nil {
			return nil, err
		}
	}

	now := s.now()
	draft.Status = domain.DraftStatusSent
	draft.SentAt = &now
	return copyDraft(draft), nil
}

// Transition applies a lifecycle action. Drafts in a terminal state reject
// every further action. Sending goes through Send so the status check and
// the delivery stay atomic; Transition only flips the status.
func (s *DraftStore) Transition(draftID string, action domain.DraftAction, mods *EmailModifications) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, apperrors.NewNotFound("draft", map[string]any{"draft_id": draftID})
	}
	if draft.Status.Terminal() {
		return nil, apperrors.NewConflict(
			fmt.Sprintf("draft already %s", draft.Status),
			map[string]any{"draft_id": draftID, "status": draft.Status},
		)
	}

	now := s.now()
	switch action {
	case domain.DraftActionSend:
		draft.Status = domain.DraftStatusSent
		draft.SentAt = &now
	case domain.DraftActionEdit:
		if mods != nil {
			if mods.To != nil {
				draft.Email.To = *mods.To
			}
			if mods.Subject != nil {
				draft.Email.Subject = *mods.Subject
			}
			if mods.Body != nil {
				draft.Email.Body = *mods.Body
			}
		}
		draft.ModifiedAt = &now
	case domain.DraftActionCancel:
		draft.Status = domain.DraftStatusCancelled
		draft.CancelledAt = &now
	default:
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("unknown action %q", action),
			map[string]any{"draft_id": draftID},
		)
	}

	return copyDraft(draft), nil
}

// Count returns the number of drafts held.
func (s *DraftStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}

func copyDraft(draft *domain.Draft) *domain.Draft {
	copied := *draft
	return &copied
}
