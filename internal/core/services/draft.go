package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
)

// Ensure DraftService implements the interface.
var _ driving.DraftService = (*DraftService)(nil)

// DraftService manages saved answer drafts.
type DraftService struct {
	store driven.DraftStore

	// now is replaced in tests.
	now func() time.Time
}

// NewDraftService creates a new draft service.
// The store parameter is optional (can be nil); every call then returns
// domain.ErrNotImplemented.
func NewDraftService(store driven.DraftStore) *DraftService {
	return &DraftService{store: store, now: time.Now}
}

// Save stores text as a new draft with a fresh ID.
func (s *DraftService) Save(ctx context.Context, text string) (*domain.Draft, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: draft text is empty", domain.ErrInvalidInput)
	}

	draft := &domain.Draft{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

// Get retrieves a draft by ID.
func (s *DraftService) Get(ctx context.Context, id string) (*domain.Draft, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// List returns all drafts, newest first.
func (s *DraftService) List(ctx context.Context) ([]domain.Draft, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Delete removes a draft.
func (s *DraftService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.store.Delete(ctx, id)
}
