// Package lifecycle tracks which message IDs have been resolved so a
// message is never re-surfaced after the user accepts or rejects it.
package lifecycle

import (
	"context"
	"fmt"
	"sync"

	"github.com/paisawatch/paisawatch/internal/service"
)

// Tracker holds the processed and deleted source ID sets. Insertions are
// idempotent and never pruned. The tracker itself does not forbid an ID
// appearing in both sets; the candidate queue guarantees each candidate is
// removed exactly once, which is what keeps the sets disjoint in practice.
type Tracker struct {
	store     service.LifecycleStore
	processed map[string]struct{}
	deleted   map[string]struct{}
	mu        sync.Mutex
}

// New creates a tracker. store may be nil, in which case resolution state
// lives only for the process lifetime.
func New(store service.LifecycleStore) *Tracker {
	return &Tracker{
		store:     store,
		processed: make(map[string]struct{}),
		deleted:   make(map[string]struct{}),
	}
}

// Load hydrates the in-memory sets from the persistence boundary. A no-op
// without a store.
func (t *Tracker) Load(ctx context.Context) error {
	if t.store == nil {
		return nil
	}

	processed, deleted, err := t.store.LoadResolved(ctx)
	if err != nil {
		return fmt.Errorf("failed to load resolved message IDs: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range processed {
		t.processed[id] = struct{}{}
	}
	for _, id := range deleted {
		t.deleted[id] = struct{}{}
	}
	return nil
}

// IsEligible reports whether a source ID has not yet been resolved.
func (t *Tracker) IsEligible(sourceID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, processed := t.processed[sourceID]
	_, deleted := t.deleted[sourceID]
	return !processed && !deleted
}

// MarkProcessed records that the candidate for sourceID was accepted.
func (t *Tracker) MarkProcessed(ctx context.Context, sourceID string) error {
	t.mu.Lock()
	t.processed[sourceID] = struct{}{}
	t.mu.Unlock()

	if t.store == nil {
		return nil
	}
	if err := t.store.SaveProcessed(ctx, sourceID); err != nil {
		return fmt.Errorf("failed to persist processed ID %s: %w", sourceID, err)
	}
	return nil
}

// MarkDeleted records that the candidate for sourceID was rejected.
func (t *Tracker) MarkDeleted(ctx context.Context, sourceID string) error {
	t.mu.Lock()
	t.deleted[sourceID] = struct{}{}
	t.mu.Unlock()

	if t.store == nil {
		return nil
	}
	if err := t.store.SaveDeleted(ctx, sourceID); err != nil {
		return fmt.Errorf("failed to persist deleted ID %s: %w", sourceID, err)
	}
	return nil
}
