// Package queue holds the ordered, in-memory collection of candidate
// transactions awaiting user review.
package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/paisawatch/paisawatch/internal/lifecycle"
	"github.com/paisawatch/paisawatch/internal/model"
	"github.com/paisawatch/paisawatch/internal/service"
)

// Queue is the mutable review queue. All operations are applied atomically
// under a single mutex so accept/reject/update preserve the one-of
// {pending, processed, deleted} partition across callers.
type Queue struct {
	tracker *lifecycle.Tracker
	ledger  service.Ledger
	items   []model.CandidateTransaction
	mu      sync.Mutex
}

// New creates an empty queue. ledger may be nil when accepted candidates
// need no export (tests, dry runs).
func New(tracker *lifecycle.Tracker, ledger service.Ledger) *Queue {
	return &Queue{tracker: tracker, ledger: ledger}
}

// Append adds a scanned candidate to the back of the queue, assigning the
// next sequential display ID, and returns the stored candidate. Candidates
// without a usable amount are dropped, never surfaced.
func (q *Queue) Append(candidate model.CandidateTransaction) (model.CandidateTransaction, bool) {
	if !candidate.HasAmount() {
		return model.CandidateTransaction{}, false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	candidate.DisplayID = q.nextDisplayID()
	q.items = append(q.items, candidate)
	return candidate, true
}

// Items returns a snapshot of the pending candidates in display order.
func (q *Queue) Items() []model.CandidateTransaction {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]model.CandidateTransaction, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of pending candidates.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Update replaces the category and amount text of the matching candidate.
// Direction and counterparty are preserved. Reports whether a candidate
// with that display ID was found; an unknown ID is not an error, the entry
// was simply already resolved.
func (q *Queue) Update(displayID int, category, amount string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.items {
		if q.items[i].DisplayID == displayID {
			q.items[i].Category = category
			q.items[i].Amount = amount
			return true
		}
	}
	return false
}

// Accept removes the candidate, exports it to the ledger, and marks its
// source ID processed. Returns false when the display ID is unknown. A
// ledger failure leaves the candidate pending so the user can retry.
func (q *Queue) Accept(ctx context.Context, displayID int) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.index(displayID)
	if i < 0 {
		return false, nil
	}
	candidate := q.items[i]

	if q.ledger != nil {
		if err := q.ledger.Record(ctx, candidate); err != nil {
			return false, fmt.Errorf("failed to export candidate %d to ledger: %w", displayID, err)
		}
	}

	q.items = append(q.items[:i], q.items[i+1:]...)
	if err := q.tracker.MarkProcessed(ctx, candidate.SourceID); err != nil {
		return true, err
	}
	return true, nil
}

// Reject removes the candidate and marks its source ID deleted. Returns
// false when the display ID is unknown.
func (q *Queue) Reject(ctx context.Context, displayID int) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.index(displayID)
	if i < 0 {
		return false, nil
	}
	candidate := q.items[i]

	q.items = append(q.items[:i], q.items[i+1:]...)
	if err := q.tracker.MarkDeleted(ctx, candidate.SourceID); err != nil {
		return true, err
	}
	return true, nil
}

// AddManual inserts a user-created candidate at the front of the queue with
// a synthetic source ID and a display ID one past the current maximum.
func (q *Queue) AddManual(title, amount, category string, direction model.Direction) (model.CandidateTransaction, error) {
	if amount == "" || amount == model.AmountNone {
		return model.CandidateTransaction{}, fmt.Errorf("manual entry requires an amount")
	}
	if category == "" {
		category = model.DefaultCategory
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	now := time.Now()
	candidate := model.CandidateTransaction{
		DisplayID: q.nextDisplayID(),
		SourceID:  model.NewManualSourceID(now),
		Title:     title,
		Timestamp: now,
		Category:  category,
		Amount:    amount,
		Direction: direction,
	}
	q.items = append([]model.CandidateTransaction{candidate}, q.items...)
	return candidate, nil
}

// index returns the position of the candidate with displayID, or -1.
// Callers must hold the mutex.
func (q *Queue) index(displayID int) int {
	for i := range q.items {
		if q.items[i].DisplayID == displayID {
			return i
		}
	}
	return -1
}

// nextDisplayID is one past the current maximum, 0 for an empty queue.
// Callers must hold the mutex.
func (q *Queue) nextDisplayID() int {
	next := 0
	for i := range q.items {
		if q.items[i].DisplayID >= next {
			next = q.items[i].DisplayID + 1
		}
	}
	return next
}
