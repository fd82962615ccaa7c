// Package service defines the interfaces between the extraction core and
// its external collaborators.
package service

import (
	"context"

	"github.com/paisawatch/paisawatch/internal/model"
)

// SortOrder controls message store read ordering.
type SortOrder string

// Sort order constants.
const (
	OrderNewestFirst SortOrder = "desc"
	OrderOldestFirst SortOrder = "asc"
)

// MessageStore is the read-only source of timestamped notification texts.
type MessageStore interface {
	// Query returns up to limit messages in the requested order.
	Query(ctx context.Context, limit int, order SortOrder) ([]model.RawMessage, error)
}

// Ledger accepts finalized transactions when a candidate is accepted.
// Parsing the core's formatted amount string into a signed decimal is the
// ledger's responsibility, not the core's.
type Ledger interface {
	Record(ctx context.Context, candidate model.CandidateTransaction) error
	List(ctx context.Context) ([]model.LedgerEntry, error)
}

// LifecycleStore is the optional persistence boundary for resolved message
// IDs. Without one, resolution state lives only for the process lifetime.
type LifecycleStore interface {
	LoadResolved(ctx context.Context) (processed, deleted []string, err error)
	SaveProcessed(ctx context.Context, sourceID string) error
	SaveDeleted(ctx context.Context, sourceID string) error
}
