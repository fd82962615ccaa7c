// Package scanner orchestrates one bounded batch pass over the message
// store, turning eligible notification texts into review-queue candidates.
package scanner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paisawatch/paisawatch/internal/classify"
	"github.com/paisawatch/paisawatch/internal/extract"
	"github.com/paisawatch/paisawatch/internal/lifecycle"
	"github.com/paisawatch/paisawatch/internal/model"
	"github.com/paisawatch/paisawatch/internal/queue"
	"github.com/paisawatch/paisawatch/internal/service"
)

// Config holds configuration options for the ingestion scanner.
type Config struct {
	// BatchLimit bounds how many of the most recent messages one scan reads.
	BatchLimit int
	// OnMessage, when set, is invoked after each message is handled. Used
	// by the CLI for progress display.
	OnMessage func(done, total int)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{BatchLimit: 50}
}

// Scanner reads the most recent messages and populates a candidate queue.
type Scanner struct {
	store      service.MessageStore
	classifier *classify.Classifier
	extractor  *extract.Extractor
	tracker    *lifecycle.Tracker
	config     Config
}

// New creates a scanner with the given dependencies and the default
// configuration.
func New(store service.MessageStore, classifier *classify.Classifier, extractor *extract.Extractor, tracker *lifecycle.Tracker) *Scanner {
	return NewWithConfig(store, classifier, extractor, tracker, DefaultConfig())
}

// NewWithConfig creates a scanner with a custom configuration.
func NewWithConfig(store service.MessageStore, classifier *classify.Classifier, extractor *extract.Extractor, tracker *lifecycle.Tracker, config Config) *Scanner {
	if config.BatchLimit <= 0 {
		config.BatchLimit = DefaultConfig().BatchLimit
	}
	return &Scanner{
		store:      store,
		classifier: classifier,
		extractor:  extractor,
		tracker:    tracker,
		config:     config,
	}
}

// Scan performs one batch pass: read newest-first, skip resolved and
// non-transactional messages, extract fields, drop extraction failures, and
// append the rest to the queue in scan order. Returns the number of
// candidates added.
//
// A scan is one-shot. It does not reconcile with candidates already in the
// queue; re-scanning without resolving produces duplicate entries under
// fresh display IDs, so callers rebuild the queue per activation.
func (s *Scanner) Scan(ctx context.Context, q *queue.Queue) (int, error) {
	messages, err := s.store.Query(ctx, s.config.BatchLimit, service.OrderNewestFirst)
	if err != nil {
		return 0, fmt.Errorf("failed to query message store: %w", err)
	}

	slog.Info("Starting message scan", "messages", len(messages), "limit", s.config.BatchLimit)

	added := 0
	for i, msg := range messages {
		s.scanOne(msg, q, &added)
		if s.config.OnMessage != nil {
			s.config.OnMessage(i+1, len(messages))
		}
	}

	slog.Info("Scan complete", "messages", len(messages), "candidates", added)
	return added, nil
}

func (s *Scanner) scanOne(msg model.RawMessage, q *queue.Queue, added *int) {
	if !s.tracker.IsEligible(msg.SourceID) {
		slog.Debug("Skipping resolved message", "source_id", msg.SourceID, "stage", "lifecycle")
		return
	}

	result := s.classifier.Classify(msg)
	if !result.Transactional {
		slog.Debug("Skipping non-transactional message", "source_id", msg.SourceID, "stage", "classify")
		return
	}

	ext := s.extractor.Extract(msg.Body, result.BankOverride)
	if ext.Amount == model.AmountNone {
		slog.Debug("Dropping candidate without amount", "source_id", msg.SourceID, "stage", "extract")
		return
	}

	candidate := model.CandidateTransaction{
		SourceID:     msg.SourceID,
		Title:        model.DefaultTitle,
		Excerpt:      model.Excerpt(msg.Body),
		Timestamp:    msg.Timestamp,
		Category:     model.DefaultCategory,
		Amount:       ext.Amount,
		Direction:    ext.Direction,
		Counterparty: ext.Counterparty,
	}

	stored, ok := q.Append(candidate)
	if !ok {
		return
	}
	*added++
	slog.Debug("Candidate queued",
		"source_id", msg.SourceID,
		"stage", "queue",
		"display_id", stored.DisplayID,
		"rule", ext.Rule,
		"direction", ext.Direction)
}
