package storage

import (
	"context"
	"fmt"
)

// LoadResolved returns the processed and deleted source ID sets,
// implementing service.LifecycleStore.
func (s *SQLiteStore) LoadResolved(ctx context.Context) (processed, deleted []string, err error) {
	if err := validateContext(ctx); err != nil {
		return nil, nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT source_id, state FROM resolved_messages")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query resolved messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, state string
		if err := rows.Scan(&id, &state); err != nil {
			return nil, nil, fmt.Errorf("failed to scan resolved message: %w", err)
		}
		switch state {
		case "processed":
			processed = append(processed, id)
		case "deleted":
			deleted = append(deleted, id)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate resolved messages: %w", err)
	}

	return processed, deleted, nil
}

// SaveProcessed durably marks a source ID as accepted. Idempotent; the
// first recorded state wins.
func (s *SQLiteStore) SaveProcessed(ctx context.Context, sourceID string) error {
	return s.saveResolved(ctx, sourceID, "processed")
}

// SaveDeleted durably marks a source ID as rejected. Idempotent; the first
// recorded state wins.
func (s *SQLiteStore) SaveDeleted(ctx context.Context, sourceID string) error {
	return s.saveResolved(ctx, sourceID, "deleted")
}

func (s *SQLiteStore) saveResolved(ctx context.Context, sourceID, state string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(sourceID, "sourceID"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resolved_messages (source_id, state)
		VALUES (?, ?)
		ON CONFLICT(source_id) DO NOTHING`,
		sourceID, state)
	if err != nil {
		return fmt.Errorf("failed to save resolved message %s: %w", sourceID, err)
	}
	return nil
}
