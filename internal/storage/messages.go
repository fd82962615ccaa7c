package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paisawatch/paisawatch/internal/model"
	"github.com/paisawatch/paisawatch/internal/service"
)

// Query returns up to limit messages in the requested timestamp order,
// implementing service.MessageStore.
func (s *SQLiteStore) Query(ctx context.Context, limit int, order service.SortOrder) ([]model.RawMessage, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	direction := "DESC"
	if order == service.OrderOldestFirst {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT source_id, COALESCE(sender, ''), body, timestamp
		FROM messages
		ORDER BY timestamp %s
		LIMIT ?`, direction)

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []model.RawMessage
	for rows.Next() {
		var msg model.RawMessage
		if err := rows.Scan(&msg.SourceID, &msg.Sender, &msg.Body, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

// SaveMessages upserts imported messages by source ID. Re-importing the
// same export is harmless.
func (s *SQLiteStore) SaveMessages(ctx context.Context, messages []model.RawMessage) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO messages (source_id, sender, body, timestamp)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(source_id) DO UPDATE SET
			sender = excluded.sender,
			body = excluded.body,
			timestamp = excluded.timestamp`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, msg := range messages {
		if msg.SourceID == "" {
			return fmt.Errorf("message with empty source ID")
		}
		var sender sql.NullString
		if msg.Sender != "" {
			sender = sql.NullString{String: msg.Sender, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, msg.SourceID, sender, msg.Body, msg.Timestamp); err != nil {
			return fmt.Errorf("failed to save message %s: %w", msg.SourceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit messages: %w", err)
	}
	return nil
}

// CountMessages returns the number of stored messages.
func (s *SQLiteStore) CountMessages(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM messages").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
