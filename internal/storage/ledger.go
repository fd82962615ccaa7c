package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/paisawatch/paisawatch/internal/model"
)

// Record finalizes an accepted candidate into the ledger, implementing
// service.Ledger. The core hands over a currency-prefixed amount string;
// parsing it into a signed decimal happens here, with the sign taken from
// the candidate's direction.
func (s *SQLiteStore) Record(ctx context.Context, candidate model.CandidateTransaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	amount, err := parseAmount(candidate.Amount)
	if err != nil {
		return fmt.Errorf("failed to parse amount for candidate %s: %w", candidate.SourceID, err)
	}
	if candidate.Direction == model.DirectionExpense {
		amount = amount.Neg()
	}

	title := candidate.Title
	if title == "" {
		title = model.DefaultTitle
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ledger (title, amount, category, timestamp)
		VALUES (?, ?, ?, ?)`,
		title, amount.String(), candidate.Category, candidate.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to record ledger entry: %w", err)
	}
	return nil
}

// List returns all ledger entries, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]model.LedgerEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, amount, category, timestamp
		FROM ledger
		ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.LedgerEntry
	for rows.Next() {
		var entry model.LedgerEntry
		var amount string
		if err := rows.Scan(&entry.ID, &entry.Title, &amount, &entry.Category, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		if entry.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("corrupt amount in ledger entry %d: %w", entry.ID, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger: %w", err)
	}

	return entries, nil
}

// parseAmount strips the currency prefix and parses the numeric text. The
// sentinel never reaches the ledger because the queue refuses to hold it,
// so any parse failure here is a genuinely malformed user edit.
func parseAmount(formatted string) (decimal.Decimal, error) {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(formatted), model.CurrencyPrefix))
	if text == "" || formatted == model.AmountNone {
		return decimal.Zero, fmt.Errorf("no amount to parse")
	}
	return decimal.NewFromString(text)
}
