package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Direction indicates whether money left or entered the account.
type Direction string

// Direction constants.
const (
	DirectionExpense Direction = "expense"
	DirectionIncome  Direction = "income"
)

// Candidate field defaults.
const (
	// AmountNone is the sentinel meaning no amount could be extracted.
	// A candidate carrying it must never reach the review queue.
	AmountNone = "no amount"

	// DefaultTitle labels ingested candidates until the user edits them.
	DefaultTitle = "Bank transaction"

	// DefaultCategory is the placeholder until the user categorizes.
	DefaultCategory = "Uncategorized"

	// ExcerptLimit bounds the body prefix kept for review context.
	ExcerptLimit = 80

	// CurrencyPrefix is prepended to extracted numeric amounts.
	CurrencyPrefix = "₹"
)

// CandidateTransaction is an unconfirmed transaction awaiting user review.
type CandidateTransaction struct {
	Timestamp    time.Time
	SourceID     string // RawMessage.SourceID, or a synthetic manual-entry marker
	Title        string
	Excerpt      string // Bounded body prefix; empty for manual entries
	Category     string
	Amount       string // Currency-prefixed, e.g. "₹500.00", or AmountNone
	Counterparty string // Extracted payee/payer name; empty when unknown
	Direction    Direction
	DisplayID    int // Unique only among currently-pending candidates
}

// HasAmount reports whether a usable amount was extracted.
func (c *CandidateTransaction) HasAmount() bool {
	return c.Amount != "" && c.Amount != AmountNone
}

// Excerpt returns a review-context prefix of a message body, bounded to
// ExcerptLimit characters on a rune boundary.
func Excerpt(body string) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= ExcerptLimit {
		return body
	}
	return string(runes[:ExcerptLimit])
}

// NewManualSourceID generates a synthetic source ID for a manually created
// candidate. Manual IDs never collide with message-store IDs.
func NewManualSourceID(at time.Time) string {
	return fmt.Sprintf("manual-%d-%s", at.Unix(), uuid.NewString()[:8])
}
