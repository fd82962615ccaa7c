// Package extract turns classified notification bodies into amount,
// direction, and counterparty fields using the pattern library's
// prioritized rule chains.
package extract

import (
	"strings"

	"github.com/paisawatch/paisawatch/internal/model"
	"github.com/paisawatch/paisawatch/internal/pattern"
)

// Extraction is the field set pulled out of one message body.
type Extraction struct {
	Amount       string // Currency-prefixed, or model.AmountNone
	Rule         string // Name of the amount rule that matched, "" on failure
	Counterparty string
	Direction    model.Direction
}

// Extractor evaluates the pattern library against message bodies. Immutable
// and safe for concurrent use.
type Extractor struct {
	lib *pattern.Library
}

// New returns an Extractor backed by the given pattern library.
func New(lib *pattern.Library) *Extractor {
	return &Extractor{lib: lib}
}

// Extract derives the candidate fields from a message body. bankOverride
// marks messages admitted by the bank-template classification override,
// which counts as a debit signal.
//
// Direction is decided before amount extraction because the debit branch
// unlocks the "sent Rs" amount rules. When both keyword families appear in
// one body the debit reading wins; that tie-break matches live bank
// templates, where "credited" shows up in balance trailers of debit alerts.
func (e *Extractor) Extract(body string, bankOverride bool) Extraction {
	lower := strings.ToLower(body)

	debit := bankOverride ||
		strings.Contains(lower, "debited") ||
		strings.Contains(lower, "debit") ||
		strings.Contains(lower, "sent")

	direction := model.DirectionIncome
	if debit || !containsAny(lower, "credited", "credit") {
		direction = model.DirectionExpense
	}

	ext := Extraction{Direction: direction, Amount: model.AmountNone}

	match, ok := e.lib.FirstAmount(body, debit)
	if !ok {
		return ext
	}
	ext.Rule = match.RuleName

	value := e.disambiguate(body, match.Value)
	if value == "" {
		ext.Rule = ""
		return ext
	}
	ext.Amount = model.CurrencyPrefix + value

	ext.Counterparty = e.counterparty(body, direction)
	return ext
}

// counterparty applies the direction's name rules and cleans the capture:
// any trailing account fragment is dropped on the debit side, then
// surrounding whitespace and trailing punctuation are trimmed.
func (e *Extractor) counterparty(body string, direction model.Direction) string {
	raw := e.lib.Counterparty(body, direction)
	if raw == "" {
		return ""
	}
	if direction == model.DirectionExpense {
		raw = accountSuffix.ReplaceAllString(raw, "")
	}
	raw = strings.TrimSpace(raw)
	return strings.TrimRight(raw, ".,")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
