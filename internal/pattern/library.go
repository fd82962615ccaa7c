// Package pattern holds the fixed, ordered extraction rule sets for bank
// notification texts and a compiled evaluator over them.
package pattern

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/paisawatch/paisawatch/internal/model"
)

// AmountMatch is a successful amount rule evaluation.
type AmountMatch struct {
	RuleName string
	Value    string // Normalized numeric text, e.g. "500.00"
}

type compiledAmountRule struct {
	re *regexp.Regexp
	AmountRule
}

type compiledCounterpartyRule struct {
	re *regexp.Regexp
	CounterpartyRule
}

// Library is the compiled pattern library. It is immutable after
// construction and safe for concurrent use.
type Library struct {
	amountRules  []compiledAmountRule
	currencyRule *regexp.Regexp
	accountRule  *regexp.Regexp
	debitNames   []compiledCounterpartyRule
	creditNames  []compiledCounterpartyRule
}

// NewLibrary compiles the given rule sets. An invalid regex is a build-time
// defect and returns an error rather than being skipped.
func NewLibrary(amounts []AmountRule, debitNames, creditNames []CounterpartyRule) (*Library, error) {
	lib := &Library{}

	compiled := make([]compiledAmountRule, 0, len(amounts))
	for _, r := range amounts {
		re, err := regexp.Compile(r.Regex)
		if err != nil {
			return nil, fmt.Errorf("failed to compile amount rule %s: %w", r.Name, err)
		}
		compiled = append(compiled, compiledAmountRule{AmountRule: r, re: re})
	}
	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})
	lib.amountRules = compiled

	for _, set := range []struct {
		dst   *[]compiledCounterpartyRule
		rules []CounterpartyRule
	}{
		{&lib.debitNames, debitNames},
		{&lib.creditNames, creditNames},
	} {
		for _, r := range set.rules {
			re, err := regexp.Compile(r.Regex)
			if err != nil {
				return nil, fmt.Errorf("failed to compile counterparty rule %s: %w", r.Name, err)
			}
			*set.dst = append(*set.dst, compiledCounterpartyRule{CounterpartyRule: r, re: re})
		}
	}

	var err error
	if lib.currencyRule, err = regexp.Compile(`(?i)` + currency + `\s*` + number); err != nil {
		return nil, fmt.Errorf("failed to compile currency rule: %w", err)
	}
	if lib.accountRule, err = regexp.Compile(AccountNumberRegex); err != nil {
		return nil, fmt.Errorf("failed to compile account rule: %w", err)
	}

	return lib, nil
}

// NewDefaultLibrary compiles the default rule sets.
func NewDefaultLibrary() (*Library, error) {
	return NewLibrary(DefaultAmountRules(), DefaultDebitCounterpartyRules(), DefaultCreditCounterpartyRules())
}

// FirstAmount evaluates the amount chain against a body and returns the
// first match. Debit-only rules are skipped unless debitBranch is set.
func (l *Library) FirstAmount(body string, debitBranch bool) (AmountMatch, bool) {
	for _, rule := range l.amountRules {
		if rule.DebitOnly && !debitBranch {
			continue
		}
		if m := rule.re.FindStringSubmatch(body); m != nil {
			return AmountMatch{RuleName: rule.Name, Value: normalizeNumber(m[1])}, true
		}
	}
	return AmountMatch{}, false
}

// AllCurrencyAmounts returns every currency-prefixed amount in the body,
// in order of appearance. Used by the disambiguation re-scan.
func (l *Library) AllCurrencyAmounts(body string) []string {
	matches := l.currencyRule.FindAllStringSubmatch(body, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, normalizeNumber(m[1]))
	}
	return values
}

// AccountNumber returns the masked account number digits found in the body,
// or "" when no account fragment is present.
func (l *Library) AccountNumber(body string) string {
	if m := l.accountRule.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return ""
}

// Counterparty returns the first counterparty capture for the given
// direction, unprocessed. Returns "" when no rule matches.
func (l *Library) Counterparty(body string, direction model.Direction) string {
	rules := l.debitNames
	if direction == model.DirectionIncome {
		rules = l.creditNames
	}
	for _, rule := range rules {
		if m := rule.re.FindStringSubmatch(body); m != nil {
			return m[1]
		}
	}
	return ""
}

// normalizeNumber canonicalizes the decimal separator so "1,50" and "1.50"
// yield the same numeric text.
func normalizeNumber(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}
