package extract

import "regexp"

// accountSuffix strips a trailing account fragment ("... A/c xx1234") that
// the broad "to <name>" capture tends to swallow.
var accountSuffix = regexp.MustCompile(`(?i)\s*a/c.*$`)

// disambiguate guards against the account-number trap: masked account
// fragments ("A/c x7805") are 4-6 digit runs that the generic amount rules
// can latch onto. When the chosen amount is textually identical to the
// body's account number, the body is re-scanned for currency-prefixed
// amounts and the first one that differs from the account number and
// carries at least 3 digits wins. Returns "" when no alternative qualifies;
// the caller degrades that to extraction failure.
func (e *Extractor) disambiguate(body, amount string) string {
	account := e.lib.AccountNumber(body)
	if account == "" || account != amount {
		return amount
	}

	for _, alt := range e.lib.AllCurrencyAmounts(body) {
		if alt != account && digitCount(alt) >= 3 {
			return alt
		}
	}
	return ""
}

func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
