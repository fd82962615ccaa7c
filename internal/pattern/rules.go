package pattern

// currency is the token shape for Indian rupee amounts as they appear in
// bank notification texts: "Rs.", "Rs", "INR", or the rupee sign.
const currency = `(?:\brs\.?|\binr\b|₹)`

// number is a decimal amount: digits with an optional `.` or `,` separator
// followed by more digits. No thousands-grouping semantics.
const number = `(\d+(?:[.,]\d+)?)`

// AmountRule is one entry in the prioritized amount extraction chain.
// Rules are evaluated in priority order (highest first) and the first
// successful match wins.
type AmountRule struct {
	Name      string
	Regex     string
	Priority  int
	DebitOnly bool // Evaluated only when the message is on the debit/sent branch
}

// DefaultAmountRules returns the fixed amount extraction chain.
//
// The ordering is load-bearing: the phrase and currency-prefixed shapes are
// high confidence, the bare-digits fallback is a last resort that can latch
// onto dates or account fragments and relies on the disambiguation pass.
func DefaultAmountRules() []AmountRule {
	return []AmountRule{
		{
			Name:     "amount-of-phrase",
			Regex:    `(?i)amount\s+of\s+` + currency + `?\s*` + number,
			Priority: 100,
		},
		{
			Name:     "currency-prefixed",
			Regex:    `(?i)` + currency + `\s*` + number,
			Priority: 90,
		},
		{
			Name:      "sent-rs-tight",
			Regex:     `(?i)\bsent\s+rs\.?\s*` + number,
			Priority:  80,
			DebitOnly: true,
		},
		{
			Name:      "sent-rs-wordy",
			Regex:     `(?i)\bsent\b[^0-9]*?\brs\.?\s*` + number,
			Priority:  75,
			DebitOnly: true,
		},
		{
			Name:      "sent-generic",
			Regex:     `(?is)\bsent\b.*?\brs\.?\s*` + number,
			Priority:  70,
			DebitOnly: true,
		},
		{
			Name:     "keyword-adjacent",
			Regex:    `(?i)\b(?:debited|debit|credited|credit)\b\D*?` + currency + `?\s*` + number,
			Priority: 60,
		},
		{
			Name:     "currency-suffixed",
			Regex:    `(?i)` + number + `\s*(?:rupees\b|rs\.?|\binr\b|₹)`,
			Priority: 50,
		},
		{
			Name:     "bare-digits",
			Regex:    `(\d{3,}(?:\.\d+)?)`,
			Priority: 40,
		},
	}
}

// AccountNumberRegex matches a (possibly masked) account number fragment:
// an account keyword, an optional "no."/"number", an optional mask run, and
// 4-6 digits. Used to keep account fragments out of extracted amounts.
const AccountNumberRegex = `(?i)\b(?:a/c|account|acc)\.?\s*(?:no\.?|number)?\s*x*\s*(\d{4,6})`

// CounterpartyRule captures the payee or payer name for one direction.
type CounterpartyRule struct {
	Name  string
	Regex string
}

// name is the counterparty capture shape: a letter start, then letters,
// spaces, apostrophes, periods, slashes, or hyphens, bounded to ~40
// characters. The slash lets a trailing "A/c ..." fragment ride along so
// the extractor can strip it afterwards.
const name = `([A-Za-z][A-Za-z' ./\-]{0,39})`

// DefaultDebitCounterpartyRules returns the payee patterns for expense
// messages, most general first; the first match wins.
func DefaultDebitCounterpartyRules() []CounterpartyRule {
	return []CounterpartyRule{
		{Name: "to", Regex: `(?i)\bto\s+` + name},
		{Name: "sent-to", Regex: `(?i)\bsent\s+to\s+` + name},
		{Name: "upi-to", Regex: `(?i)\bupi(?:\s+(?:txn|transaction))?\s+to\s+` + name},
		{Name: "imps-to", Regex: `(?i)\bimps\s+to\s+` + name},
		{Name: "neft-to", Regex: `(?i)\bneft\s+to\s+` + name},
	}
}

// DefaultCreditCounterpartyRules returns the payer patterns for income
// messages; the first match wins.
func DefaultCreditCounterpartyRules() []CounterpartyRule {
	return []CounterpartyRule{
		{Name: "from", Regex: `(?i)\bfrom\s+` + name},
		{Name: "by", Regex: `(?i)\bby\s+` + name},
	}
}
