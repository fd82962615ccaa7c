// Package classify decides whether a raw message is a financial transaction
// notification eligible for field extraction.
package classify

import (
	"strings"

	"github.com/paisawatch/paisawatch/internal/model"
)

// keywords are the tokens whose presence marks a message as transactional.
var keywords = []string{"debited", "credited", "transaction", "sent"}

// Result reports the classification outcome for one message.
type Result struct {
	Transactional bool
	// BankOverride is set when the HDFC "Sent Rs." template matched. The
	// extractor treats an override hit as a debit signal.
	BankOverride bool
}

// Classifier screens message bodies with fixed keyword checks. It holds no
// state and is safe for concurrent use.
type Classifier struct{}

// New returns a Classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify reports whether the message looks like a transaction
// notification. A message qualifies when its lower-cased body contains one
// of the transaction keywords, or when it matches the HDFC template, which
// uses "Sent Rs." without any of the usual keywords.
func (c *Classifier) Classify(msg model.RawMessage) Result {
	body := strings.ToLower(msg.Body)

	override := strings.Contains(body, "sent") &&
		strings.Contains(body, "rs.") &&
		(strings.Contains(body, "hdfc") || strings.Contains(strings.ToLower(msg.Sender), "hdfc"))

	for _, kw := range keywords {
		if strings.Contains(body, kw) {
			return Result{Transactional: true, BankOverride: override}
		}
	}
	if override {
		return Result{Transactional: true, BankOverride: true}
	}
	return Result{}
}
