package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a finalized transaction as recorded by the persistent
// ledger. Amount is signed: negative for expenses, positive for income.
type LedgerEntry struct {
	Timestamp time.Time
	Title     string
	Category  string
	Amount    decimal.Decimal
	ID        int64
}
