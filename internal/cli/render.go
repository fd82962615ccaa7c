package cli

import (
	"fmt"
	"strings"

	"github.com/paisawatch/paisawatch/internal/model"
)

// RenderQueue formats the pending candidates as a review table.
func RenderQueue(candidates []model.CandidateTransaction) string {
	if len(candidates) == 0 {
		return SubtleStyle.Render("No pending candidates. Run 'paisawatch scan' to ingest messages.")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Pending candidates (%d)", len(candidates))))
	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-4s %-10s %-12s %-14s %-20s %s",
		"ID", "AMOUNT", "DIRECTION", "CATEGORY", "COUNTERPARTY", "EXCERPT")))
	b.WriteString("\n")

	for _, c := range candidates {
		amountStyle := ExpenseStyle
		if c.Direction == model.DirectionIncome {
			amountStyle = IncomeStyle
		}
		counterparty := c.Counterparty
		if counterparty == "" {
			counterparty = "-"
		}
		b.WriteString(fmt.Sprintf("%-4d %s %-12s %-14s %-20s %s\n",
			c.DisplayID,
			amountStyle.Render(fmt.Sprintf("%-10s", c.Amount)),
			c.Direction,
			truncate(c.Category, 14),
			truncate(counterparty, 20),
			SubtleStyle.Render(truncate(c.Excerpt, 40))))
	}
	return b.String()
}

// RenderLedger formats finalized ledger entries, newest first.
func RenderLedger(entries []model.LedgerEntry) string {
	if len(entries) == 0 {
		return SubtleStyle.Render("Ledger is empty.")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Ledger (%d entries)", len(entries))))
	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-12s %-12s %-14s %s",
		"DATE", "AMOUNT", "CATEGORY", "TITLE")))
	b.WriteString("\n")

	for _, e := range entries {
		amountStyle := IncomeStyle
		if e.Amount.IsNegative() {
			amountStyle = ExpenseStyle
		}
		b.WriteString(fmt.Sprintf("%-12s %s %-14s %s\n",
			e.Timestamp.Format("2006-01-02"),
			amountStyle.Render(fmt.Sprintf("%-12s", e.Amount.StringFixed(2))),
			truncate(e.Category, 14),
			e.Title))
	}
	return b.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
