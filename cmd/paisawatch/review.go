package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/paisawatch/paisawatch/internal/cli"
	"github.com/paisawatch/paisawatch/internal/model"
	"github.com/paisawatch/paisawatch/internal/queue"
)

// reviewQueue walks the pending candidates one by one. Accepted candidates
// are exported to the ledger; rejected ones are dropped. Both outcomes are
// final: the underlying message is never surfaced again.
func reviewQueue(ctx context.Context, in io.Reader, out io.Writer, q *queue.Queue) error {
	reader := bufio.NewReader(in)

	for _, candidate := range q.Items() {
		if err := reviewOne(ctx, reader, out, q, candidate); err != nil {
			if err == errQuitReview {
				return nil
			}
			return err
		}
	}

	fmt.Fprintln(out, cli.FormatSuccess("Review complete"))
	return nil
}

var errQuitReview = fmt.Errorf("review aborted")

func reviewOne(ctx context.Context, reader *bufio.Reader, out io.Writer, q *queue.Queue, candidate model.CandidateTransaction) error {
	for {
		printCandidate(out, candidate)
		fmt.Fprint(out, "[a]ccept  [r]eject  [e]dit  [s]kip  [q]uit > ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return errQuitReview
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "a", "accept":
			found, err := q.Accept(ctx, candidate.DisplayID)
			if err != nil {
				return err
			}
			if found {
				fmt.Fprintln(out, cli.FormatSuccess("Recorded to ledger"))
			}
			return nil
		case "r", "reject":
			if _, err := q.Reject(ctx, candidate.DisplayID); err != nil {
				return err
			}
			fmt.Fprintln(out, cli.SubtleStyle.Render("Rejected"))
			return nil
		case "e", "edit":
			updated, err := editCandidate(reader, out, q, candidate)
			if err != nil {
				return err
			}
			candidate = updated
		case "s", "skip", "":
			return nil
		case "q", "quit":
			return errQuitReview
		default:
			fmt.Fprintln(out, cli.WarningStyle.Render("Unknown choice"))
		}
	}
}

func editCandidate(reader *bufio.Reader, out io.Writer, q *queue.Queue, candidate model.CandidateTransaction) (model.CandidateTransaction, error) {
	category, err := promptDefault(reader, out, "Category", candidate.Category)
	if err != nil {
		return candidate, errQuitReview
	}
	amount, err := promptDefault(reader, out, "Amount", candidate.Amount)
	if err != nil {
		return candidate, errQuitReview
	}

	if q.Update(candidate.DisplayID, category, amount) {
		candidate.Category = category
		candidate.Amount = amount
	}
	return candidate, nil
}

func promptDefault(reader *bufio.Reader, out io.Writer, label, current string) (string, error) {
	fmt.Fprintf(out, "%s [%s]: ", label, current)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current, nil
	}
	return line, nil
}

func printCandidate(out io.Writer, c model.CandidateTransaction) {
	style := cli.ExpenseStyle
	if c.Direction == model.DirectionIncome {
		style = cli.IncomeStyle
	}
	fmt.Fprintf(out, "\n#%d  %s  %s  %s\n", c.DisplayID, style.Render(c.Amount), c.Direction, c.Timestamp.Format("2006-01-02 15:04"))
	if c.Counterparty != "" {
		fmt.Fprintf(out, "    %s\n", c.Counterparty)
	}
	if c.Excerpt != "" {
		fmt.Fprintf(out, "    %s\n", cli.SubtleStyle.Render(c.Excerpt))
	}
}
