package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paisawatch/paisawatch/internal/cli"
	"github.com/paisawatch/paisawatch/internal/lifecycle"
	"github.com/paisawatch/paisawatch/internal/model"
	"github.com/paisawatch/paisawatch/internal/queue"
)

func addCmd() *cobra.Command {
	var (
		amount    string
		category  string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a transaction manually",
		Long: `Create a transaction that did not come from a message, and record it to
the ledger immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var dir model.Direction
			switch strings.ToLower(direction) {
			case "expense":
				dir = model.DirectionExpense
			case "income":
				dir = model.DirectionIncome
			default:
				return fmt.Errorf("direction must be expense or income, got %q", direction)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			tracker := lifecycle.New(store)
			q := queue.New(tracker, store)

			candidate, err := q.AddManual(args[0], amount, category, dir)
			if err != nil {
				return err
			}
			if _, err := q.Accept(ctx, candidate.DisplayID); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s (%s)", candidate.Amount, candidate.Title, candidate.Direction)))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount, e.g. ₹250.00 or 250.00 (required)")
	cmd.Flags().StringVar(&category, "category", "", "category (default: Uncategorized)")
	cmd.Flags().StringVar(&direction, "direction", "expense", "expense or income")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
