package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paisawatch/paisawatch/internal/cli"
)

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect the finalized transaction ledger",
	}

	cmd.AddCommand(listLedgerCmd())

	return cmd
}

func listLedgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List finalized transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.List(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.RenderLedger(entries))
			return nil
		},
	}
}
