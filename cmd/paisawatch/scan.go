package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paisawatch/paisawatch/internal/classify"
	"github.com/paisawatch/paisawatch/internal/cli"
	"github.com/paisawatch/paisawatch/internal/extract"
	"github.com/paisawatch/paisawatch/internal/lifecycle"
	"github.com/paisawatch/paisawatch/internal/pattern"
	"github.com/paisawatch/paisawatch/internal/queue"
	"github.com/paisawatch/paisawatch/internal/scanner"
)

func scanCmd() *cobra.Command {
	var review bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan recent messages for candidate transactions",
		Long: `Read the most recent messages from the local message store, extract
candidate transactions, and list them for review. Messages that were
already accepted or rejected are skipped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			lib, err := pattern.NewDefaultLibrary()
			if err != nil {
				return fmt.Errorf("failed to build pattern library: %w", err)
			}

			tracker := lifecycle.New(store)
			if err := tracker.Load(ctx); err != nil {
				return err
			}

			q := queue.New(tracker, store)

			var bar *progressbar.ProgressBar
			cfg := scanner.Config{
				BatchLimit: viper.GetInt("scan.limit"),
				OnMessage: func(done, total int) {
					if bar == nil {
						bar = cli.NewScanProgress(os.Stderr, total)
					}
					_ = bar.Set(done)
				},
			}
			s := scanner.NewWithConfig(store, classify.New(), extract.New(lib), tracker, cfg)

			added, err := s.Scan(ctx, q)
			if err != nil {
				return err
			}

			fmt.Println(cli.RenderQueue(q.Items()))

			if !review || added == 0 {
				return nil
			}
			return reviewQueue(ctx, os.Stdin, os.Stdout, q)
		},
	}

	cmd.Flags().Int("limit", 0, "maximum messages to read (0 uses the configured or default batch of 50)")
	cmd.Flags().BoolVar(&review, "review", false, "review candidates interactively after the scan")
	_ = viper.BindPFlag("scan.limit", cmd.Flags().Lookup("limit"))

	return cmd
}
