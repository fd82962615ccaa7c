package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/paisawatch/paisawatch/internal/cli"
	"github.com/paisawatch/paisawatch/internal/model"
)

func messagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Manage the local message store",
	}

	cmd.AddCommand(importMessagesCmd())
	cmd.AddCommand(countMessagesCmd())

	return cmd
}

// importedMessage is one line of a JSON-lines message export.
type importedMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

func importMessagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON-lines message export",
		Long: `Load messages into the local store from a JSON-lines file where each line
is {"id": ..., "sender": ..., "body": ..., "timestamp": RFC3339}.
Importing the same file twice is harmless: messages are keyed by id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open export file: %w", err)
			}
			defer func() { _ = f.Close() }()

			var messages []model.RawMessage
			scanner := bufio.NewScanner(f)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			line := 0
			for scanner.Scan() {
				line++
				text := scanner.Bytes()
				if len(text) == 0 {
					continue
				}
				var msg importedMessage
				if err := json.Unmarshal(text, &msg); err != nil {
					return fmt.Errorf("line %d: failed to parse message: %w", line, err)
				}
				if msg.ID == "" {
					return fmt.Errorf("line %d: message has no id", line)
				}
				messages = append(messages, model.RawMessage{
					SourceID:  msg.ID,
					Sender:    msg.Sender,
					Body:      msg.Body,
					Timestamp: msg.Timestamp,
				})
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read export file: %w", err)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveMessages(ctx, messages); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d messages", len(messages))))
			return nil
		},
	}
}

func countMessagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show how many messages are stored",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			count, err := store.CountMessages(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%d messages\n", count)
			return nil
		},
	}
}
