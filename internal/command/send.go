package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/dispatcher"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/output"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a conversation event",
	Long:  "Send a single conversation event to the logging endpoint and report the outcome.",
	Example: `  aerolog send --json '{"event_id":"msg_001","direction":"inbound"}'
  aerolog send --file event.json
  cat event.json | aerolog send`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonData, _ := cmd.Flags().GetString("json")
		file, _ := cmd.Flags().GetString("file")
		endpoint, _ := cmd.Flags().GetString("endpoint")
		token, _ := cmd.Flags().GetString("token")

		raw, err := readEventData(cmd, jsonData, file)
		if err != nil {
			return err
		}

		var rec event.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("event is not a JSON object: %w", err)
		}

		endpoint, token = dispatcherSettings(endpoint, token)
		d := dispatcher.New(dispatcher.Config{
			Endpoint: endpoint,
			Token:    token,
			Timeout:  cfg.Dispatcher.Timeout,
		}, nil)

		if !d.Enabled() {
			return fmt.Errorf("no endpoint configured (use --endpoint/--token, the config file, or LOGGER_ENDPOINT/LOGGER_API_KEY)")
		}

		if err := d.Send(context.Background(), rec); err != nil {
			return fmt.Errorf("failed to send event: %w", err)
		}

		output.Success("Event sent to %s", endpoint)
		return nil
	},
}

func readEventData(cmd *cobra.Command, jsonData, file string) ([]byte, error) {
	switch {
	case jsonData != "" && file != "":
		return nil, fmt.Errorf("--json and --file are mutually exclusive")
	case jsonData != "":
		return []byte(jsonData), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read event file: %w", err)
		}
		return data, nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("no event data (use --json, --file, or pipe JSON to stdin)")
		}
		return data, nil
	}
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().String("json", "", "JSON event data")
	sendCmd.Flags().StringP("file", "f", "", "path to a JSON event file")
	sendCmd.Flags().String("endpoint", "", "logging endpoint URL (overrides config)")
	sendCmd.Flags().StringP("token", "t", "", "bearer token (overrides config)")
}
