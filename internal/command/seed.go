package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/seeder"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/dispatcher"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/output"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Send fake conversation events",
	Long:  "Generate fake conversation events and send them to the logging endpoint, for demos and load testing.",
	Example: `  aerolog seed --count 20
  aerolog seed --count 100 --interval 50ms`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		interval, _ := cmd.Flags().GetDuration("interval")
		endpoint, _ := cmd.Flags().GetString("endpoint")
		token, _ := cmd.Flags().GetString("token")

		if count <= 0 {
			return fmt.Errorf("--count must be positive")
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

		gen := seeder.NewGenerator()
		sent, failed := 0, 0
		for i := 0; i < count; i++ {
			if err := d.Send(context.Background(), gen.Next()); err != nil {
				failed++
				output.Warn("event %d failed: %v", i+1, err)
			} else {
				sent++
			}
			if interval > 0 && i < count-1 {
				time.Sleep(interval)
			}
		}

		if failed > 0 {
			output.Warn("Sent %d events, %d failed", sent, failed)
			return nil
		}
		output.Success("Sent %d events to %s", sent, endpoint)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntP("count", "n", 10, "number of events to send")
	seedCmd.Flags().Duration("interval", 0, "pause between events")
	seedCmd.Flags().String("endpoint", "", "logging endpoint URL (overrides config)")
	seedCmd.Flags().StringP("token", "t", "", "bearer token (overrides config)")
}
