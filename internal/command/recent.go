package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/client"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/output"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently received events",
	Long:  "Query a collector for its most recently received conversation events.",
	Example: `  aerolog recent --collector-url http://localhost:8085 --limit 20
  aerolog recent --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		collectorURL, _ := cmd.Flags().GetString("collector-url")
		apiKey, _ := cmd.Flags().GetString("api-key")
		limit, _ := cmd.Flags().GetInt("limit")
		format, _ := cmd.Flags().GetString("output")

		if apiKey == "" {
			apiKey = cfg.Collector.APIKey
		}
		if apiKey == "" {
			return fmt.Errorf("no API key configured (use --api-key, the config file, or LOGGER_API_KEY)")
		}

		c := client.NewCollectorClient(collectorURL, apiKey)
		events, err := c.Recent(limit)
		if err != nil {
			return fmt.Errorf("failed to fetch events: %w", err)
		}

		switch format {
		case "json":
			return output.JSON(events)
		case "yaml":
			return output.YAML(events)
		case "table":
			renderEventTable(events)
			return nil
		default:
			return fmt.Errorf("unknown output format %q (table, json, yaml)", format)
		}
	},
}

func renderEventTable(events []*event.Stored) {
	if len(events) == 0 {
		output.Info("No events")
		return
	}

	table := output.NewTable([]string{"RECEIVED", "EVENT", "CONVERSATION", "DIRECTION", "SOURCE IP"})
	for _, ev := range events {
		table.AddRow([]string{
			ev.ReceivedAt.Local().Format(time.TimeOnly),
			payloadString(ev.Payload, "event_id"),
			payloadString(ev.Payload, "conversation_id"),
			payloadString(ev.Payload, "direction"),
			ev.SourceIP,
		})
	}
	table.Render()
	output.Info("%d events", len(events))
}

func payloadString(rec event.Record, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return "-"
}

func init() {
	rootCmd.AddCommand(recentCmd)

	recentCmd.Flags().String("collector-url", "http://localhost:8085", "collector base URL")
	recentCmd.Flags().String("api-key", "", "collector API key (overrides config)")
	recentCmd.Flags().IntP("limit", "l", 20, "maximum number of events")
	recentCmd.Flags().StringP("output", "o", "table", "output format: table, json, yaml")
}
