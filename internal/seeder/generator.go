// Package seeder generates fake conversation events for demos and load
// testing against a collector.
package seeder

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/pkg/event"
)

var (
	languages = []string{"en", "es", "fr", "de", "ja", "zh"}
	topics    = []string{"chocolate_cake", "sourdough", "croissants", "birthday_order", "gluten_free", "delivery"}
	models    = []string{
		"mistral.ministral-3-14b-instruct",
		"us.meta.llama4-maverick-17b-instruct-v1:0",
		"anthropic.claude-haiku",
	}
	steps = []string{"preprocessing_agent", "intention_agent", "control_action_centre"}
)

// Generator produces conversation events with the field set the logging
// pipeline records for each exchange.
type Generator struct {
	conversationID string
	merchantID     string
	turn           int
}

func NewGenerator() *Generator {
	return &Generator{
		conversationID: "conv_" + uuid.New().String()[:8],
		merchantID:     "merchant_" + gofakeit.Username(),
	}
}

// Next returns one event. Turns alternate between an inbound customer
// message and an outbound bot response carrying model-call telemetry.
func (g *Generator) Next() event.Record {
	g.turn++
	inbound := g.turn%2 == 1

	rec := event.Record{
		"event_id":        fmt.Sprintf("msg_%s", uuid.New().String()[:12]),
		"conversation_id": g.conversationID,
		"merchant_id":     g.merchantID,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"language":        gofakeit.RandomString(languages),
		"message":         map[string]any{"message": gofakeit.Sentence(8)},
		"working_context": map[string]any{
			"turn":  g.turn,
			"topic": gofakeit.RandomString(topics),
		},
	}

	if inbound {
		rec["direction"] = "inbound"
		rec["source"] = "customer"
		return rec
	}

	rec["direction"] = "outbound"
	rec["source"] = "bot"

	calls := make([]any, 0, len(steps))
	total := 0
	for _, step := range steps {
		duration := gofakeit.Number(150, 2200)
		total += duration
		calls = append(calls, map[string]any{
			"step":          step,
			"model":         gofakeit.RandomString(models),
			"prompt_sent":   gofakeit.Sentence(6),
			"tokens_input":  gofakeit.Number(80, 1200),
			"tokens_output": gofakeit.Number(10, 400),
			"duration_ms":   duration,
		})
	}
	rec["model_calls"] = calls
	rec["response_time_ms"] = total + gofakeit.Number(50, 500)
	rec["memory_basket"] = map[string]any{
		"customer_preference": gofakeit.RandomString(topics),
	}

	return rec
}
