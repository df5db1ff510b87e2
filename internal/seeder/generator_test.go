package seeder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_AlternatesDirection(t *testing.T) {
	g := NewGenerator()

	first := g.Next()
	second := g.Next()

	assert.Equal(t, "inbound", first["direction"])
	assert.Equal(t, "customer", first["source"])
	assert.Equal(t, "outbound", second["direction"])
	assert.Equal(t, "bot", second["source"])
}

func TestGenerator_SharedConversation(t *testing.T) {
	g := NewGenerator()

	first := g.Next()
	second := g.Next()

	assert.Equal(t, first["conversation_id"], second["conversation_id"])
	assert.Equal(t, first["merchant_id"], second["merchant_id"])
	assert.NotEqual(t, first["event_id"], second["event_id"])
}

func TestGenerator_OutboundCarriesModelCalls(t *testing.T) {
	g := NewGenerator()
	g.Next() // inbound
	rec := g.Next()

	calls, ok := rec["model_calls"].([]any)
	require.True(t, ok, "outbound events carry model_calls")
	require.Len(t, calls, 3)

	for _, raw := range calls {
		call, ok := raw.(map[string]any)
		require.True(t, ok)
		assert.NotEmpty(t, call["step"])
		assert.NotEmpty(t, call["model"])
		assert.Positive(t, call["tokens_input"])
		assert.Positive(t, call["duration_ms"])
	}

	assert.Positive(t, rec["response_time_ms"])
}

func TestGenerator_EventsAreSerializable(t *testing.T) {
	g := NewGenerator()

	for i := 0; i < 10; i++ {
		_, err := json.Marshal(g.Next())
		require.NoError(t, err)
	}
}
