package intake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceHub_CollectsParseAttempts(t *testing.T) {
	hub := NewTraceHub()
	parser := NewParser(
		&stubRecognizer{name: "silent", accepts: acceptAll},
		&stubRecognizer{
			name:    "loud",
			accepts: acceptAll,
			calls:   []*Invocation{{Name: "readResource", Args: map[string]any{}}},
		},
	).WithTrace(hub.Send)

	parser.Parse("input without a span")
	hub.Close()

	var events []TraceEvent
	for event := range hub.Events() {
		events = append(events, event)
	}
	require.Len(t, events, 2)
	assert.Equal(t, "silent", events[0].Recognizer)
	assert.Equal(t, "loud", events[1].Recognizer)
	assert.Equal(t, 1, events[1].Count)
}

func TestTraceHub_SendNeverBlocksWithoutConsumer(t *testing.T) {
	hub := NewTraceHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Send(TraceEvent{Recognizer: "r", Source: SourceText, Count: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Send blocked without a consumer")
	}

	hub.Close()
	count := 0
	for range hub.Events() {
		count++
	}
	assert.Equal(t, 1000, count)
}
