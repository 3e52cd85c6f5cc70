package intake

import "github.com/rickchristie/intake/internal/buffer"

// TraceHub moves trace events out of the parsing hot path. Send never
// blocks, so the hub can be installed directly as the Parse trace callback
// while a separate goroutine consumes the events:
//
//	hub := intake.NewTraceHub()
//	parser := intake.NewParser(chain...).WithTrace(hub.Send)
//	go func() {
//	    for event := range hub.Events() {
//	        log.Printf("%s/%s -> %d", event.Recognizer, event.Source, event.Count)
//	    }
//	}()
//
// Close the hub when the parser is retired; buffered events are still
// delivered before the Events channel closes.
type TraceHub struct {
	queue *buffer.Queue[TraceEvent]
}

// NewTraceHub creates a running TraceHub.
func NewTraceHub() *TraceHub {
	return &TraceHub{queue: buffer.NewQueue[TraceEvent]()}
}

// Send queues one event without blocking. Safe for concurrent use.
func (h *TraceHub) Send(event TraceEvent) {
	h.queue.Push(event)
}

// Events returns the delivery channel. It closes after Close.
func (h *TraceHub) Events() <-chan TraceEvent {
	return h.queue.Out()
}

// Close stops accepting events and closes the Events channel once drained.
func (h *TraceHub) Close() {
	h.queue.Close()
}
