package intake

import (
	"strings"
	"sync"
)

// Accumulator buffers streamed output deltas until enough text has arrived
// for extraction to succeed. It is the streaming front end to a Parser:
//
//	acc := intake.NewAccumulator(parser)
//	for delta := range stream {
//	    acc.Add(delta)
//	    if calls := acc.Invocations(); len(calls) > 0 {
//	        // complete payload received
//	    }
//	}
//
// A truncated payload yields no invocations until later deltas complete it,
// because the balanced-span extractor refuses spans that never close.
//
// An Accumulator is safe for concurrent use: producers may Add while another
// goroutine polls Invocations.
type Accumulator struct {
	mu     sync.Mutex
	parser *Parser
	buf    strings.Builder
}

// NewAccumulator creates an Accumulator feeding the given parser.
func NewAccumulator(parser *Parser) *Accumulator {
	return &Accumulator{parser: parser}
}

// Add appends one streamed delta to the buffer.
func (a *Accumulator) Add(delta string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.buf.WriteString(delta)
}

// Text returns the text accumulated so far.
func (a *Accumulator) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buf.String()
}

// Invocations parses the text accumulated so far.
func (a *Accumulator) Invocations() []*Invocation {
	return a.parser.Parse(a.Text())
}

// Reset clears the buffer for reuse.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.buf.Reset()
}
