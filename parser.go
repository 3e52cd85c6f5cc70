package intake

import "github.com/rickchristie/intake/scan"

// TraceEvent describes one recognizer attempt during a Parse call. Events
// are delivered to the callback installed with WithTrace; embedders decide
// where they go.
type TraceEvent struct {
	// Recognizer is the name of the recognizer that ran.
	Recognizer string

	// Source is "span" when the attempt ran against the pre-extracted
	// balanced JSON span, "text" when it ran against the raw input.
	Source string

	// Count is how many invocations the attempt produced.
	Count int
}

// Trace sources.
const (
	SourceSpan = "span"
	SourceText = "text"
)

// Parser dispatches model output across a chain of format recognizers and
// returns the first non-empty extraction.
//
// A Parser holds no state between calls and performs no I/O; it is safe for
// unsynchronized concurrent use.
type Parser struct {
	recognizers []Recognizer
	trace       func(TraceEvent)
}

// NewParser creates a Parser that tries the given recognizers in the given
// order. Most embedders use the default chain:
//
//	ops := intake.DefaultOperations()
//	parser := intake.NewParser(recognize.Defaults(ops)...)
func NewParser(recognizers ...Recognizer) *Parser {
	return &Parser{recognizers: recognizers}
}

// WithTrace installs a callback invoked once per recognizer attempt.
// Passing nil removes the callback.
func (p *Parser) WithTrace(fn func(TraceEvent)) *Parser {
	p.trace = fn
	return p
}

// Recognizers returns the dispatch chain in priority order.
func (p *Parser) Recognizers() []Recognizer {
	return p.recognizers
}

// Parse extracts canonical invocations from one piece of model output.
//
// The text is first reduced to its balanced JSON span, when it has one,
// which strips surrounding prose for the JSON-oriented recognizers. Every
// recognizer runs against the span before any runs against the raw text:
// the recognizers that scan prose themselves (direct calls, line commands,
// XML tags) usually succeed on the second pass.
//
// An empty result means no tool call is present. That is the normal outcome
// for plain prose, never an error, and a first-match-wins order across
// recognizers is a documented tie-break for text matching two shapes at
// once, not a guarantee of a unique parse.
func (p *Parser) Parse(text string) []*Invocation {
	if span, ok := scan.FirstSpan(text); ok {
		if calls := p.attempt(span, SourceSpan); len(calls) > 0 {
			return calls
		}
	}
	return p.attempt(text, SourceText)
}

// attempt runs the recognizer chain once against input.
func (p *Parser) attempt(input, source string) []*Invocation {
	for _, r := range p.recognizers {
		if !r.CanAttempt(input) {
			continue
		}
		calls := r.Extract(input)
		if p.trace != nil {
			p.trace(TraceEvent{Recognizer: r.Name(), Source: source, Count: len(calls)})
		}
		if len(calls) > 0 {
			return calls
		}
	}
	return nil
}
