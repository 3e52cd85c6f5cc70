package intake

import "errors"

// Recognizer is one extraction strategy for one textual tool-call
// convention. Implementations live in the recognize package; the Parser
// tries them in priority order.
type Recognizer interface {
	// Name identifies the recognizer in trace events.
	Name() string

	// CanAttempt is a cheap shape test: could this text be my format?
	// It must never panic.
	CanAttempt(text string) bool

	// Extract returns every invocation it can fully decode and an empty
	// slice on any failure. Recognizers never return errors and never
	// emit a partially decoded invocation; a malformed element inside an
	// otherwise valid batch is skipped on its own.
	Extract(text string) []*Invocation

	// Guidance returns prompt text describing this convention, for
	// embedders that want to steer a model toward it. Recognizers that
	// exist only to tolerate malformed output return "".
	Guidance() string
}

// Sentinel errors returned by the strict decoding helpers in the recognize
// package. The dispatch path converts them into skipped elements; they are
// exported so embedders and tests can check causes with errors.Is.
var (
	ErrMissingName = errors.New("tool call missing name field")
	ErrMissingArgs = errors.New("tool call missing arguments field")
	ErrInvalidArgs = errors.New("tool call arguments are not an object")
)
