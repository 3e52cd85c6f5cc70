package recognize

import (
	"encoding/json"
	"strings"

	"github.com/rickchristie/intake"
)

// Bare recognizes output that is a JSON payload and nothing else: a single
// object naming one call, or an array of such objects.
//
// Single invocation:
//
//	{"name": "searchResources", "arguments": {"query": "weather"}}
//
// Multiple invocations:
//
//	[
//	  {"name": "searchResources", "arguments": {"query": "weather"}},
//	  {"name": "readResource", "arguments": {"path": "notes.md"}}
//	]
type Bare struct{}

// NewBare creates the bare JSON recognizer.
func NewBare() *Bare {
	return &Bare{}
}

// Name identifies this recognizer in trace events.
func (r *Bare) Name() string {
	return "json"
}

// CanAttempt reports whether the trimmed text is an object or array literal.
func (r *Bare) CanAttempt(text string) bool {
	text = strings.TrimSpace(text)
	return wrappedBy(text, '{', '}') || wrappedBy(text, '[', ']')
}

// Extract parses the payload. Array elements that do not decode are skipped
// individually.
func (r *Bare) Extract(text string) []*intake.Invocation {
	return extractJSON(strings.TrimSpace(text))
}

// Guidance returns prompt text describing the bare JSON convention.
func (r *Bare) Guidance() string {
	var sb strings.Builder
	sb.WriteString("Call tools by responding with a single JSON payload and nothing else:\n")
	sb.WriteString(`{"name": "tool_name", "arguments": {...}}`)
	sb.WriteString("\n\nFor multiple parallel calls, use an array:\n")
	sb.WriteString(`[{"name": "tool1", "arguments": {...}}, {"name": "tool2", "arguments": {...}}]`)
	return sb.String()
}

// Stringified recognizes a JSON payload serialized one extra time, arriving
// as a double-quoted string wrapping the object:
//
//	"{\"name\": \"readResource\", \"arguments\": {\"path\": \"a.md\"}}"
//
// It exists to tolerate double-encoding, not as a convention to steer
// toward, so it carries no guidance.
type Stringified struct{}

// NewStringified creates the stringified JSON recognizer.
func NewStringified() *Stringified {
	return &Stringified{}
}

// Name identifies this recognizer in trace events.
func (r *Stringified) Name() string {
	return "stringified-json"
}

// CanAttempt reports whether the trimmed text is a double-quoted string.
func (r *Stringified) CanAttempt(text string) bool {
	return wrappedBy(strings.TrimSpace(text), '"', '"')
}

// Extract unquotes the outer string, then applies the bare JSON rules to
// what it wrapped.
func (r *Stringified) Extract(text string) []*intake.Invocation {
	var inner string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &inner); err != nil {
		return nil
	}
	return extractJSON(strings.TrimSpace(inner))
}

// Guidance returns "".
func (r *Stringified) Guidance() string {
	return ""
}

// extractJSON decodes an object or array literal into invocations. Shared
// by every recognizer that unwraps an outer layer first: quoted strings,
// fenced blocks, bracket tags.
func extractJSON(text string) []*intake.Invocation {
	switch {
	case wrappedBy(text, '[', ']'):
		var elements []any
		if err := json.Unmarshal([]byte(text), &elements); err != nil {
			return nil
		}
		return decodeList(elements)
	case wrappedBy(text, '{', '}'):
		var payload map[string]any
		if err := json.Unmarshal([]byte(text), &payload); err != nil {
			return nil
		}
		call, err := Decode(payload)
		if err != nil {
			return nil
		}
		return []*intake.Invocation{call}
	default:
		return nil
	}
}

func wrappedBy(text string, open, close byte) bool {
	return len(text) >= 2 && text[0] == open && text[len(text)-1] == close
}

// Compile-time checks that the JSON recognizers implement intake.Recognizer.
var (
	_ intake.Recognizer = (*Bare)(nil)
	_ intake.Recognizer = (*Stringified)(nil)
)
