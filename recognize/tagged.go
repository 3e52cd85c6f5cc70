package recognize

import (
	"strings"

	"github.com/rickchristie/intake"
	"github.com/rickchristie/intake/scan"
)

// DefaultTagMarker is the literal marker some models prefix to a JSON array
// of tool calls.
const DefaultTagMarker = "[TOOL_CALLS]"

// Tagged recognizes a marker-prefixed array closing the output:
//
//	[TOOL_CALLS][{"name": "readResource", "arguments": {"path": "a.md"}}]
//
// The array must end the text (modulo trailing whitespace): trailing prose
// means the marker was quoted or discussed, not emitted.
type Tagged struct {
	marker string
}

// NewTagged creates the bracket-tag recognizer with DefaultTagMarker.
func NewTagged() *Tagged {
	return &Tagged{marker: DefaultTagMarker}
}

// WithMarker overrides the literal marker.
func (r *Tagged) WithMarker(marker string) *Tagged {
	r.marker = marker
	return r
}

// Name identifies this recognizer in trace events.
func (r *Tagged) Name() string {
	return "tagged"
}

// CanAttempt reports whether the text contains the marker and ends with a
// closing bracket.
func (r *Tagged) CanAttempt(text string) bool {
	return strings.Contains(text, r.marker) &&
		strings.HasSuffix(strings.TrimSpace(text), "]")
}

// Extract parses the array between the marker and the end of the text.
func (r *Tagged) Extract(text string) []*intake.Invocation {
	at := strings.Index(text, r.marker)
	if at < 0 {
		return nil
	}
	tail := strings.TrimSpace(text[at+len(r.marker):])

	span, ok := scan.FirstSpan(tail)
	if !ok || span[0] != '[' {
		return nil
	}
	// The array is the whole payload. A span buried in trailing prose means
	// the marker was discussed, not emitted.
	if !strings.HasPrefix(tail, span) || strings.TrimSpace(tail[len(span):]) != "" {
		return nil
	}
	return extractJSON(span)
}

// Guidance returns prompt text describing the bracket-tag convention.
func (r *Tagged) Guidance() string {
	var sb strings.Builder
	sb.WriteString("End your output with the marker ")
	sb.WriteString(r.marker)
	sb.WriteString(" followed by a JSON array of calls:\n")
	sb.WriteString(r.marker)
	sb.WriteString(`[{"name": "tool_name", "arguments": {...}}]`)
	return sb.String()
}

// Compile-time check that Tagged implements intake.Recognizer.
var _ intake.Recognizer = (*Tagged)(nil)
