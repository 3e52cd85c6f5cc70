package recognize

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/rickchristie/intake"
)

// DefaultFallbackName names invocations recovered from a tool-tagged fenced
// block when neither the payload nor the surrounding text names the
// operation.
const DefaultFallbackName = "executeCommand"

var (
	fencedToolRe = regexp.MustCompile("(?s)```tool[ \t]*\r?\n(.*?)```")
	fencedDataRe = regexp.MustCompile("(?s)```(?:json)?[ \t]*\r?\n(.*?)```")
)

// Fenced recognizes markdown code fences carrying a tool payload.
//
// A tool-tagged block holds the arguments under a call field. The operation
// name comes from the payload's own name field when present, otherwise from
// the earliest allow-listed name mentioned anywhere in the surrounding text,
// otherwise the fallback name:
//
//	Running the search now.
//
//	```tool
//	{"call": {"query": "weather"}}
//	```
//
// When no tool-tagged block yields an invocation, json-tagged and untagged
// blocks are tried with the bare JSON rules.
type Fenced struct {
	ops      intake.OperationSet
	fallback string
}

// NewFenced creates the fenced-block recognizer. The allow-list supplies
// the candidates for name inference.
func NewFenced(ops intake.OperationSet) *Fenced {
	return &Fenced{ops: ops, fallback: DefaultFallbackName}
}

// WithFallback overrides the name used when inference finds nothing.
func (r *Fenced) WithFallback(name string) *Fenced {
	r.fallback = name
	return r
}

// Name identifies this recognizer in trace events.
func (r *Fenced) Name() string {
	return "fenced"
}

// CanAttempt reports whether the text contains a code fence.
func (r *Fenced) CanAttempt(text string) bool {
	return strings.Contains(text, "```")
}

// Extract tries every tool-tagged block first, then falls back to data
// blocks.
func (r *Fenced) Extract(text string) []*intake.Invocation {
	var calls []*intake.Invocation
	for _, match := range fencedToolRe.FindAllStringSubmatch(text, -1) {
		if call := r.extractToolBlock(text, match[1]); call != nil {
			calls = append(calls, call)
		}
	}
	if len(calls) > 0 {
		return calls
	}

	for _, match := range fencedDataRe.FindAllStringSubmatch(text, -1) {
		if found := extractJSON(strings.TrimSpace(match[1])); len(found) > 0 {
			return found
		}
	}
	return nil
}

// extractToolBlock decodes one tool-tagged payload. text is the full input,
// needed for name inference.
func (r *Fenced) extractToolBlock(text, body string) *intake.Invocation {
	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(body)), &payload); err != nil {
		return nil
	}

	args, ok := payload["call"].(map[string]any)
	if !ok {
		// A fully specified payload inside a tool fence is accepted
		// as-is.
		call, err := Decode(payload)
		if err != nil {
			return nil
		}
		return call
	}

	name := ""
	for _, field := range nameFields {
		if value, ok := payload[field].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				name = trimmed
				break
			}
		}
	}
	if name == "" {
		name = r.inferName(text)
	}
	return &intake.Invocation{Name: name, Args: args}
}

// inferName returns the allow-listed operation name mentioned earliest in
// the text, or the fallback when none is mentioned.
func (r *Fenced) inferName(text string) string {
	name := r.fallback
	best := -1
	for _, candidate := range r.ops.Names() {
		idx := strings.Index(text, candidate)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
			name = candidate
		}
	}
	return name
}

// Guidance returns prompt text describing the fenced convention.
func (r *Fenced) Guidance() string {
	var sb strings.Builder
	sb.WriteString("Call tools inside a fenced code block tagged json:\n")
	sb.WriteString("```json\n")
	sb.WriteString(`{"name": "tool_name", "arguments": {...}}`)
	sb.WriteString("\n```")
	return sb.String()
}

// Compile-time check that Fenced implements intake.Recognizer.
var _ intake.Recognizer = (*Fenced)(nil)
