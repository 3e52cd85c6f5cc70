package scan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstSpan(t *testing.T) {
	type expected struct {
		span  string
		found bool
	}

	tests := []struct {
		name     string
		input    string
		expected expected
	}{
		{
			name:     "object with surrounding prose",
			input:    `Sure, here is the call: {"name": "readResource", "arguments": {"path": "a.md"}} Let me know!`,
			expected: expected{span: `{"name": "readResource", "arguments": {"path": "a.md"}}`, found: true},
		},
		{
			name:     "array with surrounding prose",
			input:    `I'll run these: [{"name": "searchResources", "arguments": {"query": "q"}}] now.`,
			expected: expected{span: `[{"name": "searchResources", "arguments": {"query": "q"}}]`, found: true},
		},
		{
			name:     "nested objects close at the outer brace",
			input:    `{"a": {"b": {"c": 1}}}`,
			expected: expected{span: `{"a": {"b": {"c": 1}}}`, found: true},
		},
		{
			name:     "braces inside string values carry no depth",
			input:    `{"command": "main() { return 0; }"}`,
			expected: expected{span: `{"command": "main() { return 0; }"}`, found: true},
		},
		{
			name:     "escaped quote does not end the string",
			input:    `{"text": "she said \"hi\" {x}"}`,
			expected: expected{span: `{"text": "she said \"hi\" {x}"}`, found: true},
		},
		{
			name:     "false-positive balance restarts at the next opener",
			input:    `{not json} but {"ok": true} follows`,
			expected: expected{span: `{"ok": true}`, found: true},
		},
		{
			name:     "valid span nested inside an unclosed opener",
			input:    `{"broken": [1, 2 and then {"ok": 1}`,
			expected: expected{span: `{"ok": 1}`, found: true},
		},
		{
			name:     "no brackets at all",
			input:    "just prose, nothing else",
			expected: expected{found: false},
		},
		{
			name:     "empty input",
			input:    "",
			expected: expected{found: false},
		},
		{
			name:     "truncated stream never closes",
			input:    `{"name": "readResource", "arguments": {"path": "a`,
			expected: expected{found: false},
		},
		{
			name:     "bare brackets with no json value",
			input:    "a { b { c",
			expected: expected{found: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, found := FirstSpan(tt.input)
			assert.Equal(t, tt.expected.found, found)
			assert.Equal(t, tt.expected.span, span)
		})
	}
}

// Any span FirstSpan returns must itself be valid JSON, whatever the noise
// around it.
func TestFirstSpan_AlwaysValid(t *testing.T) {
	inputs := []string{
		`prose {"a": 1} prose`,
		`]{[} {"a": [1, {"b": 2}]} {{`,
		"`{`" + ` {"x": "y"} trailing }`,
		`[1, 2, 3] and {"k": "v"}`,
	}
	for _, input := range inputs {
		span, found := FirstSpan(input)
		require.True(t, found, "input: %s", input)
		assert.True(t, json.Valid([]byte(span)), "span: %s", span)
	}
}

func TestMatchingParen(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		open     int
		expected int
	}{
		{
			name:     "flat list",
			input:    `(a:1, b:2)`,
			open:     0,
			expected: 9,
		},
		{
			name:     "parens inside a double-quoted value",
			input:    `(command:"main(args) { return 0; }")`,
			open:     0,
			expected: 35,
		},
		{
			name:     "parens inside a single-quoted value",
			input:    `(command:'f(x)')`,
			open:     0,
			expected: 15,
		},
		{
			name:     "nested bare parens",
			input:    `(a:(1), b:2) tail`,
			open:     0,
			expected: 11,
		},
		{
			name:     "never closes",
			input:    `(a:"unterminated`,
			open:     0,
			expected: -1,
		},
		{
			name:     "escaped quote inside value",
			input:    `(a:"say \")\" now")`,
			open:     0,
			expected: 18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchingParen(tt.input, tt.open))
		})
	}
}
