package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickchristie/intake"
)

func TestCall_Extract(t *testing.T) {
	r := NewCall(intake.DefaultOperations())

	tests := []struct {
		name     string
		text     string
		expected []*intake.Invocation
	}{
		{
			name: "single call with coerced values",
			text: `createResource(path: "notes/a.md", draft: true, priority: 2)`,
			expected: []*intake.Invocation{{
				Name: "createResource",
				Args: map[string]any{
					"path":     "notes/a.md",
					"draft":    true,
					"priority": float64(2),
				},
			}},
		},
		{
			name: "code snippet argument kept verbatim",
			text: `executeCommand(command:"main(args) { return 0; }")`,
			expected: []*intake.Invocation{{
				Name: "executeCommand",
				Args: map[string]any{"command": "main(args) { return 0; }"},
			}},
		},
		{
			name: "two sequential calls in order",
			text: `First readResource(path: "a.md") and then deleteResource(path: "b.md").`,
			expected: []*intake.Invocation{
				{Name: "readResource", Args: map[string]any{"path": "a.md"}},
				{Name: "deleteResource", Args: map[string]any{"path": "b.md"}},
			},
		},
		{
			name: "call surrounded by prose",
			text: `Sure, let me run searchResources(query: "meeting notes") right away.`,
			expected: []*intake.Invocation{{
				Name: "searchResources",
				Args: map[string]any{"query": "meeting notes"},
			}},
		},
		{
			name:     "empty parentheses mean no arguments",
			text:     `searchResources()`,
			expected: []*intake.Invocation{{Name: "searchResources", Args: map[string]any{}}},
		},
		{
			name:     "parenthesized prose is not a call",
			text:     `searchResources(the weather outside)`,
			expected: nil,
		},
		{
			name: "call quoted inside a prose parenthetical",
			text: `editResource(please wrap searchResources(query: "news") for me)`,
			expected: []*intake.Invocation{{
				Name: "searchResources",
				Args: map[string]any{"query": "news"},
			}},
		},
		{
			name:     "name embedded in a longer identifier",
			text:     `call myreadResource(path: "a.md") first`,
			expected: nil,
		},
		{
			name:     "parenthesis never closes",
			text:     `readResource(path: "a.md"`,
			expected: nil,
		},
		{
			name: "closing parenthesis inside quotes does not close the call",
			text: `executeCommand(command: 'echo ")"')`,
			expected: []*intake.Invocation{{
				Name: "executeCommand",
				Args: map[string]any{"command": `echo ")"`},
			}},
		},
		{
			name:     "unknown operation name",
			text:     `launchMissiles(target: "moon")`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Extract(tt.text))
		})
	}
}

func TestCall_LongestNameWins(t *testing.T) {
	r := NewCall(intake.NewOperationSet("search", "searchResources"))

	calls := r.Extract(`searchResources(query: "x")`)
	require.Len(t, calls, 1)
	assert.Equal(t, "searchResources", calls[0].Name)
}

func TestCall_CanAttempt(t *testing.T) {
	r := NewCall(intake.DefaultOperations())

	assert.True(t, r.CanAttempt(`readResource(path: "a")`))
	assert.True(t, r.CanAttempt("prose then executeCommand(command: \"ls\")"))
	assert.False(t, r.CanAttempt("readResource without parentheses"))
	assert.False(t, r.CanAttempt("plain prose"))
}
