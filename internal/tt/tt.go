// Package tt provides small helpers shared by tests across packages.
package tt

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/rickchristie/intake"
)

// Inv builds an expected invocation from alternating key/value pairs:
//
//	tt.Inv("readResource", "path", "a.md")
//	tt.Inv("searchResources", "query", "weather", "limit", float64(10))
//
// Panics on a malformed pair list; these are test fixtures, not inputs.
func Inv(name string, kv ...any) *intake.Invocation {
	if len(kv)%2 != 0 {
		panic("tt.Inv: key/value arguments must come in pairs")
	}
	args := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("tt.Inv: argument keys must be strings")
		}
		args[key] = kv[i+1]
	}
	return &intake.Invocation{Name: name, Args: args}
}

// Names returns the invocation names in order, for compact assertions on
// multi-call extractions.
func Names(calls []*intake.Invocation) []string {
	names := make([]string, len(calls))
	for i, call := range calls {
		names[i] = call.Name
	}
	return names
}

// RequireText fails the test with a unified diff when two multi-line
// strings differ. Single-line assertion output is unreadable for file
// content arguments.
func RequireText(t *testing.T, expected, actual string) {
	t.Helper()
	if expected == actual {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("text mismatch:\nexpected: %q\nactual:   %q", expected, actual)
	}
	t.Fatalf("text mismatch (-expected +actual):\n%s", diff)
}
