package recognize

import (
	"strings"

	"github.com/rickchristie/intake"
	"github.com/rickchristie/intake/scan"
)

// Call recognizes direct call syntax embedded anywhere in the text:
//
//	createResource(path: "notes/a.md", content: "hello")
//
// Only known operation names are matched, so ordinary prose functions do not
// trigger extraction. Multiple calls in one text are all extracted, in order
// of appearance.
type Call struct {
	ops intake.OperationSet
}

// NewCall creates the direct-call recognizer for the given operations.
func NewCall(ops intake.OperationSet) *Call {
	return &Call{ops: ops}
}

// Name identifies this recognizer in trace events.
func (r *Call) Name() string {
	return "call"
}

// CanAttempt reports whether any known operation name is immediately followed
// by an opening parenthesis somewhere in the text.
func (r *Call) CanAttempt(text string) bool {
	for name, ok := range r.ops {
		if ok && strings.Contains(text, name+"(") {
			return true
		}
	}
	return false
}

// Extract scans left to right for operation calls. A candidate whose
// parenthesized interior yields no arguments is skipped as prose, but the
// scan resumes just inside it so that a real call quoted within survives.
func (r *Call) Extract(text string) []*intake.Invocation {
	var calls []*intake.Invocation
	for i := 0; i < len(text); {
		name := r.matchAt(text, i)
		if name == "" {
			i++
			continue
		}
		open := i + len(name)
		end := scan.MatchingParen(text, open)
		if end < 0 {
			i = open + 1
			continue
		}
		inv := buildCall(name, text[open+1:end])
		if inv == nil {
			i = open + 1
			continue
		}
		calls = append(calls, inv)
		i = end + 1
	}
	return calls
}

// matchAt returns the operation name starting at i and immediately followed
// by '(' with nothing of an identifier before it, or "". When one name is a
// prefix of another the longer match wins.
func (r *Call) matchAt(text string, i int) string {
	if i > 0 && isIdentChar(text[i-1]) {
		return ""
	}
	best := ""
	for name, ok := range r.ops {
		if !ok || len(name) <= len(best) {
			continue
		}
		end := i + len(name)
		if end >= len(text) || text[end] != '(' {
			continue
		}
		if text[i:end] == name {
			best = name
		}
	}
	return best
}

// buildCall converts one parenthesized interior into an invocation. A
// non-empty interior that yields zero pairs is a parenthetical remark, not a
// call, and returns nil. An empty interior is a call with no arguments.
func buildCall(name, interior string) *intake.Invocation {
	pairs := scan.SplitArgs(interior)
	if len(pairs) == 0 && strings.TrimSpace(interior) != "" {
		return nil
	}
	args := make(map[string]any, len(pairs))
	for _, p := range pairs {
		args[p.Key] = scan.Coerce(p.Key, p.Raw)
	}
	return &intake.Invocation{Name: name, Args: args}
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// Guidance returns prompt text describing the direct call syntax.
func (r *Call) Guidance() string {
	var sb strings.Builder
	sb.WriteString("Call an operation by writing its name followed by ")
	sb.WriteString("parenthesized key: value arguments:\n")
	sb.WriteString("    readResource(path: \"notes/a.md\")\n")
	sb.WriteString("Available operations: ")
	sb.WriteString(strings.Join(r.ops.Names(), ", "))
	return sb.String()
}

// Compile-time check that Call implements intake.Recognizer.
var _ intake.Recognizer = (*Call)(nil)
