package intake

import "sort"

// Invocation is one extracted tool call: the name of the requested operation
// plus its arguments.
//
// Argument values are the JSON value types: string, float64, bool, []any,
// and map[string]any, nested recursively. (The YAML recognizer additionally
// yields int for whole numbers, per yaml.v3.) An Invocation is built fresh
// per extraction and never retained by the library; the caller owns it.
type Invocation struct {
	Name string
	Args map[string]any
}

// OperationSet is the allow-list of operation names an embedder recognizes.
// It gates the direct-call recognizer, so prose that merely contains word(
// is not read as a call, and it names the candidates for fenced-payload name
// inference. It never rejects a name carried by an explicit structured
// payload.
type OperationSet map[string]bool

// NewOperationSet builds an OperationSet from the given names. Empty names
// are ignored.
func NewOperationSet(names ...string) OperationSet {
	set := make(OperationSet, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = true
	}
	return set
}

// Has reports whether name is in the set.
func (s OperationSet) Has(name string) bool {
	return s[name]
}

// Names returns the set's names in sorted order.
func (s OperationSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultOperations returns the operation names recognized out of the box.
// Embedders extend the set with their own names before building the
// recognizer chain:
//
//	ops := intake.DefaultOperations()
//	ops["deployService"] = true
//	parser := intake.NewParser(recognize.Defaults(ops)...)
func DefaultOperations() OperationSet {
	return NewOperationSet(
		"createResource",
		"editResource",
		"deleteResource",
		"readResource",
		"executeCommand",
		"searchResources",
	)
}
