package recognize

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rickchristie/intake"
)

var (
	fencedYAMLRe   = regexp.MustCompile("(?s)```ya?ml[ \t]*\r?\n(.*?)```")
	yamlToolLineRe = regexp.MustCompile(`(?m)^-?[ \t]*tool:[ \t]*\S`)
)

// YAML recognizes tool calls written as YAML, fenced or bare.
//
// Single invocation:
//
//	tool: searchResources
//	args:
//	  query: weather in tokyo
//
// Multiple invocations:
//
//	- tool: searchResources
//	  args:
//	    query: weather
//	- tool: readResource
//	  args:
//	    path: notes.md
//
// Whole numbers decode as int, per yaml.v3; everything else matches the
// JSON value types.
type YAML struct{}

// NewYAML creates the YAML recognizer.
func NewYAML() *YAML {
	return &YAML{}
}

// Name identifies this recognizer in trace events.
func (r *YAML) Name() string {
	return "yaml"
}

// CanAttempt reports whether the text has a yaml fence or a top-level
// tool: line.
func (r *YAML) CanAttempt(text string) bool {
	return fencedYAMLRe.MatchString(text) || yamlToolLineRe.MatchString(text)
}

// Extract parses the fenced body when present, otherwise the whole text.
func (r *YAML) Extract(text string) []*intake.Invocation {
	if match := fencedYAMLRe.FindStringSubmatch(text); match != nil {
		text = match[1]
	}

	var doc any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil
	}
	switch v := doc.(type) {
	case map[string]any:
		call, err := Decode(v)
		if err != nil {
			return nil
		}
		return []*intake.Invocation{call}
	case []any:
		return decodeList(v)
	default:
		return nil
	}
}

// Guidance returns prompt text describing the YAML convention.
func (r *YAML) Guidance() string {
	var sb strings.Builder
	sb.WriteString("Call tools using YAML format:\n")
	sb.WriteString("tool: tool_name\n")
	sb.WriteString("args:\n")
	sb.WriteString("  param: value\n")
	sb.WriteString("\nFor multiple parallel calls, use a list:\n")
	sb.WriteString("- tool: tool1\n")
	sb.WriteString("  args:\n")
	sb.WriteString("    param: value\n")
	sb.WriteString("- tool: tool2\n")
	sb.WriteString("  args:\n")
	sb.WriteString("    param: value\n")
	sb.WriteString("\nFor strings with colons, quotes, or multiple lines, use double quotes.")
	return sb.String()
}

// Compile-time check that YAML implements intake.Recognizer.
var _ intake.Recognizer = (*YAML)(nil)
