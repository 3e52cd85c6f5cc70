package recognize

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/rickchristie/intake"
	"github.com/rickchristie/intake/scan"
)

// Go's regexp has no backreferences, so every tag pair gets its own pattern
// instead of one <(\w+)>...</\1> catch-all.
var (
	xmlWrapperRes = []*regexp.Regexp{
		regexp.MustCompile(`(?si)<tool_call\b([^>]*)>(.*?)</tool_call>`),
		regexp.MustCompile(`(?si)<function_call\b([^>]*)>(.*?)</function_call>`),
	}
	xmlNameRes     = tagBodyRes("tool_name", "name", "tool")
	xmlArgsRes     = tagBodyRes("parameters", "arguments", "args")
	xmlNameAttrRe  = regexp.MustCompile(`(?i)\bname\s*=\s*"([^"]*)"`)
	xmlWrapperTags = []string{"<tool_call", "<function_call"}
)

func tagBodyRes(tags ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(tags))
	for i, tag := range tags {
		res[i] = regexp.MustCompile(`(?si)<` + tag + `>\s*(.*?)\s*</` + tag + `>`)
	}
	return res
}

// XMLTags recognizes XML-style markup:
//
//	<tool_call>
//	  <tool_name>readResource</tool_name>
//	  <parameters>{"path": "notes/a.md"}</parameters>
//	</tool_call>
//
// The wrapper may carry the name as an attribute instead of a child tag, or
// wrap a whole JSON payload. Name and parameters tags without any wrapper are
// also accepted, yielding a single invocation.
type XMLTags struct{}

// NewXMLTags creates the XML-style tag recognizer.
func NewXMLTags() *XMLTags {
	return &XMLTags{}
}

// Name identifies this recognizer in trace events.
func (r *XMLTags) Name() string {
	return "xml"
}

// CanAttempt reports whether the text contains a wrapper tag, or a name tag
// together with a parameters tag.
func (r *XMLTags) CanAttempt(text string) bool {
	lower := strings.ToLower(text)
	for _, open := range xmlWrapperTags {
		if strings.Contains(lower, open) {
			return true
		}
	}
	return hasAnyTag(lower, "tool_name", "name", "tool") &&
		hasAnyTag(lower, "parameters", "arguments", "args")
}

func hasAnyTag(lower string, tags ...string) bool {
	for _, tag := range tags {
		if strings.Contains(lower, "<"+tag+">") {
			return true
		}
	}
	return false
}

// Extract pulls one invocation out of each wrapper block, in order of
// appearance. Without wrappers the whole text is treated as one block, and
// then both a name tag and a parameters tag must be present.
func (r *XMLTags) Extract(text string) []*intake.Invocation {
	var calls []*intake.Invocation
	for _, m := range wrapperMatches(text) {
		calls = append(calls, extractWrapped(m)...)
	}
	if len(calls) > 0 {
		return calls
	}
	if inv := invocationFromTags("", text, true); inv != nil {
		return []*intake.Invocation{inv}
	}
	return nil
}

// tagMatch is one wrapper occurrence: its position, its attribute text, and
// its body.
type tagMatch struct {
	start int
	attrs string
	body  string
}

func wrapperMatches(text string) []tagMatch {
	var matches []tagMatch
	for _, re := range xmlWrapperRes {
		for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
			matches = append(matches, tagMatch{
				start: idx[0],
				attrs: text[idx[2]:idx[3]],
				body:  text[idx[4]:idx[5]],
			})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})
	return matches
}

func extractWrapped(m tagMatch) []*intake.Invocation {
	if inv := invocationFromTags(m.attrs, m.body, false); inv != nil {
		return []*intake.Invocation{inv}
	}
	// No child tags. The wrapper may hold a plain JSON payload instead.
	if span, ok := scan.FirstSpan(m.body); ok {
		return extractJSON(span)
	}
	return nil
}

// invocationFromTags assembles an invocation from a name attribute or name
// tag plus a parameters tag. With argsRequired a missing parameters tag is a
// failure; inside an explicit wrapper it just means no arguments.
func invocationFromTags(attrs, body string, argsRequired bool) *intake.Invocation {
	name := attrValue(attrs)
	if name == "" {
		name, _ = firstTag(body, xmlNameRes)
	}
	if name == "" {
		return nil
	}

	raw, found := firstTag(body, xmlArgsRes)
	if !found {
		if argsRequired {
			return nil
		}
		return &intake.Invocation{Name: name, Args: map[string]any{}}
	}
	args, ok := parseTagArgs(raw)
	if !ok {
		return nil
	}
	return &intake.Invocation{Name: name, Args: args}
}

func attrValue(attrs string) string {
	m := xmlNameAttrRe.FindStringSubmatch(attrs)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// firstTag returns the body of the first tag from res that matches, trying
// the patterns in order so that tool_name beats name.
func firstTag(body string, res []*regexp.Regexp) (string, bool) {
	for _, re := range res {
		if m := re.FindStringSubmatch(body); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// parseTagArgs parses a parameters tag body as a JSON object. An empty body
// is a call with no arguments. A body with prose around the object still
// parses through the span scan.
func parseTagArgs(raw string) (map[string]any, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}, true
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err == nil {
		return orEmpty(args), true
	}
	if span, ok := scan.FirstSpan(raw); ok && span[0] == '{' {
		if err := json.Unmarshal([]byte(span), &args); err == nil {
			return orEmpty(args), true
		}
	}
	return nil, false
}

// orEmpty replaces the nil map a JSON null decodes to.
func orEmpty(args map[string]any) map[string]any {
	if args == nil {
		return map[string]any{}
	}
	return args
}

// Guidance returns prompt text describing the XML tag convention.
func (r *XMLTags) Guidance() string {
	var sb strings.Builder
	sb.WriteString("Wrap each call in XML-style tags:\n")
	sb.WriteString("    <tool_call>\n")
	sb.WriteString("      <tool_name>readResource</tool_name>\n")
	sb.WriteString("      <parameters>{\"path\": \"notes/a.md\"}</parameters>\n")
	sb.WriteString("    </tool_call>")
	return sb.String()
}

// Compile-time check that XMLTags implements intake.Recognizer.
var _ intake.Recognizer = (*XMLTags)(nil)
