package recognize

import (
	"regexp"
	"strings"

	"github.com/rickchristie/intake"
)

var (
	commandAnyRe = regexp.MustCompile(
		`(?im)^[ \t]*(?:(?:create|edit|delete|read)[ \t]+(?:file|resource)|execute[ \t]+command|search)[ \t]*:`)
	commandVerbRe = regexp.MustCompile(
		`(?i)^(create|edit|delete|read)[ \t]+(?:file|resource)[ \t]*:[ \t]*(\S.*)$`)
	commandExecRe = regexp.MustCompile(
		`(?i)^execute[ \t]+command[ \t]*:[ \t]*(\S.*)$`)
	commandSearchRe = regexp.MustCompile(
		`(?i)^search[ \t]*:[ \t]*(\S.*)$`)
	commandWorkdirRe = regexp.MustCompile(
		`(?i)^working[ \t]+directory[ \t]*:[ \t]*(\S.*)$`)
	commandContentRe = regexp.MustCompile(
		`(?i)^content[ \t]*:[ \t]*$`)
)

var verbOperations = map[string]string{
	"create": "createResource",
	"edit":   "editResource",
	"delete": "deleteResource",
	"read":   "readResource",
}

// Command recognizes line-oriented verb commands:
//
//	Create File: notes/a.md
//	Content:
//	```
//	hello
//	```
//
//	Execute Command: go test ./...
//	Working Directory: /repo
//
//	Search: unfinished drafts
//
// Each verb line yields one invocation. The noun after create/edit/delete/
// read may be File or Resource. A Content marker and fenced body after a
// create or edit line becomes the content argument, verbatim.
type Command struct{}

// NewCommand creates the structured-line-command recognizer.
func NewCommand() *Command {
	return &Command{}
}

// Name identifies this recognizer in trace events.
func (r *Command) Name() string {
	return "command"
}

// CanAttempt reports whether any line starts with a verb phrase.
func (r *Command) CanAttempt(text string) bool {
	return commandAnyRe.MatchString(text)
}

// Extract walks the text line by line, one invocation per verb line.
func (r *Command) Extract(text string) []*intake.Invocation {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var calls []*intake.Invocation
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if m := commandVerbRe.FindStringSubmatch(line); m != nil {
			verb := strings.ToLower(m[1])
			args := map[string]any{"path": unquoteArg(m[2])}
			if verb == "create" || verb == "edit" {
				if body, next, ok := contentBody(lines, i+1); ok {
					args["content"] = body
					i = next
				}
			}
			calls = append(calls, &intake.Invocation{
				Name: verbOperations[verb],
				Args: args,
			})
			continue
		}

		if m := commandExecRe.FindStringSubmatch(line); m != nil {
			args := map[string]any{"command": unquoteArg(m[1])}
			if dir, next, ok := workingDirectory(lines, i+1); ok {
				args["workingDirectory"] = dir
				i = next
			}
			calls = append(calls, &intake.Invocation{
				Name: "executeCommand",
				Args: args,
			})
			continue
		}

		if m := commandSearchRe.FindStringSubmatch(line); m != nil {
			calls = append(calls, &intake.Invocation{
				Name: "searchResources",
				Args: map[string]any{"query": unquoteArg(m[1])},
			})
		}
	}
	return calls
}

// contentBody reads a Content marker and its fenced body starting at or after
// lines[from], skipping blank lines before the marker and between the marker
// and the fence. Body lines are kept verbatim. Returns the body, the index of
// the closing fence line, and whether a complete body was found. A fence that
// never closes is not a body.
func contentBody(lines []string, from int) (string, int, bool) {
	i := skipBlank(lines, from)
	if i >= len(lines) || !commandContentRe.MatchString(strings.TrimSpace(lines[i])) {
		return "", 0, false
	}
	i = skipBlank(lines, i+1)
	if i >= len(lines) || !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
		return "", 0, false
	}
	var body []string
	for j := i + 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == "```" {
			return strings.Join(body, "\n"), j, true
		}
		body = append(body, lines[j])
	}
	return "", 0, false
}

// workingDirectory reads a Working Directory line at or after lines[from],
// skipping blank lines. Returns the directory, the index of the matched line,
// and whether one was found.
func workingDirectory(lines []string, from int) (string, int, bool) {
	i := skipBlank(lines, from)
	if i >= len(lines) {
		return "", 0, false
	}
	m := commandWorkdirRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
	if m == nil {
		return "", 0, false
	}
	return unquoteArg(m[1]), i, true
}

func skipBlank(lines []string, from int) int {
	for from < len(lines) && strings.TrimSpace(lines[from]) == "" {
		from++
	}
	return from
}

// unquoteArg strips one layer of surrounding quotes from a line argument.
// Models quote paths and commands inconsistently.
func unquoteArg(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// Guidance returns prompt text describing the line command format.
func (r *Command) Guidance() string {
	var sb strings.Builder
	sb.WriteString("Issue commands one per line, verb first:\n")
	sb.WriteString("    Create File: notes/a.md\n")
	sb.WriteString("    Content:\n")
	sb.WriteString("    ```\n")
	sb.WriteString("    file body here\n")
	sb.WriteString("    ```\n")
	sb.WriteString("    Execute Command: ls -la\n")
	sb.WriteString("    Working Directory: /tmp\n")
	sb.WriteString("    Search: what to look for\n")
	sb.WriteString("Verbs: Create/Edit/Delete/Read File, Execute Command, Search.")
	return sb.String()
}

// Compile-time check that Command implements intake.Recognizer.
var _ intake.Recognizer = (*Command)(nil)
