package recognize

import (
	"testing"

	"github.com/rickchristie/intake"
)

func TestFenced_ToolBlockWithNamedPayload(t *testing.T) {
	r := NewFenced(intake.DefaultOperations())

	content := "Here you go.\n\n```tool\n" +
		`{"name": "searchResources", "call": {"query": "weather"}}` +
		"\n```\n"
	calls := r.Extract(content)
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Name != "searchResources" {
		t.Errorf("expected 'searchResources', got '%s'", calls[0].Name)
	}
	if calls[0].Args["query"] != "weather" {
		t.Errorf("expected query 'weather', got '%v'", calls[0].Args["query"])
	}
}

func TestFenced_ToolBlockInfersNameFromText(t *testing.T) {
	r := NewFenced(intake.DefaultOperations())

	content := "I will use readResource to open it.\n\n```tool\n" +
		`{"call": {"path": "notes/a.md"}}` +
		"\n```\n"
	calls := r.Extract(content)
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Name != "readResource" {
		t.Errorf("expected inferred name 'readResource', got '%s'", calls[0].Name)
	}
	if calls[0].Args["path"] != "notes/a.md" {
		t.Errorf("expected path 'notes/a.md', got '%v'", calls[0].Args["path"])
	}
}

func TestFenced_ToolBlockFallbackName(t *testing.T) {
	r := NewFenced(intake.DefaultOperations())

	content := "Running it now.\n\n```tool\n" +
		`{"call": {"cmd": "ls"}}` +
		"\n```\n"
	calls := r.Extract(content)
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Name != DefaultFallbackName {
		t.Errorf("expected fallback name '%s', got '%s'", DefaultFallbackName, calls[0].Name)
	}
}

func TestFenced_WithFallback(t *testing.T) {
	r := NewFenced(intake.NewOperationSet()).WithFallback("runShell")

	content := "```tool\n" + `{"call": {"cmd": "ls"}}` + "\n```"
	calls := r.Extract(content)
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Name != "runShell" {
		t.Errorf("expected 'runShell', got '%s'", calls[0].Name)
	}
}

func TestFenced_EarliestMentionWins(t *testing.T) {
	r := NewFenced(intake.DefaultOperations())

	content := "Use editResource, not deleteResource.\n\n```tool\n" +
		`{"call": {"path": "a.md"}}` +
		"\n```\n"
	calls := r.Extract(content)
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Name != "editResource" {
		t.Errorf("expected earliest mention 'editResource', got '%s'", calls[0].Name)
	}
}

func TestFenced_ToolBlockFullPayload(t *testing.T) {
	r := NewFenced(intake.DefaultOperations())

	content := "```tool\n" +
		`{"name": "readResource", "arguments": {"path": "a.md"}}` +
		"\n```"
	calls := r.Extract(content)
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Name != "readResource" {
		t.Errorf("expected 'readResource', got '%s'", calls[0].Name)
	}
	if calls[0].Args["path"] != "a.md" {
		t.Errorf("expected path 'a.md', got '%v'", calls[0].Args["path"])
	}
}

func TestFenced_MultipleToolBlocks(t *testing.T) {
	r := NewFenced(intake.DefaultOperations())

	content := "```tool\n" +
		`{"name": "readResource", "call": {"path": "a.md"}}` +
		"\n```\n\nand then\n\n```tool\n" +
		`{"name": "deleteResource", "call": {"path": "b.md"}}` +
		"\n```"
	calls := r.Extract(content)
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if calls[0].Name != "readResource" || calls[1].Name != "deleteResource" {
		t.Errorf("expected calls in document order, got '%s', '%s'",
			calls[0].Name, calls[1].Name)
	}
}

func TestFenced_JSONBlockFallback(t *testing.T) {
	r := NewFenced(intake.DefaultOperations())

	content := "Calling the tool:\n\n```json\n" +
		`{"name": "searchResources", "arguments": {"query": "drafts"}}` +
		"\n```\n"
	calls := r.Extract(content)
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Name != "searchResources" {
		t.Errorf("expected 'searchResources', got '%s'", calls[0].Name)
	}
}

func TestFenced_UntaggedBlockFallback(t *testing.T) {
	r := NewFenced(intake.DefaultOperations())

	content := "```\n" +
		`[{"name": "readResource", "arguments": {"path": "a.md"}}]` +
		"\n```"
	calls := r.Extract(content)
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
}

func TestFenced_NonPayloadBlocks(t *testing.T) {
	r := NewFenced(intake.DefaultOperations())

	content := "```go\nfunc main() {}\n```\n\nand\n\n```\nplain text\n```"
	if calls := r.Extract(content); calls != nil {
		t.Errorf("expected no calls from code blocks, got %d", len(calls))
	}
}

func TestFenced_CanAttempt(t *testing.T) {
	r := NewFenced(intake.DefaultOperations())

	if !r.CanAttempt("```json\n{}\n```") {
		t.Error("expected CanAttempt to accept fenced text")
	}
	if r.CanAttempt("no fences here") {
		t.Error("expected CanAttempt to reject fence-free text")
	}
}
