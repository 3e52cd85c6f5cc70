package intake

import (
	"encoding/json"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// FromToolCalls converts native structured tool calls into invocations.
// Providers encode arguments as a JSON string; entries whose arguments do
// not decode to an object are skipped, and an empty or null arguments
// string counts as an empty object.
func FromToolCalls(calls []llms.ToolCall) []*Invocation {
	var result []*Invocation
	for _, call := range calls {
		inv, ok := fromFunctionCall(call.FunctionCall)
		if !ok {
			continue
		}
		result = append(result, inv)
	}
	return result
}

func fromFunctionCall(fc *llms.FunctionCall) (*Invocation, bool) {
	if fc == nil || strings.TrimSpace(fc.Name) == "" {
		return nil, false
	}
	args := map[string]any{}
	if raw := strings.TrimSpace(fc.Arguments); raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return nil, false
		}
		// A JSON null unmarshals the map back to nil.
		if args == nil {
			args = map[string]any{}
		}
	}
	return &Invocation{Name: strings.TrimSpace(fc.Name), Args: args}, true
}

// ParseChoice extracts invocations from one model content choice. Native
// structured tool calls take precedence; the textual content is parsed only
// when the native path yields nothing. Text extraction is the fallback layer
// for providers whose native tool calling is absent or broken.
func (p *Parser) ParseChoice(choice *llms.ContentChoice) []*Invocation {
	if choice == nil {
		return nil
	}
	if calls := FromToolCalls(choice.ToolCalls); len(calls) > 0 {
		return calls
	}
	if inv, ok := fromFunctionCall(choice.FuncCall); ok {
		return []*Invocation{inv}
	}
	return p.Parse(choice.Content)
}
