// Package recognize implements the format recognizers: one extraction
// strategy per textual convention a model may use to request a tool call.
//
// Recognizers are independent, stateless, and side-effect free. Defaults
// returns the full chain in dispatch priority order for intake.NewParser;
// the individual constructors are exported for embedders that want a
// narrower or reordered chain.
package recognize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rickchristie/intake"
)

// Field spellings accepted when decoding a payload map. Models label the
// same two fields differently, so all observed spellings are read.
var (
	nameFields = []string{"name", "tool", "tool_name"}
	argsFields = []string{"arguments", "parameters", "args", "params"}
)

// Decode converts one payload map into an invocation. The payload must
// carry a non-empty name under one of the accepted name spellings, and an
// arguments field under one of the accepted argument spellings holding
// either an object or a string that itself decodes to an object (providers
// sometimes double-encode arguments).
//
// Decode is the strict inner layer: recognizers convert its errors into
// skipped elements, and tests check causes with errors.Is against the
// intake sentinels.
func Decode(payload map[string]any) (*intake.Invocation, error) {
	var name string
	for _, field := range nameFields {
		if value, ok := payload[field].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				name = trimmed
				break
			}
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w: accepted spellings are %s",
			intake.ErrMissingName, strings.Join(nameFields, ", "))
	}

	for _, field := range argsFields {
		value, ok := payload[field]
		if !ok {
			continue
		}
		args, err := decodeArgs(value)
		if err != nil {
			return nil, err
		}
		return &intake.Invocation{Name: name, Args: args}, nil
	}
	return nil, fmt.Errorf("%w: accepted spellings are %s",
		intake.ErrMissingArgs, strings.Join(argsFields, ", "))
}

// decodeArgs normalizes an arguments value to a map.
func decodeArgs(value any) (map[string]any, error) {
	switch v := value.(type) {
	case map[string]any:
		return v, nil
	case nil:
		return map[string]any{}, nil
	case string:
		// The double-encoding repair: a JSON object serialized into a
		// string.
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return map[string]any{}, nil
		}
		var args map[string]any
		if err := json.Unmarshal([]byte(trimmed), &args); err != nil {
			return nil, fmt.Errorf("%w: %v", intake.ErrInvalidArgs, err)
		}
		if args == nil {
			args = map[string]any{}
		}
		return args, nil
	default:
		return nil, fmt.Errorf("%w: got %T", intake.ErrInvalidArgs, value)
	}
}

// decodeList converts an array payload into invocations. Elements that do
// not decode are skipped on their own, so one malformed entry does not
// discard the batch.
func decodeList(elements []any) []*intake.Invocation {
	var calls []*intake.Invocation
	for _, element := range elements {
		payload, ok := element.(map[string]any)
		if !ok {
			continue
		}
		call, err := Decode(payload)
		if err != nil {
			continue
		}
		calls = append(calls, call)
	}
	return calls
}
