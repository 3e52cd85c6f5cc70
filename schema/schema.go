// Package schema builds and validates JSON Schemas for operation arguments.
//
// Extraction is schema-free: the parser reports what the model asked for,
// and the handler executing an operation decides whether the arguments are
// acceptable. This package covers that handler-side check:
//
//	var readArgs = schema.MustCompile(schema.Object(map[string]*schema.Property{
//	    "path": schema.String("Path to the resource"),
//	}, "path"))
//
//	func handleRead(call *intake.Invocation) error {
//	    if err := readArgs.Validate(call.Args); err != nil {
//	        return err // often fed back to the model verbatim
//	    }
//	    ...
//	}
//
// Raw returns the schema as a plain map for embedding in prompts or in a
// provider's native tool declaration.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a compiled argument schema: the raw map form for prompts and
// provider declarations, plus the compiled validator.
type Schema struct {
	raw      map[string]any
	compiled *jsonschema.Schema
}

// Raw returns the plain map form of the schema.
func (s *Schema) Raw() map[string]any {
	if s == nil {
		return nil
	}
	return s.raw
}

// Validate checks extracted arguments against the schema. Returns nil when
// they conform, or a *ValidationError describing the first failure. The
// message is written by the validator and reads well enough to feed back to
// a model as correction guidance.
func (s *Schema) Validate(args map[string]any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	if err := s.compiled.Validate(args); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// ValidationError wraps a JSON Schema validation failure.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("arguments do not match schema: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Compile compiles a raw schema map. Compile(nil) returns a nil Schema,
// which validates everything; an operation without a schema accepts any
// arguments.
func Compile(raw map[string]any) (*Schema, error) {
	if raw == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(encoded)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Schema{raw: raw, compiled: compiled}, nil
}

// MustCompile is Compile that panics on error, for schemas defined at
// package init.
func MustCompile(raw map[string]any) *Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Object builds an object schema from named properties. Trailing arguments
// name the required properties:
//
//	schema.Object(map[string]*schema.Property{
//	    "query": schema.String("What to search for"),
//	    "limit": schema.Integer("Max results").Min(1).Default(10),
//	}, "query")
func Object(properties map[string]*Property, required ...string) map[string]any {
	props := make(map[string]any, len(properties))
	for name, prop := range properties {
		props[name] = prop.build()
	}

	out := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

// Property is one argument in an operation's schema. Builders return the
// receiver for chaining.
type Property struct {
	typ         string
	description string
	enum        []any
	minimum     *float64
	maximum     *float64
	items       map[string]any
	def         any
}

func (p *Property) build() map[string]any {
	m := map[string]any{}
	if p.typ != "" {
		m["type"] = p.typ
	}
	if p.description != "" {
		m["description"] = p.description
	}
	if len(p.enum) > 0 {
		m["enum"] = p.enum
	}
	if p.minimum != nil {
		m["minimum"] = *p.minimum
	}
	if p.maximum != nil {
		m["maximum"] = *p.maximum
	}
	if p.items != nil {
		m["items"] = p.items
	}
	if p.def != nil {
		m["default"] = p.def
	}
	return m
}

// String declares a string argument:
//
//	schema.String("Path to the resource")
//	schema.String("Sort order").Enum("asc", "desc")
func String(description string) *Property {
	return &Property{typ: "string", description: description}
}

// Integer declares an integer argument. Extracted numbers arrive as float64
// or int depending on the source format; JSON Schema treats a whole-valued
// float as an integer, so both validate.
//
//	schema.Integer("Max results").Min(1).Max(100)
func Integer(description string) *Property {
	return &Property{typ: "integer", description: description}
}

// Number declares a numeric argument:
//
//	schema.Number("Relevance threshold").Min(0).Max(1)
func Number(description string) *Property {
	return &Property{typ: "number", description: description}
}

// Boolean declares a boolean argument:
//
//	schema.Boolean("Search recursively").Default(false)
func Boolean(description string) *Property {
	return &Property{typ: "boolean", description: description}
}

// Array declares an array argument with the given item schema:
//
//	schema.Array("Edit operations", schema.Object(map[string]*schema.Property{
//	    "content": schema.String("Replacement text"),
//	}))
func Array(description string, items map[string]any) *Property {
	return &Property{typ: "array", description: description, items: items}
}

// StringArray declares an array-of-strings argument, the most common list
// shape in operation arguments:
//
//	schema.StringArray("Tags to filter by")
func StringArray(description string) *Property {
	return Array(description, map[string]any{"type": "string"})
}

// Enum restricts the argument to the given values.
func (p *Property) Enum(values ...any) *Property {
	p.enum = values
	return p
}

// Min sets the minimum for integer and number arguments.
func (p *Property) Min(min float64) *Property {
	p.minimum = &min
	return p
}

// Max sets the maximum for integer and number arguments.
func (p *Property) Max(max float64) *Property {
	p.maximum = &max
	return p
}

// Default records the value a handler should assume when the argument is
// absent. JSON Schema does not apply defaults during validation; the value
// is carried in Raw for prompts and handlers.
func (p *Property) Default(value any) *Property {
	p.def = value
	return p
}
