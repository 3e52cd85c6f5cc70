// Package intake extracts canonical tool invocations from free-form LLM
// output.
//
// Models asked to call tools respond in whatever textual convention they
// were trained toward: bare JSON, fenced code blocks, YAML, direct call
// expressions, XML-style tags, line-oriented commands, bracket-tagged
// arrays. intake recognizes all of them behind one call and returns a
// uniform result, so the embedding application never branches on format:
//
//	calls := parser.Parse(modelOutput)
//	for _, call := range calls {
//	    dispatch(call.Name, call.Args)
//	}
//
// # Quick Start
//
// Build a parser from the default recognizer chain and feed it model
// output:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/rickchristie/intake"
//	    "github.com/rickchristie/intake/recognize"
//	)
//
//	func main() {
//	    ops := intake.DefaultOperations()
//	    parser := intake.NewParser(recognize.Defaults(ops)...)
//
//	    output := "I'll search for that.\n\n" +
//	        "```json\n" +
//	        `{"name": "searchResources", "arguments": {"query": "weather in tokyo"}}` +
//	        "\n```"
//
//	    for _, call := range parser.Parse(output) {
//	        fmt.Printf("%s(%v)\n", call.Name, call.Args)
//	    }
//	}
//
// Parse returns the empty list when the text contains no tool call. That is
// the normal outcome for plain prose, not an error: the embedder treats it
// as "the model just talked".
//
// # Recognizers and Dispatch
//
// Each textual convention has one [Recognizer] in the recognize package,
// answering two questions: could this text be my format (CanAttempt), and
// what invocations does it hold (Extract). The [Parser] tries the chain in
// priority order, twice: first against the text's balanced JSON span, which
// strips surrounding prose for the JSON-oriented recognizers, then against
// the raw text for the recognizers that handle prose themselves. The first
// recognizer to produce invocations wins.
//
// The allow-list of operation names ([OperationSet]) is configuration, not
// a global: it gates the direct-call recognizer and names the candidates
// for fenced-payload name inference. Extend it before building the chain:
//
//	ops := intake.DefaultOperations()
//	ops["deployService"] = true
//	parser := intake.NewParser(recognize.Defaults(ops)...)
//
// A custom chain is just a different argument list; recognizers are
// independent and stateless:
//
//	parser := intake.NewParser(
//	    recognize.NewBare(),
//	    recognize.NewCall(ops),
//	)
//
// # Streaming
//
// Streamed output arrives in deltas, and a payload is extractable only once
// its closing delimiter has arrived. [Accumulator] buffers deltas and
// re-parses on demand:
//
//	acc := intake.NewAccumulator(parser)
//	for delta := range stream {
//	    acc.Add(delta)
//	}
//	calls := acc.Invocations()
//
// Truncated payloads yield nothing rather than a partial invocation.
//
// # Native Tool Calls
//
// Providers with structured tool calling return calls alongside text.
// [Parser.ParseChoice] prefers the structured route and falls back to text
// extraction, so the same handling covers both kinds of provider:
//
//	resp, _ := model.GenerateContent(ctx, messages)
//	calls := parser.ParseChoice(resp.Choices[0])
//
// # Validating Arguments
//
// Extraction is schema-free: it reports what the model asked for, and the
// handler that executes an operation decides whether the arguments are
// acceptable. The schema package wraps JSON Schema validation for that
// handler-side check:
//
//	readArgs := schema.MustCompile(schema.Object(map[string]*schema.Property{
//	    "path": schema.String("Path to the resource"),
//	}, "path"))
//	if err := readArgs.Validate(call.Args); err != nil {
//	    // reject, or feed the error back to the model
//	}
//
// # Tracing
//
// For visibility into why an input did or did not parse, install a trace
// callback; each recognizer attempt reports its name, which pass it ran in,
// and how many invocations it produced. [TraceHub] carries the events to a
// consumer goroutine without slowing Parse down:
//
//	hub := intake.NewTraceHub()
//	parser.WithTrace(hub.Send)
package intake
