// Package main provides an interactive console for trying the
// extraction pipeline against pasted model output.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rickchristie/intake"
	"github.com/rickchristie/intake/recognize"
)

// ANSI color codes
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorWhite   = "\033[37m"
	colorBold    = "\033[1m"
	colorDim     = "\033[2m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	ops := intake.DefaultOperations()
	recognizers := recognize.Defaults(ops)

	var events []intake.TraceEvent
	parser := intake.NewParser(recognizers...).
		WithTrace(func(event intake.TraceEvent) {
			events = append(events, event)
		})

	rl, err := readline.New(colorCyan + "> " + colorReset)
	if err != nil {
		return fmt.Errorf(
			"failed to create readline: %w", err)
	}
	defer rl.Close()

	printBanner(recognizers, ops)

	for {
		text, err := readBlock(rl)
		if err != nil {
			if err == readline.ErrInterrupt ||
				err == io.EOF {
				fmt.Printf(
					"\n%sGoodbye!%s\n",
					colorGreen, colorReset)
				return nil
			}
			return fmt.Errorf(
				"failed to read input: %w", err)
		}

		switch strings.TrimSpace(text) {
		case "":
			continue
		case "q", "quit", "exit":
			fmt.Printf(
				"%sGoodbye!%s\n",
				colorGreen, colorReset)
			return nil
		case "help":
			printHelp()
			continue
		case "guidance":
			printGuidance(recognizers)
			continue
		}

		events = events[:0]
		calls := parser.Parse(text)
		printEvents(events)
		printCalls(calls)
	}
}

// readBlock reads one input block: lines accumulated until an empty
// line. A line that is a console command on its own returns
// immediately, so commands never need a terminating blank line.
func readBlock(rl *readline.Instance) (string, error) {
	first, err := rl.Readline()
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(first)
	if trimmed == "" || isCommand(trimmed) {
		return trimmed, nil
	}

	oldPrompt := rl.Config.Prompt
	rl.SetPrompt(colorDim + "... " + colorReset)
	defer rl.SetPrompt(oldPrompt)

	lines := []string{first}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Abandon the block, keep the session.
			return "", nil
		}
		if err != nil || strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func isCommand(line string) bool {
	switch line {
	case "q", "quit", "exit", "help", "guidance":
		return true
	}
	return false
}

func printBanner(
	recognizers []intake.Recognizer,
	ops intake.OperationSet,
) {
	fmt.Printf("%s%sExtraction Console%s\n",
		colorBold, colorYellow, colorReset)
	fmt.Printf("%s%s%s\n",
		colorYellow,
		strings.Repeat("=", 18),
		colorReset)

	names := make([]string, 0, len(recognizers))
	for _, r := range recognizers {
		names = append(names, r.Name())
	}
	fmt.Printf("%sRecognizers: %s%s\n",
		colorDim, strings.Join(names, ", "), colorReset)
	fmt.Printf("%sOperations:  %s%s\n",
		colorDim,
		strings.Join(ops.Names(), ", "),
		colorReset)
	fmt.Println()
	printHelp()
}

func printHelp() {
	fmt.Printf(
		"%sPaste model output, then press Enter on an "+
			"empty line to extract.%s\n",
		colorWhite, colorReset)
	fmt.Printf(
		"%sCommands: 'guidance' prints the prompt text "+
			"for every format, 'q' quits.%s\n",
		colorDim, colorReset)
	fmt.Println()
}

func printGuidance(recognizers []intake.Recognizer) {
	fmt.Printf("\n%s%sFormat Guidance:%s\n",
		colorBold, colorYellow, colorReset)
	fmt.Printf("%s%s%s\n",
		colorYellow,
		strings.Repeat("-", 16),
		colorReset)
	for _, r := range recognizers {
		guidance := r.Guidance()
		if guidance == "" {
			continue
		}
		fmt.Printf("%s[%s]%s\n%s\n\n",
			colorBlue, r.Name(), colorReset, guidance)
	}
}

// printEvents shows one line per recognizer attempt, in dispatch
// order.
func printEvents(events []intake.TraceEvent) {
	for _, event := range events {
		fmt.Printf("%s  [trace] %-16s %s%-4s%s %d%s\n",
			colorDim,
			event.Recognizer,
			colorMagenta, event.Source, colorDim,
			event.Count, colorReset)
	}
}

func printCalls(calls []*intake.Invocation) {
	if len(calls) == 0 {
		fmt.Printf("%sNo tool calls found.%s\n\n",
			colorYellow, colorReset)
		return
	}

	fmt.Printf("%s%s%d invocation(s):%s\n",
		colorBold, colorGreen, len(calls), colorReset)
	for i, call := range calls {
		fmt.Printf("  %s%d.%s %s%s%s %s%s%s\n",
			colorCyan, i+1, colorReset,
			colorWhite+colorBold, call.Name, colorReset,
			colorDim, formatArgs(call.Args), colorReset)
	}
	fmt.Println()
}

func formatArgs(args map[string]any) string {
	encoded, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("%v", args)
	}
	return string(encoded)
}
