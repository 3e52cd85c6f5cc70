package recognize

import "github.com/rickchristie/intake"

// Defaults returns the full recognizer chain in priority order, ready for
// intake.NewParser. Specific, hard-to-false-positive shapes come first and
// the loosest shape, the direct call, comes near the end:
//
//	parser := intake.NewParser(recognize.Defaults(intake.DefaultOperations())...)
//
// The order is a documented tie-break for text that matches several shapes at
// once, not a guarantee of a unique parse.
func Defaults(ops intake.OperationSet) []intake.Recognizer {
	return []intake.Recognizer{
		NewCommand(),
		NewFenced(ops),
		NewYAML(),
		NewStringified(),
		NewBare(),
		NewTagged(),
		NewCall(ops),
		NewXMLTags(),
	}
}
