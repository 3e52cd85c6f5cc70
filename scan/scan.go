// Package scan implements the low-level text scanning shared by the format
// recognizers: balanced-span extraction, argument-list splitting, and value
// coercion.
//
// Every nesting-sensitive scan here is an explicit state machine with a depth
// counter and a quoted-string flag. Regular expressions cannot track
// arbitrary nesting, so none are used at this layer.
package scan

import "encoding/json"

// FirstSpan returns the first balanced {...} or [...] span in text that also
// parses as valid JSON. Brackets inside double-quoted strings do not affect
// nesting depth, and an escaped quote does not terminate a string.
//
// A balance that turns out not to be valid JSON (a stray closer in non-JSON
// content, for example) restarts the search at the next opener. The second
// return is false when no parseable span exists. That is a negative result,
// not an error: empty input, bracket-free input, and truncated streams all
// land here.
func FirstSpan(text string) (string, bool) {
	for start := indexOpener(text, 0); start >= 0; start = indexOpener(text, start+1) {
		end := closeSpan(text, start)
		if end < 0 {
			// This opener never closes; a later one still might.
			continue
		}
		candidate := text[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

// indexOpener returns the index of the first { or [ at or after from.
func indexOpener(s string, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			return i
		}
	}
	return -1
}

// closeSpan returns the index of the closer matching the opener at start,
// counting only the opener's own bracket family, or -1 when the span never
// closes. Quoted strings are skipped wholesale.
func closeSpan(s string, start int) int {
	opener := s[start]
	closer := byte('}')
	if opener == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = inString
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch c {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// MatchingParen returns the index of the ')' closing the '(' at open,
// ignoring parentheses inside single- or double-quoted strings, or -1 when
// the parenthesis never closes. Call-style argument values routinely contain
// source code, so quoted content must be skipped with the same care as in
// FirstSpan.
func MatchingParen(text string, open int) int {
	depth := 0
	var quote byte
	escaped := false
	for i := open; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		if quote != 0 {
			switch c {
			case '\\':
				escaped = true
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
