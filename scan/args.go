package scan

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Pair is one key/value argument split out of a call-style argument list.
// Raw holds the value text exactly as written, quotes included.
type Pair struct {
	Key string
	Raw string
}

// SplitArgs splits the interior of a call-style argument list (the text
// between the outer parentheses, not including them) into ordered key/value
// pairs. Commas inside {} or [] nesting, or inside single- or double-quoted
// strings, do not split. The key/value separator is the first colon at depth
// zero outside quotes.
//
// Pieces without such a colon, and pieces whose key is not a plain
// identifier, are dropped: they read like prose, not like arguments.
func SplitArgs(interior string) []Pair {
	pieces := splitTop(interior, ',')
	pairs := make([]Pair, 0, len(pieces))
	for _, piece := range pieces {
		key, raw, ok := splitKeyValue(piece)
		if !ok {
			continue
		}
		key = trimKey(key)
		if key == "" {
			continue
		}
		pairs = append(pairs, Pair{Key: key, Raw: strings.TrimSpace(raw)})
	}
	return pairs
}

// Coerce turns the raw text of one argument value into a typed value:
// quoted text becomes an unescaped string, array and object literals are
// parsed as JSON, true/false become booleans, numerals become float64, and
// anything else is returned as the raw string.
//
// The key parameter exists for one documented repair: an object literal that
// fails to parse under the edits key is handed to repairEditsBag before
// falling back to the raw text.
func Coerce(key, raw string) any {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ""
	case isQuoted(raw):
		return unquote(raw)
	case raw[0] == '[' && raw[len(raw)-1] == ']':
		var list []any
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return []any{}
		}
		return list
	case raw[0] == '{' && raw[len(raw)-1] == '}':
		var object map[string]any
		if err := json.Unmarshal([]byte(raw), &object); err == nil {
			return object
		}
		if key == editsKey {
			if repaired, ok := repairEditsBag(raw); ok {
				return repaired
			}
		}
		return raw
	case strings.EqualFold(raw, "true"):
		return true
	case strings.EqualFold(raw, "false"):
		return false
	default:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			// ParseFloat also accepts words like "inf"; keep those as text.
			return raw
		}
		return n
	}
}

// The edits argument is documented as a single-field object,
// {"content": "..."}, but some models emit it as a bag of unlabeled
// fragments instead. repairEditsBag rebuilds the documented shape from such
// a bag:
//
//	edits:{insert the header, "update the call site"}
//
// becomes {"content": "insert the header\nupdate the call site"}. Fragments
// are split on top-level commas, label prefixes are dropped, quotes are
// stripped, and the remainder is joined with newlines. This is an isolated,
// model-specific repair; delete it if the upstream behavior disappears.
const (
	editsKey   = "edits"
	editsField = "content"
)

func repairEditsBag(raw string) (map[string]any, bool) {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "{")
	body = strings.TrimSuffix(body, "}")

	var fragments []string
	for _, piece := range splitTop(body, ',') {
		if _, value, ok := splitKeyValue(piece); ok {
			piece = value
		}
		piece = strings.TrimSpace(piece)
		if isQuoted(piece) {
			piece = unquote(piece)
		}
		if piece == "" {
			continue
		}
		fragments = append(fragments, piece)
	}
	if len(fragments) == 0 {
		return nil, false
	}
	return map[string]any{editsField: strings.Join(fragments, "\n")}, true
}

// splitTop splits s on sep occurring at {}/[] depth zero outside quoted
// strings. A trailing separator does not produce an empty piece.
func splitTop(s string, sep byte) []string {
	var (
		pieces  []string
		begin   int
		depth   int
		quote   byte
		escaped bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
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
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case sep:
			if depth == 0 {
				pieces = append(pieces, s[begin:i])
				begin = i + 1
			}
		}
	}
	if begin < len(s) {
		pieces = append(pieces, s[begin:])
	}
	return pieces
}

// splitKeyValue splits one piece on its first colon at depth zero outside
// quotes. ok is false when the piece has no such colon.
func splitKeyValue(piece string) (key, raw string, ok bool) {
	var (
		depth   int
		quote   byte
		escaped bool
	)
	for i := 0; i < len(piece); i++ {
		c := piece[i]
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
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case ':':
			if depth == 0 {
				return piece[:i], piece[i+1:], true
			}
		}
	}
	return "", "", false
}

// trimKey strips whitespace and one layer of quotes, then requires the
// remainder to be identifier-like. Returns "" otherwise.
func trimKey(key string) string {
	key = strings.TrimSpace(key)
	if isQuoted(key) {
		key = key[1 : len(key)-1]
	}
	for i := 0; i < len(key); i++ {
		if !isKeyChar(key[i]) {
			return ""
		}
	}
	return key
}

func isKeyChar(c byte) bool {
	return c == '_' || c == '-' || c == '.' || c == '$' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0]
}

// unquote strips the outer quotes and resolves escape sequences. A
// double-quoted value is tried as a JSON string first so that \uXXXX and
// friends decode exactly; the manual path covers single quotes and values
// that are not valid JSON strings (raw newlines, stray escapes).
func unquote(raw string) string {
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			return s
		}
	}
	return unescape(raw[1 : len(raw)-1])
}

// unescape resolves the escape sequences models actually emit inside quoted
// argument values. Unknown escapes keep their backslash.
func unescape(body string) string {
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case '\'':
			sb.WriteByte('\'')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(body[i])
		}
	}
	return sb.String()
}
