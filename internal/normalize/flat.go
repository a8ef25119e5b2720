package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
)

// FlatArray describes an output of exactly Length strings.
type FlatArray struct {
	Length int
	// Filler pads the output when the model produced nothing usable.
	Filler string
}

var listMarker = regexp.MustCompile(`^[\d.\-*\s]+`)

// Normalize coerces raw model output into exactly Length strings.
//
// A JSON array is truncated, or padded by repeating its last element. A JSON
// null counts as an empty array. Anything else falls back to one item per
// non-empty line with list markers and surrounding quotes removed, padded
// with Filler.
func (s FlatArray) Normalize(raw string) []string {
	cleaned := StripFences(raw)

	if values, ok := decodeFlat(cleaned); ok {
		items := make([]string, 0, len(values))
		for _, v := range values {
			items = append(items, stringify(v, s.Filler))
		}
		return FitRepeat(items, s.Length, s.Filler)
	}

	return Fit(ExtractLines(cleaned, s.Length), s.Length, s.Filler)
}

// decodeFlat parses text as a JSON array. When the whole text is not JSON, an
// embedded array is accepted only if it sits on lines of its own or holds at
// least two strings or nulls, so bracketed fragments inside prose such as
// "[2]" leave the text to the line heuristic.
func decodeFlat(text string) ([]any, bool) {
	var values []any
	if err := json.Unmarshal([]byte(text), &values); err == nil {
		return values, true
	}

	segment, ok := extractBalanced(text, '[', ']')
	if !ok || segment == text {
		return nil, false
	}
	if err := json.Unmarshal([]byte(segment), &values); err != nil {
		return nil, false
	}
	if standsAlone(text, segment) || isStringList(values) {
		return values, true
	}
	return nil, false
}

// standsAlone reports whether segment occupies whole lines of text.
func standsAlone(text, segment string) bool {
	start := strings.Index(text, segment)
	if start < 0 {
		return false
	}
	before := text[:start]
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	after := text[start+len(segment):]
	if i := strings.IndexByte(after, '\n'); i >= 0 {
		after = after[:i]
	}
	return strings.TrimSpace(before) == "" && strings.TrimSpace(after) == ""
}

func isStringList(values []any) bool {
	if len(values) < 2 {
		return false
	}
	for _, v := range values {
		switch v.(type) {
		case string, nil:
		default:
			return false
		}
	}
	return true
}

// ExtractLines returns up to limit non-empty lines of text with leading list
// markers (digits, dots, dashes, asterisks) and surrounding quotes removed.
// A limit of zero or less returns every line.
func ExtractLines(text string, limit int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if limit > 0 && len(out) == limit {
			break
		}
		if cleaned := cleanLine(line); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func cleanLine(line string) string {
	line = listMarker.ReplaceAllString(line, "")
	line = strings.TrimSpace(line)
	line = trimQuote(line)
	return strings.TrimSpace(line)
}

// trimQuote removes at most one quote character from each end.
func trimQuote(s string) string {
	if s != "" && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if n := len(s); n > 0 && (s[n-1] == '"' || s[n-1] == '\'') {
		s = s[:n-1]
	}
	return s
}
