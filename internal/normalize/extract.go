// Package normalize repairs free-text model output into fixed-shape values.
// Every function here is total: malformed input yields a conforming value,
// never an error.
package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fencePattern matches a code fence marker, optionally followed by a language
// tag. "json" is recognised inline; other tags only when a newline follows.
var fencePattern = regexp.MustCompile("(?i)```(?:json\\b|[\\w+-]*[ \\t]*\\r?\\n)?")

// StripFences removes code fence markers and surrounding whitespace.
func StripFences(raw string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(raw, ""))
}

// extractBalanced returns the first balanced segment delimited by open and
// close, skipping delimiters inside JSON strings.
func extractBalanced(text string, open, close rune) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escape := false
	for i, r := range text {
		if start == -1 {
			if r == open {
				start = i
				depth = 1
				inString = false
				escape = false
			}
			continue
		}
		if inString {
			if escape {
				escape = false
				continue
			}
			if r == '\\' {
				escape = true
				continue
			}
			if r == '"' {
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return strings.TrimSpace(text[start : i+1]), true
			}
		}
	}
	return "", false
}

// decodeEmbedded unmarshals text into v, retrying on the first balanced
// open/close segment when the whole text is not valid JSON.
func decodeEmbedded(text string, open, close rune, v any) bool {
	if err := json.Unmarshal([]byte(text), v); err == nil {
		return true
	}
	segment, ok := extractBalanced(text, open, close)
	if !ok || segment == text {
		return false
	}
	return json.Unmarshal([]byte(segment), v) == nil
}

// stringify converts a decoded JSON value to a string. Null becomes nullAs.
func stringify(v any, nullAs string) string {
	switch val := v.(type) {
	case nil:
		return nullAs
	case string:
		return val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return nullAs
		}
		return string(b)
	}
}

// Fit truncates items to n or pads them with filler up to n.
func Fit(items []string, n int, filler string) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, 0, n)
	for _, item := range items {
		if len(out) == n {
			break
		}
		out = append(out, item)
	}
	for len(out) < n {
		out = append(out, filler)
	}
	return out
}

// FitRepeat truncates items to n or pads them by repeating the last item.
// An empty input is padded with filler.
func FitRepeat(items []string, n int, filler string) []string {
	pad := filler
	if len(items) > 0 {
		pad = items[len(items)-1]
	}
	return Fit(items, n, pad)
}
