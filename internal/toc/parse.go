package toc

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Candidates is the pre-validation output of the response parser:
// decoded JSON array elements whose shape has not been checked yet.
// Items may be anything the model emitted; Validate sorts them out.
type Candidates []any

// objectGroupPattern matches one or more comma-joined {...} objects
// wrapped in [...]. Last-resort recovery when the payload is buried in
// prose that itself contains stray brackets.
var objectGroupPattern = regexp.MustCompile(`\[\s*\{[^}]*\}(?:\s*,\s*\{[^}]*\})*\s*\]`)

// ParseResponse turns free-form model output into candidate entries.
// Strategies are tried in order, first success wins:
//
//  1. strip a wrapping code fence and a leading language-tag line
//  2. parse the cleaned text directly as a JSON array
//  3. parse the substring between the first '[' and the last ']'
//  4. parse each regex-matched object group
//
// An unparseable response yields nil, never an error: the absence of a
// TOC is a degradation signal, not a fault.
func ParseResponse(text string) Candidates {
	clean := stripFence(strings.TrimSpace(text))
	clean = stripLanguageTag(clean)

	if items, ok := parseArray(clean); ok {
		return items
	}

	start := strings.Index(clean, "[")
	end := strings.LastIndex(clean, "]")
	if start != -1 && start < end {
		if items, ok := parseArray(clean[start : end+1]); ok {
			return items
		}
	}

	for _, match := range objectGroupPattern.FindAllString(clean, -1) {
		if items, ok := parseArray(match); ok {
			return items
		}
	}

	return nil
}

func parseArray(s string) (Candidates, bool) {
	var items []any
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, false
	}
	return items, true
}

// stripFence removes a wrapping markdown code fence. The opening fence
// line is always dropped; the closing fence only when present, so
// truncated responses still get a chance to parse.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.Contains(s, "\n") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) >= 3 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[1 : len(lines)-1]
	} else {
		lines = lines[1:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// stripLanguageTag drops a bare "json" marker line some models emit
// before the payload.
func stripLanguageTag(s string) string {
	for _, prefix := range []string{"json\n", "JSON\n"} {
		if strings.HasPrefix(s, prefix) {
			return strings.TrimSpace(s[len(prefix):])
		}
	}
	return s
}
