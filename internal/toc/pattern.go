package toc

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// tocLinePattern matches numbered TOC lines of the form
//
//	<indent><numbering> <title> <page>
//
// where numbering is one or more dot-separated integer groups with an
// optional trailing dot ("2", "2.", "2.1", "2.1.3") and page is a
// trailing integer.
var tocLinePattern = regexp.MustCompile(`^(\s*)([0-9]+(?:\.[0-9]+)*)\.?\s+(.+?)\s+([0-9]+)\s*$`)

// indentPerLevel is the indentation heuristic: every 4 leading spaces
// push an un-numbered-depth line one level deeper.
const indentPerLevel = 4

// ExtractPattern is the last-resort extractor: no model, pure
// line-oriented regex matching. Non-matching lines are skipped
// silently. The result is deduplicated and sorted by ascending page —
// the only tier that re-sorts, because line-scan order is unreliable
// on multi-column or OCR-mangled pages.
func ExtractPattern(text string, offset int) []TocEntry {
	var entries []TocEntry

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := tocLinePattern.FindStringSubmatch(strings.TrimRight(line, " \t\r"))
		if m == nil {
			continue
		}
		indent, numbering, title, pageStr := m[1], m[2], m[3], m[4]

		level := strings.Count(numbering, ".") + 1
		if indent != "" && level == 1 {
			level += len(indent) / indentPerLevel
		}

		page, err := strconv.Atoi(pageStr)
		if err != nil {
			continue
		}

		entries = append(entries, TocEntry{
			Title: trimDotLeader(title),
			Page:  page + offset,
			Level: ClampLevel(level),
		})
	}

	entries = Dedupe(entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Page < entries[j].Page
	})
	return entries
}

// trimDotLeader strips the dotted fill between a title and its page
// number ("Background ...." -> "Background").
func trimDotLeader(title string) string {
	return strings.TrimRight(strings.TrimSpace(title), ".·… \t")
}
