package toc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rejected records a candidate that failed validation, with the first
// rule it broke. Collected for diagnostics; rejection never aborts the
// batch.
type Rejected struct {
	Index  int
	Reason string
}

// Report summarizes a validation pass for logging. It never alters
// behavior.
type Report struct {
	Input    int
	Coerced  int
	Output   int
	Rejected []Rejected
}

// Validate cleans a candidate list against the document's page count:
// shape checks, field coercion, range checks, then (Title, Page)
// deduplication keeping the first occurrence. Survivor order is
// preserved.
func Validate(candidates Candidates, maxPages int) ([]TocEntry, Report) {
	entries, rejected := Coerce(candidates)
	final, report := Finalize(entries, maxPages)
	report.Input = len(candidates)
	report.Rejected = append(rejected, report.Rejected...)
	return final, report
}

// Coerce applies the per-item rules in order, dropping failures:
// the item must be a JSON object carrying title, page and level; page
// must coerce to an integer (PageUnknown passes untouched); title must
// be non-empty after trimming; level coerces and clamps to
// [MinLevel, MaxLevel]. Range checks happen later, in Finalize, after
// any page offset has been applied.
func Coerce(candidates Candidates) ([]TocEntry, []Rejected) {
	var entries []TocEntry
	var rejected []Rejected

	reject := func(idx int, format string, args ...any) {
		rejected = append(rejected, Rejected{Index: idx, Reason: fmt.Sprintf(format, args...)})
	}

	for idx, item := range candidates {
		obj, ok := item.(map[string]any)
		if !ok {
			reject(idx, "not an object (%T)", item)
			continue
		}

		rawTitle, hasTitle := obj["title"]
		rawPage, hasPage := obj["page"]
		rawLevel, hasLevel := obj["level"]
		if !hasTitle || !hasPage || !hasLevel {
			reject(idx, "missing required field")
			continue
		}

		page, ok := coerceInt(rawPage)
		if !ok {
			reject(idx, "page %v is not an integer", rawPage)
			continue
		}

		title, ok := coerceTitle(rawTitle)
		if !ok {
			reject(idx, "title %v is not text", rawTitle)
			continue
		}
		if title == "" {
			reject(idx, "empty title")
			continue
		}

		level, ok := coerceInt(rawLevel)
		if !ok {
			reject(idx, "level %v is not an integer", rawLevel)
			continue
		}

		entries = append(entries, TocEntry{
			Title: title,
			Page:  page,
			Level: ClampLevel(level),
		})
	}

	return entries, rejected
}

// Finalize range-checks coerced entries and deduplicates on
// (Title, Page), first occurrence wins. PageUnknown always survives
// the range check.
func Finalize(entries []TocEntry, maxPages int) ([]TocEntry, Report) {
	report := Report{Input: len(entries)}

	var inRange []TocEntry
	for idx, e := range entries {
		if e.Page != PageUnknown && (e.Page < 1 || e.Page > maxPages) {
			report.Rejected = append(report.Rejected, Rejected{
				Index:  idx,
				Reason: fmt.Sprintf("page %d outside 1..%d", e.Page, maxPages),
			})
			continue
		}
		inRange = append(inRange, e)
	}
	report.Coerced = len(inRange)

	final := Dedupe(inRange)
	report.Output = len(final)
	return final, report
}

// Dedupe removes duplicate (Title, Page) entries keeping the first
// occurrence and the relative order of survivors.
func Dedupe(entries []TocEntry) []TocEntry {
	if len(entries) == 0 {
		return entries
	}
	seen := make(map[EntryKey]struct{}, len(entries))
	unique := make([]TocEntry, 0, len(entries))
	for _, e := range entries {
		key := e.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, e)
	}
	return unique
}

// ApplyOffset shifts every resolved page number by offset. Unresolved
// (PageUnknown) pages pass through untouched. The caller must apply
// an offset exactly once per entry, before range validation.
func ApplyOffset(entries []TocEntry, offset int) {
	if offset == 0 {
		return
	}
	for i := range entries {
		if entries[i].Page != PageUnknown {
			entries[i].Page += offset
		}
	}
}

// ClampLevel bounds a level to [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// coerceInt converts JSON-decoded scalars to int. Float-like values
// truncate; numeric strings are accepted.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// coerceTitle converts a JSON-decoded value to a trimmed string.
// Numeric titles (a chapter named "42") stringify; composites do not.
func coerceTitle(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
