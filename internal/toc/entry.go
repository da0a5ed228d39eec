// Package toc holds the table-of-contents data model and the
// extraction pipeline primitives: response parsing, candidate
// validation, the regex fallback extractor and the outline builder.
package toc

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// PageUnknown marks an entry whose page number could not be resolved.
	PageUnknown = -1

	// MinLevel and MaxLevel bound outline depth. Levels outside the
	// range are clamped, never dropped.
	MinLevel = 1
	MaxLevel = 6
)

// TocEntry is one table-of-contents row. Entries are value objects;
// (Title, Page) is the identity used for deduplication. Slice order is
// document order and determines outline nesting.
type TocEntry struct {
	Title string `json:"title"`
	Page  int    `json:"page"`
	Level int    `json:"level"`
}

// Key returns the deduplication key for the entry.
func (e TocEntry) Key() EntryKey {
	return EntryKey{Title: e.Title, Page: e.Page}
}

// EntryKey identifies an entry for deduplication purposes.
type EntryKey struct {
	Title string
	Page  int
}

// PageRange is a 1-based inclusive page span within a document.
type PageRange struct {
	Start int
	End   int
}

func (r PageRange) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Pages returns the number of pages covered by the range.
func (r PageRange) Pages() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// ParseRanges parses a comma-separated range list like "2-4,7" into
// 1-based inclusive page ranges, preserving input order.
func ParseRanges(s string) ([]PageRange, error) {
	var ranges []PageRange
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		start, end, ok := strings.Cut(part, "-")
		from, err := strconv.Atoi(strings.TrimSpace(start))
		if err != nil {
			return nil, fmt.Errorf("invalid page range %q: %w", part, err)
		}
		thru := from
		if ok {
			thru, err = strconv.Atoi(strings.TrimSpace(end))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q: %w", part, err)
			}
		}
		if from < 1 || thru < from {
			return nil, fmt.Errorf("invalid page range %q: start must be >= 1 and end >= start", part)
		}
		ranges = append(ranges, PageRange{Start: from, End: thru})
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("no page ranges in %q", s)
	}
	return ranges, nil
}

// Strategy identifies which extraction tier produced a result. It is
// recorded for logging and telemetry only; correctness never depends
// on it.
type Strategy int

const (
	// StrategyNone means no tier produced any entries.
	StrategyNone Strategy = iota
	// StrategyImageAssisted is the multimodal prompt tier.
	StrategyImageAssisted
	// StrategyTextOnly is the text-only prompt tier.
	StrategyTextOnly
	// StrategyPattern is the regex fallback tier.
	StrategyPattern
)

func (s Strategy) String() string {
	switch s {
	case StrategyImageAssisted:
		return "image-assisted"
	case StrategyTextOnly:
		return "text-only"
	case StrategyPattern:
		return "pattern"
	default:
		return "none"
	}
}

// ExtractionResult is the outcome of one extraction job: the merged,
// validated entries plus the most degraded strategy that contributed.
type ExtractionResult struct {
	Entries  []TocEntry `json:"entries"`
	Strategy Strategy   `json:"-"`
}

// Found reports whether the job produced any entries.
func (r *ExtractionResult) Found() bool {
	return r != nil && len(r.Entries) > 0
}
