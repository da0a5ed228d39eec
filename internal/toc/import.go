package toc

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidJSON reports a user-supplied TOC that is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotArray reports a user-supplied TOC whose top level is not an
	// array of entries.
	ErrNotArray = errors.New("not a JSON array")
)

// ParseUserToc parses a user-supplied TOC document — a JSON array of
// {title, page, level} objects — and runs it through standard
// validation against the document's page count. Malformed input is the
// only error path here; individually broken entries are dropped like
// any other candidate batch.
func ParseUserToc(jsonText string, maxPages int) ([]TocEntry, Report, error) {
	var decoded any
	if err := json.Unmarshal([]byte(jsonText), &decoded); err != nil {
		return nil, Report{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	items, ok := decoded.([]any)
	if !ok {
		return nil, Report{}, fmt.Errorf("%w: got %T", ErrNotArray, decoded)
	}

	entries, report := Validate(Candidates(items), maxPages)
	return entries, report, nil
}
