package toc

import (
	"errors"
	"testing"
)

func TestParseUserToc(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		entries, report, err := ParseUserToc(`[
			{"title":"Intro","page":1,"level":1},
			{"title":"  Methods  ","page":"4","level":9}
		]`, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %v", entries)
		}
		if entries[1].Title != "Methods" || entries[1].Page != 4 || entries[1].Level != 6 {
			t.Errorf("coercion failed: %+v", entries[1])
		}
		if report.Input != 2 || report.Output != 2 {
			t.Errorf("report = %+v", report)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		_, _, err := ParseUserToc(`[{"title":`, 10)
		if !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("expected ErrInvalidJSON, got %v", err)
		}
	})

	t.Run("top level not an array", func(t *testing.T) {
		_, _, err := ParseUserToc(`{"title":"Intro","page":1,"level":1}`, 10)
		if !errors.Is(err, ErrNotArray) {
			t.Errorf("expected ErrNotArray, got %v", err)
		}
	})

	t.Run("broken entries dropped not fatal", func(t *testing.T) {
		entries, report, err := ParseUserToc(`[{"title":"Good","page":1,"level":1}, {"page":2}]`, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 || len(report.Rejected) != 1 {
			t.Errorf("expected 1 entry and 1 rejection, got %v / %v", entries, report.Rejected)
		}
	})
}
