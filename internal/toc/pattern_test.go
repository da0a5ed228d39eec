package toc

import (
	"reflect"
	"testing"
)

func TestExtractPattern(t *testing.T) {
	t.Run("numbered line with dot leader", func(t *testing.T) {
		got := ExtractPattern("  2.1 Background ... 12", 0)
		want := []TocEntry{{Title: "Background", Page: 12, Level: 2}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("offset shifts the page", func(t *testing.T) {
		got := ExtractPattern("  2.1 Background ... 12", 3)
		if len(got) != 1 || got[0].Page != 15 {
			t.Errorf("expected page 15, got %v", got)
		}
	})

	t.Run("multi-line document sorted by page", func(t *testing.T) {
		got := ExtractPattern("1. Intro  1\n1.1 Scope  2\n2. Methods  10", 0)
		want := []TocEntry{
			{Title: "Intro", Page: 1, Level: 1},
			{Title: "Scope", Page: 2, Level: 2},
			{Title: "Methods", Page: 10, Level: 1},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("re-sorts out-of-order lines", func(t *testing.T) {
		got := ExtractPattern("2. Methods  10\n1. Intro  1", 0)
		if len(got) != 2 || got[0].Page != 1 || got[1].Page != 10 {
			t.Errorf("expected ascending pages, got %v", got)
		}
	})

	t.Run("indentation deepens un-numbered depth", func(t *testing.T) {
		got := ExtractPattern("1 Overview  1\n    2 Details  4", 0)
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %v", got)
		}
		if got[0].Level != 1 || got[1].Level != 2 {
			t.Errorf("expected levels [1 2], got [%d %d]", got[0].Level, got[1].Level)
		}
	})

	t.Run("indentation ignored when numbering sets depth", func(t *testing.T) {
		got := ExtractPattern("    2.1.3 Deep  7", 0)
		if len(got) != 1 || got[0].Level != 3 {
			t.Errorf("expected level 3 from numbering alone, got %v", got)
		}
	})

	t.Run("skips non-matching lines", func(t *testing.T) {
		text := "Table of Contents\n\n1. Intro  1\nAppendix follows\nNo page number here"
		got := ExtractPattern(text, 0)
		if len(got) != 1 || got[0].Title != "Intro" {
			t.Errorf("expected only Intro, got %v", got)
		}
	})

	t.Run("deduplicates repeated lines", func(t *testing.T) {
		got := ExtractPattern("1. Intro  1\n1. Intro  1", 0)
		if len(got) != 1 {
			t.Errorf("expected deduplicated single entry, got %v", got)
		}
	})

	t.Run("empty text yields nothing", func(t *testing.T) {
		if got := ExtractPattern("", 0); len(got) != 0 {
			t.Errorf("expected no entries, got %v", got)
		}
	})
}
