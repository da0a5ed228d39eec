package toc

import (
	"reflect"
	"testing"
)

func candidate(title any, page any, level any) map[string]any {
	return map[string]any{"title": title, "page": page, "level": level}
}

func TestValidate_PerItemRules(t *testing.T) {
	t.Run("drops non-object items", func(t *testing.T) {
		got, report := Validate(Candidates{"just a string", 42.0, candidate("Intro", 1.0, 1.0)}, 10)
		if len(got) != 1 || got[0].Title != "Intro" {
			t.Fatalf("expected only Intro to survive, got %v", got)
		}
		if len(report.Rejected) != 2 {
			t.Errorf("expected 2 rejections, got %v", report.Rejected)
		}
	})

	t.Run("drops items missing fields", func(t *testing.T) {
		got, _ := Validate(Candidates{
			map[string]any{"title": "No page", "level": 1.0},
			map[string]any{"page": 3.0, "level": 1.0},
			candidate("Complete", 3.0, 1.0),
		}, 10)
		if len(got) != 1 || got[0].Title != "Complete" {
			t.Errorf("expected only the complete item, got %v", got)
		}
	})

	t.Run("coerces numeric-string and float pages", func(t *testing.T) {
		got, _ := Validate(Candidates{
			candidate("A", "7", 1.0),
			candidate("B", 8.0, 1.0),
			candidate("C", "9.0", 1.0),
		}, 10)
		if len(got) != 3 {
			t.Fatalf("expected 3 entries, got %v", got)
		}
		for i, want := range []int{7, 8, 9} {
			if got[i].Page != want {
				t.Errorf("entry %d page = %d, want %d", i, got[i].Page, want)
			}
		}
	})

	t.Run("drops non-coercible page", func(t *testing.T) {
		got, report := Validate(Candidates{candidate("A", "twelve", 1.0)}, 10)
		if len(got) != 0 {
			t.Errorf("expected no entries, got %v", got)
		}
		if len(report.Rejected) != 1 {
			t.Errorf("expected a rejection, got %v", report.Rejected)
		}
	})

	t.Run("unknown page always survives range check", func(t *testing.T) {
		got, _ := Validate(Candidates{candidate("Unknown", -1.0, 2.0)}, 5)
		if len(got) != 1 || got[0].Page != PageUnknown {
			t.Fatalf("expected PageUnknown to survive, got %v", got)
		}
	})

	t.Run("drops out-of-range pages", func(t *testing.T) {
		got, _ := Validate(Candidates{
			candidate("Zero", 0.0, 1.0),
			candidate("Beyond", 11.0, 1.0),
			candidate("Last", 10.0, 1.0),
		}, 10)
		if len(got) != 1 || got[0].Title != "Last" {
			t.Errorf("expected only Last, got %v", got)
		}
	})

	t.Run("trims and requires title", func(t *testing.T) {
		got, _ := Validate(Candidates{
			candidate("  padded  ", 1.0, 1.0),
			candidate("   ", 2.0, 1.0),
		}, 10)
		if len(got) != 1 || got[0].Title != "padded" {
			t.Errorf("expected trimmed 'padded' only, got %v", got)
		}
	})

	t.Run("clamps level into 1..6", func(t *testing.T) {
		got, _ := Validate(Candidates{
			candidate("Low", 1.0, 0.0),
			candidate("High", 2.0, 12.0),
			candidate("Stringy", 3.0, "3"),
		}, 10)
		if len(got) != 3 {
			t.Fatalf("expected 3 entries, got %v", got)
		}
		for i, want := range []int{1, 6, 3} {
			if got[i].Level != want {
				t.Errorf("entry %d level = %d, want %d", i, got[i].Level, want)
			}
		}
	})
}

func TestValidate_Dedup(t *testing.T) {
	t.Run("first occurrence wins", func(t *testing.T) {
		got, report := Validate(Candidates{
			candidate("Intro", 1.0, 1.0),
			candidate("Intro", 1.0, 2.0), // duplicate key, different level
			candidate("Intro", 2.0, 1.0), // same title, different page
		}, 10)
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %v", got)
		}
		if got[0].Level != 1 {
			t.Errorf("first occurrence should win, got level %d", got[0].Level)
		}
		if report.Output != 2 {
			t.Errorf("report output = %d, want 2", report.Output)
		}
	})

	t.Run("idempotent on clean input", func(t *testing.T) {
		first, _ := Validate(Candidates{
			candidate("A", 1.0, 1.0),
			candidate("B", 2.0, 2.0),
			candidate("C", 3.0, 1.0),
		}, 10)

		again := make(Candidates, 0, len(first))
		for _, e := range first {
			again = append(again, candidate(e.Title, float64(e.Page), float64(e.Level)))
		}
		second, _ := Validate(again, 10)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("revalidation changed the list: %v vs %v", first, second)
		}
	})
}

func TestApplyOffset(t *testing.T) {
	t.Run("shifts resolved pages only", func(t *testing.T) {
		entries := []TocEntry{
			{Title: "A", Page: 3, Level: 1},
			{Title: "B", Page: PageUnknown, Level: 1},
		}
		ApplyOffset(entries, 12)
		if entries[0].Page != 15 {
			t.Errorf("expected page 15, got %d", entries[0].Page)
		}
		if entries[1].Page != PageUnknown {
			t.Errorf("unknown page must not shift, got %d", entries[1].Page)
		}
	})

	t.Run("offset then validate matches shifted-bounds validate", func(t *testing.T) {
		raw := []TocEntry{
			{Title: "A", Page: 1, Level: 1},
			{Title: "B", Page: 5, Level: 2},
			{Title: "C", Page: 9, Level: 1},
		}
		const offset, maxPages = 3, 10

		shifted := make([]TocEntry, len(raw))
		copy(shifted, raw)
		ApplyOffset(shifted, offset)
		got, _ := Finalize(shifted, maxPages)

		// Equivalent: validate with bounds shifted by -offset, then add
		// the offset back to survivors.
		want, _ := Finalize(append([]TocEntry(nil), raw...), maxPages-offset)
		ApplyOffset(want, offset)

		if !reflect.DeepEqual(got, want) {
			t.Errorf("offset equivalence broken: %v vs %v", got, want)
		}
	})
}
