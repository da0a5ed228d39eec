package api

import (
	"strings"
	"testing"
)

func TestFormatter(t *testing.T) {
	data := map[string]any{"title": "Intro", "page": 1}

	t.Run("json", func(t *testing.T) {
		var buf strings.Builder
		if err := NewFormatter("json").Fprint(&buf, data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{`"title": "Intro"`, `"page": 1`} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("json output missing %q:\n%s", want, buf.String())
			}
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf strings.Builder
		if err := NewFormatter("yaml").Fprint(&buf, data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"title: Intro", "page: 1"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("yaml output missing %q:\n%s", want, buf.String())
			}
		}
	})

	t.Run("unknown format falls back to yaml", func(t *testing.T) {
		if got := NewFormatter("xml").Format(); got != FormatYAML {
			t.Errorf("format = %s, want yaml", got)
		}
	})
}
