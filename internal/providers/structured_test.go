package providers

import (
	"encoding/json"
	"testing"
)

func TestParseStructured(t *testing.T) {
	const payload = `[{"title":"Intro","page":1,"level":1}]`
	// ParseStructured re-marshals, which sorts object keys.
	const normalized = `[{"level":1,"page":1,"title":"Intro"}]`

	cases := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"clean array", payload, normalized, false},
		{"fenced", "```json\n" + payload + "\n```", normalized, false},
		{"surrounded by prose", "Here you go:\n" + payload + "\nDone.", normalized, false},
		{"clean object", `{"ok":true}`, `{"ok":true}`, false},
		{"empty", "", "", true},
		{"prose only", "no structured data here", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStructured(tc.content)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestValidateStructured(t *testing.T) {
	schema := json.RawMessage(`{
		"name": "toc_entries",
		"schema": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title", "page", "level"],
				"properties": {
					"title": {"type": "string"},
					"page": {"type": "integer"},
					"level": {"type": "integer"}
				}
			}
		}
	}`)

	t.Run("conforming document", func(t *testing.T) {
		doc := json.RawMessage(`[{"title":"Intro","page":1,"level":1}]`)
		if err := ValidateStructured(schema, doc); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		doc := json.RawMessage(`[{"title":"Intro","page":1}]`)
		if err := ValidateStructured(schema, doc); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("wrong top-level shape", func(t *testing.T) {
		doc := json.RawMessage(`{"title":"Intro","page":1,"level":1}`)
		if err := ValidateStructured(schema, doc); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("empty schema is a no-op", func(t *testing.T) {
		if err := ValidateStructured(nil, json.RawMessage(`[1,2]`)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
