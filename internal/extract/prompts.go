package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackzampolin/outliner/internal/toc"
)

// EntriesSchema is the structured-output schema for a TOC entry array,
// in the {"name","schema"} wrapper providers expect.
var EntriesSchema = json.RawMessage(`{
  "name": "toc_entries",
  "strict": true,
  "schema": {
    "type": "array",
    "items": {
      "type": "object",
      "required": ["title", "page", "level"],
      "additionalProperties": false,
      "properties": {
        "title": {"type": "string"},
        "page": {"type": "integer"},
        "level": {"type": "integer"}
      }
    }
  }
}`)

const textSystemPrompt = `You extract tables of contents from book front matter.
The user sends the raw text of one or more scanned pages. Find every
table-of-contents entry and return a JSON array of objects with exactly
these fields:
- "title": the section title as printed, without dot leaders
- "page": the printed page number as an integer, or -1 if unreadable
- "level": nesting depth from 1 (chapter) to 6

Return ONLY the JSON array. No markdown fences, no commentary. If the
pages contain no table of contents, return [].`

const imageSystemPrompt = `You extract tables of contents from book front matter.
The user sends page images together with the OCR text of the same
pages. Prefer the images when the text is garbled. Find every
table-of-contents entry and return a JSON array of objects with exactly
these fields:
- "title": the section title as printed, without dot leaders
- "page": the printed page number as an integer, or -1 if unreadable
- "level": nesting depth from 1 (chapter) to 6

Return ONLY the JSON array. No markdown fences, no commentary. If the
pages contain no table of contents, return [].`

// buildUserPrompt joins per-page texts under page banners so the model
// can attribute lines to pages. Page numbers start at r.Start.
func buildUserPrompt(r toc.PageRange, texts []string) string {
	var b strings.Builder
	b.WriteString("Extract the table of contents from the following pages.\n")
	for i, text := range texts {
		fmt.Fprintf(&b, "\n=== Page %d ===\n", r.Start+i)
		b.WriteString(strings.TrimRight(text, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}
