package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/jackzampolin/outliner/internal/toc"
)

// OutlineWriter collects outline nodes and writes them into a PDF as
// bookmarks. It implements toc.OutlineSink; replay the built tree with
// toc.BindOutline, then call WriteFile.
type OutlineWriter struct {
	all   []*writerNode
	roots []*writerNode
}

type writerNode struct {
	title    string
	page     int // 0-based
	children []*writerNode
}

// NewOutlineWriter creates an empty writer.
func NewOutlineWriter() *OutlineWriter {
	return &OutlineWriter{}
}

// CreateOutlineNode records one node. The returned id is valid as a
// parent for later calls.
func (w *OutlineWriter) CreateOutlineNode(title string, page int, parent int) (int, error) {
	n := &writerNode{title: title, page: page}
	w.all = append(w.all, n)
	id := len(w.all) - 1

	if parent == toc.RootNode {
		w.roots = append(w.roots, n)
		return id, nil
	}
	if parent < 0 || parent >= id {
		return 0, fmt.Errorf("unknown parent node id %d", parent)
	}
	w.all[parent].children = append(w.all[parent].children, n)
	return id, nil
}

// Count returns the number of recorded nodes.
func (w *OutlineWriter) Count() int {
	return len(w.all)
}

// Bookmarks converts the recorded nodes into pdfcpu bookmarks, with
// 1-based page targets.
func (w *OutlineWriter) Bookmarks() []pdfcpu.Bookmark {
	return toBookmarks(w.roots)
}

func toBookmarks(nodes []*writerNode) []pdfcpu.Bookmark {
	if len(nodes) == 0 {
		return nil
	}
	bms := make([]pdfcpu.Bookmark, 0, len(nodes))
	for _, n := range nodes {
		bms = append(bms, pdfcpu.Bookmark{
			Title:    n.title,
			PageFrom: n.page + 1,
			Kids:     toBookmarks(n.children),
		})
	}
	return bms
}

// WriteFile writes the recorded bookmarks into a copy of inFile at
// outFile, replacing any existing outline.
func (w *OutlineWriter) WriteFile(inFile, outFile string) error {
	if len(w.roots) == 0 {
		return fmt.Errorf("no outline entries to write")
	}
	if err := api.AddBookmarksFile(inFile, outFile, w.Bookmarks(), true, nil); err != nil {
		return fmt.Errorf("failed to write bookmarks: %w", err)
	}
	return nil
}

// WriteOutline binds a built outline tree into a copy of inFile at
// outFile. The write is all-or-nothing: a binding error leaves the
// output file untouched.
func WriteOutline(inFile, outFile string, root *toc.OutlineNode) error {
	w := NewOutlineWriter()
	if err := toc.BindOutline(root, w); err != nil {
		return err
	}
	return w.WriteFile(inFile, outFile)
}

// Verify interface
var _ toc.OutlineSink = (*OutlineWriter)(nil)
