package toc

import "log/slog"

// OutlineNode is one node of the bookmark tree. Children are
// exclusively owned by their parent and appear in document order.
type OutlineNode struct {
	Entry    TocEntry
	Children []*OutlineNode
}

// Count returns the number of entries in the subtree, excluding the
// virtual root itself.
func (n *OutlineNode) Count() int {
	if n == nil {
		return 0
	}
	total := 0
	for _, c := range n.Children {
		total += 1 + c.Count()
	}
	return total
}

// BuildOutline nests a flat, level-tagged, page-ordered entry sequence
// into a bookmark tree. The returned node is a virtual root whose
// children are the top-level entries.
//
// Parent selection tracks the most recently emitted node per level:
// each entry attaches under the latest node at the greatest level
// strictly below its own, or under the root when there is none. Level
// jumps therefore never reject an entry — a level-3 entry directly
// after a level-1 attaches under that level-1.
//
// Entries whose page does not resolve to a 0-based index inside
// [0, numPages) are skipped with a diagnostic and never become a
// potential parent; this also drops PageUnknown entries, which have
// no target to point at.
func BuildOutline(entries []TocEntry, numPages int, logger *slog.Logger) *OutlineNode {
	root := &OutlineNode{}
	lastAtLevel := make(map[int]*OutlineNode, MaxLevel)

	for _, e := range entries {
		target := e.Page - 1
		if target < 0 || target >= numPages {
			if logger != nil {
				logger.Warn("skipping outline entry with unresolvable page",
					"title", e.Title,
					"page", e.Page,
					"num_pages", numPages)
			}
			continue
		}

		parent := root
		for level := e.Level - 1; level >= MinLevel; level-- {
			if n, ok := lastAtLevel[level]; ok {
				parent = n
				break
			}
		}

		node := &OutlineNode{Entry: e}
		parent.Children = append(parent.Children, node)
		lastAtLevel[e.Level] = node
	}

	return root
}

// OutlineSink receives outline nodes in document (preorder) order.
// Implementations typically write into a document's navigation
// structure. Page numbers are 0-based; parent is the id returned for
// the parent node, or RootNode for top-level entries.
type OutlineSink interface {
	CreateOutlineNode(title string, page int, parent int) (int, error)
}

// RootNode is the parent id for top-level outline entries.
const RootNode = -1

// BindOutline walks the tree in preorder and replays it into the sink.
// The first sink error aborts the walk: outline writes are
// all-or-nothing at the caller's boundary.
func BindOutline(root *OutlineNode, sink OutlineSink) error {
	if root == nil {
		return nil
	}
	return bindChildren(root.Children, RootNode, sink)
}

func bindChildren(nodes []*OutlineNode, parent int, sink OutlineSink) error {
	for _, n := range nodes {
		id, err := sink.CreateOutlineNode(n.Entry.Title, n.Entry.Page-1, parent)
		if err != nil {
			return err
		}
		if err := bindChildren(n.Children, id, sink); err != nil {
			return err
		}
	}
	return nil
}
