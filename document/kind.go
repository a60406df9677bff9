package document

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"pdfhtml/css"
	"pdfhtml/resolve"
	"pdfhtml/style"
)

// targetKind decides where resolved properties of the element go. List
// containers are recognized by their tag, the rest by display.
func targetKind(n *html.Node, m *style.Map) resolve.TargetKind {
	display := css.Keyword(m.Value(style.Display))
	switch display {
	case "list-item":
		return resolve.TargetKindListItem
	case "table", "inline-table":
		return resolve.TargetKindTable
	case "table-cell":
		return resolve.TargetKindCell
	case "inline-block", "inline-flex":
		return resolve.TargetKindInlineBlock
	case "", "inline":
		return resolve.TargetKindInline
	}
	switch n.DataAtom {
	case atom.Ul, atom.Ol, atom.Menu, atom.Dir:
		return resolve.TargetKindList
	}
	return resolve.TargetKindBlock
}

// isBlockLevel reports whether kind starts a new block formatting box
// stopping text rise of the enclosing inline element.
func isBlockLevel(kind resolve.TargetKind) bool {
	switch kind {
	case resolve.TargetKindInline, resolve.TargetKindInlineBlock:
		return false
	}
	return true
}
