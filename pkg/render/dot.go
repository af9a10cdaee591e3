package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/matzehuels/treeview/pkg/layout"
)

// DOT renders the layout as Graphviz source. Every node is pinned to its
// grid cell with pos="x,y!", so engines that honour pinning (neato, fdp)
// reproduce the grid instead of computing their own placement.
type DOT struct {
	// Unit is the distance in points between adjacent grid cells.
	Unit int
}

func (d DOT) Format() string { return FormatDOT }
func (d DOT) Ext() string    { return ".dot" }

func (d DOT) Render(w io.Writer, doc Document) error {
	_, err := w.Write(ToDOT(doc, d.Unit))
	return err
}

// ToDOT returns the Graphviz source for doc. Grid rows grow downward while
// Graphviz y grows upward, so rows are negated.
func ToDOT(doc Document, unit int) []byte {
	unit = unitOr(unit)
	shift := colShift(doc.Layout)

	var buf bytes.Buffer
	buf.WriteString("digraph BinaryTree {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", doc.title())
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontname=\"Helvetica\", fontsize=14, fixedsize=true, width=0.8];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	for _, ins := range doc.Layout.Instructions {
		attrs := fmt.Sprintf("label=%q, pos=\"%d,%d!\"", ins.Label, (ins.Pos.Col+shift)*unit, -ins.Pos.Row*unit)
		if ins.Side == layout.Root {
			attrs += ", penwidth=2"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", ins.ID, attrs)
	}

	buf.WriteString("\n")
	for _, ins := range doc.Layout.Instructions {
		if ins.Side == layout.Root {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [class=%q];\n", layout.NodeID(ins.Parent), ins.ID, ins.Side.String())
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}
