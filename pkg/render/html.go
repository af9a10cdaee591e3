package render

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/matzehuels/treeview/pkg/layout"
)

// StylesheetName is the shared stylesheet linked from every HTML document.
const StylesheetName = "BINTREEINITIALIZER.css"

const stylesheet = `.tree {
	position: relative;
	margin: 40px;
	font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif;
}
.circle {
	border-radius: 50%;
	display: inline-block;
	border: 1px solid black;
	background: white;
}
.node {
	position: absolute;
	box-sizing: border-box;
	text-align: center;
	overflow: hidden;
	white-space: nowrap;
	z-index: 1;
}
.node.root {
	border-width: 2px;
}
.line {
	position: absolute;
	height: 0;
	border-bottom: 1px solid black;
	transform-origin: 0 50%;
	z-index: 0;
}
.line.left {
	border-color: #2b6cb0;
}
.line.right {
	border-color: #c05621;
}
`

// HTMLOption configures an [HTML] renderer.
type HTMLOption func(*HTML)

// WithUnit sets the pixel size of one grid cell. Non-positive values keep
// the default.
func WithUnit(px int) HTMLOption {
	return func(h *HTML) { h.unit = unitOr(px) }
}

// WithInlineStyles embeds the stylesheet in each document. No shared asset
// is written.
func WithInlineStyles() HTMLOption {
	return func(h *HTML) { h.inline = true }
}

// HTML renders a standalone page of absolutely positioned circles joined by
// connector lines.
type HTML struct {
	unit   int
	inline bool
}

// NewHTML creates an HTML renderer.
func NewHTML(opts ...HTMLOption) *HTML {
	h := &HTML{unit: DefaultUnit}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HTML) Format() string { return FormatHTML }
func (h *HTML) Ext() string    { return ".html" }

// WriteAssets writes the shared stylesheet into dir once. An existing file
// is left alone, even if its content differs.
func (h *HTML) WriteAssets(dir string) error {
	if h.inline {
		return nil
	}
	path := filepath.Join(dir, StylesheetName)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat stylesheet: %w", err)
	}
	if err := os.WriteFile(path, []byte(stylesheet), 0644); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}

func (h *HTML) Render(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	h.begin(bw, doc)
	shift := colShift(doc.Layout)
	for _, ins := range doc.Layout.Instructions {
		h.draw(bw, ins, shift)
	}
	h.finish(bw)
	return bw.Flush()
}

func (h *HTML) begin(w io.Writer, doc Document) {
	fmt.Fprint(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprint(w, "<meta name=\"generator\" content=\"treeview\">\n")
	if doc.RunID != "" {
		fmt.Fprintf(w, "<meta name=\"treeview-run\" content=\"%s\">\n", html.EscapeString(doc.RunID))
	}
	fmt.Fprintf(w, "<title>%s</title>\n", html.EscapeString(doc.title()))
	if h.inline {
		fmt.Fprintf(w, "<style>\n%s</style>\n", stylesheet)
	} else {
		fmt.Fprintf(w, "<link rel=\"stylesheet\" type=\"text/css\" href=\"%s\">\n", StylesheetName)
	}
	fmt.Fprint(w, "</head>\n<body>\n")

	b := doc.Layout.Bounds
	width, height := 0, 0
	if !doc.Layout.Empty() {
		width = (b.MaxCol+colShift(doc.Layout))*h.unit + h.nodeSize()
		height = b.MaxRow*h.unit + h.nodeSize()
	}
	fmt.Fprintf(w, "<div class=\"tree\" style=\"width: %dpx; height: %dpx\">\n", width, height)
}

// draw emits one node and, for children, the line back to its parent.
func (h *HTML) draw(w io.Writer, ins layout.Instruction, shift int) {
	d := h.nodeSize()
	x, y := (ins.Pos.Col+shift)*h.unit, ins.Pos.Row*h.unit

	class := "node circle"
	if ins.Side == layout.Root {
		class += " root"
	}
	fmt.Fprintf(w, "<div id=\"%s\" class=\"%s\" style=\"left: %dpx; top: %dpx; width: %dpx; height: %dpx; line-height: %dpx\" title=\"%s\">%s</div>\n",
		ins.ID, class, x, y, d, d, d-2, html.EscapeString(ins.Label), html.EscapeString(ins.Label))

	if ins.Side == layout.Root {
		return
	}

	px, py := float64((ins.Parent.Col+shift)*h.unit+d/2), float64(ins.Parent.Row*h.unit+d/2)
	cx, cy := float64(x+d/2), float64(y+d/2)
	length := math.Hypot(cx-px, cy-py)
	angle := math.Atan2(cy-py, cx-px) * 180 / math.Pi
	fmt.Fprintf(w, "<div id=\"line-%d-%d\" class=\"line %s\" style=\"left: %.0fpx; top: %.0fpx; width: %.1fpx; transform: rotate(%.2fdeg)\"></div>\n",
		ins.Pos.Col, ins.Pos.Row, ins.Side, px, py, length, angle)
}

func (h *HTML) finish(w io.Writer) {
	fmt.Fprint(w, "</div>\n</body>\n</html>\n")
}

// nodeSize is the circle diameter: a little under one cell so adjacent
// rows never touch.
func (h *HTML) nodeSize() int {
	return h.unit * 4 / 5
}

var _ AssetWriter = (*HTML)(nil)
