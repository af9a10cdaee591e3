package render

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/matzehuels/treeview/pkg/cache"
	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/layout"
)

// Supported output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// Formats lists every supported format, primary first.
var Formats = []string{FormatHTML, FormatSVG, FormatDOT, FormatJSON}

// Document is everything a renderer needs to produce one artifact.
type Document struct {
	Title  string
	Index  int
	RunID  string
	Layout layout.Layout
}

// Renderer turns a laid-out tree into a document.
type Renderer interface {
	// Format returns the format name, e.g. "html".
	Format() string
	// Ext returns the file extension including the dot, e.g. ".html".
	Ext() string
	// Render writes the complete document to w.
	Render(w io.Writer, doc Document) error
}

// ContextRenderer is implemented by renderers whose work can be canceled.
// Callers holding a context should prefer RenderContext over Render.
type ContextRenderer interface {
	RenderContext(ctx context.Context, w io.Writer, doc Document) error
}

// AssetWriter is implemented by renderers whose documents reference shared
// files. WriteAssets creates them in dir unless they already exist.
type AssetWriter interface {
	WriteAssets(dir string) error
}

// Config carries the knobs [New] passes on to the renderer it builds.
type Config struct {
	// Unit is the pixel size of one grid cell (html, svg, dot).
	Unit int
	// Inline embeds the stylesheet instead of linking a shared file (html).
	Inline bool
	// Cache stores graphviz output between runs (svg). Nil disables caching.
	Cache cache.Cache
}

// New builds the renderer for a format name.
func New(format string, cfg Config) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatHTML, "":
		opts := []HTMLOption{WithUnit(cfg.Unit)}
		if cfg.Inline {
			opts = append(opts, WithInlineStyles())
		}
		return NewHTML(opts...), nil
	case FormatSVG:
		return NewSVG(cfg.Cache, cfg.Unit), nil
	case FormatDOT:
		return DOT{Unit: cfg.Unit}, nil
	case FormatJSON:
		return JSON{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat,
		"unknown format %q (must be one of %s)", format, strings.Join(Formats, ", "))
}

// ValidateFormat checks a format name without building a renderer.
func ValidateFormat(format string) error {
	if format == "" || slices.Contains(Formats, strings.ToLower(format)) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat,
		"unknown format %q (must be one of %s)", format, strings.Join(Formats, ", "))
}

// DefaultUnit is the pixel size of one grid cell.
const DefaultUnit = 75

func unitOr(u int) int {
	if u <= 0 {
		return DefaultUnit
	}
	return u
}

// title returns the document title, falling back to a numbered default.
func (d Document) title() string {
	if d.Title != "" {
		return d.Title
	}
	if d.Index > 0 {
		return fmt.Sprintf("Binary Tree Viewer #%d", d.Index)
	}
	return "Binary Tree Viewer"
}

// colShift is added to every column so the leftmost node starts at 0.
func colShift(l layout.Layout) int {
	return -min(0, l.Bounds.MinCol)
}
