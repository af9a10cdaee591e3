package render

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/treeview/pkg/cache"
	"github.com/matzehuels/treeview/pkg/observability"
)

// SVG renders the layout through Graphviz. The neato engine keeps every
// node on its pinned grid cell.
type SVG struct {
	cache cache.Cache
	unit  int
}

// NewSVG creates an SVG renderer. A nil cache disables caching.
func NewSVG(c cache.Cache, unit int) *SVG {
	if c == nil {
		c = cache.NullCache{}
	}
	return &SVG{cache: c, unit: unit}
}

func (s *SVG) Format() string { return FormatSVG }
func (s *SVG) Ext() string    { return ".svg" }

func (s *SVG) Render(w io.Writer, doc Document) error {
	return s.RenderContext(context.Background(), w, doc)
}

// RenderContext renders doc, giving up between steps once ctx is done.
// Graphviz itself runs to completion once started.
func (s *SVG) RenderContext(ctx context.Context, w io.Writer, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dot := ToDOT(doc, s.unit)
	key := cache.ArtifactKey(FormatSVG, dot)

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		_, err := w.Write(data)
		return err
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	svg, err := RenderDOT(ctx, dot)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.cache.Set(ctx, key, svg, 0); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(svg))
	}

	_, err = w.Write(svg)
	return err
}

// RenderDOT runs Graphviz source through the neato engine and returns SVG.
func RenderDOT(ctx context.Context, dot []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	gv.SetLayout(graphviz.NEATO)
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
