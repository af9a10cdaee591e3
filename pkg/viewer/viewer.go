package viewer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/launch"
	"github.com/matzehuels/treeview/pkg/layout"
	"github.com/matzehuels/treeview/pkg/observability"
	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/session"
	"github.com/matzehuels/treeview/pkg/tree"
)

// Result describes one produced document.
type Result struct {
	Index  int
	Path   string
	RunID  string
	Layout layout.Layout
}

// Viewer holds the collaborators for one output area. A Viewer serializes
// its own View calls; separate Viewers on the same directory are not
// coordinated.
type Viewer struct {
	mu sync.Mutex

	store    session.Store
	renderer render.Renderer
	launcher launch.Launcher
	logger   *log.Logger

	dir      string
	prefix   string
	naming   session.Naming
	strategy layout.Strategy
	title    string

	assetsWritten bool
}

// Option configures a [Viewer].
type Option func(*Viewer)

// WithStore sets the index store. The default is a [session.DirStore] on
// the output directory.
func WithStore(s session.Store) Option {
	return func(v *Viewer) { v.store = s }
}

// WithRenderer sets the renderer. The default is HTML with a shared
// stylesheet. The artifact extension follows the renderer.
func WithRenderer(r render.Renderer) Option {
	return func(v *Viewer) { v.renderer = r }
}

// WithLauncher sets what opens finished documents. The default is the
// system viewer; pass [launch.Noop] to only write files.
func WithLauncher(l launch.Launcher) Option {
	return func(v *Viewer) { v.launcher = l }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(v *Viewer) { v.logger = l }
}

// WithDir sets the output directory. It is created on first use.
func WithDir(dir string) Option {
	return func(v *Viewer) { v.dir = dir }
}

// WithPrefix sets the artifact name prefix. The default is "BINTREE".
func WithPrefix(prefix string) Option {
	return func(v *Viewer) { v.prefix = prefix }
}

// WithStrategy sets the layout strategy used unless a call overrides it.
func WithStrategy(s layout.Strategy) Option {
	return func(v *Viewer) { v.strategy = s }
}

// WithTitle sets a fixed document title. The default numbers documents
// by index.
func WithTitle(title string) Option {
	return func(v *Viewer) { v.title = title }
}

// New creates a Viewer. It fails with INVALID_NAME if the prefix and the
// renderer's extension do not form parseable file names.
func New(opts ...Option) (*Viewer, error) {
	v := &Viewer{
		dir:    ".",
		prefix: session.DefaultNaming.Prefix,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.renderer == nil {
		v.renderer = render.NewHTML()
	}
	if v.launcher == nil {
		v.launcher = launch.System{}
	}
	if v.logger == nil {
		v.logger = log.New(io.Discard)
	}
	if v.dir == "" {
		v.dir = "."
	}

	v.naming = session.Naming{Prefix: v.prefix, Ext: v.renderer.Ext()}
	if err := v.naming.Validate(); err != nil {
		return nil, err
	}
	if v.store == nil {
		v.store = session.NewDirStore(v.dir, v.naming)
	}
	return v, nil
}

// Dir returns the output directory.
func (v *Viewer) Dir() string { return v.dir }

// Naming returns how artifacts are named.
func (v *Viewer) Naming() session.Naming { return v.naming }

// Store returns the index store.
func (v *Viewer) Store() session.Store { return v.store }

// View renders root into the next numbered document and opens it.
//
// A nil root is a no-op: nothing is written and (nil, nil) is returned.
// Errors carry INVALID_TREE (a tree too tall for the viewer's [layout.Spread]
// strategy), SESSION, RENDER or LAUNCH codes; on any error the index is not
// recorded. ctx is checked before rendering and passed to renderers that
// implement [render.ContextRenderer].
func View[T any](ctx context.Context, v *Viewer, root *tree.Tree[T], opts ...layout.Option[T]) (res *Result, err error) {
	if root == nil {
		v.logger.Debug("Nothing to view: empty tree")
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	runID := uuid.NewString()
	logger := v.logger.With("run", runID[:8])
	hooks := observability.View()
	start := time.Now()
	hooks.OnViewStart(ctx, runID, root.Size())
	defer func() {
		idx := 0
		if res != nil {
			idx = res.Index
		}
		hooks.OnViewComplete(ctx, runID, idx, time.Since(start), err)
	}()

	if err := v.strategy.CheckHeight(root.MaxLeft()); err != nil {
		return nil, err
	}

	idx, err := v.store.NextIndex(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSession, err, "allocate output index")
	}
	observability.Session().OnIndexAssigned(ctx, idx)
	logger.Debug("Allocated index", "index", idx)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	layoutStart := time.Now()
	opts = append([]layout.Option[T]{layout.WithStrategy[T](v.strategy)}, opts...)
	l := layout.Compute(root, opts...)
	overlaps := l.Overlaps()
	hooks.OnLayoutComplete(ctx, l.Strategy.String(), l.Len(), len(overlaps), time.Since(layoutStart))
	if len(overlaps) > 0 {
		logger.Warn("Nodes share grid cells", "cells", len(overlaps), "first", overlaps[0], "strategy", l.Strategy)
	}

	path, err := v.write(ctx, render.Document{Title: v.title, Index: idx, RunID: runID, Layout: l})
	if err != nil {
		return nil, err
	}

	err = v.launcher.Open(path)
	hooks.OnLaunch(ctx, path, err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLaunch, err, "open %s", path)
	}

	if err := v.store.RecordUsed(ctx, idx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSession, err, "record index %d", idx)
	}
	observability.Session().OnIndexRecorded(ctx, idx)

	logger.Info("Rendered tree", "index", idx, "nodes", l.Len(), "path", path)
	return &Result{Index: idx, Path: path, RunID: runID, Layout: l}, nil
}

// write renders doc to its numbered file, creating shared assets first.
// A partially written file is removed.
func (v *Viewer) write(ctx context.Context, doc render.Document) (path string, err error) {
	if err := os.MkdirAll(v.dir, 0755); err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, err, "create output directory")
	}
	if err := v.writeAssets(); err != nil {
		return "", err
	}

	path = filepath.Join(v.dir, v.naming.FileName(doc.Index))
	start := time.Now()
	var size int64
	defer func() {
		observability.View().OnRenderComplete(ctx, v.renderer.Format(), path, size, time.Since(start), err)
	}()

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, err, "create %s", path)
	}
	if err := v.render(ctx, f, doc); err != nil {
		f.Close()
		os.Remove(path)
		return "", errors.Wrap(errors.ErrCodeRender, err, "render %s", v.renderer.Format())
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", errors.Wrap(errors.ErrCodeRender, err, "write %s", path)
	}

	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	return path, nil
}

func (v *Viewer) render(ctx context.Context, w io.Writer, doc render.Document) error {
	if cr, ok := v.renderer.(render.ContextRenderer); ok {
		return cr.RenderContext(ctx, w, doc)
	}
	return v.renderer.Render(w, doc)
}

func (v *Viewer) writeAssets() error {
	if v.assetsWritten {
		return nil
	}
	if aw, ok := v.renderer.(render.AssetWriter); ok {
		if err := aw.WriteAssets(v.dir); err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "write assets")
		}
	}
	v.assetsWritten = true
	return nil
}

var (
	defaultOnce   sync.Once
	defaultViewer *Viewer
	defaultErr    error
)

// Default returns the process-wide Viewer used by [Show]: HTML output in
// the working directory, opened with the system viewer.
func Default() (*Viewer, error) {
	defaultOnce.Do(func() {
		defaultViewer, defaultErr = New()
	})
	return defaultViewer, defaultErr
}

// Show views root with the [Default] Viewer.
func Show[T any](root *tree.Tree[T]) (*Result, error) {
	v, err := Default()
	if err != nil {
		return nil, fmt.Errorf("default viewer: %w", err)
	}
	return View(context.Background(), v, root)
}
