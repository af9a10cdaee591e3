package viewer

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/launch"
	"github.com/matzehuels/treeview/pkg/layout"
	"github.com/matzehuels/treeview/pkg/observability"
	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/session"
	"github.com/matzehuels/treeview/pkg/tree"
)

// recorder is a launcher that remembers what it was asked to open.
type recorder struct {
	paths []string
	err   error
}

func (r *recorder) Open(path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

type failingStore struct{ session.MemoryStore }

func (failingStore) NextIndex(context.Context) (int, error) {
	return 0, stderrors.New("store offline")
}

func abc() *tree.Tree[string] {
	root := tree.New("A")
	root.SetLeft(tree.New("B"))
	root.SetRight(tree.New("C"))
	return root
}

func newViewer(t *testing.T, opts ...Option) (*Viewer, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]Option{WithDir(t.TempDir()), WithLauncher(rec)}, opts...)
	v, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v, rec
}

func nextIndex(t *testing.T, s session.Store) int {
	t.Helper()
	n, err := s.NextIndex(context.Background())
	if err != nil {
		t.Fatalf("NextIndex: %v", err)
	}
	return n
}

func TestViewNilRoot(t *testing.T) {
	v, rec := newViewer(t, WithStore(session.NewMemoryStore(1)))

	res, err := View[string](context.Background(), v, nil)
	if res != nil || err != nil {
		t.Fatalf("View(nil) = %v, %v; want nil, nil", res, err)
	}
	if len(rec.paths) != 0 {
		t.Error("nil tree should not launch anything")
	}
	if n := nextIndex(t, v.Store()); n != 1 {
		t.Errorf("index advanced to %d", n)
	}
	entries, _ := os.ReadDir(v.Dir())
	if len(entries) != 0 {
		t.Errorf("nil tree wrote %d files", len(entries))
	}
}

func TestViewScenario(t *testing.T) {
	ctx := context.Background()
	v, rec := newViewer(t, WithStore(session.NewMemoryStore(1)))

	res, err := View(ctx, v, abc())
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if res.Index != 1 {
		t.Errorf("Index = %d, want 1", res.Index)
	}
	if want := filepath.Join(v.Dir(), "BINTREE1.html"); res.Path != want {
		t.Errorf("Path = %q, want %q", res.Path, want)
	}
	if res.RunID == "" {
		t.Error("RunID is empty")
	}
	if len(rec.paths) != 1 || rec.paths[0] != res.Path {
		t.Errorf("launched %v, want [%s]", rec.paths, res.Path)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"node-3-0", "node-1-2", "node-5-2"} {
		if !strings.Contains(string(data), id) {
			t.Errorf("document missing %s", id)
		}
	}
	if !strings.Contains(string(data), res.RunID) {
		t.Error("document does not carry the run ID")
	}
	if _, err := os.Stat(filepath.Join(v.Dir(), render.StylesheetName)); err != nil {
		t.Errorf("stylesheet not written: %v", err)
	}

	again, err := View(ctx, v, abc())
	if err != nil {
		t.Fatalf("second View: %v", err)
	}
	if again.Index != 2 {
		t.Errorf("second Index = %d, want 2", again.Index)
	}
	if !reflect.DeepEqual(res.Layout, again.Layout) {
		t.Error("same tree produced different layouts")
	}
	if again.RunID == res.RunID {
		t.Error("run IDs should differ between calls")
	}
}

func TestViewSingleNode(t *testing.T) {
	v, _ := newViewer(t, WithStore(session.NewMemoryStore(1)))
	res, err := View(context.Background(), v, tree.New(42))
	if err != nil {
		t.Fatal(err)
	}
	if res.Layout.Len() != 1 || res.Layout.Root().Pos != (layout.Position{}) {
		t.Errorf("single node layout = %+v", res.Layout.Instructions)
	}
}

func TestViewContinuesFromDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"BINTREE3.html", "BINTREE7.html", "BINTREEx.html", "other.html"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	v, err := New(WithDir(dir), WithLauncher(launch.Noop{}))
	if err != nil {
		t.Fatal(err)
	}
	res, err := View(context.Background(), v, abc())
	if err != nil {
		t.Fatal(err)
	}
	if res.Index != 8 {
		t.Errorf("Index = %d, want 8", res.Index)
	}
	if filepath.Base(res.Path) != "BINTREE8.html" {
		t.Errorf("Path = %s, want BINTREE8.html", res.Path)
	}
}

func TestViewLaunchFailure(t *testing.T) {
	v, rec := newViewer(t, WithStore(session.NewMemoryStore(1)))
	rec.err = stderrors.New("no display")

	_, err := View(context.Background(), v, abc())
	if !errors.Is(err, errors.ErrCodeLaunch) {
		t.Fatalf("err = %v, want LAUNCH", err)
	}
	if n := nextIndex(t, v.Store()); n != 1 {
		t.Errorf("failed launch advanced index to %d", n)
	}

	rec.err = nil
	res, err := View(context.Background(), v, abc())
	if err != nil {
		t.Fatal(err)
	}
	if res.Index != 1 {
		t.Errorf("retry Index = %d, want 1", res.Index)
	}
}

func TestViewSessionFailure(t *testing.T) {
	v, rec := newViewer(t, WithStore(&failingStore{}))
	_, err := View(context.Background(), v, abc())
	if !errors.Is(err, errors.ErrCodeSession) {
		t.Fatalf("err = %v, want SESSION", err)
	}
	if len(rec.paths) != 0 {
		t.Error("launcher called after store failure")
	}
}

type brokenRenderer struct{ render.JSON }

func (brokenRenderer) Render(w io.Writer, doc render.Document) error {
	w.Write([]byte("partial"))
	return stderrors.New("disk full")
}

func TestViewRenderFailureRemovesFile(t *testing.T) {
	v, rec := newViewer(t, WithStore(session.NewMemoryStore(1)), WithRenderer(brokenRenderer{}))
	_, err := View(context.Background(), v, abc())
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Fatalf("err = %v, want RENDER", err)
	}
	if _, err := os.Stat(filepath.Join(v.Dir(), "BINTREE1.json")); !os.IsNotExist(err) {
		t.Error("partial file left behind")
	}
	if len(rec.paths) != 0 {
		t.Error("launcher called after render failure")
	}
}

func TestViewStylesheetWrittenOnce(t *testing.T) {
	v, _ := newViewer(t, WithStore(session.NewMemoryStore(1)))
	css := filepath.Join(v.Dir(), render.StylesheetName)

	if _, err := View(context.Background(), v, abc()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(css, []byte("/* edited */"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := View(context.Background(), v, abc()); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(css)
	if string(data) != "/* edited */" {
		t.Error("stylesheet was rewritten")
	}
}

func TestViewCanceled(t *testing.T) {
	v, rec := newViewer(t, WithStore(session.NewMemoryStore(1)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := View(ctx, v, abc()); !stderrors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(rec.paths) != 0 {
		t.Error("canceled view launched a file")
	}
}

// cancelingRenderer cancels the view's context mid-render and reports it
// when asked to render with that context.
type cancelingRenderer struct {
	render.JSON
	cancel context.CancelFunc
}

func (r cancelingRenderer) RenderContext(ctx context.Context, w io.Writer, doc render.Document) error {
	r.cancel()
	return ctx.Err()
}

func TestViewPassesContextToRenderer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	v, rec := newViewer(t, WithStore(session.NewMemoryStore(1)), WithRenderer(cancelingRenderer{cancel: cancel}))

	_, err := View(ctx, v, abc())
	if !stderrors.Is(err, context.Canceled) || !errors.Is(err, errors.ErrCodeRender) {
		t.Fatalf("err = %v, want RENDER wrapping context.Canceled", err)
	}
	if len(rec.paths) != 0 {
		t.Error("canceled render launched a file")
	}
	if n := nextIndex(t, v.Store()); n != 1 {
		t.Errorf("index advanced to %d after a canceled render", n)
	}
}

func TestViewSpreadTooDeep(t *testing.T) {
	root := tree.New(0)
	cur := root
	for i := 1; i <= layout.MaxSpreadHeight; i++ {
		cur.SetLeft(tree.New(i))
		cur = cur.Left()
	}

	v, rec := newViewer(t, WithStore(session.NewMemoryStore(1)), WithStrategy(layout.Spread))
	if _, err := View(context.Background(), v, root); !errors.Is(err, errors.ErrCodeInvalidTree) {
		t.Fatalf("err = %v, want INVALID_TREE", err)
	}
	if len(rec.paths) != 0 {
		t.Error("rejected tree was launched")
	}
	if n := nextIndex(t, v.Store()); n != 1 {
		t.Errorf("index = %d after rejection, want 1", n)
	}

	classic, _ := newViewer(t, WithStore(session.NewMemoryStore(1)))
	res, err := View(context.Background(), classic, root)
	if err != nil {
		t.Fatalf("classic view of a deep tree: %v", err)
	}
	if res.Layout.Bounds.MaxRow != layout.MaxSpreadHeight*layout.RowStep {
		t.Errorf("MaxRow = %d, want %d", res.Layout.Bounds.MaxRow, layout.MaxSpreadHeight*layout.RowStep)
	}
}

func TestViewRendererExtension(t *testing.T) {
	v, _ := newViewer(t, WithStore(session.NewMemoryStore(5)), WithRenderer(render.JSON{}), WithPrefix("TREE"))
	res, err := View(context.Background(), v, abc())
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(res.Path) != "TREE5.json" {
		t.Errorf("Path = %s, want TREE5.json", res.Path)
	}
	if _, err := os.Stat(filepath.Join(v.Dir(), render.StylesheetName)); !os.IsNotExist(err) {
		t.Error("JSON renderer should not write a stylesheet")
	}
}

func TestViewStrategy(t *testing.T) {
	v, _ := newViewer(t, WithStore(session.NewMemoryStore(1)), WithStrategy(layout.Spread))
	res, err := View(context.Background(), v, abc())
	if err != nil {
		t.Fatal(err)
	}
	if res.Layout.Strategy != layout.Spread || res.Layout.Root().Pos.Col != 2 {
		t.Errorf("layout = %v root %v, want spread root at col 2", res.Layout.Strategy, res.Layout.Root().Pos)
	}

	res, err = View(context.Background(), v, abc(), layout.WithStrategy[string](layout.Classic))
	if err != nil {
		t.Fatal(err)
	}
	if res.Layout.Strategy != layout.Classic {
		t.Error("per-call option should override the viewer strategy")
	}
}

func TestViewLogsOverlaps(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	v, _ := newViewer(t, WithStore(session.NewMemoryStore(1)), WithLogger(logger))

	root := tree.New(1)
	root.SetLeft(tree.New(2))
	root.SetRight(tree.New(3))
	root.Left().SetRight(tree.New(4))
	root.Right().SetLeft(tree.New(5))

	if _, err := View(context.Background(), v, root); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Nodes share grid cells") {
		t.Errorf("missing overlap warning in log:\n%s", buf.String())
	}
}

func TestNewInvalidPrefix(t *testing.T) {
	for _, prefix := range []string{"", "a/b", "TREE2"} {
		_, err := New(WithPrefix(prefix), WithLauncher(launch.Noop{}))
		if !errors.Is(err, errors.ErrCodeInvalidName) {
			t.Errorf("New(WithPrefix(%q)) err = %v, want INVALID_NAME", prefix, err)
		}
	}
}

type hookRecorder struct {
	observability.NoopViewHooks
	started, completed int
	lastIndex          int
	lastErr            error
}

func (h *hookRecorder) OnViewStart(context.Context, string, int) { h.started++ }
func (h *hookRecorder) OnViewComplete(_ context.Context, _ string, index int, _ time.Duration, err error) {
	h.completed++
	h.lastIndex = index
	h.lastErr = err
}

func TestViewHooks(t *testing.T) {
	h := &hookRecorder{}
	observability.SetViewHooks(h)
	defer observability.Reset()

	v, rec := newViewer(t, WithStore(session.NewMemoryStore(3)))
	if _, err := View(context.Background(), v, abc()); err != nil {
		t.Fatal(err)
	}
	if h.started != 1 || h.completed != 1 || h.lastIndex != 3 || h.lastErr != nil {
		t.Errorf("hooks = %+v", h)
	}

	rec.err = stderrors.New("boom")
	View(context.Background(), v, abc())
	if h.completed != 2 || !errors.Is(h.lastErr, errors.ErrCodeLaunch) {
		t.Errorf("failure not reported to hooks: %+v", h)
	}
}
