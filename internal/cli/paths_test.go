package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/treeview/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(custom, appName); dir != want {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, want)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := New(io.Discard, LogDebug)

	tests := []struct {
		name    string
		format  string
		noCache bool
		want    string
	}{
		{"svg", "svg", false, "file"},
		{"svg uppercase", "SVG", false, "file"},
		{"svg with --no-cache", "svg", true, "null"},
		{"html never cached", "html", false, "null"},
		{"json never cached", "json", false, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOutputOpts()
			o.format, o.noCache = tt.format, tt.noCache
			got := "null"
			if _, ok := c.newCache(&o).(*cache.FileCache); ok {
				got = "file"
			}
			if got != tt.want {
				t.Errorf("newCache(%s, noCache=%v) = %s cache, want %s", tt.format, tt.noCache, got, tt.want)
			}
		})
	}
}

func TestNewCacheUnusableDir(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CACHE_HOME", blocker)

	var buf bytes.Buffer
	c := New(&buf, LogDebug)
	o := defaultOutputOpts()
	o.format = "svg"
	if _, ok := c.newCache(&o).(cache.NullCache); !ok {
		t.Error("unusable cache dir should fall back to NullCache")
	}
	if !strings.Contains(buf.String(), "Render cache disabled") {
		t.Errorf("fallback not logged:\n%s", buf.String())
	}
}
