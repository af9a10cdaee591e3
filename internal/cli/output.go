package cli

import (
	"os"

	"github.com/spf13/cobra"

	treeerrors "github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/launch"
	"github.com/matzehuels/treeview/pkg/layout"
	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/session"
	"github.com/matzehuels/treeview/pkg/viewer"
)

// outputOpts holds the flags shared by every command that produces documents.
type outputOpts struct {
	dir         string // output directory
	format      string // html, svg, dot or json
	prefix      string // artifact name prefix
	layout      string // classic or spread
	unit        int    // pixels per grid cell
	inline      bool   // embed the stylesheet in each HTML page
	noOpen      bool   // write files without launching a viewer
	noCache     bool   // skip the graphviz render cache
	start       int    // fixed first index; bypasses the directory scan
	redisAddr   string // shared index counter
	redisPrefix string // key prefix for the shared counter
}

func defaultOutputOpts() outputOpts {
	return outputOpts{
		dir:         ".",
		format:      render.FormatHTML,
		prefix:      session.DefaultNaming.Prefix,
		layout:      layout.Classic.String(),
		unit:        render.DefaultUnit,
		redisPrefix: session.DefaultRedisPrefix,
	}
}

func addOutputFlags(cmd *cobra.Command, opts *outputOpts) {
	addNamingFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.layout, "layout", opts.layout, "layout strategy: classic (default), spread")
	cmd.Flags().IntVar(&opts.unit, "unit", opts.unit, "pixels per grid cell")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "embed the stylesheet instead of linking it")
	cmd.Flags().BoolVar(&opts.noOpen, "no-open", false, "write the document without opening it")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the SVG render cache")
	cmd.Flags().IntVar(&opts.start, "start", 0, "use this index instead of scanning the output directory")
	addSessionFlags(cmd, opts)
}

// addNamingFlags registers the flags that decide where artifacts live and
// what they are called.
func addNamingFlags(cmd *cobra.Command, opts *outputOpts) {
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", opts.dir, "output directory")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: html (default), svg, dot, json")
	cmd.Flags().StringVar(&opts.prefix, "prefix", opts.prefix, "artifact file name prefix")
}

// addSessionFlags registers the flags that locate the index counter.
func addSessionFlags(cmd *cobra.Command, opts *outputOpts) {
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "share the index counter through this Redis server (host:port)")
	cmd.Flags().StringVar(&opts.redisPrefix, "redis-prefix", opts.redisPrefix, "Redis key prefix")
}

// merge fills every flag the user did not set from the config file, then
// from the environment.
func (o *outputOpts) merge(cmd *cobra.Command, cfg fileConfig) {
	set := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f == nil || f.Changed
	}
	if !set("dir") && cfg.Dir != "" {
		o.dir = cfg.Dir
	}
	if !set("format") && cfg.Format != "" {
		o.format = cfg.Format
	}
	if !set("prefix") && cfg.Prefix != "" {
		o.prefix = cfg.Prefix
	}
	if !set("layout") && cfg.Layout != "" {
		o.layout = cfg.Layout
	}
	if !set("unit") && cfg.Unit > 0 {
		o.unit = cfg.Unit
	}
	if !set("inline") && cfg.Inline {
		o.inline = true
	}
	if !set("no-open") && cfg.Open != nil {
		o.noOpen = !*cfg.Open
	}
	if !set("redis-prefix") && cfg.RedisPrefix != "" {
		o.redisPrefix = cfg.RedisPrefix
	}
	if !set("redis") {
		switch {
		case cfg.RedisAddr != "":
			o.redisAddr = cfg.RedisAddr
		case os.Getenv(envRedisAddr) != "":
			o.redisAddr = os.Getenv(envRedisAddr)
		}
	}
}

// naming returns the artifact naming implied by the options.
func (o *outputOpts) naming() (session.Naming, error) {
	r, err := render.New(o.format, render.Config{})
	if err != nil {
		return session.Naming{}, err
	}
	n := session.Naming{Prefix: o.prefix, Ext: r.Ext()}
	return n, n.Validate()
}

// store picks the index backend: a fixed start, a shared Redis counter, or
// (nil) the viewer's directory scan. The returned close func is never nil.
func (o *outputOpts) store() (session.Store, func() error, error) {
	noop := func() error { return nil }
	switch {
	case o.start > 0 && o.redisAddr != "":
		return nil, noop, treeerrors.New(treeerrors.ErrCodeInvalidInput, "--start and --redis are mutually exclusive")
	case o.start > 0:
		return session.NewMemoryStore(o.start), noop, nil
	case o.redisAddr != "":
		s := session.NewRedisStore(o.redisAddr, "", 0, session.WithRedisPrefix(o.redisPrefix))
		return s, s.Close, nil
	}
	return nil, noop, nil
}

// newViewer builds a Viewer from the options. The caller must invoke the
// returned close func when done.
func (c *CLI) newViewer(o *outputOpts) (*viewer.Viewer, func() error, error) {
	strategy, err := layout.ParseStrategy(o.layout)
	if err != nil {
		return nil, nil, err
	}
	if err := render.ValidateFormat(o.format); err != nil {
		return nil, nil, err
	}

	store, closeStore, err := o.store()
	if err != nil {
		return nil, nil, err
	}

	rc := c.newCache(o)
	closeAll := func() error {
		rc.Close()
		return closeStore()
	}
	r, err := render.New(o.format, render.Config{Unit: o.unit, Inline: o.inline, Cache: rc})
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	var launcher launch.Launcher = launch.System{}
	if o.noOpen {
		launcher = launch.Noop{}
	}

	opts := []viewer.Option{
		viewer.WithDir(o.dir),
		viewer.WithPrefix(o.prefix),
		viewer.WithRenderer(r),
		viewer.WithLauncher(launcher),
		viewer.WithLogger(c.Logger),
		viewer.WithStrategy(strategy),
	}
	if store != nil {
		opts = append(opts, viewer.WithStore(store))
	}
	v, err := viewer.New(opts...)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	return v, closeAll, nil
}
