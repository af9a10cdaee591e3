// Package pkg provides the core libraries for treeview binary tree
// visualization.
//
// # Overview
//
// Treeview turns an in-memory binary tree into a standalone document, one
// numbered file per call, so repeated runs while debugging leave a history
// (BINTREE1.html, BINTREE2.html, ...) instead of overwriting a single page.
//
// # Architecture
//
// The typical data flow:
//
//	tree.Tree[T]              (build or load the tree)
//	     ↓
//	session.Store             (next free index)
//	     ↓
//	layout.Compute            (grid positions in preorder)
//	     ↓
//	render.Renderer           (HTML, SVG, DOT or JSON)
//	     ↓
//	launch.Launcher           (open in the default viewer)
//
// [viewer] runs these steps; everything else can be used on its own.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/treeview/pkg/tree"
//	    "github.com/matzehuels/treeview/pkg/viewer"
//	)
//
//	root := tree.New("A")
//	root.SetLeft(tree.New("B"))
//	root.SetRight(tree.New("C"))
//	viewer.Show(root) // writes ./BINTREE<N>.html and opens it
//
// # Main Packages
//
// [tree] - Generic binary tree node with nil-safe accessors and the MaxLeft
// height metric.
//
// [layout] - Grid placement. The classic strategy offsets each child two
// columns from its parent; the spread strategy halves the offset per level
// so nodes never share a cell.
//
// [session] - Output index stores: in memory, derived from files on disk,
// or shared through Redis.
//
// [render] - Document renderers. HTML is the primary format and links a
// shared stylesheet; SVG goes through Graphviz and is cached.
//
// [launch] - Opening finished documents with the platform viewer.
//
// [viewer] - The View entry point wiring the above together.
//
// [treefile] - Tree description files in TOML, YAML or JSON.
//
// ## Infrastructure
//
// [cache] - Content-addressed store for rendered SVG.
//
// [errors] - Coded errors shared across packages.
//
// [observability] - Hook registry for view, session and cache events.
//
// [buildinfo] - Version information.
//
// # Testing
//
//	go test ./pkg/...
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/tree
// [layout]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/layout
// [session]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/session
// [render]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/render
// [launch]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/launch
// [viewer]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/viewer
// [treefile]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/treefile
// [cache]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/treeview/pkg/buildinfo
package pkg
