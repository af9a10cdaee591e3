// Package render turns tree layouts into documents.
//
// A [Renderer] receives a [Document] (the laid-out tree plus session
// metadata) and writes one artifact. Grid cells become pixels here and
// nowhere else.
//
//   - [HTML]: standalone page of absolutely positioned circles joined by
//     connector lines. Links the shared stylesheet [StylesheetName], which
//     [HTML.WriteAssets] creates once per output directory.
//   - [SVG]: Graphviz rendering of the pinned grid (neato engine), cached
//     by DOT hash.
//   - [DOT]: the Graphviz source itself.
//   - [JSON]: the draw instructions for external tools.
//
// Build one by name with [New]:
//
//	r, err := render.New("html", render.Config{Unit: 75})
//	err = r.Render(f, render.Document{Index: 3, Layout: l})
package render
