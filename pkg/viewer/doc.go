// Package viewer turns a binary tree into a numbered document and opens it.
//
// A [Viewer] wires together the collaborators of one output area: a
// session store that hands out indices, a renderer, and a launcher. [View]
// runs the steps for one tree:
//
//  1. ask the store for the next index
//  2. write shared assets (the HTML stylesheet) if the directory lacks them
//  3. lay out the tree and render it to <dir>/<Prefix><index><Ext>
//  4. hand the file to the launcher
//  5. record the index as used
//
// The index only advances when every step succeeds, so a failed launch
// leaves the next call reusing the same number.
//
// # Usage
//
//	v, err := viewer.New(viewer.WithDir("out"))
//	if err != nil {
//	    return err
//	}
//	res, err := viewer.View(ctx, v, root)
//	// res.Path == "out/BINTREE1.html" on the first run
//
// For quick debugging, [Show] uses a default Viewer on the working
// directory:
//
//	viewer.Show(root)
package viewer
