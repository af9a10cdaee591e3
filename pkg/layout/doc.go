// Package layout places binary tree nodes on an integer grid.
//
// [Compute] walks a [tree.Tree] in preorder and returns a [Layout]: one
// [Instruction] per node carrying its grid [Position], its text label and
// which side of its parent it hangs from. Renderers turn grid cells into
// pixels; nothing here knows about HTML or SVG.
//
// # Strategies
//
// [Classic] is the fixed-step layout: the root sits at column MaxLeft()+1
// and every child is two columns left or right and two rows below its
// parent. It is compact and predictable:
//
//	A(3,0)
//	├── B(1,2)
//	└── C(5,2)
//
// Classic layouts of height three or more can place two nodes in the same
// cell (the right child of the left subtree meets the left child of the
// right subtree) and long left spines run past column 0. [Layout.Overlaps]
// reports the collisions. [Spread] trades width for a guarantee: offsets
// halve at each level, so every depth holds distinct in-order slots and no
// column is negative. The width doubles per level, so Spread is limited to
// trees of [MaxSpreadHeight]; Compute uses Classic for anything taller.
//
// [tree.Tree]: github.com/matzehuels/treeview/pkg/tree
package layout
