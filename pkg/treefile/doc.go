// Package treefile reads and writes binary trees of strings as TOML, YAML
// or JSON documents.
//
// # Shapes
//
// A file describes its tree in exactly one of two shapes. The nested shape
// mirrors the tree:
//
//	[root]
//	value = "A"
//	[root.left]
//	value = "B"
//	[root.right]
//	value = "C"
//
// The level-order shape lists values breadth first, with a marker for
// absent children:
//
//	level_order = ["A", "B", "C", "-", "D"]
//
// Children are assigned to present nodes only, two entries per node in
// queue order, so an absent node consumes no slots for its own children.
// The marker defaults to "-" and can be changed with the absent key.
// An empty list describes an empty tree.
//
// # Formats
//
// [Load] picks the format from the file extension: .toml, .yaml or .yml,
// and .json. Unknown keys are rejected in every format.
//
// Errors carry codes from pkg/errors: FILE_NOT_FOUND for a missing file,
// INVALID_FORMAT for an unsupported extension, and INVALID_TREE for
// anything wrong with the content.
package treefile
