// Package tree provides a generic binary tree node for visualization.
//
// A [Tree] owns at most two children. There are no parent pointers and no
// sharing: a node appears in at most one parent's child slot. Passing a
// cyclic structure to any traversal is a precondition violation and recurses
// without bound.
//
// A nil *Tree is a valid, empty tree. All accessors are nil-safe so callers
// can walk child links without checking each step.
//
//	root := tree.New("A")
//	root.SetLeft(tree.New("B"))
//	root.SetRight(tree.New("C"))
//	root.MaxLeft() // 2
package tree

// Tree is a binary tree node holding a value of type T.
type Tree[T any] struct {
	value T
	left  *Tree[T]
	right *Tree[T]
}

// New creates a leaf node holding v.
func New[T any](v T) *Tree[T] {
	return &Tree[T]{value: v}
}

// Value returns the node's payload. It returns the zero value for a nil tree.
func (t *Tree[T]) Value() T {
	if t == nil {
		var zero T
		return zero
	}
	return t.value
}

// SetValue replaces the node's payload.
func (t *Tree[T]) SetValue(v T) {
	t.value = v
}

// Left returns the left child, or nil.
func (t *Tree[T]) Left() *Tree[T] {
	if t == nil {
		return nil
	}
	return t.left
}

// Right returns the right child, or nil.
func (t *Tree[T]) Right() *Tree[T] {
	if t == nil {
		return nil
	}
	return t.right
}

// SetLeft replaces the left child. The previous child is dropped, not
// detached or validated.
func (t *Tree[T]) SetLeft(n *Tree[T]) {
	t.left = n
}

// SetRight replaces the right child.
func (t *Tree[T]) SetRight(n *Tree[T]) {
	t.right = n
}

// IsLeaf reports whether t has no children. A nil tree is not a leaf.
func (t *Tree[T]) IsLeaf() bool {
	return t != nil && t.left == nil && t.right == nil
}

// MaxLeft returns the height of the tree counted in nodes: 0 for a nil tree,
// 1 for a lone root, and one more for every level below.
//
// Despite its name the metric descends through both children, so it is the
// total height and not the depth of the leftmost spine. Layout uses it as a
// conservative column budget for the root, which only needs the left depth;
// the wider bound is kept because existing layouts depend on it.
func (t *Tree[T]) MaxLeft() int {
	if t == nil {
		return 0
	}
	return 1 + max(t.left.MaxLeft(), t.right.MaxLeft())
}

// Size returns the number of nodes in the tree.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return 1 + t.left.Size() + t.right.Size()
}

// Walk visits every node in preorder (node, left subtree, right subtree).
// Returning false from fn stops the walk.
func (t *Tree[T]) Walk(fn func(*Tree[T]) bool) {
	t.walk(fn)
}

func (t *Tree[T]) walk(fn func(*Tree[T]) bool) bool {
	if t == nil {
		return true
	}
	if !fn(t) {
		return false
	}
	return t.left.walk(fn) && t.right.walk(fn)
}
