package layout

import (
	"fmt"
	"slices"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/tree"
)

// Grid steps between a node and each of its children under [Classic].
const (
	ColStep = 2
	RowStep = 2
)

// MaxSpreadHeight is the tallest tree [Spread] can place. Spread columns
// double per level; above this height they overflow int once a renderer
// scales them to pixels. Compute falls back to [Classic] above it.
const MaxSpreadHeight = 48

// Strategy selects how horizontal offsets are chosen.
type Strategy int

const (
	// Classic offsets every child ColStep columns from its parent and puts
	// the root at column MaxLeft()+1. Siblings never collide, but inner
	// grandchildren of opposite subtrees can share a cell and deep left
	// spines can reach negative columns. See [Layout.Overlaps].
	Classic Strategy = iota

	// Spread halves the offset at every level so each depth holds the
	// in-order slots of a complete tree. No two nodes share a cell and the
	// leftmost possible column is 0, at the cost of width doubling per level.
	Spread
)

func (s Strategy) String() string {
	if s == Spread {
		return "spread"
	}
	return "classic"
}

// ParseStrategy maps a strategy name to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "classic":
		return Classic, nil
	case "spread":
		return Spread, nil
	}
	return Classic, errors.New(errors.ErrCodeInvalidInput, "unknown layout strategy %q (want classic or spread)", name)
}

// CheckHeight reports whether s can lay out a tree of the given height. It
// fails with INVALID_TREE for [Spread] above [MaxSpreadHeight].
func (s Strategy) CheckHeight(height int) error {
	if s == Spread && height > MaxSpreadHeight {
		return errors.New(errors.ErrCodeInvalidTree,
			"tree height %d exceeds the spread layout limit of %d", height, MaxSpreadHeight)
	}
	return nil
}

// Bounds is the grid extent covered by a layout.
type Bounds struct {
	MinCol int `json:"min_col"`
	MaxCol int `json:"max_col"`
	MaxRow int `json:"max_row"`
}

// Width returns the number of columns spanned.
func (b Bounds) Width() int { return b.MaxCol - b.MinCol + 1 }

// Height returns the number of rows spanned.
func (b Bounds) Height() int { return b.MaxRow + 1 }

// Layout is the ordered set of draw instructions for one tree.
type Layout struct {
	// Instructions are in preorder: node, left subtree, right subtree.
	Instructions []Instruction `json:"instructions"`
	Bounds       Bounds        `json:"bounds"`
	Strategy     Strategy      `json:"-"`
}

// Len returns the number of positioned nodes.
func (l Layout) Len() int { return len(l.Instructions) }

// Empty reports whether the layout has no nodes.
func (l Layout) Empty() bool { return len(l.Instructions) == 0 }

// Root returns the root instruction. It panics on an empty layout.
func (l Layout) Root() Instruction { return l.Instructions[0] }

// Overlaps returns every grid cell claimed by more than one node, sorted by
// row then column. A Spread layout always returns nil.
func (l Layout) Overlaps() []Position {
	seen := make(map[Position]int, len(l.Instructions))
	var dup []Position
	for _, ins := range l.Instructions {
		seen[ins.Pos]++
		if seen[ins.Pos] == 2 {
			dup = append(dup, ins.Pos)
		}
	}
	slices.SortFunc(dup, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return dup
}

// Option configures [Compute].
type Option[T any] func(*computer[T])

// WithLabeler sets how node values become text. The default is fmt.Sprint,
// which honours fmt.Stringer.
func WithLabeler[T any](fn func(T) string) Option[T] {
	return func(c *computer[T]) {
		if fn != nil {
			c.label = fn
		}
	}
}

// WithStrategy selects the offset strategy. The default is [Classic].
func WithStrategy[T any](s Strategy) Option[T] {
	return func(c *computer[T]) { c.strategy = s }
}

type computer[T any] struct {
	label    func(T) string
	strategy Strategy
	height   int
	out      Layout
}

// Compute places every node of root on the grid.
//
// A nil root yields an empty layout and a lone root sits at (0,0). Otherwise,
// under [Classic], the root sits at column root.MaxLeft()+1, row 0, and every
// child is placed ColStep columns left or right and RowStep rows below its
// parent. Under [Spread] the offsets shrink with depth instead; a tree
// taller than [MaxSpreadHeight] is laid out with [Classic] and the returned
// Layout.Strategy says so.
func Compute[T any](root *tree.Tree[T], opts ...Option[T]) Layout {
	c := computer[T]{label: func(v T) string { return fmt.Sprint(v) }}
	for _, opt := range opts {
		opt(&c)
	}
	c.out.Strategy = c.strategy

	if root == nil {
		return c.out
	}
	if root.IsLeaf() {
		c.emit(root, Position{}, Position{}, Root, 0)
		return c.out
	}

	c.height = root.MaxLeft()
	if c.strategy.CheckHeight(c.height) != nil {
		c.strategy = Classic
	}
	c.out.Strategy = c.strategy
	head := Position{Col: root.MaxLeft() + 1, Row: 0}
	if c.strategy == Spread {
		head.Col = ColStep * (1<<(c.height-1) - 1)
	}
	c.place(root, head, head, Root, 0)
	return c.out
}

// offset returns the horizontal distance between a node at depth d and its
// children.
func (c *computer[T]) offset(d int) int {
	if c.strategy == Spread {
		// Only nodes with children ask, so d <= height-2.
		return ColStep << (c.height - 2 - d)
	}
	return ColStep
}

func (c *computer[T]) place(n *tree.Tree[T], p, parent Position, side Side, depth int) {
	if n == nil {
		return
	}
	c.emit(n, p, parent, side, depth)
	if n.IsLeaf() {
		return
	}
	dx := c.offset(depth)
	c.place(n.Left(), Position{Col: p.Col - dx, Row: p.Row + RowStep}, p, Left, depth+1)
	c.place(n.Right(), Position{Col: p.Col + dx, Row: p.Row + RowStep}, p, Right, depth+1)
}

func (c *computer[T]) emit(n *tree.Tree[T], p, parent Position, side Side, depth int) {
	if len(c.out.Instructions) == 0 {
		c.out.Bounds = Bounds{MinCol: p.Col, MaxCol: p.Col, MaxRow: p.Row}
	}
	c.out.Instructions = append(c.out.Instructions, Instruction{
		ID:     NodeID(p),
		Pos:    p,
		Parent: parent,
		Label:  c.label(n.Value()),
		Side:   side,
		Depth:  depth,
	})
	c.out.Bounds.MinCol = min(c.out.Bounds.MinCol, p.Col)
	c.out.Bounds.MaxCol = max(c.out.Bounds.MaxCol, p.Col)
	c.out.Bounds.MaxRow = max(c.out.Bounds.MaxRow, p.Row)
}
