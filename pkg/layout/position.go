package layout

import "fmt"

// Position is a cell on the virtual layout grid. Columns grow to the right,
// rows grow downward. Mapping cells to pixels is a renderer concern.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// String formats the position as "(col,row)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Col, p.Row) }

// Side records which child slot a node occupies in its parent.
type Side int

const (
	// Root marks the node the layout started from.
	Root Side = iota
	// Left marks a left child.
	Left
	// Right marks a right child.
	Right
)

// IsLeft reports whether the node is a left child.
func (s Side) IsLeft() bool { return s == Left }

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "root"
	}
}

// MarshalText encodes the side by name so JSON output stays readable.
func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Instruction is one node handed to a renderer. Parent is the cell of the
// node's parent; for the root it equals Pos.
type Instruction struct {
	ID     string   `json:"id"`
	Pos    Position `json:"pos"`
	Parent Position `json:"parent"`
	Label  string   `json:"label"`
	Side   Side     `json:"side"`
	Depth  int      `json:"depth"`
}

// NodeID derives a stable element identifier from a grid position.
// Separators keep multi-digit coordinates unambiguous.
func NodeID(p Position) string {
	return fmt.Sprintf("node-%d-%d", p.Col, p.Row)
}
