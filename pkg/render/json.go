package render

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/treeview/pkg/layout"
)

// JSON exports the draw instructions for external tools.
type JSON struct{}

func (JSON) Format() string { return FormatJSON }
func (JSON) Ext() string    { return ".json" }

type jsonOutput struct {
	Title    string               `json:"title"`
	Index    int                  `json:"index,omitempty"`
	RunID    string               `json:"run_id,omitempty"`
	Strategy string               `json:"strategy"`
	Bounds   layout.Bounds        `json:"bounds"`
	ColStep  int                  `json:"col_step"`
	RowStep  int                  `json:"row_step"`
	Nodes    []layout.Instruction `json:"nodes"`
	Overlaps []layout.Position    `json:"overlaps,omitempty"`
}

// Render writes the layout as indented JSON. Nodes keep preorder.
func (JSON) Render(w io.Writer, doc Document) error {
	nodes := doc.Layout.Instructions
	if nodes == nil {
		nodes = []layout.Instruction{}
	}
	out := jsonOutput{
		Title:    doc.title(),
		Index:    doc.Index,
		RunID:    doc.RunID,
		Strategy: doc.Layout.Strategy.String(),
		Bounds:   doc.Layout.Bounds,
		ColStep:  layout.ColStep,
		RowStep:  layout.RowStep,
		Nodes:    nodes,
		Overlaps: doc.Layout.Overlaps(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
