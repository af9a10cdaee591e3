package treefile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/tree"
)

// emptyTree is how each format spells an empty level-order list. Struct
// encoding would drop the field through omitempty.
var emptyTree = map[Format]string{
	TOML: "level_order = []\n",
	YAML: "level_order: []\n",
	JSON: "{\"level_order\": []}\n",
}

// Encode writes root in the nested shape. The output can be read back with
// [Read] in the same format.
func Encode(w io.Writer, format Format, root *tree.Tree[string]) error {
	empty, ok := emptyTree[format]
	if !ok {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	if root == nil {
		_, err := io.WriteString(w, empty)
		return err
	}

	doc := file{Root: fromTree(root)}
	switch format {
	case TOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	}
	return nil
}

// Save writes root to path in the format implied by its extension.
func Save(path string, root *tree.Tree[string]) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, format, root); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fromTree(t *tree.Tree[string]) *node {
	if t == nil {
		return nil
	}
	return &node{
		Value: t.Value(),
		Left:  fromTree(t.Left()),
		Right: fromTree(t.Right()),
	}
}
