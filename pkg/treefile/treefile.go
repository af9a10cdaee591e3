package treefile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/treeview/pkg/errors"
	"github.com/matzehuels/treeview/pkg/tree"
)

// Format is a supported file syntax.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// DefaultAbsent marks a missing child in a level-order list.
const DefaultAbsent = "-"

type file struct {
	Root       *node    `json:"root,omitempty" yaml:"root,omitempty" toml:"root,omitempty"`
	LevelOrder []string `json:"level_order,omitempty" yaml:"level_order,omitempty" toml:"level_order,omitempty"`
	Absent     string   `json:"absent,omitempty" yaml:"absent,omitempty" toml:"absent,omitempty"`
}

type node struct {
	Value string `json:"value" yaml:"value" toml:"value"`
	Left  *node  `json:"left,omitempty" yaml:"left,omitempty" toml:"left,omitempty"`
	Right *node  `json:"right,omitempty" yaml:"right,omitempty" toml:"right,omitempty"`
}

// FormatOf returns the format implied by a file name's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported tree file %q (want .toml, .yaml, .yml or .json)", filepath.Base(path))
}

// Load reads the tree file at path.
func Load(path string) (*tree.Tree[string], error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "tree file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f, format)
	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInvalidTree
		}
		return nil, errors.Wrap(code, err, "%s", path)
	}
	return t, nil
}

// Read decodes a tree from r. A document describing an empty tree yields
// (nil, nil).
func Read(r io.Reader, format Format) (*tree.Tree[string], error) {
	var doc file
	if err := decode(r, format, &doc); err != nil {
		return nil, err
	}

	switch {
	case doc.Root != nil && doc.LevelOrder != nil:
		return nil, errors.New(errors.ErrCodeInvalidTree, "both root and level_order are set")
	case doc.Root != nil:
		if doc.Absent != "" {
			return nil, errors.New(errors.ErrCodeInvalidTree, "absent only applies to level_order")
		}
		return doc.Root.build(), nil
	case doc.LevelOrder != nil:
		absent := doc.Absent
		if absent == "" {
			absent = DefaultAbsent
		}
		return FromLevelOrder(doc.LevelOrder, absent), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidTree, "no tree: set root or level_order")
}

func decode(r io.Reader, format Format, doc *file) error {
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(doc)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTree, err, "decode toml")
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return errors.New(errors.ErrCodeInvalidTree, "unknown key %q", extra[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && err != io.EOF {
			return errors.Wrap(errors.ErrCodeInvalidTree, err, "decode yaml")
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(doc); err != nil && err != io.EOF {
			return errors.Wrap(errors.ErrCodeInvalidTree, err, "decode json")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	return nil
}

func (n *node) build() *tree.Tree[string] {
	if n == nil {
		return nil
	}
	t := tree.New(n.Value)
	t.SetLeft(n.Left.build())
	t.SetRight(n.Right.build())
	return t
}

// FromLevelOrder builds a tree from breadth-first values, where absent
// marks a missing child. Entries left over after the last present node are
// ignored; missing trailing entries count as absent.
func FromLevelOrder(values []string, absent string) *tree.Tree[string] {
	if len(values) == 0 || values[0] == absent {
		return nil
	}
	root := tree.New(values[0])
	queue := []*tree.Tree[string]{root}
	i := 1
	for len(queue) > 0 && i < len(values) {
		n := queue[0]
		queue = queue[1:]
		if i < len(values) && values[i] != absent {
			n.SetLeft(tree.New(values[i]))
			queue = append(queue, n.Left())
		}
		i++
		if i < len(values) && values[i] != absent {
			n.SetRight(tree.New(values[i]))
			queue = append(queue, n.Right())
		}
		i++
	}
	return root
}
