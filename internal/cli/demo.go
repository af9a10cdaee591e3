package cli

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/pkg/tree"
	"github.com/matzehuels/treeview/pkg/treefile"
)

const (
	defaultDemoDepth = 4
	maxDemoDepth     = 10 // a complete tree of this depth has 1023 nodes
	defaultSeed      = 42 // random seed for reproducible trees
)

// demoShapes lists the shapes buildDemo understands.
var demoShapes = []string{"complete", "left", "right", "zigzag", "random"}

// demoCommand creates the demo command, which renders generated trees.
func (c *CLI) demoCommand() *cobra.Command {
	opts := defaultOutputOpts()
	var (
		depth int
		seed  uint64
		save  string
	)

	cmd := &cobra.Command{
		Use:       "demo <" + strings.Join(demoShapes, "|") + ">",
		Short:     "Render a generated tree of a given shape",
		ValidArgs: demoShapes,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.merge(cmd, c.config)
			root, err := buildDemo(args[0], depth, seed)
			if err != nil {
				return err
			}
			if save != "" {
				if err := treefile.Save(save, root); err != nil {
					return err
				}
				printInfo("Saved tree to %s", save)
			}
			return c.show(cmd.Context(), &opts, root, args[0])
		},
	}

	cmd.Flags().IntVar(&depth, "depth", defaultDemoDepth, "tree height in levels")
	cmd.Flags().Uint64Var(&seed, "seed", defaultSeed, "random seed (random shape)")
	cmd.Flags().StringVar(&save, "save", "", "also write the tree to this file (.toml, .yaml, .json)")
	addOutputFlags(cmd, &opts)
	return cmd
}

// buildDemo generates a tree of the given shape and height. A random tree
// may end up shorter. Values are
// numbered in preorder starting at 1.
func buildDemo(shape string, depth int, seed uint64) (*tree.Tree[string], error) {
	if depth < 1 || depth > maxDemoDepth {
		return nil, fmt.Errorf("depth must be between 1 and %d, got %d", maxDemoDepth, depth)
	}

	next := 0
	label := func() string {
		next++
		return strconv.Itoa(next)
	}

	// grow builds a subtree of at most d levels; child decides whether the
	// node at level d gets a child on the given side.
	var grow func(d int, child func(d int, left bool) bool) *tree.Tree[string]
	grow = func(d int, child func(d int, left bool) bool) *tree.Tree[string] {
		n := tree.New(label())
		if d == 1 {
			return n
		}
		if child(d, true) {
			n.SetLeft(grow(d-1, child))
		}
		if child(d, false) {
			n.SetRight(grow(d-1, child))
		}
		return n
	}

	switch shape {
	case "complete":
		return grow(depth, func(int, bool) bool { return true }), nil
	case "left":
		return grow(depth, func(_ int, left bool) bool { return left }), nil
	case "right":
		return grow(depth, func(_ int, left bool) bool { return !left }), nil
	case "zigzag":
		return grow(depth, func(d int, left bool) bool { return left == (d%2 == 0) }), nil
	case "random":
		r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		return grow(depth, func(d int, _ bool) bool {
			// The first level below the root always exists so depth > 1
			// never yields a lone node.
			return d == depth || r.Float64() < 0.6
		}), nil
	}
	return nil, fmt.Errorf("unknown shape %q (want one of %s)", shape, strings.Join(demoShapes, ", "))
}
