package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/tree"
	"github.com/matzehuels/treeview/pkg/treefile"
	"github.com/matzehuels/treeview/pkg/viewer"
)

// viewCommand creates the view command for rendering tree files.
func (c *CLI) viewCommand() *cobra.Command {
	opts := defaultOutputOpts()

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Render a tree file (.toml, .yaml, .yml, .json)",
		Long: `Render the binary tree described in a TOML, YAML or JSON file to the next
numbered document in the output directory, then open it.

A tree file holds either a nested root:

  [root]
  value = "A"
  [root.left]
  value = "B"

or a breadth-first list with "-" for absent children:

  level_order = ["A", "B", "C", "-", "D"]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.merge(cmd, c.config)
			root, err := treefile.Load(args[0])
			if err != nil {
				return err
			}
			return c.show(cmd.Context(), &opts, root, args[0])
		},
	}

	addOutputFlags(cmd, &opts)
	return cmd
}

// show renders root with the options and reports the result.
func (c *CLI) show(ctx context.Context, opts *outputOpts, root *tree.Tree[string], source string) error {
	logger := loggerFromContext(ctx)
	if root == nil {
		printWarning("%s describes an empty tree; nothing to render", source)
		return nil
	}

	v, closeViewer, err := c.newViewer(opts)
	if err != nil {
		return err
	}
	defer closeViewer()

	prog := newProgress(logger)
	var spin *spinner
	if opts.format == render.FormatSVG {
		spin = newSpinner(ctx, "Rendering SVG...")
		spin.start()
	}

	res, err := viewer.View(ctx, v, root)
	if spin != nil {
		spin.stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d nodes", res.Layout.Len()))

	printSuccess("%s → #%d", source, res.Index)
	printFile(res.Path)
	printStats(res.Layout)
	if n := len(res.Layout.Overlaps()); n > 0 {
		printWarning("%d grid cells hold more than one node; --layout spread avoids this", n)
	}
	return nil
}
