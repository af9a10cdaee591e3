package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/pkg/render"
	"github.com/matzehuels/treeview/pkg/session"
)

// cleanCommand creates the clean command, which removes numbered documents.
func (c *CLI) cleanCommand() *cobra.Command {
	opts := defaultOutputOpts()
	var all, dryRun bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove rendered documents",
		Long: `Remove every document matching <prefix><N><ext> from the output directory.
With --all the shared stylesheet is removed too. A Redis counter, if any,
is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.merge(cmd, c.config)
			naming, err := opts.naming()
			if err != nil {
				return err
			}
			paths, err := cleanTargets(opts.dir, naming, all)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				printInfo("Nothing to clean in %s", opts.dir)
				return nil
			}

			if dryRun {
				for _, p := range paths {
					printFile(p)
				}
				printInfo("Would remove %d files", len(paths))
				return nil
			}

			logger := loggerFromContext(cmd.Context())
			removed := 0
			for _, p := range paths {
				if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("remove %s: %w", p, err)
				}
				logger.Debug("Removed", "path", p)
				removed++
			}
			printSuccess("Removed %d files", removed)
			printDetail("Directory: %s", opts.dir)
			return nil
		},
	}

	addNamingFlags(cmd, &opts)
	cmd.Flags().BoolVar(&all, "all", false, "also remove the shared stylesheet")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "list files without removing them")
	return cmd
}

// cleanTargets lists the files clean would remove, in index order.
func cleanTargets(dir string, naming session.Naming, all bool) ([]string, error) {
	arts, err := session.Artifacts(dir, naming)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(arts)+1)
	for _, a := range arts {
		paths = append(paths, a.Path)
	}
	if all {
		css := filepath.Join(dir, render.StylesheetName)
		if _, err := os.Stat(css); err == nil {
			paths = append(paths, css)
		}
	}
	return paths, nil
}
