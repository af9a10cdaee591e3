package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the SVG render cache",
		Long: `SVG renders are cached by the hash of their DOT input, so re-viewing
an unchanged tree skips Graphviz. Other formats are never cached.`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dir, err := cacheDir()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, dir)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached renders",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fc, err := openCache()
				if err != nil {
					return err
				}
				n, size, err := fc.Stats()
				if err != nil {
					return fmt.Errorf("scan cache: %w", err)
				}
				if n == 0 {
					printInfo("Cache is empty")
					return nil
				}
				if err := fc.Clear(); err != nil {
					return err
				}
				printSuccess("Cleared %d cached renders (%s)", n, formatSize(size))
				printDetail("Directory: %s", fc.Dir())
				return nil
			},
		},
	)
	return cmd
}

func openCache() (*cache.FileCache, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}
