package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/pkg/session"
)

// sessionsCommand creates the sessions command, which lists numbered
// documents and the index the next render will use.
func (c *CLI) sessionsCommand() *cobra.Command {
	opts := defaultOutputOpts()

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List rendered documents and the next index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.merge(cmd, c.config)
			naming, err := opts.naming()
			if err != nil {
				return err
			}

			arts, err := session.Artifacts(opts.dir, naming)
			if err != nil {
				return err
			}

			store, closeStore, err := opts.store()
			if err != nil {
				return err
			}
			defer closeStore()
			source := "directory scan"
			if store == nil {
				store = session.NewDirStore(opts.dir, naming)
			} else {
				source = "redis " + opts.redisAddr
			}
			next, err := store.NextIndex(cmd.Context())
			if err != nil {
				return fmt.Errorf("next index: %w", err)
			}

			printKeyValue("Directory", opts.dir)
			printKeyValue("Pattern", naming.Prefix+"<N>"+naming.Ext)
			printKeyValue("Next index", styleNumber.Render(strconv.Itoa(next))+" "+styleDim.Render("("+source+")"))

			if len(arts) == 0 {
				printInfo("No documents yet")
				printNextStep("Render one", appName+" demo complete")
				return nil
			}
			fmt.Fprintln(out)
			for _, a := range arts {
				fmt.Fprintf(out, "  %s %s %s\n",
					styleNumber.Render(fmt.Sprintf("%4d", a.Index)),
					styleValue.Render(a.Name),
					styleDim.Render(formatSize(a.Size)))
			}
			return nil
		},
	}

	addNamingFlags(cmd, &opts)
	addSessionFlags(cmd, &opts)
	return cmd
}

// formatSize renders a byte count for humans.
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
