package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeview/pkg/buildinfo"
	"github.com/matzehuels/treeview/pkg/cache"
	"github.com/matzehuels/treeview/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "treeview"

	// defaultConfigFile is read from the working directory when --config is
	// not given.
	defaultConfigFile = ".treeview.toml"

	// envRedisAddr supplies --redis when neither the flag nor the config
	// file sets it.
	envRedisAddr = "TREEVIEW_REDIS_ADDR"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     fileConfig
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Treeview draws binary trees as numbered HTML pages",
		Long:         `Treeview lays out binary trees on a grid and renders each one to a new numbered document (BINTREE1.html, BINTREE2.html, ...), then opens it in the default viewer.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			c.config = cfg
			out = cmd.OutOrStdout()
			if c.Logger.GetLevel() <= log.DebugLevel {
				registerLogHooks(c.Logger)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", defaultConfigFile, "config file (TOML)")

	root.AddCommand(c.viewCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.sessionsCommand())
	root.AddCommand(c.cleanCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache
// =============================================================================

// newCache returns the SVG render cache for o. Other formats and --no-cache
// get a NullCache, as does an unusable cache directory.
func (c *CLI) newCache(o *outputOpts) cache.Cache {
	if o.noCache || !strings.EqualFold(o.format, render.FormatSVG) {
		return cache.NullCache{}
	}
	fc, err := openCache()
	if err != nil {
		c.Logger.Debug("Render cache disabled", "err", err)
		return cache.NullCache{}
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/treeview/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
