// Package cli implements the sheetanchor command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sheetanchor/pkg/buildinfo"
	"github.com/matzehuels/sheetanchor/pkg/cache"
	"github.com/matzehuels/sheetanchor/pkg/config"
	"github.com/matzehuels/sheetanchor/pkg/imagesize"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "sheetanchor"
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
		Use:   appName,
		Short: "Sheetanchor fits pictures onto spreadsheet grids",
		Long: `Sheetanchor computes where a picture placed on a spreadsheet ends: the end cell,
the offset inside it, and the absolute extent in EMUs. It also lists the
package relationships a spreadsheet document is made of.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.Logger.Debug("starting", "version", buildinfo.Short(), "command", cmd.CommandPath())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.relationsCommand())
	root.AddCommand(c.fitCommand())
	root.AddCommand(c.geometryCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Decoder Factory
// =============================================================================

// newDecoder creates an image decoder backed by the dimension cache.
func (c *CLI) newDecoder(noCache bool) *imagesize.Decoder {
	return imagesize.NewDecoder(newCache(noCache, c.Logger), c.Logger)
}

func newCache(noCache bool, logger *log.Logger) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		logger.Debug("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Debug("cannot open cache, caching disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// loadConfig reads the geometry file at path, or returns the default
// geometry when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/sheetanchor/).
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
