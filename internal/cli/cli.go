// Package cli implements the shelfcraft command-line interface.
//
// Every command reads a design document (JSON, TOML or YAML), applies the
// shared override flags, and runs the pipeline:
//
//   - layout: compute panels and write <design>.layout.json
//   - render: write the front elevation as SVG, PNG, PDF or JSON
//   - hardware: list door and drawer placements
//   - price: quote the design
//   - dims: list dimension labels
//   - cache: clear or locate the layout cache
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shelfcraft/pkg/buildinfo"
	"github.com/matzehuels/shelfcraft/pkg/cache"
	"github.com/matzehuels/shelfcraft/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "shelfcraft"

	// redisURLEnv names the environment variable that selects a Redis cache.
	redisURLEnv = "SHELFCRAFT_REDIS_URL"

	// redisPrefix scopes shelfcraft keys on a shared Redis server.
	redisPrefix = appName + ":"
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
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Shelfcraft computes parametric shelf layouts",
		Long:         `Shelfcraft turns a shelf design (size, style, density, rows) into structural panels, door and drawer placements, dimension labels and a price quote.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.hardwareCommand())
	root.AddCommand(c.priceCommand())
	root.AddCommand(c.dimsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheFlags selects the cache backend of a command.
type cacheFlags struct {
	noCache  bool
	redisURL string
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&f.redisURL, "redis-url", os.Getenv(redisURLEnv), "use a Redis cache (env "+redisURLEnv+")")
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, f cacheFlags) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, f)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, keyerFor(store), c.Logger), nil
}

// keyerFor scopes keys on a shared Redis server to the cache's namespace.
// Private backends use the default keys.
func keyerFor(store cache.Cache) cache.Keyer {
	if rc, ok := store.(*cache.RedisCache); ok {
		return cache.NewScopedKeyer(nil, rc.Scope())
	}
	return cache.NewDefaultKeyer()
}

// newCache picks the cache backend: none, Redis, or the file cache. An
// unusable file cache directory disables caching instead of failing.
func (c *CLI) newCache(ctx context.Context, f cacheFlags) (cache.Cache, error) {
	if f.noCache {
		return cache.NewNullCache(), nil
	}
	if f.redisURL != "" {
		rc, err := cache.NewRedisCache(ctx, f.redisURL, redisPrefix)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("cache disabled", "dir", dir, "err", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/shelfcraft/).
func cacheDir() (string, error) {
	return cache.DefaultDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
