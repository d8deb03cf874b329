// Package cli implements the dialoguewheel command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dialoguewheel/pkg/buildinfo"
	"github.com/matzehuels/dialoguewheel/pkg/cache"
	pkgio "github.com/matzehuels/dialoguewheel/pkg/io"
	"github.com/matzehuels/dialoguewheel/pkg/observability"
	"github.com/matzehuels/dialoguewheel/pkg/pipeline"
	"github.com/matzehuels/dialoguewheel/pkg/wheel"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dialoguewheel"

	// configFile is the config file name inside the config directory.
	configFile = "config.toml"
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

	// Config is loaded in the root pre-run from --config or the default path.
	Config     Config
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Dialogue wheel renderer, previewer, and terminal player",
		Long: `dialoguewheel renders radial dialogue-choice wheels: a ring of sectors, one
per option, with perspective tilt, bevel lighting, and extrusion.

Render static SVG, HTML, PNG, PDF, or JSON exports, preview a live wheel in
the browser, or drive one from the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			if c.Logger.GetLevel() <= LogDebug {
				observability.Install(observability.NewLogHooks(c.Logger))
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: "+defaultConfigHint()+")")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.statesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file. A missing default file is not an error;
// a missing explicit --config file is.
func (c *CLI) loadConfig() error {
	path := c.configPath
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return nil
		}
		path = p
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("load config %s: %w", path, err)
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "path", path, "cache", cfg.Cache.String())
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	// Cache entries are scoped per release.
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+"/"+buildinfo.Version+":")
	r := pipeline.NewRunner(cc, keyer, c.Logger)
	if ttl := c.Config.Cache.ttl(); ttl > 0 {
		r.TTL = ttl
	}
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(ctx, c.Config.Cache.Redis())
		if err != nil {
			c.Logger.Warn("redis cache unavailable, rendering uncached", "addr", c.Config.Cache.Addr, "err", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/dialoguewheel/).
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

// configPath returns the default config file (~/.config/dialoguewheel/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, configFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFile), nil
}

func defaultConfigHint() string {
	return filepath.Join("$XDG_CONFIG_HOME", appName, configFile)
}

// =============================================================================
// Source Helpers
// =============================================================================

// sourceFlags selects the wheel content shared by render, states, serve, and play.
type sourceFlags struct {
	options    string // option list file (json, yaml, toml)
	appearance string // appearance TOML file, overrides the config file
	demo       bool   // use the demo dialogue and look
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.appearance, "appearance", "", "appearance file (toml)")
	cmd.Flags().BoolVar(&f.demo, "demo", false, "use the demo dialogue and appearance")
}

// load resolves the source. An options file is required unless --demo is set.
func (f *sourceFlags) load(cfg Config) (pipeline.Source, error) {
	src := pipeline.Source{Appearance: cfg.Appearance}
	if f.demo {
		src.Options = wheel.DemoOptions()
		src.Appearance = wheel.DemoAppearance()
	}
	if f.appearance != "" {
		a, err := pkgio.ImportAppearance(f.appearance)
		if err != nil {
			return pipeline.Source{}, err
		}
		src.Appearance = a
	}
	if f.options != "" {
		opts, err := pkgio.ImportOptions(f.options)
		if err != nil {
			return pipeline.Source{}, err
		}
		src.Options = opts
	}
	if src.Options == nil {
		return pipeline.Source{}, fmt.Errorf("no options: pass an options file or --demo")
	}
	return src, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
