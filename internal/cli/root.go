// Package cli implements the command-line interface for cubecoord.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubecoord/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	cfgFile string

	v      = viper.New()
	cfg    *config.Config
	logger = zerolog.Nop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubecoord",
	Short: "Rubik's cube coordinate and move table tool",
	Long: `cubecoord converts facelet strings into piece-level cube states and
builds the coordinate move tables used by two-phase solvers.

Tables are cached on disk (one file per table) or in a SQLite database and
are loaded instead of rebuilt on later runs.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: ./cubecoord.{toml,yaml,json})")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("cache-backend", config.BackendFile, "Table cache backend (file or sqlite)")
	flags.String("cache-dir", "./tables", "Directory for file-backed tables")
	flags.String("cache-db", "./tables/tables.db", "Database path for the sqlite backend")
	flags.Int("workers", 0, "Goroutines used to build tables (0 = one per CPU)")

	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("cache.backend", flags.Lookup("cache-backend"))
	_ = v.BindPFlag("cache.dir", flags.Lookup("cache-dir"))
	_ = v.BindPFlag("cache.db", flags.Lookup("cache-db"))
	_ = v.BindPFlag("workers", flags.Lookup("workers"))
}

// loadConfig resolves settings and sets up logging before any subcommand.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}
