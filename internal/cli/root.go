// Package cli provides the command-line interface for fsgraph.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsgraph/internal/config"
	"github.com/katalvlaran/fsgraph/internal/logging"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// configKey and loggerKey store per-invocation state in the command context.
type (
	configKey struct{}
	loggerKey struct{}
)

// NewRootCmd creates the root command over fsys. A nil fsys uses the OS
// filesystem.
func NewRootCmd(fsys afero.Fs) *cobra.Command {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "fsgraph",
		Short: "fsgraph - filesystem containment graph",
		Long: `fsgraph models a directory subtree as a directed graph in which every
directory points to the entries it contains, then answers path and
spanning-tree queries over it.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Log, cmd.ErrOrStderr())
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}} (%s)\n", GitCommit))

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./fsgraph.yaml)")
	pf.StringP("root", "r", "", "Directory to model (default: .)")
	pf.StringSlice("exclude", nil, "Glob of root-relative paths to skip (repeatable)")
	pf.Int("max-depth", 0, "Deepest directory level to list (0 = unlimited)")
	pf.StringP("style", "s", "", "Graph output style (plain|table)")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.String("log-format", "", "Log format (text|json)")
	pf.Bool("log-caller", false, "Include source location in log records")

	_ = rootCmd.RegisterFlagCompletionFunc("style", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "table"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newGraphCommand(fsys))
	rootCmd.AddCommand(newPathCommand(fsys))
	rootCmd.AddCommand(newTreeCommand(fsys))
	rootCmd.AddCommand(newReachCommand(fsys))

	return rootCmd
}

// Execute runs the root command against the OS filesystem.
func Execute() error {
	rootCmd := NewRootCmd(nil)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// getConfig retrieves the config from the command context.
func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Root:  config.DefaultRoot,
		Style: config.DefaultStyle,
		Log:   config.LoggingConfig{Level: config.DefaultLogLevel, Format: config.DefaultLogFormat},
	}
}

// getLogger retrieves the logger from the command context.
func getLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
