// Package commands wires the formbuilder command tree.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/config"
)

type rootOptions struct {
	configPath   string
	verbose      bool
	historyLimit int
	format       string
}

// New returns the root command with every subcommand attached.
func New() *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "formbuilder",
		Short:         "Edit form field lists with undo/redo from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&ro.configPath, "config", "", "YAML configuration file")
	flags.BoolVarP(&ro.verbose, "verbose", "v", false, "log debug details to stderr")
	flags.IntVar(&ro.historyLimit, "history-limit", 0, "number of undo steps to keep")
	flags.StringVar(&ro.format, "format", "", "output format (json or yaml)")

	addCommands(cmd, ro)
	return cmd
}

func addCommands(topLevel *cobra.Command, ro *rootOptions) {
	addEdit(topLevel, ro)
	addImport(topLevel, ro)
	addShow(topLevel, ro)
}

// resolve layers flags that were set explicitly over file and environment
// configuration.
func (ro *rootOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(ro.configPath, nil)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("history-limit") {
		cfg.HistoryLimit = ro.historyLimit
	}
	if flags.Changed("format") {
		cfg.Format = ro.format
	}
	if ro.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	level, err := cfg.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
