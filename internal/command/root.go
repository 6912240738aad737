// Package command wires the tokenaudit CLI.
package command

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/tokenaudit/internal/config"
)

// AppName is the binary and command name.
const AppName = "tokenaudit"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

// DefaultFile is the export read when --file is not given.
const DefaultFile = "conversations.json"

type options struct {
	file        string
	showCost    bool
	configPath  string
	top         int
	debug       bool
	interactive bool
	watch       bool
}

// NewRootCmd builds the tokenaudit root command reporting version.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   AppName,
		Short: "Chat export token usage per detected model",
		Long: "tokenaudit reads a chat export (conversations.json), detects the models used,\n" +
			"tokenizes every message with a matching tokenizer and reports usage per model.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch && !opts.interactive {
				return errors.New("--watch requires --interactive")
			}

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("top") {
				if opts.top <= 0 {
					return errors.New("--top must be positive")
				}
				cfg.TopN = opts.top
			}

			logger := newLogger(cmd.ErrOrStderr(), opts.debug)
			if opts.interactive {
				return runBrowser(cmd, opts, cfg, logger)
			}
			return runReport(cmd, opts, cfg, logger)
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", DefaultFile, "path to chat export JSON")
	flags.BoolVar(&opts.showCost, "show-cost", false, "show rough cost estimate (uses $/M token defaults)")
	flags.StringVar(&opts.configPath, "config", "", "path to config file (default $XDG_CONFIG_HOME/tokenaudit/config.toml)")
	flags.IntVar(&opts.top, "top", 10, "number of longest chats to list per model")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "browse the report in a terminal UI")
	flags.BoolVar(&opts.watch, "watch", false, "reload the report when the export changes (with --interactive)")

	return cmd
}

// Execute runs the root command with the build version.
func Execute() error {
	return NewRootCmd(Version).Execute()
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
