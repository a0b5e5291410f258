// Command bucketvec inspects the bucket layout produced by a growth config.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	configFile       string
	startingCapacity int
	growthRate       float64
	logLevel         string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "bucketvec",
		Short:             "inspect bucket vector growth configurations",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML file with starting_capacity and growth_rate")
	flags.IntVar(&startingCapacity, "starting-capacity", 0, "capacity of the first bucket (overrides --config)")
	flags.Float64Var(&growthRate, "growth-rate", 0, "growth rate between buckets (overrides --config)")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newLayoutCmd(), newLocateCmd(), newVerifyCmd())
	return rootCmd
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))
	return nil
}

// newLogger builds a tint handler on w; colour only when w is a terminal.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("bucketvec failed", "err", err)
		os.Exit(1)
	}
}
