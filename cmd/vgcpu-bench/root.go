package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vgcpu/vgbench"

	_ "github.com/vgcpu/vgbench/backend/null"
	_ "github.com/vgcpu/vgbench/backend/softwaregg"
)

// globalFlags holds flags shared by every subcommand.
type globalFlags struct {
	logFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "vgcpu-bench",
		Short:         "CPU rasterizer benchmarking harness",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write logs to a rotating file instead of stderr")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newMetadataCmd())
	root.AddCommand(newValidateCmd())
	return root
}

func configureLogging(flags *globalFlags) error {
	var level slog.Level
	switch flags.logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	var w io.Writer = os.Stderr
	if flags.logFile != "" {
		w = &lumberjack.Logger{
			Filename:   flags.logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}
	vgbench.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}
