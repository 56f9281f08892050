// Basemaster converts numbers between decimal, hexadecimal, octal and
// binary, and edits the 32 bits of a value directly.
//
// Running without arguments launches the interactive converter. The
// subcommands expose the same engine for scripting.
//
// Usage:
//
//	basemaster [command] [flags]
//
// See 'basemaster --help' for available commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/basemaster/internal/config"
	"github.com/muurk/basemaster/internal/logging"
	"github.com/muurk/basemaster/internal/radix"
	"github.com/muurk/basemaster/internal/tui"
	"github.com/muurk/basemaster/internal/ui"
	"github.com/muurk/basemaster/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
	strictMode bool
)

// Root command flags
var (
	startValue string
	startFrom  string
)

// cfg is loaded before any command runs
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
	logging.Sync()
}

var rootCmd = &cobra.Command{
	Use:   "basemaster",
	Short: "Number base converter and 32-bit manipulator",
	Long: `Convert numbers between decimal, hexadecimal, octal and binary.

Type into any field and the other three follow. The 32-bit grid below the
fields toggles single bits and shifts, sets or clears the whole value.

If no command is specified, the interactive converter launches.`,
	Example: `  # Launch the converter
  basemaster

  # Launch with a value already entered
  basemaster --value ff --from hex`,
	Version:           version.Version,
	PersistentPreRunE: setup,
	RunE:              runInteractive,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/basemaster/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().BoolVar(&strictMode, "strict", false, "Reject input that is not made only of digits")

	rootCmd.Flags().StringVar(&startValue, "value", "", "Initial value")
	rootCmd.Flags().StringVar(&startFrom, "from", "dec", "Radix of --value (bin, oct, dec, hex)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "basemaster %s\n", version.Full())
	},
}

// setup loads the configuration and starts logging. The interactive
// screen logs to a file; everything else logs to stderr.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	level := logLevel
	if level == "" {
		level = cfg.Log.Level
	}

	output, err := logOutput(cmd, level)
	if err != nil {
		return err
	}

	if err := logging.Initialize(level, output); err != nil {
		return err
	}
	logging.Debug("configuration loaded", zap.String("config", configPath), zap.String("command", cmd.Name()))
	return nil
}

// logOutput picks the log destination. The root command runs the
// interactive screen, which owns the terminal, so it logs to a file; the
// file is only resolved when logging is on.
func logOutput(cmd *cobra.Command, level string) (string, error) {
	if cmd.HasParent() || !logging.Enabled(level) {
		return "stderr", nil
	}
	return logFilePath()
}

// logFilePath returns the log file for the interactive screen and makes
// sure its directory exists.
func logFilePath() (string, error) {
	path := cfg.Log.File
	if path == "" {
		var err error
		if path, err = config.DefaultLogPath(); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return path, nil
}

// parseMode resolves --strict against the configured mode.
func parseMode() (radix.Mode, error) {
	if strictMode {
		return radix.Strict, nil
	}
	return cfg.ParseMode()
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if !ui.IsTerminal() {
		return fmt.Errorf("interactive mode needs a terminal; use 'basemaster convert' for scripting")
	}

	mode, err := parseMode()
	if err != nil {
		return err
	}
	from, err := radix.ParseRadix(startFrom)
	if err != nil {
		return err
	}
	start, err := cfg.StartRadix()
	if err != nil {
		return err
	}

	logging.Info("starting interactive converter", zap.String("mode", mode.String()))

	return tui.Run(tui.Options{
		Mode:         mode,
		StartField:   start,
		Theme:        cfg.Theme,
		Logger:       logging.GetLogger(),
		InitialText:  startValue,
		InitialRadix: from,
	}, cfg.UI.AltScreen)
}
