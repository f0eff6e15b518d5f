package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	edc "github.com/sqpp/edc-golang"
	"github.com/sqpp/edc-golang/internal/config"
	"github.com/sqpp/edc-golang/internal/logging"
	"github.com/sqpp/edc-golang/internal/request"
)

// Exit codes returned by Execute.
const (
	exitInternal   = 1
	exitValidation = 2
)

type envKey struct{}

// env carries what PersistentPreRunE resolved to the subcommands.
type env struct {
	cfg    *config.Config
	logger logging.Logger
	runner *request.Runner
}

func envFrom(cmd *cobra.Command) *env {
	e, _ := cmd.Context().Value(envKey{}).(*env)
	return e
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "edc",
	Short: "EDC-GO - error detection and correction codes",
	Long: `edc encodes and verifies data with classic error detection and
correction schemes: VRC, LRC, CRC, the 1's-complement checksum and Hamming
single-error correction. Every command prints the step-by-step trace of the
computation.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// setup loads the config file, applies global flag overrides and builds the
// logger and job runner.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	cfg := config.DefaultConfig()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if jsonOut, _ := flags.GetBool("json"); jsonOut {
		cfg.Output = formatJSON
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return &edc.ValidationError{Field: "config", Err: err}
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defaults, err := request.DefaultsFromConfig(cfg)
	if err != nil {
		return err
	}

	logger.Debug("configuration resolved",
		"parity", cfg.Parity,
		"block_size", cfg.BlockSize,
		"divisor", defaults.Divisor,
		"output", cfg.Output,
		"workers", cfg.Workers)

	e := &env{
		cfg:    cfg,
		logger: logger,
		runner: request.NewRunner(logger, defaults, cfg.Workers),
	}
	cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, e))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if edc.IsValidation(err) {
		return exitValidation
	}
	return exitInternal
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file with defaults")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output result as JSON")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &edc.ValidationError{Field: "flags", Err: err}
	})
}
