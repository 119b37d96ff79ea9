// Package main provides the CLI entry point for the feature extractor.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/giangnmt98/ExtractFeature/internal/cli"
	"github.com/giangnmt98/ExtractFeature/internal/config"
	"github.com/giangnmt98/ExtractFeature/internal/errhandling"
	"github.com/giangnmt98/ExtractFeature/internal/logger"
	"github.com/giangnmt98/ExtractFeature/internal/runtime"
)

// DefaultConfigPath is used when no configuration file argument is given.
const DefaultConfigPath = "config.yaml"

// Exit codes
const (
	ExitSuccess         = 0
	ExitValidationError = 1
	ExitParseError      = 2
	ExitRuntimeError    = 3
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Build information (set via ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitRuntimeError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "extractfeature",
	Short: "ExtractFeature - Derive feature columns from CSV data",
	Long: `ExtractFeature loads tabular records from a CSV file, derives a fixed
set of feature columns (HasPhone, EmailDomain, FirstNameLength,
LastNameLength, IsInNY) from the configured source columns, and writes
the augmented table back out.

The source path, the columns to load with their types, the features to
compute, and the output path are declared in a YAML configuration file.

Examples:
  # Run with the default config.yaml
  extractfeature run

  # Run with an explicit configuration file
  extractfeature run extract.yaml

  # Validate a configuration file without running
  extractfeature validate extract.yaml`,
}

var runCmd = &cobra.Command{
	Use:   "run [config-file]",
	Short: "Run the extraction pipeline",
	Long: `Run the extraction pipeline defined in the configuration file.

The configuration file defaults to "config.yaml" when no argument is
given. The configuration is loaded and validated first; the pipeline
then runs once: load CSV, derive features, write CSV.

Exit codes:
  0 - Extraction completed successfully
  1 - Configuration validation failed
  2 - Configuration could not be parsed
  3 - Runtime error (file access, missing column, type coercion, ...)

Examples:
  extractfeature run
  extractfeature run extract.yaml
  extractfeature run --verbose extract.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExtraction,
}

var validateCmd = &cobra.Command{
	Use:   "validate <config-file>",
	Short: "Validate a configuration file",
	Long: `Validate a configuration file without running the pipeline.

Supports YAML and JSON; the format is auto-detected from the file
extension or content. Validation checks that the document is a mapping
containing the required 'fields' key. Nothing else is constrained:
unknown keys and unknown feature names are accepted.

Exit codes:
  0 - Configuration is valid
  1 - Validation errors (required key missing)
  2 - Parse errors (invalid YAML/JSON syntax)`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print version, commit hash, and build date information.",
	Run:   runVersion,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// baseLogger builds the logger used before the configuration is loaded,
// honoring the global flags.
func baseLogger() *slog.Logger {
	switch {
	case verbose:
		return logger.NewWithLevel(slog.LevelDebug)
	case quiet:
		return logger.NewWithLevel(slog.LevelError)
	default:
		return logger.NewWithLevel(slog.LevelInfo)
	}
}

func runValidate(_ *cobra.Command, args []string) {
	configPath := args[0]

	if !quiet {
		fmt.Printf("Validating configuration: %s\n", configPath)
	}

	result := config.ParseConfig(configPath)

	if len(result.ParseErrors) > 0 {
		cli.PrintParseErrors(result.ParseErrors, verbose)
		os.Exit(ExitParseError)
	}

	if len(result.ValidationErrors) > 0 {
		cli.PrintValidationErrors(result.ValidationErrors, verbose, quiet)
		os.Exit(ExitValidationError)
	}

	if !quiet {
		fmt.Printf("✓ Configuration is valid (format: %s)\n", result.Format)
	}

	os.Exit(ExitSuccess)
}

func runExtraction(_ *cobra.Command, args []string) {
	configPath := DefaultConfigPath
	if len(args) > 0 {
		configPath = args[0]
	}

	log := baseLogger()

	store, err := config.NewStore(configPath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(exitCodeFor(err))
	}

	cfg := store.Config()

	// The configured debug flag raises the run's log level unless the
	// command line already decided.
	if cfg.Debug && !quiet && !verbose {
		log = logger.NewWithLevel(slog.LevelDebug)
	}

	executor := runtime.NewExecutor(cfg, log)
	result, err := executor.Execute()

	cli.PrintExecutionResult(result, err, cli.OutputOptions{Verbose: verbose, Quiet: quiet})

	if err != nil {
		os.Exit(exitCodeFor(err))
	}

	if !quiet {
		fmt.Println("Data processing complete.")
	}
	os.Exit(ExitSuccess)
}

func runVersion(_ *cobra.Command, _ []string) {
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Commit: %s\n", commit)
	fmt.Printf("Build Date: %s\n", buildDate)
}

// exitCodeFor maps fault categories to process exit codes.
func exitCodeFor(err error) int {
	switch errhandling.CategoryOf(err) {
	case errhandling.CategoryConfiguration:
		return ExitValidationError
	case errhandling.CategoryParse:
		return ExitParseError
	default:
		return ExitRuntimeError
	}
}
