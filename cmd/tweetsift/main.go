// Package main provides the CLI entry point for Tweetsift.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tweetsift/tweetsift/internal/archive"
	"github.com/tweetsift/tweetsift/internal/cli"
	"github.com/tweetsift/tweetsift/internal/config"
	"github.com/tweetsift/tweetsift/internal/factory"
	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/internal/output"
	"github.com/tweetsift/tweetsift/internal/pipeline"
	"github.com/tweetsift/tweetsift/internal/registry"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// Exit codes
const (
	ExitSuccess         = 0
	ExitValidationError = 1
	ExitParseError      = 2
	ExitRuntimeError    = 3
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	logFormat string

	// Run command flags
	dryRun     bool
	outputPath string

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
	Use:   "tweetsift",
	Short: "Tweetsift - Tweet archive filtering tool",
	Long: `Tweetsift filters tweets from a Twitter archive or JSON export.

A filter spec (JSON/YAML) declares an ordered list of exclusion rules
and, optionally, correction detection. Tweets that survive every rule
are emitted as JSON; a per-rule summary goes to stderr.

Examples:
  # Validate a filter spec
  tweetsift validate spec.yaml

  # Filter an archive
  tweetsift run spec.yaml archive.zip

  # Filter a plain JSON export into a file
  tweetsift run spec.json tweets.json -o kept.json`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Configure logger level and format based on flags
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		} else if quiet {
			level = slog.LevelError
		}
		format := logger.FormatJSON
		if logFormat == "human" {
			format = logger.FormatHuman
		}
		logger.SetLevelAndFormat(level, format)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <spec-file>",
	Short: "Validate a filter spec file",
	Long: `Validate a filter spec file against the schema.

Supports both JSON and YAML formats. The format is auto-detected
based on file extension (.json, .yaml, .yml) or content.

Exit codes:
  0 - Spec is valid
  1 - Validation errors (schema violations)
  2 - Parse errors (invalid JSON/YAML syntax)

Examples:
  tweetsift validate spec.json
  tweetsift validate --verbose spec.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

var runCmd = &cobra.Command{
	Use:   "run <spec-file> <input-file>",
	Short: "Filter tweets from an archive or JSON file",
	Long: `Filter the tweets in <input-file> using the rules of <spec-file>.

The spec file is first validated against the schema. If validation
fails, no filtering happens. The input file may be a Twitter archive
zip or a plain JSON tweet array.

Flags:
  --dry-run       Build the pipeline and report statistics without writing output
  -o, --output    Write kept tweets to this file instead of stdout

Exit codes:
  0 - Filtering completed successfully
  1 - Validation errors
  2 - Parse errors
  3 - Runtime errors

Examples:
  tweetsift run spec.json archive.zip
  tweetsift run --verbose spec.yaml tweets.json
  tweetsift run --dry-run spec.json archive.zip`,
	Args: cobra.ExactArgs(2),
	Run:  runFilter,
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List available rule types",
	Long:  "List every rule type that can appear in a filter spec.",
	Run:   runRules,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print version, commit hash, and build date information.",
	Run:   runVersion,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "Log output format (json or human)")

	// Run command flags
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Build the pipeline and report statistics without writing output")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write kept tweets to this file instead of stdout")

	// Add commands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

func runValidate(_ *cobra.Command, args []string) {
	specPath := args[0]

	if !quiet {
		fmt.Fprintf(os.Stderr, "Validating filter spec: %s\n", specPath)
	}

	result := config.ParseSpec(specPath)

	if len(result.ParseErrors) > 0 {
		cli.PrintParseErrors(result.ParseErrors, verbose)
		os.Exit(ExitParseError)
	}
	if len(result.ValidationErrors) > 0 {
		cli.PrintValidationErrors(result.ValidationErrors, verbose, quiet)
		os.Exit(ExitValidationError)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "✓ Filter spec is valid (format: %s)\n", result.Format)

		if verbose {
			spec, err := config.ConvertToFilterSpec(result.Data)
			if err == nil {
				cli.PrintSpecSummary(spec.Name, spec.Description)
				fmt.Fprintf(os.Stderr, "  Rules: %d\n", len(spec.Rules))
			}
		}
	}

	os.Exit(ExitSuccess)
}

func runFilter(_ *cobra.Command, args []string) {
	specPath, inputPath := args[0], args[1]

	if !quiet {
		fmt.Fprintf(os.Stderr, "Loading filter spec: %s\n", specPath)
	}

	result := config.ParseSpec(specPath)

	if len(result.ParseErrors) > 0 {
		cli.PrintParseErrors(result.ParseErrors, verbose)
		os.Exit(ExitParseError)
	}
	if len(result.ValidationErrors) > 0 {
		cli.PrintValidationErrors(result.ValidationErrors, verbose, quiet)
		os.Exit(ExitValidationError)
	}

	spec, err := config.ConvertToFilterSpec(result.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Failed to convert filter spec: %v\n", err)
		os.Exit(ExitRuntimeError)
	}

	if verbose {
		cli.PrintSpecSummary(spec.Name, spec.Description)
	}

	runResult, err := executeRun(spec, inputPath)
	cli.PrintRunResult(runResult, err, cli.OutputOptions{Verbose: verbose, Quiet: quiet})
	if err != nil {
		os.Exit(ExitRuntimeError)
	}

	if !dryRun {
		writer := buildWriter(spec.Output)
		written, err := writer.Write(runResult.Kept)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ Failed to write output: %v\n", err)
			os.Exit(ExitRuntimeError)
		}
		logger.WithStage("write").Debug("tweets written", "count", written)
	}

	os.Exit(ExitSuccess)
}

// executeRun assembles the pipeline from the spec and runs it over the
// tweets loaded from inputPath.
func executeRun(spec *config.FilterSpec, inputPath string) (*tweet.RunResult, error) {
	createdRules, err := factory.CreateRules(spec.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create rules: %w", err)
	}

	p := pipeline.New(pipeline.Options{
		DetectCorrections:     spec.Corrections.Enabled,
		CorrectionWindow:      spec.Corrections.Window,
		CorrectionMaxDistance: spec.Corrections.MaxDistance,
	})
	for _, r := range createdRules {
		p.AddRule(r)
	}

	tweets, err := archive.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tweets: %w", err)
	}
	logger.WithStage("read").Debug("tweets loaded", "path", inputPath, "count", len(tweets))

	logger.LogRunStart(inputPath, len(createdRules), spec.Corrections.Enabled)
	startedAt := time.Now()

	kept, corrections := p.Run(tweets)

	completedAt := time.Now()
	logger.LogRunEnd(len(tweets), len(kept), p.ExcludedCount(), len(corrections), completedAt.Sub(startedAt))

	return &tweet.RunResult{
		Kept:           kept,
		Corrections:    corrections,
		Statistics:     p.Statistics(),
		TweetsRead:     len(tweets),
		TweetsExcluded: p.ExcludedCount(),
		StartedAt:      startedAt,
		CompletedAt:    completedAt,
	}, nil
}

// buildWriter creates the output writer, letting the -o flag override
// the spec's output path.
func buildWriter(cfg config.OutputConfig) output.Writer {
	if outputPath != "" {
		cfg.Path = outputPath
	}
	return output.NewJSONWriterFromConfig(cfg)
}

func runRules(_ *cobra.Command, _ []string) {
	for _, ruleType := range registry.ListRuleTypes() {
		fmt.Println(ruleType)
	}
}

func runVersion(_ *cobra.Command, _ []string) {
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Commit: %s\n", commit)
	fmt.Printf("Build Date: %s\n", buildDate)
}
