// Package cmd - validate and plan commands
package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goalgraph/adapters/goalfile"
	"goalgraph/core/output"
	"goalgraph/core/validation"
	"goalgraph/internal/config"
)

var (
	outputFormat string
	strict       bool
	noColor      bool
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a goal dependency configuration",
	Long: `Check goals and their dependencies for cycles, unknown goals,
deadline conflicts and malformed records.

The path can be a goal file or a directory of goal files.
With --strict the command fails when the configuration is invalid.

Examples:
  goalgraph validate goals.hcl
  goalgraph validate --strict ./goals
  goalgraph validate --format markdown goals.yaml > report.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan [path]",
	Short: "Show the critical path and funding stages",
	Long: `Derive the longest dependency chain and group goals into stages
that can be funded in order. Cyclic configurations have no plan.

Examples:
  goalgraph plan goals.hcl
  goalgraph plan --format json ./goals`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	validateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	validateCmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the configuration is invalid")
	validateCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	planCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	planCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	result, err := analyzePath(cmd, args)
	if err != nil {
		return err
	}

	formatter, err := registry(cfg).Get(selectedFormat(cfg))
	if err != nil {
		return err
	}
	if err := formatter.Render(cmd.OutOrStdout(), result); err != nil {
		return err
	}

	if strict || cfg.Validation.Strict {
		return result.Report.Err()
	}
	return nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	result, err := analyzePath(cmd, args)
	if err != nil {
		return err
	}

	format := selectedFormat(cfg)
	if format == output.FormatCLI {
		return output.NewCLIFormatter(outputOptions(cfg)).RenderPlan(cmd.OutOrStdout(), result)
	}
	formatter, err := registry(cfg).Get(format)
	if err != nil {
		return err
	}
	return formatter.Render(cmd.OutOrStdout(), result)
}

// analyzePath loads the goal files at the command's path and validates them
func analyzePath(cmd *cobra.Command, args []string) (*output.ValidationResult, error) {
	cfg := config.Get()
	logger, runID := runLogger(cmd)

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	start := time.Now()
	logger.Info("loading goal files", zap.String("path", path))
	doc, err := goalfile.Load(path)
	if err != nil {
		logger.Error("failed to load goal files", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	v := validation.New(
		validation.WithLogger(logger),
		validation.WithDuplicateCheck(cfg.Validation.CheckDuplicates),
		validation.WithCurrency(cfg.Planning.Currency),
	)
	result := v.Analyze(doc.Goals, doc.Dependencies)

	logger.Info("validation complete",
		zap.Int("goals", len(doc.Goals)),
		zap.Int("dependencies", len(doc.Dependencies)),
		zap.String("status", string(result.Report.Status())),
		zap.Duration("duration", time.Since(start)))

	return &output.ValidationResult{
		Result: result,
		Metadata: output.Metadata{
			RunID:     runID,
			Sources:   doc.Files,
			Timestamp: start.UTC().Format(time.RFC3339),
			Version:   Version,
		},
	}, nil
}

func selectedFormat(cfg *config.Config) output.Format {
	if outputFormat != "" {
		return output.Format(outputFormat)
	}
	if cfg.Output.DefaultFormat != "" {
		return output.Format(cfg.Output.DefaultFormat)
	}
	return output.FormatCLI
}

func outputOptions(cfg *config.Config) output.Options {
	return output.Options{
		NoColor:    noColor || cfg.Output.NoColor,
		ShowDepths: cfg.Output.ShowDepths,
	}
}

func registry(cfg *config.Config) *output.Registry {
	return output.NewRegistry(outputOptions(cfg))
}
