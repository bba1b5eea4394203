package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/melissa/door-compliance/internal/config"
	"github.com/melissa/door-compliance/internal/observability"
	"github.com/melissa/door-compliance/internal/report"
	"github.com/melissa/door-compliance/internal/schemas"
	"github.com/melissa/door-compliance/internal/types"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [door.json]",
	Short: "Evaluate a single door survey file",
	Long: `Evaluate reads a JSON file of door measurements, checks it against the
CBC 11B-404 requirements and prints the resulting assessment.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvaluateCmd,
}

var (
	evaluateConfigPath string
	evaluateInput      string
	evaluateLabel      string
	evaluateSchema     string
	evaluateFormat     string
	evaluateOutput     string
	evaluateVerbose    bool
)

func init() {
	evaluateCmd.Flags().StringVar(&evaluateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	evaluateCmd.Flags().StringVarP(&evaluateInput, "input", "i", "", "Path to door survey JSON file (alternative to the positional argument)")
	evaluateCmd.Flags().StringVarP(&evaluateLabel, "label", "l", "", "Door label for the report (defaults to the input file name)")
	evaluateCmd.Flags().StringVar(&evaluateSchema, "schema", "", "Path to the door parameters JSON Schema (optional)")
	evaluateCmd.Flags().StringVarP(&evaluateFormat, "format", "f", "", "Report format: text or json")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "output", "o", "", "Write the report to a file instead of stdout")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluateCmd(cmd *cobra.Command, args []string) error {
	if evaluateInput == "" && len(args) == 1 {
		evaluateInput = args[0]
	}

	cfg, err := loadCLIConfig(cmd, evaluateConfigPath, cliOverrides{
		schema:  evaluateSchema,
		format:  evaluateFormat,
		output:  evaluateOutput,
		verbose: evaluateVerbose,
	})
	if err != nil {
		return err
	}

	if evaluateInput == "" {
		return fmt.Errorf("--input is required")
	}

	out, closeOut, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	assessment, err := assessFile(cfg, evaluateInput, evaluateLabel)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintDoorParameters(&assessment.Door)
		printer.PrintViolations(assessment.Violations)
	}

	return writeAssessments(out, cfg.Format, []*types.DoorAssessment{assessment})
}

// cliOverrides holds flag values that override config file settings.
type cliOverrides struct {
	schema      string
	format      string
	output      string
	concurrency int
	verbose     bool
}

// loadCLIConfig loads the optional config file, applies explicit flag
// overrides and fills the remaining fields with defaults.
func loadCLIConfig(cmd *cobra.Command, configPath string, overrides cliOverrides) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("schema") {
		cfg.SchemaPath = overrides.schema
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = overrides.format
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputPath = overrides.output
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = overrides.concurrency
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = overrides.verbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Format:      "text",
		Concurrency: 4,
	})

	if cfg.Format != "text" && cfg.Format != "json" {
		return cfg, fmt.Errorf("invalid format %q: must be \"text\" or \"json\"", cfg.Format)
	}

	// Fall back to the schema shipped alongside the binary when none is configured.
	if cfg.SchemaPath == "" {
		cfg.SchemaPath = schemas.ResolveSchemaPath(schemas.DoorParametersSchema)
	}

	return cfg, nil
}

// assessFile reads a door survey file, optionally schema-validates it and
// returns the assessment.
func assessFile(cfg config.Config, inputPath, label string) (*types.DoorAssessment, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", inputPath, err)
	}

	if cfg.SchemaPath != "" {
		if err := schemas.ValidatePayload(cfg.SchemaPath, data); err != nil {
			return nil, fmt.Errorf("%s: %w", inputPath, err)
		}
	}

	var door types.DoorParameters
	if err := json.Unmarshal(data, &door); err != nil {
		return nil, fmt.Errorf("failed to parse door JSON from %s: %w", inputPath, err)
	}

	if label == "" {
		label = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}

	return report.Assess(label, door), nil
}

// writeAssessments renders assessments to the writer in the requested format.
// A single assessment is emitted as an object in JSON mode, several as an array.
func writeAssessments(out io.Writer, format string, assessments []*types.DoorAssessment) error {
	if format == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if len(assessments) == 1 {
			return encoder.Encode(assessments[0])
		}
		return encoder.Encode(assessments)
	}

	for i, assessment := range assessments {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, report.RenderText(assessment)); err != nil {
			return err
		}
	}
	return nil
}

// openOutput returns the report writer and a close function. An empty path
// means stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
