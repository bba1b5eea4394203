package main

import (
	"os"

	"github.com/melissa/door-compliance/internal/observability"
	"github.com/melissa/door-compliance/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Evaluate several door survey files",
	Long: `Batch evaluates each given JSON survey file concurrently and prints the
assessments in argument order, followed by an aggregate summary.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatchCmd,
}

var (
	batchConfigPath  string
	batchSchema      string
	batchFormat      string
	batchOutput      string
	batchConcurrency int
	batchVerbose     bool
)

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCmd.Flags().StringVar(&batchSchema, "schema", "", "Path to the door parameters JSON Schema (optional)")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "Report format: text or json")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write the reports to a file instead of stdout")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Parallel evaluations (default 4)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(batchCmd)
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig(cmd, batchConfigPath, cliOverrides{
		schema:      batchSchema,
		format:      batchFormat,
		output:      batchOutput,
		concurrency: batchConcurrency,
		verbose:     batchVerbose,
	})
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	assessments := make([]*types.DoorAssessment, len(args))

	var g errgroup.Group
	g.SetLimit(cfg.Concurrency)
	for i, path := range args {
		g.Go(func() error {
			assessment, err := assessFile(cfg, path, "")
			if err != nil {
				return err
			}
			assessments[i] = assessment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := writeAssessments(out, cfg.Format, assessments); err != nil {
		return err
	}

	if cfg.Format == "text" || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintBatchSummary(assessments)
	}

	return nil
}
