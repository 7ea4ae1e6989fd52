// Package cli implements the command-line interface for triad.
// It is a driving adapter: commands translate arguments and flags into
// calls on the core services and render the results.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aetheric-labs/triad-cli/internal/core/domain"
	"github.com/aetheric-labs/triad-cli/internal/core/ports/driving"
	"github.com/aetheric-labs/triad-cli/internal/core/services"
	"github.com/aetheric-labs/triad-cli/internal/logger"
	"github.com/aetheric-labs/triad-cli/internal/parse"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verboseFlag bool
	reportJSON  bool
)

// selectorService is the driving port the commands run against.
// Tests may swap it out.
var selectorService driving.TripleSelector = services.NewSelectorService()

var rootCmd = &cobra.Command{
	Use:   "triad [values...]",
	Short: "Pick the triple of readings closest to the calibration target",
	Long: `Selects, from the supplied numeric readings, the three whose
arithmetic mean lands closest to the calibration target of 7.0, then
reports the winning triple together with its exact mean and the mean
rounded up to the nearest thousandth.

Readings are given either as separate numeric tokens:

  triad 1.356 7.522 5.498 9.1 2.0

or as a single JSON array:

  triad "[1.356, 7.522, 5.498, 9.1, 2.0]"

Negative readings must follow a -- terminator so they are not read as
flags:

  triad -- -5 12 14`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	RunE: runPick,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.Flags().BoolVar(&reportJSON, "json", false, "output the report as JSON")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runPick(cmd *cobra.Command, args []string) error {
	if selectorService == nil {
		return errors.New("selector service not configured")
	}

	// A single JSON-array argument carries its own element count, so
	// the token count gate applies only to the plain form.
	if !parse.IsJSONArray(args) && len(args) < domain.TripleSize {
		return fmt.Errorf("%w: need at least %d numeric arguments, got %d",
			domain.ErrTooFewArguments, domain.TripleSize, len(args))
	}

	values, err := parse.Values(args)
	if err != nil {
		return err
	}
	logger.Debug("Parsed %d values: %v", len(values), values)

	// Advisory only: implausible readings are reported but still
	// considered by the search.
	if outliers := domain.OutOfRange(values); len(outliers) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(),
			"Warning: values outside the plausible range [0.001, 14.0]: %v\n", outliers)
	}

	triple, err := selectorService.Select(values)
	if err != nil {
		return err
	}

	report := domain.NewReport(triple)

	if reportJSON {
		return outputReportJSON(cmd, report)
	}
	return outputReport(cmd, report)
}

func outputReport(cmd *cobra.Command, report domain.Report) error {
	cmd.Printf("Best triple: %s\n", report.Triple)
	cmd.Printf("Exact mean: %.12f\n", report.Mean)
	cmd.Printf("Mean rounded UP to nearest thousandth: %.3f\n", report.MeanCeiled)
	return nil
}

func outputReportJSON(cmd *cobra.Command, report domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
