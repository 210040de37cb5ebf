// ustax computes a federal and optional state income-tax return from a
// YAML description of the taxpayer's year.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piechiang/usa-tax-calculator/internal/calculation"
	"github.com/piechiang/usa-tax-calculator/internal/config"
	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/output"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
	"github.com/piechiang/usa-tax-calculator/internal/states"
)

var (
	inputPath  string
	rulesPath  string
	formatName string
	verbose    bool
)

// zapLogger adapts a zap sugared logger to the calculation.Logger
// interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (z zapLogger) Debugf(format string, args ...any) { z.s.Debugf(format, args...) }
func (z zapLogger) Infof(format string, args ...any)  { z.s.Infof(format, args...) }
func (z zapLogger) Warnf(format string, args ...any)  { z.s.Warnf(format, args...) }
func (z zapLogger) Errorf(format string, args ...any) { z.s.Errorf(format, args...) }

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "ustax",
		Short:        "US federal and state income-tax calculator",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a return from a YAML input file",
		RunE:  runCompute,
	}
	computeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "taxpayer return YAML file (required)")
	computeCmd.Flags().StringVar(&rulesPath, "rules", "", "optional rules-override YAML file")
	computeCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format: console or json")
	_ = computeCmd.MarkFlagRequired("input")

	statesCmd := &cobra.Command{
		Use:   "states",
		Short: "List supported state jurisdictions",
		RunE:  runStates,
	}

	rootCmd.AddCommand(computeCmd, statesCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCompute(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	log := zapLogger{s: logger.Sugar()}

	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q", formatName)
	}

	parsed, err := config.NewInputParser().LoadReturn(inputPath)
	if err != nil {
		return err
	}

	var federalRules *rules.FederalRules
	if rulesPath != "" {
		federalRules, err = rules.LoadFile(rulesPath)
	} else {
		federalRules, err = rules.ForYear(parsed.TaxYear)
	}
	if err != nil {
		return err
	}

	calculator := calculation.NewFederalCalculator(federalRules)
	calculator.SetLogger(log)

	federal, err := calculator.Compute(parsed.Taxpayer)
	if err != nil {
		return err
	}

	doc := &output.ReturnDocument{TaxYear: federal.TaxYear, Federal: federal}
	if parsed.State != nil {
		stateResult, ok, err := states.NewRegistry().Compute(parsed.State.Code, &domain.StateTaxInput{
			Federal:           federal,
			FilingStatus:      parsed.Taxpayer.FilingStatus,
			Dependents:        parsed.Taxpayer.Dependents,
			Jurisdiction:      parsed.State.Code,
			Withholding:       parsed.State.Withholding,
			EstimatedPayments: parsed.State.EstimatedPayments,
			Specific:          parsed.State.Specific,
		})
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("unsupported jurisdiction %q; run `ustax states` for the supported list", parsed.State.Code)
		}
		doc.State = stateResult
	}

	data, err := formatter.Format(doc)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(data, '\n'))
	return err
}

func runStates(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tINCOME TAX\tLOCAL TAX")
	for _, cfg := range states.NewRegistry().Configs() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cfg.Code, cfg.Name, yesNo(cfg.HasIncomeTax), yesNo(cfg.HasLocalTax))
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
