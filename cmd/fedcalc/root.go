package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rpgo/fedcalc/internal/calculation"
	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/rpgo/fedcalc/internal/output"
	"github.com/rpgo/fedcalc/internal/recorder"
	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose    bool
	multiplier string
	usageDB    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "fedcalc",
		Short:        "Federal employee retirement calculators",
		Long:         "fedcalc projects TSP growth, compares Roth and Traditional TSP contributions, and estimates FERS pensions.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log calculation details to stderr")
	cmd.PersistentFlags().StringVar(&opts.multiplier, "multiplier", string(calculation.MultiplierFlat), "FERS multiplier policy (flat|enhanced)")
	cmd.PersistentFlags().StringVar(&opts.usageDB, "usage-db", "", "record anonymous usage events to this SQLite file")

	cmd.AddCommand(
		newCalculatorCmd(opts, domain.KindTSP, "tsp"),
		newCalculatorCmd(opts, domain.KindRothTraditional, "roth", "roth-traditional"),
		newCalculatorCmd(opts, domain.KindFERS, "fers", "pension"),
		newRunCmd(opts),
		newExampleConfigCmd(),
		newServeCmd(opts),
	)
	return cmd
}

func (o *rootOptions) logger() calculation.Logger {
	if o.verbose {
		return calculation.NewStdLogger(true)
	}
	return calculation.NopLogger{}
}

func (o *rootOptions) engine() (*calculation.CalculationEngine, error) {
	policy, err := calculation.ParseMultiplierPolicy(o.multiplier)
	if err != nil {
		return nil, err
	}
	engine := calculation.NewCalculationEngine()
	engine.Policy = policy
	engine.SetLogger(o.logger())
	return engine, nil
}

// recorder opens the usage database when --usage-db is set.
func (o *rootOptions) recorder() (recorder.Recorder, error) {
	if o.usageDB == "" {
		return recorder.NewNoopRecorder(), nil
	}
	return recorder.NewSQLiteRecorder(o.usageDB, o.logger())
}

func (o *rootOptions) record(ctx context.Context, set *domain.ReportSet, took time.Duration) error {
	rec, err := o.recorder()
	if err != nil {
		return err
	}
	defer rec.Close()
	for _, r := range set.Reports {
		if err := rec.RecordCalculation(ctx, recorder.NewCalculationEvent(r, recorder.SourceCLI, took)); err != nil {
			return err
		}
	}
	return nil
}

// emit prints set to w when no output file is named, otherwise writes the
// report files and lists them.
func emit(w io.Writer, set *domain.ReportSet, format, out string) error {
	if out == "" && output.NormalizeFormatName(format) != "all" {
		f, err := output.Lookup(format)
		if err != nil {
			return err
		}
		data, err := f.Format(set)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	written, err := output.GenerateReport(set, format, out)
	if err != nil {
		return err
	}
	for _, name := range written {
		fmt.Fprintf(w, "Report written to %s\n", name)
	}
	return nil
}
