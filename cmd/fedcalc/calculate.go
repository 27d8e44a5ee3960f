package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rpgo/fedcalc/internal/calculation"
	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/rpgo/fedcalc/internal/form"
	"github.com/rpgo/fedcalc/internal/output"
	"github.com/spf13/cobra"
)

// newCalculatorCmd builds a command with one string flag per input field,
// defaulted to the calculator's default input. Values that do not parse
// are treated as zero, the same as the web form.
func newCalculatorCmd(opts *rootOptions, kind domain.Kind, use string, aliases ...string) *cobra.Command {
	var format, out string

	defaults, err := calculation.DefaultInput(kind)
	if err != nil {
		panic(err)
	}
	fields := form.Fields(defaults)

	cmd := &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   fmt.Sprintf("Run the %s", kind.Title()),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}

			values := form.Values{}
			for _, f := range fields {
				v, err := cmd.Flags().GetString(form.FlagName(f.Name))
				if err != nil {
					return err
				}
				values[f.Name] = []string{v}
			}

			started := time.Now()
			report, err := engine.Calculate(kind, form.Bind(values))
			if err != nil {
				return err
			}
			set := output.Single(report)
			if err := opts.record(cmd.Context(), set, time.Since(started)); err != nil {
				opts.logger().Warnf("record calculation: %v", err)
			}
			return emit(cmd.OutOrStdout(), set, format, out)
		},
	}

	for _, f := range fields {
		cmd.Flags().String(form.FlagName(f.Name), f.DefaultString(), f.Label)
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format ("+formatHelp()+")")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the report to this file instead of stdout")
	return cmd
}

func formatHelp() string {
	return strings.Join(append(output.AvailableFormatterNames(), "all"), "|")
}
