package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the detailed console report: inputs,
// warnings, results, assumptions and the year-by-year schedule.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(set *domain.ReportSet) ([]byte, error) {
	var buf bytes.Buffer

	for i, r := range set.Reports {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		title := strings.ToUpper(r.Calculator.Title())
		if r.Name != "" && r.Name != r.Calculator.Title() {
			title += ": " + r.Name
		}
		fmt.Fprintln(&buf, strings.Repeat("=", 80))
		fmt.Fprintln(&buf, title)
		fmt.Fprintln(&buf, strings.Repeat("=", 80))
		fmt.Fprintln(&buf)

		if r.HasWarnings() {
			fmt.Fprintln(&buf, "INPUT WARNINGS:")
			for _, w := range r.Warnings {
				fmt.Fprintf(&buf, "• %s\n", w)
			}
			fmt.Fprintln(&buf)
		}

		switch {
		case r.TSP != nil:
			writeTSP(&buf, r.TSPInput, r.TSP)
		case r.RothTraditional != nil:
			writeRothTraditional(&buf, r.RothTraditionalInput, r.RothTraditional)
		case r.FERS != nil:
			writeFERS(&buf, r.FERSInput, r.FERS)
		}

		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range GenerateAssumptions(r) {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
	}

	return buf.Bytes(), nil
}

func writeTSP(buf *bytes.Buffer, in *domain.TSPInput, res *domain.TSPResult) {
	if in != nil {
		fmt.Fprintln(buf, "INPUTS:")
		fmt.Fprintf(buf, "  Current Age:            %d\n", in.CurrentAge)
		fmt.Fprintf(buf, "  Retirement Age:         %d\n", in.RetirementAge)
		fmt.Fprintf(buf, "  Current Balance:        %s\n", FormatCurrency(in.CurrentBalance))
		fmt.Fprintf(buf, "  Annual Contribution:    %s\n", FormatCurrency(in.AnnualContribution))
		fmt.Fprintf(buf, "  Annual Salary:          %s\n", FormatCurrency(in.AnnualSalary))
		fmt.Fprintf(buf, "  Agency Match:           %s\n", FormatPercentage(in.MatchPct))
		fmt.Fprintf(buf, "  Annual Return:          %s\n", FormatPercentage(in.AnnualReturnPct))
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf, "PROJECTION:")
	fmt.Fprintln(buf, "-----------")
	fmt.Fprintf(buf, "  Years to Retirement:    %d\n", res.Years)
	fmt.Fprintf(buf, "  Final Balance:          %s\n", FormatCurrency(res.FinalBalance))
	fmt.Fprintf(buf, "  Total Contributions:    %s\n", FormatCurrency(res.TotalContributions))
	fmt.Fprintf(buf, "  Total Agency Match:     %s\n", FormatCurrency(res.TotalMatch))
	fmt.Fprintf(buf, "  Total Growth:           %s\n", FormatCurrency(res.TotalGrowth))
	fmt.Fprintln(buf)
	writeSchedule(buf, "YEAR-BY-YEAR BALANCE", res.Schedule, true)
}

func writeRothTraditional(buf *bytes.Buffer, in *domain.RothTraditionalInput, res *domain.RothTraditionalResult) {
	if in != nil {
		fmt.Fprintln(buf, "INPUTS:")
		fmt.Fprintf(buf, "  Current Age:            %d\n", in.CurrentAge)
		fmt.Fprintf(buf, "  Retirement Age:         %d\n", in.RetirementAge)
		fmt.Fprintf(buf, "  Annual Contribution:    %s\n", FormatCurrency(in.AnnualContribution))
		fmt.Fprintf(buf, "  Current Income:         %s\n", FormatCurrency(in.CurrentIncome))
		fmt.Fprintf(buf, "  Retirement Income:      %s\n", FormatCurrency(in.RetirementIncome))
		fmt.Fprintf(buf, "  Current Tax Rate:       %s\n", FormatPercentage(in.CurrentTaxRatePct))
		fmt.Fprintf(buf, "  Retirement Tax Rate:    %s\n", FormatPercentage(in.RetirementTaxRatePct))
		fmt.Fprintf(buf, "  Annual Return:          %s\n", FormatPercentage(in.AnnualReturnPct))
		fmt.Fprintf(buf, "  Years in Retirement:    %d\n", in.YearsInRetirement)
		fmt.Fprintln(buf)
	}
	fmt.Fprintf(buf, "%-35s %15s %15s %15s\n", "COMPONENT", "TRADITIONAL", "ROTH", "DIFFERENCE")
	fmt.Fprintln(buf, strings.Repeat("-", 82))
	cmpLine(buf, "Account Balance", res.Traditional.AccountBalance, res.Roth.AccountBalance)
	cmpLine(buf, "After-Tax Balance", res.Traditional.AfterTaxBalance, res.Roth.AfterTaxBalance)
	cmpLine(buf, "Taxes Paid", res.Traditional.TotalTaxesPaid, res.Roth.TotalTaxesPaid)
	fmt.Fprintln(buf, strings.Repeat("-", 82))
	cmpLine(buf, "NET VALUE", res.Traditional.NetValue, res.Roth.NetValue)
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "RECOMMENDATION:")
	fmt.Fprintf(buf, "  %s\n", res.Recommendation.Text())
	if res.Advice != "" && res.Advice != res.Recommendation.Text() {
		fmt.Fprintf(buf, "  %s\n", res.Advice)
	}
	fmt.Fprintln(buf)
	writeSchedule(buf, "TRADITIONAL BALANCE", res.TraditionalSchedule, false)
	writeSchedule(buf, "ROTH BALANCE", res.RothSchedule, false)
}

func writeFERS(buf *bytes.Buffer, in *domain.FERSInput, res *domain.FERSResult) {
	if in != nil {
		fmt.Fprintln(buf, "INPUTS:")
		fmt.Fprintf(buf, "  Current Age:            %d\n", in.CurrentAge)
		fmt.Fprintf(buf, "  Retirement Age:         %d\n", in.RetirementAge)
		fmt.Fprintf(buf, "  Years of Service:       %s\n", in.YearsOfService.String())
		fmt.Fprintf(buf, "  High-3 Average:         %s\n", FormatCurrency(in.HighThreeAverage))
		fmt.Fprintf(buf, "  Supplement Salary:      %s\n", FormatCurrency(in.SupplementSalary))
		fmt.Fprintf(buf, "  Supplement Service:     %s\n", in.SupplementYearsOfService.String())
		fmt.Fprintf(buf, "  Retirement Type:        %s\n", in.RetirementType)
		fmt.Fprintf(buf, "  Special Provisions:     %t\n", in.HasSpecialProvisions)
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf, "ELIGIBILITY:")
	fmt.Fprintf(buf, "  %s\n", res.EligibilityStatus)
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "ESTIMATED BENEFIT:")
	fmt.Fprintln(buf, "------------------")
	fmt.Fprintf(buf, "  Pension Multiplier:     %s\n", FormatMultiplier(res.PensionMultiplier))
	fmt.Fprintf(buf, "  Annual Pension:         %s\n", FormatCurrency(res.AnnualPension))
	fmt.Fprintf(buf, "  Monthly Pension:        %s\n", FormatCurrency(res.MonthlyPension))
	fmt.Fprintf(buf, "  FERS Supplement:        %s\n", FormatCurrency(res.SpecialSupplement))
	fmt.Fprintf(buf, "  TOTAL MONTHLY BENEFIT:  %s\n", FormatCurrency(res.TotalMonthlyBenefit))
	fmt.Fprintln(buf)
	if len(res.Scenarios) > 0 {
		fmt.Fprintln(buf, "QUALIFYING SCENARIOS:")
		for _, s := range res.Scenarios {
			fmt.Fprintf(buf, "• %s: %s\n", s.Name, s.Description)
		}
		fmt.Fprintln(buf)
	}
}

func writeSchedule(buf *bytes.Buffer, title string, rows []domain.YearBalance, withMatch bool) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(buf, title+":")
	if withMatch {
		fmt.Fprintf(buf, "%6s %5s %14s %14s %14s %16s\n", "YEAR", "AGE", "CONTRIBUTION", "MATCH", "GROWTH", "BALANCE")
	} else {
		fmt.Fprintf(buf, "%6s %5s %14s %14s %16s\n", "YEAR", "AGE", "CONTRIBUTION", "GROWTH", "BALANCE")
	}
	for _, y := range rows {
		if withMatch {
			fmt.Fprintf(buf, "%6d %5d %14s %14s %14s %16s\n", y.Year, y.Age,
				FormatCurrency(y.Contribution), FormatCurrency(y.Match), FormatCurrency(y.Growth), FormatCurrency(y.EndingBalance))
			continue
		}
		fmt.Fprintf(buf, "%6d %5d %14s %14s %16s\n", y.Year, y.Age,
			FormatCurrency(y.Contribution), FormatCurrency(y.Growth), FormatCurrency(y.EndingBalance))
	}
	fmt.Fprintln(buf)
}

func cmpLine(buf *bytes.Buffer, label string, traditional, roth decimal.Decimal) {
	diff := roth.Sub(traditional)
	fmt.Fprintf(buf, "%-35s %15s %15s %15s\n", label, FormatCurrency(traditional), FormatCurrency(roth), FormatCurrency(diff))
}
