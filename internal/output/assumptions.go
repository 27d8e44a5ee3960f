package output

import (
	"fmt"

	"github.com/rpgo/fedcalc/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions shared by every calculator.
var DefaultAssumptions = []string{
	"All figures are nominal; no inflation adjustment is applied",
	"Amounts are estimates and are rounded to whole dollars for display",
}

// GenerateAssumptions lists the assumptions behind one report, using its inputs.
func GenerateAssumptions(r *domain.Report) []string {
	out := append([]string(nil), DefaultAssumptions...)
	switch {
	case r.TSPInput != nil:
		in := r.TSPInput
		out = append(out,
			"Contributions and agency match are added at the start of each year, then the balance grows for the year",
			fmt.Sprintf("Annual return: %s; agency match: %s of %s salary", FormatPercentage(in.AnnualReturnPct), FormatPercentage(in.MatchPct), FormatCurrency(in.AnnualSalary)),
			"Total contributions and match are simple sums; growth is the remainder",
		)
	case r.RothTraditionalInput != nil:
		in := r.RothTraditionalInput
		out = append(out,
			fmt.Sprintf("Traditional withdrawals taxed at %s; Roth contributions taxed at %s", FormatPercentage(in.RetirementTaxRatePct), FormatPercentage(in.CurrentTaxRatePct)),
			fmt.Sprintf("Both accounts earn %s per year", FormatPercentage(in.AnnualReturnPct)),
			"Income and years in retirement are shown for reference and do not change the comparison",
		)
	case r.FERSInput != nil:
		multiplier := "Pension multiplier applies only to immediate retirements"
		if r.FERS != nil && r.FERS.Immediate {
			multiplier = fmt.Sprintf("Pension multiplier: %s per year of service", FormatMultiplier(r.FERS.PensionMultiplier))
		}
		out = append(out,
			multiplier,
			"FERS supplement estimates Social Security as 40% of salary, prorated over a 40 year career",
			"Retirement type is shown for reference and does not change the estimate",
		)
	}
	return out
}
