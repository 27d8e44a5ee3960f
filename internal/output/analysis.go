package output

import (
	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Metric is one headline figure of a report.
type Metric struct {
	Label string
	Value decimal.Decimal
	// Text is the display form; currency unless the metric says otherwise.
	Text string
}

func money(label string, v decimal.Decimal) Metric {
	return Metric{Label: label, Value: v, Text: FormatCurrency(v)}
}

// KeyMetrics extracts the headline figures shown by the summary formatters.
// Extracted from the formatters for testability.
func KeyMetrics(r *domain.Report) []Metric {
	switch {
	case r.TSP != nil:
		res := r.TSP
		return []Metric{
			money("Final Balance", res.FinalBalance),
			money("Total Contributions", res.TotalContributions),
			money("Total Match", res.TotalMatch),
			money("Total Growth", res.TotalGrowth),
			{Label: "Years", Value: decimal.NewFromInt(int64(res.Years)), Text: intToString(res.Years)},
		}
	case r.RothTraditional != nil:
		res := r.RothTraditional
		return []Metric{
			money("Traditional After-Tax", res.Traditional.AfterTaxBalance),
			money("Roth After-Tax", res.Roth.AfterTaxBalance),
			money("Traditional Net Value", res.Traditional.NetValue),
			money("Roth Net Value", res.Roth.NetValue),
			money("Difference (Roth - Traditional)", res.Difference),
		}
	case r.FERS != nil:
		res := r.FERS
		return []Metric{
			money("Annual Pension", res.AnnualPension),
			money("Monthly Pension", res.MonthlyPension),
			money("FERS Supplement", res.SpecialSupplement),
			money("Total Monthly Benefit", res.TotalMonthlyBenefit),
			{Label: "Pension Multiplier", Value: res.PensionMultiplier, Text: FormatMultiplier(res.PensionMultiplier)},
		}
	}
	return nil
}

// Verdict returns the one-line conclusion of a report: the comparator
// recommendation, the FERS eligibility status, or the TSP final balance.
func Verdict(r *domain.Report) string {
	switch {
	case r.TSP != nil:
		return "Projected balance at retirement: " + FormatCurrency(r.TSP.FinalBalance)
	case r.RothTraditional != nil:
		return r.RothTraditional.Recommendation.Text()
	case r.FERS != nil:
		return r.FERS.EligibilityStatus
	}
	return ""
}
