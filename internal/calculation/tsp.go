package calculation

import (
	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectTSP compounds the current balance forward to retirement. Each year
// the employee contribution and the employer match (a percentage of salary)
// are added before the year's return is applied.
//
// TotalContributions and TotalMatch are nominal sums and do not themselves
// accrue growth, so TotalGrowth is whatever remains of the final balance.
func ProjectTSP(in domain.TSPInput) domain.TSPResult {
	years := horizon(in.CurrentAge, in.RetirementAge)
	annualMatch := in.AnnualSalary.Mul(percent(in.MatchPct))
	yearly := in.AnnualContribution.Add(annualMatch)

	acc := Accumulate(in.CurrentBalance, yearly, percent(in.AnnualReturnPct), years)

	n := decimal.NewFromInt(int64(years))
	totalContributions := in.AnnualContribution.Mul(n)
	totalMatch := annualMatch.Mul(n)
	if years == 0 {
		totalContributions, totalMatch = decimal.Zero, decimal.Zero
	}

	schedule := make([]domain.YearBalance, 0, len(acc.Periods))
	for _, p := range acc.Periods {
		schedule = append(schedule, domain.YearBalance{
			Year:          p.Index,
			Age:           in.CurrentAge + p.Index,
			Contribution:  in.AnnualContribution,
			Match:         annualMatch,
			Growth:        p.Growth,
			EndingBalance: p.EndingBalance,
		})
	}

	return domain.TSPResult{
		Years:              years,
		FinalBalance:       acc.Balance,
		TotalContributions: totalContributions,
		TotalMatch:         totalMatch,
		TotalGrowth:        acc.Balance.Sub(in.CurrentBalance).Sub(totalContributions).Sub(totalMatch),
		Schedule:           schedule,
	}
}
