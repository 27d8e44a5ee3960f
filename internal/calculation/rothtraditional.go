package calculation

import (
	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// RecommendationThreshold is the after-tax gap, in dollars, beyond which one
// account type is recommended over the other.
var RecommendationThreshold = decimal.NewFromInt(10000)

// CompareRothTraditional runs the same contribution stream through both
// account types. Traditional contributions go in pre-tax and the whole balance
// is taxed once at the retirement rate. Roth contributions are taxed at the
// current rate before they are invested and withdrawals are tax free.
//
// CurrentIncome, RetirementIncome and YearsInRetirement do not affect the result.
func CompareRothTraditional(in domain.RothTraditionalInput) domain.RothTraditionalResult {
	years := horizon(in.CurrentAge, in.RetirementAge)
	rate := percent(in.AnnualReturnPct)
	currentTax := percent(in.CurrentTaxRatePct)
	retirementTax := percent(in.RetirementTaxRatePct)
	one := decimal.NewFromInt(1)

	trad := Accumulate(decimal.Zero, in.AnnualContribution, rate, years)
	tradAfterTax := trad.Balance.Mul(one.Sub(retirementTax))
	traditional := domain.AccountOutcome{
		AccountBalance:  trad.Balance,
		AfterTaxBalance: tradAfterTax,
		TotalTaxesPaid:  trad.Balance.Sub(tradAfterTax),
		NetValue:        tradAfterTax,
	}

	rothContribution := in.AnnualContribution.Mul(one.Sub(currentTax))
	rothAcc := Accumulate(decimal.Zero, rothContribution, rate, years)
	// Nominal total of taxes paid up front; not compounded.
	rothTaxes := in.AnnualContribution.Mul(currentTax).Mul(decimal.NewFromInt(int64(years)))
	roth := domain.AccountOutcome{
		AccountBalance:  rothAcc.Balance,
		AfterTaxBalance: rothAcc.Balance,
		TotalTaxesPaid:  rothTaxes,
		NetValue:        rothAcc.Balance,
	}

	diff := roth.AfterTaxBalance.Sub(traditional.AfterTaxBalance)
	rec := Recommend(diff)

	return domain.RothTraditionalResult{
		Years:               years,
		Traditional:         traditional,
		Roth:                roth,
		Difference:          diff,
		Recommendation:      rec,
		Advice:              rec.Text(),
		TraditionalSchedule: scheduleFor(in.CurrentAge, trad),
		RothSchedule:        scheduleFor(in.CurrentAge, rothAcc),
	}
}

// Recommend classifies the Roth minus Traditional after-tax difference. The
// comparison is strict: a gap of exactly the threshold is "similar".
func Recommend(difference decimal.Decimal) domain.Recommendation {
	switch {
	case difference.GreaterThan(RecommendationThreshold):
		return domain.RecommendRoth
	case difference.LessThan(RecommendationThreshold.Neg()):
		return domain.RecommendTraditional
	default:
		return domain.RecommendSimilar
	}
}

func scheduleFor(currentAge int, acc Accumulation) []domain.YearBalance {
	rows := make([]domain.YearBalance, 0, len(acc.Periods))
	for _, p := range acc.Periods {
		rows = append(rows, domain.YearBalance{
			Year:          p.Index,
			Age:           currentAge + p.Index,
			Contribution:  p.Contribution,
			Growth:        p.Growth,
			EndingBalance: p.EndingBalance,
		})
	}
	return rows
}
