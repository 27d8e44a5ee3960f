package calculation

import (
	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// accumulationScale is the number of decimal places balances are rounded to
// after each period.
const accumulationScale = 8

// MaxPeriods caps the number of periods Accumulate runs.
const MaxPeriods = domain.MaxAge

// Period is one compounding step of an Accumulation.
type Period struct {
	Index         int
	Contribution  decimal.Decimal
	Growth        decimal.Decimal
	EndingBalance decimal.Decimal
}

// Accumulation is the outcome of compounding a level contribution.
type Accumulation struct {
	Balance decimal.Decimal
	Periods []Period
}

// Accumulate grows start by adding contribution at the beginning of each
// period and then applying rate, for the given number of periods:
//
//	balance = (balance + contribution) * (1 + rate)
//
// A non-positive period count returns start unchanged with no rows. Counts
// above MaxPeriods are capped. Negative rates compound losses without a floor.
// The contribution and every ending balance are rounded to accumulationScale
// places.
func Accumulate(start, contribution, rate decimal.Decimal, periods int) Accumulation {
	acc := Accumulation{Balance: start}
	if periods <= 0 {
		return acc
	}
	periods = min(periods, MaxPeriods)
	contribution = contribution.Round(accumulationScale)
	factor := decimal.NewFromInt(1).Add(rate)
	acc.Periods = make([]Period, 0, periods)
	for i := 1; i <= periods; i++ {
		funded := acc.Balance.Add(contribution)
		ending := funded.Mul(factor).Round(accumulationScale)
		acc.Periods = append(acc.Periods, Period{
			Index:         i,
			Contribution:  contribution,
			Growth:        ending.Sub(funded),
			EndingBalance: ending,
		})
		acc.Balance = ending
	}
	return acc
}

// percent converts percentage points (7 for 7%) to a fraction.
func percent(points decimal.Decimal) decimal.Decimal {
	return points.Shift(-2)
}

// horizon is the number of whole years between two ages, between 0 and
// MaxPeriods.
func horizon(currentAge, retirementAge int) int {
	if years := retirementAge - currentAge; years > 0 {
		return min(years, MaxPeriods)
	}
	return 0
}
