package domain

import (
	pkgdec "github.com/rpgo/fedcalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MaxAge is the largest age, and so the longest horizon, any calculator
// accepts. Ages are clamped to 0..MaxAge.
const MaxAge = 120

func clampAge(age int) int {
	switch {
	case age < 0:
		return 0
	case age > MaxAge:
		return MaxAge
	}
	return age
}

// limitAmount zeroes amounts outside pkg/decimal's input limits, the same as
// an entry that does not parse.
func limitAmount(d decimal.Decimal) decimal.Decimal {
	if pkgdec.WithinLimits(d) {
		return d
	}
	return decimal.Zero
}

// Bounded returns in with ages clamped and oversized amounts zeroed.
func (in TSPInput) Bounded() TSPInput {
	in.CurrentAge = clampAge(in.CurrentAge)
	in.RetirementAge = clampAge(in.RetirementAge)
	in.CurrentBalance = limitAmount(in.CurrentBalance)
	in.AnnualContribution = limitAmount(in.AnnualContribution)
	in.AnnualReturnPct = limitAmount(in.AnnualReturnPct)
	in.MatchPct = limitAmount(in.MatchPct)
	in.AnnualSalary = limitAmount(in.AnnualSalary)
	return in
}

// Bounded returns in with ages clamped and oversized amounts zeroed.
func (in RothTraditionalInput) Bounded() RothTraditionalInput {
	in.CurrentAge = clampAge(in.CurrentAge)
	in.RetirementAge = clampAge(in.RetirementAge)
	in.YearsInRetirement = clampAge(in.YearsInRetirement)
	in.AnnualContribution = limitAmount(in.AnnualContribution)
	in.CurrentIncome = limitAmount(in.CurrentIncome)
	in.RetirementIncome = limitAmount(in.RetirementIncome)
	in.CurrentTaxRatePct = limitAmount(in.CurrentTaxRatePct)
	in.RetirementTaxRatePct = limitAmount(in.RetirementTaxRatePct)
	in.AnnualReturnPct = limitAmount(in.AnnualReturnPct)
	return in
}

// Bounded returns in with ages clamped and oversized amounts zeroed.
func (in FERSInput) Bounded() FERSInput {
	in.CurrentAge = clampAge(in.CurrentAge)
	in.RetirementAge = clampAge(in.RetirementAge)
	in.YearsOfService = limitAmount(in.YearsOfService)
	in.HighThreeAverage = limitAmount(in.HighThreeAverage)
	in.SupplementSalary = limitAmount(in.SupplementSalary)
	in.SupplementYearsOfService = limitAmount(in.SupplementYearsOfService)
	return in
}
