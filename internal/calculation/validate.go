package calculation

import (
	"fmt"

	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	minAge = 18
	maxAge = 100
)

var (
	hundred        = decimal.NewFromInt(100)
	maxServiceYear = decimal.NewFromInt(50)
)

// violations collects input warnings. Nothing here stops a calculation.
type violations []domain.Violation

func (v *violations) add(field, format string, args ...any) {
	*v = append(*v, domain.Violation{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *violations) ages(current, retirement int) {
	if current < minAge || current > maxAge {
		v.add("current_age", "must be between %d and %d", minAge, maxAge)
	}
	if retirement < minAge || retirement > maxAge {
		v.add("retirement_age", "must be between %d and %d", minAge, maxAge)
	}
	if retirement <= current {
		v.add("retirement_age", "must be greater than current age; projection covers zero years")
	}
}

func (v *violations) nonNegative(field string, d decimal.Decimal) {
	if d.IsNegative() {
		v.add(field, "cannot be negative")
	}
}

func (v *violations) between(field string, d, lo, hi decimal.Decimal) {
	if d.LessThan(lo) || d.GreaterThan(hi) {
		v.add(field, "must be between %s and %s", lo.String(), hi.String())
	}
}

// ValidateTSP checks TSP projector inputs.
func ValidateTSP(in domain.TSPInput) []domain.Violation {
	var v violations
	v.ages(in.CurrentAge, in.RetirementAge)
	v.nonNegative("current_balance", in.CurrentBalance)
	v.nonNegative("annual_contribution", in.AnnualContribution)
	v.nonNegative("annual_salary", in.AnnualSalary)
	v.between("annual_return", in.AnnualReturnPct, hundred.Neg(), hundred)
	v.between("match_percentage", in.MatchPct, decimal.Zero, hundred)
	return v
}

// ValidateRothTraditional checks comparator inputs.
func ValidateRothTraditional(in domain.RothTraditionalInput) []domain.Violation {
	var v violations
	v.ages(in.CurrentAge, in.RetirementAge)
	v.nonNegative("annual_contribution", in.AnnualContribution)
	v.nonNegative("current_income", in.CurrentIncome)
	v.nonNegative("retirement_income", in.RetirementIncome)
	v.between("current_tax_rate", in.CurrentTaxRatePct, decimal.Zero, hundred)
	v.between("retirement_tax_rate", in.RetirementTaxRatePct, decimal.Zero, hundred)
	v.between("annual_return", in.AnnualReturnPct, hundred.Neg(), hundred)
	if in.YearsInRetirement < 0 {
		v.add("years_in_retirement", "cannot be negative")
	}
	return v
}

// ValidateFERS checks pension estimator inputs.
func ValidateFERS(in domain.FERSInput) []domain.Violation {
	var v violations
	v.ages(in.CurrentAge, in.RetirementAge)
	v.between("years_of_service", in.YearsOfService, decimal.Zero, maxServiceYear)
	v.between("supplement_years_of_service", in.SupplementYearsOfService, decimal.Zero, maxServiceYear)
	v.nonNegative("high_three_average", in.HighThreeAverage)
	v.nonNegative("supplement_salary", in.SupplementSalary)
	if in.RetirementType != "" && !in.RetirementType.Valid() {
		v.add("retirement_type", "must be immediate, deferred or disability")
	}
	return v
}
