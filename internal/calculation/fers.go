package calculation

import (
	"fmt"
	"strings"

	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/rpgo/fedcalc/pkg/dateutil"
	pkgdec "github.com/rpgo/fedcalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MultiplierPolicy selects how the FERS pension multiplier is chosen.
type MultiplierPolicy string

const (
	// MultiplierFlat applies 1% per year of service to every immediate
	// retirement. This is the default.
	MultiplierFlat MultiplierPolicy = "flat"
	// MultiplierEnhanced applies 1.1% at age 62+ with 20+ years, 1% otherwise.
	// It must be selected explicitly.
	MultiplierEnhanced MultiplierPolicy = "enhanced"
)

// ParseMultiplierPolicy resolves a policy name; empty selects MultiplierFlat.
func ParseMultiplierPolicy(name string) (MultiplierPolicy, error) {
	switch MultiplierPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "", MultiplierFlat:
		return MultiplierFlat, nil
	case MultiplierEnhanced:
		return MultiplierEnhanced, nil
	default:
		return "", fmt.Errorf("unknown multiplier policy %q (want flat or enhanced)", name)
	}
}

// EligibilityRule is one entry in the ordered FERS eligibility list.
type EligibilityRule struct {
	Eligibility domain.Eligibility
	Status      string
	Immediate   bool
	Matches     func(in domain.FERSInput) bool
}

// EligibilityRules is evaluated in order and the first match wins. The
// deferred rule repeats the age 62 / 5 year condition of the first rule and
// therefore never matches; it is kept so the list reads like the published
// rule table.
var EligibilityRules = []EligibilityRule{
	{
		Eligibility: domain.EligibleImmediate,
		Status:      "Eligible for immediate retirement",
		Immediate:   true,
		Matches: func(in domain.FERSInput) bool {
			return in.RetirementAge >= 62 && atLeast(in.YearsOfService, 5)
		},
	},
	{
		Eligibility: domain.EligibleImmediate20,
		Status:      "Eligible for immediate retirement (20+ years)",
		Immediate:   true,
		Matches: func(in domain.FERSInput) bool {
			return in.RetirementAge >= 60 && atLeast(in.YearsOfService, 20)
		},
	},
	{
		Eligibility: domain.EligibleImmediate30,
		Status:      "Eligible for immediate retirement (30+ years)",
		Immediate:   true,
		Matches: func(in domain.FERSInput) bool {
			return in.RetirementAge >= 57 && atLeast(in.YearsOfService, 30)
		},
	},
	{
		Eligibility: domain.EligibleSpecialProvisions,
		Status:      "Eligible for immediate retirement (special provisions)",
		Immediate:   true,
		Matches: func(in domain.FERSInput) bool {
			return in.HasSpecialProvisions && in.RetirementAge >= 50 && atLeast(in.YearsOfService, 20)
		},
	},
	{
		Eligibility: domain.EligibleDeferred,
		Status:      "Eligible for deferred retirement",
		Matches: func(in domain.FERSInput) bool {
			return in.RetirementAge >= 62 && atLeast(in.YearsOfService, 5)
		},
	},
}

var notEligibleRule = EligibilityRule{
	Eligibility: domain.NotEligible,
	Status:      "Not eligible for retirement",
}

// EvaluateEligibility returns the first rule whose condition holds.
func EvaluateEligibility(in domain.FERSInput) EligibilityRule {
	for _, rule := range EligibilityRules {
		if rule.Matches(in) {
			return rule
		}
	}
	return notEligibleRule
}

// EstimateFERS classifies eligibility, then computes the annuity and, for
// immediate retirements before 62 with 30+ years, the FERS supplement.
func EstimateFERS(in domain.FERSInput, policy MultiplierPolicy) domain.FERSResult {
	rule := EvaluateEligibility(in)

	multiplier := decimal.Zero
	if rule.Immediate {
		multiplier = determineMultiplier(policy, in.RetirementAge, in.YearsOfService)
	}

	annual := in.HighThreeAverage.Mul(multiplier).Mul(in.YearsOfService)
	monthly := pkgdec.NewMoneyFromDecimal(annual).Monthly().Decimal

	supplement := decimal.Zero
	if rule.Immediate && in.RetirementAge < 62 && atLeast(in.YearsOfService, 30) {
		supplement = CalculateFERSSpecialRetirementSupplement(in.SupplementSalary, in.SupplementYearsOfService)
	}

	return domain.FERSResult{
		Eligibility:         rule.Eligibility,
		EligibilityStatus:   rule.Status,
		Immediate:           rule.Immediate,
		PensionMultiplier:   multiplier,
		AnnualPension:       annual,
		MonthlyPension:      monthly,
		SpecialSupplement:   supplement,
		TotalMonthlyBenefit: monthly.Add(supplement),
		Scenarios:           QualifyingScenarios(in),
	}
}

// determineMultiplier returns the per-year pension multiplier for an
// immediate retirement.
func determineMultiplier(policy MultiplierPolicy, retirementAge int, serviceYears decimal.Decimal) decimal.Decimal {
	if policy == MultiplierEnhanced && retirementAge >= 62 && atLeast(serviceYears, 20) {
		return decimal.NewFromFloat(0.011)
	}
	return decimal.NewFromFloat(0.010)
}

// CalculateFERSSpecialRetirementSupplement returns the monthly FERS supplement.
// The Social Security estimate is a flat 40% of salary, prorated by service
// years (capped at 40) over a 40 year career.
func CalculateFERSSpecialRetirementSupplement(salary, serviceYears decimal.Decimal) decimal.Decimal {
	forty := decimal.NewFromInt(40)
	ssEstimate := salary.Mul(decimal.NewFromFloat(0.4))
	years := decimal.Min(serviceYears, forty)
	return ssEstimate.Mul(years).Div(forty).Div(decimal.NewFromInt(12))
}

type scenarioTemplate struct {
	key         string
	name        string
	description string
	minYears    int64
}

var scenarioTemplates = []scenarioTemplate{
	{"mra_30", "MRA + 30", "Retire at your Minimum Retirement Age%s with 30 years of service", 30},
	{"age_60_20", "Age 60 + 20", "Retire at age 60 with 20 years of service", 20},
	{"age_62_5", "Age 62 + 5", "Retire at age 62 with at least 5 years of service", 5},
}

// QualifyingScenarios lists the standard retirement paths whose service
// requirement is met. It is informational and does not feed the estimate.
func QualifyingScenarios(in domain.FERSInput) []domain.RetirementScenario {
	mra := ""
	if in.BirthYear > 0 {
		years, months := dateutil.MinimumRetirementAge(in.BirthYear)
		mra = " (" + dateutil.FormatMRA(years, months) + ")"
	}

	out := make([]domain.RetirementScenario, 0, len(scenarioTemplates))
	for _, t := range scenarioTemplates {
		if !atLeast(in.YearsOfService, t.minYears) {
			continue
		}
		desc := t.description
		if strings.Contains(desc, "%s") {
			desc = fmt.Sprintf(desc, mra)
		}
		out = append(out, domain.RetirementScenario{
			Key:               t.key,
			Name:              t.name,
			Description:       desc,
			MinYearsOfService: decimal.NewFromInt(t.minYears),
		})
	}
	return out
}

func atLeast(v decimal.Decimal, n int64) bool {
	return v.GreaterThanOrEqual(decimal.NewFromInt(n))
}
