package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies one of the hosted calculators.
type Kind string

const (
	KindTSP             Kind = "tsp"
	KindRothTraditional Kind = "roth-traditional"
	KindFERS            Kind = "fers"
)

// Kinds lists the calculators in display order.
var Kinds = []Kind{KindTSP, KindRothTraditional, KindFERS}

var kindAliases = map[string]Kind{
	"tsp":              KindTSP,
	"roth":             KindRothTraditional,
	"roth-traditional": KindRothTraditional,
	"roth_traditional": KindRothTraditional,
	"fers":             KindFERS,
	"pension":          KindFERS,
}

// ErrUnknownCalculator is returned for calculator names that match no Kind.
var ErrUnknownCalculator = errors.New("unknown calculator")

// ParseKind resolves a calculator name or alias.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCalculator, name)
}

// Title returns the human-readable calculator name.
func (k Kind) Title() string {
	switch k {
	case KindTSP:
		return "TSP Growth Projection"
	case KindRothTraditional:
		return "Roth vs. Traditional TSP"
	case KindFERS:
		return "FERS Pension Estimator"
	default:
		return string(k)
	}
}

// Violation is a non-fatal input warning. Calculations still run.
type Violation struct {
	Field   string `yaml:"field" json:"field"`
	Message string `yaml:"message" json:"message"`
}

func (v Violation) String() string { return v.Field + ": " + v.Message }

// TSPInput holds the TSP projector inputs. Percent fields are percentage points.
type TSPInput struct {
	CurrentAge         int             `yaml:"current_age" json:"current_age"`
	RetirementAge      int             `yaml:"retirement_age" json:"retirement_age"`
	CurrentBalance     decimal.Decimal `yaml:"current_balance" json:"current_balance"`
	AnnualContribution decimal.Decimal `yaml:"annual_contribution" json:"annual_contribution"`
	AnnualReturnPct    decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	MatchPct           decimal.Decimal `yaml:"match_percentage" json:"match_percentage"`
	AnnualSalary       decimal.Decimal `yaml:"annual_salary" json:"annual_salary"`
}

// DefaultTSPInput returns the values a fresh TSP form starts with.
func DefaultTSPInput() TSPInput {
	return TSPInput{
		CurrentAge:         35,
		RetirementAge:      62,
		CurrentBalance:     decimal.NewFromInt(50000),
		AnnualContribution: decimal.NewFromInt(12000),
		AnnualReturnPct:    decimal.NewFromInt(7),
		MatchPct:           decimal.NewFromInt(5),
		AnnualSalary:       decimal.NewFromInt(80000),
	}
}

// YearBalance is one row of a year-by-year accumulation table.
type YearBalance struct {
	Year          int             `json:"year"`
	Age           int             `json:"age"`
	Contribution  decimal.Decimal `json:"contribution"`
	Match         decimal.Decimal `json:"match"`
	Growth        decimal.Decimal `json:"growth"`
	EndingBalance decimal.Decimal `json:"ending_balance"`
}

// TSPResult is the output of the TSP projector.
type TSPResult struct {
	Years              int             `json:"years"`
	FinalBalance       decimal.Decimal `json:"final_balance"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalMatch         decimal.Decimal `json:"total_match"`
	// TotalGrowth is the residual after removing the starting balance and the
	// nominal contribution and match sums.
	TotalGrowth decimal.Decimal `json:"total_growth"`
	Schedule    []YearBalance   `json:"schedule,omitempty"`
}

// RothTraditionalInput holds the comparator inputs. CurrentIncome,
// RetirementIncome and YearsInRetirement are collected for display only.
type RothTraditionalInput struct {
	CurrentAge           int             `yaml:"current_age" json:"current_age"`
	RetirementAge        int             `yaml:"retirement_age" json:"retirement_age"`
	AnnualContribution   decimal.Decimal `yaml:"annual_contribution" json:"annual_contribution"`
	CurrentIncome        decimal.Decimal `yaml:"current_income" json:"current_income"`
	RetirementIncome     decimal.Decimal `yaml:"retirement_income" json:"retirement_income"`
	CurrentTaxRatePct    decimal.Decimal `yaml:"current_tax_rate" json:"current_tax_rate"`
	RetirementTaxRatePct decimal.Decimal `yaml:"retirement_tax_rate" json:"retirement_tax_rate"`
	AnnualReturnPct      decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	YearsInRetirement    int             `yaml:"years_in_retirement" json:"years_in_retirement"`
}

// DefaultRothTraditionalInput returns the comparator's starting values.
func DefaultRothTraditionalInput() RothTraditionalInput {
	return RothTraditionalInput{
		CurrentAge:           30,
		RetirementAge:        65,
		AnnualContribution:   decimal.NewFromInt(6500),
		CurrentIncome:        decimal.NewFromInt(75000),
		RetirementIncome:     decimal.NewFromInt(60000),
		CurrentTaxRatePct:    decimal.NewFromInt(22),
		RetirementTaxRatePct: decimal.NewFromInt(12),
		AnnualReturnPct:      decimal.NewFromInt(7),
		YearsInRetirement:    25,
	}
}

// AccountOutcome summarizes one account type at retirement.
type AccountOutcome struct {
	AccountBalance  decimal.Decimal `json:"account_balance"`
	AfterTaxBalance decimal.Decimal `json:"after_tax_balance"`
	TotalTaxesPaid  decimal.Decimal `json:"total_taxes_paid"`
	NetValue        decimal.Decimal `json:"net_value"`
}

// Recommendation is the three-way comparator verdict.
type Recommendation string

const (
	RecommendRoth        Recommendation = "roth"
	RecommendTraditional Recommendation = "traditional"
	RecommendSimilar     Recommendation = "similar"
)

// Text returns the sentence shown to the user.
func (r Recommendation) Text() string {
	switch r {
	case RecommendRoth:
		return "Roth TSP appears better for your situation"
	case RecommendTraditional:
		return "Traditional TSP appears better for your situation"
	default:
		return "Both options are similar - consider diversifying with both"
	}
}

// RothTraditionalResult compares after-tax wealth of both account types.
type RothTraditionalResult struct {
	Years               int             `json:"years"`
	Traditional         AccountOutcome  `json:"traditional"`
	Roth                AccountOutcome  `json:"roth"`
	Difference          decimal.Decimal `json:"difference"`
	Recommendation      Recommendation  `json:"recommendation"`
	Advice              string          `json:"advice"`
	TraditionalSchedule []YearBalance   `json:"traditional_schedule,omitempty"`
	RothSchedule        []YearBalance   `json:"roth_schedule,omitempty"`
}

// RetirementType is collected by the FERS form but does not change the math.
type RetirementType string

const (
	RetirementImmediate  RetirementType = "immediate"
	RetirementDeferred   RetirementType = "deferred"
	RetirementDisability RetirementType = "disability"
)

// Valid reports whether t is a known retirement type.
func (t RetirementType) Valid() bool {
	switch t {
	case RetirementImmediate, RetirementDeferred, RetirementDisability:
		return true
	}
	return false
}

// FERSInput holds the pension estimator inputs.
type FERSInput struct {
	CurrentAge               int             `yaml:"current_age" json:"current_age"`
	RetirementAge            int             `yaml:"retirement_age" json:"retirement_age"`
	YearsOfService           decimal.Decimal `yaml:"years_of_service" json:"years_of_service"`
	HighThreeAverage         decimal.Decimal `yaml:"high_three_average" json:"high_three_average"`
	SupplementSalary         decimal.Decimal `yaml:"supplement_salary" json:"supplement_salary"`
	SupplementYearsOfService decimal.Decimal `yaml:"supplement_years_of_service" json:"supplement_years_of_service"`
	RetirementType           RetirementType  `yaml:"retirement_type" json:"retirement_type"`
	HasSpecialProvisions     bool            `yaml:"has_special_provisions" json:"has_special_provisions"`

	// BirthYear is optional and only annotates the MRA scenario text.
	BirthYear int `yaml:"birth_year,omitempty" json:"birth_year,omitempty"`
}

// DefaultFERSInput returns the estimator's starting values.
func DefaultFERSInput() FERSInput {
	return FERSInput{
		CurrentAge:               45,
		RetirementAge:            57,
		YearsOfService:           decimal.NewFromInt(30),
		HighThreeAverage:         decimal.NewFromInt(95000),
		SupplementSalary:         decimal.NewFromInt(95000),
		SupplementYearsOfService: decimal.NewFromInt(30),
		RetirementType:           RetirementImmediate,
	}
}

// Eligibility is the machine key of a FERS eligibility rule.
type Eligibility string

const (
	EligibleImmediate         Eligibility = "immediate"
	EligibleImmediate20       Eligibility = "immediate_20"
	EligibleImmediate30       Eligibility = "immediate_30"
	EligibleSpecialProvisions Eligibility = "special_provisions"
	EligibleDeferred          Eligibility = "deferred"
	NotEligible               Eligibility = "not_eligible"
)

// RetirementScenario is an informational retirement path the user qualifies for.
type RetirementScenario struct {
	Key               string          `json:"key"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	MinYearsOfService decimal.Decimal `json:"min_years_of_service"`
}

// FERSResult is the output of the pension estimator.
type FERSResult struct {
	Eligibility         Eligibility          `json:"eligibility"`
	EligibilityStatus   string               `json:"eligibility_status"`
	Immediate           bool                 `json:"immediate"`
	PensionMultiplier   decimal.Decimal      `json:"pension_multiplier"`
	AnnualPension       decimal.Decimal      `json:"annual_pension"`
	MonthlyPension      decimal.Decimal      `json:"monthly_pension"`
	SpecialSupplement   decimal.Decimal      `json:"special_supplement"`
	TotalMonthlyBenefit decimal.Decimal      `json:"total_monthly_benefit"`
	Scenarios           []RetirementScenario `json:"scenarios"`
}
