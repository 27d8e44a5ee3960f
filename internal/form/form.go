// Package form maps calculator inputs to and from flat string fields, as
// submitted by HTML forms and command-line flags.
package form

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rpgo/fedcalc/internal/domain"
	pkgdec "github.com/rpgo/fedcalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Field describes one form input.
type Field struct {
	Name    string
	Label   string
	Type    string // number, checkbox or select
	Step    string
	Min     string
	Max     string
	Value   string
	Checked bool
	Options []string
}

var maxAge = strconv.Itoa(domain.MaxAge)

func intField(name, label string, v int) Field {
	return Field{Name: name, Label: label, Type: "number", Step: "1", Min: "0", Max: maxAge, Value: strconv.Itoa(v)}
}

func optionalIntField(name, label string, v int) Field {
	f := Field{Name: name, Label: label, Type: "number", Step: "1", Value: strconv.Itoa(v)}
	if v == 0 {
		f.Value = ""
	}
	return f
}

func decField(name, label, step string, v decimal.Decimal) Field {
	limit := pkgdec.MaxAmount.String()
	return Field{Name: name, Label: label, Type: "number", Step: step, Min: "-" + limit, Max: limit, Value: v.String()}
}

// Fields lists the inputs of a calculator form, filled from in.
func Fields(in any) []Field {
	switch v := in.(type) {
	case *domain.TSPInput:
		return []Field{
			intField("current_age", "Current Age", v.CurrentAge),
			intField("retirement_age", "Retirement Age", v.RetirementAge),
			decField("current_balance", "Current TSP Balance ($)", "1000", v.CurrentBalance),
			decField("annual_contribution", "Annual Contribution ($)", "500", v.AnnualContribution),
			decField("annual_salary", "Annual Salary ($)", "1000", v.AnnualSalary),
			decField("match_percentage", "Agency Match (%)", "0.5", v.MatchPct),
			decField("annual_return", "Expected Annual Return (%)", "0.1", v.AnnualReturnPct),
		}
	case *domain.RothTraditionalInput:
		return []Field{
			intField("current_age", "Current Age", v.CurrentAge),
			intField("retirement_age", "Retirement Age", v.RetirementAge),
			decField("annual_contribution", "Annual Contribution ($)", "500", v.AnnualContribution),
			decField("current_income", "Current Income ($)", "1000", v.CurrentIncome),
			decField("retirement_income", "Expected Retirement Income ($)", "1000", v.RetirementIncome),
			decField("current_tax_rate", "Current Tax Rate (%)", "1", v.CurrentTaxRatePct),
			decField("retirement_tax_rate", "Retirement Tax Rate (%)", "1", v.RetirementTaxRatePct),
			decField("annual_return", "Expected Annual Return (%)", "0.1", v.AnnualReturnPct),
			intField("years_in_retirement", "Years in Retirement", v.YearsInRetirement),
		}
	case *domain.FERSInput:
		return []Field{
			intField("current_age", "Current Age", v.CurrentAge),
			intField("retirement_age", "Retirement Age", v.RetirementAge),
			decField("years_of_service", "Years of Service", "0.5", v.YearsOfService),
			decField("high_three_average", "High-3 Average Salary ($)", "1000", v.HighThreeAverage),
			decField("supplement_salary", "Salary for Supplement ($)", "1000", v.SupplementSalary),
			decField("supplement_years_of_service", "Service Years for Supplement", "0.5", v.SupplementYearsOfService),
			{
				Name: "retirement_type", Label: "Retirement Type", Type: "select", Value: string(v.RetirementType),
				Options: []string{string(domain.RetirementImmediate), string(domain.RetirementDeferred), string(domain.RetirementDisability)},
			},
			{Name: "has_special_provisions", Label: "Special Provisions (LEO, firefighter, ATC)", Type: "checkbox", Checked: v.HasSpecialProvisions},
			optionalIntField("birth_year", "Birth Year (optional)", v.BirthYear),
		}
	}
	return nil
}

// Values reads submitted fields. Anything that does not parse becomes
// zero, the same as an empty input box.
type Values url.Values

func (f Values) get(name string) string {
	return strings.TrimSpace(url.Values(f).Get(name))
}

func (f Values) Int(name string) int {
	n, err := strconv.Atoi(f.get(name))
	if err != nil {
		return 0
	}
	return n
}

// Decimal parses name, ignoring digit grouping. Values outside
// pkg/decimal's input limits count as unparseable.
func (f Values) Decimal(name string) decimal.Decimal {
	m, err := pkgdec.NewMoneyFromString(strings.ReplaceAll(f.get(name), ",", ""))
	if err != nil || !pkgdec.WithinLimits(m.Decimal) {
		return decimal.Zero
	}
	return m.Decimal
}

func (f Values) Bool(name string) bool {
	switch strings.ToLower(f.get(name)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// Bind returns a bind function for CalculationEngine.Calculate that
// overwrites every field of the target from f.
func Bind(f Values) func(target any) error {
	return func(target any) error {
		switch in := target.(type) {
		case *domain.TSPInput:
			in.CurrentAge = f.Int("current_age")
			in.RetirementAge = f.Int("retirement_age")
			in.CurrentBalance = f.Decimal("current_balance")
			in.AnnualContribution = f.Decimal("annual_contribution")
			in.AnnualSalary = f.Decimal("annual_salary")
			in.MatchPct = f.Decimal("match_percentage")
			in.AnnualReturnPct = f.Decimal("annual_return")
		case *domain.RothTraditionalInput:
			in.CurrentAge = f.Int("current_age")
			in.RetirementAge = f.Int("retirement_age")
			in.AnnualContribution = f.Decimal("annual_contribution")
			in.CurrentIncome = f.Decimal("current_income")
			in.RetirementIncome = f.Decimal("retirement_income")
			in.CurrentTaxRatePct = f.Decimal("current_tax_rate")
			in.RetirementTaxRatePct = f.Decimal("retirement_tax_rate")
			in.AnnualReturnPct = f.Decimal("annual_return")
			in.YearsInRetirement = f.Int("years_in_retirement")
		case *domain.FERSInput:
			in.CurrentAge = f.Int("current_age")
			in.RetirementAge = f.Int("retirement_age")
			in.YearsOfService = f.Decimal("years_of_service")
			in.HighThreeAverage = f.Decimal("high_three_average")
			in.SupplementSalary = f.Decimal("supplement_salary")
			in.SupplementYearsOfService = f.Decimal("supplement_years_of_service")
			in.RetirementType = domain.RetirementType(f.get("retirement_type"))
			in.HasSpecialProvisions = f.Bool("has_special_provisions")
			in.BirthYear = f.Int("birth_year")
		}
		return nil
	}
}

// FlagName is the command-line flag for a field name: current_age becomes
// current-age.
func FlagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

// DefaultString is the flag default for f.
func (f Field) DefaultString() string {
	if f.Type == "checkbox" {
		return strconv.FormatBool(f.Checked)
	}
	return f.Value
}
