package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"tsp", KindTSP},
		{" TSP ", KindTSP},
		{"roth", KindRothTraditional},
		{"roth_traditional", KindRothTraditional},
		{"roth-traditional", KindRothTraditional},
		{"fers", KindFERS},
		{"pension", KindFERS},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("annuity")
	assert.ErrorIs(t, err, ErrUnknownCalculator)
}

func TestKindTitle(t *testing.T) {
	assert.Equal(t, "FERS Pension Estimator", KindFERS.Title())
	assert.Equal(t, "other", Kind("other").Title())
}

func TestRecommendationText(t *testing.T) {
	assert.Equal(t, "Roth TSP appears better for your situation", RecommendRoth.Text())
	assert.Equal(t, "Traditional TSP appears better for your situation", RecommendTraditional.Text())
	assert.Equal(t, "Both options are similar - consider diversifying with both", RecommendSimilar.Text())
}

func TestRetirementTypeValid(t *testing.T) {
	assert.True(t, RetirementImmediate.Valid())
	assert.True(t, RetirementDisability.Valid())
	assert.False(t, RetirementType("early-out").Valid())
}

func TestFERSInputYAML(t *testing.T) {
	src := "current_age: 50\n" +
		"retirement_age: 57\n" +
		"years_of_service: 30.5\n" +
		"high_three_average: 110000\n" +
		"supplement_salary: 105000\n" +
		"supplement_years_of_service: 30\n" +
		"retirement_type: immediate\n" +
		"has_special_provisions: true\n"

	var in FERSInput
	require.NoError(t, yaml.Unmarshal([]byte(src), &in))

	assert.Equal(t, 57, in.RetirementAge)
	assert.True(t, in.YearsOfService.Equal(decimal.NewFromFloat(30.5)))
	assert.True(t, in.HighThreeAverage.Equal(decimal.NewFromInt(110000)))
	assert.Equal(t, RetirementImmediate, in.RetirementType)
	assert.True(t, in.HasSpecialProvisions)
	assert.Zero(t, in.BirthYear)
}

func TestReportHasWarnings(t *testing.T) {
	r := &Report{}
	assert.False(t, r.HasWarnings())
	r.Warnings = append(r.Warnings, Violation{Field: "current_age", Message: "must be between 18 and 100"})
	assert.True(t, r.HasWarnings())
	assert.Equal(t, "current_age: must be between 18 and 100", r.Warnings[0].String())
}
