package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/fedcalc/internal/calculation"
	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestSet() *domain.ReportSet {
	engine := calculation.NewCalculationEngine()

	tsp := domain.DefaultTSPInput()
	tsp.CurrentAge, tsp.RetirementAge = 60, 62

	fers := domain.DefaultFERSInput()
	fers.BirthYear = 1980

	return &domain.ReportSet{
		GeneratedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Reports: []*domain.Report{
			engine.RunTSP("Short TSP", tsp),
			engine.RunRothTraditional("Roth vs Traditional", domain.DefaultRothTraditionalInput()),
			engine.RunFERS("Pension", fers),
		},
	}
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestSet())
	require.NoError(t, err)
	content := string(out)

	assert.True(t, strings.HasPrefix(content, "CALCULATOR SUMMARY"))
	assert.Contains(t, content, "Short TSP [tsp]: Projected balance at retirement:")
	assert.Contains(t, content, "Pension [fers]: Eligible for immediate retirement (30+ years)")
	assert.Contains(t, content, "Total Monthly Benefit=$4,750")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestSet())
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "TSP GROWTH PROJECTION: Short TSP")
	assert.Contains(t, content, "YEAR-BY-YEAR BALANCE:")
	assert.Contains(t, content, "TRADITIONAL BALANCE:")
	assert.Contains(t, content, "Pension Multiplier:     1.00%")
	assert.Contains(t, content, "MRA + 30: Retire at your Minimum Retirement Age (57) with 30 years of service")
	assert.Contains(t, content, "KEY ASSUMPTIONS:")
}

func TestConsoleVerboseFormatter_Warnings(t *testing.T) {
	in := domain.DefaultTSPInput()
	in.RetirementAge = in.CurrentAge
	set := Single(calculation.NewCalculationEngine().RunTSP("Backwards", in))

	out, err := ConsoleVerboseFormatter{}.Format(set)
	require.NoError(t, err)
	assert.Contains(t, string(out), "INPUT WARNINGS:")
	assert.Contains(t, string(out), "retirement_age: must be greater than current age")
	assert.NotContains(t, string(out), "YEAR-BY-YEAR BALANCE:", "zero horizon has no schedule")
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestSet())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+5+5+5)
	assert.Equal(t, []string{"Scenario", "Calculator", "Metric", "Value", "Warnings"}, rows[0])
	assert.Equal(t, []string{"Short TSP", "tsp", "Final Balance"}, rows[1][:3])
	assert.Equal(t, []string{"Pension", "fers", "Total Monthly Benefit", "4750.00", "0"}, rows[14])
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestSet())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	// 2 TSP years, 35 traditional years, 35 roth years, nothing for FERS.
	require.Len(t, rows, 1+2+35+35)
	assert.Equal(t, []string{"Short TSP", "tsp", "1", "61"}, rows[1][:4])
	assert.Equal(t, "true", rows[1][8])
	assert.Equal(t, "traditional", rows[3][1])
	assert.Equal(t, "roth", rows[len(rows)-1][1])
	assert.Equal(t, "35", rows[len(rows)-1][2])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestSet())
	require.NoError(t, err)

	var decoded struct {
		Reports []struct {
			Name       string `json:"name"`
			Calculator string `json:"calculator"`
			FERS       *struct {
				Eligibility string          `json:"eligibility"`
				Monthly     decimal.Decimal `json:"monthly_pension"`
			} `json:"fers"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Reports, 3)
	assert.Equal(t, "roth-traditional", decoded.Reports[1].Calculator)
	require.NotNil(t, decoded.Reports[2].FERS)
	assert.Equal(t, "immediate_30", decoded.Reports[2].FERS.Eligibility)
	assert.True(t, decoded.Reports[2].FERS.Monthly.Equal(decimal.NewFromInt(2375)))
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestSet())
	require.NoError(t, err)
	content := string(out)

	assert.True(t, strings.HasPrefix(content, "<!DOCTYPE html>"))
	assert.Contains(t, content, "Generated 2025-01-02 03:04:05")
	assert.Contains(t, content, "<h2>Roth vs Traditional</h2>")
	assert.Contains(t, content, `data-calculator="fers"`)
	assert.Contains(t, content, "$28,500")
	assert.Contains(t, content, "Assumptions")
	for _, a := range DefaultAssumptions {
		assert.Contains(t, content, a)
	}
}

func TestRenderResult(t *testing.T) {
	in := domain.DefaultFERSInput()
	in.RetirementAge = 40
	r := calculation.NewCalculationEngine().RunFERS("Too Young", in)

	var sb strings.Builder
	require.NoError(t, RenderResult(&sb, r))
	content := sb.String()

	assert.True(t, strings.HasPrefix(content, `<div class="result"`))
	assert.Contains(t, content, "Not eligible for retirement")
	assert.Contains(t, content, "Check your inputs")
	assert.NotContains(t, content, "<html")
}

func TestFormatterAliasResolution(t *testing.T) {
	tests := map[string]string{
		"verbose":      "console",
		"CONSOLE":      "console",
		"summary":      "console-lite",
		"csv-detailed": "detailed-csv",
		"schedule":     "detailed-csv",
		"html-report":  "html",
		" json ":       "json",
	}
	for alias, want := range tests {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, alias)
		assert.Equal(t, want, f.Name(), alias)
	}
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestLookupUnknownFormat(t *testing.T) {
	_, err := Lookup("definitely-not-a-format")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "Try one of:")
	assert.Contains(t, err.Error(), "detailed-csv")
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "txt", Extension("console"))
	assert.Equal(t, "txt", Extension("summary"))
	assert.Equal(t, "csv", Extension("detailed-csv"))
	assert.Equal(t, "csv", Extension("csv"))
	assert.Equal(t, "html", Extension("html"))
	assert.Equal(t, "json", Extension("json"))
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "count", F: func(s *domain.ReportSet) ([]byte, error) {
		return []byte(intToString(len(s.Reports))), nil
	}}
	out, err := f.Format(buildTestSet())
	require.NoError(t, err)
	assert.Equal(t, "3", string(out))
	assert.Equal(t, "count", f.Name())
}
