package output

import (
	"testing"

	"github.com/rpgo/fedcalc/internal/calculation"
	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyMetrics_FERS(t *testing.T) {
	r := calculation.NewCalculationEngine().RunFERS("Pension", domain.DefaultFERSInput())

	metrics := KeyMetrics(r)
	require.Len(t, metrics, 5)
	assert.Equal(t, "Annual Pension", metrics[0].Label)
	assert.Equal(t, "$28,500", metrics[0].Text)
	assert.Equal(t, "Pension Multiplier", metrics[4].Label)
	assert.Equal(t, "1.00%", metrics[4].Text)
}

func TestKeyMetrics_TSPYearsAreNotCurrency(t *testing.T) {
	r := calculation.NewCalculationEngine().RunTSP("TSP", domain.DefaultTSPInput())

	metrics := KeyMetrics(r)
	require.Len(t, metrics, 5)
	last := metrics[len(metrics)-1]
	assert.Equal(t, "Years", last.Label)
	assert.Equal(t, "27", last.Text)
	assert.True(t, last.Value.Equal(decimal.NewFromInt(27)))
}

func TestKeyMetrics_EmptyReport(t *testing.T) {
	assert.Empty(t, KeyMetrics(&domain.Report{}))
	assert.Empty(t, Verdict(&domain.Report{}))
}

func TestVerdict(t *testing.T) {
	engine := calculation.NewCalculationEngine()

	roth := engine.RunRothTraditional("Roth", domain.DefaultRothTraditionalInput())
	assert.Equal(t, roth.RothTraditional.Recommendation.Text(), Verdict(roth))

	in := domain.DefaultTSPInput()
	in.CurrentAge, in.RetirementAge = 40, 40
	in.CurrentBalance = decimal.NewFromInt(1234567)
	tsp := engine.RunTSP("TSP", in)
	assert.Equal(t, "Projected balance at retirement: $1,234,567", Verdict(tsp))
}

func TestGenerateAssumptions(t *testing.T) {
	engine := calculation.NewCalculationEngine()

	tsp := GenerateAssumptions(engine.RunTSP("TSP", domain.DefaultTSPInput()))
	assert.Contains(t, tsp, "Annual return: 7.00%; agency match: 5.00% of $80,000 salary")

	flat := GenerateAssumptions(engine.RunFERS("Pension", domain.DefaultFERSInput()))
	assert.Contains(t, flat, "Pension multiplier: 1.00% per year of service")

	in := domain.DefaultFERSInput()
	in.RetirementAge = 62
	in.YearsOfService = decimal.NewFromInt(25)
	engine.Policy = calculation.MultiplierEnhanced
	enhanced := GenerateAssumptions(engine.RunFERS("Pension", in))
	assert.Contains(t, enhanced, "Pension multiplier: 1.10% per year of service")

	in.RetirementAge = 50
	none := GenerateAssumptions(engine.RunFERS("Pension", in))
	assert.Contains(t, none, "Pension multiplier applies only to immediate retirements")
}
