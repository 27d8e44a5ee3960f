package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulate(t *testing.T) {
	tests := []struct {
		name         string
		start        decimal.Decimal
		contribution decimal.Decimal
		rate         decimal.Decimal
		periods      int
		expected     decimal.Decimal
	}{
		{"zero periods keeps start", decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.NewFromFloat(0.05), 0, decimal.NewFromInt(1000)},
		{"negative periods keeps start", decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.NewFromFloat(0.05), -3, decimal.NewFromInt(1000)},
		{"one period", decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.NewFromFloat(0.10), 1, decimal.NewFromInt(1210)},
		{"two periods no growth", decimal.Zero, decimal.NewFromInt(500), decimal.Zero, 2, decimal.NewFromInt(1000)},
		{"losses compound", decimal.NewFromInt(1000), decimal.Zero, decimal.NewFromFloat(-0.5), 2, decimal.NewFromInt(250)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := Accumulate(tt.start, tt.contribution, tt.rate, tt.periods)
			assert.True(t, acc.Balance.Equal(tt.expected), "Expected %s, got %s", tt.expected, acc.Balance)
		})
	}
}

func TestAccumulatePeriods(t *testing.T) {
	acc := Accumulate(decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.NewFromFloat(0.10), 2)
	require.Len(t, acc.Periods, 2)

	first := acc.Periods[0]
	assert.Equal(t, 1, first.Index)
	assert.True(t, first.Growth.Equal(decimal.NewFromInt(110)))
	assert.True(t, first.EndingBalance.Equal(decimal.NewFromInt(1210)))

	second := acc.Periods[1]
	assert.Equal(t, 2, second.Index)
	// (1210 + 100) * 1.1
	assert.True(t, second.EndingBalance.Equal(decimal.NewFromInt(1441)))
	assert.True(t, acc.Balance.Equal(second.EndingBalance))

	assert.Empty(t, Accumulate(decimal.Zero, decimal.Zero, decimal.Zero, 0).Periods)
}

func TestPercentAndHorizon(t *testing.T) {
	assert.True(t, percent(decimal.NewFromInt(7)).Equal(decimal.NewFromFloat(0.07)))
	assert.Equal(t, 27, horizon(35, 62))
	assert.Equal(t, 0, horizon(60, 60))
	assert.Equal(t, 0, horizon(65, 60))
	assert.Equal(t, MaxPeriods, horizon(0, 2000000000))
	assert.Equal(t, 0, horizon(2000000000, -2000000000))
}

func TestAccumulateCapsPeriods(t *testing.T) {
	acc := Accumulate(decimal.Zero, decimal.NewFromInt(1), decimal.Zero, 2000000000)
	require.Len(t, acc.Periods, MaxPeriods)
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(MaxPeriods)))
}

func TestAccumulateKeepsScaleFixed(t *testing.T) {
	acc := Accumulate(decimal.NewFromInt(50000), decimal.NewFromInt(16000), decimal.NewFromFloat(0.07), MaxPeriods)
	require.Len(t, acc.Periods, MaxPeriods)

	assert.GreaterOrEqual(t, acc.Balance.Exponent(), int32(-accumulationScale), "balance %s", acc.Balance)
	for _, p := range acc.Periods {
		assert.GreaterOrEqual(t, p.EndingBalance.Exponent(), int32(-accumulationScale))
		assert.GreaterOrEqual(t, p.Growth.Exponent(), int32(-accumulationScale))
	}

	// 27 years of the default TSP input stays within a cent of the unrounded value.
	exact := decimal.NewFromInt(50000)
	for i := 0; i < 27; i++ {
		exact = exact.Add(decimal.NewFromInt(16000)).Mul(decimal.NewFromFloat(1.07))
	}
	rounded := Accumulate(decimal.NewFromInt(50000), decimal.NewFromInt(16000), decimal.NewFromFloat(0.07), 27).Balance
	assert.True(t, exact.Sub(rounded).Abs().LessThan(decimal.NewFromFloat(0.01)), "exact %s rounded %s", exact, rounded)
}
