package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMinimumRetirementAge tests FERS MRA calculation
func TestMinimumRetirementAge(t *testing.T) {
	tests := []struct {
		name           string
		birthYear      int
		expectedYears  int
		expectedMonths int
	}{
		{"Born 1947 or earlier", 1947, 55, 0},
		{"Born 1948", 1948, 55, 2},
		{"Born 1952", 1952, 55, 10},
		{"Born 1953-1964", 1960, 56, 0},
		{"Born 1965", 1965, 56, 2},
		{"Born 1969", 1969, 56, 10},
		{"Born 1970 or later", 1985, 57, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, months := MinimumRetirementAge(tt.birthYear)
			assert.Equal(t, tt.expectedYears, years)
			assert.Equal(t, tt.expectedMonths, months)
		})
	}
}

func TestFormatMRA(t *testing.T) {
	assert.Equal(t, "57", FormatMRA(57, 0))
	assert.Equal(t, "56 and 4 months", FormatMRA(56, 4))
}
