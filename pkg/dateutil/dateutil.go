package dateutil

import "fmt"

// MinimumRetirementAge returns the FERS Minimum Retirement Age for a birth
// year as whole years plus extra months. Births before 1948 have an MRA of 55;
// births in 1970 or later have an MRA of 57.
func MinimumRetirementAge(birthYear int) (years, months int) {
	switch {
	case birthYear <= 1947:
		return 55, 0
	case birthYear <= 1952:
		return 55, (birthYear - 1947) * 2
	case birthYear <= 1964:
		return 56, 0
	case birthYear <= 1969:
		return 56, (birthYear - 1964) * 2
	default:
		return 57, 0
	}
}

// FormatMRA renders an MRA as "56" or "56 and 4 months".
func FormatMRA(years, months int) string {
	if months == 0 {
		return fmt.Sprintf("%d", years)
	}
	return fmt.Sprintf("%d and %d months", years, months)
}
