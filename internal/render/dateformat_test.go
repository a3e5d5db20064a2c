package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)

	cases := map[string]string{
		"MM/dd/yyyy":    "03/07/2026",
		"dd/MM/yyyy":    "07/03/2026",
		"yyyy-MM-dd":    "2026-03-07",
		"dd MMM yyyy":   "07 Mar 2026",
		"MMMM dd, yyyy": "March 07, 2026",
		"d MMMM yyyy":   "7 March 2026",
	}
	for pattern, want := range cases {
		assert.Equal(t, want, FormatDate(d, pattern), "pattern %q", pattern)
	}
}

func TestFormatDateEmptyPatternUsesDefault(t *testing.T) {
	d := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "12/31/2025", FormatDate(d, ""))
}
