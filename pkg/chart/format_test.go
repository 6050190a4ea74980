package chart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	for value, expected := range map[float64]string{
		1234.567:   "$1,234.57",
		0:          "$0.00",
		0.5:        "$0.50",
		4800000000: "$4,800,000,000.00",
		-1234.5:    "-$1,234.50",
		1e19:       "$10,000,000,000,000,000,000.00",
		-1e19:      "-$10,000,000,000,000,000,000.00",
		1 << 63:    "$9,223,372,036,854,775,808.00",
	} {
		require.Equal(t, expected, FormatCurrency(value))
	}
}

func TestFormatAbbreviation(t *testing.T) {
	for value, expected := range map[float64]string{
		0:      "0.0",
		5:      "5.0",
		12:     "12",
		999.6:  "1.0K",
		1000:   "1.0K",
		12345:  "12K",
		150000: "150K",
		1e6:    "1.0M",
		4.8e6:  "4.8M",
		1.5e9:  "1.5B",
		2.5e12: "2.5T",
		-12345: "-12K",
		-1.5e9: "-1.5B",
		100:    "100",
	} {
		require.Equal(t, expected, FormatAbbreviation(value), "value %v", value)
	}
}
