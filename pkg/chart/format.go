package chart

import (
	"math"
	"math/big"
	"strconv"

	"github.com/dustin/go-humanize"
)

// siPrefixes maps powers of a thousand to their axis prefix. Thousands and
// billions read K and B on money axes.
var siPrefixes = map[int]string{
	-24: "y", -21: "z", -18: "a", -15: "f", -12: "p", -9: "n", -6: "µ", -3: "m",
	0: "", 3: "K", 6: "M", 9: "B", 12: "T", 15: "P", 18: "E", 21: "Z", 24: "Y",
}

// FormatCurrency formats a tooltip value as dollars with thousands
// separators and two decimals, e.g. $1,234.57
func FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	// FormatFloat goes through int64; past that range a float64 holds no
	// fraction, so the integer part is grouped as a big.Int
	if value >= 1<<63 {
		whole, _ := new(big.Float).SetFloat64(value).Int(nil)
		return sign + "$" + humanize.BigComma(whole) + ".00"
	}

	return sign + "$" + humanize.FormatFloat("#,###.##", value)
}

// FormatAbbreviation formats an axis tick with two significant digits and
// an SI prefix: 12345 is 12K, 1.5e9 is 1.5B.
func FormatAbbreviation(value float64) string {
	const digits = 2

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	if value == 0 {
		return "0.0"
	}

	rounded := roundSignificant(value, digits)
	exponent := 3 * int(math.Floor(float64(magnitude(rounded))/3))
	exponent = max(-24, min(24, exponent))

	scaled := rounded / math.Pow(10, float64(exponent))
	decimals := max(0, digits-1-magnitude(scaled))

	return strconv.FormatFloat(scaled, 'f', decimals, 64) + siPrefixes[exponent]
}

// magnitude returns the base ten exponent of the leading digit of v
func magnitude(v float64) int {
	v = math.Abs(v)
	m := int(math.Floor(math.Log10(v)))

	// Log10 is off by one ulp on some exact powers of ten
	if math.Pow(10, float64(m+1)) <= v {
		m++
	} else if math.Pow(10, float64(m)) > v {
		m--
	}

	return m
}

func roundSignificant(value float64, digits int) float64 {
	shift := magnitude(value) - (digits - 1)
	if shift >= 0 {
		unit := math.Pow(10, float64(shift))
		return math.Round(value/unit) * unit
	}

	unit := math.Pow(10, float64(-shift))
	return math.Round(value*unit) / unit
}
