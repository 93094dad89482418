package columnresize

import (
	"math"
	"strconv"
	"strings"
)

const (
	// ColumnWidthPrecision is the number of decimal digits kept in widths.
	ColumnWidthPrecision = 2
	// ColumnMinWidthAsPercentage is the narrowest a placeholder column may start.
	ColumnMinWidthAsPercentage = 5
	// ColumnMinWidthInPixels is the narrowest a column may be dragged.
	ColumnMinWidthInPixels = 40
)

// ToPrecision rounds v to ColumnWidthPrecision decimal digits.
// NaN and infinities are returned unchanged.
func ToPrecision(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', ColumnWidthPrecision, 64), 64)
	if r == 0 {
		// drop the sign of -0
		return 0
	}
	return r
}

// ParsePrecision parses s like ParseFloat and rounds the result.
func ParsePrecision(s string) float64 {
	return ToPrecision(ParseFloat(s))
}

// ParseFloat reads the longest numeric prefix of s, so "25%" and "25px"
// both yield 25. It returns NaN when s does not start with a number.
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := numericPrefix(s)
	if end == 0 {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Clamp limits n to [min, max]. The result is always precision-rounded.
func Clamp(n, min, max float64) float64 {
	if n <= min {
		return ToPrecision(min)
	}
	if n >= max {
		return ToPrecision(max)
	}
	return ToPrecision(n)
}

// SumArray parses every value and sums those that are numbers.
func SumArray(values []string) float64 {
	nums := make([]float64, len(values))
	for i, v := range values {
		nums[i] = ParseFloat(v)
	}
	return Sum(nums)
}

// Sum adds up values, skipping NaN entries.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		total += v
	}
	return total
}

// FillArray returns n copies of v.
func FillArray[T any](n int, v T) []T {
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}
