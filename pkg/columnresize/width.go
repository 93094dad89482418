package columnresize

import (
	"strconv"
	"strings"
)

// AutoWidth is the placeholder for a column whose width is not set yet.
const AutoWidth = "auto"

// Width is a raw column width: either Auto or a fixed percentage.
type Width struct {
	auto       bool
	percentage float64
}

// Auto returns the placeholder width.
func Auto() Width { return Width{auto: true} }

// Fixed returns a width of p percent.
func Fixed(p float64) Width { return Width{percentage: p} }

func (w Width) IsAuto() bool { return w.auto }

// Percentage returns the fixed value. It is meaningless for Auto widths.
func (w Width) Percentage() float64 { return w.percentage }

func (w Width) String() string {
	if w.auto {
		return AutoWidth
	}
	return FormatWidth(w.percentage)
}

// ParseWidth reads "auto" or a percentage such as "25%" or "25".
// Unparsable input yields a fixed NaN width, which sums ignore.
func ParseWidth(s string) Width {
	s = strings.TrimSpace(s)
	if s == AutoWidth {
		return Auto()
	}
	return Fixed(ParseFloat(s))
}

// ParseColumnWidths splits a columnWidths attribute value ("25%,auto,75%").
func ParseColumnWidths(attr string) []Width {
	if strings.TrimSpace(attr) == "" {
		return nil
	}
	parts := strings.Split(attr, ",")
	widths := make([]Width, len(parts))
	for i, p := range parts {
		widths[i] = ParseWidth(p)
	}
	return widths
}

// FormatWidth renders a percentage as "25%".
func FormatWidth(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// FormatColumnWidths renders widths as a columnWidths attribute value.
func FormatColumnWidths(widths []float64) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = FormatWidth(w)
	}
	return strings.Join(parts, ",")
}

// FormatRawWidths renders raw widths, keeping placeholders, as an attribute value.
func FormatRawWidths(widths []Width) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = w.String()
	}
	return strings.Join(parts, ",")
}

// FixedWidths wraps already resolved percentages as raw widths.
func FixedWidths(widths []float64) []Width {
	out := make([]Width, len(widths))
	for i, w := range widths {
		out[i] = Fixed(w)
	}
	return out
}
