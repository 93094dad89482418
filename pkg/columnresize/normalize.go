package columnresize

import "math"

// NormalizeColumnWidths resolves placeholder widths and rescales the list so
// it sums to exactly 100. Rounding drift is absorbed by the last column.
//
// Placeholders share whatever the fixed columns leave over, but never less
// than ColumnMinWidthAsPercentage each. The floor is not re-applied after the
// proportional rescale, so heavily oversubscribed tables can end up with
// placeholder columns narrower than the floor.
func NormalizeColumnWidths(raw []Width) []float64 {
	if len(raw) == 0 {
		return nil
	}
	widths := resolveAutoWidths(raw)

	total := Sum(widths)
	if total == 100 {
		return widths
	}
	if !(total > 0) {
		// Nothing to scale from; start over as if no width was known.
		widths = resolveAutoWidths(FillArray(len(raw), Auto()))
		total = Sum(widths)
	}

	normalized := make([]float64, len(widths))
	for i, w := range widths {
		normalized[i] = ToPrecision(w * 100 / total)
	}
	last := len(normalized) - 1
	diff := ToPrecision(100 - Sum(normalized))
	normalized[last] = ToPrecision(normalized[last] + diff)
	return normalized
}

// resolveAutoWidths replaces placeholders with their fair share of the
// percentage the fixed columns leave over and rounds every entry.
func resolveAutoWidths(raw []Width) []float64 {
	var fixed []float64
	autos := 0
	for _, w := range raw {
		if w.IsAuto() {
			autos++
		} else {
			fixed = append(fixed, w.Percentage())
		}
	}

	share := 0.0
	if autos > 0 {
		remaining := 100 - Sum(fixed)
		share = math.Max(remaining/float64(autos), ColumnMinWidthAsPercentage)
	}

	out := make([]float64, len(raw))
	for i, w := range raw {
		if w.IsAuto() {
			out[i] = ToPrecision(share)
		} else {
			out[i] = ToPrecision(w.Percentage())
		}
	}
	return out
}
