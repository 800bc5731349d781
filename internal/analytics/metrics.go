package analytics

import "math"

// Derived display metrics. Every function here is total for its inputs:
// zero divisors and empty series produce 0 (or an explicit undefined Growth),
// never Inf or NaN. All percentages are rounded with Round1 so that
// per-category shares of one total visibly sum to ~100.

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}

// ShareOfMax returns value as a percentage of the series maximum, clamped
// to [0, 100]. Empty series and a non-positive maximum both yield 0.
func ShareOfMax(value float64, series []float64) float64 {
	max := 0.0
	for _, v := range series {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return 0
	}
	pct := value / max * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return Round1(pct)
}

// ShareOfTotal returns value as a percentage of total, 0 when total is 0.
func ShareOfTotal(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round1(value / total * 100)
}

// ConcentrationTopN returns the share of the total held by the first n
// entries of a descending-ranked series. Short series sum what is present;
// a zero total yields 0.
func ConcentrationTopN(sortedDesc []float64, n int) float64 {
	if n > len(sortedDesc) {
		n = len(sortedDesc)
	}
	var top, total float64
	for i, v := range sortedDesc {
		if i < n {
			top += v
		}
		total += v
	}
	if total == 0 {
		return 0
	}
	return Round1(top / total * 100)
}

// Growth is a period-over-period rate. Defined is false when the previous
// value was 0, in which case no rate is displayed ("undefined growth"
// rather than a leaked Infinity).
type Growth struct {
	Percent float64 `json:"percent"`
	Defined bool    `json:"defined"`
}

// GrowthRate returns the percentage change from previous to current.
func GrowthRate(current, previous float64) Growth {
	if previous == 0 {
		return Growth{}
	}
	return Growth{Percent: Round1((current - previous) / previous * 100), Defined: true}
}
