package ai

import "sort"

// Median sorts a copy of values descending and returns the middle element,
// or the mean of the two middle elements for an even count. An empty slice
// has median 0.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	s := append([]float64(nil), values...)
	sort.Sort(sort.Reverse(sort.Float64Slice(s)))
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

// tier maps value against median: +3 at 150% or more, +2 at 120% or more.
// A non-positive median cannot be compared against and yields +1.
func tier(value, median float64) int {
	if median <= 0 {
		return 1
	}
	pct := value / median * 100
	if pct >= 150 {
		return 3
	}
	if pct >= 120 {
		return 2
	}
	return 0
}
