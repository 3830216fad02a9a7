package stats

import (
	"math"
	"sort"
)

// Summary holds the descriptive statistics for one metric.
// SafeTarget = mean + one population standard deviation, a conservative
// planning figure covering roughly 84% of a normal distribution.
type Summary struct {
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	StdDev     float64 `json:"stdDev"`
	SafeTarget float64 `json:"safeTarget"`
}

// Summarize extracts one numeric value per record and computes its
// descriptive statistics. The accessor reports ok=false for records
// that carry no usable value; those are skipped, as are NaN/Inf.
// An empty sample yields a zero Summary, never an error.
func Summarize[T any](records []T, value func(T) (float64, bool)) Summary {
	values := make([]float64, 0, len(records))
	for _, rec := range records {
		v, ok := value(rec)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return Summary{}
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	sort.Float64s(values)
	mid := len(values) / 2
	median := values[mid]
	if len(values)%2 == 0 {
		median = (values[mid-1] + values[mid]) / 2
	}

	// Population standard deviation (divide by n, not n-1).
	sqSum := 0.0
	for _, v := range values {
		d := v - mean
		sqSum += d * d
	}
	stdDev := math.Sqrt(sqSum / float64(len(values)))

	return Summary{
		Mean:       mean,
		Median:     median,
		StdDev:     stdDev,
		SafeTarget: mean + stdDev,
	}
}
