package pricing

import "math"

// Variance thresholds against the historical per-head average. Fixed,
// not configurable.
const (
	aboveAverageFactor = 1.15
	belowAverageFactor = 0.85
)

// Comparison outcomes against the historical baseline.
const (
	ComparisonAbove   = "above_average"
	ComparisonBelow   = "below_average"
	ComparisonAverage = "average"
)

// PriceListSuggestion is the matched price-list entry, VAT applied.
type PriceListSuggestion struct {
	Name    string  `json:"name"`
	PreVAT  float64 `json:"preVat"`
	WithVAT float64 `json:"withVat"`
}

// MarginSuggestion is the cost-plus-target-margin price, VAT applied.
type MarginSuggestion struct {
	PreVAT  float64 `json:"preVat"`
	WithVAT float64 `json:"withVat"`
}

// Recommendation combines the two price suggestions with the variance
// comparison against history. Comparison is empty when no baseline
// sample exists.
type Recommendation struct {
	PriceList    *PriceListSuggestion `json:"priceList,omitempty"`
	MarginTarget MarginSuggestion     `json:"marginTarget"`
	Comparison   string               `json:"comparison,omitempty"`
}

// Recommend is pure: it never mutates the inputs, and applying a
// suggested price is the caller's write, not this package's.
func Recommend(costs CostBreakdown, baseline *Baseline, vatPercent, profitMargin float64) Recommendation {
	vatFactor := 1 + vatPercent/100

	preVAT := math.Round(costs.GrandTotal * (1 + profitMargin))
	rec := Recommendation{
		MarginTarget: MarginSuggestion{
			PreVAT:  preVAT,
			WithVAT: math.Round(preVAT * vatFactor),
		},
	}

	if baseline == nil {
		return rec
	}

	if baseline.Recommendation != nil {
		rec.PriceList = &PriceListSuggestion{
			Name:    baseline.Recommendation.Name,
			PreVAT:  baseline.Recommendation.Price,
			WithVAT: baseline.Recommendation.Price * vatFactor,
		}
	}

	if baseline.History.Samples > 0 {
		switch {
		case costs.PerHead > baseline.History.TotalPerHead*aboveAverageFactor:
			rec.Comparison = ComparisonAbove
		case costs.PerHead < baseline.History.TotalPerHead*belowAverageFactor:
			rec.Comparison = ComparisonBelow
		default:
			rec.Comparison = ComparisonAverage
		}
	}

	return rec
}
