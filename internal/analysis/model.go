package analysis

import "innkeeper/internal/stats"

// EventActual is one closed event's recorded outcome, the raw material
// for every historical statistic.
type EventActual struct {
	EventID              int     `json:"event_id"`
	EventTypeCode        string  `json:"event_type_code"`
	GuestCount           int     `json:"guest_count"`
	Price                float64 `json:"price"`
	TotalWages           float64 `json:"total_wages"`
	TotalAlcoholExpenses float64 `json:"total_alcohol_expenses"`
	TotalGeneralExpenses float64 `json:"total_general_expenses"`
	TotalIceExpenses     float64 `json:"total_ice_expenses"`
}

// TotalExpenses sums every expense bucket of the event.
func (a EventActual) TotalExpenses() float64 {
	return a.TotalWages + a.TotalAlcoholExpenses + a.TotalGeneralExpenses + a.TotalIceExpenses
}

// PriceListEntry is one row of the price list, matched on event type
// and guest bracket.
type PriceListEntry struct {
	Name          string  `json:"name"`
	EventTypeCode string  `json:"event_type_code"`
	MinGuests     int     `json:"min_guests"`
	MaxGuests     int     `json:"max_guests"`
	Price         float64 `json:"price"` // before VAT
}

// DashboardStatistics is the descriptive-statistics block of the
// dashboard: per-event macro metrics and per-guest micro metrics over
// the same actuals.
type DashboardStatistics struct {
	ExpensesPerEvent     stats.Summary `json:"expensesPerEvent"`
	ProfitPerEvent       stats.Summary `json:"profitPerEvent"`
	WagesPerEvent        stats.Summary `json:"wagesPerEvent"`
	AlcoholPerHead       stats.Summary `json:"alcoholPerHead"`
	WagesPerHead         stats.Summary `json:"wagesPerHead"`
	TotalExpensesPerHead stats.Summary `json:"totalExpensesPerHead"`
	ProfitPerHead        stats.Summary `json:"profitPerHead"`
	Samples              int           `json:"samples"`
}
