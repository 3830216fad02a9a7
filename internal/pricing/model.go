package pricing

// EventType classifies an event for staffing policy and baseline lookup.
type EventType struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// EventSnapshot is the read-only slice of an event record the
// calculator derives its initial state from. Zero values mean the
// field is absent on the record.
type EventSnapshot struct {
	GuestCount           int        `json:"guestCount"`
	StartTime            string     `json:"startTime"` // local "HH:MM"
	EndTime              string     `json:"endTime"`
	EventType            *EventType `json:"eventType,omitempty"`
	TravelDistanceMeters float64    `json:"travelDistance"`
	TravelDurationSec    float64    `json:"travelDuration"`
	Price                float64    `json:"price"`
}

// TrackedAmount is a numeric field that remembers whether the user has
// manually set it. Once UserEdited is true, baseline-driven defaults
// never overwrite the value again for the lifetime of the session.
type TrackedAmount struct {
	Value      float64 `json:"value"`
	UserEdited bool    `json:"userEdited"`
}

// CalculatorState is the mutable input set of one event-editing
// session. All fields are plain numbers; malformed user input is
// coerced to 0 before it gets here.
type CalculatorState struct {
	Guests                 float64       `json:"guests"`
	Hours                  float64       `json:"hours"`
	Managers               float64       `json:"managers"`
	Bartenders             float64       `json:"bartenders"`
	ManagerOvertimeHours   float64       `json:"managerOvertime"`
	BartenderOvertimeHours float64       `json:"bartenderOvertime"`
	DrivingTimeHours       float64       `json:"drivingTime"`
	DrivingDistanceKm      float64       `json:"drivingDistance"`
	HourlyWage             float64       `json:"hourlyWage"`
	ProfitMargin           float64       `json:"profitMargin"` // fraction
	AlcoholPerHead         TrackedAmount `json:"alcoholPerHead"`
	IceTotal               TrackedAmount `json:"iceTotal"`
	FuelTotal              float64       `json:"fuelTotal"`
	LogisticsFlat          float64       `json:"logistics"`
	ExtraFlat              float64       `json:"extra"`
}

// CostBreakdown is the derived cost picture, recomputed on every state
// change and never mutated in place.
type CostBreakdown struct {
	StaffTotal          float64 `json:"staff"`
	ManagerCost         float64 `json:"managerCost"` // per manager
	BartenderCost       float64 `json:"bartenderCost"`
	ManagerTotalHours   float64 `json:"managerTotalHours"`
	BartenderTotalHours float64 `json:"bartenderTotalHours"`
	ManagerTotalCost    float64 `json:"managerTotalCost"`
	BartenderTotalCost  float64 `json:"bartenderTotalCost"`
	AlcoholTotal        float64 `json:"alcohol"`
	IceTotal            float64 `json:"ice"`
	LogisticsTotal      float64 `json:"logistics"`
	GrandTotal          float64 `json:"total"`
	PerHead             float64 `json:"perHead"`
}

// BaselineHistory is the statistical block of the analysis response.
type BaselineHistory struct {
	AlcoholPerHead      float64 `json:"alcoholPerHead"`
	AlcoholStdDev       float64 `json:"alcoholStdDev"`
	IceExpenses         float64 `json:"iceExpenses"`
	TotalExpenses       float64 `json:"totalExpenses"`
	StdDevTotalExpenses float64 `json:"stdDevTotalExpenses"`
	TotalPerHead        float64 `json:"totalPerHead"`
	StdDevTotalPerHead  float64 `json:"stdDevTotalPerHead"`
	Samples             int     `json:"samples"`
}

// PriceListMatch is the optional price-list recommendation attached to
// a baseline.
type PriceListMatch struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"` // before VAT
}

// Baseline is the fetched historical analysis for one
// (eventTypeCode, guestCount) key.
type Baseline struct {
	History        BaselineHistory `json:"history"`
	Recommendation *PriceListMatch `json:"recommendation,omitempty"`
}
