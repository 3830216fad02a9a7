package pricing

import (
	"math"
	"strconv"
	"strings"

	"innkeeper/internal/settings"
)

// Event-type codes with a dedicated staffing policy branch.
const (
	CodeWeddingFullBar = "WEDDING_FULL_BAR"
	CodePrivateFullBar = "PRIVATE_FULL_BAR"
	CodeCorpParty      = "CORP_PARTY"
)

// WarnMissingEventType is surfaced to the caller when an event has no
// type code and the default staffing branch was applied.
const WarnMissingEventType = "event type not set; staffing hours derived from the default policy branch"

const defaultEventHours = 3

// Derive seeds a calculator state from an event record and the
// resolved policy. It runs once per event load, never on user edits.
// The returned warnings are non-fatal and meant for display.
func Derive(event EventSnapshot, policy settings.Policy) (CalculatorState, []string) {
	var warnings []string

	guests := float64(event.GuestCount)
	if guests < 0 {
		guests = 0
	}

	// Event hours from the HH:MM range, wrapping past midnight and
	// rounding up to whole hours.
	hours := float64(defaultEventHours)
	if start, okS := parseClockMinutes(event.StartTime); okS {
		if end, okE := parseClockMinutes(event.EndTime); okE {
			diff := end - start
			if diff < 0 {
				diff += 24 * 60
			}
			hours = math.Ceil(float64(diff) / 60)
		}
	}

	// Staffing rule: one manager, the rest bartenders, at least one
	// person overall.
	totalStaff := math.Max(1, math.Ceil(guests/policy.GuestsPerStaffRatio))
	managers := 1.0
	bartenders := math.Max(0, totalStaff-managers)

	// Warehouse and setup hours depend on the event type. Overtime
	// covers the pre-event work plus 2h post-event wrap-up for the
	// manager and 1h for bartenders.
	warehouse := policy.WarehouseWorkTime
	setup := policy.SetupTime
	code := ""
	if event.EventType != nil {
		code = event.EventType.Code
	}
	switch code {
	case CodeWeddingFullBar:
		warehouse = policy.WarehouseWorkTimeFullBar
		setup = policy.SetupTimeFullBarWedding
	case CodePrivateFullBar, CodeCorpParty:
		warehouse = policy.WarehouseWorkTimeFullBar
		setup = policy.SetupTimeFullBar
	default:
		if code == "" {
			warnings = append(warnings, WarnMissingEventType)
		}
	}
	managerOvertime := warehouse + setup + 2
	bartenderOvertime := setup + 1

	// Driving time: safety margin on top of the routed duration, a
	// 10-minute tolerance off, then up to the next half hour, never
	// below 1h.
	drivingTime := policy.DrivingTimePerEvent
	if event.TravelDurationSec > 0 {
		rawHours := (event.TravelDurationSec + policy.DrivingSafetyMarginSec) / 3600
		tolerance := 10.0 / 60.0
		stepped := math.Ceil((rawHours-tolerance)*2) / 2
		drivingTime = math.Max(1, stepped)
	}

	// Fuel: round trip at the configured rate, stepped up to 50s with
	// a 200 floor. No upper clamp; an absurd figure should be visible.
	distanceKm := 80.0
	if event.TravelDistanceMeters > 0 {
		distanceKm = event.TravelDistanceMeters / 1000
	}
	rawFuel := distanceKm * 2 * policy.FuelPricePerKm
	fuel := math.Max(200, math.Ceil(rawFuel/50)*50)

	state := CalculatorState{
		Guests:                 guests,
		Hours:                  hours,
		Managers:               managers,
		Bartenders:             bartenders,
		ManagerOvertimeHours:   managerOvertime,
		BartenderOvertimeHours: bartenderOvertime,
		DrivingTimeHours:       drivingTime,
		DrivingDistanceKm:      distanceKm,
		HourlyWage:             policy.BartenderWage,
		ProfitMargin:           policy.ProfitMargin,
		AlcoholPerHead:         TrackedAmount{},
		IceTotal:               TrackedAmount{Value: guests * 1 * policy.IceCostPerKg},
		FuelTotal:              fuel,
		LogisticsFlat:          300,
		ExtraFlat:              0,
	}
	return state, warnings
}

// parseClockMinutes parses a local "HH:MM" string into minutes since
// midnight.
func parseClockMinutes(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ParseAmount coerces free-text numeric input. Malformed input is 0 by
// contract, never an error.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
