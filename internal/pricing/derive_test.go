package pricing

import (
	"testing"

	"innkeeper/internal/settings"
)

func defaultPolicy() settings.Policy {
	return settings.ResolvePolicy(nil)
}

func TestDeriveOvernightHours(t *testing.T) {
	event := EventSnapshot{
		GuestCount: 100,
		StartTime:  "22:00",
		EndTime:    "02:00",
		EventType:  &EventType{Code: "BAR_ONLY"},
	}

	state, _ := Derive(event, defaultPolicy())

	if state.Hours != 4 {
		t.Errorf("hours: expected 4 for overnight shift, got %v", state.Hours)
	}
}

func TestDeriveMissingTimesDefaultsToThreeHours(t *testing.T) {
	event := EventSnapshot{
		GuestCount: 100,
		StartTime:  "18:00",
		EventType:  &EventType{Code: "BAR_ONLY"},
	}

	state, _ := Derive(event, defaultPolicy())

	if state.Hours != 3 {
		t.Errorf("hours: expected default 3, got %v", state.Hours)
	}
}

func TestDerivePartialHourRoundsUp(t *testing.T) {
	event := EventSnapshot{
		StartTime: "18:00",
		EndTime:   "21:30",
		EventType: &EventType{Code: "BAR_ONLY"},
	}

	state, _ := Derive(event, defaultPolicy())

	if state.Hours != 4 {
		t.Errorf("hours: expected 3.5 rounded up to 4, got %v", state.Hours)
	}
}

func TestDeriveStaffing(t *testing.T) {
	cases := []struct {
		guests         int
		wantBartenders float64
	}{
		{0, 0},    // minimum one staff member: the manager
		{30, 0},   // ceil(30/50)=1 total
		{51, 1},   // ceil(51/50)=2 total
		{200, 3},  // ceil(200/50)=4 total
	}

	for _, tc := range cases {
		state, _ := Derive(EventSnapshot{
			GuestCount: tc.guests,
			EventType:  &EventType{Code: "BAR_ONLY"},
		}, defaultPolicy())

		if state.Managers != 1 {
			t.Errorf("guests=%d: expected 1 manager, got %v", tc.guests, state.Managers)
		}
		if state.Bartenders != tc.wantBartenders {
			t.Errorf("guests=%d: expected %v bartenders, got %v",
				tc.guests, tc.wantBartenders, state.Bartenders)
		}
	}
}

func TestDeriveStaffingPolicyBranches(t *testing.T) {
	cases := []struct {
		code                  string
		wantManagerOvertime   float64
		wantBartenderOvertime float64
	}{
		// warehouse + setup + 2h wrap-up / setup + 1h
		{CodeWeddingFullBar, 1.5 + 4 + 2, 4 + 1},
		{CodePrivateFullBar, 1.5 + 3 + 2, 3 + 1},
		{CodeCorpParty, 1.5 + 3 + 2, 3 + 1},
		{"BAR_ONLY", 1 + 2 + 2, 2 + 1},
	}

	for _, tc := range cases {
		state, warnings := Derive(EventSnapshot{
			GuestCount: 100,
			EventType:  &EventType{Code: tc.code},
		}, defaultPolicy())

		if state.ManagerOvertimeHours != tc.wantManagerOvertime {
			t.Errorf("%s: manager overtime expected %v, got %v",
				tc.code, tc.wantManagerOvertime, state.ManagerOvertimeHours)
		}
		if state.BartenderOvertimeHours != tc.wantBartenderOvertime {
			t.Errorf("%s: bartender overtime expected %v, got %v",
				tc.code, tc.wantBartenderOvertime, state.BartenderOvertimeHours)
		}
		if len(warnings) != 0 {
			t.Errorf("%s: unexpected warnings %v", tc.code, warnings)
		}
	}
}

func TestDeriveMissingEventTypeWarnsAndFallsBack(t *testing.T) {
	state, warnings := Derive(EventSnapshot{GuestCount: 100}, defaultPolicy())

	if len(warnings) != 1 || warnings[0] != WarnMissingEventType {
		t.Fatalf("expected missing-event-type warning, got %v", warnings)
	}
	if state.ManagerOvertimeHours != 5 { // 1 + 2 + 2
		t.Errorf("manager overtime: expected default-branch 5, got %v", state.ManagerOvertimeHours)
	}
}

func TestDeriveDrivingTime(t *testing.T) {
	policy := defaultPolicy()

	// 1h routed + 30min margin = 1.5h raw; minus 10min tolerance,
	// then up to the next half hour = 1.5h.
	state, _ := Derive(EventSnapshot{
		GuestCount:        50,
		EventType:         &EventType{Code: "BAR_ONLY"},
		TravelDurationSec: 3600,
	}, policy)
	if state.DrivingTimeHours != 1.5 {
		t.Errorf("drivingTime: expected 1.5, got %v", state.DrivingTimeHours)
	}

	// Short hop still floors at 1 hour.
	state, _ = Derive(EventSnapshot{
		GuestCount:        50,
		EventType:         &EventType{Code: "BAR_ONLY"},
		TravelDurationSec: 300,
	}, policy)
	if state.DrivingTimeHours != 1 {
		t.Errorf("drivingTime: expected floor 1, got %v", state.DrivingTimeHours)
	}

	// No routed duration falls back to the policy default.
	state, _ = Derive(EventSnapshot{
		GuestCount: 50,
		EventType:  &EventType{Code: "BAR_ONLY"},
	}, policy)
	if state.DrivingTimeHours != policy.DrivingTimePerEvent {
		t.Errorf("drivingTime: expected default %v, got %v",
			policy.DrivingTimePerEvent, state.DrivingTimeHours)
	}
}

func TestDeriveFuel(t *testing.T) {
	// 36km -> 72km round trip * 2.5 = 180, floored up to the 200 minimum.
	state, _ := Derive(EventSnapshot{
		GuestCount:           50,
		EventType:            &EventType{Code: "BAR_ONLY"},
		TravelDistanceMeters: 36000,
	}, defaultPolicy())
	if state.FuelTotal != 200 {
		t.Errorf("fuel: expected 200 floor, got %v", state.FuelTotal)
	}

	// 90km -> 180km * 2.5 = 450, already on a 50 step.
	state, _ = Derive(EventSnapshot{
		GuestCount:           50,
		EventType:            &EventType{Code: "BAR_ONLY"},
		TravelDistanceMeters: 90000,
	}, defaultPolicy())
	if state.FuelTotal != 450 {
		t.Errorf("fuel: expected 450, got %v", state.FuelTotal)
	}

	// 91km -> 182km * 2.5 = 455 -> next 50 step is 500.
	state, _ = Derive(EventSnapshot{
		GuestCount:           50,
		EventType:            &EventType{Code: "BAR_ONLY"},
		TravelDistanceMeters: 91000,
	}, defaultPolicy())
	if state.FuelTotal != 500 {
		t.Errorf("fuel: expected 500, got %v", state.FuelTotal)
	}

	// Missing distance defaults to 80km: 160 * 2.5 = 400.
	state, _ = Derive(EventSnapshot{
		GuestCount: 50,
		EventType:  &EventType{Code: "BAR_ONLY"},
	}, defaultPolicy())
	if state.DrivingDistanceKm != 80 || state.FuelTotal != 400 {
		t.Errorf("fuel: expected 80km/400, got %vkm/%v",
			state.DrivingDistanceKm, state.FuelTotal)
	}
}

func TestDeriveIceDefault(t *testing.T) {
	state, _ := Derive(EventSnapshot{
		GuestCount: 120,
		EventType:  &EventType{Code: "BAR_ONLY"},
	}, defaultPolicy())

	if state.IceTotal.Value != 480 { // 120 guests * 1kg * 4
		t.Errorf("ice: expected 480, got %v", state.IceTotal.Value)
	}
	if state.IceTotal.UserEdited {
		t.Error("ice: derived default must not count as a user edit")
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{" 7 ", 7},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Errorf("ParseAmount(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
