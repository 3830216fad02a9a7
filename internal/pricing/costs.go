package pricing

import "math"

// ComputeCosts derives the full cost breakdown from the calculator
// state. Pure and deterministic; callers re-run it after every state
// change.
func ComputeCosts(state CalculatorState) CostBreakdown {
	// Manager: service hours + overtime + round-trip driving, wage
	// with a 10% buffer, stepped up to the next 50.
	managerTotalHours := math.Ceil(state.Hours + state.ManagerOvertimeHours + state.DrivingTimeHours*2)
	managerRawCost := managerTotalHours * state.HourlyWage
	managerCost := math.Ceil(managerRawCost*1.1/50) * 50

	// Bartender: no driving component, 600 minimum per shift.
	bartenderTotalHours := math.Ceil(state.Hours + state.BartenderOvertimeHours)
	bartenderRawCost := math.Max(bartenderTotalHours*state.HourlyWage*1.1, 600)
	bartenderCost := math.Ceil(bartenderRawCost/50) * 50

	managerTotalCost := state.Managers * managerCost
	bartenderTotalCost := state.Bartenders * bartenderCost
	staffTotal := managerTotalCost + bartenderTotalCost

	alcoholTotal := state.Guests * state.AlcoholPerHead.Value
	logisticsTotal := state.FuelTotal + state.LogisticsFlat + state.ExtraFlat

	grandTotal := staffTotal + alcoholTotal + state.IceTotal.Value + logisticsTotal

	perHead := 0.0
	if state.Guests > 0 {
		perHead = grandTotal / state.Guests
	}

	return CostBreakdown{
		StaffTotal:          staffTotal,
		ManagerCost:         managerCost,
		BartenderCost:       bartenderCost,
		ManagerTotalHours:   managerTotalHours,
		BartenderTotalHours: bartenderTotalHours,
		ManagerTotalCost:    managerTotalCost,
		BartenderTotalCost:  bartenderTotalCost,
		AlcoholTotal:        alcoholTotal,
		IceTotal:            state.IceTotal.Value,
		LogisticsTotal:      logisticsTotal,
		GrandTotal:          grandTotal,
		PerHead:             perHead,
	}
}
