package settings

import "strconv"

// ResolvePolicy collapses the raw key/value settings into a fully
// populated Policy. Missing or malformed values fall back to the
// documented constants; nothing downstream needs to re-check.
func ResolvePolicy(values map[string]string) Policy {
	setupFullBar := floatOr(values, "defaultSetupTimeForFullBar", DefaultSetupTimeFullBar)
	setupFullBarWedding := floatOr(values, "defaultSetupTimeForFullBar", DefaultSetupTimeFullBarWedding)

	return Policy{
		GuestsPerStaffRatio:      floatOr(values, "guestsPerStaffRatio", DefaultGuestsPerStaffRatio),
		IceCostPerKg:             floatOr(values, "defaultIceCostPerKg", DefaultIceCostPerKg),
		DrivingTimePerEvent:      floatOr(values, "defaultDrivingTimePerEvent", DefaultDrivingTimePerEvent),
		DrivingSafetyMarginSec:   floatOr(values, "drivingTimeSafetyMargin", DefaultDrivingSafetyMarginSec),
		WarehouseWorkTime:        floatOr(values, "defaultWarehouseWorkTime", DefaultWarehouseWorkTime),
		WarehouseWorkTimeFullBar: floatOr(values, "defaultWarehouseWorkTimeForFullBar", DefaultWarehouseWorkTimeFullBar),
		SetupTime:                floatOr(values, "defaultSetupTime", DefaultSetupTime),
		SetupTimeFullBarWedding:  setupFullBarWedding,
		SetupTimeFullBar:         setupFullBar,
		BartenderWage:            floatOr(values, "defaultBartenderWage", DefaultBartenderWage),
		ProfitMargin:             floatOr(values, "profitMarginTarget", DefaultProfitMarginTarget) / 100,
		FuelPricePerKm:           floatOr(values, "fuel_price_per_km", DefaultFuelPricePerKm),
		VATPercent:               floatOr(values, "currentVAT", DefaultVATPercent),
	}
}

func floatOr(values map[string]string, key string, fallback float64) float64 {
	raw, ok := values[key]
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
