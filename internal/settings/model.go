package settings

import "time"

// Setting is one row of the key/value configuration store the admin
// dashboard edits.
type Setting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Fallback constants applied when a key is absent or unparseable.
const (
	DefaultGuestsPerStaffRatio      = 50.0
	DefaultIceCostPerKg             = 4.0
	DefaultDrivingTimePerEvent      = 1.0  // hours
	DefaultDrivingSafetyMarginSec   = 1800.0
	DefaultWarehouseWorkTime        = 1.0
	DefaultWarehouseWorkTimeFullBar = 1.5
	DefaultSetupTime                = 2.0
	DefaultSetupTimeFullBarWedding  = 4.0
	DefaultSetupTimeFullBar         = 3.0
	DefaultBartenderWage            = 60.0 // per hour
	DefaultProfitMarginTarget       = 50.0 // percent
	DefaultFuelPricePerKm           = 2.5
	DefaultVATPercent               = 18.0
)

// Policy is the fully resolved business-policy configuration.
// Every field is populated at resolution time so nothing downstream
// does optional lookups.
type Policy struct {
	GuestsPerStaffRatio      float64 `json:"guestsPerStaffRatio"`
	IceCostPerKg             float64 `json:"iceCostPerKg"`
	DrivingTimePerEvent      float64 `json:"drivingTimePerEvent"`
	DrivingSafetyMarginSec   float64 `json:"drivingSafetyMarginSec"`
	WarehouseWorkTime        float64 `json:"warehouseWorkTime"`
	WarehouseWorkTimeFullBar float64 `json:"warehouseWorkTimeFullBar"`
	SetupTime                float64 `json:"setupTime"`
	SetupTimeFullBarWedding  float64 `json:"setupTimeFullBarWedding"`
	SetupTimeFullBar         float64 `json:"setupTimeFullBar"`
	BartenderWage            float64 `json:"bartenderWage"`
	ProfitMargin             float64 `json:"profitMargin"` // fraction, e.g. 0.5
	FuelPricePerKm           float64 `json:"fuelPricePerKm"`
	VATPercent               float64 `json:"vatPercent"`
}
