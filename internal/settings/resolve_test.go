package settings

import "testing"

func TestResolvePolicyDefaults(t *testing.T) {
	p := ResolvePolicy(nil)

	if p.GuestsPerStaffRatio != 50 {
		t.Errorf("guestsPerStaffRatio: expected 50, got %v", p.GuestsPerStaffRatio)
	}
	if p.IceCostPerKg != 4 {
		t.Errorf("iceCostPerKg: expected 4, got %v", p.IceCostPerKg)
	}
	if p.DrivingSafetyMarginSec != 1800 {
		t.Errorf("drivingSafetyMarginSec: expected 1800, got %v", p.DrivingSafetyMarginSec)
	}
	if p.ProfitMargin != 0.5 {
		t.Errorf("profitMargin: expected 0.5, got %v", p.ProfitMargin)
	}
	if p.VATPercent != 18 {
		t.Errorf("vatPercent: expected 18, got %v", p.VATPercent)
	}
	if p.SetupTimeFullBarWedding != 4 || p.SetupTimeFullBar != 3 {
		t.Errorf("full-bar setup times: expected 4/3, got %v/%v",
			p.SetupTimeFullBarWedding, p.SetupTimeFullBar)
	}
}

func TestResolvePolicyOverrides(t *testing.T) {
	p := ResolvePolicy(map[string]string{
		"guestsPerStaffRatio": "40",
		"profitMarginTarget":  "35",
		"currentVAT":          "17",
	})

	if p.GuestsPerStaffRatio != 40 {
		t.Errorf("guestsPerStaffRatio: expected 40, got %v", p.GuestsPerStaffRatio)
	}
	if p.ProfitMargin != 0.35 {
		t.Errorf("profitMargin: expected 0.35, got %v", p.ProfitMargin)
	}
	if p.VATPercent != 17 {
		t.Errorf("vatPercent: expected 17, got %v", p.VATPercent)
	}
}

// A stored full-bar setup time applies to both event-type branches.
func TestResolvePolicyFullBarSetupOverridesBothBranches(t *testing.T) {
	p := ResolvePolicy(map[string]string{
		"defaultSetupTimeForFullBar": "5",
	})

	if p.SetupTimeFullBarWedding != 5 || p.SetupTimeFullBar != 5 {
		t.Errorf("expected 5/5, got %v/%v", p.SetupTimeFullBarWedding, p.SetupTimeFullBar)
	}
}

func TestResolvePolicyMalformedValueFallsBack(t *testing.T) {
	p := ResolvePolicy(map[string]string{
		"defaultBartenderWage": "not-a-number",
	})

	if p.BartenderWage != 60 {
		t.Errorf("bartenderWage: expected fallback 60, got %v", p.BartenderWage)
	}
}
