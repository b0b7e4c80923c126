package domain

import (
	"fmt"
)

// SizingInput is the immutable snapshot of all tunable sizing parameters.
// Units:
// - LoadMW, GridPowerMW, SolarPowerMW, OtherPowerMW: MW
// - DischargeDurationHr: hours
// - CRate, ChargingCRate: fraction of capacity per hour (1C = full capacity/hour)
// - VoltageKV: kV nominal AC
// - percentages: 0..100
type SizingInput struct {
	LoadMW              float64 `yaml:"load_mw" json:"load_mw"`
	DischargeDurationHr float64 `yaml:"discharge_duration_hr" json:"discharge_duration_hr"`
	CRate               float64 `yaml:"c_rate" json:"c_rate"`

	GridPowerMW  float64 `yaml:"grid_power_mw" json:"grid_power_mw"`
	SolarPowerMW float64 `yaml:"solar_power_mw" json:"solar_power_mw"`
	OtherPowerMW float64 `yaml:"other_power_mw" json:"other_power_mw"`

	Application   ApplicationClass   `yaml:"application" json:"application"`
	Environment   EnvironmentClass   `yaml:"environment" json:"environment"`
	VoltageKV     float64            `yaml:"voltage_kv" json:"voltage_kv"`
	GridStability GridStabilityClass `yaml:"grid_stability" json:"grid_stability"`
	Cooling       CoolingClass       `yaml:"cooling" json:"cooling"`

	CyclesPerDay       int  `yaml:"cycles_per_day" json:"cycles_per_day"`
	BlackStartRequired bool `yaml:"black_start_required" json:"black_start_required"`

	// Derating and efficiency parameters. Zero values are replaced by
	// defaults in ApplyDefaults before validation.
	DoDPercent              float64  `yaml:"dod_percent" json:"dod_percent"`
	StaticEfficiencyPercent float64  `yaml:"static_efficiency_percent" json:"static_efficiency_percent"`
	CycleEfficiencyPercent  float64  `yaml:"cycle_efficiency_percent" json:"cycle_efficiency_percent"`
	PowerFactor             float64  `yaml:"power_factor" json:"power_factor"`
	AgingDeratePercent      float64  `yaml:"aging_derate_percent" json:"aging_derate_percent"`
	TempDeratePercent       float64  `yaml:"temperature_derate_percent" json:"temperature_derate_percent"`
	AuxiliaryLoadPercent    float64  `yaml:"auxiliary_load_percent" json:"auxiliary_load_percent"`
	ChargingCRate           *float64 `yaml:"charging_c_rate,omitempty" json:"charging_c_rate,omitempty"`

	CableLengthM           float64 `yaml:"cable_length_m" json:"cable_length_m"`
	SitePrepCost           float64 `yaml:"site_prep_cost" json:"site_prep_cost"`
	EngineeringCostPercent float64 `yaml:"engineering_cost_percent" json:"engineering_cost_percent"`
	ContingencyPercent     float64 `yaml:"contingency_percent" json:"contingency_percent"`
}

// Default values for optional derating/cost parameters.
const (
	DefaultDoDPercent              = 90.0
	DefaultStaticEfficiencyPercent = 90.0
	DefaultCycleEfficiencyPercent  = 95.0
	DefaultPowerFactor             = 0.95
	DefaultAgingDeratePercent      = 5.0
	DefaultTempDeratePercent       = 3.0
	DefaultAuxiliaryLoadPercent    = 2.0
	DefaultCableLengthM            = 50.0
	DefaultSitePrepCost            = 50000.0
	DefaultEngineeringCostPercent  = 10.0
	DefaultContingencyPercent      = 15.0
)

// ApplyDefaults fills zero-valued optional parameters with their defaults and
// returns the completed input. The receiver is not modified.
func (in SizingInput) ApplyDefaults() SizingInput {
	out := in
	if out.DoDPercent == 0 {
		out.DoDPercent = DefaultDoDPercent
	}
	if out.StaticEfficiencyPercent == 0 {
		out.StaticEfficiencyPercent = DefaultStaticEfficiencyPercent
	}
	if out.CycleEfficiencyPercent == 0 {
		out.CycleEfficiencyPercent = DefaultCycleEfficiencyPercent
	}
	if out.PowerFactor == 0 {
		out.PowerFactor = DefaultPowerFactor
	}
	if out.AgingDeratePercent == 0 {
		out.AgingDeratePercent = DefaultAgingDeratePercent
	}
	if out.TempDeratePercent == 0 {
		out.TempDeratePercent = DefaultTempDeratePercent
	}
	if out.AuxiliaryLoadPercent == 0 {
		out.AuxiliaryLoadPercent = DefaultAuxiliaryLoadPercent
	}
	if out.CableLengthM == 0 {
		out.CableLengthM = DefaultCableLengthM
	}
	if out.SitePrepCost == 0 {
		out.SitePrepCost = DefaultSitePrepCost
	}
	if out.EngineeringCostPercent == 0 {
		out.EngineeringCostPercent = DefaultEngineeringCostPercent
	}
	if out.ContingencyPercent == 0 {
		out.ContingencyPercent = DefaultContingencyPercent
	}
	if out.ChargingCRate == nil {
		c := out.CRate
		out.ChargingCRate = &c
	}
	return out
}

// EffectiveChargingCRate returns the charging C-rate, falling back to the
// discharge C-rate when no override was given.
func (in SizingInput) EffectiveChargingCRate() float64 {
	if in.ChargingCRate != nil {
		return *in.ChargingCRate
	}
	return in.CRate
}

// ChargingPowerAvailableMW sums the charging sources.
func (in SizingInput) ChargingPowerAvailableMW() float64 {
	return in.GridPowerMW + in.SolarPowerMW + in.OtherPowerMW
}

// Validate rejects inputs that would make the sizing computation meaningless.
// It must be called after ApplyDefaults.
func (in SizingInput) Validate() error {
	if in.LoadMW <= 0 {
		return fmt.Errorf("load_mw must be positive, got %g", in.LoadMW)
	}
	if in.DischargeDurationHr <= 0 {
		return fmt.Errorf("discharge_duration_hr must be positive, got %g", in.DischargeDurationHr)
	}
	if in.CRate <= 0 {
		return fmt.Errorf("c_rate must be positive, got %g", in.CRate)
	}
	if in.ChargingCRate != nil && *in.ChargingCRate <= 0 {
		return fmt.Errorf("charging_c_rate must be positive, got %g", *in.ChargingCRate)
	}
	if in.GridPowerMW < 0 || in.SolarPowerMW < 0 || in.OtherPowerMW < 0 {
		return fmt.Errorf("charging power sources cannot be negative")
	}
	if !in.Application.Valid() {
		return fmt.Errorf("unknown application class %q", in.Application)
	}
	if !in.Environment.Valid() {
		return fmt.Errorf("unknown environment class %q", in.Environment)
	}
	if !in.GridStability.Valid() {
		return fmt.Errorf("unknown grid stability class %q", in.GridStability)
	}
	if !in.Cooling.Valid() {
		return fmt.Errorf("unknown cooling class %q", in.Cooling)
	}
	if in.VoltageKV <= 0 {
		return fmt.Errorf("voltage_kv must be positive, got %g", in.VoltageKV)
	}
	if in.CyclesPerDay < 1 {
		return fmt.Errorf("cycles_per_day must be at least 1, got %d", in.CyclesPerDay)
	}
	if err := percentInRange("dod_percent", in.DoDPercent); err != nil {
		return err
	}
	if err := percentInRange("static_efficiency_percent", in.StaticEfficiencyPercent); err != nil {
		return err
	}
	if err := percentInRange("cycle_efficiency_percent", in.CycleEfficiencyPercent); err != nil {
		return err
	}
	if in.PowerFactor <= 0 || in.PowerFactor > 1 {
		return fmt.Errorf("power_factor must be in (0,1], got %g", in.PowerFactor)
	}
	if in.AgingDeratePercent < 0 || in.AgingDeratePercent >= 100 {
		return fmt.Errorf("aging_derate_percent must be in [0,100), got %g", in.AgingDeratePercent)
	}
	if in.TempDeratePercent < 0 || in.TempDeratePercent >= 100 {
		return fmt.Errorf("temperature_derate_percent must be in [0,100), got %g", in.TempDeratePercent)
	}
	if in.AuxiliaryLoadPercent < 0 || in.AuxiliaryLoadPercent >= 100 {
		return fmt.Errorf("auxiliary_load_percent must be in [0,100), got %g", in.AuxiliaryLoadPercent)
	}
	if in.CableLengthM <= 0 {
		return fmt.Errorf("cable_length_m must be positive, got %g", in.CableLengthM)
	}
	if in.SitePrepCost < 0 {
		return fmt.Errorf("site_prep_cost cannot be negative, got %g", in.SitePrepCost)
	}
	if err := percentInRange("engineering_cost_percent", in.EngineeringCostPercent); err != nil {
		return err
	}
	if err := percentInRange("contingency_percent", in.ContingencyPercent); err != nil {
		return err
	}
	// The combined derating factor must stay strictly positive; the cascade
	// divides by it.
	derating := (1 - in.AgingDeratePercent/100) * (1 - in.TempDeratePercent/100) * (1 - in.AuxiliaryLoadPercent/100)
	if derating <= 0 {
		return fmt.Errorf("combined derating factor must be positive, got %g", derating)
	}
	return nil
}

func percentInRange(name string, v float64) error {
	if v <= 0 || v > 100 {
		return fmt.Errorf("%s must be in (0,100], got %g", name, v)
	}
	return nil
}
