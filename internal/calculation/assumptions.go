package calculation

// Assumptions collects the policy constants of the sizing engine. The
// original tool hard-coded these; they are named and overridable here so a
// deployment can tune them without touching selection logic.
type Assumptions struct {
	// OperatingDaysPerYear annualizes daily cycling.
	OperatingDaysPerYear int

	// DiscountRate is the annual rate used for NPV.
	DiscountRate float64

	// ContainerWasteFallbackFraction: when the best standard container tier
	// wastes more than this fraction of the required capacity, fall back to
	// the custom tier.
	ContainerWasteFallbackFraction float64

	// SwitchgearVoltageToleranceKV is the voltage-class match window.
	SwitchgearVoltageToleranceKV float64

	// TransformerOilVoltageKV / TransformerOilPowerMVA: above either
	// threshold only oil-filled transformers are eligible.
	TransformerOilVoltageKV float64
	TransformerOilPowerMVA  float64

	// PCSOutputVoltageKV is the standard PCS AC output (transformer primary).
	PCSOutputVoltageKV float64

	// Maintenance model.
	AnnualMaintenanceRate     float64 // fraction of total project cost per year
	BatteryCostShare          float64 // assumed battery share of project cost
	BatteryReplacementShare   float64 // replacement cost as fraction of battery cost
	BatteryReplacementCapYr   float64 // replacement no later than this many years
	MajorMaintenanceCostShare float64 // one-off mid-life maintenance share

	// AnnualDegradationPercent is the reported capacity fade per year.
	AnnualDegradationPercent float64

	// TruckPayloadTon sizes the transport estimate.
	TruckPayloadTon float64

	// Recommendation variants.
	AutonomyMarginFraction   float64 // extended-autonomy capacity uplift
	CostMarginFraction       float64 // cost-optimized capacity reduction
	CostVariantMinimumMWh    float64 // cost-optimized only above this requirement
	ChemistryCapacityWindow  float64 // per-unit capacity match window for chemistry swap
	PreferredChemistry       string  // long-life chemistry variant target
	BatteryUnitsPerConverter int     // modular variant batteries-per-PCS ratio
	ModularUnitFloorKWh      float64 // smallest battery considered for modular variant
}

// DefaultAssumptions returns the engine's standard policy constants.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		OperatingDaysPerYear:           300,
		DiscountRate:                   0.08,
		ContainerWasteFallbackFraction: 0.30,
		SwitchgearVoltageToleranceKV:   0.1,
		TransformerOilVoltageKV:        33,
		TransformerOilPowerMVA:         10,
		PCSOutputVoltageKV:             0.69,
		AnnualMaintenanceRate:          0.015,
		BatteryCostShare:               0.60,
		BatteryReplacementShare:        0.50,
		BatteryReplacementCapYr:        10,
		MajorMaintenanceCostShare:      0.10,
		AnnualDegradationPercent:       2.5,
		TruckPayloadTon:                20,
		AutonomyMarginFraction:         0.20,
		CostMarginFraction:             0.20,
		CostVariantMinimumMWh:          1.0,
		ChemistryCapacityWindow:        0.20,
		PreferredChemistry:             "LFP",
		BatteryUnitsPerConverter:       4,
		ModularUnitFloorKWh:            1000,
	}
}
