package domain

import (
	"encoding/json"
	"math"

	"github.com/besskit/bess-calculator/pkg/decimal"
)

// PaybackYears carries a payback period that may be infinite (zero annual
// revenue). It marshals to JSON as null when infinite so renderers never see
// a NaN/Inf literal.
type PaybackYears float64

// InfinitePayback is the sentinel for a design that never pays back.
func InfinitePayback() PaybackYears { return PaybackYears(math.Inf(1)) }

func (p PaybackYears) IsInfinite() bool { return math.IsInf(float64(p), 1) }

func (p PaybackYears) String() string {
	if p.IsInfinite() {
		return "infinite"
	}
	return decimal.NewMoney(float64(p)).String()
}

func (p PaybackYears) MarshalJSON() ([]byte, error) {
	if p.IsInfinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}

// CascadeResult holds every intermediate value of the capacity cascade so the
// report can show how the requirement was derived.
type CascadeResult struct {
	InitialCapacityMWh      float64 `json:"initial_capacity_mwh"`
	AfterDoDMWh             float64 `json:"after_dod_mwh"`
	AfterStaticEffMWh       float64 `json:"after_static_eff_mwh"`
	AfterCycleEffMWh        float64 `json:"after_cycle_eff_mwh"`
	AfterDeratingMWh        float64 `json:"after_derating_mwh"`
	RequiredDischargeMW     float64 `json:"required_discharge_mw"`
	CRateBoundMWh           float64 `json:"c_rate_bound_mwh"`
	EnergyLimited           bool    `json:"energy_limited"`
	RequiredCapacityMWh     float64 `json:"required_capacity_mwh"`
}

// BatterySelection is the chosen battery block plus quantity.
type BatterySelection struct {
	ModelID          string  `json:"model_id"`
	Quantity         int     `json:"quantity"`
	UnitCapacityKWh  float64 `json:"unit_capacity_kwh"`
	TotalCapacityMWh float64 `json:"total_capacity_mwh"`
	Chemistry        string  `json:"chemistry"`
	CycleLife        int     `json:"cycle_life"`
	WarrantyYears    int     `json:"warranty_years"`
}

// PCSSelection is the chosen power-conversion system plus quantity.
type PCSSelection struct {
	ModelID     string  `json:"model_id"`
	Quantity    int     `json:"quantity"`
	UnitPowerMW float64 `json:"unit_power_mw"`
	Efficiency  float64 `json:"efficiency"`
	Cooling     string  `json:"cooling"`
}

// TransformerSelection is the chosen transformer plus derived connection data.
type TransformerSelection struct {
	ModelID          string          `json:"model_id"`
	Quantity         int             `json:"quantity"`
	UnitPowerMVA     float64         `json:"unit_power_mva"`
	Type             TransformerType `json:"type"`
	PrimaryKV        float64         `json:"primary_kv"`
	SecondaryKV      float64         `json:"secondary_kv"`
	StepType         string          `json:"step_type"`
	LossesPercent    float64         `json:"losses_percent"`
	ImpedancePercent float64         `json:"impedance_percent"`
	Mounting         MountingType    `json:"mounting"`
}

// SwitchgearSelection is the chosen switchgear tier.
type SwitchgearSelection struct {
	ModelID            string  `json:"model_id"`
	Quantity           int     `json:"quantity"`
	VoltageKV          float64 `json:"voltage_kv"`
	Type               string  `json:"type"`
	CurrentRatingA     float64 `json:"current_rating_a"`
	BreakingCapacityKA float64 `json:"breaking_capacity_ka"`
	OperatingCurrentA  float64 `json:"operating_current_a"`
}

// ACCabinetSelection is the chosen AC system cabinet.
type ACCabinetSelection struct {
	ModelID  string `json:"model_id"`
	Quantity int    `json:"quantity"`
}

// EMSSelection is the chosen energy-management system.
type EMSSelection struct {
	ModelID  string  `json:"model_id"`
	Tier     EMSTier `json:"tier"`
	Features string  `json:"features"`
	Hardware string  `json:"hardware"`
	Software string  `json:"software"`
}

// ContainerSelection is the chosen enclosure container.
type ContainerSelection struct {
	ModelID    string `json:"model_id"`
	Quantity   int    `json:"quantity"`
	Dimensions string `json:"dimensions"`
	Custom     bool   `json:"custom"`
}

// CableSelection is the chosen cable type; cost is absolute for the run.
type CableSelection struct {
	ModelID           string        `json:"model_id"`
	LengthM           float64       `json:"length_m"`
	OperatingCurrentA float64       `json:"operating_current_a"`
	Cost              decimal.Money `json:"cost"`
}

// FireSystemSelection is the chosen fire-suppression system; cost is absolute.
type FireSystemSelection struct {
	ModelID string        `json:"model_id"`
	Type    string        `json:"type"`
	Cost    decimal.Money `json:"cost"`
}

// SelectionSet bundles one selection per equipment category.
type SelectionSet struct {
	Battery     BatterySelection     `json:"battery"`
	PCS         PCSSelection         `json:"pcs"`
	Transformer TransformerSelection `json:"transformer"`
	Switchgear  SwitchgearSelection  `json:"switchgear"`
	ACCabinet   ACCabinetSelection   `json:"ac_cabinet"`
	EMS         EMSSelection         `json:"ems"`
	Container   ContainerSelection   `json:"container"`
	Cable       CableSelection       `json:"cable"`
	FireSystem  FireSystemSelection  `json:"fire_system"`
}

// ChargingResult describes charging feasibility for the selected design.
type ChargingResult struct {
	PowerAvailableMW  float64 `json:"power_available_mw"`
	TimeToFullHr      float64 `json:"time_to_full_hr"`
	TimeToFullBounded bool    `json:"time_to_full_bounded"`
}

// CostBreakdown aggregates the project costs.
type CostBreakdown struct {
	EquipmentCost    decimal.Money `json:"equipment_cost"`
	SitePrepCost     decimal.Money `json:"site_prep_cost"`
	EngineeringCost  decimal.Money `json:"engineering_cost"`
	ContingencyCost  decimal.Money `json:"contingency_cost"`
	TotalProjectCost decimal.Money `json:"total_project_cost"`
}

// FinancialAnalysis carries the lifecycle revenue metrics.
// ReturnRateApproxPercent is a simplified annual-revenue-over-cost ratio, not
// a true internal rate of return.
type FinancialAnalysis struct {
	LifecycleYears          float64       `json:"lifecycle_years"`
	AnnualDegradationPct    float64       `json:"annual_degradation_percent"`
	DailyEnergyKWh          float64       `json:"daily_energy_kwh"`
	DailyEnergyRevenue      decimal.Money `json:"daily_energy_revenue"`
	AnnualEnergyRevenue     decimal.Money `json:"annual_energy_revenue"`
	CapacityRevenue         decimal.Money `json:"capacity_revenue"`
	AnnualRevenue           decimal.Money `json:"annual_revenue"`
	PaybackYears            PaybackYears  `json:"payback_years"`
	LCOSPerKWh              float64       `json:"lcos_per_kwh"`
	NPV                     decimal.Money `json:"npv"`
	ReturnRateApproxPercent float64       `json:"return_rate_approx_percent"`
}

// TransportPlan summarizes shipping weight and truck count.
type TransportPlan struct {
	BatteryWeightKg     float64 `json:"battery_weight_kg"`
	ContainerWeightKg   float64 `json:"container_weight_kg"`
	TransformerWeightKg float64 `json:"transformer_weight_kg"`
	PCSWeightKg         float64 `json:"pcs_weight_kg"`
	TotalWeightKg       float64 `json:"total_weight_kg"`
	TotalWeightTon      float64 `json:"total_weight_ton"`
	TrucksNeeded        int     `json:"trucks_needed"`
}

// MaintenancePlan projects the recurring and one-off maintenance costs.
type MaintenancePlan struct {
	AnnualMaintenance      decimal.Money `json:"annual_maintenance"`
	BatteryReplacementYear float64       `json:"battery_replacement_year"`
	BatteryReplacementCost decimal.Money `json:"battery_replacement_cost"`
	MajorMaintenanceYear   float64       `json:"major_maintenance_year"`
	MajorMaintenanceCost   decimal.Money `json:"major_maintenance_cost"`
}

// SizingResult is the full derived bundle for one calculate invocation.
// It is immutable after construction; all monetary figures are rounded to
// 2 decimals and hour/percent figures to 1-2 decimals exactly once, when the
// engine builds it.
type SizingResult struct {
	Input      SizingInput       `json:"input"`
	Cascade    CascadeResult     `json:"cascade"`
	Selections SelectionSet      `json:"selections"`
	Charging   ChargingResult    `json:"charging"`
	Costs      CostBreakdown     `json:"costs"`
	Financial  FinancialAnalysis `json:"financial"`
	Transport  TransportPlan     `json:"transport"`
	Maintenance MaintenancePlan  `json:"maintenance"`
}

// Report bundles one sizing run with its design alternatives; it is the unit
// the output formatters and the API render.
type Report struct {
	Result          *SizingResult          `json:"result"`
	Recommendations []RecommendationOption `json:"recommendations"`
}

// RecommendationOption is a derived, disposable design variant.
type RecommendationOption struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`

	BatteryModelID     string `json:"battery_model_id"`
	BatteryQuantity    int    `json:"battery_quantity"`
	PCSModelID         string `json:"pcs_model_id"`
	PCSQuantity        int    `json:"pcs_quantity"`
	TransformerModelID string `json:"transformer_model_id"`
	TransformerQty     int    `json:"transformer_quantity"`
	SwitchgearModelID  string `json:"switchgear_model_id"`
	SwitchgearQty      int    `json:"switchgear_quantity"`
	EMSModelID         string `json:"ems_model_id"`

	TotalCost    decimal.Money `json:"total_cost"`
	PaybackYears PaybackYears  `json:"payback_years"`
}
