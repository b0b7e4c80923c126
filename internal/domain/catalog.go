package domain

// Catalog bundles the nine read-only equipment category tables. Entries are
// kept in ordered slices so selection iterates deterministically; the engine
// never mutates a Catalog.
type Catalog struct {
	Batteries    []BatteryModel     `yaml:"batteries" json:"batteries"`
	PCS          []PCSModel         `yaml:"pcs" json:"pcs"`
	Transformers []TransformerModel `yaml:"transformers" json:"transformers"`
	Switchgear   []SwitchgearModel  `yaml:"switchgear" json:"switchgear"`
	ACCabinets   []ACCabinetModel   `yaml:"ac_cabinets" json:"ac_cabinets"`
	EMS          []EMSModel         `yaml:"ems" json:"ems"`
	Containers   []ContainerModel   `yaml:"containers" json:"containers"`
	Cables       []CableModel       `yaml:"cables" json:"cables"`
	FireSystems  []FireSystemModel  `yaml:"fire_systems" json:"fire_systems"`
}

// BatteryModel is one battery block entry.
type BatteryModel struct {
	ID            string  `yaml:"id" json:"id"`
	CapacityKWh   float64 `yaml:"capacity_kwh" json:"capacity_kwh"`
	CostPerKWh    float64 `yaml:"cost_per_kwh" json:"cost_per_kwh"`
	WeightKg      float64 `yaml:"weight_kg" json:"weight_kg"`
	Dimensions    string  `yaml:"dimensions" json:"dimensions"`
	Chemistry     string  `yaml:"chemistry" json:"chemistry"`
	CycleLife     int     `yaml:"cycle_life" json:"cycle_life"`
	WarrantyYears int     `yaml:"warranty_years" json:"warranty_years"`
	OperatingTemp string  `yaml:"operating_temp" json:"operating_temp"`
}

// UnitCost is the full cost of one battery block.
func (b BatteryModel) UnitCost() float64 {
	return b.CostPerKWh * b.CapacityKWh
}

// PCSModel is one power-conversion system entry.
type PCSModel struct {
	ID         string  `yaml:"id" json:"id"`
	PowerMW    float64 `yaml:"power_mw" json:"power_mw"`
	Cost       float64 `yaml:"cost" json:"cost"`
	Efficiency float64 `yaml:"efficiency" json:"efficiency"`
	VoltageKV  float64 `yaml:"voltage_kv" json:"voltage_kv"`
	Dimensions string  `yaml:"dimensions" json:"dimensions"`
	WeightKg   float64 `yaml:"weight_kg" json:"weight_kg"`
	Cooling    string  `yaml:"cooling" json:"cooling"`
}

// TransformerModel is one transformer entry.
type TransformerModel struct {
	ID               string          `yaml:"id" json:"id"`
	PowerMVA         float64         `yaml:"power_mva" json:"power_mva"`
	Cost             float64         `yaml:"cost" json:"cost"`
	Type             TransformerType `yaml:"type" json:"type"`
	Dimensions       string          `yaml:"dimensions" json:"dimensions"`
	WeightKg         float64         `yaml:"weight_kg" json:"weight_kg"`
	LossesPercent    float64         `yaml:"losses_percent" json:"losses_percent"`
	ImpedancePercent float64         `yaml:"impedance_percent" json:"impedance_percent"`
	Mounting         MountingType    `yaml:"mounting" json:"mounting"`
}

// SwitchgearModel is one switchgear/RMU entry.
type SwitchgearModel struct {
	ID                 string  `yaml:"id" json:"id"`
	VoltageKV          float64 `yaml:"voltage_kv" json:"voltage_kv"`
	Cost               float64 `yaml:"cost" json:"cost"`
	Type               string  `yaml:"type" json:"type"`
	CurrentRatingA     float64 `yaml:"current_rating_a" json:"current_rating_a"`
	BreakingCapacityKA float64 `yaml:"breaking_capacity_ka" json:"breaking_capacity_ka"`
	Dimensions         string  `yaml:"dimensions" json:"dimensions"`
	WeightKg           float64 `yaml:"weight_kg" json:"weight_kg"`
}

// ACCabinetModel is one AC system cabinet entry; CapacityUnits is the number
// of PCS units one cabinet serves.
type ACCabinetModel struct {
	ID            string  `yaml:"id" json:"id"`
	Size          string  `yaml:"size" json:"size"`
	Cost          float64 `yaml:"cost" json:"cost"`
	CapacityUnits int     `yaml:"capacity_units" json:"capacity_units"`
	Dimensions    string  `yaml:"dimensions" json:"dimensions"`
	WeightKg      float64 `yaml:"weight_kg" json:"weight_kg"`
}

// EMSTier orders energy-management tiers from base to top.
type EMSTier string

const (
	EMSTierBase EMSTier = "base"
	EMSTierMid  EMSTier = "mid"
	EMSTierTop  EMSTier = "top"
)

func (t EMSTier) Valid() bool {
	switch t {
	case EMSTierBase, EMSTierMid, EMSTierTop:
		return true
	}
	return false
}

// EMSModel is one energy-management / SCADA system entry.
type EMSModel struct {
	ID            string  `yaml:"id" json:"id"`
	Tier          EMSTier `yaml:"tier" json:"tier"`
	Cost          float64 `yaml:"cost" json:"cost"`
	Features      string  `yaml:"features" json:"features"`
	Hardware      string  `yaml:"hardware" json:"hardware"`
	Software      string  `yaml:"software" json:"software"`
	Compatibility string  `yaml:"compatibility" json:"compatibility"`
}

// ContainerModel is one enclosure container entry. Custom marks the
// fallback tier used when standard containers waste too much space.
type ContainerModel struct {
	ID          string  `yaml:"id" json:"id"`
	Size        string  `yaml:"size" json:"size"`
	Cost        float64 `yaml:"cost" json:"cost"`
	CapacityKWh float64 `yaml:"capacity_kwh" json:"capacity_kwh"`
	Dimensions  string  `yaml:"dimensions" json:"dimensions"`
	WeightKg    float64 `yaml:"weight_kg" json:"weight_kg"`
	Insulation  string  `yaml:"insulation" json:"insulation"`
	Cooling     string  `yaml:"cooling" json:"cooling"`
	Custom      bool    `yaml:"custom" json:"custom"`
}

// CableModel is one cable type entry; cost scales with run length.
type CableModel struct {
	ID              string  `yaml:"id" json:"id"`
	Type            string  `yaml:"type" json:"type"`
	CostPerM        float64 `yaml:"cost_per_m" json:"cost_per_m"`
	CurrentRatingA  float64 `yaml:"current_rating_a" json:"current_rating_a"`
	VoltageRatingKV float64 `yaml:"voltage_rating_kv" json:"voltage_rating_kv"`
	Insulation      string  `yaml:"insulation" json:"insulation"`
}

// FireSystemModel is one fire-suppression system entry.
type FireSystemModel struct {
	ID        string  `yaml:"id" json:"id"`
	Type      string  `yaml:"type" json:"type"`
	Cost      float64 `yaml:"cost" json:"cost"`
	Coverage  string  `yaml:"coverage" json:"coverage"`
	Standards string  `yaml:"standards" json:"standards"`
}
