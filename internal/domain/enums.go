package domain

// ApplicationClass is the primary use case the installation is designed for.
type ApplicationClass string

const (
	AppSelfConsumption      ApplicationClass = "self_consumption"
	AppFrequencyRegulation  ApplicationClass = "frequency_regulation"
	AppPeakShaving          ApplicationClass = "peak_shaving"
	AppBlackStart           ApplicationClass = "black_start"
	AppRenewableIntegration ApplicationClass = "renewable_integration"
	AppMicrogrid            ApplicationClass = "microgrid"
	AppBackupPower          ApplicationClass = "backup_power"
)

// ApplicationClasses lists all valid application classes in display order.
var ApplicationClasses = []ApplicationClass{
	AppSelfConsumption,
	AppFrequencyRegulation,
	AppPeakShaving,
	AppBlackStart,
	AppRenewableIntegration,
	AppMicrogrid,
	AppBackupPower,
}

func (a ApplicationClass) Valid() bool {
	switch a {
	case AppSelfConsumption, AppFrequencyRegulation, AppPeakShaving,
		AppBlackStart, AppRenewableIntegration, AppMicrogrid, AppBackupPower:
		return true
	}
	return false
}

func (a ApplicationClass) Display() string {
	switch a {
	case AppSelfConsumption:
		return "Self Consumption Power Supply"
	case AppFrequencyRegulation:
		return "Frequency Regulation"
	case AppPeakShaving:
		return "Peak Shaving"
	case AppBlackStart:
		return "Black Start"
	case AppRenewableIntegration:
		return "Renewable Integration"
	case AppMicrogrid:
		return "Microgrid"
	case AppBackupPower:
		return "Backup Power"
	}
	return string(a)
}

// EnvironmentClass describes the ambient site environment.
type EnvironmentClass string

const (
	EnvInland     EnvironmentClass = "inland"
	EnvCoastal    EnvironmentClass = "coastal"
	EnvDesert     EnvironmentClass = "desert"
	EnvArctic     EnvironmentClass = "arctic"
	EnvIndustrial EnvironmentClass = "industrial"
)

var EnvironmentClasses = []EnvironmentClass{EnvInland, EnvCoastal, EnvDesert, EnvArctic, EnvIndustrial}

func (e EnvironmentClass) Valid() bool {
	switch e {
	case EnvInland, EnvCoastal, EnvDesert, EnvArctic, EnvIndustrial:
		return true
	}
	return false
}

// CoolingClass is the thermal management system of the battery enclosure.
type CoolingClass string

const (
	CoolingLiquid      CoolingClass = "liquid"
	CoolingAir         CoolingClass = "air"
	CoolingPhaseChange CoolingClass = "phase_change"
	CoolingImmersion   CoolingClass = "immersion"
)

var CoolingClasses = []CoolingClass{CoolingLiquid, CoolingAir, CoolingPhaseChange, CoolingImmersion}

func (c CoolingClass) Valid() bool {
	switch c {
	case CoolingLiquid, CoolingAir, CoolingPhaseChange, CoolingImmersion:
		return true
	}
	return false
}

// GridStabilityClass characterizes the grid the plant connects to.
type GridStabilityClass string

const (
	GridStable   GridStabilityClass = "stable"
	GridUnstable GridStabilityClass = "unstable"
	GridWeak     GridStabilityClass = "weak"
	GridIslanded GridStabilityClass = "islanded"
)

var GridStabilityClasses = []GridStabilityClass{GridStable, GridUnstable, GridWeak, GridIslanded}

func (g GridStabilityClass) Valid() bool {
	switch g {
	case GridStable, GridUnstable, GridWeak, GridIslanded:
		return true
	}
	return false
}

// TransformerType is the insulation/cooling construction of a transformer.
type TransformerType string

const (
	TransformerDry          TransformerType = "dry"
	TransformerOil          TransformerType = "oil"
	TransformerCastResin    TransformerType = "cast_resin"
	TransformerBiodegradable TransformerType = "biodegradable_oil"
)

func (t TransformerType) Valid() bool {
	switch t {
	case TransformerDry, TransformerOil, TransformerCastResin, TransformerBiodegradable:
		return true
	}
	return false
}

func (t TransformerType) Display() string {
	switch t {
	case TransformerDry:
		return "Dry-Type"
	case TransformerOil:
		return "Oil-Filled"
	case TransformerCastResin:
		return "Cast Resin"
	case TransformerBiodegradable:
		return "Biodegradable Oil"
	}
	return string(t)
}

// MountingType is how a piece of equipment is installed on site.
type MountingType string

const (
	MountPad           MountingType = "pad"
	MountPole          MountingType = "pole"
	MountIndoor        MountingType = "indoor"
	MountContainerized MountingType = "containerized"
)

func (m MountingType) Valid() bool {
	switch m {
	case MountPad, MountPole, MountIndoor, MountContainerized:
		return true
	}
	return false
}
