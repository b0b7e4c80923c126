package calculation

import (
	"github.com/besskit/bess-calculator/internal/domain"
)

// ComputeCascade derives the required battery capacity from load and
// duration through the successive derating divisions. Each step divides the
// prior stage's result; the order is fixed:
//
//	initial -> DoD -> static efficiency -> cycle efficiency -> combined derate
//
// The result is then checked against the power bound implied by the
// discharge C-rate: a battery discharging at c C needs load/c of capacity to
// sustain the load, so when the energy-derived figure falls short, the
// C-rate bound becomes the requirement (1 MW sustained for 1 h = 1 MWh).
//
// Input must already be validated; the combined derating factor is strictly
// positive by that contract.
func ComputeCascade(in domain.SizingInput) domain.CascadeResult {
	initial := in.LoadMW * in.DischargeDurationHr
	afterDoD := initial / (in.DoDPercent / 100)
	afterStatic := afterDoD / (in.StaticEfficiencyPercent / 100)
	afterCycle := afterStatic / (in.CycleEfficiencyPercent / 100)

	derating := (1 - in.AgingDeratePercent/100) *
		(1 - in.TempDeratePercent/100) *
		(1 - in.AuxiliaryLoadPercent/100)
	afterDerating := afterCycle / derating

	cRateBound := in.LoadMW / in.CRate
	energyLimited := afterDerating >= cRateBound

	required := afterDerating
	if !energyLimited {
		required = cRateBound
	}

	return domain.CascadeResult{
		InitialCapacityMWh:  initial,
		AfterDoDMWh:         afterDoD,
		AfterStaticEffMWh:   afterStatic,
		AfterCycleEffMWh:    afterCycle,
		AfterDeratingMWh:    afterDerating,
		RequiredDischargeMW: in.LoadMW,
		CRateBoundMWh:       cRateBound,
		EnergyLimited:       energyLimited,
		RequiredCapacityMWh: required,
	}
}
