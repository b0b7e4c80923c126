package calculation

import (
	"math"
	"sort"

	"github.com/besskit/bess-calculator/internal/domain"
)

// Selection policies. Catalogs are ordered slices, so every selector is
// deterministic: on a full tie the earlier entry wins.
//
// Least-waste (battery, container, AC cabinet): minimize
// quantity*unit - requirement, ties broken by fewer units. Guarantees the
// provisioned total meets the requirement with minimal over-provisioning.
//
// Least-unit-count (PCS, transformer): minimize ceil(requirement/unit),
// ties broken by the larger per-unit magnitude (fewer, bigger units).
//
// Threshold/class (switchgear, cable, fire system, EMS): direct lookup of
// the tier that matches or first exceeds the operating value.

// ThreePhaseCurrentA computes line current in amperes from three-phase power.
func ThreePhaseCurrentA(powerMW, voltageKV float64) float64 {
	return powerMW * 1000 / (voltageKV * math.Sqrt(3))
}

// SelectBattery picks the battery block minimizing wasted capacity for the
// required energy in MWh.
func SelectBattery(models []domain.BatteryModel, requiredMWh float64) (domain.BatteryModel, int, error) {
	requiredKWh := requiredMWh * 1000

	var best domain.BatteryModel
	bestQty := 0
	minWaste := math.Inf(1)
	found := false

	for _, m := range models {
		qty := int(math.Ceil(requiredKWh / m.CapacityKWh))
		if qty < 1 {
			qty = 1
		}
		waste := float64(qty)*m.CapacityKWh - requiredKWh
		if !found || waste < minWaste || (waste == minWaste && qty < bestQty) {
			best = m
			bestQty = qty
			minWaste = waste
			found = true
		}
	}
	if !found {
		return domain.BatteryModel{}, 0, &InfeasibleError{
			Category: "battery", Requirement: requiredMWh, Unit: "MWh",
			Constraint: "empty catalog",
		}
	}
	return best, bestQty, nil
}

// SelectPCS picks the power-conversion model needing the fewest units for
// the required discharge power in MW.
func SelectPCS(models []domain.PCSModel, requiredMW float64) (domain.PCSModel, int, error) {
	var best domain.PCSModel
	bestQty := 0
	found := false

	for _, m := range models {
		qty := int(math.Ceil(requiredMW / m.PowerMW))
		if qty < 1 {
			qty = 1
		}
		if !found || qty < bestQty || (qty == bestQty && m.PowerMW > best.PowerMW) {
			best = m
			bestQty = qty
			found = true
		}
	}
	if !found {
		return domain.PCSModel{}, 0, &InfeasibleError{
			Category: "pcs", Requirement: requiredMW, Unit: "MW",
			Constraint: "empty catalog",
		}
	}
	return best, bestQty, nil
}

// SelectTransformer picks the transformer needing the fewest units for the
// required apparent power. Above the oil thresholds (site voltage or
// required MVA) only oil-filled types are eligible; that filter is a hard
// constraint and an empty candidate set is configuration-infeasible.
func SelectTransformer(models []domain.TransformerModel, requiredMVA, voltageKV float64, a Assumptions) (domain.TransformerModel, int, error) {
	oilOnly := voltageKV > a.TransformerOilVoltageKV || requiredMVA > a.TransformerOilPowerMVA

	var best domain.TransformerModel
	bestQty := 0
	found := false

	for _, m := range models {
		if oilOnly && m.Type != domain.TransformerOil {
			continue
		}
		qty := int(math.Ceil(requiredMVA / m.PowerMVA))
		if qty < 1 {
			qty = 1
		}
		if !found || qty < bestQty || (qty == bestQty && m.PowerMVA > best.PowerMVA) {
			best = m
			bestQty = qty
			found = true
		}
	}
	if !found {
		constraint := "empty catalog"
		if oilOnly {
			constraint = "oil-filled type required"
		}
		return domain.TransformerModel{}, 0, &InfeasibleError{
			Category: "transformer", Requirement: requiredMVA, Unit: "MVA",
			Constraint: constraint,
		}
	}
	return best, bestQty, nil
}

// SelectSwitchgear picks the switchgear tier matching the site voltage
// class. A single unit is preferred; when no unit of the class carries the
// operating current, units are paralleled. Returns the computed operating
// current alongside the selection.
func SelectSwitchgear(models []domain.SwitchgearModel, voltageKV, maxPowerMW float64, a Assumptions) (domain.SwitchgearModel, int, float64, error) {
	current := ThreePhaseCurrentA(maxPowerMW, voltageKV)

	var best domain.SwitchgearModel
	bestQty := 0
	found := false

	for _, m := range models {
		if math.Abs(m.VoltageKV-voltageKV) > a.SwitchgearVoltageToleranceKV {
			continue
		}
		if m.CurrentRatingA >= current {
			return m, 1, current, nil
		}
		qty := int(math.Ceil(current / m.CurrentRatingA))
		if !found || qty < bestQty {
			best = m
			bestQty = qty
			found = true
		}
	}
	if !found {
		return domain.SwitchgearModel{}, 0, current, &InfeasibleError{
			Category: "switchgear", Requirement: voltageKV, Unit: "kV",
			Constraint: "no matching voltage class",
		}
	}
	return best, bestQty, current, nil
}

// SelectACCabinet houses the PCS units with minimal wasted cabinet slots.
func SelectACCabinet(models []domain.ACCabinetModel, pcsUnits int) (domain.ACCabinetModel, int, error) {
	var best domain.ACCabinetModel
	bestQty := 0
	minWaste := math.MaxInt
	found := false

	for _, m := range models {
		qty := (pcsUnits + m.CapacityUnits - 1) / m.CapacityUnits
		if qty < 1 {
			qty = 1
		}
		waste := qty*m.CapacityUnits - pcsUnits
		if !found || waste < minWaste || (waste == minWaste && qty < bestQty) {
			best = m
			bestQty = qty
			minWaste = waste
			found = true
		}
	}
	if !found {
		return domain.ACCabinetModel{}, 0, &InfeasibleError{
			Category: "ac_cabinet", Requirement: float64(pcsUnits), Unit: "PCS units",
			Constraint: "empty catalog",
		}
	}
	return best, bestQty, nil
}

// EMSTierFor maps the application class onto an energy-management tier.
// The switch is exhaustive over the closed class set.
func EMSTierFor(app domain.ApplicationClass) domain.EMSTier {
	switch app {
	case domain.AppFrequencyRegulation, domain.AppMicrogrid, domain.AppBlackStart:
		return domain.EMSTierTop
	case domain.AppPeakShaving, domain.AppRenewableIntegration:
		return domain.EMSTierMid
	case domain.AppSelfConsumption, domain.AppBackupPower:
		return domain.EMSTierBase
	}
	return domain.EMSTierBase
}

// SelectEMS picks the energy-management system for the application class.
func SelectEMS(models []domain.EMSModel, app domain.ApplicationClass) (domain.EMSModel, error) {
	tier := EMSTierFor(app)
	for _, m := range models {
		if m.Tier == tier {
			return m, nil
		}
	}
	return domain.EMSModel{}, &InfeasibleError{
		Category: "ems", Unit: "tier",
		Constraint: "no entry for tier " + string(tier),
	}
}

// SelectEMSByTier picks the entry for an explicit tier (used by the
// high-efficiency recommendation variant).
func SelectEMSByTier(models []domain.EMSModel, tier domain.EMSTier) (domain.EMSModel, error) {
	for _, m := range models {
		if m.Tier == tier {
			return m, nil
		}
	}
	return domain.EMSModel{}, &InfeasibleError{
		Category: "ems", Unit: "tier",
		Constraint: "no entry for tier " + string(tier),
	}
}

// SelectContainer houses the installed battery capacity with minimal wasted
// enclosure volume across the standard tiers; when even the best standard
// fit wastes more than the fallback fraction of the installed capacity, the
// custom tier takes over.
func SelectContainer(models []domain.ContainerModel, totalBatteryMWh float64, a Assumptions) (domain.ContainerModel, int, error) {
	totalKWh := totalBatteryMWh * 1000

	var best domain.ContainerModel
	bestQty := 0
	minWaste := math.Inf(1)
	found := false
	var custom *domain.ContainerModel

	for i, m := range models {
		if m.Custom {
			if custom == nil {
				custom = &models[i]
			}
			continue
		}
		qty := int(math.Ceil(totalKWh / m.CapacityKWh))
		if qty < 1 {
			qty = 1
		}
		waste := float64(qty)*m.CapacityKWh - totalKWh
		if !found || waste < minWaste || (waste == minWaste && qty < bestQty) {
			best = m
			bestQty = qty
			minWaste = waste
			found = true
		}
	}

	if found && minWaste <= totalKWh*a.ContainerWasteFallbackFraction {
		return best, bestQty, nil
	}
	if custom != nil {
		qty := int(math.Ceil(totalKWh / custom.CapacityKWh))
		if qty < 1 {
			qty = 1
		}
		return *custom, qty, nil
	}
	if found {
		// No custom tier to fall back to; the wasteful standard fit still
		// satisfies the capacity requirement.
		return best, bestQty, nil
	}
	return domain.ContainerModel{}, 0, &InfeasibleError{
		Category: "container", Requirement: totalBatteryMWh, Unit: "MWh",
		Constraint: "empty catalog",
	}
}

// SelectCable picks the cable class that matches or first exceeds the site
// voltage, and reports the operating current for the record.
func SelectCable(models []domain.CableModel, voltageKV, maxPowerMW float64) (domain.CableModel, float64, error) {
	current := ThreePhaseCurrentA(maxPowerMW, voltageKV)

	candidates := make([]domain.CableModel, len(models))
	copy(candidates, models)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].VoltageRatingKV < candidates[j].VoltageRatingKV
	})
	for _, m := range candidates {
		if m.VoltageRatingKV >= voltageKV {
			return m, current, nil
		}
	}
	return domain.CableModel{}, current, &InfeasibleError{
		Category: "cable", Requirement: voltageKV, Unit: "kV",
		Constraint: "no cable class rated for voltage",
	}
}

// Fire-suppression sizing thresholds in MWh of installed battery energy.
const (
	fireSmallTierMaxMWh = 5.0
	fireMidTierMaxMWh   = 10.0
)

// SelectFireSystem picks the suppression tier by installed battery energy:
// smallest tier up to 5 MWh, mid tier up to 10 MWh, largest above. Tiers are
// ordered by system cost.
func SelectFireSystem(models []domain.FireSystemModel, totalBatteryMWh float64) (domain.FireSystemModel, error) {
	if len(models) == 0 {
		return domain.FireSystemModel{}, &InfeasibleError{
			Category: "fire_system", Requirement: totalBatteryMWh, Unit: "MWh",
			Constraint: "empty catalog",
		}
	}
	tiers := make([]domain.FireSystemModel, len(models))
	copy(tiers, models)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].Cost < tiers[j].Cost })

	switch {
	case totalBatteryMWh <= fireSmallTierMaxMWh:
		return tiers[0], nil
	case totalBatteryMWh <= fireMidTierMaxMWh:
		return tiers[(len(tiers)-1)/2], nil
	default:
		return tiers[len(tiers)-1], nil
	}
}
