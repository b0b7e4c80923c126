package calculation

import (
	"fmt"
	"math"
	"sort"

	"github.com/besskit/bess-calculator/internal/domain"
	"github.com/besskit/bess-calculator/pkg/decimal"
)

// GenerateRecommendations builds the alternative design variants around a
// base design. Each variant perturbs one axis (autonomy, cost, efficiency,
// chemistry, modularity), recomputes the full project cost through the same
// aggregation as the base run, and estimates payback against the base
// application's annual revenue. Variants that cannot be built from the
// catalog (no qualifying entry) are skipped, never faulted. The returned
// slice is sorted ascending by total cost.
func (e *Engine) GenerateRecommendations(input domain.SizingInput) ([]domain.RecommendationOption, error) {
	in := input.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	cascade := ComputeCascade(in)
	base, _, err := e.selectAll(in, cascade)
	if err != nil {
		return nil, err
	}

	financial := ComputeFinancial(in, ProjectCost(base.EquipmentCost(), in).TotalProjectCost, base.Battery.CycleLife, e.Assumptions)
	annualRevenue := financial.AnnualRevenue

	a := e.Assumptions
	required := cascade.RequiredCapacityMWh
	cat := e.Catalog

	options := []domain.RecommendationOption{
		e.option(base, in, annualRevenue, "Base Configuration",
			fmt.Sprintf("Sized for the required %.2f MWh with least-waste selection", required)),
	}

	if battery, qty, err := SelectBattery(cat.Batteries, required*(1+a.AutonomyMarginFraction)); err == nil {
		d := base
		d.Battery, d.BatteryQty = battery, qty
		options = append(options, e.option(d, in, annualRevenue, "Extended Autonomy",
			fmt.Sprintf("%.0f%% capacity margin for longer discharge windows", a.AutonomyMarginFraction*100)))
	}

	if required > a.CostVariantMinimumMWh {
		if battery, qty, err := SelectBattery(cat.Batteries, required*(1-a.CostMarginFraction)); err == nil {
			d := base
			d.Battery, d.BatteryQty = battery, qty
			options = append(options, e.option(d, in, annualRevenue, "Cost-Optimized",
				fmt.Sprintf("%.0f%% reduced capacity for budget-constrained deployments", a.CostMarginFraction*100)))
		}
	}

	if d, ok := e.highEfficiencyVariant(base, required*in.CRate); ok {
		options = append(options, e.option(d, in, annualRevenue, "High-Efficiency",
			"Best-efficiency conversion with top-tier energy management"))
	}

	if d, ok := e.preferredChemistryVariant(base, required); ok {
		options = append(options, e.option(d, in, annualRevenue, a.PreferredChemistry+" Long-Life",
			"Preferred chemistry with extended cycle life"))
	}

	if d, ok := e.modularVariant(base, required); ok {
		options = append(options, e.option(d, in, annualRevenue, "Modular",
			"Smaller battery blocks for staged deployment and finer redundancy"))
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].TotalCost.LessThan(options[j].TotalCost)
	})
	return options, nil
}

// option turns a design variant into a recommendation entry. Payback uses the
// base run's annual revenue: variants change capital cost, not the
// application's market value.
func (e *Engine) option(d Design, in domain.SizingInput, annualRevenue decimal.Money, name, description string) domain.RecommendationOption {
	total := ProjectCost(d.EquipmentCost(), in).TotalProjectCost

	payback := domain.InfinitePayback()
	if annualRevenue.IsPositive() {
		payback = domain.PaybackYears(round2(total.Div(annualRevenue.Decimal).InexactFloat64()))
	}

	return domain.RecommendationOption{
		Name:               name,
		Description:        description,
		BatteryModelID:     d.Battery.ID,
		BatteryQuantity:    d.BatteryQty,
		PCSModelID:         d.PCS.ID,
		PCSQuantity:        d.PCSQty,
		TransformerModelID: d.Transformer.ID,
		TransformerQty:     d.TransformerQty,
		SwitchgearModelID:  d.Switchgear.ID,
		SwitchgearQty:      d.SwitchgearQty,
		EMSModelID:         d.EMS.ID,
		TotalCost:          total.Round(),
		PaybackYears:       payback,
	}
}

// highEfficiencyVariant swaps in the highest-efficiency PCS that can carry at
// least the base design's per-unit share of the discharge power, paired with
// the top EMS tier.
func (e *Engine) highEfficiencyVariant(base Design, requiredMW float64) (Design, bool) {
	perUnit := requiredMW / float64(base.PCSQty)

	var best domain.PCSModel
	found := false
	for _, m := range e.Catalog.PCS {
		if m.PowerMW < perUnit {
			continue
		}
		if !found || m.Efficiency > best.Efficiency ||
			(m.Efficiency == best.Efficiency && m.PowerMW > best.PowerMW) {
			best = m
			found = true
		}
	}
	if !found {
		return Design{}, false
	}

	ems, err := SelectEMSByTier(e.Catalog.EMS, domain.EMSTierTop)
	if err != nil {
		return Design{}, false
	}

	d := base
	d.PCS = best
	d.PCSQty = int(math.Ceil(requiredMW / best.PowerMW))
	if d.PCSQty < 1 {
		d.PCSQty = 1
	}
	d.EMS = ems
	return d, true
}

// preferredChemistryVariant swaps the battery for the preferred chemistry
// with the longest cycle life among units within the capacity window of the
// base unit. Skipped when the catalog has no qualifying entry or the base
// already uses it.
func (e *Engine) preferredChemistryVariant(base Design, requiredMWh float64) (Design, bool) {
	a := e.Assumptions
	window := base.Battery.CapacityKWh * a.ChemistryCapacityWindow

	var best domain.BatteryModel
	found := false
	for _, m := range e.Catalog.Batteries {
		if m.Chemistry != a.PreferredChemistry {
			continue
		}
		if math.Abs(m.CapacityKWh-base.Battery.CapacityKWh) > window {
			continue
		}
		if !found || m.CycleLife > best.CycleLife {
			best = m
			found = true
		}
	}
	if !found || best.ID == base.Battery.ID {
		return Design{}, false
	}

	d := base
	d.Battery = best
	d.BatteryQty = int(math.Ceil(requiredMWh * 1000 / best.CapacityKWh))
	if d.BatteryQty < 1 {
		d.BatteryQty = 1
	}
	return d, true
}

// modularVariant rebuilds the design on the largest battery block strictly
// smaller than the base unit, down to the modular floor. Converter count
// grows with the block count so each converter serves at most a fixed group
// of blocks. Only offered when the base design already uses multiple units.
func (e *Engine) modularVariant(base Design, requiredMWh float64) (Design, bool) {
	if base.BatteryQty <= 1 {
		return Design{}, false
	}
	a := e.Assumptions

	var best domain.BatteryModel
	found := false
	for _, m := range e.Catalog.Batteries {
		if m.CapacityKWh >= base.Battery.CapacityKWh || m.CapacityKWh < a.ModularUnitFloorKWh {
			continue
		}
		if !found || m.CapacityKWh > best.CapacityKWh {
			best = m
			found = true
		}
	}
	if !found {
		return Design{}, false
	}

	qty := int(math.Ceil(requiredMWh * 1000 / best.CapacityKWh))
	if qty < 1 {
		qty = 1
	}
	pcsQty := (qty + a.BatteryUnitsPerConverter - 1) / a.BatteryUnitsPerConverter
	if pcsQty < base.PCSQty {
		pcsQty = base.PCSQty
	}

	d := base
	d.Battery = best
	d.BatteryQty = qty
	d.PCSQty = pcsQty
	return d, true
}
