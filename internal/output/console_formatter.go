package output

import (
	"bytes"
	"fmt"

	"github.com/besskit/bess-calculator/internal/domain"
)

// ConsoleFormatter renders a plain-text summary of a sizing report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	r := report.Result
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "BESS SIZING REPORT")
	fmt.Fprintln(&buf, "==================")
	fmt.Fprintf(&buf, "Application: %s at %.2f MW for %.1f h (%.2fC, %g cycle/day)\n",
		r.Input.Application.Display(), r.Input.LoadMW, r.Input.DischargeDurationHr,
		r.Input.CRate, float64(r.Input.CyclesPerDay))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Capacity Cascade")
	fmt.Fprintf(&buf, "  Initial load energy:      %10.2f MWh\n", r.Cascade.InitialCapacityMWh)
	fmt.Fprintf(&buf, "  After depth of discharge: %10.2f MWh\n", r.Cascade.AfterDoDMWh)
	fmt.Fprintf(&buf, "  After static efficiency:  %10.2f MWh\n", r.Cascade.AfterStaticEffMWh)
	fmt.Fprintf(&buf, "  After cycle efficiency:   %10.2f MWh\n", r.Cascade.AfterCycleEffMWh)
	fmt.Fprintf(&buf, "  After derating:           %10.2f MWh\n", r.Cascade.AfterDeratingMWh)
	fmt.Fprintf(&buf, "  C-rate bound:             %10.2f MWh\n", r.Cascade.CRateBoundMWh)
	limit := "energy-limited"
	if !r.Cascade.EnergyLimited {
		limit = "power-limited"
	}
	fmt.Fprintf(&buf, "  Required capacity:        %10.2f MWh (%s)\n", r.Cascade.RequiredCapacityMWh, limit)
	fmt.Fprintln(&buf)

	s := r.Selections
	fmt.Fprintln(&buf, "Equipment Selection")
	fmt.Fprintf(&buf, "  Battery:      %d x %s (%.0f kWh, %s, %d cycles)\n",
		s.Battery.Quantity, s.Battery.ModelID, s.Battery.UnitCapacityKWh, s.Battery.Chemistry, s.Battery.CycleLife)
	fmt.Fprintf(&buf, "  PCS:          %d x %s (%.2f MW, eff %.2f)\n",
		s.PCS.Quantity, s.PCS.ModelID, s.PCS.UnitPowerMW, s.PCS.Efficiency)
	fmt.Fprintf(&buf, "  Transformer:  %d x %s (%.2f MVA, %s, %s)\n",
		s.Transformer.Quantity, s.Transformer.ModelID, s.Transformer.UnitPowerMVA,
		s.Transformer.Type.Display(), s.Transformer.StepType)
	fmt.Fprintf(&buf, "  Switchgear:   %d x %s (%.1f kV, %.0f A rating, %.2f A operating)\n",
		s.Switchgear.Quantity, s.Switchgear.ModelID, s.Switchgear.VoltageKV,
		s.Switchgear.CurrentRatingA, s.Switchgear.OperatingCurrentA)
	fmt.Fprintf(&buf, "  AC Cabinet:   %d x %s\n", s.ACCabinet.Quantity, s.ACCabinet.ModelID)
	fmt.Fprintf(&buf, "  EMS:          %s (%s tier)\n", s.EMS.ModelID, s.EMS.Tier)
	fmt.Fprintf(&buf, "  Container:    %d x %s\n", s.Container.Quantity, s.Container.ModelID)
	fmt.Fprintf(&buf, "  Cable:        %s, %.0f m (%s)\n", s.Cable.ModelID, s.Cable.LengthM, s.Cable.Cost.Format())
	fmt.Fprintf(&buf, "  Fire System:  %s (%s)\n", s.FireSystem.ModelID, s.FireSystem.Cost.Format())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Charging")
	fmt.Fprintf(&buf, "  Power available: %.2f MW\n", r.Charging.PowerAvailableMW)
	if r.Charging.TimeToFullBounded {
		fmt.Fprintf(&buf, "  Time to full:    %.1f h\n", r.Charging.TimeToFullHr)
	} else {
		fmt.Fprintln(&buf, "  Time to full:    no charging source available")
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Costs")
	fmt.Fprintf(&buf, "  Equipment:    %s\n", r.Costs.EquipmentCost.Format())
	fmt.Fprintf(&buf, "  Engineering:  %s\n", r.Costs.EngineeringCost.Format())
	fmt.Fprintf(&buf, "  Site Prep:    %s\n", r.Costs.SitePrepCost.Format())
	fmt.Fprintf(&buf, "  Contingency:  %s\n", r.Costs.ContingencyCost.Format())
	fmt.Fprintf(&buf, "  Total:        %s\n", r.Costs.TotalProjectCost.Format())
	fmt.Fprintln(&buf)

	f := r.Financial
	fmt.Fprintln(&buf, "Financials")
	fmt.Fprintf(&buf, "  Annual revenue:  %s\n", f.AnnualRevenue.Format())
	fmt.Fprintf(&buf, "  Payback:         %s years\n", f.PaybackYears)
	fmt.Fprintf(&buf, "  Lifecycle:       %.1f years\n", f.LifecycleYears)
	fmt.Fprintf(&buf, "  LCOS:            $%.4f/kWh\n", f.LCOSPerKWh)
	fmt.Fprintf(&buf, "  NPV (8%%):        %s\n", f.NPV.Format())
	fmt.Fprintf(&buf, "  Simple return:   %.2f%%/yr\n", f.ReturnRateApproxPercent)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Logistics & Maintenance")
	fmt.Fprintf(&buf, "  Shipping weight: %.2f t in %d trucks\n", r.Transport.TotalWeightTon, r.Transport.TrucksNeeded)
	fmt.Fprintf(&buf, "  Annual O&M:      %s\n", r.Maintenance.AnnualMaintenance.Format())
	fmt.Fprintf(&buf, "  Battery replacement: year %.1f (%s)\n",
		r.Maintenance.BatteryReplacementYear, r.Maintenance.BatteryReplacementCost.Format())

	if len(report.Recommendations) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Design Alternatives (by total cost)")
		for _, opt := range report.Recommendations {
			fmt.Fprintf(&buf, "  %-22s %s  payback %s yr  (%d x %s)\n",
				opt.Name, opt.TotalCost.Format(), opt.PaybackYears,
				opt.BatteryQuantity, opt.BatteryModelID)
		}
	}
	return buf.Bytes(), nil
}
