package calculation

import (
	"math"

	"github.com/besskit/bess-calculator/internal/domain"
	"github.com/besskit/bess-calculator/pkg/decimal"
)

// Engine runs the full sizing pipeline: validate, cascade, select one
// catalog entry per category, aggregate costs and financial metrics. It is
// stateless between calls; the catalog is read-only, so one Engine may be
// shared across concurrent callers.
type Engine struct {
	Catalog     *domain.Catalog
	Assumptions Assumptions
	Logger      Logger
}

// NewEngine creates an engine over a catalog with default assumptions.
func NewEngine(cat *domain.Catalog) *Engine {
	return &Engine{
		Catalog:     cat,
		Assumptions: DefaultAssumptions(),
		Logger:      NopLogger{},
	}
}

// NewEngineWithAssumptions creates an engine with explicit policy constants.
func NewEngineWithAssumptions(cat *domain.Catalog, a Assumptions) *Engine {
	return &Engine{Catalog: cat, Assumptions: a, Logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Calculate performs one complete sizing run over an input snapshot.
// The returned result is immutable and fully rounded: monetary figures to
// 2 decimals, hours to 1 decimal, other derived figures to 2 decimals.
// Rounding happens here, once, and nowhere else.
func (e *Engine) Calculate(input domain.SizingInput) (*domain.SizingResult, error) {
	in := input.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	cascade := ComputeCascade(in)
	e.Logger.Debugf("cascade: required capacity %.2f MWh (energy-limited=%v)",
		cascade.RequiredCapacityMWh, cascade.EnergyLimited)

	design, selections, err := e.selectAll(in, cascade)
	if err != nil {
		return nil, err
	}

	charging := computeCharging(in, cascade.RequiredCapacityMWh)

	costs := ProjectCost(design.EquipmentCost(), in)
	lifecycle := LifecycleYears(design.Battery.CycleLife, in.CyclesPerDay, e.Assumptions.OperatingDaysPerYear)
	financial := ComputeFinancial(in, costs.TotalProjectCost, design.Battery.CycleLife, e.Assumptions)
	transport := ComputeTransport(design, e.Assumptions)
	maintenance := ComputeMaintenance(costs.TotalProjectCost, lifecycle, e.Assumptions)

	result := &domain.SizingResult{
		Input:       in,
		Cascade:     roundCascade(cascade),
		Selections:  selections,
		Charging:    charging,
		Costs:       roundCosts(costs),
		Financial:   roundFinancial(financial),
		Transport:   roundTransport(transport),
		Maintenance: roundMaintenance(maintenance),
	}
	return result, nil
}

// selectAll resolves one catalog entry per category. Any infeasible category
// aborts the run.
func (e *Engine) selectAll(in domain.SizingInput, cascade domain.CascadeResult) (Design, domain.SelectionSet, error) {
	cat := e.Catalog
	a := e.Assumptions

	battery, batteryQty, err := SelectBattery(cat.Batteries, cascade.RequiredCapacityMWh)
	if err != nil {
		return Design{}, domain.SelectionSet{}, err
	}
	totalBatteryMWh := float64(batteryQty) * battery.CapacityKWh / 1000

	maxDischargeMW := cascade.RequiredCapacityMWh * in.CRate

	pcs, pcsQty, err := SelectPCS(cat.PCS, maxDischargeMW)
	if err != nil {
		return Design{}, domain.SelectionSet{}, err
	}

	requiredMVA := maxDischargeMW / in.PowerFactor
	transformer, transformerQty, err := SelectTransformer(cat.Transformers, requiredMVA, in.VoltageKV, a)
	if err != nil {
		return Design{}, domain.SelectionSet{}, err
	}

	switchgear, switchgearQty, sgCurrent, err := SelectSwitchgear(cat.Switchgear, in.VoltageKV, maxDischargeMW, a)
	if err != nil {
		return Design{}, domain.SelectionSet{}, err
	}

	acCabinet, acCabinetQty, err := SelectACCabinet(cat.ACCabinets, pcsQty)
	if err != nil {
		return Design{}, domain.SelectionSet{}, err
	}

	ems, err := SelectEMS(cat.EMS, in.Application)
	if err != nil {
		return Design{}, domain.SelectionSet{}, err
	}

	container, containerQty, err := SelectContainer(cat.Containers, totalBatteryMWh, a)
	if err != nil {
		return Design{}, domain.SelectionSet{}, err
	}

	cable, cableCurrent, err := SelectCable(cat.Cables, in.VoltageKV, maxDischargeMW)
	if err != nil {
		return Design{}, domain.SelectionSet{}, err
	}
	cablingCost := decimal.NewMoney(cable.CostPerM * in.CableLengthM)

	fire, err := SelectFireSystem(cat.FireSystems, totalBatteryMWh)
	if err != nil {
		return Design{}, domain.SelectionSet{}, err
	}

	design := Design{
		Battery: battery, BatteryQty: batteryQty,
		PCS: pcs, PCSQty: pcsQty,
		Transformer: transformer, TransformerQty: transformerQty,
		Switchgear: switchgear, SwitchgearQty: switchgearQty,
		ACCabinet: acCabinet, ACCabinetQty: acCabinetQty,
		EMS:       ems,
		Container: container, ContainerQty: containerQty,
		CablingCost: cablingCost,
		FireCost:    decimal.NewMoney(fire.Cost),
	}

	stepType := "Step-Up Transformer"
	if a.PCSOutputVoltageKV >= in.VoltageKV {
		stepType = "Step-Down Transformer"
	}

	selections := domain.SelectionSet{
		Battery: domain.BatterySelection{
			ModelID:          battery.ID,
			Quantity:         batteryQty,
			UnitCapacityKWh:  battery.CapacityKWh,
			TotalCapacityMWh: round2(totalBatteryMWh),
			Chemistry:        battery.Chemistry,
			CycleLife:        battery.CycleLife,
			WarrantyYears:    battery.WarrantyYears,
		},
		PCS: domain.PCSSelection{
			ModelID:     pcs.ID,
			Quantity:    pcsQty,
			UnitPowerMW: pcs.PowerMW,
			Efficiency:  pcs.Efficiency,
			Cooling:     pcs.Cooling,
		},
		Transformer: domain.TransformerSelection{
			ModelID:          transformer.ID,
			Quantity:         transformerQty,
			UnitPowerMVA:     transformer.PowerMVA,
			Type:             transformer.Type,
			PrimaryKV:        a.PCSOutputVoltageKV,
			SecondaryKV:      in.VoltageKV,
			StepType:         stepType,
			LossesPercent:    transformer.LossesPercent,
			ImpedancePercent: transformer.ImpedancePercent,
			Mounting:         transformer.Mounting,
		},
		Switchgear: domain.SwitchgearSelection{
			ModelID:            switchgear.ID,
			Quantity:           switchgearQty,
			VoltageKV:          switchgear.VoltageKV,
			Type:               switchgear.Type,
			CurrentRatingA:     switchgear.CurrentRatingA,
			BreakingCapacityKA: switchgear.BreakingCapacityKA,
			OperatingCurrentA:  round2(sgCurrent),
		},
		ACCabinet: domain.ACCabinetSelection{
			ModelID:  acCabinet.ID,
			Quantity: acCabinetQty,
		},
		EMS: domain.EMSSelection{
			ModelID:  ems.ID,
			Tier:     ems.Tier,
			Features: ems.Features,
			Hardware: ems.Hardware,
			Software: ems.Software,
		},
		Container: domain.ContainerSelection{
			ModelID:    container.ID,
			Quantity:   containerQty,
			Dimensions: container.Dimensions,
			Custom:     container.Custom,
		},
		Cable: domain.CableSelection{
			ModelID:           cable.ID,
			LengthM:           in.CableLengthM,
			OperatingCurrentA: round2(cableCurrent),
			Cost:              cablingCost.Round(),
		},
		FireSystem: domain.FireSystemSelection{
			ModelID: fire.ID,
			Type:    fire.Type,
			Cost:    decimal.NewMoney(fire.Cost).Round(),
		},
	}
	return design, selections, nil
}

// computeCharging derives charging feasibility: available power across
// sources, capped by the charging C-rate, and the time to a full charge
// re-inflated by the static and cycle efficiencies, ceiled to 0.1 h. With no
// charging power the time is unbounded and reported as such, not as a fault.
func computeCharging(in domain.SizingInput, requiredCapacityMWh float64) domain.ChargingResult {
	available := in.ChargingPowerAvailableMW()
	chargingPower := math.Min(available, in.EffectiveChargingCRate()*requiredCapacityMWh)
	if chargingPower <= 0 {
		return domain.ChargingResult{
			PowerAvailableMW:  round2(available),
			TimeToFullHr:      0,
			TimeToFullBounded: false,
		}
	}
	gross := requiredCapacityMWh / (in.StaticEfficiencyPercent / 100) / (in.CycleEfficiencyPercent / 100)
	hours := math.Ceil(gross/chargingPower*10) / 10
	return domain.ChargingResult{
		PowerAvailableMW:  round2(available),
		TimeToFullHr:      hours,
		TimeToFullBounded: true,
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }

func roundCascade(c domain.CascadeResult) domain.CascadeResult {
	c.InitialCapacityMWh = round2(c.InitialCapacityMWh)
	c.AfterDoDMWh = round2(c.AfterDoDMWh)
	c.AfterStaticEffMWh = round2(c.AfterStaticEffMWh)
	c.AfterCycleEffMWh = round2(c.AfterCycleEffMWh)
	c.AfterDeratingMWh = round2(c.AfterDeratingMWh)
	c.RequiredDischargeMW = round2(c.RequiredDischargeMW)
	c.CRateBoundMWh = round2(c.CRateBoundMWh)
	c.RequiredCapacityMWh = round2(c.RequiredCapacityMWh)
	return c
}

func roundCosts(c domain.CostBreakdown) domain.CostBreakdown {
	c.EquipmentCost = c.EquipmentCost.Round()
	c.SitePrepCost = c.SitePrepCost.Round()
	c.EngineeringCost = c.EngineeringCost.Round()
	c.ContingencyCost = c.ContingencyCost.Round()
	c.TotalProjectCost = c.TotalProjectCost.Round()
	return c
}

func roundFinancial(f domain.FinancialAnalysis) domain.FinancialAnalysis {
	f.LifecycleYears = round1(f.LifecycleYears)
	f.AnnualDegradationPct = round2(f.AnnualDegradationPct)
	f.DailyEnergyKWh = round2(f.DailyEnergyKWh)
	f.DailyEnergyRevenue = f.DailyEnergyRevenue.Round()
	f.AnnualEnergyRevenue = f.AnnualEnergyRevenue.Round()
	f.CapacityRevenue = f.CapacityRevenue.Round()
	f.AnnualRevenue = f.AnnualRevenue.Round()
	if !f.PaybackYears.IsInfinite() {
		f.PaybackYears = domain.PaybackYears(round2(float64(f.PaybackYears)))
	}
	f.LCOSPerKWh = math.Round(f.LCOSPerKWh*10000) / 10000
	f.NPV = f.NPV.Round()
	f.ReturnRateApproxPercent = round2(f.ReturnRateApproxPercent)
	return f
}

func roundTransport(t domain.TransportPlan) domain.TransportPlan {
	t.BatteryWeightKg = round2(t.BatteryWeightKg)
	t.ContainerWeightKg = round2(t.ContainerWeightKg)
	t.TransformerWeightKg = round2(t.TransformerWeightKg)
	t.PCSWeightKg = round2(t.PCSWeightKg)
	t.TotalWeightKg = round2(t.TotalWeightKg)
	t.TotalWeightTon = round2(t.TotalWeightTon)
	return t
}

func roundMaintenance(m domain.MaintenancePlan) domain.MaintenancePlan {
	m.AnnualMaintenance = m.AnnualMaintenance.Round()
	m.BatteryReplacementYear = round1(m.BatteryReplacementYear)
	m.BatteryReplacementCost = m.BatteryReplacementCost.Round()
	m.MajorMaintenanceYear = round1(m.MajorMaintenanceYear)
	m.MajorMaintenanceCost = m.MajorMaintenanceCost.Round()
	return m
}
