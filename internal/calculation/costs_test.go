package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/besskit/bess-calculator/internal/domain"
	"github.com/besskit/bess-calculator/pkg/decimal"
)

func sampleDesign() Design {
	return Design{
		Battery:     domain.BatteryModel{ID: "B", CapacityKWh: 2000, CostPerKWh: 400, WeightKg: 15000, CycleLife: 6000},
		BatteryQty:  5,
		PCS:         domain.PCSModel{ID: "P", PowerMW: 2.5, Cost: 200000, WeightKg: 1800},
		PCSQty:      2,
		Transformer: domain.TransformerModel{ID: "T", PowerMVA: 6, Cost: 145000, WeightKg: 5000},
		TransformerQty: 1,
		Switchgear:  domain.SwitchgearModel{ID: "S", Cost: 35000},
		SwitchgearQty: 1,
		ACCabinet:   domain.ACCabinetModel{ID: "A", Cost: 10000},
		ACCabinetQty: 1,
		EMS:         domain.EMSModel{ID: "E", Cost: 100000},
		Container:   domain.ContainerModel{ID: "C", Cost: 40000, WeightKg: 5000},
		ContainerQty: 2,
		CablingCost: decimal.NewMoney(15000),
		FireCost:    decimal.NewMoney(25000),
	}
}

func TestDesignEquipmentCost(t *testing.T) {
	d := sampleDesign()

	// 5 x 2000 kWh x $400 = 4,000,000 batteries
	// + 2 x 200,000 PCS + 145,000 TX + 35,000 SG + 10,000 cabinet
	// + 100,000 EMS + 2 x 40,000 containers + 15,000 cabling + 25,000 fire
	assert.Equal(t, "4810000.00", d.EquipmentCost().String())
}

func TestProjectCostBreakdown(t *testing.T) {
	in := baseInput() // 10% engineering, 15% contingency, $50k site prep
	equipment := decimal.NewMoney(1000000)

	costs := ProjectCost(equipment, in)

	assert.Equal(t, "100000.00", costs.EngineeringCost.String())
	assert.Equal(t, "50000.00", costs.SitePrepCost.String())
	// contingency over equipment + engineering + site prep
	assert.Equal(t, "172500.00", costs.ContingencyCost.String())
	assert.Equal(t, "1322500.00", costs.TotalProjectCost.String())
}

func TestComputeTransport(t *testing.T) {
	d := sampleDesign()
	plan := ComputeTransport(d, DefaultAssumptions())

	assert.InDelta(t, 75000, plan.BatteryWeightKg, 1e-9)
	assert.InDelta(t, 10000, plan.ContainerWeightKg, 1e-9)
	assert.InDelta(t, 5000, plan.TransformerWeightKg, 1e-9)
	assert.InDelta(t, 3600, plan.PCSWeightKg, 1e-9)
	assert.InDelta(t, 93.6, plan.TotalWeightTon, 1e-9)
	assert.Equal(t, 5, plan.TrucksNeeded)
}

func TestComputeMaintenance(t *testing.T) {
	total := decimal.NewMoney(10000000)
	plan := ComputeMaintenance(total, 20, DefaultAssumptions())

	assert.Equal(t, "150000.00", plan.AnnualMaintenance.Round().String())
	// replacement capped at year 10 even on a 20-year lifecycle
	assert.InDelta(t, 10, plan.BatteryReplacementYear, 1e-9)
	assert.Equal(t, "3000000.00", plan.BatteryReplacementCost.Round().String())
	assert.InDelta(t, 10, plan.MajorMaintenanceYear, 1e-9)
	assert.Equal(t, "1000000.00", plan.MajorMaintenanceCost.Round().String())
}

func TestComputeMaintenanceShortLifecycle(t *testing.T) {
	plan := ComputeMaintenance(decimal.NewMoney(1000000), 6, DefaultAssumptions())
	assert.InDelta(t, 6, plan.BatteryReplacementYear, 1e-9)
	assert.InDelta(t, 3, plan.MajorMaintenanceYear, 1e-9)
}
