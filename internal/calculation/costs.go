package calculation

import (
	"math"

	"github.com/besskit/bess-calculator/internal/domain"
	"github.com/besskit/bess-calculator/pkg/decimal"
)

// Design is the concrete bill of quantities a cost computation runs over:
// the full catalog records plus unit quantities, and the two absolute-cost
// categories (cabling, fire protection). The recommendation generator builds
// perturbed Designs and reuses the same aggregation.
type Design struct {
	Battery        domain.BatteryModel
	BatteryQty     int
	PCS            domain.PCSModel
	PCSQty         int
	Transformer    domain.TransformerModel
	TransformerQty int
	Switchgear     domain.SwitchgearModel
	SwitchgearQty  int
	ACCabinet      domain.ACCabinetModel
	ACCabinetQty   int
	EMS            domain.EMSModel
	Container      domain.ContainerModel
	ContainerQty   int
	CablingCost    decimal.Money
	FireCost       decimal.Money
}

// EquipmentCost sums unit cost x quantity over all nine categories. Cabling
// and fire protection contribute their precomputed absolute costs.
func (d Design) EquipmentCost() decimal.Money {
	return decimal.Sum(
		decimal.NewMoney(d.Battery.UnitCost()).MulInt(d.BatteryQty),
		decimal.NewMoney(d.PCS.Cost).MulInt(d.PCSQty),
		decimal.NewMoney(d.Transformer.Cost).MulInt(d.TransformerQty),
		decimal.NewMoney(d.Switchgear.Cost).MulInt(d.SwitchgearQty),
		decimal.NewMoney(d.ACCabinet.Cost).MulInt(d.ACCabinetQty),
		decimal.NewMoney(d.EMS.Cost),
		decimal.NewMoney(d.Container.Cost).MulInt(d.ContainerQty),
		d.CablingCost,
		d.FireCost,
	)
}

// ProjectCost derives the full cost breakdown from an equipment cost:
//
//	engineering = equipment x engineering%
//	contingency = (equipment + engineering + site prep) x contingency%
//	total       = equipment + engineering + site prep + contingency
func ProjectCost(equipment decimal.Money, in domain.SizingInput) domain.CostBreakdown {
	sitePrep := decimal.NewMoney(in.SitePrepCost)
	engineering := equipment.Percent(in.EngineeringCostPercent)
	base := decimal.Sum(equipment, engineering, sitePrep)
	contingency := base.Percent(in.ContingencyPercent)
	return domain.CostBreakdown{
		EquipmentCost:    equipment,
		SitePrepCost:     sitePrep,
		EngineeringCost:  engineering,
		ContingencyCost:  contingency,
		TotalProjectCost: base.Add(contingency),
	}
}

// TransportPlan estimates shipping weight over the heavy categories and the
// trucks needed at the assumed payload.
func ComputeTransport(d Design, a Assumptions) domain.TransportPlan {
	batteryKg := d.Battery.WeightKg * float64(d.BatteryQty)
	containerKg := d.Container.WeightKg * float64(d.ContainerQty)
	transformerKg := d.Transformer.WeightKg * float64(d.TransformerQty)
	pcsKg := d.PCS.WeightKg * float64(d.PCSQty)

	totalKg := batteryKg + containerKg + transformerKg + pcsKg
	totalTon := totalKg / 1000

	return domain.TransportPlan{
		BatteryWeightKg:     batteryKg,
		ContainerWeightKg:   containerKg,
		TransformerWeightKg: transformerKg,
		PCSWeightKg:         pcsKg,
		TotalWeightKg:       totalKg,
		TotalWeightTon:      totalTon,
		TrucksNeeded:        int(math.Ceil(totalTon / a.TruckPayloadTon)),
	}
}

// ComputeMaintenance projects recurring and one-off maintenance costs from
// the total project cost and the expected lifecycle.
func ComputeMaintenance(totalProjectCost decimal.Money, lifecycleYears float64, a Assumptions) domain.MaintenancePlan {
	return domain.MaintenancePlan{
		AnnualMaintenance:      totalProjectCost.MulFloat(a.AnnualMaintenanceRate),
		BatteryReplacementYear: math.Min(a.BatteryReplacementCapYr, lifecycleYears),
		BatteryReplacementCost: totalProjectCost.MulFloat(a.BatteryCostShare * a.BatteryReplacementShare),
		MajorMaintenanceYear:   lifecycleYears / 2,
		MajorMaintenanceCost:   totalProjectCost.MulFloat(a.MajorMaintenanceCostShare),
	}
}
