package calculation

import (
	"math"

	sdecimal "github.com/shopspring/decimal"

	"github.com/besskit/bess-calculator/internal/domain"
	"github.com/besskit/bess-calculator/pkg/decimal"
)

// ValueStream is the revenue lookup for an application class.
type ValueStream struct {
	EnergyValuePerKWh    float64 // $/kWh discharged
	CapacityValuePerKWYr float64 // $/kW-year
}

// Default value streams for classes without a dedicated entry.
var defaultValueStream = ValueStream{EnergyValuePerKWh: 0.10, CapacityValuePerKWYr: 100}

// ValueStreamFor returns the revenue rates for an application class.
// The switch is exhaustive over the closed class set; classes without a
// dedicated market model use the defaults.
func ValueStreamFor(app domain.ApplicationClass) ValueStream {
	switch app {
	case domain.AppPeakShaving:
		return ValueStream{EnergyValuePerKWh: 0.15, CapacityValuePerKWYr: 100}
	case domain.AppFrequencyRegulation:
		return ValueStream{EnergyValuePerKWh: 0.10, CapacityValuePerKWYr: 150}
	case domain.AppSelfConsumption:
		return ValueStream{EnergyValuePerKWh: 0.12, CapacityValuePerKWYr: 80}
	case domain.AppBlackStart, domain.AppRenewableIntegration,
		domain.AppMicrogrid, domain.AppBackupPower:
		return defaultValueStream
	}
	return defaultValueStream
}

// LifecycleYears converts a battery cycle life into calendar years at the
// given daily cycling and operating-day count.
func LifecycleYears(cycleLife, cyclesPerDay, operatingDaysPerYear int) float64 {
	annualCycles := cyclesPerDay * operatingDaysPerYear
	if annualCycles <= 0 {
		return 0
	}
	return float64(cycleLife) / float64(annualCycles)
}

// ComputeFinancial derives the lifecycle revenue metrics for a design.
//
// Degenerate cases degrade to sentinels rather than faults: zero annual
// revenue yields an infinite payback, zero lifetime throughput yields a zero
// LCOS, and NPV collapses to the negated project cost.
//
// The reported return rate is annual_revenue / total_cost x 100 - a
// simplified ratio, not an internal-rate-of-return root solve.
func ComputeFinancial(in domain.SizingInput, totalProjectCost decimal.Money, batteryCycleLife int, a Assumptions) domain.FinancialAnalysis {
	vs := ValueStreamFor(in.Application)
	opDays := float64(a.OperatingDaysPerYear)

	dailyEnergyKWh := in.LoadMW * 1000 * in.DischargeDurationHr * float64(in.CyclesPerDay)
	dailyEnergyRevenue := decimal.NewMoney(dailyEnergyKWh * vs.EnergyValuePerKWh)
	annualEnergyRevenue := dailyEnergyRevenue.MulFloat(opDays)
	capacityRevenue := decimal.NewMoney(in.LoadMW * 1000 * vs.CapacityValuePerKWYr)
	annualRevenue := annualEnergyRevenue.Add(capacityRevenue)

	lifecycle := LifecycleYears(batteryCycleLife, in.CyclesPerDay, a.OperatingDaysPerYear)

	payback := domain.InfinitePayback()
	if annualRevenue.IsPositive() {
		payback = domain.PaybackYears(totalProjectCost.Div(annualRevenue.Decimal).InexactFloat64())
	}

	// LCOS: (total cost + lifetime O&M) / lifetime energy discharged.
	annualMaintenance := totalProjectCost.MulFloat(a.AnnualMaintenanceRate)
	totalOM := annualMaintenance.MulFloat(lifecycle)
	totalEnergyKWh := dailyEnergyKWh * opDays * lifecycle
	lcos := 0.0
	if totalEnergyKWh > 0 {
		lcos = totalProjectCost.Add(totalOM).Div(sdecimal.NewFromFloat(totalEnergyKWh)).InexactFloat64()
	}

	// NPV discounts annual revenue over whole lifecycle years.
	npv := decimal.Zero().Sub(totalProjectCost)
	for year := 1; year <= int(lifecycle); year++ {
		discount := sdecimal.NewFromFloat(math.Pow(1+a.DiscountRate, float64(year)))
		npv = npv.Add(annualRevenue.Div(discount))
	}

	returnApprox := 0.0
	if annualRevenue.IsPositive() && totalProjectCost.IsPositive() {
		returnApprox = annualRevenue.Div(totalProjectCost.Decimal).InexactFloat64() * 100
	}

	return domain.FinancialAnalysis{
		LifecycleYears:          lifecycle,
		AnnualDegradationPct:    a.AnnualDegradationPercent,
		DailyEnergyKWh:          dailyEnergyKWh,
		DailyEnergyRevenue:      dailyEnergyRevenue,
		AnnualEnergyRevenue:     annualEnergyRevenue,
		CapacityRevenue:         capacityRevenue,
		AnnualRevenue:           annualRevenue,
		PaybackYears:            payback,
		LCOSPerKWh:              lcos,
		NPV:                     npv,
		ReturnRateApproxPercent: returnApprox,
	}
}
