package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/besskit/bess-calculator/internal/domain"
	"github.com/besskit/bess-calculator/pkg/decimal"
)

func TestValueStreamFor(t *testing.T) {
	vs := ValueStreamFor(domain.AppPeakShaving)
	assert.Equal(t, 0.15, vs.EnergyValuePerKWh)
	assert.Equal(t, 100.0, vs.CapacityValuePerKWYr)

	vs = ValueStreamFor(domain.AppFrequencyRegulation)
	assert.Equal(t, 0.10, vs.EnergyValuePerKWh)
	assert.Equal(t, 150.0, vs.CapacityValuePerKWYr)

	vs = ValueStreamFor(domain.AppSelfConsumption)
	assert.Equal(t, 0.12, vs.EnergyValuePerKWh)
	assert.Equal(t, 80.0, vs.CapacityValuePerKWYr)

	// Classes without a dedicated market model share the defaults.
	for _, app := range []domain.ApplicationClass{
		domain.AppBlackStart, domain.AppMicrogrid, domain.AppBackupPower,
	} {
		vs = ValueStreamFor(app)
		assert.Equal(t, defaultValueStream, vs, "application %s", app)
	}
}

func TestLifecycleYears(t *testing.T) {
	assert.InDelta(t, 20, LifecycleYears(6000, 1, 300), 1e-9)
	assert.InDelta(t, 10, LifecycleYears(6000, 2, 300), 1e-9)
	assert.InDelta(t, 0, LifecycleYears(6000, 0, 300), 1e-9)
}

func TestComputeFinancialPeakShaving(t *testing.T) {
	in := baseInput() // 10 MW, 4 h, 1 cycle/day, peak shaving
	total := decimal.NewMoney(34648925)

	f := ComputeFinancial(in, total, 6000, DefaultAssumptions())

	assert.InDelta(t, 40000, f.DailyEnergyKWh, 1e-9)
	assert.Equal(t, "6000.00", f.DailyEnergyRevenue.String())
	assert.Equal(t, "1800000.00", f.AnnualEnergyRevenue.String())
	assert.Equal(t, "1000000.00", f.CapacityRevenue.String())
	assert.Equal(t, "2800000.00", f.AnnualRevenue.String())
	assert.InDelta(t, 20, f.LifecycleYears, 1e-9)

	assert.False(t, f.PaybackYears.IsInfinite())
	assert.InDelta(t, 12.37, float64(f.PaybackYears), 0.01)

	// Positive revenue over 20 years at 8% should clear this project cost.
	assert.True(t, f.NPV.LessThan(decimal.NewMoney(2800000).MulInt(20)))
	assert.Greater(t, f.LCOSPerKWh, 0.0)
	assert.InDelta(t, 8.08, f.ReturnRateApproxPercent, 0.01)
}

func TestComputeFinancialZeroRevenue(t *testing.T) {
	in := baseInput()
	in.LoadMW = 0 // degenerate by construction; the engine rejects this earlier

	f := ComputeFinancial(in, decimal.NewMoney(1000000), 6000, DefaultAssumptions())

	assert.True(t, f.PaybackYears.IsInfinite())
	assert.Equal(t, "infinite", f.PaybackYears.String())
	assert.Equal(t, 0.0, f.LCOSPerKWh)
	assert.Equal(t, 0.0, f.ReturnRateApproxPercent)
	// No revenue: NPV is the negated project cost.
	assert.Equal(t, "-1000000.00", f.NPV.String())
}

func TestComputeFinancialNPVPositiveForCheapProject(t *testing.T) {
	in := baseInput()
	f := ComputeFinancial(in, decimal.NewMoney(1000000), 6000, DefaultAssumptions())
	assert.True(t, f.NPV.IsPositive())
}

func TestPaybackYearsJSON(t *testing.T) {
	b, err := domain.InfinitePayback().MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = domain.PaybackYears(12.37).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "12.37", string(b))
}
