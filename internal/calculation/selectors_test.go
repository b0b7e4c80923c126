package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/besskit/bess-calculator/internal/catalog"
	"github.com/besskit/bess-calculator/internal/domain"
)

func TestSelectBatteryLeastWaste(t *testing.T) {
	models := []domain.BatteryModel{
		{ID: "B-1000", CapacityKWh: 1000},
		{ID: "B-3000", CapacityKWh: 3000},
		{ID: "B-5000", CapacityKWh: 5000},
	}

	// 7 MWh: 7x1000 wastes 0, 3x3000 wastes 2000, 2x5000 wastes 3000.
	m, qty, err := SelectBattery(models, 7)
	require.NoError(t, err)
	assert.Equal(t, "B-1000", m.ID)
	assert.Equal(t, 7, qty)

	// 15 MWh: both B-3000 (x5) and B-5000 (x3) waste 0; fewer units wins.
	m, qty, err = SelectBattery(models, 15)
	require.NoError(t, err)
	assert.Equal(t, "B-5000", m.ID)
	assert.Equal(t, 3, qty)
}

func TestSelectBatteryTinyRequirement(t *testing.T) {
	models := []domain.BatteryModel{{ID: "B-2000", CapacityKWh: 2000}}

	m, qty, err := SelectBattery(models, 0.1)
	require.NoError(t, err)
	assert.Equal(t, "B-2000", m.ID)
	assert.Equal(t, 1, qty)
}

func TestSelectBatteryEmptyCatalog(t *testing.T) {
	_, _, err := SelectBattery(nil, 10)
	require.Error(t, err)
	assert.True(t, IsInfeasible(err))
}

func TestSelectPCSLeastUnits(t *testing.T) {
	models := []domain.PCSModel{
		{ID: "P-2", PowerMW: 2},
		{ID: "P-5", PowerMW: 5},
		{ID: "P-10", PowerMW: 10},
	}

	// 9 MW: P-10 covers it in one unit.
	m, qty, err := SelectPCS(models, 9)
	require.NoError(t, err)
	assert.Equal(t, "P-10", m.ID)
	assert.Equal(t, 1, qty)

	// 14 MW: P-10 and... P-5 needs 3, P-10 needs 2; the 2-unit option wins.
	m, qty, err = SelectPCS(models, 14)
	require.NoError(t, err)
	assert.Equal(t, "P-10", m.ID)
	assert.Equal(t, 2, qty)
}

func TestSelectPCSTieLargerUnit(t *testing.T) {
	models := []domain.PCSModel{
		{ID: "P-4", PowerMW: 4},
		{ID: "P-8", PowerMW: 8},
	}

	// 7 MW: both need one unit; the larger unit wins the tie.
	m, qty, err := SelectPCS(models, 7)
	require.NoError(t, err)
	assert.Equal(t, "P-8", m.ID)
	assert.Equal(t, 1, qty)
}

func TestSelectTransformerOilFilter(t *testing.T) {
	models := catalog.Default().Transformers
	a := DefaultAssumptions()

	// Below both thresholds dry types stay eligible.
	dryOnly := []domain.TransformerModel{
		{ID: "TX-D", PowerMVA: 6, Type: domain.TransformerDry},
	}
	m, qty, err := SelectTransformer(dryOnly, 4.5, 11, a)
	require.NoError(t, err)
	assert.Equal(t, "TX-D", m.ID)
	assert.Equal(t, 1, qty)

	// Against the full catalog everything covers 4.5 MVA in one unit, and
	// the one-unit tie goes to the largest model regardless of type.
	m, qty, err = SelectTransformer(models, 4.5, 11, a)
	require.NoError(t, err)
	assert.Equal(t, "TX-15MVA", m.ID)
	assert.Equal(t, 1, qty)

	// Above the MVA threshold: only oil-filled.
	m, _, err = SelectTransformer(models, 12, 11, a)
	require.NoError(t, err)
	assert.Equal(t, domain.TransformerOil, m.Type)

	// Above the voltage threshold, same result.
	m, _, err = SelectTransformer(models, 4.5, 66, a)
	require.NoError(t, err)
	assert.Equal(t, domain.TransformerOil, m.Type)
}

func TestSelectTransformerOilRequiredButUnavailable(t *testing.T) {
	dryOnly := []domain.TransformerModel{
		{ID: "TX-D", PowerMVA: 20, Type: domain.TransformerDry},
	}

	_, _, err := SelectTransformer(dryOnly, 12, 11, DefaultAssumptions())
	require.Error(t, err)
	assert.True(t, IsInfeasible(err))
	assert.Contains(t, err.Error(), "oil-filled")
}

func TestSelectSwitchgearVoltageClass(t *testing.T) {
	models := catalog.Default().Switchgear
	a := DefaultAssumptions()

	m, qty, current, err := SelectSwitchgear(models, 33, 14.4, a)
	require.NoError(t, err)
	assert.Equal(t, "SG-33kV-RMU", m.ID)
	assert.Equal(t, 1, qty)
	assert.InDelta(t, 251.9, current, 0.5)
}

func TestSelectSwitchgearParallelUnits(t *testing.T) {
	models := []domain.SwitchgearModel{
		{ID: "SG-11", VoltageKV: 11, CurrentRatingA: 630},
	}

	// 30 MW at 11 kV is ~1575 A, needing 3 parallel 630 A units.
	m, qty, current, err := SelectSwitchgear(models, 11, 30, DefaultAssumptions())
	require.NoError(t, err)
	assert.Equal(t, "SG-11", m.ID)
	assert.Equal(t, 3, qty)
	assert.InDelta(t, 1574.6, current, 1)
}

func TestSelectSwitchgearNoVoltageClass(t *testing.T) {
	models := catalog.Default().Switchgear

	_, _, _, err := SelectSwitchgear(models, 66, 10, DefaultAssumptions())
	require.Error(t, err)
	assert.True(t, IsInfeasible(err))
}

func TestSelectACCabinet(t *testing.T) {
	models := catalog.Default().ACCabinets

	// 4 PCS units fit exactly in one medium cabinet.
	m, qty, err := SelectACCabinet(models, 4)
	require.NoError(t, err)
	assert.Equal(t, "AC-CAB-M", m.ID)
	assert.Equal(t, 1, qty)

	// 2 units fit exactly in one small cabinet.
	m, qty, err = SelectACCabinet(models, 2)
	require.NoError(t, err)
	assert.Equal(t, "AC-CAB-S", m.ID)
	assert.Equal(t, 1, qty)
}

func TestEMSTierMapping(t *testing.T) {
	cases := map[domain.ApplicationClass]domain.EMSTier{
		domain.AppFrequencyRegulation:  domain.EMSTierTop,
		domain.AppMicrogrid:            domain.EMSTierTop,
		domain.AppBlackStart:           domain.EMSTierTop,
		domain.AppPeakShaving:          domain.EMSTierMid,
		domain.AppRenewableIntegration: domain.EMSTierMid,
		domain.AppSelfConsumption:      domain.EMSTierBase,
		domain.AppBackupPower:          domain.EMSTierBase,
	}
	for app, want := range cases {
		assert.Equal(t, want, EMSTierFor(app), "application %s", app)
	}
}

func TestSelectEMS(t *testing.T) {
	models := catalog.Default().EMS

	m, err := SelectEMS(models, domain.AppFrequencyRegulation)
	require.NoError(t, err)
	assert.Equal(t, "EMS-PRO", m.ID)

	m, err = SelectEMS(models, domain.AppBackupPower)
	require.NoError(t, err)
	assert.Equal(t, "EMS-BASIC", m.ID)
}

func TestSelectContainerStandardFit(t *testing.T) {
	models := catalog.Default().Containers
	a := DefaultAssumptions()

	// 8 MWh fits a 40ft container exactly.
	m, qty, err := SelectContainer(models, 8, a)
	require.NoError(t, err)
	assert.Equal(t, "CONT-40FT", m.ID)
	assert.Equal(t, 1, qty)
}

func TestSelectContainerCustomFallback(t *testing.T) {
	models := []domain.ContainerModel{
		{ID: "C-STD", CapacityKWh: 10000},
		{ID: "C-CUSTOM", CapacityKWh: 15000, Custom: true},
	}
	a := DefaultAssumptions()

	// 6 MWh in a 10 MWh standard container wastes 4 MWh, 67% of the
	// requirement, past the fallback threshold.
	m, qty, err := SelectContainer(models, 6, a)
	require.NoError(t, err)
	assert.Equal(t, "C-CUSTOM", m.ID)
	assert.Equal(t, 1, qty)

	// 9.5 MWh wastes only 5%; the standard tier stays.
	m, qty, err = SelectContainer(models, 9.5, a)
	require.NoError(t, err)
	assert.Equal(t, "C-STD", m.ID)
	assert.Equal(t, 1, qty)
}

func TestSelectContainerNoCustomTier(t *testing.T) {
	models := []domain.ContainerModel{{ID: "C-STD", CapacityKWh: 10000}}

	m, qty, err := SelectContainer(models, 1, DefaultAssumptions())
	require.NoError(t, err)
	assert.Equal(t, "C-STD", m.ID)
	assert.Equal(t, 1, qty)
}

func TestSelectCableByVoltage(t *testing.T) {
	models := catalog.Default().Cables

	m, _, err := SelectCable(models, 0.69, 5)
	require.NoError(t, err)
	assert.Equal(t, "CAB-LV", m.ID)

	m, _, err = SelectCable(models, 33, 5)
	require.NoError(t, err)
	assert.Equal(t, "CAB-MV", m.ID)

	m, _, err = SelectCable(models, 132, 5)
	require.NoError(t, err)
	assert.Equal(t, "CAB-HV", m.ID)

	_, _, err = SelectCable(models, 220, 5)
	require.Error(t, err)
	assert.True(t, IsInfeasible(err))
}

func TestSelectFireSystemTiers(t *testing.T) {
	models := catalog.Default().FireSystems

	m, err := SelectFireSystem(models, 4)
	require.NoError(t, err)
	assert.Equal(t, "FIRE-AFSS", m.ID)

	m, err = SelectFireSystem(models, 8)
	require.NoError(t, err)
	assert.Equal(t, "FIRE-WATER", m.ID)

	m, err = SelectFireSystem(models, 40)
	require.NoError(t, err)
	assert.Equal(t, "FIRE-FM200", m.ID)
}

func TestThreePhaseCurrent(t *testing.T) {
	// 1 MW at 0.4 kV: 1000 / (0.4 * sqrt(3)) = 1443.4 A.
	assert.InDelta(t, 1443.4, ThreePhaseCurrentA(1, 0.4), 0.1)
}
