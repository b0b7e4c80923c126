package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() SizingInput {
	return SizingInput{
		LoadMW:              10,
		DischargeDurationHr: 4,
		CRate:               0.25,
		GridPowerMW:         10,
		Application:         AppPeakShaving,
		Environment:         EnvInland,
		VoltageKV:           33,
		GridStability:       GridStable,
		Cooling:             CoolingAir,
		CyclesPerDay:        1,
	}
}

func TestApplyDefaultsFillsZeroValues(t *testing.T) {
	in := validInput().ApplyDefaults()

	assert.Equal(t, DefaultDoDPercent, in.DoDPercent)
	assert.Equal(t, DefaultStaticEfficiencyPercent, in.StaticEfficiencyPercent)
	assert.Equal(t, DefaultCycleEfficiencyPercent, in.CycleEfficiencyPercent)
	assert.Equal(t, DefaultPowerFactor, in.PowerFactor)
	assert.Equal(t, DefaultSitePrepCost, in.SitePrepCost)
	require.NotNil(t, in.ChargingCRate)
	assert.Equal(t, in.CRate, *in.ChargingCRate)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	in := validInput()
	in.DoDPercent = 80
	charging := 0.5
	in.ChargingCRate = &charging

	out := in.ApplyDefaults()
	assert.Equal(t, 80.0, out.DoDPercent)
	assert.Equal(t, 0.5, *out.ChargingCRate)
}

func TestApplyDefaultsDoesNotMutateReceiver(t *testing.T) {
	in := validInput()
	_ = in.ApplyDefaults()
	assert.Zero(t, in.DoDPercent)
	assert.Nil(t, in.ChargingCRate)
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validInput().ApplyDefaults().Validate())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SizingInput)
	}{
		{"zero load", func(in *SizingInput) { in.LoadMW = 0 }},
		{"negative duration", func(in *SizingInput) { in.DischargeDurationHr = -1 }},
		{"zero c-rate", func(in *SizingInput) { in.CRate = 0 }},
		{"negative solar", func(in *SizingInput) { in.SolarPowerMW = -2 }},
		{"unknown application", func(in *SizingInput) { in.Application = "arbitrage" }},
		{"unknown environment", func(in *SizingInput) { in.Environment = "lunar" }},
		{"unknown stability", func(in *SizingInput) { in.GridStability = "chaotic" }},
		{"unknown cooling", func(in *SizingInput) { in.Cooling = "cryogenic" }},
		{"zero voltage", func(in *SizingInput) { in.VoltageKV = 0 }},
		{"zero cycles", func(in *SizingInput) { in.CyclesPerDay = 0 }},
		{"dod above 100", func(in *SizingInput) { in.DoDPercent = 120 }},
		{"power factor above 1", func(in *SizingInput) { in.PowerFactor = 1.2 }},
		{"aging at 100", func(in *SizingInput) { in.AgingDeratePercent = 100 }},
		{"negative site prep", func(in *SizingInput) { in.SitePrepCost = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput().ApplyDefaults()
			tc.mutate(&in)
			assert.Error(t, in.Validate())
		})
	}
}

func TestValidateRejectsNonPositiveChargingRate(t *testing.T) {
	in := validInput().ApplyDefaults()
	zero := 0.0
	in.ChargingCRate = &zero
	assert.Error(t, in.Validate())
}

func TestChargingPowerAvailable(t *testing.T) {
	in := validInput()
	in.SolarPowerMW = 5
	in.OtherPowerMW = 2.5
	assert.InDelta(t, 17.5, in.ChargingPowerAvailableMW(), 1e-9)
}

func TestEnumValidity(t *testing.T) {
	for _, a := range ApplicationClasses {
		assert.True(t, a.Valid(), "application %s", a)
		assert.NotEmpty(t, a.Display())
	}
	assert.False(t, ApplicationClass("arbitrage").Valid())

	for _, e := range EnvironmentClasses {
		assert.True(t, e.Valid())
	}
	for _, g := range GridStabilityClasses {
		assert.True(t, g.Valid())
	}
	for _, c := range CoolingClasses {
		assert.True(t, c.Valid())
	}
	assert.True(t, TransformerOil.Valid())
	assert.False(t, TransformerType("gas").Valid())
}
