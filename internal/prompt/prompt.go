// Package prompt collects a sizing input interactively on the terminal.
package prompt

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/besskit/bess-calculator/internal/domain"
)

var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#22D3EE")).
	Bold(true).
	MarginBottom(1)

// Banner returns the styled header shown before the form.
func Banner() string {
	return bannerStyle.Render("BESS Sizing - interactive input")
}

// positiveFloat validates a form field as a positive number.
func positiveFloat(name string) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", name)
		}
		if v <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
		return nil
	}
}

// nonNegativeFloat validates a form field as a number >= 0.
func nonNegativeFloat(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", name)
		}
		if v < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
		return nil
	}
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func applicationOptions() []huh.Option[domain.ApplicationClass] {
	opts := make([]huh.Option[domain.ApplicationClass], 0, len(domain.ApplicationClasses))
	for _, a := range domain.ApplicationClasses {
		opts = append(opts, huh.NewOption(a.Display(), a))
	}
	return opts
}

func environmentOptions() []huh.Option[domain.EnvironmentClass] {
	opts := make([]huh.Option[domain.EnvironmentClass], 0, len(domain.EnvironmentClasses))
	for _, e := range domain.EnvironmentClasses {
		opts = append(opts, huh.NewOption(string(e), e))
	}
	return opts
}

func stabilityOptions() []huh.Option[domain.GridStabilityClass] {
	opts := make([]huh.Option[domain.GridStabilityClass], 0, len(domain.GridStabilityClasses))
	for _, g := range domain.GridStabilityClasses {
		opts = append(opts, huh.NewOption(string(g), g))
	}
	return opts
}

func coolingOptions() []huh.Option[domain.CoolingClass] {
	opts := make([]huh.Option[domain.CoolingClass], 0, len(domain.CoolingClasses))
	for _, c := range domain.CoolingClasses {
		opts = append(opts, huh.NewOption(string(c), c))
	}
	return opts
}

// Collect runs the interactive form and returns a validated sizing input
// with defaults applied.
func Collect() (domain.SizingInput, error) {
	var (
		load, duration, cRate string
		grid, solar, other    string
		voltage, cycles       string
		dod, staticEff        string
		cycleEff, charging    string
		application           = domain.AppPeakShaving
		environment           = domain.EnvInland
		stability             = domain.GridStable
		cooling               = domain.CoolingAir
		blackStart            bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Load (MW)").
				Description("Continuous discharge power the plant must sustain").
				Validate(positiveFloat("load")).
				Value(&load),
			huh.NewInput().
				Title("Discharge duration (hours)").
				Validate(positiveFloat("duration")).
				Value(&duration),
			huh.NewInput().
				Title("Discharge C-rate").
				Description("Fraction of capacity per hour, e.g. 0.25 for a 4-hour battery").
				Validate(positiveFloat("c-rate")).
				Value(&cRate),
		).Title("System Sizing"),

		huh.NewGroup(
			huh.NewInput().
				Title("Grid charging power (MW)").
				Validate(nonNegativeFloat("grid power")).
				Value(&grid),
			huh.NewInput().
				Title("Solar charging power (MW)").
				Validate(nonNegativeFloat("solar power")).
				Value(&solar),
			huh.NewInput().
				Title("Other charging power (MW)").
				Validate(nonNegativeFloat("other power")).
				Value(&other),
		).Title("Charging Sources"),

		huh.NewGroup(
			huh.NewSelect[domain.ApplicationClass]().
				Title("Application").
				Options(applicationOptions()...).
				Value(&application),
			huh.NewSelect[domain.EnvironmentClass]().
				Title("Site environment").
				Options(environmentOptions()...).
				Value(&environment),
			huh.NewSelect[domain.GridStabilityClass]().
				Title("Grid stability").
				Options(stabilityOptions()...).
				Value(&stability),
			huh.NewSelect[domain.CoolingClass]().
				Title("Cooling").
				Options(coolingOptions()...).
				Value(&cooling),
			huh.NewConfirm().
				Title("Black start capability required?").
				Value(&blackStart),
		).Title("Site & Application"),

		huh.NewGroup(
			huh.NewInput().
				Title("Grid connection voltage (kV)").
				Validate(positiveFloat("voltage")).
				Value(&voltage),
			huh.NewInput().
				Title("Cycles per day").
				Validate(positiveFloat("cycles per day")).
				Value(&cycles),
		).Title("Grid Connection"),

		huh.NewGroup(
			huh.NewInput().
				Title("Depth of discharge (%)").
				Placeholder("90").
				Validate(nonNegativeFloat("depth of discharge")).
				Value(&dod),
			huh.NewInput().
				Title("Static efficiency (%)").
				Placeholder("90").
				Validate(nonNegativeFloat("static efficiency")).
				Value(&staticEff),
			huh.NewInput().
				Title("Cycle efficiency (%)").
				Placeholder("95").
				Validate(nonNegativeFloat("cycle efficiency")).
				Value(&cycleEff),
			huh.NewInput().
				Title("Charging C-rate").
				Placeholder("same as discharge").
				Validate(nonNegativeFloat("charging c-rate")).
				Value(&charging),
		).Title("Advanced Overrides").
			Description("Leave blank to use the defaults"),
	)

	if err := form.Run(); err != nil {
		return domain.SizingInput{}, err
	}

	raw := domain.SizingInput{
		LoadMW:                  parseFloat(load),
		DischargeDurationHr:     parseFloat(duration),
		CRate:                   parseFloat(cRate),
		GridPowerMW:             parseFloat(grid),
		SolarPowerMW:            parseFloat(solar),
		OtherPowerMW:            parseFloat(other),
		Application:             application,
		Environment:             environment,
		VoltageKV:               parseFloat(voltage),
		GridStability:           stability,
		Cooling:                 cooling,
		CyclesPerDay:            int(parseFloat(cycles)),
		BlackStartRequired:      blackStart,
		DoDPercent:              parseFloat(dod),
		StaticEfficiencyPercent: parseFloat(staticEff),
		CycleEfficiencyPercent:  parseFloat(cycleEff),
	}
	if c := parseFloat(charging); c > 0 {
		raw.ChargingCRate = &c
	}
	input := raw.ApplyDefaults()

	if err := input.Validate(); err != nil {
		return domain.SizingInput{}, err
	}
	return input, nil
}
