// Package config handles loading and validating sizing inputs from files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/besskit/bess-calculator/internal/domain"
)

// InputParser handles parsing of sizing input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a sizing input from a YAML file, fills defaults and
// validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SizingInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.SizingInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	input = input.ApplyDefaults()
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &input, nil
}

// SaveToFile writes a sizing input as YAML.
func (ip *InputParser) SaveToFile(input domain.SizingInput, filename string) error {
	data, err := yaml.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleInput builds a representative grid-scale peak-shaving input.
// It round-trips through ApplyDefaults so the written file shows every
// tunable parameter with its effective value.
func (ip *InputParser) CreateExampleInput() domain.SizingInput {
	return domain.SizingInput{
		LoadMW:              10,
		DischargeDurationHr: 4,
		CRate:               0.25,
		GridPowerMW:         10,
		SolarPowerMW:        5,
		Application:         domain.AppPeakShaving,
		Environment:         domain.EnvInland,
		VoltageKV:           33,
		GridStability:       domain.GridStable,
		Cooling:             domain.CoolingAir,
		CyclesPerDay:        1,
	}.ApplyDefaults()
}
