package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/besskit/bess-calculator/internal/domain"
)

// LoadFromFile reads a full catalog from a YAML file and validates it.
// Categories omitted from the file fall back to the built-in defaults, so a
// site override file only needs to list the tables it replaces.
func LoadFromFile(path string) (*domain.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	var loaded domain.Catalog
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	cat := mergeWithDefaults(&loaded)
	if err := Validate(cat); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	return cat, nil
}

func mergeWithDefaults(loaded *domain.Catalog) *domain.Catalog {
	out := *Default()
	if len(loaded.Batteries) > 0 {
		out.Batteries = loaded.Batteries
	}
	if len(loaded.PCS) > 0 {
		out.PCS = loaded.PCS
	}
	if len(loaded.Transformers) > 0 {
		out.Transformers = loaded.Transformers
	}
	if len(loaded.Switchgear) > 0 {
		out.Switchgear = loaded.Switchgear
	}
	if len(loaded.ACCabinets) > 0 {
		out.ACCabinets = loaded.ACCabinets
	}
	if len(loaded.EMS) > 0 {
		out.EMS = loaded.EMS
	}
	if len(loaded.Containers) > 0 {
		out.Containers = loaded.Containers
	}
	if len(loaded.Cables) > 0 {
		out.Cables = loaded.Cables
	}
	if len(loaded.FireSystems) > 0 {
		out.FireSystems = loaded.FireSystems
	}
	return &out
}

// Validate checks every catalog entry for usable sizing magnitudes.
func Validate(cat *domain.Catalog) error {
	if cat == nil {
		return fmt.Errorf("catalog is nil")
	}
	seen := map[string]bool{}
	uniq := func(id string) error {
		if id == "" {
			return fmt.Errorf("entry with empty id")
		}
		if seen[id] {
			return fmt.Errorf("duplicate model id %q", id)
		}
		seen[id] = true
		return nil
	}
	for _, b := range cat.Batteries {
		if err := uniq(b.ID); err != nil {
			return fmt.Errorf("batteries: %w", err)
		}
		if b.CapacityKWh <= 0 {
			return fmt.Errorf("battery %s: capacity_kwh must be positive", b.ID)
		}
		if b.CostPerKWh <= 0 {
			return fmt.Errorf("battery %s: cost_per_kwh must be positive", b.ID)
		}
		if b.CycleLife <= 0 {
			return fmt.Errorf("battery %s: cycle_life must be positive", b.ID)
		}
	}
	for _, p := range cat.PCS {
		if err := uniq(p.ID); err != nil {
			return fmt.Errorf("pcs: %w", err)
		}
		if p.PowerMW <= 0 {
			return fmt.Errorf("pcs %s: power_mw must be positive", p.ID)
		}
		if p.Efficiency <= 0 || p.Efficiency > 1 {
			return fmt.Errorf("pcs %s: efficiency must be in (0,1]", p.ID)
		}
	}
	for _, t := range cat.Transformers {
		if err := uniq(t.ID); err != nil {
			return fmt.Errorf("transformers: %w", err)
		}
		if t.PowerMVA <= 0 {
			return fmt.Errorf("transformer %s: power_mva must be positive", t.ID)
		}
		if !t.Type.Valid() {
			return fmt.Errorf("transformer %s: unknown type %q", t.ID, t.Type)
		}
		if !t.Mounting.Valid() {
			return fmt.Errorf("transformer %s: unknown mounting %q", t.ID, t.Mounting)
		}
	}
	for _, s := range cat.Switchgear {
		if err := uniq(s.ID); err != nil {
			return fmt.Errorf("switchgear: %w", err)
		}
		if s.VoltageKV <= 0 || s.CurrentRatingA <= 0 {
			return fmt.Errorf("switchgear %s: voltage_kv and current_rating_a must be positive", s.ID)
		}
	}
	for _, a := range cat.ACCabinets {
		if err := uniq(a.ID); err != nil {
			return fmt.Errorf("ac_cabinets: %w", err)
		}
		if a.CapacityUnits <= 0 {
			return fmt.Errorf("ac cabinet %s: capacity_units must be positive", a.ID)
		}
	}
	for _, e := range cat.EMS {
		if err := uniq(e.ID); err != nil {
			return fmt.Errorf("ems: %w", err)
		}
		if !e.Tier.Valid() {
			return fmt.Errorf("ems %s: unknown tier %q", e.ID, e.Tier)
		}
	}
	for _, c := range cat.Containers {
		if err := uniq(c.ID); err != nil {
			return fmt.Errorf("containers: %w", err)
		}
		if c.CapacityKWh <= 0 {
			return fmt.Errorf("container %s: capacity_kwh must be positive", c.ID)
		}
	}
	for _, c := range cat.Cables {
		if err := uniq(c.ID); err != nil {
			return fmt.Errorf("cables: %w", err)
		}
		if c.CostPerM <= 0 || c.VoltageRatingKV <= 0 {
			return fmt.Errorf("cable %s: cost_per_m and voltage_rating_kv must be positive", c.ID)
		}
	}
	for _, f := range cat.FireSystems {
		if err := uniq(f.ID); err != nil {
			return fmt.Errorf("fire_systems: %w", err)
		}
		if f.Cost <= 0 {
			return fmt.Errorf("fire system %s: cost must be positive", f.ID)
		}
	}
	return nil
}
