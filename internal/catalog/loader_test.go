package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/besskit/bess-calculator/internal/domain"
)

func writeTempCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, Validate(cat))

	assert.Len(t, cat.Batteries, 14)
	assert.Len(t, cat.PCS, 13)
	assert.Len(t, cat.Transformers, 15)
	assert.Len(t, cat.Switchgear, 5)
	assert.Len(t, cat.ACCabinets, 3)
	assert.Len(t, cat.EMS, 3)
	assert.Len(t, cat.Containers, 4)
	assert.Len(t, cat.Cables, 3)
	assert.Len(t, cat.FireSystems, 3)
}

func TestDefaultCatalogHasCustomContainer(t *testing.T) {
	custom := 0
	for _, c := range Default().Containers {
		if c.Custom {
			custom++
		}
	}
	assert.Equal(t, 1, custom)
}

func TestLoadFromFileOverridesOneCategory(t *testing.T) {
	path := writeTempCatalog(t, `
batteries:
  - id: SITE-5000
    capacity_kwh: 5000
    cost_per_kwh: 380
    cycle_life: 7000
    chemistry: LFP
`)

	cat, err := LoadFromFile(path)
	require.NoError(t, err)

	// Overridden table replaced, everything else from defaults.
	require.Len(t, cat.Batteries, 1)
	assert.Equal(t, "SITE-5000", cat.Batteries[0].ID)
	assert.Len(t, cat.PCS, 13)
	assert.Len(t, cat.FireSystems, 3)
}

func TestLoadFromFileRejectsDuplicateIDs(t *testing.T) {
	path := writeTempCatalog(t, `
batteries:
  - id: DUP
    capacity_kwh: 1000
    cost_per_kwh: 450
    cycle_life: 6000
  - id: DUP
    capacity_kwh: 2000
    cost_per_kwh: 430
    cycle_life: 6000
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadFromFileRejectsBadMagnitudes(t *testing.T) {
	path := writeTempCatalog(t, `
pcs:
  - id: P-BAD
    power_mw: 0
    efficiency: 0.98
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "power_mw")
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsUnknownEMSTier(t *testing.T) {
	cat := Default()
	ems := make([]domain.EMSModel, len(cat.EMS))
	copy(ems, cat.EMS)
	ems[0].Tier = "platinum"
	cat.EMS = ems

	err := Validate(cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tier")
}
