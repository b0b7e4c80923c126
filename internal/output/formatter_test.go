package output

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/besskit/bess-calculator/internal/calculation"
	"github.com/besskit/bess-calculator/internal/catalog"
	"github.com/besskit/bess-calculator/internal/domain"
)

func sampleReport(t *testing.T) *domain.Report {
	t.Helper()
	in := domain.SizingInput{
		LoadMW:              10,
		DischargeDurationHr: 4,
		CRate:               0.25,
		GridPowerMW:         10,
		Application:         domain.AppPeakShaving,
		Environment:         domain.EnvInland,
		VoltageKV:           33,
		GridStability:       domain.GridStable,
		Cooling:             domain.CoolingAir,
		CyclesPerDay:        1,
	}
	engine := calculation.NewEngine(catalog.Default())
	result, err := engine.Calculate(in)
	require.NoError(t, err)
	recs, err := engine.GenerateRecommendations(in)
	require.NoError(t, err)
	return &domain.Report{Result: result, Recommendations: recs}
}

func TestGetFormatterByName(t *testing.T) {
	assert.NotNil(t, GetFormatterByName("console"))
	assert.NotNil(t, GetFormatterByName("json"))
	assert.NotNil(t, GetFormatterByName("csv"))
	assert.NotNil(t, GetFormatterByName("JSON"))
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestFormatAliases(t *testing.T) {
	assert.Equal(t, "console", NormalizeFormatName("table"))
	assert.Equal(t, "json", NormalizeFormatName("json-pretty"))
	assert.Equal(t, "csv", NormalizeFormatName("BOQ "))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Equal(t, []string{"console", "csv", "json"}, names)
}

func TestWriteFormatted(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	filename, err := WriteFormatted(JSONFormatter{}, sampleReport(t), "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "bess_report_"))
	assert.True(t, strings.HasSuffix(filename, ".json"))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"recommendations"`)
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleReport(t))
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "BESS SIZING REPORT")
	assert.Contains(t, text, "Peak Shaving")
	assert.Contains(t, text, "BESS-2000")
	assert.Contains(t, text, "energy-limited")
	assert.Contains(t, text, "$34648925.00")
	assert.Contains(t, text, "Design Alternatives")
}

func TestConsoleFormatterUnboundedCharging(t *testing.T) {
	report := sampleReport(t)
	report.Result.Charging = domain.ChargingResult{TimeToFullBounded: false}

	data, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "no charging source available")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleReport(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "result")
	assert.Contains(t, decoded, "recommendations")
}

func TestJSONFormatterInfinitePaybackIsNull(t *testing.T) {
	report := sampleReport(t)
	report.Result.Financial.PaybackYears = domain.InfinitePayback()

	data, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded struct {
		Result struct {
			Financial struct {
				PaybackYears *float64 `json:"payback_years"`
			} `json:"financial"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded.Result.Financial.PaybackYears)
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleReport(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "category,model,quantity,detail", lines[0])

	text := string(data)
	assert.Contains(t, text, "battery,BESS-2000,29")
	assert.Contains(t, text, "cost,total,,34648925.00")
}
