package output

import (
	"encoding/json"

	"github.com/besskit/bess-calculator/internal/domain"
)

// JSONFormatter emits the full report as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
