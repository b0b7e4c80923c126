package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/besskit/bess-calculator/internal/domain"
)

// CSVFormatter emits the bill of quantities as CSV, one equipment category
// per row, followed by the project cost lines.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	r := report.Result
	s := r.Selections

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"category", "model", "quantity", "detail"},
		{"battery", s.Battery.ModelID, strconv.Itoa(s.Battery.Quantity),
			fmt.Sprintf("%.0f kWh/unit, %s", s.Battery.UnitCapacityKWh, s.Battery.Chemistry)},
		{"pcs", s.PCS.ModelID, strconv.Itoa(s.PCS.Quantity),
			fmt.Sprintf("%.2f MW/unit", s.PCS.UnitPowerMW)},
		{"transformer", s.Transformer.ModelID, strconv.Itoa(s.Transformer.Quantity),
			fmt.Sprintf("%.2f MVA/unit, %s", s.Transformer.UnitPowerMVA, s.Transformer.Type)},
		{"switchgear", s.Switchgear.ModelID, strconv.Itoa(s.Switchgear.Quantity),
			fmt.Sprintf("%.1f kV, %.0f A", s.Switchgear.VoltageKV, s.Switchgear.CurrentRatingA)},
		{"ac_cabinet", s.ACCabinet.ModelID, strconv.Itoa(s.ACCabinet.Quantity), ""},
		{"ems", s.EMS.ModelID, "1", string(s.EMS.Tier)},
		{"container", s.Container.ModelID, strconv.Itoa(s.Container.Quantity), s.Container.Dimensions},
		{"cable", s.Cable.ModelID, "1", fmt.Sprintf("%.0f m", s.Cable.LengthM)},
		{"fire_system", s.FireSystem.ModelID, "1", s.FireSystem.Type},
		{},
		{"cost", "equipment", "", r.Costs.EquipmentCost.String()},
		{"cost", "engineering", "", r.Costs.EngineeringCost.String()},
		{"cost", "site_prep", "", r.Costs.SitePrepCost.String()},
		{"cost", "contingency", "", r.Costs.ContingencyCost.String()},
		{"cost", "total", "", r.Costs.TotalProjectCost.String()},
	}
	for _, row := range rows {
		if len(row) == 0 {
			row = []string{"", "", "", ""}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
