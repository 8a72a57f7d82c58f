package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/solar-sizing/pkg/format"
	"github.com/iwvelando/solar-sizing/pkg/solar"
)

func computeResult(t *testing.T, kwh float64) solar.SizingResult {
	t.Helper()
	result, err := solar.Compute(kwh)
	if err != nil {
		t.Fatalf("Compute(%v) error = %v", kwh, err)
	}
	return result
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := PrettyFormat(&buf, computeResult(t, 500), format.NewPrinter("es-CO", "COP")); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	out := buf.String()

	expected := []string{
		"--- Results for 500 kWh/month ---",
		"System power         | 4,17 KW",
		"Panels (550 W)       | 8 panels",
		"Monthly savings      | $463.000 COP",
		"Installation cost    | $16.800.000 COP",
		"Payback period       | 3,02 years",
		"Required area        | 17,60 m²",
		"--- Calculation information ---",
		"Panel power          | 550 W",
		"Effective sun hours  | 5 hours/day",
		"kWh cost             | $926 COP",
		"Installation cost    | $2.100.000 COP per panel",
		"Safety factor        | 25%",
	}
	for _, line := range expected {
		if !strings.Contains(out, line) {
			t.Errorf("PrettyFormat output missing %q\n%s", line, out)
		}
	}
}

func TestInfoFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := InfoFormat(&buf, format.NewPrinter("en-US", "USD")); err != nil {
		t.Fatalf("InfoFormat() error = %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Results for") {
		t.Errorf("InfoFormat should not print results, got %s", out)
	}
	if !strings.Contains(out, "$2,100,000 USD per panel") {
		t.Errorf("InfoFormat missing installation cost, got %s", out)
	}
	if !strings.Contains(out, "2.2 m²") {
		t.Errorf("InfoFormat missing panel area, got %s", out)
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, computeResult(t, 100)); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and one row, got %d records", len(records))
	}
	if len(records[0]) != len(records[1]) {
		t.Fatalf("header has %d columns but row has %d", len(records[0]), len(records[1]))
	}

	row := make(map[string]string)
	for i, name := range records[0] {
		row[name] = records[1][i]
	}
	if row["monthly_consumption_kwh"] != "100" {
		t.Errorf("expected consumption 100, got %s", row["monthly_consumption_kwh"])
	}
	if row["panel_count"] != "2" {
		t.Errorf("expected 2 panels, got %s", row["panel_count"])
	}
	if row["installation_cost"] != "4200000" {
		t.Errorf("expected installation cost 4200000, got %s", row["installation_cost"])
	}
	if !strings.HasPrefix(row["system_power_kw"], "0.8333333") {
		t.Errorf("expected full precision system power, got %s", row["system_power_kw"])
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONFormat(&buf, computeResult(t, 500), format.NewPrinter("es-CO", "COP")); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var report Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode json output: %v", err)
	}
	if report.Result.PanelCount != 8 {
		t.Errorf("expected 8 panels, got %d", report.Result.PanelCount)
	}
	if report.Rounded.PaybackYears != 3.02 {
		t.Errorf("expected rounded payback 3.02, got %v", report.Rounded.PaybackYears)
	}
	if report.Display.MonthlySavings != "$463.000 COP" {
		t.Errorf("expected display savings $463.000 COP, got %s", report.Display.MonthlySavings)
	}
	if report.Constants.PanelPowerW != 550 {
		t.Errorf("expected panel power 550, got %v", report.Constants.PanelPowerW)
	}
	if report.Locale != "es-CO" || report.Currency != "COP" {
		t.Errorf("expected es-CO/COP, got %s/%s", report.Locale, report.Currency)
	}
	if len(report.Info) != 6 {
		t.Errorf("expected 6 info lines, got %d", len(report.Info))
	}
}

func TestRounded(t *testing.T) {
	result := computeResult(t, 500)
	rounded := Rounded(result)

	if rounded.SystemPowerKW != 4.17 {
		t.Errorf("expected rounded system power 4.17, got %v", rounded.SystemPowerKW)
	}
	if rounded.TotalAreaM2 != 17.6 {
		t.Errorf("expected rounded area 17.6, got %v", rounded.TotalAreaM2)
	}
	if rounded.PanelCount != result.PanelCount {
		t.Errorf("panel count should not change, got %d", rounded.PanelCount)
	}
	if result.SystemPowerKW == rounded.SystemPowerKW {
		t.Errorf("Rounded must not modify the original result")
	}
}
