// Package output provides utilities for formatting and displaying sizing results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/solar-sizing/pkg/format"
	"github.com/iwvelando/solar-sizing/pkg/mathutil"
	"github.com/iwvelando/solar-sizing/pkg/solar"
)

// Display holds the localized, rounded text for each result field.
type Display struct {
	MonthlyConsumption string `json:"monthlyConsumption"`
	SystemPower        string `json:"systemPower"`
	PanelCount         string `json:"panelCount"`
	MonthlySavings     string `json:"monthlySavings"`
	InstallationCost   string `json:"installationCost"`
	PaybackYears       string `json:"paybackYears"`
	TotalArea          string `json:"totalArea"`
}

// InfoLine is one entry of the calculation information panel.
type InfoLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Report bundles a result with everything needed to render it.
type Report struct {
	Result    solar.SizingResult `json:"result"`
	Rounded   solar.SizingResult `json:"rounded"`
	Display   Display            `json:"display"`
	Info      []InfoLine         `json:"info"`
	Constants solar.Parameters   `json:"constants"`
	Locale    string             `json:"locale"`
	Currency  string             `json:"currency"`
}

// NewReport prepares the rounded and localized views of a result.
func NewReport(result solar.SizingResult, p *format.Printer) Report {
	params := solar.Constants()
	return Report{
		Result:    result,
		Rounded:   Rounded(result),
		Display:   NewDisplay(result, p),
		Info:      InfoPanel(params, p),
		Constants: params,
		Locale:    p.Locale(),
		Currency:  p.CurrencyCode(),
	}
}

// NewDisplay formats a result: two decimals for power, area and payback,
// whole currency units with grouping for money.
func NewDisplay(result solar.SizingResult, p *format.Printer) Display {
	return Display{
		MonthlyConsumption: p.Number(result.MonthlyConsumptionKWh) + " kWh",
		SystemPower:        p.Decimal(result.SystemPowerKW) + " KW",
		PanelCount:         p.Integer(float64(result.PanelCount)) + " panels",
		MonthlySavings:     p.Currency(result.MonthlySavings),
		InstallationCost:   p.Currency(result.InstallationCost),
		PaybackYears:       p.Decimal(result.PaybackYears) + " years",
		TotalArea:          p.Decimal(result.TotalAreaM2) + " m²",
	}
}

// Rounded returns a copy of the result with power, area and payback rounded
// to display precision and currency rounded to whole units.
func Rounded(result solar.SizingResult) solar.SizingResult {
	rounded := result
	rounded.SystemPowerKW = mathutil.Round(result.SystemPowerKW)
	rounded.InstalledPowerKW = mathutil.Round(result.InstalledPowerKW)
	rounded.PaybackYears = mathutil.Round(result.PaybackYears)
	rounded.TotalAreaM2 = mathutil.Round(result.TotalAreaM2)
	rounded.MonthlySavings = mathutil.RoundTo(result.MonthlySavings, 0)
	rounded.AnnualSavings = mathutil.RoundTo(result.AnnualSavings, 0)
	rounded.InstallationCost = mathutil.RoundTo(result.InstallationCost, 0)
	return rounded
}

// InfoPanel lists the fixed values the calculation is based on.
func InfoPanel(params solar.Parameters, p *format.Printer) []InfoLine {
	return []InfoLine{
		{Label: "Panel power", Value: p.Integer(params.PanelPowerW) + " W"},
		{Label: "Effective sun hours", Value: p.Number(params.DailySunHours) + " hours/day"},
		{Label: "kWh cost", Value: p.Currency(params.CostPerKWh)},
		{Label: "Installation cost", Value: p.Currency(params.InstallCostPerPanel) + " per panel"},
		{Label: "Panel area", Value: p.Number(params.PanelAreaM2) + " m²"},
		{Label: "Safety factor", Value: p.Percent(params.SafetyMarginPercent())},
	}
}

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, result solar.SizingResult, p *format.Printer) error {
	d := NewDisplay(result, p)
	rows := []InfoLine{
		{Label: "System power", Value: d.SystemPower},
		{Label: fmt.Sprintf("Panels (%s W)", p.Integer(solar.PanelPowerW)), Value: d.PanelCount},
		{Label: "Monthly savings", Value: d.MonthlySavings},
		{Label: "Installation cost", Value: d.InstallationCost},
		{Label: "Payback period", Value: d.PaybackYears},
		{Label: "Required area", Value: d.TotalArea},
	}

	if _, err := fmt.Fprintf(w, "--- Results for %s/month ---\n", d.MonthlyConsumption); err != nil {
		return err
	}
	if err := writeLines(w, rows); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}
	return InfoFormat(w, p)
}

// InfoFormat writes only the calculation information panel.
func InfoFormat(w io.Writer, p *format.Printer) error {
	if _, err := fmt.Fprintf(w, "--- Calculation information ---\n"); err != nil {
		return err
	}
	return writeLines(w, InfoPanel(solar.Constants(), p))
}

func writeLines(w io.Writer, lines []InfoLine) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-20s | %s\n", line.Label, line.Value); err != nil {
			return err
		}
	}
	return nil
}

var csvHeader = []string{
	"monthly_consumption_kwh",
	"system_power_kw",
	"panel_count",
	"installed_power_kw",
	"monthly_savings",
	"annual_savings",
	"installation_cost",
	"payback_years",
	"total_area_m2",
}

// CsvFormat writes a header and one row of full precision values.
func CsvFormat(w io.Writer, result solar.SizingResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	row := []string{
		formatFloat(result.MonthlyConsumptionKWh),
		formatFloat(result.SystemPowerKW),
		strconv.Itoa(result.PanelCount),
		formatFloat(result.InstalledPowerKW),
		formatFloat(result.MonthlySavings),
		formatFloat(result.AnnualSavings),
		formatFloat(result.InstallationCost),
		formatFloat(result.PaybackYears),
		formatFloat(result.TotalAreaM2),
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// JSONFormat writes the full report as indented JSON.
func JSONFormat(w io.Writer, result solar.SizingResult, p *format.Printer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(result, p))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
