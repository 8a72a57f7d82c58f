// Package report renders sizing results as downloadable XLSX and PDF files
// and dispatches every output format.
package report

import (
	"fmt"
	"io"

	"github.com/iwvelando/solar-sizing/pkg/format"
	"github.com/iwvelando/solar-sizing/pkg/output"
	"github.com/iwvelando/solar-sizing/pkg/solar"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in the XLSX report.
const (
	SizingSheet    = "Sizing"
	ConstantsSheet = "Constants"
)

// Built-in excelize number formats.
const (
	numFmtGrouped        = 3 // #,##0
	numFmtGroupedDecimal = 4 // #,##0.00
)

type row struct {
	label   string
	value   interface{}
	unit    string
	display string
	numFmt  int
}

func sizingRows(result solar.SizingResult, d output.Display, currency string) []row {
	return []row{
		{"Monthly consumption", result.MonthlyConsumptionKWh, "kWh", d.MonthlyConsumption, numFmtGroupedDecimal},
		{"System power", result.SystemPowerKW, "KW", d.SystemPower, numFmtGroupedDecimal},
		{"Panel count", result.PanelCount, "panels", d.PanelCount, numFmtGrouped},
		{"Installed power", result.InstalledPowerKW, "KW", "", numFmtGroupedDecimal},
		{"Monthly savings", result.MonthlySavings, currency, d.MonthlySavings, numFmtGrouped},
		{"Annual savings", result.AnnualSavings, currency, "", numFmtGrouped},
		{"Installation cost", result.InstallationCost, currency, d.InstallationCost, numFmtGrouped},
		{"Payback period", result.PaybackYears, "years", d.PaybackYears, numFmtGroupedDecimal},
		{"Required area", result.TotalAreaM2, "m²", d.TotalArea, numFmtGroupedDecimal},
	}
}

func constantRows(params solar.Parameters, currency string) []row {
	return []row{
		{"Panel power", params.PanelPowerW, "W", "", numFmtGrouped},
		{"kWh cost", params.CostPerKWh, currency, "", numFmtGrouped},
		{"Installation cost per panel", params.InstallCostPerPanel, currency, "", numFmtGrouped},
		{"Daily sun hours", params.DailySunHours, "hours", "", numFmtGroupedDecimal},
		{"Days per month", params.DaysPerMonth, "days", "", numFmtGrouped},
		{"Panel area", params.PanelAreaM2, "m²", "", numFmtGroupedDecimal},
		{"Safety factor", params.SafetyFactor, "", "", numFmtGroupedDecimal},
	}
}

// WriteXLSX writes a workbook with the full precision result on the Sizing
// sheet and the calculation constants on the Constants sheet.
func WriteXLSX(w io.Writer, result solar.SizingResult, p *format.Printer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := f.SetSheetName("Sheet1", SizingSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ConstantsSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", ConstantsSheet, err)
	}

	d := output.NewDisplay(result, p)
	if err := writeSheet(f, SizingSheet, []string{"Field", "Value", "Unit", "Display"},
		sizingRows(result, d, p.CurrencyCode())); err != nil {
		return err
	}
	if err := writeSheet(f, ConstantsSheet, []string{"Parameter", "Value", "Unit"},
		constantRows(solar.Constants(), p.CurrencyCode())); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows []row) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, bold); err != nil {
		return err
	}

	styles := make(map[int]int)
	for i, r := range rows {
		line := i + 2
		values := []interface{}{r.label, r.value, r.unit}
		if len(header) > 3 {
			values = append(values, r.display)
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", line), &values); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, line, err)
		}

		style, ok := styles[r.numFmt]
		if !ok {
			style, err = f.NewStyle(&excelize.Style{NumFmt: r.numFmt})
			if err != nil {
				return err
			}
			styles[r.numFmt] = style
		}
		cell := fmt.Sprintf("B%d", line)
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", string(rune('A'+len(header)-1)), 18)
}
