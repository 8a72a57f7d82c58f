package report

import (
	"fmt"
	"io"

	"github.com/iwvelando/solar-sizing/pkg/format"
	"github.com/iwvelando/solar-sizing/pkg/output"
	"github.com/iwvelando/solar-sizing/pkg/solar"
	"github.com/phpdave11/gofpdf"
)

// PDFTitle is the heading printed on the PDF report.
const PDFTitle = "Solar System Sizing"

// WritePDF writes a one page A4 report with the result and the calculation
// information panel.
func WritePDF(w io.Writer, result solar.SizingResult, p *format.Printer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(PDFTitle, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(PDFTitle), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	d := output.NewDisplay(result, p)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Monthly consumption: %s", d.MonthlyConsumption)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writePDFTable(pdf, tr, "Results", []output.InfoLine{
		{Label: "System power", Value: d.SystemPower},
		{Label: "Panels", Value: d.PanelCount},
		{Label: "Monthly savings", Value: d.MonthlySavings},
		{Label: "Installation cost", Value: d.InstallationCost},
		{Label: "Payback period", Value: d.PaybackYears},
		{Label: "Required area", Value: d.TotalArea},
	})
	pdf.Ln(6)
	writePDFTable(pdf, tr, "Calculation information", output.InfoPanel(solar.Constants(), p))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func writePDFTable(pdf *gofpdf.Fpdf, tr func(string) string, title string, lines []output.InfoLine) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetFillColor(240, 240, 240)
	for i, line := range lines {
		fill := i%2 == 0
		pdf.CellFormat(70, 7, tr(line.Label), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(90, 7, tr(line.Value), "1", 1, "R", fill, 0, "")
	}
}
