package report

import (
	"fmt"
	"io"

	"github.com/iwvelando/solar-sizing/pkg/constants"
	"github.com/iwvelando/solar-sizing/pkg/format"
	"github.com/iwvelando/solar-sizing/pkg/output"
	"github.com/iwvelando/solar-sizing/pkg/solar"
)

// ContentType returns the MIME type for an output format.
func ContentType(outputFormat string) string {
	switch outputFormat {
	case constants.OutputFormatCSV:
		return "text/csv; charset=utf-8"
	case constants.OutputFormatJSON:
		return "application/json"
	case constants.OutputFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case constants.OutputFormatPDF:
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render writes the result in the requested output format.
func Render(w io.Writer, outputFormat string, result solar.SizingResult, p *format.Printer) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return output.PrettyFormat(w, result, p)
	case constants.OutputFormatCSV:
		return output.CsvFormat(w, result)
	case constants.OutputFormatJSON:
		return output.JSONFormat(w, result, p)
	case constants.OutputFormatXLSX:
		return WriteXLSX(w, result, p)
	case constants.OutputFormatPDF:
		return WritePDF(w, result, p)
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
}
