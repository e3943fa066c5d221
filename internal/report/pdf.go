// internal/report/pdf.go
package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/tamzrod/hoist-loadtester/internal/form"
)

// pdfLayout is the fixed row order of the PDF report.
var pdfLayout = []string{
	form.Tester,
	form.Owner,
	form.Address,
	form.HoistDesc,
	form.Manufacturer,
	form.Model,
	form.SerialNo,
	form.PowerSupply,
	form.RatedCap,
	form.LoadTestSpec,
	form.Pounds,
	form.Overload,
	form.ManSpecI,
	form.ActualIP1,
	form.ActualIP2,
	form.ActualIP3,
}

// PDFFiller renders the fixed A4 load test layout.
type PDFFiller struct {
	Title string
}

func (p *PDFFiller) Ext() string { return "pdf" }

func (p *PDFFiller) Fill(w io.Writer, v Values) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(p.Title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(p.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Date: %s", v.Fields[FieldFullDate])), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	for _, name := range pdfLayout {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(80, 8, tr(form.Label(name)), "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)

		value := v.Fields[name]
		if name == form.Overload {
			value = fmt.Sprintf("[%1s] Yes    [%1s] No", mark(v.Overload == form.Yes), mark(v.Overload == form.No))
		}
		pdf.CellFormat(0, 8, tr(value), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 8, tr(form.Label(form.Comments)), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6, tr(v.Fields[form.Comments]), "1", "L", false)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("report: render pdf: %w", err)
	}
	return pdf.Output(w)
}
