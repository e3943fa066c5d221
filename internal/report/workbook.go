// internal/report/workbook.go
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// placeholder matches {{name}} and {{name:option}}.
var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+(?::[A-Za-z0-9_]+)?)\s*\}\}`)

// WorkbookFiller fills an XLSX template by replacing placeholders in cells.
// The template file is never modified.
type WorkbookFiller struct {
	template string
}

// NewWorkbookFiller checks that the template exists.
func NewWorkbookFiller(template string) (*WorkbookFiller, error) {
	if template == "" {
		return nil, errors.New("report: workbook template required")
	}
	if _, err := os.Stat(template); err != nil {
		return nil, fmt.Errorf("report: template: %w", err)
	}
	return &WorkbookFiller{template: template}, nil
}

func (w *WorkbookFiller) Ext() string { return "xlsx" }

func (w *WorkbookFiller) Fill(out io.Writer, v Values) error {
	f, err := excelize.OpenFile(w.template)
	if err != nil {
		return fmt.Errorf("report: open template %s: %w", w.template, err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("report: read sheet %s: %w", sheet, err)
		}

		for r, row := range rows {
			for c, cell := range row {
				if !strings.Contains(cell, "{{") {
					continue
				}

				name, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, name, expand(cell, v)); err != nil {
					return fmt.Errorf("report: set %s!%s: %w", sheet, name, err)
				}
			}
		}
	}

	return f.Write(out)
}

// expand replaces known placeholders; unknown ones are left in place.
func expand(s string, v Values) string {
	return placeholder.ReplaceAllStringFunc(s, func(m string) string {
		key := strings.ToLower(placeholder.FindStringSubmatch(m)[1])
		if val, ok := v.Lookup(key); ok {
			return val
		}
		return m
	})
}
