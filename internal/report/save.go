// internal/report/save.go
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cfg "github.com/tamzrod/hoist-loadtester/internal/config"
	"github.com/tamzrod/hoist-loadtester/internal/form"
)

// Save fills v into a temp file next to dest and renames it into place.
// On any failure nothing is left at dest and the temp file is removed.
func Save(f Filler, v Values, dest string) (err error) {
	dir := filepath.Dir(dest)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return fmt.Errorf("report: create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := f.Fill(tmp, v); err != nil {
		return fmt.Errorf("report: fill %s: %w", dest, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("report: sync %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", dest, err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return fmt.Errorf("report: rename to %s: %w", dest, err)
	}

	return nil
}

// DefaultFileName is "<serial_no>_load_test_report.<ext>".
func DefaultFileName(serial, ext string) string {
	serial = strings.TrimSpace(serial)
	serial = strings.NewReplacer("/", "-", `\`, "-", ":", "-").Replace(serial)
	if serial == "" {
		return "load_test_report." + ext
	}
	return serial + "_load_test_report." + ext
}

// NewFiller picks the filler configured in c.
func NewFiller(c cfg.ReportConfig) (Filler, error) {
	switch strings.ToLower(c.Format) {
	case cfg.FormatXLSX:
		return NewWorkbookFiller(c.Template)
	case cfg.FormatPDF, "":
		return &PDFFiller{Title: c.Title}, nil
	default:
		return nil, fmt.Errorf("report: unknown format %q", c.Format)
	}
}

// Generate validates d, fills the configured document and writes it to the
// output directory. It returns the written path.
func Generate(c cfg.ReportConfig, d *form.Data, now time.Time) (string, error) {
	v, err := BuildValues(d, now)
	if err != nil {
		return "", err
	}

	f, err := NewFiller(c)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(c.OutputDir, DefaultFileName(d.Get(form.SerialNo), f.Ext()))
	if err := Save(f, v, dest); err != nil {
		return "", err
	}
	return dest, nil
}
