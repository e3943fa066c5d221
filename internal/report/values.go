// internal/report/values.go
package report

import (
	"strings"
	"time"

	"github.com/tamzrod/hoist-loadtester/internal/form"
)

// Date field names injected at fill time.
const (
	FieldDate     = "date"
	FieldMonth    = "month"
	FieldYear     = "year"
	FieldFullDate = "full_date"
)

// FullDateLayout renders e.g. "05-March-2025".
const FullDateLayout = "02-January-2006"

// DateFields decomposes now into the four date fields.
func DateFields(now time.Time) map[string]string {
	full := now.Format(FullDateLayout)
	parts := strings.SplitN(full, "-", 3)

	return map[string]string{
		FieldDate:     parts[0],
		FieldMonth:    parts[1],
		FieldYear:     parts[2],
		FieldFullDate: full,
	}
}

// BuildValues validates d and returns the values for one fill.
// A missing required field fails before anything is opened or written.
func BuildValues(d *form.Data, now time.Time) (Values, error) {
	if err := d.Validate(); err != nil {
		return Values{}, err
	}

	fields := d.Values()
	for k, v := range DateFields(now) {
		fields[k] = v
	}

	return Values{
		Fields:   fields,
		Overload: d.Overload(),
	}, nil
}
