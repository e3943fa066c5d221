// internal/report/types.go
package report

import (
	"io"

	"github.com/tamzrod/hoist-loadtester/internal/form"
)

// Values is everything a template may reference: every form field as text,
// the injected date fields, and the overload answer for radio-style marks.
type Values struct {
	Fields   map[string]string
	Overload form.Tristate
}

// Lookup resolves one placeholder key.
//
// Plain keys resolve to Fields. The overload radio group also resolves
// "overload:yes" and "overload:no" to "X" on the selected option and "" otherwise.
func (v Values) Lookup(key string) (string, bool) {
	switch key {
	case form.Overload + ":yes":
		return mark(v.Overload == form.Yes), true
	case form.Overload + ":no":
		return mark(v.Overload == form.No), true
	}
	s, ok := v.Fields[key]
	return s, ok
}

func mark(on bool) string {
	if on {
		return "X"
	}
	return ""
}

// Filler renders a filled document onto w.
// Implementations do no validation; Values are already complete.
type Filler interface {
	Fill(w io.Writer, v Values) error
	// Ext is the output file extension without the dot.
	Ext() string
}
