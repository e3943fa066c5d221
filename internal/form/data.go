// internal/form/data.go
package form

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tamzrod/hoist-loadtester/internal/measure"
)

// ErrMissingData means a required field is empty.
var ErrMissingData = errors.New("form: missing data")

// Data is the operator's form: free text per field plus the two choice fields.
// It is owned by the orchestrator goroutine.
type Data struct {
	text     map[string]string
	ratedCap int
	overload Tristate
}

// New returns an empty form with the default capacity selected.
func New() *Data {
	return &Data{text: make(map[string]string, len(TextFields))}
}

// Get returns the string value of any field, choice fields included.
func (d *Data) Get(name string) string {
	switch name {
	case RatedCap:
		return d.RatedCapacity()
	case Overload:
		return d.overload.String()
	}
	return d.text[name]
}

// Set writes any field. Choice fields are parsed and validated.
func (d *Data) Set(name, value string) error {
	switch name {
	case RatedCap:
		i := CapacityIndex(value)
		if i < 0 {
			return fmt.Errorf("form: rated_cap %q is not one of %s", value, strings.Join(RatedCapacities, ", "))
		}
		d.ratedCap = i
		return nil
	case Overload:
		t, err := ParseTristate(value)
		if err != nil {
			return err
		}
		d.overload = t
		return nil
	}

	if !isTextField(name) {
		return fmt.Errorf("form: unknown field %q", name)
	}
	d.text[name] = value
	return nil
}

// RatedCapacity returns the selected capacity.
func (d *Data) RatedCapacity() string {
	return RatedCapacities[d.ratedCap]
}

// SelectCapacity selects RatedCapacities[i], wrapping around.
func (d *Data) SelectCapacity(i int) {
	n := len(RatedCapacities)
	d.ratedCap = ((i % n) + n) % n
}

// CapacityIndex returns the selected position in RatedCapacities.
func (d *Data) CapacityIndex() int {
	return d.ratedCap
}

func (d *Data) Overload() Tristate {
	return d.overload
}

func (d *Data) SetOverload(t Tristate) {
	d.overload = t
}

// Validate reports every empty required field.
func (d *Data) Validate() error {
	var missing []string
	for _, name := range Required {
		if strings.TrimSpace(d.text[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingData, strings.Join(missing, ", "))
	}
	return nil
}

// ApplySummary writes the measured phase currents into the actual current fields.
func (d *Data) ApplySummary(s measure.Summary) {
	d.text[ActualIP1] = measure.Format(s.Get(measure.Current1))
	d.text[ActualIP2] = measure.Format(s.Get(measure.Current2))
	d.text[ActualIP3] = measure.Format(s.Get(measure.Current3))
}

// Clear resets the form after a saved report: text emptied,
// first capacity selected, overload unanswered.
func (d *Data) Clear() {
	d.text = make(map[string]string, len(TextFields))
	d.ratedCap = 0
	d.overload = Unset
}

// Values returns every field as a string, choice fields included.
func (d *Data) Values() map[string]string {
	out := make(map[string]string, len(TextFields)+2)
	for _, f := range TextFields {
		out[f.Name] = d.text[f.Name]
	}
	out[RatedCap] = d.RatedCapacity()
	out[Overload] = d.overload.String()
	return out
}

// ---- YAML form file ----

type fileData struct {
	Fields   map[string]string `yaml:"fields"`
	RatedCap string            `yaml:"rated_cap"`
	Overload Tristate          `yaml:"overload"`
}

// Load reads a form file:
//
//	fields:
//	  owner: ACME
//	rated_cap: 1 ton
//	overload: yes
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("form: read %s: %w", path, err)
	}

	var fd fileData
	if err := yaml.Unmarshal(raw, &fd); err != nil {
		return nil, fmt.Errorf("form: parse %s: %w", path, err)
	}

	d := New()
	for name, v := range fd.Fields {
		if err := d.Set(name, v); err != nil {
			return nil, err
		}
	}
	if fd.RatedCap != "" {
		if err := d.Set(RatedCap, fd.RatedCap); err != nil {
			return nil, err
		}
	}
	d.overload = fd.Overload

	return d, nil
}

// Clone returns an independent copy, safe to hand to another goroutine.
func (d *Data) Clone() *Data {
	c := &Data{
		text:     make(map[string]string, len(d.text)),
		ratedCap: d.ratedCap,
		overload: d.overload,
	}
	for k, v := range d.text {
		c.text[k] = v
	}
	return c
}
