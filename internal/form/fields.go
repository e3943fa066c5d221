// internal/form/fields.go
package form

// Field names as they appear in report templates.
const (
	Owner        = "owner"
	Tester       = "tester"
	Address      = "address"
	HoistDesc    = "hoist_desc"
	Manufacturer = "manufacturer"
	Model        = "model"
	SerialNo     = "serial_no"
	PowerSupply  = "power_supply"
	RatedCap     = "rated_cap"
	LoadTestSpec = "load_test_spec"
	Pounds       = "pounds"
	Overload     = "overload"
	ManSpecI     = "man_spec_i"
	ActualIP1    = "actual_i_p1"
	ActualIP2    = "actual_i_p2"
	ActualIP3    = "actual_i_p3"
	Comments     = "comments"
)

// Field describes one operator-facing field.
type Field struct {
	Name  string
	Label string
}

// TextFields lists the free-text fields in display order.
// rated_cap and overload are choice fields and are not listed here.
var TextFields = []Field{
	{Tester, "Tester"},
	{Owner, "Owner"},
	{Address, "Address"},
	{HoistDesc, "Hoist Description"},
	{Manufacturer, "Manufacturer"},
	{Model, "Model"},
	{SerialNo, "Serial No."},
	{PowerSupply, "Power Supply"},
	{LoadTestSpec, "Load Test (Spec. 100-125%)"},
	{Pounds, "Pounds"},
	{ManSpecI, "Manufacturer's Spec - Current Draw"},
	{ActualIP1, "Actual Current - Phase 1"},
	{ActualIP2, "Actual Current - Phase 2"},
	{ActualIP3, "Actual Current - Phase 3"},
	{Comments, "Comments"},
}

// Labels for the choice fields.
const (
	RatedCapLabel = "Rated Capacity"
	OverloadLabel = "Did Overload Protector Reject 230%?"
)

// Required fields must be non-empty before a report is generated.
var Required = []string{Owner, HoistDesc, Address}

// Label returns the display label for name, or name itself.
func Label(name string) string {
	switch name {
	case RatedCap:
		return RatedCapLabel
	case Overload:
		return OverloadLabel
	}
	for _, f := range TextFields {
		if f.Name == name {
			return f.Label
		}
	}
	return name
}

func isTextField(name string) bool {
	for _, f := range TextFields {
		if f.Name == name {
			return true
		}
	}
	return false
}
