// internal/form/choice.go
package form

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tristate is a yes/no answer that may still be unanswered.
type Tristate uint8

const (
	Unset Tristate = iota
	Yes
	No
)

func (t Tristate) String() string {
	switch t {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return ""
	}
}

// ParseTristate accepts yes/no (any case, also y/n/true/false) and empty for Unset.
func ParseTristate(s string) (Tristate, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Unset, nil
	case "yes", "y", "true":
		return Yes, nil
	case "no", "n", "false":
		return No, nil
	default:
		return Unset, fmt.Errorf("form: %q is not yes, no or empty", s)
	}
}

// Next cycles Unset -> Yes -> No -> Unset.
func (t Tristate) Next() Tristate {
	return (t + 1) % 3
}

// Prev cycles in the opposite direction of Next.
func (t Tristate) Prev() Tristate {
	return (t + 2) % 3
}

func (t *Tristate) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseTristate(n.Value)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// RatedCapacities are the selectable rated capacities; the first is the default.
var RatedCapacities = []string{"1/4 ton", "1/2 ton", "1 ton", "2 ton"}

// CapacityIndex returns the position of c in RatedCapacities, or -1.
func CapacityIndex(c string) int {
	for i, v := range RatedCapacities {
		if v == c {
			return i
		}
	}
	return -1
}
