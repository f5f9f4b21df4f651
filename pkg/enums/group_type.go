package enums

import "fmt"

// GroupType distinguishes how a customization group collects selections.
type GroupType string

const (
	GroupTypeSingleChoice   GroupType = "single-choice"
	GroupTypeMultiChoice    GroupType = "multi-choice"
	GroupTypeQuantityChoice GroupType = "quantity-choice"
)

var validGroupTypes = []GroupType{
	GroupTypeSingleChoice,
	GroupTypeMultiChoice,
	GroupTypeQuantityChoice,
}

// String implements fmt.Stringer.
func (g GroupType) String() string {
	return string(g)
}

// IsValid reports whether the value is a known GroupType.
func (g GroupType) IsValid() bool {
	for _, candidate := range validGroupTypes {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGroupType converts raw input into a GroupType.
func ParseGroupType(value string) (GroupType, error) {
	for _, candidate := range validGroupTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid group type %q", value)
}
