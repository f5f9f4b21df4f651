package customize

import "github.com/pedeaqui/pedeaqui-backend/pkg/enums"

// Value is the selection state of one group. Exactly one shape is populated
// according to the group type: a single option ID, a set of option IDs, or
// per-option quantities. The zero Value is an empty single-choice selection.
type Value struct {
	typ    enums.GroupType
	single *string
	multi  []string
	counts map[string]int
}

// EmptyValue returns the empty selection for the given group type.
func EmptyValue(t enums.GroupType) Value {
	return Value{typ: t}
}

// SingleChoice returns a single-choice selection holding optionID.
func SingleChoice(optionID string) Value {
	return Value{typ: enums.GroupTypeSingleChoice, single: &optionID}
}

// MultiChoice returns a multi-choice selection holding the given option IDs.
func MultiChoice(optionIDs ...string) Value {
	return Value{typ: enums.GroupTypeMultiChoice, multi: append([]string(nil), optionIDs...)}
}

// QuantityChoice returns a quantity-choice selection. Zero and negative
// quantities are dropped.
func QuantityChoice(counts map[string]int) Value {
	cleaned := make(map[string]int, len(counts))
	for optionID, qty := range counts {
		if qty > 0 {
			cleaned[optionID] = qty
		}
	}
	return Value{typ: enums.GroupTypeQuantityChoice, counts: cleaned}
}

// Type returns the group type this value was built for.
func (v Value) Type() enums.GroupType {
	return v.typ
}

// Single returns the selected option ID of a single-choice value.
func (v Value) Single() (string, bool) {
	if v.typ != enums.GroupTypeSingleChoice || v.single == nil {
		return "", false
	}
	return *v.single, true
}

// Multi returns the selected option IDs of a multi-choice value in insertion
// order.
func (v Value) Multi() []string {
	if v.typ != enums.GroupTypeMultiChoice {
		return nil
	}
	return v.multi
}

// Quantity returns the quantity selected for optionID.
func (v Value) Quantity(optionID string) int {
	if v.typ != enums.GroupTypeQuantityChoice {
		return 0
	}
	return v.counts[optionID]
}

// Quantities returns a copy of the per-option quantities.
func (v Value) Quantities() map[string]int {
	if v.typ != enums.GroupTypeQuantityChoice {
		return nil
	}
	out := make(map[string]int, len(v.counts))
	for optionID, qty := range v.counts {
		out[optionID] = qty
	}
	return out
}

// Contains reports whether optionID participates in the selection.
func (v Value) Contains(optionID string) bool {
	switch v.typ {
	case enums.GroupTypeSingleChoice:
		return v.single != nil && *v.single == optionID
	case enums.GroupTypeMultiChoice:
		for _, id := range v.multi {
			if id == optionID {
				return true
			}
		}
		return false
	case enums.GroupTypeQuantityChoice:
		return v.counts[optionID] > 0
	}
	return false
}

// Count returns the selection count: 0/1 for single-choice, the number of
// selected options for multi-choice and the total quantity for
// quantity-choice.
func (v Value) Count() int {
	switch v.typ {
	case enums.GroupTypeSingleChoice:
		if v.single != nil {
			return 1
		}
		return 0
	case enums.GroupTypeMultiChoice:
		return len(v.multi)
	case enums.GroupTypeQuantityChoice:
		total := 0
		for _, qty := range v.counts {
			total += qty
		}
		return total
	}
	return 0
}

// IsEmpty reports whether nothing is selected.
func (v Value) IsEmpty() bool {
	return v.Count() == 0
}

// Selections maps group IDs to their selection state. Groups without an
// entry count as empty; iteration always follows the product's group order,
// never map order.
type Selections map[string]Value

// Get returns the selection for groupID coerced to the group's type.
// Mismatched shapes (UI-originated state) degrade to the empty default
// instead of failing.
func (s Selections) Get(group Group) Value {
	value, ok := s[group.ID]
	if !ok || value.typ != group.Type {
		return EmptyValue(group.Type)
	}
	return value
}
