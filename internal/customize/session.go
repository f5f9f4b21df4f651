package customize

import (
	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// Session tracks the selections of one customization flow. It owns its
// Selections exclusively; the product definition is never mutated. All
// transitions are synchronous and clamp nothing: over-limit adds are
// silently rejected and validation reports the rest.
type Session struct {
	product    Product
	selections Selections
}

// NewSession opens a fresh session with every group at its empty default.
func NewSession(product Product) *Session {
	selections := make(Selections, len(product.Groups))
	for _, group := range product.Groups {
		selections[group.ID] = EmptyValue(group.Type)
	}
	return &Session{product: product, selections: selections}
}

// EditSession opens a session seeded from a previously confirmed
// customization (edit-my-order flow). Stored entries that no longer match
// the catalog are dropped silently.
func EditSession(product Product, saved types.Customization) *Session {
	return &Session{
		product:    product,
		selections: ReconstructSelections(product, saved),
	}
}

// Product returns the immutable product definition the session runs against.
func (s *Session) Product() Product {
	return s.product
}

// Selections exposes the current selection state.
func (s *Session) Selections() Selections {
	return s.selections
}

// Select replaces the selection of a single-choice group. Selecting again
// with a different option swaps it; there is no deselect transition.
func (s *Session) Select(groupID, optionID string) {
	group, ok := s.lookup(groupID, optionID, enums.GroupTypeSingleChoice)
	if !ok {
		return
	}
	s.selections[group.ID] = SingleChoice(optionID)
}

// Toggle flips membership of an option in a multi-choice group. Adding
// beyond the effective max is a no-op; the UI disables the control but the
// state machine rejects over-limit adds as a safety net.
func (s *Session) Toggle(groupID, optionID string) {
	group, ok := s.lookup(groupID, optionID, enums.GroupTypeMultiChoice)
	if !ok {
		return
	}
	current := s.selections.Get(group)

	if current.Contains(optionID) {
		kept := make([]string, 0, len(current.multi))
		for _, id := range current.multi {
			if id != optionID {
				kept = append(kept, id)
			}
		}
		s.selections[group.ID] = MultiChoice(kept...)
		return
	}

	bounds := EffectiveConstraints(s.product, group, s.selections)
	if current.Count() >= bounds.MaxSelections {
		return
	}
	s.selections[group.ID] = MultiChoice(append(append([]string(nil), current.multi...), optionID)...)
}

// Increment raises the quantity of an option in a quantity-choice group by
// one, unless the group's total already sits at the effective max.
func (s *Session) Increment(groupID, optionID string) {
	group, ok := s.lookup(groupID, optionID, enums.GroupTypeQuantityChoice)
	if !ok {
		return
	}
	current := s.selections.Get(group)

	bounds := EffectiveConstraints(s.product, group, s.selections)
	if current.Count() >= bounds.MaxSelections {
		return
	}

	counts := current.Quantities()
	if counts == nil {
		counts = map[string]int{}
	}
	counts[optionID]++
	s.selections[group.ID] = QuantityChoice(counts)
}

// Decrement lowers the quantity of an option by one, flooring at zero.
func (s *Session) Decrement(groupID, optionID string) {
	group, ok := s.lookup(groupID, optionID, enums.GroupTypeQuantityChoice)
	if !ok {
		return
	}
	current := s.selections.Get(group)
	if current.Quantity(optionID) == 0 {
		return
	}

	counts := current.Quantities()
	counts[optionID]--
	s.selections[group.ID] = QuantityChoice(counts)
}

// lookup resolves the group and option of a transition. Unknown group IDs,
// unknown or unavailable option IDs and type mismatches make the transition
// a no-op: transitions originate in the UI and must never crash the session.
func (s *Session) lookup(groupID, optionID string, want enums.GroupType) (Group, bool) {
	group, ok := s.product.GroupByID(groupID)
	if !ok || group.Type != want {
		return Group{}, false
	}
	if option, ok := group.OptionByID(optionID); !ok || !option.Available {
		return Group{}, false
	}
	return group, true
}
