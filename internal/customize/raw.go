package customize

import "github.com/pedeaqui/pedeaqui-backend/pkg/enums"

// RawGroupSelection is the wire shape of one group's selection as submitted
// by a client. Only the field matching the group's type is honored; the
// others are ignored, so malformed state degrades instead of erroring.
type RawGroupSelection struct {
	OptionID   *string        `json:"option_id,omitempty"`
	OptionIDs  []string       `json:"option_ids,omitempty"`
	Quantities map[string]int `json:"quantities,omitempty"`
}

// RawSelections maps group IDs to raw selections.
type RawSelections map[string]RawGroupSelection

// Coerce converts raw client input into a typed selection state. Unknown
// group IDs, unknown and unavailable option IDs are dropped, quantities
// below one are dropped, and missing groups default to empty. This is the
// defensive boundary for UI-originated state; validation still runs on the
// result.
func (r RawSelections) Coerce(product Product) Selections {
	selections := make(Selections, len(product.Groups))

	for _, group := range product.Groups {
		raw, ok := r[group.ID]
		if !ok {
			selections[group.ID] = EmptyValue(group.Type)
			continue
		}

		switch group.Type {
		case enums.GroupTypeSingleChoice:
			selections[group.ID] = EmptyValue(group.Type)
			if raw.OptionID != nil {
				if option, ok := group.OptionByID(*raw.OptionID); ok && option.Available {
					selections[group.ID] = SingleChoice(*raw.OptionID)
				}
			}
		case enums.GroupTypeMultiChoice:
			var ids []string
			seen := map[string]struct{}{}
			for _, id := range raw.OptionIDs {
				if _, dup := seen[id]; dup {
					continue
				}
				if option, ok := group.OptionByID(id); ok && option.Available {
					ids = append(ids, id)
					seen[id] = struct{}{}
				}
			}
			selections[group.ID] = MultiChoice(ids...)
		case enums.GroupTypeQuantityChoice:
			counts := map[string]int{}
			for id, qty := range raw.Quantities {
				if qty < 1 {
					continue
				}
				if option, ok := group.OptionByID(id); ok && option.Available {
					counts[id] = qty
				}
			}
			selections[group.ID] = QuantityChoice(counts)
		default:
			selections[group.ID] = EmptyValue(group.Type)
		}
	}

	return selections
}
