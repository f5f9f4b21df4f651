package customize

import (
	"fmt"

	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
)

// Violation is one human-readable validation failure tied to a group.
type Violation struct {
	GroupID   string `json:"group_id"`
	GroupName string `json:"group_name"`
	Message   string `json:"message"`
}

// Validate checks the selections against every group's required flag and
// effective bounds, in group order. The engine only reports; it never clamps
// or auto-fixes. An empty result means the selection can be confirmed.
func Validate(product Product, selections Selections) []Violation {
	var violations []Violation

	for _, group := range product.Groups {
		value := selections.Get(group)
		bounds := EffectiveConstraints(product, group, selections)
		flagged := false

		report := func(message string) {
			violations = append(violations, Violation{
				GroupID:   group.ID,
				GroupName: group.Name,
				Message:   message,
			})
			flagged = true
		}

		count := value.Count()

		// A dependency rule can raise an optional group's minimum; once the
		// effective min demands a selection the group behaves as required.
		demands := group.Required || bounds.MinSelections >= 1

		if demands {
			switch group.Type {
			case enums.GroupTypeSingleChoice:
				if count == 0 {
					report(fmt.Sprintf("Select one option in %s", group.Name))
				}
			default:
				reqMin := bounds.MinSelections
				if reqMin < 1 {
					reqMin = 1
				}
				if count < reqMin {
					report(fmt.Sprintf("Select at least %d in %s", reqMin, group.Name))
				}
			}
		}

		// Max bounds apply regardless of required.
		if group.Type != enums.GroupTypeSingleChoice && count > bounds.MaxSelections {
			report(fmt.Sprintf("Maximum of %d selections in %s", bounds.MaxSelections, group.Name))
		}

		if demands && !flagged && !HasParentSelection(product, group, selections) {
			if idx := group.DependsOn.ParentGroupIndex; idx >= 0 && idx < len(product.Groups) {
				report(fmt.Sprintf("Select %s first for %s", product.Groups[idx].Name, group.Name))
			}
		}
	}

	return violations
}

// Messages flattens violations into their rendered messages.
func Messages(violations []Violation) []string {
	if len(violations) == 0 {
		return nil
	}
	out := make([]string, 0, len(violations))
	for _, violation := range violations {
		out = append(out, violation.Message)
	}
	return out
}
