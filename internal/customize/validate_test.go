package customize

import (
	"strings"
	"testing"

	"github.com/pedeaqui/pedeaqui-backend/pkg/enums"
	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

func TestValidateRequiredSingleChoiceMissing(t *testing.T) {
	product := burgerProduct()
	selections := selectionsWith(map[string]Value{
		"g-extras": MultiChoice("o-a", "o-b"),
	})

	violations := Validate(product, selections)
	if len(violations) != 1 {
		t.Fatalf("expected exactly one violation, got %v", Messages(violations))
	}
	if violations[0].GroupName != "Size" {
		t.Fatalf("expected violation on Size, got %+v", violations[0])
	}
	if violations[0].Message != "Select one option in Size" {
		t.Fatalf("unexpected message %q", violations[0].Message)
	}
}

func TestValidatePassesForCompleteSelection(t *testing.T) {
	product := burgerProduct()
	selections := selectionsWith(map[string]Value{
		"g-size":   SingleChoice("o-small"),
		"g-extras": MultiChoice("o-a"),
	})

	if violations := Validate(product, selections); len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", Messages(violations))
	}
}

func TestValidateEmptySelectionsOnOptionalProduct(t *testing.T) {
	product := burgerProduct()
	for i := range product.Groups {
		product.Groups[i].Required = false
		product.Groups[i].Bounds.MinSelections = 0
	}

	if violations := Validate(product, selectionsWith(nil)); len(violations) != 0 {
		t.Fatalf("expected no violations without required groups, got %v", Messages(violations))
	}
}

func TestValidateMultiChoiceOverMax(t *testing.T) {
	product := burgerProduct()
	selections := selectionsWith(map[string]Value{
		"g-size":   SingleChoice("o-small"),
		"g-extras": MultiChoice("o-a", "o-b", "o-c"),
	})

	violations := Validate(product, selections)
	if len(violations) != 1 {
		t.Fatalf("expected one violation, got %v", Messages(violations))
	}
	if violations[0].Message != "Maximum of 2 selections in Extras" {
		t.Fatalf("unexpected message %q", violations[0].Message)
	}
}

func TestValidateQuantityChoiceCountsTotalQuantity(t *testing.T) {
	product := burgerProduct()
	product.Groups[2].Required = true
	product.Groups[2].Bounds = types.SelectionBounds{MinSelections: 2, MaxSelections: 3}

	t.Run("belowMin", func(t *testing.T) {
		selections := selectionsWith(map[string]Value{
			"g-size":     SingleChoice("o-small"),
			"g-toppings": QuantityChoice(map[string]int{"o-x": 1}),
		})
		violations := Validate(product, selections)
		if len(violations) != 1 || violations[0].Message != "Select at least 2 in Toppings" {
			t.Fatalf("expected min-quantity violation, got %v", Messages(violations))
		}
	})

	t.Run("overMax", func(t *testing.T) {
		selections := selectionsWith(map[string]Value{
			"g-size":     SingleChoice("o-small"),
			"g-toppings": QuantityChoice(map[string]int{"o-x": 2, "o-y": 2}),
		})
		violations := Validate(product, selections)
		if len(violations) != 1 || violations[0].Message != "Maximum of 3 selections in Toppings" {
			t.Fatalf("expected max-quantity violation, got %v", Messages(violations))
		}
	})
}

func TestValidateDependentGroupAsksForParentFirst(t *testing.T) {
	product := burgerProduct()
	product.Groups[3].Required = true

	// Sauce satisfied on its own, but Size untouched: the only complaint for
	// Sauce must be the parent-first message, plus the Size requirement.
	selections := selectionsWith(map[string]Value{
		"g-sauce": MultiChoice("o-bbq"),
	})

	violations := Validate(product, selections)
	var sauceMessages []string
	for _, violation := range violations {
		if violation.GroupID == "g-sauce" {
			sauceMessages = append(sauceMessages, violation.Message)
		}
	}
	if len(sauceMessages) != 1 {
		t.Fatalf("expected a single Sauce violation, got %v", sauceMessages)
	}
	if sauceMessages[0] != "Select Size first for Sauce" {
		t.Fatalf("unexpected message %q", sauceMessages[0])
	}
}

func TestValidateParentFirstSuppressedByOtherViolation(t *testing.T) {
	product := burgerProduct()
	product.Groups[3].Required = true

	violations := Validate(product, selectionsWith(nil))

	var sauceMessages []string
	for _, violation := range violations {
		if violation.GroupID == "g-sauce" {
			sauceMessages = append(sauceMessages, violation.Message)
		}
	}
	if len(sauceMessages) != 1 {
		t.Fatalf("expected exactly one Sauce violation, got %v", sauceMessages)
	}
	if !strings.HasPrefix(sauceMessages[0], "Select at least") {
		t.Fatalf("expected the min violation to win, got %q", sauceMessages[0])
	}
}

func TestValidateRequiredViolationReappearsAfterParentCleared(t *testing.T) {
	product := burgerProduct()
	product.Groups[3].Required = true
	product.Groups[3].Bounds = types.SelectionBounds{MinSelections: 1, MaxSelections: 1}

	selections := selectionsWith(map[string]Value{
		"g-size":  SingleChoice("o-large"),
		"g-sauce": MultiChoice("o-bbq"),
	})
	if violations := Validate(product, selections); len(violations) != 0 {
		t.Fatalf("expected valid selection, got %v", Messages(violations))
	}

	selections["g-size"] = EmptyValue(enums.GroupTypeSingleChoice)
	selections["g-sauce"] = MultiChoice()

	violations := Validate(product, selections)
	found := false
	for _, violation := range violations {
		if violation.GroupID == "g-sauce" && strings.HasPrefix(violation.Message, "Select at least 1") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected static required violation to reappear, got %v", Messages(violations))
	}
}

func TestValidateRuleRaisedMinimumMakesOptionalGroupRequired(t *testing.T) {
	product := burgerProduct()

	// Sauce is not statically required; its rule on Size raises the min to 1
	// once Large is selected, and that min must block confirmation.
	selections := selectionsWith(map[string]Value{
		"g-size": SingleChoice("o-large"),
	})

	violations := Validate(product, selections)
	if len(violations) != 1 {
		t.Fatalf("expected one violation, got %v", Messages(violations))
	}
	if violations[0].GroupID != "g-sauce" || violations[0].Message != "Select at least 1 in Sauce" {
		t.Fatalf("unexpected violation %+v", violations[0])
	}

	selections["g-sauce"] = MultiChoice("o-bbq")
	if violations := Validate(product, selections); len(violations) != 0 {
		t.Fatalf("expected picking a sauce to satisfy the rule, got %v", Messages(violations))
	}

	// with Small the rule never matches and Sauce is optional again
	selections["g-size"] = SingleChoice("o-small")
	selections["g-sauce"] = MultiChoice()
	if violations := Validate(product, selections); len(violations) != 0 {
		t.Fatalf("expected no violations with Small, got %v", Messages(violations))
	}
}

func TestValidateMalformedShapeDegradesToEmpty(t *testing.T) {
	product := burgerProduct()
	selections := selectionsWith(map[string]Value{
		"g-size":   MultiChoice("o-large"), // wrong shape for a single-choice group
		"g-extras": MultiChoice("o-a"),
	})

	violations := Validate(product, selections)
	if len(violations) != 1 || violations[0].GroupName != "Size" {
		t.Fatalf("expected the malformed group to validate as empty, got %v", Messages(violations))
	}
}
