package customize

import (
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	"github.com/pedeaqui/pedeaqui-backend/pkg/types"
)

// EmptyHash is the sentinel for "no customization". The cart treats plain
// product lines and customized lines uniformly through it.
const EmptyHash = ""

// hashWidth is the rendered digest length: a 32-bit FNV-1a value in base-36
// never exceeds seven characters.
const hashWidth = 7

// Hash derives the deterministic short digest used in the cart-line identity
// key (product_id, hash). Group keys and selected entries are sorted before
// serialization so the order in which the UI collected the selections never
// leaks into the result, and Observations is excluded on purpose: free-text
// notes must not stop otherwise identical lines from merging.
func Hash(customization types.Customization) string {
	if customization.IsEmpty() {
		return EmptyHash
	}

	digest := fnv.New32a()
	digest.Write([]byte(canonical(customization)))

	encoded := strconv.FormatUint(uint64(digest.Sum32()), 36)
	if pad := hashWidth - len(encoded); pad > 0 {
		encoded = strings.Repeat("0", pad) + encoded
	}
	return encoded
}

// canonical renders the hashed content in a stable textual form: groups
// sorted by ID, entries sorted by option ID (falling back to name), each
// entry carrying its frozen price and quantity.
func canonical(customization types.Customization) string {
	groupIDs := make([]string, 0, len(customization.Groups))
	for groupID := range customization.Groups {
		groupIDs = append(groupIDs, groupID)
	}
	sort.Strings(groupIDs)

	var b strings.Builder
	for _, groupID := range groupIDs {
		group := customization.Groups[groupID]

		entries := append([]types.SelectedOption(nil), group.Selected...)
		sort.Slice(entries, func(i, j int) bool {
			return entrySortKey(entries[i]) < entrySortKey(entries[j])
		})

		b.WriteString(groupID)
		b.WriteByte('|')
		b.WriteString(group.GroupName)
		b.WriteByte('|')
		b.WriteString(string(group.Type))
		b.WriteByte('[')
		for i, entry := range entries {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(entrySortKey(entry))
			b.WriteByte('@')
			b.WriteString(entry.Price.String())
			if entry.Quantity != nil {
				b.WriteByte('x')
				b.WriteString(strconv.Itoa(*entry.Quantity))
			}
		}
		b.WriteString("];")
	}
	return b.String()
}

func entrySortKey(entry types.SelectedOption) string {
	if entry.OptionID != "" {
		return entry.OptionID
	}
	return entry.Name
}
