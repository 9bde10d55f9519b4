// Package shopping derives a combined shopping list from a set of recipes.
//
// Aggregation is pure list-concatenation under a normalized ingredient name:
// quantities are opaque strings and are never parsed, summed, or
// unit-converted. That is a deliberate scope boundary, not a gap.
package shopping

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/recipebox/rbx/internal/types"
)

var titleCaser = cases.Title(language.Und)

// List maps normalized ingredient names to their quantity strings, in the
// order the recipes and ingredients were supplied.
type List struct {
	quantities map[string][]string
	keys       []string // first-appearance order
}

// Normalize lowercases and trims an ingredient name. It is the aggregation
// key only; display names are derived separately.
func Normalize(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

// Generate aggregates the ingredients of the given recipes. It does not
// touch storage and does not mutate its inputs.
func Generate(recipes []*types.Recipe) *List {
	l := &List{quantities: make(map[string][]string)}
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			key := Normalize(ing.Name)
			if _, seen := l.quantities[key]; !seen {
				l.keys = append(l.keys, key)
			}
			// Trim only; the quantity string itself stays opaque.
			l.quantities[key] = append(l.quantities[key], strings.TrimSpace(ing.Quantity))
		}
	}
	return l
}

// Len returns the number of distinct (normalized) ingredients.
func (l *List) Len() int {
	return len(l.keys)
}

// TotalItems returns the number of quantity entries across all ingredients.
func (l *List) TotalItems() int {
	n := 0
	for _, qs := range l.quantities {
		n += len(qs)
	}
	return n
}

// Quantities returns the quantity strings collected for a normalized
// ingredient name, in aggregation order.
func (l *List) Quantities(name string) []string {
	return l.quantities[Normalize(name)]
}

// Map returns the underlying mapping keyed by normalized name.
func (l *List) Map() map[string][]string {
	out := make(map[string][]string, len(l.quantities))
	for k, v := range l.quantities {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Format renders the list under a "Shopping List:" header: one line per
// ingredient sorted lexicographically by normalized key, display names
// title-cased, quantities joined with ", " in aggregation order. An empty
// list renders a fixed "(empty)" marker.
func (l *List) Format() string {
	if l == nil || len(l.keys) == 0 {
		return "Shopping List:\n(empty)"
	}

	keys := append([]string(nil), l.keys...)
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Shopping List:")
	for _, key := range keys {
		b.WriteString("\n- ")
		b.WriteString(titleCaser.String(key))
		b.WriteString(": ")
		b.WriteString(strings.Join(l.quantities[key], ", "))
	}
	return b.String()
}
