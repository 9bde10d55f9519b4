// Package types defines core data structures for the rbx recipe manager.
package types

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Ingredient is a single recipe ingredient. Quantity is an opaque string
// ("2", "200g", "1 tbsp"); rbx never parses or converts units.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Recipe represents a stored recipe.
//
// ID is assigned once at creation and never reassigned. Category is nil when
// the recipe has no category; an empty string is never stored (callers
// normalize empty/whitespace categories to nil before persisting).
type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       string       `json:"steps"`
	Favorite    bool         `json:"favorite"`
	Category    *string      `json:"category"`
}

// recipeRecord is the lenient wire shape used for decoding. Pointer fields
// distinguish "absent" from "zero" so that missing optional fields get
// defaults while malformed ingredient entries can be rejected.
type recipeRecord struct {
	ID          *string            `json:"id"`
	Name        *string            `json:"name"`
	Ingredients []ingredientRecord `json:"ingredients"`
	Steps       *string            `json:"steps"`
	Favorite    *bool              `json:"favorite"`
	Category    *string            `json:"category"`
}

type ingredientRecord struct {
	Name     *string `json:"name"`
	Quantity *string `json:"quantity"`
}

// UnmarshalJSON decodes a recipe record leniently: missing optional fields
// get defaults (including a freshly minted ID when absent -- a known sharp
// edge: repeated corrupt-reload cycles can mint duplicate logical recipes).
// An ingredient entry missing a required field fails the whole recipe so the
// loader can skip just that entry.
//
// No semantic validation (name non-emptiness etc.) is re-applied here;
// persisted data is trusted as shape-valid.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var rec recipeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	ingredients := make([]Ingredient, 0, len(rec.Ingredients))
	for i, ing := range rec.Ingredients {
		if ing.Name == nil || ing.Quantity == nil {
			return fmt.Errorf("ingredient %d: missing required field", i)
		}
		ingredients = append(ingredients, Ingredient{Name: *ing.Name, Quantity: *ing.Quantity})
	}

	r.ID = uuid.NewString()
	if rec.ID != nil && *rec.ID != "" {
		r.ID = *rec.ID
	}
	r.Name = ""
	if rec.Name != nil {
		r.Name = *rec.Name
	}
	r.Ingredients = ingredients
	r.Steps = ""
	if rec.Steps != nil {
		r.Steps = *rec.Steps
	}
	r.Favorite = rec.Favorite != nil && *rec.Favorite
	r.Category = nil
	if rec.Category != nil && *rec.Category != "" {
		c := *rec.Category
		r.Category = &c
	}
	return nil
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	c := *r
	if r.Ingredients != nil {
		c.Ingredients = make([]Ingredient, len(r.Ingredients))
		copy(c.Ingredients, r.Ingredients)
	}
	if r.Category != nil {
		cat := *r.Category
		c.Category = &cat
	}
	return &c
}

// CloneAll deep-copies a slice of recipes, preserving order.
func CloneAll(recipes []*Recipe) []*Recipe {
	out := make([]*Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	return out
}

// String returns the one-line display form used in lists.
func (r *Recipe) String() string {
	s := r.Name
	if r.Category != nil {
		s += fmt.Sprintf(" [%s]", *r.Category)
	}
	if r.Favorite {
		s = "* " + s
	}
	return s
}
