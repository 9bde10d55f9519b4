package main

import (
	"fmt"
	"strconv"

	"github.com/recipebox/rbx/internal/recipes"
	"github.com/recipebox/rbx/internal/types"
)

// resolveRecipe turns a user-facing argument into a recipe. A purely numeric
// argument is a 1-based position in the collection's insertion order (as
// printed by `rbx list`); anything else is treated as a recipe id. The
// manager itself only ever sees ids.
func resolveRecipe(m *recipes.Manager, arg string) (*types.Recipe, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		all := m.All()
		if n < 1 || n > len(all) {
			return nil, fmt.Errorf("position %d out of range (have %d recipes)", n, len(all))
		}
		return all[n-1], nil
	}
	return m.Get(arg)
}
