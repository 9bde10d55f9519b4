package ui

import (
	"fmt"
	"strings"

	"github.com/recipebox/rbx/internal/types"
)

// RecipeLine renders the one-line list form of a recipe with its 1-based
// position, e.g. "3. ★ Pancakes [breakfast] (4 ingredients)".
func RecipeLine(position int, r *types.Recipe) string {
	var b strings.Builder
	b.WriteString(RenderMuted(fmt.Sprintf("%d.", position)))
	b.WriteString(" ")
	if r.Favorite {
		b.WriteString(RenderFavoriteIcon())
		b.WriteString(" ")
	}
	b.WriteString(r.Name)
	if r.Category != nil {
		b.WriteString(" ")
		b.WriteString(RenderAccent("[" + *r.Category + "]"))
	}
	b.WriteString(" ")
	noun := "ingredients"
	if len(r.Ingredients) == 1 {
		noun = "ingredient"
	}
	b.WriteString(RenderMuted(fmt.Sprintf("(%d %s)", len(r.Ingredients), noun)))
	return b.String()
}

// RecipeDetail renders the full view of a recipe.
func RecipeDetail(r *types.Recipe) string {
	var b strings.Builder
	title := r.Name
	if r.Favorite {
		title = IconFavorite + " " + title
	}
	b.WriteString(RenderHeader(title))
	b.WriteString("\n")
	b.WriteString(RenderSeparator())
	b.WriteString("\n")
	b.WriteString(RenderMuted("id: " + r.ID))
	if r.Category != nil {
		b.WriteString("\n")
		b.WriteString("Category: " + *r.Category)
	}
	b.WriteString("\n\nIngredients:\n")
	if len(r.Ingredients) == 0 {
		b.WriteString(RenderMuted("  (none)\n"))
	}
	for _, ing := range r.Ingredients {
		b.WriteString(fmt.Sprintf("  - %s: %s\n", ing.Name, ing.Quantity))
	}
	b.WriteString("\nSteps:\n")
	if strings.TrimSpace(r.Steps) == "" {
		b.WriteString(RenderMuted("  (none)\n"))
	} else {
		for _, line := range strings.Split(r.Steps, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}
