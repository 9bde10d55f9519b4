// Package recipes holds the authoritative in-memory recipe collection and
// its CRUD and query operations. Every mutation is persisted through the
// storage backend before the operation returns.
package recipes

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/recipebox/rbx/internal/shopping"
	"github.com/recipebox/rbx/internal/storage"
	"github.com/recipebox/rbx/internal/types"
)

// ValidationError reports rejected input (empty recipe name).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Manager owns the in-memory collection, loaded once at construction. All
// queries read memory; all mutations update memory and then Save the whole
// collection. If a Save fails, memory has already diverged from disk: the
// error tells the caller that persistence is not guaranteed.
type Manager struct {
	store   storage.Storage
	recipes []*types.Recipe
}

// NewManager loads the collection from the store. A read failure (anything
// other than a missing or corrupted store) is fatal here; corruption is
// recovered inside the backend and arrives as an empty or partial collection.
func NewManager(ctx context.Context, store storage.Storage) (*Manager, error) {
	recipes, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	if recipes == nil {
		recipes = []*types.Recipe{}
	}
	return &Manager{store: store, recipes: recipes}, nil
}

// Add creates a recipe and persists the collection.
// The name must be non-empty after trimming. Name and category are trimmed;
// an empty category after trimming is stored as absent.
func (m *Manager) Add(ctx context.Context, name string, ingredients []types.Ingredient, steps string, favorite bool, category string) (*types.Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Msg: "recipe name cannot be empty"}
	}
	if ingredients == nil {
		ingredients = []types.Ingredient{}
	}

	r := &types.Recipe{
		ID:          uuid.NewString(),
		Name:        name,
		Ingredients: ingredients,
		Steps:       steps,
		Favorite:    favorite,
		Category:    normalizeCategory(category),
	}

	m.recipes = append(m.recipes, r)
	if err := m.save(ctx); err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// All returns a deep copy of the collection in insertion order.
func (m *Manager) All() []*types.Recipe {
	return types.CloneAll(m.recipes)
}

// Get returns the recipe with the given id, or storage.ErrNotFound.
func (m *Manager) Get(id string) (*types.Recipe, error) {
	r := m.find(id)
	if r == nil {
		return nil, fmt.Errorf("%q: %w", id, storage.ErrNotFound)
	}
	return r.Clone(), nil
}

// Favorites returns all favorite recipes, relative order preserved.
func (m *Manager) Favorites() []*types.Recipe {
	var out []*types.Recipe
	for _, r := range m.recipes {
		if r.Favorite {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Search matches the term case-insensitively against recipe names and
// ingredient names. An empty term matches nothing. A recipe appears at most
// once, in collection order.
func (m *Manager) Search(term string) []*types.Recipe {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var out []*types.Recipe
	for _, r := range m.recipes {
		if strings.Contains(strings.ToLower(r.Name), term) {
			out = append(out, r.Clone())
			continue
		}
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing.Name), term) {
				out = append(out, r.Clone())
				break
			}
		}
	}
	return out
}

// ToggleFavorite flips the favorite flag, persists, and returns the new
// value. Returns storage.ErrNotFound if the id does not resolve.
func (m *Manager) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	r := m.find(id)
	if r == nil {
		return false, fmt.Errorf("%q: %w", id, storage.ErrNotFound)
	}
	r.Favorite = !r.Favorite
	if err := m.save(ctx); err != nil {
		return r.Favorite, err
	}
	return r.Favorite, nil
}

// UpdateParams carries the fields to change; nil fields are left untouched.
// Category follows the same trim rule as Add: updating with an empty or
// whitespace-only category clears it.
type UpdateParams struct {
	Name        *string
	Ingredients *[]types.Ingredient
	Steps       *string
	Favorite    *bool
	Category    *string
}

// Update applies the provided fields to the recipe with the given id,
// persists, and returns the updated record.
func (m *Manager) Update(ctx context.Context, id string, params UpdateParams) (*types.Recipe, error) {
	r := m.find(id)
	if r == nil {
		return nil, fmt.Errorf("%q: %w", id, storage.ErrNotFound)
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, &ValidationError{Msg: "recipe name cannot be empty"}
		}
		r.Name = name
	}
	if params.Ingredients != nil {
		r.Ingredients = *params.Ingredients
	}
	if params.Steps != nil {
		r.Steps = *params.Steps
	}
	if params.Favorite != nil {
		r.Favorite = *params.Favorite
	}
	if params.Category != nil {
		r.Category = normalizeCategory(*params.Category)
	}

	if err := m.save(ctx); err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// Delete removes the recipe with the given id and persists. Returns whether
// a removal occurred; an unknown id is not an error.
func (m *Manager) Delete(ctx context.Context, id string) (bool, error) {
	for i, r := range m.recipes {
		if r.ID == id {
			m.recipes = append(m.recipes[:i], m.recipes[i+1:]...)
			if err := m.save(ctx); err != nil {
				return true, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of recipes.
func (m *Manager) Count() int {
	return len(m.recipes)
}

// FavoriteCount returns the number of favorite recipes.
func (m *Manager) FavoriteCount() int {
	n := 0
	for _, r := range m.recipes {
		if r.Favorite {
			n++
		}
	}
	return n
}

// Select resolves a set of ids to recipes, in the order given, silently
// skipping ids that do not resolve. Used by the shopping-list flow.
func (m *Manager) Select(ids []string) []*types.Recipe {
	var out []*types.Recipe
	for _, id := range ids {
		if r := m.find(id); r != nil {
			out = append(out, r.Clone())
		}
	}
	return out
}

// ShoppingList aggregates the ingredients of the recipes with the given ids.
// Unknown ids are skipped, same as Select.
func (m *Manager) ShoppingList(ids []string) *shopping.List {
	return shopping.Generate(m.Select(ids))
}

func (m *Manager) find(id string) *types.Recipe {
	for _, r := range m.recipes {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (m *Manager) save(ctx context.Context) error {
	if err := m.store.Save(ctx, m.recipes); err != nil {
		return fmt.Errorf("saving recipes: %w", err)
	}
	return nil
}

func normalizeCategory(category string) *string {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil
	}
	return &category
}
