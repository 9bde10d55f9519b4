package recipes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/rbx/internal/recipes"
	"github.com/recipebox/rbx/internal/storage"
	"github.com/recipebox/rbx/internal/storage/memory"
	"github.com/recipebox/rbx/internal/types"
)

func setupManager(t *testing.T) (*recipes.Manager, *memory.Store) {
	t.Helper()
	store := memory.New()
	m, err := recipes.NewManager(context.Background(), store)
	require.NoError(t, err)
	return m, store
}

func mustAdd(t *testing.T, m *recipes.Manager, name string, ingredients ...types.Ingredient) *types.Recipe {
	t.Helper()
	r, err := m.Add(context.Background(), name, ingredients, "", false, "")
	require.NoError(t, err)
	return r
}

func TestAddThenGet(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()

	r, err := m.Add(ctx, "Tomato Soup", []types.Ingredient{{Name: "Tomato", Quantity: "500g"}}, "Simmer.", true, "dinner")
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Tomato Soup", r.Name)
	require.NotNil(t, r.Category)
	assert.Equal(t, "dinner", *r.Category)

	got, err := m.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestAddTrimsNameAndCategory(t *testing.T) {
	m, _ := setupManager(t)

	r, err := m.Add(context.Background(), "  Pancakes  ", nil, "", false, "  breakfast ")
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", r.Name)
	require.NotNil(t, r.Category)
	assert.Equal(t, "breakfast", *r.Category)
}

func TestAddEmptyCategoryIsAbsent(t *testing.T) {
	m, _ := setupManager(t)

	r, err := m.Add(context.Background(), "Toast", nil, "", false, "   ")
	require.NoError(t, err)
	assert.Nil(t, r.Category)
}

func TestAddEmptyNameFails(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()

	for _, name := range []string{"", "   "} {
		_, err := m.Add(ctx, name, nil, "", false, "")
		var verr *recipes.ValidationError
		require.ErrorAs(t, err, &verr, "name %q", name)
	}
	assert.Equal(t, 0, m.Count(), "collection unchanged after rejected adds")
}

func TestAllReturnsDefensiveCopy(t *testing.T) {
	m, _ := setupManager(t)
	mustAdd(t, m, "Soup", types.Ingredient{Name: "Tomato", Quantity: "2"})

	all := m.All()
	all[0].Name = "Mutated"
	all[0].Ingredients[0].Name = "Mutated"

	fresh := m.All()
	assert.Equal(t, "Soup", fresh[0].Name)
	assert.Equal(t, "Tomato", fresh[0].Ingredients[0].Name)
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	m, _ := setupManager(t)
	mustAdd(t, m, "First")
	mustAdd(t, m, "Second")
	mustAdd(t, m, "Third")

	all := m.All()
	require.Len(t, all, 3)
	assert.Equal(t, "First", all[0].Name)
	assert.Equal(t, "Second", all[1].Name)
	assert.Equal(t, "Third", all[2].Name)
}

func TestGetUnknownID(t *testing.T) {
	m, _ := setupManager(t)
	_, err := m.Get("nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFavorites(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()

	mustAdd(t, m, "Plain")
	fav1, err := m.Add(ctx, "Fav One", nil, "", true, "")
	require.NoError(t, err)
	fav2, err := m.Add(ctx, "Fav Two", nil, "", true, "")
	require.NoError(t, err)

	favs := m.Favorites()
	require.Len(t, favs, 2)
	assert.Equal(t, fav1.ID, favs[0].ID)
	assert.Equal(t, fav2.ID, favs[1].ID)
	assert.Equal(t, 2, m.FavoriteCount())
}

func TestToggleFavoriteIsInvolution(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()
	r := mustAdd(t, m, "Soup")

	first, err := m.ToggleFavorite(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := m.ToggleFavorite(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, second, "toggling twice restores the original value")

	got, err := m.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Favorite, got.Favorite)
}

func TestToggleFavoriteUnknownID(t *testing.T) {
	m, _ := setupManager(t)
	_, err := m.ToggleFavorite(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSearch(t *testing.T) {
	m, _ := setupManager(t)
	mustAdd(t, m, "Tomato Soup", types.Ingredient{Name: "Tomato", Quantity: "2"}, types.Ingredient{Name: "Onion", Quantity: "1"})
	mustAdd(t, m, "Salad", types.Ingredient{Name: "tomato", Quantity: "3"}, types.Ingredient{Name: "Cucumber", Quantity: "1"})
	mustAdd(t, m, "Toast", types.Ingredient{Name: "Bread", Quantity: "2 slices"})

	t.Run("empty term matches nothing", func(t *testing.T) {
		assert.Empty(t, m.Search(""))
		assert.Empty(t, m.Search("   "))
	})

	t.Run("matches name and ingredient, case-insensitive, no duplicates", func(t *testing.T) {
		results := m.Search("TOMATO")
		require.Len(t, results, 2)
		assert.Equal(t, "Tomato Soup", results[0].Name, "name and ingredient both match, listed once")
		assert.Equal(t, "Salad", results[1].Name)
	})

	t.Run("substring match", func(t *testing.T) {
		results := m.Search("cucum")
		require.Len(t, results, 1)
		assert.Equal(t, "Salad", results[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, m.Search("pineapple"))
	})
}

func TestUpdatePartialFields(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()
	r, err := m.Add(ctx, "Soup", []types.Ingredient{{Name: "Tomato", Quantity: "2"}}, "Simmer.", false, "dinner")
	require.NoError(t, err)

	newName := "Better Soup"
	updated, err := m.Update(ctx, r.ID, recipes.UpdateParams{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Better Soup", updated.Name)
	assert.Equal(t, r.Ingredients, updated.Ingredients, "unspecified fields unchanged")
	assert.Equal(t, r.Steps, updated.Steps)
	assert.Equal(t, r.Category, updated.Category)
}

func TestUpdateEmptyNameFails(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()
	r := mustAdd(t, m, "Soup")

	empty := "   "
	_, err := m.Update(ctx, r.ID, recipes.UpdateParams{Name: &empty})
	var verr *recipes.ValidationError
	require.ErrorAs(t, err, &verr)

	got, err := m.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", got.Name)
}

func TestUpdateClearsCategory(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()
	r, err := m.Add(ctx, "Soup", nil, "", false, "dinner")
	require.NoError(t, err)

	empty := ""
	updated, err := m.Update(ctx, r.ID, recipes.UpdateParams{Category: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.Category)
}

func TestUpdateUnknownID(t *testing.T) {
	m, _ := setupManager(t)
	name := "X"
	_, err := m.Update(context.Background(), "nope", recipes.UpdateParams{Name: &name})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDelete(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()
	r := mustAdd(t, m, "Soup")
	mustAdd(t, m, "Toast")

	deleted, err := m.Delete(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, m.Count())

	deleted, err = m.Delete(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete of the same id is a no-op")
	assert.Equal(t, 1, m.Count())
}

func TestSelectSkipsUnknownIDs(t *testing.T) {
	m, _ := setupManager(t)
	a := mustAdd(t, m, "A")
	b := mustAdd(t, m, "B")

	chosen := m.Select([]string{b.ID, "nope", a.ID})
	require.Len(t, chosen, 2)
	assert.Equal(t, "B", chosen[0].Name)
	assert.Equal(t, "A", chosen[1].Name)
}

func TestShoppingList(t *testing.T) {
	m, _ := setupManager(t)
	soup := mustAdd(t, m, "Soup",
		types.Ingredient{Name: "Tomato", Quantity: "2"},
		types.Ingredient{Name: "Onion", Quantity: "1"})
	salad := mustAdd(t, m, "Salad",
		types.Ingredient{Name: "tomato", Quantity: "200g"})

	list := m.ShoppingList([]string{soup.ID, "nope", salad.ID})
	assert.Equal(t, map[string][]string{
		"tomato": {"2", "200g"},
		"onion":  {"1"},
	}, list.Map())
}

func TestMutationsPersistToStore(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()
	r := mustAdd(t, m, "Soup")

	// A second manager over the same store sees the committed state.
	m2, err := recipes.NewManager(ctx, store)
	require.NoError(t, err)
	got, err := m2.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", got.Name)
}

func TestSaveFailureIsSurfaced(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()
	mustAdd(t, m, "Soup")

	store.FailSavesWith(errors.New("disk full"))

	_, err := m.Add(ctx, "Toast", nil, "", false, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	// Memory has diverged from disk: the caller was told, and may retry.
	assert.Equal(t, 2, m.Count())

	store.FailSavesWith(nil)
	_, err = m.ToggleFavorite(ctx, m.All()[1].ID)
	require.NoError(t, err)
}

func TestNewManagerLoadsExistingCollection(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []*types.Recipe{{ID: "r1", Name: "Soup", Ingredients: []types.Ingredient{}}}))

	m, err := recipes.NewManager(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Count())
}
