package postgres_test

import (
	"context"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Marks(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := seedCatalog(t, pg)
	alice := mustUser(t, pg, "alice")
	id := mustRecipe(t, pg, alice.ID, "pancakes", []domain.Tag{c.breakfast},
		domain.RecipeIngredient{Ingredient: c.egg, Amount: 2})

	for _, kind := range []domain.MarkKind{domain.MarkFavorite, domain.MarkShoppingCart} {
		t.Run(string(kind), func(t *testing.T) {
			added, err := pg.AddMark(ctx, kind, alice.ID, id)
			require.NoError(t, err)
			require.True(t, added)

			added, err = pg.AddMark(ctx, kind, alice.ID, id)
			require.NoError(t, err)
			require.False(t, added)

			_, err = pg.AddMark(ctx, kind, alice.ID, 100500)
			require.ErrorIs(t, err, storage.ErrMissingReference)

			removed, err := pg.RemoveMark(ctx, kind, alice.ID, id)
			require.NoError(t, err)
			require.True(t, removed)

			removed, err = pg.RemoveMark(ctx, kind, alice.ID, id)
			require.NoError(t, err)
			require.False(t, removed)
		})
	}

	_, err := pg.AddMark(ctx, domain.MarkKind("bogus"), alice.ID, id)
	require.Error(t, err)
}

func TestPgSQL_ShoppingList(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := seedCatalog(t, pg)
	alice := mustUser(t, pg, "alice")
	bob := mustUser(t, pg, "bob")

	r1 := mustRecipe(t, pg, alice.ID, "omelette", []domain.Tag{c.breakfast},
		domain.RecipeIngredient{Ingredient: c.egg, Amount: 3},
		domain.RecipeIngredient{Ingredient: c.milk, Amount: 50})
	r2 := mustRecipe(t, pg, alice.ID, "eggnog", []domain.Tag{c.breakfast},
		domain.RecipeIngredient{Ingredient: c.egg, Amount: 2})

	for _, id := range []domain.RecipeID{r1, r2} {
		_, err := pg.AddMark(ctx, domain.MarkShoppingCart, bob.ID, id)
		require.NoError(t, err)
	}

	list, err := pg.ShoppingList(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.ShoppingItem{
		{Name: "egg", MeasurementUnit: "pcs", Amount: 5},
		{Name: "milk", MeasurementUnit: "ml", Amount: 50},
	}, list)

	list, err = pg.ShoppingList(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}
