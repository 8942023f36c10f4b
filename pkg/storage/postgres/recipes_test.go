package postgres_test

import (
	"context"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
	"foodgram/pkg/storage/postgres"
	"testing"

	"github.com/stretchr/testify/require"
)

type catalog struct {
	breakfast, lunch domain.Tag
	egg, milk        domain.Ingredient
}

func seedCatalog(t *testing.T, pg *postgres.PgSQL) catalog {
	t.Helper()
	ctx := context.Background()

	_, err := pg.StoreTags(ctx,
		domain.Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		domain.Tag{Name: "Lunch", Color: "#49B64E", Slug: "lunch"},
	)
	require.NoError(t, err)
	_, err = pg.StoreIngredients(ctx,
		domain.Ingredient{Name: "egg", MeasurementUnit: "pcs"},
		domain.Ingredient{Name: "milk", MeasurementUnit: "ml"},
	)
	require.NoError(t, err)

	tags, err := pg.Tags(ctx)
	require.NoError(t, err)
	ingredients, err := pg.Ingredients(ctx, "")
	require.NoError(t, err)

	return catalog{
		breakfast: tags[0], lunch: tags[1],
		egg: ingredients[0], milk: ingredients[1],
	}
}

func mustRecipe(t *testing.T,
	pg *postgres.PgSQL,
	author domain.UserID,
	name string,
	tags []domain.Tag,
	ingredients ...domain.RecipeIngredient) domain.RecipeID {
	t.Helper()
	id, err := pg.StoreRecipe(context.Background(), domain.Recipe{
		Author:      domain.User{ID: author},
		Name:        name,
		Image:       "recipes/images/" + name + ".png",
		Text:        "cook " + name,
		CookingTime: 10,
		Tags:        tags,
		Ingredients: ingredients,
	})
	require.NoError(t, err)

	return id
}

func TestPgSQL_StoreRecipe_AndRecipeByID(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := seedCatalog(t, pg)
	alice := mustUser(t, pg, "alice")
	bob := mustUser(t, pg, "bob")

	id := mustRecipe(t, pg, alice.ID, "omelette", []domain.Tag{c.breakfast},
		domain.RecipeIngredient{Ingredient: c.egg, Amount: 3},
		domain.RecipeIngredient{Ingredient: c.milk, Amount: 50},
	)

	got, err := pg.RecipeByID(ctx, bob.ID, id)
	require.NoError(t, err)
	require.Equal(t, "omelette", got.Name)
	require.Equal(t, alice.ID, got.Author.ID)
	require.Equal(t, "alice", got.Author.Username)
	require.Empty(t, got.Author.PasswordHash)
	require.Equal(t, []domain.Tag{c.breakfast}, got.Tags)
	require.Equal(t, []domain.RecipeIngredient{
		{Ingredient: c.egg, Amount: 3},
		{Ingredient: c.milk, Amount: 50},
	}, got.Ingredients)
	require.False(t, got.IsFavorited)
	require.False(t, got.IsInShoppingCart)
	require.False(t, got.Author.IsSubscribed)

	_, err = pg.AddMark(ctx, domain.MarkFavorite, bob.ID, id)
	require.NoError(t, err)
	_, err = pg.AddSubscription(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	got, err = pg.RecipeByID(ctx, bob.ID, id)
	require.NoError(t, err)
	require.True(t, got.IsFavorited)
	require.False(t, got.IsInShoppingCart)
	require.True(t, got.Author.IsSubscribed)

	got, err = pg.RecipeByID(ctx, 0, id)
	require.NoError(t, err)
	require.False(t, got.IsFavorited)

	got, err = pg.RecipeByID(ctx, 0, 100500)
	require.NoError(t, err)
	require.Nil(t, got)

	t.Run("unknown ingredient", func(t *testing.T) {
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreRecipe(ctx, domain.Recipe{
				Author:      domain.User{ID: alice.ID},
				Name:        "ghost",
				Image:       "x.png",
				Text:        "x",
				CookingTime: 1,
				Tags:        []domain.Tag{c.lunch},
				Ingredients: []domain.RecipeIngredient{{Ingredient: domain.Ingredient{ID: 100500}, Amount: 1}},
			})

			return err
		})
		require.ErrorIs(t, err, storage.ErrMissingReference)
	})
}

func TestPgSQL_UpdateRecipe(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := seedCatalog(t, pg)
	alice := mustUser(t, pg, "alice")
	id := mustRecipe(t, pg, alice.ID, "omelette", []domain.Tag{c.breakfast},
		domain.RecipeIngredient{Ingredient: c.egg, Amount: 3})

	require.NoError(t, pg.UpdateRecipe(ctx, domain.Recipe{
		ID:          id,
		Name:        "milk omelette",
		Text:        "whisk",
		CookingTime: 15,
		Tags:        []domain.Tag{c.breakfast, c.lunch},
		Ingredients: []domain.RecipeIngredient{{Ingredient: c.milk, Amount: 100}},
	}))

	got, err := pg.RecipeByID(ctx, 0, id)
	require.NoError(t, err)
	require.Equal(t, "milk omelette", got.Name)
	require.Equal(t, 15, got.CookingTime)
	require.Equal(t, "recipes/images/omelette.png", got.Image)
	require.Len(t, got.Tags, 2)
	require.Equal(t, []domain.RecipeIngredient{{Ingredient: c.milk, Amount: 100}}, got.Ingredients)

	require.NoError(t, pg.UpdateRecipe(ctx, domain.Recipe{
		ID: id, Name: "x", Text: "y", CookingTime: 1, Image: "recipes/images/new.png",
		Tags:        []domain.Tag{c.lunch},
		Ingredients: []domain.RecipeIngredient{{Ingredient: c.egg, Amount: 1}},
	}))
	got, err = pg.RecipeByID(ctx, 0, id)
	require.NoError(t, err)
	require.Equal(t, "recipes/images/new.png", got.Image)
}

func TestPgSQL_DeleteRecipe(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := seedCatalog(t, pg)
	alice := mustUser(t, pg, "alice")
	id := mustRecipe(t, pg, alice.ID, "soup", []domain.Tag{c.lunch},
		domain.RecipeIngredient{Ingredient: c.egg, Amount: 1})
	_, err := pg.AddMark(ctx, domain.MarkShoppingCart, alice.ID, id)
	require.NoError(t, err)

	deleted, err := pg.DeleteRecipe(ctx, id)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = pg.DeleteRecipe(ctx, id)
	require.NoError(t, err)
	require.False(t, deleted)

	list, err := pg.ShoppingList(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestPgSQL_Recipes_Filters(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := seedCatalog(t, pg)
	alice := mustUser(t, pg, "alice")
	bob := mustUser(t, pg, "bob")
	egg := domain.RecipeIngredient{Ingredient: c.egg, Amount: 1}

	r1 := mustRecipe(t, pg, alice.ID, "r1", []domain.Tag{c.breakfast}, egg)
	r2 := mustRecipe(t, pg, alice.ID, "r2", []domain.Tag{c.lunch}, egg)
	r3 := mustRecipe(t, pg, bob.ID, "r3", []domain.Tag{c.breakfast, c.lunch}, egg)

	_, err := pg.AddMark(ctx, domain.MarkFavorite, bob.ID, r1)
	require.NoError(t, err)
	_, err = pg.AddMark(ctx, domain.MarkShoppingCart, bob.ID, r2)
	require.NoError(t, err)

	ids := func(res storage.Recipes) []domain.RecipeID {
		out := make([]domain.RecipeID, 0, len(res.Recipes))
		for _, r := range res.Recipes {
			out = append(out, r.ID)
		}

		return out
	}
	page := domain.Page{Number: 1, Size: 10}

	tests := []struct {
		name   string
		filter storage.RecipeFilter
		want   []domain.RecipeID
	}{
		{name: "no filter newest first", want: []domain.RecipeID{r3, r2, r1}},
		{name: "author", filter: storage.RecipeFilter{AuthorID: alice.ID}, want: []domain.RecipeID{r2, r1}},
		{name: "single tag", filter: storage.RecipeFilter{TagSlugs: []string{"lunch"}}, want: []domain.RecipeID{r3, r2}},
		{
			name:   "any of tags",
			filter: storage.RecipeFilter{TagSlugs: []string{"lunch", "breakfast"}},
			want:   []domain.RecipeID{r3, r2, r1},
		},
		{name: "unknown tag", filter: storage.RecipeFilter{TagSlugs: []string{"nope"}}, want: []domain.RecipeID{}},
		{name: "favorited", filter: storage.RecipeFilter{FavoritedBy: bob.ID}, want: []domain.RecipeID{r1}},
		{name: "in cart", filter: storage.RecipeFilter{InCartOf: bob.ID}, want: []domain.RecipeID{r2}},
		{
			name:   "combined",
			filter: storage.RecipeFilter{AuthorID: alice.ID, TagSlugs: []string{"breakfast"}},
			want:   []domain.RecipeID{r1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := pg.Recipes(ctx, bob.ID, tt.filter, page)
			require.NoError(t, err)
			require.Equal(t, tt.want, ids(res))
			require.EqualValues(t, len(tt.want), res.Count)
		})
	}

	res, err := pg.Recipes(ctx, bob.ID, storage.RecipeFilter{}, domain.Page{Number: 2, Size: 2})
	require.NoError(t, err)
	require.EqualValues(t, 3, res.Count)
	require.Equal(t, []domain.RecipeID{r1}, ids(res))
	require.True(t, res.Recipes[0].IsFavorited)
	require.Len(t, res.Recipes[0].Tags, 1)
}

func TestPgSQL_AuthorRecipes(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := seedCatalog(t, pg)
	alice := mustUser(t, pg, "alice")
	bob := mustUser(t, pg, "bob")
	egg := domain.RecipeIngredient{Ingredient: c.egg, Amount: 1}

	mustRecipe(t, pg, alice.ID, "a1", []domain.Tag{c.lunch}, egg)
	mustRecipe(t, pg, alice.ID, "a2", []domain.Tag{c.lunch}, egg)
	a3 := mustRecipe(t, pg, alice.ID, "a3", []domain.Tag{c.lunch}, egg)

	got, err := pg.AuthorRecipes(ctx, []domain.UserID{alice.ID, bob.ID}, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.EqualValues(t, 3, got[alice.ID].Count)
	require.Len(t, got[alice.ID].Recipes, 1)
	require.Equal(t, a3, got[alice.ID].Recipes[0].ID)
	require.Zero(t, got[bob.ID].Count)
	require.Empty(t, got[bob.ID].Recipes)

	got, err = pg.AuthorRecipes(ctx, []domain.UserID{alice.ID}, 0)
	require.NoError(t, err)
	require.Len(t, got[alice.ID].Recipes, 3)
}
