package storage

import (
	"context"
	"foodgram/pkg/domain"
)

// RecipeFilter narrows a recipe listing. Zero values disable a criterion.
type RecipeFilter struct {
	// AuthorID keeps recipes published by this user.
	AuthorID domain.UserID
	// TagSlugs keeps recipes carrying at least one of these tags.
	TagSlugs []string
	// FavoritedBy keeps recipes in this user's favorites.
	FavoritedBy domain.UserID
	// InCartOf keeps recipes in this user's shopping cart.
	InCartOf domain.UserID
}

// Recipes groups a page of recipes together with the total number of recipes
// matching the filter.
type Recipes struct {
	Recipes []domain.Recipe
	Count   int64
}

// AuthorRecipes is the recipe preview of one author: the latest recipes up to
// a limit and the total number of recipes they published.
type AuthorRecipes struct {
	Recipes []domain.RecipePreview
	Count   int64
}

// RecipeStorage defines CRUD and query operations related to recipes. Reads
// accepting a viewer fill IsFavorited, IsInShoppingCart and the author's
// IsSubscribed relative to that viewer.
type RecipeStorage interface {
	// StoreRecipe inserts a recipe with its tags and ingredients and returns
	// the generated ID. Unknown tag or ingredient IDs yield a ConstraintError
	// wrapping ErrMissingReference.
	StoreRecipe(ctx context.Context, recipe domain.Recipe) (domain.RecipeID, error)
	// UpdateRecipe overwrites name, text, cooking time and, when recipe.Image is
	// non-empty, the image of an existing recipe, and replaces its tags and
	// ingredients.
	UpdateRecipe(ctx context.Context, recipe domain.Recipe) error
	// DeleteRecipe removes a recipe and everything referencing it. It reports
	// false when the recipe did not exist.
	DeleteRecipe(ctx context.Context, ID domain.RecipeID) (bool, error)
	// RecipeByID returns a recipe with its relations, or nil when not found.
	RecipeByID(ctx context.Context, viewer domain.UserID, ID domain.RecipeID) (*domain.Recipe, error)
	// Recipes returns a page of recipes matching filter, newest first.
	Recipes(ctx context.Context, viewer domain.UserID, filter RecipeFilter, page domain.Page) (Recipes, error)
	// AuthorRecipes returns, for each author, their newest recipes up to limit
	// (0 means no limit) and their total recipe count. Authors without recipes
	// are present with an empty preview.
	AuthorRecipes(ctx context.Context, authorIDs []domain.UserID, limit uint) (map[domain.UserID]AuthorRecipes, error)
}

// MarkStorage defines operations on per-user recipe lists (favorites and the
// shopping cart).
type MarkStorage interface {
	// AddMark puts the recipe into the user's list. It reports false when the
	// recipe was already there.
	AddMark(ctx context.Context, kind domain.MarkKind, userID domain.UserID, recipeID domain.RecipeID) (bool, error)
	// RemoveMark takes the recipe out of the user's list. It reports false when
	// the recipe was not there.
	RemoveMark(ctx context.Context, kind domain.MarkKind, userID domain.UserID, recipeID domain.RecipeID) (bool, error)
	// ShoppingList sums ingredient amounts over every recipe in the user's
	// shopping cart, grouped by ingredient name and unit and ordered by name.
	ShoppingList(ctx context.Context, userID domain.UserID) ([]domain.ShoppingItem, error)
}
