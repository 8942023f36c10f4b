package recipes

import (
	"context"
	"foodgram/pkg/domain"
	"strings"
)

// IngredientAmount references a catalogue ingredient and how much of it a
// recipe needs.
type IngredientAmount struct {
	ID     domain.IngredientID `json:"id"     validate:"required"`
	Amount int                 `json:"amount" validate:"gte=1,lte=32767"`
}

// RecipeInput is the payload of create and update requests. Image is a data
// URI; it is required on create and optional on update.
type RecipeInput struct {
	Ingredients []IngredientAmount `json:"ingredients"  validate:"required,min=1,dive"`
	Tags        []domain.TagID     `json:"tags"         validate:"required,min=1,unique"`
	Image       string             `json:"image"`
	Name        string             `json:"name"         validate:"required,max=200"`
	Text        string             `json:"text"         validate:"required"`
	CookingTime int                `json:"cooking_time" validate:"gte=1,lte=32767"`
}

// trimmed strips surrounding whitespace from the text fields so that blank
// values fail validation.
func (in RecipeInput) trimmed() RecipeInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Text = strings.TrimSpace(in.Text)

	return in
}

// Filter narrows a recipe listing. The mark flags only apply to
// authenticated viewers.
type Filter struct {
	AuthorID         domain.UserID
	TagSlugs         []string
	IsFavorited      bool
	IsInShoppingCart bool
}

// RecipeList is a page of recipes and the total count across all pages.
type RecipeList struct {
	Recipes []domain.Recipe
	Count   int64
}

// Recipes serves the catalogue (tags, ingredients) and recipes together with
// the per-user favorites and shopping cart.
//
//go:generate mockgen -package mockrecipes -source=interface.go -destination=mock/mockrecipes.go *
type Recipes interface {
	Tags(ctx context.Context) ([]domain.Tag, error)
	Tag(ctx context.Context, ID domain.TagID) (*domain.Tag, error)
	Ingredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
	Ingredient(ctx context.Context, ID domain.IngredientID) (*domain.Ingredient, error)

	Recipes(ctx context.Context, viewer domain.UserID, filter Filter, page domain.Page) (RecipeList, error)
	Recipe(ctx context.Context, viewer domain.UserID, ID domain.RecipeID) (*domain.Recipe, error)
	// Create publishes a recipe authored by viewer.
	Create(ctx context.Context, viewer domain.User, input RecipeInput) (*domain.Recipe, error)
	// Update replaces a recipe. Only its author or a staff user may do so.
	Update(ctx context.Context, viewer domain.User, ID domain.RecipeID, input RecipeInput) (*domain.Recipe, error)
	// Delete removes a recipe. Only its author or a staff user may do so.
	Delete(ctx context.Context, viewer domain.User, ID domain.RecipeID) error

	// AddMark puts a recipe into the viewer's favorites or shopping cart.
	AddMark(ctx context.Context,
		kind domain.MarkKind,
		viewer domain.UserID,
		ID domain.RecipeID) (*domain.RecipePreview, error)
	// RemoveMark takes a recipe out of the viewer's favorites or shopping cart.
	RemoveMark(ctx context.Context, kind domain.MarkKind, viewer domain.UserID, ID domain.RecipeID) error
	// ShoppingList sums the ingredients of every recipe in the viewer's cart.
	ShoppingList(ctx context.Context, viewer domain.UserID) ([]domain.ShoppingItem, error)
}
