package domain

import "time"

// RecipeID uniquely identifies a recipe.
type RecipeID int64

// Recipe is a dish published by an author.
type Recipe struct {
	// ID is the unique identifier of the recipe.
	ID RecipeID
	// Author is the user who published the recipe.
	Author User
	// Name is the title of the dish.
	Name string
	// Image is the media path of the recipe picture, relative to the media root.
	Image string
	// Text is the cooking description.
	Text string
	// CookingTime is the preparation time in minutes.
	CookingTime int
	// Tags label the recipe.
	Tags []Tag
	// Ingredients lists what the recipe needs and how much of it.
	Ingredients []RecipeIngredient
	// IsFavorited reports whether the viewer added the recipe to favorites.
	IsFavorited bool
	// IsInShoppingCart reports whether the viewer added the recipe to their cart.
	IsInShoppingCart bool
	// PubDate is the publication time.
	PubDate time.Time
}

// Preview returns the short representation of the recipe.
func (r *Recipe) Preview() RecipePreview {
	return RecipePreview{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

// RecipePreview is the short representation of a recipe used in favorites,
// shopping carts and author cards.
type RecipePreview struct {
	ID          RecipeID
	Name        string
	Image       string
	CookingTime int
}

// MarkKind enumerates the per-user lists a recipe can be put into.
type MarkKind string

const (
	// MarkFavorite is the user's favorites list.
	MarkFavorite MarkKind = "favorite"
	// MarkShoppingCart is the user's shopping cart.
	MarkShoppingCart MarkKind = "shopping_cart"
)
