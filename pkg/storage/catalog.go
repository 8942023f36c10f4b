package storage

import (
	"context"
	"foodgram/pkg/domain"
)

// TagStorage defines operations on recipe tags.
type TagStorage interface {
	// Tags returns every tag ordered by name.
	Tags(ctx context.Context) ([]domain.Tag, error)
	// TagsByIDs returns the tags with the given IDs; missing IDs are skipped.
	TagsByIDs(ctx context.Context, IDs ...domain.TagID) ([]domain.Tag, error)
	// StoreTags inserts tags, skipping those that clash with an existing one,
	// and returns how many rows were inserted.
	StoreTags(ctx context.Context, tags ...domain.Tag) (int64, error)
}

// IngredientStorage defines operations on the ingredient catalogue.
type IngredientStorage interface {
	// Ingredients returns ingredients whose name starts with namePrefix (case
	// insensitive) ordered by name. An empty prefix returns everything.
	Ingredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
	// IngredientsByIDs returns the ingredients with the given IDs; missing IDs are skipped.
	IngredientsByIDs(ctx context.Context, IDs ...domain.IngredientID) ([]domain.Ingredient, error)
	// StoreIngredients inserts ingredients, skipping existing (name, unit)
	// pairs, and returns how many rows were inserted.
	StoreIngredients(ctx context.Context, ingredients ...domain.Ingredient) (int64, error)
}
