package recipes

import (
	"context"
	"errors"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/logger"
	"foodgram/pkg/media"
	"foodgram/pkg/serrors"
	"foodgram/pkg/storage"
	"foodgram/pkg/validation"
	"strings"

	"go.uber.org/zap"
)

const (
	msgNotFound     = "Not found."
	msgForbidden    = "You do not have permission to perform this action."
	msgTagNotFound  = "one of the tags was not found."
	msgInvalidImage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
)

// Options configure the recipes service.
type Options struct {
	// MaxAttempts is the maximum number of attempts of media cleanup jobs.
	MaxAttempts int
}

// recipes is the concrete implementation of the Recipes interface.
type recipes struct {
	options Options
	storage storage.Storage
	media   media.Store
}

// New creates a Recipes service backed by the provided storage and media store.
func New(storage storage.Storage, store media.Store, options Options) Recipes {
	return &recipes{
		options: options,
		storage: storage,
		media:   store,
	}
}

func (r *recipes) Tags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := r.storage.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get tags: %w", err)
	}

	return tags, nil
}

func (r *recipes) Tag(ctx context.Context, ID domain.TagID) (*domain.Tag, error) {
	tags, err := r.storage.TagsByIDs(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get tag: %w", err)
	}
	if len(tags) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, msgNotFound)
	}

	return &tags[0], nil
}

func (r *recipes) Ingredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	ingredients, err := r.storage.Ingredients(ctx, strings.TrimSpace(namePrefix))
	if err != nil {
		return nil, fmt.Errorf("could not get ingredients: %w", err)
	}

	return ingredients, nil
}

func (r *recipes) Ingredient(ctx context.Context, ID domain.IngredientID) (*domain.Ingredient, error) {
	ingredients, err := r.storage.IngredientsByIDs(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get ingredient: %w", err)
	}
	if len(ingredients) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, msgNotFound)
	}

	return &ingredients[0], nil
}

func (r *recipes) Recipes(ctx context.Context,
	viewer domain.UserID,
	filter Filter,
	page domain.Page) (RecipeList, error) {
	f := storage.RecipeFilter{
		AuthorID: filter.AuthorID,
		TagSlugs: filter.TagSlugs,
	}
	if !viewer.IsAnonymous() {
		if filter.IsFavorited {
			f.FavoritedBy = viewer
		}
		if filter.IsInShoppingCart {
			f.InCartOf = viewer
		}
	}

	res, err := r.storage.Recipes(ctx, viewer, f, page)
	if err != nil {
		return RecipeList{}, fmt.Errorf("could not get recipes: %w", err)
	}

	return RecipeList{Recipes: res.Recipes, Count: res.Count}, nil
}

func (r *recipes) Recipe(ctx context.Context, viewer domain.UserID, ID domain.RecipeID) (*domain.Recipe, error) {
	recipe, err := r.storage.RecipeByID(ctx, viewer, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get recipe: %w", err)
	}
	if recipe == nil {
		return nil, serrors.With(serrors.ErrNotFound, msgNotFound)
	}

	return recipe, nil
}

func (r *recipes) Create(ctx context.Context, viewer domain.User, input RecipeInput) (*domain.Recipe, error) {
	if input.Image == "" {
		fields := serrors.FieldErrors{}
		if err := validation.Struct(input.trimmed()); err != nil {
			_ = errors.As(err, &fields)
		}
		fields.Add("image", "This field is required.")

		return nil, fields.Err()
	}

	recipe, img, err := r.prepare(ctx, input)
	if err != nil {
		return nil, err
	}
	recipe.Author = viewer

	recipe.Image, err = r.media.Save(ctx, *img)
	if err != nil {
		return nil, fmt.Errorf("could not save image: %w", err)
	}

	var created *domain.Recipe
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		ID, err := tx.StoreRecipe(ctx, *recipe)
		if err != nil {
			return translateStorageError(err)
		}

		created, err = tx.RecipeByID(ctx, viewer.ID, ID)
		if err != nil {
			return fmt.Errorf("could not reload recipe: %w", err)
		}

		return nil
	}); err != nil {
		r.discardImage(ctx, recipe.Image)

		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "recipe created", zap.Int64("recipeID", int64(created.ID)))

	return created, nil
}

func (r *recipes) Update(ctx context.Context,
	viewer domain.User,
	ID domain.RecipeID,
	input RecipeInput) (*domain.Recipe, error) {
	existing, err := r.modifiable(ctx, viewer, ID)
	if err != nil {
		return nil, err
	}

	recipe, img, err := r.prepare(ctx, input)
	if err != nil {
		return nil, err
	}
	recipe.ID = ID
	recipe.Author = existing.Author

	if img != nil {
		recipe.Image, err = r.media.Save(ctx, *img)
		if err != nil {
			return nil, fmt.Errorf("could not save image: %w", err)
		}
	}

	var updated *domain.Recipe
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.UpdateRecipe(ctx, *recipe); err != nil {
			return translateStorageError(err)
		}

		if recipe.Image != "" && existing.Image != "" && existing.Image != recipe.Image {
			if err := r.scheduleDelete(ctx, tx, existing.Image); err != nil {
				return err
			}
		}

		updated, err = tx.RecipeByID(ctx, viewer.ID, ID)
		if err != nil {
			return fmt.Errorf("could not reload recipe: %w", err)
		}

		return nil
	}); err != nil {
		r.discardImage(ctx, recipe.Image)

		return nil, err //nolint: wrapcheck
	}

	return updated, nil
}

func (r *recipes) Delete(ctx context.Context, viewer domain.User, ID domain.RecipeID) error {
	existing, err := r.modifiable(ctx, viewer, ID)
	if err != nil {
		return err
	}

	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteRecipe(ctx, ID)
		if err != nil {
			return fmt.Errorf("could not delete recipe: %w", err)
		}
		if !deleted {
			return serrors.With(serrors.ErrNotFound, msgNotFound)
		}

		if existing.Image != "" {
			return r.scheduleDelete(ctx, tx, existing.Image)
		}

		return nil
	}); err != nil {
		return err //nolint: wrapcheck
	}

	logger.Info(ctx, "recipe deleted", zap.Int64("recipeID", int64(ID)))

	return nil
}

func (r *recipes) AddMark(ctx context.Context,
	kind domain.MarkKind,
	viewer domain.UserID,
	ID domain.RecipeID) (*domain.RecipePreview, error) {
	recipe, err := r.Recipe(ctx, viewer, ID)
	if err != nil {
		return nil, err
	}

	added, err := r.storage.AddMark(ctx, kind, viewer, ID)
	if err != nil {
		if errors.Is(err, storage.ErrMissingReference) {
			return nil, serrors.With(serrors.ErrNotFound, msgNotFound)
		}

		return nil, fmt.Errorf("could not add %s: %w", kind, err)
	}
	if !added {
		return nil, serrors.With(serrors.ErrBadRequest, "recipe is already in %s.", listName(kind))
	}

	preview := recipe.Preview()

	return &preview, nil
}

func (r *recipes) RemoveMark(ctx context.Context, kind domain.MarkKind, viewer domain.UserID, ID domain.RecipeID) error {
	if _, err := r.Recipe(ctx, viewer, ID); err != nil {
		return err
	}

	removed, err := r.storage.RemoveMark(ctx, kind, viewer, ID)
	if err != nil {
		return fmt.Errorf("could not remove %s: %w", kind, err)
	}
	if !removed {
		return serrors.With(serrors.ErrBadRequest, "recipe is not in %s.", listName(kind))
	}

	return nil
}

func (r *recipes) ShoppingList(ctx context.Context, viewer domain.UserID) ([]domain.ShoppingItem, error) {
	items, err := r.storage.ShoppingList(ctx, viewer)
	if err != nil {
		return nil, fmt.Errorf("could not get shopping list: %w", err)
	}

	return items, nil
}

// modifiable loads a recipe and checks viewer may change it.
func (r *recipes) modifiable(ctx context.Context, viewer domain.User, ID domain.RecipeID) (*domain.Recipe, error) {
	existing, err := r.Recipe(ctx, viewer.ID, ID)
	if err != nil {
		return nil, err
	}
	if existing.Author.ID != viewer.ID && !viewer.IsStaff {
		return nil, serrors.With(serrors.ErrForbidden, msgForbidden)
	}

	return existing, nil
}

// prepare validates input against the catalogue and returns the recipe to
// store and the decoded image, if any.
func (r *recipes) prepare(ctx context.Context, input RecipeInput) (*domain.Recipe, *media.Image, error) {
	input = input.trimmed()
	if err := validation.Struct(input); err != nil {
		return nil, nil, err //nolint: wrapcheck
	}

	var img *media.Image
	if input.Image != "" {
		decoded, err := media.DecodeDataURI(input.Image)
		if err != nil {
			return nil, nil, serrors.Invalid("image", msgInvalidImage)
		}
		img = &decoded
	}

	ingredients, err := r.resolveIngredients(ctx, input.Ingredients)
	if err != nil {
		return nil, nil, err
	}

	tags, err := r.storage.TagsByIDs(ctx, input.Tags...)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get tags: %w", err)
	}
	if len(tags) != len(input.Tags) {
		return nil, nil, tagNotFound()
	}

	return &domain.Recipe{
		Name:        input.Name,
		Text:        input.Text,
		CookingTime: input.CookingTime,
		Tags:        tags,
		Ingredients: ingredients,
	}, img, nil
}

// resolveIngredients loads the referenced ingredients, rejecting unknown IDs
// and repeated ingredients.
func (r *recipes) resolveIngredients(ctx context.Context,
	amounts []IngredientAmount) ([]domain.RecipeIngredient, error) {
	ids := make([]domain.IngredientID, 0, len(amounts))
	seen := make(map[domain.IngredientID]bool, len(amounts))
	for _, a := range amounts {
		if !seen[a.ID] {
			seen[a.ID] = true
			ids = append(ids, a.ID)
		}
	}

	found, err := r.storage.IngredientsByIDs(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get ingredients: %w", err)
	}
	byID := make(map[domain.IngredientID]domain.Ingredient, len(found))
	for _, i := range found {
		byID[i.ID] = i
	}

	fields := serrors.FieldErrors{}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			fields.Add("ingredients", fmt.Sprintf("invalid pk \"%d\" - object does not exist.", id))
		}
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.RecipeIngredient, 0, len(amounts))
	var repeated []string
	used := make(map[domain.IngredientID]bool, len(amounts))
	for _, a := range amounts {
		if used[a.ID] {
			repeated = append(repeated, "'"+byID[a.ID].Name+"'")

			continue
		}
		used[a.ID] = true
		out = append(out, domain.RecipeIngredient{Ingredient: byID[a.ID], Amount: a.Amount})
	}
	if len(repeated) > 0 {
		return nil, serrors.Invalid("ingredients", fmt.Sprintf(
			"duplicate ingredients: [%s]. Ingredients must not repeat.", strings.Join(repeated, ", ")))
	}

	return out, nil
}

func (r *recipes) scheduleDelete(ctx context.Context, tx storage.AllStorage, path string) error {
	if _, err := tx.AddJob(ctx, DeleteMediaArgs{Path: path, maxAttempts: r.options.MaxAttempts}, nil); err != nil {
		return fmt.Errorf("could not schedule media deletion: %w", err)
	}

	return nil
}

// discardImage removes an image saved for a change that did not commit.
func (r *recipes) discardImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := r.media.Delete(ctx, path); err != nil {
		logger.Warn(ctx, "could not discard image", zap.String("path", path), zap.Error(err))
	}
}

// translateStorageError maps reference violations raced past validation.
func translateStorageError(err error) error {
	if errors.Is(err, storage.ErrMissingReference) {
		if strings.Contains(storage.ConstraintOf(err), "tag_id") {
			return tagNotFound()
		}

		return serrors.Wrap(serrors.ErrBadRequest, serrors.FieldErrors{
			"ingredients": {"one of the ingredients was not found."},
		}, "validation failed")
	}

	return fmt.Errorf("could not store recipe: %w", err)
}

func tagNotFound() error {
	return serrors.Wrap(serrors.ErrNotFound, serrors.FieldErrors{"tags": {msgTagNotFound}}, "tag not found")
}

func listName(kind domain.MarkKind) string {
	if kind == domain.MarkShoppingCart {
		return "the shopping cart"
	}

	return "favorites"
}
