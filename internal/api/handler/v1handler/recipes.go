package v1handler

import (
	"fmt"
	"foodgram/internal/recipes"
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-faster/jx"
)

type markAction int

const (
	addMark markAction = iota
	removeMark
)

const (
	favorite     = domain.MarkFavorite
	shoppingCart = domain.MarkShoppingCart
)

// ListRecipes returns a page of recipes, newest first.
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	page, err := h.parsePage(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	q := r.URL.Query()
	filter := recipes.Filter{
		TagSlugs:         q["tags"],
		IsFavorited:      q.Get("is_favorited") == "1",
		IsInShoppingCart: q.Get("is_in_shopping_cart") == "1",
	}
	if raw := q.Get("author"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, r, serrors.Invalid("author", "Select a valid choice. That choice is not one of the available choices."))

			return
		}
		filter.AuthorID = domain.UserID(id)
	}

	res, err := h.deps.Recipes.Recipes(r.Context(), viewerID(r.Context()), filter, page)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writePage(w, r, page, res.Count, len(res.Recipes), func(e *jx.Encoder, i int) {
		h.encodeRecipe(e, &res.Recipes[i])
	})
}

func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	recipe, err := h.deps.Recipes.Recipe(r.Context(), viewerID(r.Context()), domain.RecipeID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { h.encodeRecipe(e, recipe) })
}

// CreateRecipe publishes a recipe authored by the caller.
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	input, err := h.decodeRecipeInput(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	recipe, err := h.deps.Recipes.Create(r.Context(), SessionFromContext(r.Context()).User, input)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	h.recipesCreated.Add(r.Context(), 1)

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { h.encodeRecipe(e, recipe) })
}

// UpdateRecipe replaces the recipe in the path. The image may be omitted to
// keep the current one.
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	input, err := h.decodeRecipeInput(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	recipe, err := h.deps.Recipes.Update(r.Context(), SessionFromContext(r.Context()).User, domain.RecipeID(id), input)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { h.encodeRecipe(e, recipe) })
}

func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Recipes.Delete(r.Context(), SessionFromContext(r.Context()).User, domain.RecipeID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// markHandler builds the handlers adding a recipe to, or removing it from,
// the caller's favorites or shopping cart.
func (h *Handler) markHandler(action markAction, kind domain.MarkKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		if action == removeMark {
			if err := h.deps.Recipes.RemoveMark(r.Context(), kind, viewerID(r.Context()), domain.RecipeID(id)); err != nil {
				h.writeError(w, r, err)

				return
			}
			w.WriteHeader(http.StatusNoContent)

			return
		}

		preview, err := h.deps.Recipes.AddMark(r.Context(), kind, viewerID(r.Context()), domain.RecipeID(id))
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { h.encodePreview(e, preview) })
	}
}

// DownloadShoppingCart renders the caller's shopping list as a text attachment.
func (h *Handler) DownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.deps.Recipes.ShoppingList(r.Context(), viewerID(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="shopping_list.txt"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ShoppingListText(items)))
}

// ShoppingListText renders one "- name (unit): amount" line per item.
func ShoppingListText(items []domain.ShoppingItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s): %d\n", item.Name, item.MeasurementUnit, item.Amount)
	}

	return b.String()
}

// decodeRecipeInput decodes a create or update payload. Values of the wrong
// JSON type are reported per field.
func (h *Handler) decodeRecipeInput(w http.ResponseWriter, r *http.Request) (recipes.RecipeInput, error) {
	var input recipes.RecipeInput
	fields := serrors.FieldErrors{}

	err := h.readJSON(w, r, func(d *jx.Decoder) error {
		return decodeObject(d, func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "name":
				input.Name, err = decodeString(d, fields, key)
			case "text":
				input.Text, err = decodeString(d, fields, key)
			case "image":
				input.Image, err = decodeString(d, fields, key)
			case "cooking_time":
				v, ok, err := decodeInt(d)
				if err != nil {
					return err
				}
				if !ok {
					fields.Add(key, "A valid integer is required.")
				}
				input.CookingTime = int(v)
			case "tags":
				input.Tags, err = decodeTags(d, fields)
			case "ingredients":
				input.Ingredients, err = decodeIngredients(d, fields)
			default:
				err = d.Skip()
			}

			return err //nolint: wrapcheck
		})
	})
	if err != nil {
		return input, err
	}

	return input, fields.Err() //nolint: wrapcheck
}

func decodeTags(d *jx.Decoder, fields serrors.FieldErrors) ([]domain.TagID, error) {
	if d.Next() != jx.Array {
		fields.Add("tags", "Expected a list of items.")

		return nil, d.Skip() //nolint: wrapcheck
	}

	tags := []domain.TagID{}
	err := d.Arr(func(d *jx.Decoder) error {
		typ := d.Next()
		v, ok, err := decodeInt(d)
		if err != nil {
			return err
		}
		if !ok || typ != jx.Number {
			fields.Add("tags", "Incorrect type. Expected pk value, received "+typeName(typ)+".")

			return nil
		}
		tags = append(tags, domain.TagID(v))

		return nil
	})

	return tags, err //nolint: wrapcheck
}

func decodeIngredients(d *jx.Decoder, fields serrors.FieldErrors) ([]recipes.IngredientAmount, error) {
	if d.Next() != jx.Array {
		fields.Add("ingredients", "Expected a list of items.")

		return nil, d.Skip() //nolint: wrapcheck
	}

	ingredients := []recipes.IngredientAmount{}
	err := d.Arr(func(d *jx.Decoder) error {
		var item recipes.IngredientAmount
		if d.Next() != jx.Object {
			fields.Add("ingredients", "Invalid data. Expected a dictionary.")

			return d.Skip() //nolint: wrapcheck
		}

		if err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "id", "amount":
				v, ok, err := decodeInt(d)
				if err != nil {
					return err
				}
				if !ok {
					fields.Add("ingredients", key+": A valid integer is required.")
				}
				if key == "id" {
					item.ID = domain.IngredientID(v)
				} else {
					item.Amount = int(v)
				}

				return nil
			default:
				return d.Skip() //nolint: wrapcheck
			}
		}); err != nil {
			return err //nolint: wrapcheck
		}
		ingredients = append(ingredients, item)

		return nil
	})

	return ingredients, err //nolint: wrapcheck
}

func typeName(t jx.Type) string {
	switch t {
	case jx.String:
		return "str"
	case jx.Bool:
		return "bool"
	case jx.Null:
		return "NoneType"
	case jx.Array:
		return "list"
	case jx.Object:
		return "dict"
	default:
		return "number"
	}
}
