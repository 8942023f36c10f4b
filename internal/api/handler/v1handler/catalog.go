package v1handler

import (
	"foodgram/pkg/domain"
	"net/http"

	"github.com/go-faster/jx"
)

// ListTags returns every tag, unpaginated.
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.deps.Recipes.Tags(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ArrStart()
		for i := range tags {
			encodeTag(e, &tags[i])
		}
		e.ArrEnd()
	})
}

func (h *Handler) GetTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	tag, err := h.deps.Recipes.Tag(r.Context(), domain.TagID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeTag(e, tag) })
}

// ListIngredients returns ingredients whose name starts with the name
// parameter, unpaginated.
func (h *Handler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.deps.Recipes.Ingredients(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ArrStart()
		for i := range ingredients {
			encodeIngredient(e, &ingredients[i])
		}
		e.ArrEnd()
	})
}

func (h *Handler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	ingredient, err := h.deps.Recipes.Ingredient(r.Context(), domain.IngredientID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeIngredient(e, ingredient) })
}
