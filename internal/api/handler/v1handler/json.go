package v1handler

import (
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// writeJSON renders the document written by enc with the given status.
func writeJSON(w http.ResponseWriter, status int, enc func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	enc(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// readJSON reads a size limited request body and hands it to fn. Syntax
// errors become bad requests.
func (h *Handler) readJSON(w http.ResponseWriter, r *http.Request, fn func(d *jx.Decoder) error) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return serrors.With(serrors.ErrBadRequest, "request body is too large.")
		}

		return errors.Wrap(err, "read body")
	}

	if err := fn(jx.DecodeBytes(body)); err != nil {
		var semantic *serrors.Error
		if errors.As(err, &semantic) {
			return err
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "JSON parse error - %s", err.Error())
	}

	return nil
}

// decodeObject walks a JSON object calling fn for every key. Unknown keys
// must be skipped by fn.
func decodeObject(d *jx.Decoder, fn func(d *jx.Decoder, key string) error) error {
	if d.Next() != jx.Object {
		return errors.New("expected a JSON object")
	}

	return d.Obj(fn) //nolint: wrapcheck
}

// decodeString reads a string field, recording a type error in fields when
// the value is of another type. null decodes as an empty string.
func decodeString(d *jx.Decoder, fields serrors.FieldErrors, key string) (string, error) {
	switch d.Next() {
	case jx.String:
		v, err := d.Str()
		if err != nil {
			return "", errors.Wrapf(err, "decode field %q", key)
		}

		return v, nil
	case jx.Null:
		return "", d.Null() //nolint: wrapcheck
	default:
		fields.Add(key, "Not a valid string.")

		return "", d.Skip() //nolint: wrapcheck
	}
}

// decodeInt reads an integer. Numeric strings are accepted as form encoders
// send them. ok is false, and the value skipped, when it is not an integer.
func decodeInt(d *jx.Decoder) (int64, bool, error) {
	switch d.Next() {
	case jx.Number:
		num, err := d.Num()
		if err != nil {
			return 0, false, errors.Wrap(err, "decode number")
		}
		v, err := num.Int64()
		if err != nil {
			return 0, false, nil //nolint: nilerr
		}

		return v, true, nil
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return 0, false, errors.Wrap(err, "decode string")
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false, nil //nolint: nilerr
		}

		return v, true, nil
	default:
		return 0, false, d.Skip() //nolint: wrapcheck
	}
}

func encodeUser(e *jx.Encoder, u *domain.User) {
	e.ObjStart()
	encodeUserFields(e, u)
	e.ObjEnd()
}

func encodeUserFields(e *jx.Encoder, u *domain.User) {
	e.FieldStart("email")
	e.Str(u.Email)
	e.FieldStart("id")
	e.Int64(int64(u.ID))
	e.FieldStart("username")
	e.Str(u.Username)
	e.FieldStart("first_name")
	e.Str(u.FirstName)
	e.FieldStart("last_name")
	e.Str(u.LastName)
	e.FieldStart("is_subscribed")
	e.Bool(u.IsSubscribed)
}

// encodeCreatedUser renders a freshly registered user, which has no viewer
// relative fields.
func encodeCreatedUser(e *jx.Encoder, u *domain.User) {
	e.ObjStart()
	e.FieldStart("email")
	e.Str(u.Email)
	e.FieldStart("id")
	e.Int64(int64(u.ID))
	e.FieldStart("username")
	e.Str(u.Username)
	e.FieldStart("first_name")
	e.Str(u.FirstName)
	e.FieldStart("last_name")
	e.Str(u.LastName)
	e.ObjEnd()
}

func (h *Handler) encodeAuthor(e *jx.Encoder, a *domain.Author) {
	e.ObjStart()
	encodeUserFields(e, &a.User)
	e.FieldStart("recipes")
	e.ArrStart()
	for i := range a.Recipes {
		h.encodePreview(e, &a.Recipes[i])
	}
	e.ArrEnd()
	e.FieldStart("recipes_count")
	e.Int64(a.RecipesCount)
	e.ObjEnd()
}

func encodeTag(e *jx.Encoder, t *domain.Tag) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(int64(t.ID))
	e.FieldStart("name")
	e.Str(t.Name)
	e.FieldStart("color")
	e.Str(t.Color)
	e.FieldStart("slug")
	e.Str(t.Slug)
	e.ObjEnd()
}

func encodeIngredient(e *jx.Encoder, i *domain.Ingredient) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(int64(i.ID))
	e.FieldStart("name")
	e.Str(i.Name)
	e.FieldStart("measurement_unit")
	e.Str(i.MeasurementUnit)
	e.ObjEnd()
}

func (h *Handler) encodePreview(e *jx.Encoder, p *domain.RecipePreview) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(int64(p.ID))
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("image")
	h.encodeImage(e, p.Image)
	e.FieldStart("cooking_time")
	e.Int(p.CookingTime)
	e.ObjEnd()
}

func (h *Handler) encodeRecipe(e *jx.Encoder, r *domain.Recipe) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(int64(r.ID))
	e.FieldStart("tags")
	e.ArrStart()
	for i := range r.Tags {
		encodeTag(e, &r.Tags[i])
	}
	e.ArrEnd()
	e.FieldStart("author")
	encodeUser(e, &r.Author)
	e.FieldStart("ingredients")
	e.ArrStart()
	for _, ri := range r.Ingredients {
		e.ObjStart()
		e.FieldStart("id")
		e.Int64(int64(ri.ID))
		e.FieldStart("name")
		e.Str(ri.Name)
		e.FieldStart("measurement_unit")
		e.Str(ri.MeasurementUnit)
		e.FieldStart("amount")
		e.Int(ri.Amount)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("is_favorited")
	e.Bool(r.IsFavorited)
	e.FieldStart("is_in_shopping_cart")
	e.Bool(r.IsInShoppingCart)
	e.FieldStart("name")
	e.Str(r.Name)
	e.FieldStart("image")
	h.encodeImage(e, r.Image)
	e.FieldStart("text")
	e.Str(r.Text)
	e.FieldStart("cooking_time")
	e.Int(r.CookingTime)
	e.ObjEnd()
}

func (h *Handler) encodeImage(e *jx.Encoder, path string) {
	if path == "" || h.deps.Media == nil {
		e.Null()

		return
	}
	e.Str(h.deps.Media.URL(path))
}
