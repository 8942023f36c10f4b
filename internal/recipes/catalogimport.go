package recipes

import (
	"context"
	"errors"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
	"foodgram/pkg/validation"

	"github.com/go-faster/jx"
)

var errNotArray = errors.New("expected a JSON array")

type tagRecord struct {
	Name  string `json:"name"  validate:"required,max=200"`
	Color string `json:"color" validate:"required,color"`
	Slug  string `json:"slug"  validate:"required,max=200,slug"`
}

type ingredientRecord struct {
	Name            string `json:"name"             validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}

// ImportTags stores the tags of a JSON array of {name, color, slug} objects.
// Tags clashing with existing ones are skipped so imports can be repeated.
// It returns how many tags were inserted.
func ImportTags(ctx context.Context, strg storage.TagStorage, data []byte) (int64, error) {
	var tags []domain.Tag
	err := decodeRecords(data, func(i int, values map[string]string) error {
		rec := tagRecord{Name: values["name"], Color: values["color"], Slug: values["slug"]}
		if err := validation.Struct(rec); err != nil {
			return fmt.Errorf("tag #%d: %w", i, err)
		}
		tags = append(tags, domain.Tag{Name: rec.Name, Color: rec.Color, Slug: rec.Slug})

		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(tags) == 0 {
		return 0, nil
	}

	n, err := strg.StoreTags(ctx, tags...)
	if err != nil {
		return 0, fmt.Errorf("could not store tags: %w", err)
	}

	return n, nil
}

// ImportIngredients stores the ingredients of a JSON array of
// {name, measurement_unit} objects, skipping pairs that already exist.
func ImportIngredients(ctx context.Context, strg storage.IngredientStorage, data []byte) (int64, error) {
	var ingredients []domain.Ingredient
	err := decodeRecords(data, func(i int, values map[string]string) error {
		rec := ingredientRecord{Name: values["name"], MeasurementUnit: values["measurement_unit"]}
		if err := validation.Struct(rec); err != nil {
			return fmt.Errorf("ingredient #%d: %w", i, err)
		}
		ingredients = append(ingredients, domain.Ingredient{Name: rec.Name, MeasurementUnit: rec.MeasurementUnit})

		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(ingredients) == 0 {
		return 0, nil
	}

	n, err := strg.StoreIngredients(ctx, ingredients...)
	if err != nil {
		return 0, fmt.Errorf("could not store ingredients: %w", err)
	}

	return n, nil
}

// decodeRecords walks a JSON array of flat objects and hands the string
// fields of each one to fn. Non string fields are ignored.
func decodeRecords(data []byte, fn func(i int, values map[string]string) error) error {
	d := jx.DecodeBytes(data)
	if d.Next() != jx.Array {
		return errNotArray
	}

	i := 0
	err := d.Arr(func(d *jx.Decoder) error {
		values := map[string]string{}
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			if d.Next() != jx.String {
				return d.Skip() //nolint: wrapcheck
			}
			v, err := d.Str()
			values[key] = v

			return err //nolint: wrapcheck
		}); err != nil {
			return fmt.Errorf("record #%d: %w", i, err)
		}

		err := fn(i, values)
		i++

		return err
	})
	if err != nil {
		return fmt.Errorf("could not decode records: %w", err)
	}

	return nil
}
