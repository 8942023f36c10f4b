// Package validation checks request structs declared with go-playground
// validator tags and reports failures as serrors.FieldErrors keyed by the
// JSON name of the offending field.
package validation

import (
	"errors"
	"fmt"
	"foodgram/pkg/serrors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	usernameRe = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)
	slugRe     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	colorRe    = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		default:
			return name
		}
	})

	for tag, re := range map[string]*regexp.Regexp{
		"username": usernameRe,
		"slug":     slugRe,
		"color":    colorRe,
	} {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}

	return v
}

// Struct validates s and returns nil, a bad request error wrapping
// serrors.FieldErrors, or an internal error when s cannot be validated.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return serrors.Wrap(serrors.ErrInternal, err, "could not validate input")
	}

	fields := serrors.FieldErrors{}
	for _, e := range verrs {
		fields.Add(topField(e.Namespace()), message(e))
	}

	return fields.Err()
}

// topField reduces "Input.ingredients[0].amount" to "ingredients".
func topField(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	if i := strings.IndexAny(ns, ".["); i >= 0 {
		ns = ns[:i]
	}

	return ns
}

func message(e validator.FieldError) string {
	isText := e.Kind() == reflect.String

	switch e.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	case "slug":
		return "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	case "color":
		return "Enter a valid hex color, e.g. #49B64E."
	case "unique":
		return "Items must not repeat."
	case "max", "lte":
		if isText {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", e.Param())
		}
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("Ensure this field has no more than %s elements.", e.Param())
		}

		return fmt.Sprintf("Ensure this value is less than or equal to %s.", e.Param())
	case "min", "gte":
		if isText {
			return fmt.Sprintf("Ensure this field has at least %s characters.", e.Param())
		}
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("Ensure this field has at least %s elements.", e.Param())
		}

		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", e.Param())
	default:
		return fmt.Sprintf("Invalid value (%s).", e.Tag())
	}
}
