package domain_test

import (
	"foodgram/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecipe_Preview(t *testing.T) {
	r := domain.Recipe{ID: 7, Name: "Soup", Image: "recipes/images/a.png", CookingTime: 20, Text: "boil"}
	require.Equal(t, domain.RecipePreview{ID: 7, Name: "Soup", Image: "recipes/images/a.png", CookingTime: 20}, r.Preview())
}
