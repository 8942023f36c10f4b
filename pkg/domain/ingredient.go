package domain

// IngredientID uniquely identifies an ingredient.
type IngredientID int64

// Ingredient is a product together with the unit its amounts are measured in.
type Ingredient struct {
	ID              IngredientID
	Name            string
	MeasurementUnit string
}

// RecipeIngredient is an ingredient used by a recipe in a given amount.
type RecipeIngredient struct {
	Ingredient

	Amount int
}

// ShoppingItem is one line of a shopping list: the summed amount of an
// ingredient across every recipe in a user's cart.
type ShoppingItem struct {
	Name            string
	MeasurementUnit string
	Amount          int64
}
