package postgres

import (
	"context"
	"errors"
	"fmt"
	"foodgram/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	favoritesTable     = "favorites"
	shoppingCartsTable = "shopping_carts"
)

var errUnknownMark = errors.New("unknown mark kind")

func markTable(kind domain.MarkKind) (string, error) {
	switch kind {
	case domain.MarkFavorite:
		return favoritesTable, nil
	case domain.MarkShoppingCart:
		return shoppingCartsTable, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownMark, kind)
	}
}

func (p *PgSQL) AddMark(ctx context.Context,
	kind domain.MarkKind,
	userID domain.UserID,
	recipeID domain.RecipeID) (bool, error) {
	table, err := markTable(kind)
	if err != nil {
		return false, err
	}

	res, err := p.Builder.Insert(table).
		Rows(goqu.Record{"user_id": int64(userID), "recipe_id": int64(recipeID)}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not store %s into pg: %w", kind, mapError(err))
	}

	return affected(res)
}

func (p *PgSQL) RemoveMark(ctx context.Context,
	kind domain.MarkKind,
	userID domain.UserID,
	recipeID domain.RecipeID) (bool, error) {
	table, err := markTable(kind)
	if err != nil {
		return false, err
	}

	res, err := p.Builder.Delete(table).
		Where(
			goqu.I("user_id").Eq(int64(userID)),
			goqu.I("recipe_id").Eq(int64(recipeID)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete %s in pg: %w", kind, err)
	}

	return affected(res)
}

func (p *PgSQL) ShoppingList(ctx context.Context, userID domain.UserID) ([]domain.ShoppingItem, error) {
	var rows []PgShoppingItem
	if err := p.Builder.From(goqu.T(shoppingCartsTable).As("sc")).
		Join(goqu.T(recipeIngredientsTable).As("ri"), goqu.On(goqu.I("ri.recipe_id").Eq(goqu.I("sc.recipe_id")))).
		Join(goqu.T(ingredientsTable).As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("ri.ingredient_id")))).
		Select(
			goqu.I("i.name"),
			goqu.I("i.measurement_unit"),
			goqu.SUM(goqu.I("ri.amount")).As("amount"),
		).
		Where(goqu.I("sc.user_id").Eq(int64(userID))).
		GroupBy(goqu.I("i.name"), goqu.I("i.measurement_unit")).
		Order(goqu.I("i.name").Asc(), goqu.I("i.measurement_unit").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch shopping list from pg: %w", err)
	}

	out := make([]domain.ShoppingItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ShoppingItem{
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          row.Amount,
		})
	}

	return out, nil
}
