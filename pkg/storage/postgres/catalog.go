package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"
	"strings"

	"github.com/doug-martin/goqu/v9"
)

const (
	tagsTable        = "tags"
	ingredientsTable = "ingredients"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (p *PgSQL) Tags(ctx context.Context) ([]domain.Tag, error) {
	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags from pg: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

func (p *PgSQL) TagsByIDs(ctx context.Context, IDs ...domain.TagID) ([]domain.Tag, error) {
	if len(IDs) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(IDs))
	for i, id := range IDs {
		ids[i] = int64(id)
	}

	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Where(goqu.I("id").In(ids)).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags by ids from pg: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

func (p *PgSQL) StoreTags(ctx context.Context, tags ...domain.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	res, err := p.Builder.Insert(tagsTable).
		Rows(domainTagsToPg(tags)).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store tags into pg: %w", mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}

func (p *PgSQL) Ingredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	ds := p.Builder.From(ingredientsTable)
	if namePrefix != "" {
		ds = ds.Where(goqu.L("LOWER(name) LIKE ?", likeEscaper.Replace(strings.ToLower(namePrefix))+"%"))
	}

	var rows []PgIngredient
	if err := ds.Order(goqu.I("name").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch ingredients from pg: %w", err)
	}

	return pgIngredientsToDomain(rows), nil
}

func (p *PgSQL) IngredientsByIDs(ctx context.Context, IDs ...domain.IngredientID) ([]domain.Ingredient, error) {
	if len(IDs) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(IDs))
	for i, id := range IDs {
		ids[i] = int64(id)
	}

	var rows []PgIngredient
	if err := p.Builder.From(ingredientsTable).
		Where(goqu.I("id").In(ids)).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch ingredients by ids from pg: %w", err)
	}

	return pgIngredientsToDomain(rows), nil
}

func (p *PgSQL) StoreIngredients(ctx context.Context, ingredients ...domain.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	res, err := p.Builder.Insert(ingredientsTable).
		Rows(domainIngredientsToPg(ingredients)).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store ingredients into pg: %w", mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
