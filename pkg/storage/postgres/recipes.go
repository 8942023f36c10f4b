package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	recipesTable           = "recipes"
	recipeTagsTable        = "recipe_tags"
	recipeIngredientsTable = "recipe_ingredients"
)

// isMarked renders whether viewer put the recipe in the list of the given kind.
func isMarked(kind domain.MarkKind, viewer domain.UserID) exp.LiteralExpression {
	table, err := markTable(kind)
	if err != nil || viewer.IsAnonymous() {
		return goqu.L("FALSE")
	}

	return goqu.L("EXISTS (SELECT 1 FROM ? m WHERE m.recipe_id = r.id AND m.user_id = ?)",
		goqu.T(table), int64(viewer))
}

func (p *PgSQL) recipesDataset(viewer domain.UserID) *goqu.SelectDataset {
	return p.Builder.From(goqu.T(recipesTable).As("r")).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.author_id")))).
		Select(
			goqu.I("r.id"),
			goqu.I("r.name"),
			goqu.I("r.image"),
			goqu.I("r.text"),
			goqu.I("r.cooking_time"),
			goqu.I("r.pub_date"),
			goqu.I("u.id").As("author_id"),
			goqu.I("u.email").As("author_email"),
			goqu.I("u.username").As("author_username"),
			goqu.I("u.first_name").As("author_first_name"),
			goqu.I("u.last_name").As("author_last_name"),
			goqu.I("u.is_staff").As("author_is_staff"),
			goqu.I("u.is_active").As("author_is_active"),
			goqu.I("u.created_at").As("author_created_at"),
			isSubscribed(viewer, goqu.I("u.id")).As("author_is_subscribed"),
			isMarked(domain.MarkFavorite, viewer).As("is_favorited"),
			isMarked(domain.MarkShoppingCart, viewer).As("is_in_shopping_cart"),
		)
}

func (p *PgSQL) recipeFilter(filter storage.RecipeFilter) []exp.Expression {
	var w []exp.Expression
	if !filter.AuthorID.IsAnonymous() {
		w = append(w, goqu.I("r.author_id").Eq(int64(filter.AuthorID)))
	}
	if len(filter.TagSlugs) > 0 {
		w = append(w, goqu.I("r.id").In(
			p.Builder.From(goqu.T(recipeTagsTable).As("rt")).
				Join(goqu.T(tagsTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("rt.tag_id")))).
				Select(goqu.I("rt.recipe_id")).
				Where(goqu.I("t.slug").In(filter.TagSlugs)),
		))
	}
	if !filter.FavoritedBy.IsAnonymous() {
		w = append(w, goqu.I("r.id").In(
			p.Builder.From(favoritesTable).
				Select("recipe_id").
				Where(goqu.I("user_id").Eq(int64(filter.FavoritedBy))),
		))
	}
	if !filter.InCartOf.IsAnonymous() {
		w = append(w, goqu.I("r.id").In(
			p.Builder.From(shoppingCartsTable).
				Select("recipe_id").
				Where(goqu.I("user_id").Eq(int64(filter.InCartOf))),
		))
	}

	return w
}

// loadRelations fills tags and ingredients of the given recipes in two queries.
func (p *PgSQL) loadRelations(ctx context.Context, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]int64, len(recipes))
	index := make(map[int64]int, len(recipes))
	for i, r := range recipes {
		ids[i] = int64(r.ID)
		index[int64(r.ID)] = i
	}

	var tags []PgRecipeTag
	if err := p.Builder.From(goqu.T(recipeTagsTable).As("rt")).
		Join(goqu.T(tagsTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("rt.tag_id")))).
		Select(goqu.I("rt.recipe_id"), goqu.I("t.id"), goqu.I("t.name"), goqu.I("t.color"), goqu.I("t.slug")).
		Where(goqu.I("rt.recipe_id").In(ids)).
		Order(goqu.I("t.name").Asc()).
		Executor().ScanStructsContext(ctx, &tags); err != nil {
		return fmt.Errorf("could not fetch recipe tags from pg: %w", err)
	}
	for i := range tags {
		r := &recipes[index[tags[i].RecipeID]]
		r.Tags = append(r.Tags, tags[i].PgTag.ToDomain())
	}

	var ingredients []PgRecipeIngredient
	if err := p.Builder.From(goqu.T(recipeIngredientsTable).As("ri")).
		Join(goqu.T(ingredientsTable).As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("ri.ingredient_id")))).
		Select(goqu.I("ri.recipe_id"), goqu.I("i.id"), goqu.I("i.name"), goqu.I("i.measurement_unit"), goqu.I("ri.amount")).
		Where(goqu.I("ri.recipe_id").In(ids)).
		Order(goqu.I("i.name").Asc()).
		Executor().ScanStructsContext(ctx, &ingredients); err != nil {
		return fmt.Errorf("could not fetch recipe ingredients from pg: %w", err)
	}
	for i := range ingredients {
		r := &recipes[index[ingredients[i].RecipeID]]
		r.Ingredients = append(r.Ingredients, domain.RecipeIngredient{
			Ingredient: ingredients[i].PgIngredient.ToDomain(),
			Amount:     ingredients[i].Amount,
		})
	}

	return nil
}

// storeRelations inserts the tag and ingredient links of a recipe.
func (p *PgSQL) storeRelations(ctx context.Context, recipe domain.Recipe) error {
	if len(recipe.Tags) > 0 {
		rows := make([]goqu.Record, len(recipe.Tags))
		for i, tag := range recipe.Tags {
			rows[i] = goqu.Record{"recipe_id": int64(recipe.ID), "tag_id": int64(tag.ID)}
		}
		if _, err := p.Builder.Insert(recipeTagsTable).
			Rows(rows).
			OnConflict(goqu.DoNothing()).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not store recipe tags into pg: %w", mapError(err))
		}
	}

	if len(recipe.Ingredients) > 0 {
		rows := make([]goqu.Record, len(recipe.Ingredients))
		for i, ingredient := range recipe.Ingredients {
			rows[i] = goqu.Record{
				"recipe_id":     int64(recipe.ID),
				"ingredient_id": int64(ingredient.ID),
				"amount":        ingredient.Amount,
			}
		}
		if _, err := p.Builder.Insert(recipeIngredientsTable).
			Rows(rows).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not store recipe ingredients into pg: %w", mapError(err))
		}
	}

	return nil
}

func (p *PgSQL) StoreRecipe(ctx context.Context, recipe domain.Recipe) (domain.RecipeID, error) {
	var id int64
	if _, err := p.Builder.Insert(recipesTable).
		Rows(goqu.Record{
			"author_id":    int64(recipe.Author.ID),
			"name":         recipe.Name,
			"image":        recipe.Image,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
		}).
		Returning("id").
		Executor().ScanValContext(ctx, &id); err != nil {
		return 0, fmt.Errorf("could not store recipe into pg: %w", mapError(err))
	}

	recipe.ID = domain.RecipeID(id)
	if err := p.storeRelations(ctx, recipe); err != nil {
		return 0, err
	}

	return recipe.ID, nil
}

func (p *PgSQL) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	rec := goqu.Record{
		"name":         recipe.Name,
		"text":         recipe.Text,
		"cooking_time": recipe.CookingTime,
	}
	if recipe.Image != "" {
		rec["image"] = recipe.Image
	}

	if _, err := p.Builder.Update(recipesTable).
		Set(rec).
		Where(goqu.I("id").Eq(int64(recipe.ID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not update recipe in pg: %w", err)
	}

	for _, table := range []string{recipeTagsTable, recipeIngredientsTable} {
		if _, err := p.Builder.Delete(table).
			Where(goqu.I("recipe_id").Eq(int64(recipe.ID))).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not clear %s in pg: %w", table, err)
		}
	}

	return p.storeRelations(ctx, recipe)
}

func (p *PgSQL) DeleteRecipe(ctx context.Context, ID domain.RecipeID) (bool, error) {
	res, err := p.Builder.Delete(recipesTable).
		Where(goqu.I("id").Eq(int64(ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete recipe in pg: %w", err)
	}

	return affected(res)
}

func (p *PgSQL) RecipeByID(ctx context.Context, viewer domain.UserID, ID domain.RecipeID) (*domain.Recipe, error) {
	var row PgRecipeRow
	found, err := p.recipesDataset(viewer).
		Where(goqu.I("r.id").Eq(int64(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recipe by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	recipes := []domain.Recipe{row.ToDomain()}
	if err := p.loadRelations(ctx, recipes); err != nil {
		return nil, err
	}

	return &recipes[0], nil
}

func (p *PgSQL) Recipes(ctx context.Context,
	viewer domain.UserID,
	filter storage.RecipeFilter,
	page domain.Page) (storage.Recipes, error) {
	w := p.recipeFilter(filter)

	count, err := p.Builder.From(goqu.T(recipesTable).As("r")).
		Where(w...).
		CountContext(ctx)
	if err != nil {
		return storage.Recipes{}, fmt.Errorf("could not count recipes in pg: %w", err)
	}

	var rows []PgRecipeRow
	if err := p.recipesDataset(viewer).
		Where(w...).
		Order(goqu.I("r.pub_date").Desc(), goqu.I("r.id").Desc()).
		Limit(page.Size).
		Offset(page.Offset()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Recipes{}, fmt.Errorf("could not fetch recipes from pg: %w", err)
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for i := range rows {
		recipes = append(recipes, rows[i].ToDomain())
	}
	if err := p.loadRelations(ctx, recipes); err != nil {
		return storage.Recipes{}, err
	}

	return storage.Recipes{Recipes: recipes, Count: count}, nil
}

func (p *PgSQL) AuthorRecipes(ctx context.Context,
	authorIDs []domain.UserID,
	limit uint) (map[domain.UserID]storage.AuthorRecipes, error) {
	out := make(map[domain.UserID]storage.AuthorRecipes, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}

	ids := make([]int64, len(authorIDs))
	for i, id := range authorIDs {
		ids[i] = int64(id)
		out[id] = storage.AuthorRecipes{Recipes: []domain.RecipePreview{}}
	}

	ranked := p.Builder.From(recipesTable).
		Select(
			"id", "author_id", "name", "image", "cooking_time",
			goqu.L("ROW_NUMBER() OVER (PARTITION BY author_id ORDER BY pub_date DESC, id DESC)").As("rn"),
			goqu.L("COUNT(*) OVER (PARTITION BY author_id)").As("total"),
		).
		Where(goqu.I("author_id").In(ids))

	ds := p.Builder.From(ranked.As("x")).
		Select("id", "author_id", "name", "image", "cooking_time", "total").
		Order(goqu.I("author_id").Asc(), goqu.I("rn").Asc())
	if limit > 0 {
		ds = ds.Where(goqu.I("rn").Lte(limit))
	}

	var rows []PgRecipePreview
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch author recipes from pg: %w", err)
	}

	for i := range rows {
		author := domain.UserID(rows[i].AuthorID)
		entry := out[author]
		entry.Recipes = append(entry.Recipes, rows[i].ToDomain())
		entry.Count = rows[i].Total
		out[author] = entry
	}

	return out, nil
}
