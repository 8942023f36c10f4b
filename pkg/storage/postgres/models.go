package postgres

import (
	"foodgram/pkg/domain"
	"time"
)

type PgUser struct {
	ID           int64  `db:"id"            goqu:"skipinsert"`
	Email        string `db:"email"`
	Username     string `db:"username"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	PasswordHash string `db:"password_hash"`
	IsStaff      bool   `db:"is_staff"`
	IsActive     bool   `db:"is_active"`

	IsSubscribed bool `db:"is_subscribed" goqu:"skipinsert,skipupdate"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() domain.User {
	return domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		PasswordHash: p.PasswordHash,
		IsStaff:      p.IsStaff,
		IsActive:     p.IsActive,
		IsSubscribed: p.IsSubscribed,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           int64(user.ID),
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PasswordHash: user.PasswordHash,
		IsStaff:      user.IsStaff,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
	}
}

func pgUsersToDomain(users []PgUser) []domain.User {
	out := make([]domain.User, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToDomain())
	}

	return out
}

type PgTag struct {
	ID    int64  `db:"id"    goqu:"skipinsert"`
	Name  string `db:"name"`
	Color string `db:"color"`
	Slug  string `db:"slug"`
}

func (p *PgTag) ToDomain() domain.Tag {
	return domain.Tag{
		ID:    domain.TagID(p.ID),
		Name:  p.Name,
		Color: p.Color,
		Slug:  p.Slug,
	}
}

func domainTagsToPg(tags []domain.Tag) []PgTag {
	out := make([]PgTag, len(tags))
	for i, tag := range tags {
		out[i] = PgTag{Name: tag.Name, Color: tag.Color, Slug: tag.Slug}
	}

	return out
}

func pgTagsToDomain(tags []PgTag) []domain.Tag {
	out := make([]domain.Tag, 0, len(tags))
	for i := range tags {
		out = append(out, tags[i].ToDomain())
	}

	return out
}

type PgIngredient struct {
	ID              int64  `db:"id"               goqu:"skipinsert"`
	Name            string `db:"name"`
	MeasurementUnit string `db:"measurement_unit"`
}

func (p *PgIngredient) ToDomain() domain.Ingredient {
	return domain.Ingredient{
		ID:              domain.IngredientID(p.ID),
		Name:            p.Name,
		MeasurementUnit: p.MeasurementUnit,
	}
}

func domainIngredientsToPg(ingredients []domain.Ingredient) []PgIngredient {
	out := make([]PgIngredient, len(ingredients))
	for i, ingredient := range ingredients {
		out[i] = PgIngredient{Name: ingredient.Name, MeasurementUnit: ingredient.MeasurementUnit}
	}

	return out
}

func pgIngredientsToDomain(ingredients []PgIngredient) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(ingredients))
	for i := range ingredients {
		out = append(out, ingredients[i].ToDomain())
	}

	return out
}

// PgRecipeRow is a recipe joined with its author and the viewer-relative flags.
type PgRecipeRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Image       string    `db:"image"`
	Text        string    `db:"text"`
	CookingTime int       `db:"cooking_time"`
	PubDate     time.Time `db:"pub_date"`

	AuthorID           int64     `db:"author_id"`
	AuthorEmail        string    `db:"author_email"`
	AuthorUsername     string    `db:"author_username"`
	AuthorFirstName    string    `db:"author_first_name"`
	AuthorLastName     string    `db:"author_last_name"`
	AuthorIsStaff      bool      `db:"author_is_staff"`
	AuthorIsActive     bool      `db:"author_is_active"`
	AuthorCreatedAt    time.Time `db:"author_created_at"`
	AuthorIsSubscribed bool      `db:"author_is_subscribed"`

	IsFavorited      bool `db:"is_favorited"`
	IsInShoppingCart bool `db:"is_in_shopping_cart"`
}

func (p *PgRecipeRow) ToDomain() domain.Recipe {
	return domain.Recipe{
		ID: domain.RecipeID(p.ID),
		Author: domain.User{
			ID:           domain.UserID(p.AuthorID),
			Email:        p.AuthorEmail,
			Username:     p.AuthorUsername,
			FirstName:    p.AuthorFirstName,
			LastName:     p.AuthorLastName,
			IsStaff:      p.AuthorIsStaff,
			IsActive:     p.AuthorIsActive,
			IsSubscribed: p.AuthorIsSubscribed,
			CreatedAt:    p.AuthorCreatedAt,
		},
		Name:             p.Name,
		Image:            p.Image,
		Text:             p.Text,
		CookingTime:      p.CookingTime,
		IsFavorited:      p.IsFavorited,
		IsInShoppingCart: p.IsInShoppingCart,
		PubDate:          p.PubDate,
	}
}

type PgRecipeTag struct {
	RecipeID int64 `db:"recipe_id"`
	PgTag
}

type PgRecipeIngredient struct {
	RecipeID int64 `db:"recipe_id"`
	PgIngredient
	Amount int `db:"amount"`
}

type PgRecipePreview struct {
	ID          int64  `db:"id"`
	AuthorID    int64  `db:"author_id"`
	Name        string `db:"name"`
	Image       string `db:"image"`
	CookingTime int    `db:"cooking_time"`
	Total       int64  `db:"total"`
}

func (p *PgRecipePreview) ToDomain() domain.RecipePreview {
	return domain.RecipePreview{
		ID:          domain.RecipeID(p.ID),
		Name:        p.Name,
		Image:       p.Image,
		CookingTime: p.CookingTime,
	}
}

type PgShoppingItem struct {
	Name            string `db:"name"`
	MeasurementUnit string `db:"measurement_unit"`
	Amount          int64  `db:"amount"`
}
