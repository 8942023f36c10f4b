package v1handler_test

import (
	"errors"
	"foodgram/internal/accounts"
	"foodgram/internal/api/handler/v1handler"
	"foodgram/internal/recipes"
	"foodgram/pkg/domain"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockaccounts "foodgram/internal/accounts/mock"
	mockrecipes "foodgram/internal/recipes/mock"
	mockmedia "foodgram/pkg/media/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

const goodToken = "good-token"

var cook = domain.User{ //nolint: gochecknoglobals
	ID:        7,
	Email:     "cook@example.com",
	Username:  "cook",
	FirstName: "Ann",
	LastName:  "Lee",
	IsActive:  true,
}

type fixture struct {
	accounts *mockaccounts.MockAccounts
	recipes  *mockrecipes.MockRecipes
	media    *mockmedia.MockStore
	routes   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		accounts: mockaccounts.NewMockAccounts(ctrl),
		recipes:  mockrecipes.NewMockRecipes(ctrl),
		media:    mockmedia.NewMockStore(ctrl),
	}
	f.media.EXPECT().URL(gomock.Any()).DoAndReturn(func(path string) string {
		return "http://example.com/media/" + path
	}).AnyTimes()

	h, err := v1handler.New(v1handler.Deps{
		Accounts: f.accounts,
		Recipes:  f.recipes,
		Media:    f.media,
	}, v1handler.Options{DefaultLimit: 6, MaxLimit: 100})
	require.NoError(t, err)
	f.routes = h.Routes()

	return f
}

// signIn makes goodToken resolve to a session of user.
func (f *fixture) signIn(user domain.User) *accounts.Session {
	session := &accounts.Session{User: user, TokenID: "jti-1"}
	f.accounts.EXPECT().Authenticate(gomock.Any(), goodToken).Return(session, nil).AnyTimes()

	return session
}

func (f *fixture) do(method, target, body, authorization string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	f.routes.ServeHTTP(rec, req)

	return rec
}

func soup() *domain.Recipe {
	return &domain.Recipe{
		ID:          9,
		Author:      cook,
		Name:        "Soup",
		Image:       "recipes/images/a.png",
		Text:        "Boil",
		CookingTime: 15,
		Tags:        []domain.Tag{{ID: 1, Name: "Lunch", Color: "#E26C2D", Slug: "lunch"}},
		Ingredients: []domain.RecipeIngredient{
			{Ingredient: domain.Ingredient{ID: 3, Name: "carrot", MeasurementUnit: "g"}, Amount: 200},
		},
		IsFavorited: true,
	}
}

const soupJSON = `{
	"id": 9,
	"tags": [{"id": 1, "name": "Lunch", "color": "#E26C2D", "slug": "lunch"}],
	"author": {"email": "cook@example.com", "id": 7, "username": "cook",
		"first_name": "Ann", "last_name": "Lee", "is_subscribed": false},
	"ingredients": [{"id": 3, "name": "carrot", "measurement_unit": "g", "amount": 200}],
	"is_favorited": true,
	"is_in_shopping_cart": false,
	"name": "Soup",
	"image": "http://example.com/media/recipes/images/a.png",
	"text": "Boil",
	"cooking_time": 15
}`

func TestErrorRendering(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "plain error is hidden",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"detail": "internal error"}`,
		},
		{
			name:   "not found sentinel",
			err:    serrors.ErrNotFound,
			status: http.StatusNotFound,
			body:   `{"detail": "Not found."}`,
		},
		{
			name:   "not found with fields",
			err:    serrors.Wrap(serrors.ErrNotFound, serrors.FieldErrors{"tags": {"one of the tags was not found."}}, "missing"),
			status: http.StatusNotFound,
			body:   `{"tags": ["one of the tags was not found."]}`,
		},
		{
			name:   "bad request message",
			err:    serrors.With(serrors.ErrBadRequest, "recipe is already in favorites."),
			status: http.StatusBadRequest,
			body:   `{"errors": "recipe is already in favorites."}`,
		},
		{
			name:   "conflict renders as bad request",
			err:    serrors.With(serrors.ErrConflict, "already subscribed."),
			status: http.StatusBadRequest,
			body:   `{"errors": "already subscribed."}`,
		},
		{
			name:   "field errors",
			err:    serrors.Invalid("email", "user with this email already exists."),
			status: http.StatusBadRequest,
			body:   `{"email": ["user with this email already exists."]}`,
		},
		{
			name:   "forbidden",
			err:    serrors.ErrForbidden,
			status: http.StatusForbidden,
			body:   `{"detail": "You do not have permission to perform this action."}`,
		},
		{
			name:   "unauthorized",
			err:    serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "Invalid token."),
			status: http.StatusUnauthorized,
			body:   `{"detail": "Invalid token."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.recipes.EXPECT().Tag(gomock.Any(), domain.TagID(1)).Return(nil, tt.err)

			rec := f.do(http.MethodGet, "/tags/1/", "", "")
			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			require.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestRoutes_NotFoundAndMethodNotAllowed(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/nothing/", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"detail": "Not found."}`, rec.Body.String())

	rec = f.do(http.MethodPut, "/recipes/9/", `{}`, "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.JSONEq(t, `{"detail": "Method \"PUT\" not allowed."}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/tags/abc/", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthenticate(t *testing.T) {
	t.Run("token and bearer schemes", func(t *testing.T) {
		f := newFixture(t)
		f.signIn(cook)

		for _, header := range []string{"Token " + goodToken, "Bearer " + goodToken} {
			rec := f.do(http.MethodGet, "/users/me/", "", header)
			require.Equal(t, http.StatusOK, rec.Code, header)
			require.JSONEq(t, `{"email": "cook@example.com", "id": 7, "username": "cook",
				"first_name": "Ann", "last_name": "Lee", "is_subscribed": false}`, rec.Body.String())
		}
	})

	t.Run("foreign scheme stays anonymous", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/users/me/", "", "Basic dXNlcjpwYXNz")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"detail": "Authentication credentials were not provided."}`, rec.Body.String())
	})

	t.Run("malformed header", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/tags/", "", "Token")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"detail": "Invalid token header."}`, rec.Body.String())
	})

	t.Run("rejected token fails public endpoints too", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Authenticate(gomock.Any(), "revoked").
			Return(nil, serrors.With(serrors.ErrUnauthorized, "Invalid token."))

		rec := f.do(http.MethodGet, "/tags/", "", "Token revoked")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"detail": "Invalid token."}`, rec.Body.String())
	})
}

func TestListRecipes_Pagination(t *testing.T) {
	f := newFixture(t)
	f.recipes.EXPECT().Recipes(gomock.Any(), domain.UserID(0), recipes.Filter{
		AuthorID: 7,
		TagSlugs: []string{"breakfast", "lunch"},
	}, domain.Page{Number: 2, Size: 2}).Return(recipes.RecipeList{
		Recipes: []domain.Recipe{*soup()},
		Count:   5,
	}, nil)

	rec := f.do(http.MethodGet, "/recipes/?page=2&limit=2&tags=breakfast&tags=lunch&author=7&is_favorited=0", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"count": 5,
		"next": "http://example.com/recipes/?author=7&is_favorited=0&limit=2&page=3&tags=breakfast&tags=lunch",
		"previous": "http://example.com/recipes/?author=7&is_favorited=0&limit=2&tags=breakfast&tags=lunch",
		"results": [`+soupJSON+`]
	}`, rec.Body.String())
}

func TestListRecipes_MarkFilters(t *testing.T) {
	f := newFixture(t)
	f.signIn(cook)
	f.recipes.EXPECT().Recipes(gomock.Any(), cook.ID, recipes.Filter{
		IsFavorited:      true,
		IsInShoppingCart: true,
	}, domain.Page{Number: 1, Size: 100}).Return(recipes.RecipeList{}, nil)

	rec := f.do(http.MethodGet, "/recipes/?is_favorited=1&is_in_shopping_cart=1&limit=500", "", "Token "+goodToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"count": 0, "next": null, "previous": null, "results": []}`, rec.Body.String())
}

func TestListRecipes_InvalidPage(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/recipes/?page=abc", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"detail": "Invalid page."}`, rec.Body.String())

	f.recipes.EXPECT().Recipes(gomock.Any(), gomock.Any(), gomock.Any(), domain.Page{Number: 3, Size: 6}).
		Return(recipes.RecipeList{Count: 5}, nil)

	rec = f.do(http.MethodGet, "/recipes/?page=3", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"detail": "Invalid page."}`, rec.Body.String())
}

func TestListRecipes_InvalidAuthor(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/recipes/?author=me", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"author"`)
}

func TestCreateRecipe(t *testing.T) {
	const body = `{
		"ingredients": [{"id": 3, "amount": 200}],
		"tags": [1],
		"image": "data:image/png;base64,AAAA",
		"name": "Soup",
		"text": "Boil",
		"cooking_time": "15",
		"unknown": {"nested": [1, 2]}
	}`

	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/recipes/", body, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		f.signIn(cook)
		f.recipes.EXPECT().Create(gomock.Any(), cook, recipes.RecipeInput{
			Ingredients: []recipes.IngredientAmount{{ID: 3, Amount: 200}},
			Tags:        []domain.TagID{1},
			Image:       "data:image/png;base64,AAAA",
			Name:        "Soup",
			Text:        "Boil",
			CookingTime: 15,
		}).Return(soup(), nil)

		rec := f.do(http.MethodPost, "/recipes/", body, "Token "+goodToken)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, soupJSON, rec.Body.String())
	})

	t.Run("type errors", func(t *testing.T) {
		f := newFixture(t)
		f.signIn(cook)

		rec := f.do(http.MethodPost, "/recipes/",
			`{"tags": ["lunch"], "ingredients": [{"id": "x", "amount": 1}], "name": 5, "cooking_time": true}`,
			"Token "+goodToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{
			"tags": ["Incorrect type. Expected pk value, received str."],
			"ingredients": ["id: A valid integer is required."],
			"name": ["Not a valid string."],
			"cooking_time": ["A valid integer is required."]
		}`, rec.Body.String())
	})

	t.Run("malformed JSON", func(t *testing.T) {
		f := newFixture(t)
		f.signIn(cook)

		rec := f.do(http.MethodPost, "/recipes/", `{"name": `, "Token "+goodToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "JSON parse error")
	})

	t.Run("service validation", func(t *testing.T) {
		f := newFixture(t)
		f.signIn(cook)
		f.recipes.EXPECT().Create(gomock.Any(), cook, gomock.Any()).
			Return(nil, serrors.Invalid("ingredients", `invalid pk "3" - object does not exist.`))

		rec := f.do(http.MethodPost, "/recipes/", body, "Token "+goodToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"ingredients": ["invalid pk \"3\" - object does not exist."]}`, rec.Body.String())
	})
}

func TestUpdateAndDeleteRecipe(t *testing.T) {
	f := newFixture(t)
	f.signIn(cook)

	f.recipes.EXPECT().Update(gomock.Any(), cook, domain.RecipeID(9), recipes.RecipeInput{
		Ingredients: []recipes.IngredientAmount{{ID: 3, Amount: 200}},
		Tags:        []domain.TagID{1},
		Name:        "Soup",
		Text:        "Boil",
		CookingTime: 15,
	}).Return(soup(), nil)

	rec := f.do(http.MethodPatch, "/recipes/9/",
		`{"ingredients": [{"id": 3, "amount": 200}], "tags": [1], "name": "Soup", "text": "Boil", "cooking_time": 15}`,
		"Token "+goodToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, soupJSON, rec.Body.String())

	f.recipes.EXPECT().Delete(gomock.Any(), cook, domain.RecipeID(9)).
		Return(serrors.With(serrors.ErrForbidden, "You do not have permission to perform this action."))

	rec = f.do(http.MethodDelete, "/recipes/9/", "", "Token "+goodToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	f.recipes.EXPECT().Delete(gomock.Any(), cook, domain.RecipeID(10)).Return(nil)

	rec = f.do(http.MethodDelete, "/recipes/10/", "", "Token "+goodToken)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestMarks(t *testing.T) {
	f := newFixture(t)
	f.signIn(cook)

	f.recipes.EXPECT().AddMark(gomock.Any(), domain.MarkFavorite, cook.ID, domain.RecipeID(9)).
		Return(&domain.RecipePreview{ID: 9, Name: "Soup", CookingTime: 15}, nil)

	rec := f.do(http.MethodPost, "/recipes/9/favorite/", "", "Token "+goodToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id": 9, "name": "Soup", "image": null, "cooking_time": 15}`, rec.Body.String())

	f.recipes.EXPECT().AddMark(gomock.Any(), domain.MarkShoppingCart, cook.ID, domain.RecipeID(9)).
		Return(nil, serrors.With(serrors.ErrBadRequest, "recipe is already in the shopping cart."))

	rec = f.do(http.MethodPost, "/recipes/9/shopping_cart/", "", "Token "+goodToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"errors": "recipe is already in the shopping cart."}`, rec.Body.String())

	f.recipes.EXPECT().RemoveMark(gomock.Any(), domain.MarkShoppingCart, cook.ID, domain.RecipeID(9)).Return(nil)

	rec = f.do(http.MethodDelete, "/recipes/9/shopping_cart/", "", "Token "+goodToken)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodDelete, "/recipes/9/favorite/", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDownloadShoppingCart(t *testing.T) {
	f := newFixture(t)
	f.signIn(cook)
	f.recipes.EXPECT().ShoppingList(gomock.Any(), cook.ID).Return([]domain.ShoppingItem{
		{Name: "carrot", MeasurementUnit: "g", Amount: 350},
		{Name: "salt", MeasurementUnit: "pinch", Amount: 2},
	}, nil)

	rec := f.do(http.MethodGet, "/recipes/download_shopping_cart/", "", "Token "+goodToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "shopping_list.txt")
	require.Equal(t, "- carrot (g): 350\n- salt (pinch): 2\n", rec.Body.String())
}

func TestShoppingListText_Empty(t *testing.T) {
	require.Empty(t, v1handler.ShoppingListText(nil))
}

func TestCatalog(t *testing.T) {
	f := newFixture(t)
	f.recipes.EXPECT().Tags(gomock.Any()).Return([]domain.Tag{
		{ID: 1, Name: "Lunch", Color: "#E26C2D", Slug: "lunch"},
	}, nil)
	f.recipes.EXPECT().Ingredients(gomock.Any(), "car").Return([]domain.Ingredient{
		{ID: 3, Name: "carrot", MeasurementUnit: "g"},
	}, nil)
	f.recipes.EXPECT().Ingredient(gomock.Any(), domain.IngredientID(3)).
		Return(&domain.Ingredient{ID: 3, Name: "carrot", MeasurementUnit: "g"}, nil)

	rec := f.do(http.MethodGet, "/tags/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id": 1, "name": "Lunch", "color": "#E26C2D", "slug": "lunch"}]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/ingredients/?name=car", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id": 3, "name": "carrot", "measurement_unit": "g"}]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/ingredients/3/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"id": 3, "name": "carrot", "measurement_unit": "g"}`, rec.Body.String())
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		input := accounts.RegisterInput{
			Email:     "cook@example.com",
			Username:  "cook",
			FirstName: "Ann",
			LastName:  "Lee",
			Password:  "s3cret-pass",
		}
		f.accounts.EXPECT().Register(gomock.Any(), input).Return(&cook, nil)

		rec := f.do(http.MethodPost, "/users/", `{"email": "cook@example.com", "username": "cook",
			"first_name": "Ann", "last_name": "Lee", "password": "s3cret-pass"}`, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"email": "cook@example.com", "id": 7, "username": "cook",
			"first_name": "Ann", "last_name": "Lee"}`, rec.Body.String())
	})

	t.Run("wrong type", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/users/", `{"email": 5}`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"email": ["Not a valid string."]}`, rec.Body.String())
	})

	t.Run("not an object", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/users/", `[]`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), `"errors"`)
	})
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)
	other := domain.User{ID: 8, Email: "b@example.com", Username: "bob", FirstName: "Bob", LastName: "Ray", IsSubscribed: true}
	f.accounts.EXPECT().Users(gomock.Any(), domain.UserID(0), domain.Page{Number: 1, Size: 1}).
		Return(accounts.UserList{Users: []domain.User{other}, Count: 2}, nil)

	rec := f.do(http.MethodGet, "/users/?limit=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"count": 2,
		"next": "http://example.com/users/?limit=1&page=2",
		"previous": null,
		"results": [{"email": "b@example.com", "id": 8, "username": "bob",
			"first_name": "Bob", "last_name": "Ray", "is_subscribed": true}]
	}`, rec.Body.String())
}

func TestLoginLogout(t *testing.T) {
	f := newFixture(t)
	session := f.signIn(cook)

	f.accounts.EXPECT().Login(gomock.Any(), accounts.LoginInput{Email: "cook@example.com", Password: "pw"}).
		Return("issued.jwt.token", nil)

	rec := f.do(http.MethodPost, "/auth/token/login/", `{"email": "cook@example.com", "password": "pw"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"auth_token": "issued.jwt.token"}`, rec.Body.String())

	f.accounts.EXPECT().Logout(gomock.Any(), *session).Return(nil)

	rec = f.do(http.MethodPost, "/auth/token/logout/", "", "Token "+goodToken)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodPost, "/auth/token/logout/", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetPassword(t *testing.T) {
	f := newFixture(t)
	f.signIn(cook)
	f.accounts.EXPECT().SetPassword(gomock.Any(), cook.ID, accounts.SetPasswordInput{
		NewPassword:     "new-pass",
		CurrentPassword: "old-pass",
	}).Return(serrors.Invalid("current_password", "wrong password."))

	rec := f.do(http.MethodPost, "/users/set_password/",
		`{"new_password": "new-pass", "current_password": "old-pass"}`, "Token "+goodToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"current_password": ["wrong password."]}`, rec.Body.String())
}

func TestSubscriptions(t *testing.T) {
	f := newFixture(t)
	f.signIn(cook)

	author := domain.Author{
		User:         domain.User{ID: 8, Email: "b@example.com", Username: "bob", FirstName: "Bob", LastName: "Ray", IsSubscribed: true},
		Recipes:      []domain.RecipePreview{{ID: 4, Name: "Pie", Image: "recipes/images/p.png", CookingTime: 40}},
		RecipesCount: 3,
	}
	const authorJSON = `{"email": "b@example.com", "id": 8, "username": "bob", "first_name": "Bob",
		"last_name": "Ray", "is_subscribed": true,
		"recipes": [{"id": 4, "name": "Pie", "image": "http://example.com/media/recipes/images/p.png", "cooking_time": 40}],
		"recipes_count": 3}`

	f.accounts.EXPECT().Subscribe(gomock.Any(), cook.ID, domain.UserID(8), uint(1)).Return(&author, nil)

	rec := f.do(http.MethodPost, "/users/8/subscribe/?recipes_limit=1", "", "Token "+goodToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, authorJSON, rec.Body.String())

	f.accounts.EXPECT().Subscriptions(gomock.Any(), cook.ID, domain.Page{Number: 1, Size: 6}, uint(0)).
		Return(accounts.AuthorList{Authors: []domain.Author{author}, Count: 1}, nil)

	rec = f.do(http.MethodGet, "/users/subscriptions/?recipes_limit=all", "", "Token "+goodToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"count": 1, "next": null, "previous": null, "results": [`+authorJSON+`]}`, rec.Body.String())

	f.accounts.EXPECT().Unsubscribe(gomock.Any(), cook.ID, domain.UserID(8)).
		Return(serrors.With(serrors.ErrBadRequest, "you are not subscribed to this user."))

	rec = f.do(http.MethodDelete, "/users/8/subscribe/", "", "Token "+goodToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"errors": "you are not subscribed to this user."}`, rec.Body.String())
}
