package v1handler

import (
	"fmt"
	"foodgram/internal/accounts"
	"foodgram/internal/recipes"
	"foodgram/pkg/media"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Deps are the services the v1 handlers delegate to.
type Deps struct {
	Accounts accounts.Accounts
	Recipes  recipes.Recipes
	Media    media.Store

	// MeterProvider records API level counters. Nil disables them.
	MeterProvider metric.MeterProvider
}

// Options configure request parsing.
type Options struct {
	// DefaultLimit is the page size used when the limit parameter is absent.
	DefaultLimit uint
	// MaxLimit caps the limit parameter.
	MaxLimit uint
	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes int64
}

// Handler serves the v1 REST API.
type Handler struct {
	deps Deps
	opts Options

	authFailures   metric.Int64Counter
	recipesCreated metric.Int64Counter
}

func New(deps Deps, opts Options) (*Handler, error) {
	if opts.DefaultLimit == 0 {
		opts.DefaultLimit = 6
	}
	if opts.MaxLimit < opts.DefaultLimit {
		opts.MaxLimit = opts.DefaultLimit
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 10 << 20
	}

	if deps.MeterProvider == nil {
		deps.MeterProvider = noop.NewMeterProvider()
	}
	meter := deps.MeterProvider.Meter("foodgram/api/v1")

	authFailures, err := meter.Int64Counter("foodgram.auth.failures",
		metric.WithDescription("Requests rejected because of invalid credentials."))
	if err != nil {
		return nil, fmt.Errorf("could not create auth failures counter: %w", err)
	}
	recipesCreated, err := meter.Int64Counter("foodgram.recipes.created",
		metric.WithDescription("Recipes published through the API."))
	if err != nil {
		return nil, fmt.Errorf("could not create recipes counter: %w", err)
	}

	return &Handler{
		deps:           deps,
		opts:           opts,
		authFailures:   authFailures,
		recipesCreated: recipesCreated,
	}, nil
}

// Routes returns the v1 router. It is meant to be mounted under /api.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(h.Authenticate)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, errNotFound)
	})
	r.MethodNotAllowed(h.methodNotAllowed)

	r.Route("/auth/token", func(r chi.Router) {
		r.Post("/login/", h.Login)
		r.With(h.RequireAuth).Post("/logout/", h.Logout)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.Register)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireAuth)
			r.Get("/me/", h.Me)
			r.Post("/set_password/", h.SetPassword)
			r.Get("/subscriptions/", h.Subscriptions)
			r.Get("/{id}/", h.GetUser)
			r.Post("/{id}/subscribe/", h.Subscribe)
			r.Delete("/{id}/subscribe/", h.Unsubscribe)
		})
	})

	r.Get("/tags/", h.ListTags)
	r.Get("/tags/{id}/", h.GetTag)
	r.Get("/ingredients/", h.ListIngredients)
	r.Get("/ingredients/{id}/", h.GetIngredient)

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", h.ListRecipes)
		r.With(h.RequireAuth).Post("/", h.CreateRecipe)
		r.With(h.RequireAuth).Get("/download_shopping_cart/", h.DownloadShoppingCart)

		r.Get("/{id}/", h.GetRecipe)
		r.Group(func(r chi.Router) {
			r.Use(h.RequireAuth)
			r.Patch("/{id}/", h.UpdateRecipe)
			r.Delete("/{id}/", h.DeleteRecipe)
			r.Post("/{id}/favorite/", h.markHandler(addMark, favorite))
			r.Delete("/{id}/favorite/", h.markHandler(removeMark, favorite))
			r.Post("/{id}/shopping_cart/", h.markHandler(addMark, shoppingCart))
			r.Delete("/{id}/shopping_cart/", h.markHandler(removeMark, shoppingCart))
		})
	})

	return r
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("detail")
		e.Str("Method \"" + r.Method + "\" not allowed.")
		e.ObjEnd()
	})
}
