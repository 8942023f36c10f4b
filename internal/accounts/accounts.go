package accounts

import (
	"context"
	"errors"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/logger"
	"foodgram/pkg/revocation"
	"foodgram/pkg/serrors"
	"foodgram/pkg/storage"
	"foodgram/pkg/validation"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgInvalidCredentials = "Unable to log in with provided credentials."
	msgInvalidToken       = "Invalid token."
	msgInactiveUser       = "User inactive or deleted."
)

// Options configure the accounts service.
type Options struct {
	// BcryptCost is the work factor of password hashes. Zero means bcrypt.DefaultCost.
	BcryptCost int
}

// accounts is the concrete implementation of the Accounts interface.
type accounts struct {
	options    Options
	storage    storage.Storage
	tokens     *Tokens
	revocation revocation.List
}

// New creates an Accounts service backed by the provided storage, token
// issuer and revocation list.
func New(storage storage.Storage, tokens *Tokens, revoked revocation.List, options Options) Accounts {
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}

	return &accounts{
		options:    options,
		storage:    storage,
		tokens:     tokens,
		revocation: revoked,
	}
}

func (a *accounts) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Username = strings.TrimSpace(input.Username)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	if err := validation.Struct(input); err != nil {
		return nil, err //nolint: wrapcheck
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), a.options.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, serrors.Invalid("password", "Ensure this field has no more than 72 bytes.")
		}

		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := a.storage.StoreUser(ctx, domain.User{
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
		IsStaff:      input.IsStaff,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			switch storage.ConstraintOf(err) {
			case "users_email_key":
				return nil, serrors.Invalid("email", "user with this email already exists.")
			case "users_username_key":
				return nil, serrors.Invalid("username", "A user with that username already exists.")
			}
		}

		return nil, fmt.Errorf("could not store user: %w", err)
	}

	logger.Info(ctx, "user registered", zap.Int64("userID", int64(user.ID)))

	return user, nil
}

func (a *accounts) Users(ctx context.Context, viewer domain.UserID, page domain.Page) (UserList, error) {
	res, err := a.storage.Users(ctx, viewer, page)
	if err != nil {
		return UserList{}, fmt.Errorf("could not get users: %w", err)
	}

	return UserList{Users: res.Users, Count: res.Count}, nil
}

func (a *accounts) User(ctx context.Context, viewer domain.UserID, ID domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, viewer, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Not found.")
	}

	return user, nil
}

func (a *accounts) SetPassword(ctx context.Context, viewer domain.UserID, input SetPasswordInput) error {
	if err := validation.Struct(input); err != nil {
		return err //nolint: wrapcheck
	}

	user, err := a.storage.UserByID(ctx, viewer, viewer)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrUnauthorized, msgInactiveUser)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return serrors.Invalid("current_password", "wrong password.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), a.options.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return serrors.Invalid("new_password", "Ensure this field has no more than 72 bytes.")
		}

		return fmt.Errorf("could not hash password: %w", err)
	}

	if err := a.storage.UpdatePassword(ctx, viewer, string(hash)); err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}

	return nil
}

func (a *accounts) Login(ctx context.Context, input LoginInput) (string, error) {
	if err := validation.Struct(input); err != nil {
		return "", err //nolint: wrapcheck
	}

	user, err := a.storage.UserByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return "", fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.IsActive ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return "", serrors.Invalid("non_field_errors", msgInvalidCredentials)
	}

	token, _, err := a.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("could not issue token: %w", err)
	}

	logger.Info(ctx, "user logged in", zap.Int64("userID", int64(user.ID)))

	return token, nil
}

func (a *accounts) Logout(ctx context.Context, session Session) error {
	if err := a.revocation.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		return fmt.Errorf("could not revoke token: %w", err)
	}

	return nil
}

func (a *accounts) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, userID, err := a.tokens.Parse(token)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, msgInvalidToken)
	}

	if claims.ID != "" {
		revoked, err := a.revocation.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("could not check token revocation: %w", err)
		}
		if revoked {
			return nil, serrors.With(serrors.ErrUnauthorized, msgInvalidToken)
		}
	}

	user, err := a.storage.UserByID(ctx, 0, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, serrors.With(serrors.ErrUnauthorized, msgInactiveUser)
	}

	session := &Session{User: *user, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}

func (a *accounts) Subscribe(ctx context.Context,
	viewer, author domain.UserID,
	recipesLimit uint) (*domain.Author, error) {
	if viewer == author {
		return nil, serrors.With(serrors.ErrBadRequest, "user cannot subscribe to themselves.")
	}

	var card *domain.Author
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		user, err := tx.UserByID(ctx, viewer, author)
		if err != nil {
			return fmt.Errorf("could not get author: %w", err)
		}
		if user == nil {
			return serrors.With(serrors.ErrNotFound, "Not found.")
		}

		created, err := tx.AddSubscription(ctx, viewer, author)
		if err != nil {
			return fmt.Errorf("could not add subscription: %w", err)
		}
		if !created {
			return serrors.With(serrors.ErrBadRequest, "already subscribed.")
		}
		user.IsSubscribed = true

		cards, err := authorCards(ctx, tx, []domain.User{*user}, recipesLimit)
		if err != nil {
			return err
		}
		card = &cards[0]

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return card, nil
}

func (a *accounts) Unsubscribe(ctx context.Context, viewer, author domain.UserID) error {
	user, err := a.storage.UserByID(ctx, viewer, author)
	if err != nil {
		return fmt.Errorf("could not get author: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, "Not found.")
	}

	removed, err := a.storage.RemoveSubscription(ctx, viewer, author)
	if err != nil {
		return fmt.Errorf("could not remove subscription: %w", err)
	}
	if !removed {
		return serrors.With(serrors.ErrBadRequest, "not subscribed.")
	}

	return nil
}

func (a *accounts) Subscriptions(ctx context.Context,
	viewer domain.UserID,
	page domain.Page,
	recipesLimit uint) (AuthorList, error) {
	res, err := a.storage.Subscriptions(ctx, viewer, page)
	if err != nil {
		return AuthorList{}, fmt.Errorf("could not get subscriptions: %w", err)
	}

	cards, err := authorCards(ctx, a.storage, res.Users, recipesLimit)
	if err != nil {
		return AuthorList{}, err
	}

	return AuthorList{Authors: cards, Count: res.Count}, nil
}

// authorCards attaches recipe previews and counts to users.
func authorCards(ctx context.Context,
	s storage.RecipeStorage,
	users []domain.User,
	recipesLimit uint) ([]domain.Author, error) {
	if len(users) == 0 {
		return []domain.Author{}, nil
	}

	ids := make([]domain.UserID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	recipes, err := s.AuthorRecipes(ctx, ids, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("could not get author recipes: %w", err)
	}

	out := make([]domain.Author, len(users))
	for i, u := range users {
		r := recipes[u.ID]
		out[i] = domain.Author{User: u, Recipes: r.Recipes, RecipesCount: r.Count}
		if out[i].Recipes == nil {
			out[i].Recipes = []domain.RecipePreview{}
		}
	}

	return out, nil
}
