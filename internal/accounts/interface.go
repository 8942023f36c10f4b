package accounts

import (
	"context"
	"foodgram/pkg/domain"
	"time"
)

// RegisterInput is the payload of a sign up request.
type RegisterInput struct {
	Email     string `json:"email"      validate:"required,email,max=254"`
	Username  string `json:"username"   validate:"required,max=150,username"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name"  validate:"required,max=150"`
	Password  string `json:"password"   validate:"required,max=128"`

	// IsStaff is only ever set by administrative tooling.
	IsStaff bool `json:"-"`
}

// SetPasswordInput is the payload of a password change request.
type SetPasswordInput struct {
	NewPassword     string `json:"new_password"     validate:"required,max=150"`
	CurrentPassword string `json:"current_password" validate:"required,max=150"`
}

// LoginInput is the payload of a token request.
type LoginInput struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is an authenticated caller: the user together with the token
// they presented.
type Session struct {
	User      domain.User
	TokenID   string
	ExpiresAt time.Time
}

// UserList is a page of users and the total count across all pages.
type UserList struct {
	Users []domain.User
	Count int64
}

// AuthorList is a page of author cards and the total count across all pages.
type AuthorList struct {
	Authors []domain.Author
	Count   int64
}

// Accounts manages users, their credentials and who follows whom.
// A zero viewer denotes an anonymous caller.
//
//go:generate mockgen -package mockaccounts -source=interface.go -destination=mock/mockaccounts.go *
type Accounts interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Users(ctx context.Context, viewer domain.UserID, page domain.Page) (UserList, error)
	User(ctx context.Context, viewer domain.UserID, ID domain.UserID) (*domain.User, error)
	SetPassword(ctx context.Context, viewer domain.UserID, input SetPasswordInput) error

	// Login checks credentials and issues a token.
	Login(ctx context.Context, input LoginInput) (string, error)
	// Logout revokes the token of the session until it expires.
	Logout(ctx context.Context, session Session) error
	// Authenticate resolves a raw token into a session. Invalid, expired or
	// revoked tokens and inactive users yield an unauthorized error.
	Authenticate(ctx context.Context, token string) (*Session, error)

	// Subscribe makes viewer follow author and returns the author card with
	// at most recipesLimit recipes (0 means all).
	Subscribe(ctx context.Context, viewer, author domain.UserID, recipesLimit uint) (*domain.Author, error)
	Unsubscribe(ctx context.Context, viewer, author domain.UserID) error
	Subscriptions(ctx context.Context, viewer domain.UserID, page domain.Page, recipesLimit uint) (AuthorList, error)
}
