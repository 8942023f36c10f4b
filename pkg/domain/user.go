package domain

import "time"

// UserID uniquely identifies a user within the system.
// The zero value denotes an anonymous caller.
type UserID int64

// IsAnonymous reports whether the ID belongs to no authenticated user.
func (id UserID) IsAnonymous() bool { return id <= 0 }

// User is a registered account. IsSubscribed is computed relative to the
// user requesting the data and is never persisted.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID
	// Email is the unique login address.
	Email string
	// Username is the unique public handle.
	Username string
	// FirstName is the given name.
	FirstName string
	// LastName is the family name.
	LastName string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string
	// IsStaff grants moderation rights over every recipe.
	IsStaff bool
	// IsActive is false for disabled accounts, which cannot log in.
	IsActive bool
	// IsSubscribed reports whether the viewer follows this user.
	IsSubscribed bool
	// CreatedAt is the registration time.
	CreatedAt time.Time
}

// Author is a user card shown in subscription lists: the user together with a
// preview of their latest recipes and the total number of recipes they own.
type Author struct {
	User

	Recipes      []RecipePreview
	RecipesCount int64
}
