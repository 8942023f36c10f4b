package storage

import (
	"context"
	"foodgram/pkg/domain"
)

// Users groups a page of users together with the total number of users
// matching the query.
type Users struct {
	Users []domain.User
	Count int64
}

// UserStorage defines persistence operations on user accounts. Every read that
// accepts a viewer fills domain.User.IsSubscribed relative to that viewer; an
// anonymous viewer (zero ID) never follows anybody.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row. A taken email or
	// username yields a ConstraintError wrapping ErrDuplicate.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the user with the given ID, or nil when not found.
	UserByID(ctx context.Context, viewer domain.UserID, ID domain.UserID) (*domain.User, error)
	// UserByEmail returns the user with the given email, or nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// Users returns a page of users ordered by username.
	Users(ctx context.Context, viewer domain.UserID, page domain.Page) (Users, error)
	// UpdatePassword replaces the password hash of a user.
	UpdatePassword(ctx context.Context, ID domain.UserID, passwordHash string) error
}

// SubscriptionStorage defines operations on follower relationships.
type SubscriptionStorage interface {
	// AddSubscription makes follower follow author. It reports false when the
	// subscription already existed.
	AddSubscription(ctx context.Context, followerID, authorID domain.UserID) (bool, error)
	// RemoveSubscription deletes the subscription. It reports false when there
	// was nothing to delete.
	RemoveSubscription(ctx context.Context, followerID, authorID domain.UserID) (bool, error)
	// Subscriptions returns a page of the authors followed by follower, most
	// recently followed first.
	Subscriptions(ctx context.Context, followerID domain.UserID, page domain.Page) (Users, error)
}
