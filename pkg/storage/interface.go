// Package storage declares what the foodgram services need from persistence.
// pkg/storage/postgres is the only implementation; services are tested
// against the generated mocks in pkg/storage/mock.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is every query and mutation foodgram runs, with or without an
// open transaction.
type AllStorage interface {
	UserStorage
	SubscriptionStorage
	TagStorage
	IngredientStorage
	RecipeStorage
	MarkStorage
	JobStorage
}

// TxStorage is an AllStorage bound to one transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the long lived handle created at startup.
type Storage interface {
	AllStorage

	Close() error
	// Ping backs the /healthz endpoint.
	Ping(ctx context.Context) error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx commits when cb returns nil and rolls back otherwise. Recipe
	// writes use it so that media cleanup jobs are only visible once the
	// recipe change is committed.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
