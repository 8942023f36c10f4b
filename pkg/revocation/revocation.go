// Package revocation keeps a denylist of token IDs in Redis. A revoked ID
// stays listed until the token it belongs to would have expired anyway.
//
//go:generate mockgen -package mockrevocation -source=revocation.go -destination=mock/mockrevocation.go List
package revocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "foodgram:revoked:"

// List is a token denylist.
type List interface {
	// Revoke lists tokenID until expiresAt. Already expired tokens are ignored.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	// IsRevoked reports whether tokenID is listed.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Redis implements List on top of a go-redis client.
type Redis struct {
	client redis.UniversalClient
	now    func() time.Time
}

var _ List = (*Redis)(nil)

// New wraps client. The caller keeps ownership of the client.
func New(client redis.UniversalClient) *Redis {
	return &Redis{client: client, now: time.Now}
}

func key(tokenID string) string { return keyPrefix + tokenID }

func (r *Redis) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	if err := r.client.Set(ctx, key(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("could not revoke token: %w", err)
	}

	return nil
}

func (r *Redis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, key(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not check token revocation: %w", err)
	}

	return true, nil
}

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// Dial creates a client for opts and verifies the server answers.
func Dial(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return client, nil
}
