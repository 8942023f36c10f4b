package storage_test

import (
	"errors"
	"fmt"
	"foodgram/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstraintError(t *testing.T) {
	err := fmt.Errorf("could not store user: %w", &storage.ConstraintError{
		Err:        storage.ErrDuplicate,
		Constraint: "users_email_key",
	})

	require.ErrorIs(t, err, storage.ErrDuplicate)
	require.NotErrorIs(t, err, storage.ErrMissingReference)
	require.Equal(t, "users_email_key", storage.ConstraintOf(err))
	require.Contains(t, err.Error(), "duplicate (users_email_key)")

	require.Empty(t, storage.ConstraintOf(errors.New("plain")))
}
