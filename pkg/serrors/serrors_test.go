package serrors_test

import (
	"errors"
	"foodgram/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type pathError struct{ path string }

func (e *pathError) Error() string { return "bad path " + e.path }

func TestError_String(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{"message", serrors.With(serrors.ErrNotFound, "recipe %d not found", 42), "recipe 42 not found"},
		{"message and cause", serrors.Wrap(serrors.ErrInternal, cause, "loading recipe"), "loading recipe: connection refused"},
		{"cause only", serrors.Wrap(serrors.ErrInternal, cause, ""), "connection refused"},
		{"kind only", serrors.With(serrors.ErrForbidden, ""), "FORBIDDEN"},
		{"nil", nil, "<nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	cause := errors.New("no rows")
	err := serrors.Wrap(serrors.ErrNotFound, cause, "user 7")

	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrConflict)
}

func TestError_As(t *testing.T) {
	cause := &pathError{path: "recipes/images/x.png"}
	err := serrors.Wrap(serrors.ErrBadRequest, cause, "saving image")

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrBadRequest, k)

	var pe *pathError
	require.ErrorAs(t, err, &pe)
	require.Same(t, cause, pe)
}

func TestError_Accessors(t *testing.T) {
	cause := errors.New("expired")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "invalid token")

	require.Equal(t, serrors.ErrUnauthorized, err.Kind())
	require.Equal(t, "invalid token", err.Message())
	require.Equal(t, cause, errors.Unwrap(err))
}
