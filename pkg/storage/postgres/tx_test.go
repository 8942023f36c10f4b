package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
	"foodgram/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func tagSlugs(t *testing.T, s storage.AllStorage) []string {
	t.Helper()
	tags, err := s.Tags(context.Background())
	require.NoError(t, err)

	slugs := make([]string, 0, len(tags))
	for _, tag := range tags {
		slugs = append(slugs, tag.Slug)
	}

	return slugs
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreTags(ctx, domain.Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"})
	require.NoError(t, err)
	require.Empty(t, tagSlugs(t, pg))

	require.NoError(t, txStorage.Commit())
	require.Equal(t, []string{"breakfast"}, tagSlugs(t, pg))
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreTags(ctx, domain.Tag{Name: "Lunch", Color: "#49B64E", Slug: "lunch"})
	require.NoError(t, err)
	require.Equal(t, []string{"lunch"}, tagSlugs(t, txStorage))

	require.NoError(t, txStorage.Rollback())
	require.Empty(t, tagSlugs(t, pg))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreTags(ctx, domain.Tag{Name: "Dinner", Color: "#8775D2", Slug: "dinner"})

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, []string{"dinner"}, tagSlugs(t, pg))

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreTags(ctx, domain.Tag{Name: "Snack", Color: "#FFFFFF", Slug: "snack"})

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, []string{"dinner"}, tagSlugs(t, pg))
}

func TestPgSQL_Ping(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, pg.Ping(ctx))

	require.NoError(t, pg.WithTx(ctx, func(s storage.AllStorage) error {
		return s.(*postgres.PgSQL).Ping(ctx)
	}))
}
