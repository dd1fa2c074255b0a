package metadata

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cineia/internal/dbx"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	return n
}

func TestSQLite_FavoritesRoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "cineia_favorites", []byte(`[3,"featured_movie"]`)))

	v, err := r.Get(ctx, "cineia_favorites")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[3,"featured_movie"]`), v)
}

func TestSQLite_MissingKeyIsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "userBanner")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLite_SetOverwritesAndStamps(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "userIsAdmin", []byte("false")))
	require.NoError(t, r.Set(ctx, "userIsAdmin", []byte("true")))

	v, err := r.Get(ctx, "userIsAdmin")
	require.NoError(t, err)
	assert.Equal(t, []byte("true"), v)
	assert.Equal(t, 1, countRows(t, db))

	var stamped bool
	require.NoError(t, db.QueryRow(`SELECT updated_at IS NOT NULL FROM metadata WHERE key = 'userIsAdmin'`).Scan(&stamped))
	assert.True(t, stamped)
}

func TestSQLite_DeleteSeveralKeys(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	for _, k := range []string{"user", "userIsAdmin", "cineia_favorites", "userBanner"} {
		require.NoError(t, r.Set(ctx, k, []byte("x")))
	}

	require.NoError(t, r.Delete(ctx, "user", "userIsAdmin", "cineia_favorites", "absent"))
	assert.Equal(t, 1, countRows(t, db))

	v, err := r.Get(ctx, "userBanner")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), v, "keys not named survive")

	require.NoError(t, r.Delete(ctx, "user"), "deleting again is fine")
	require.NoError(t, r.Delete(ctx), "no keys is a no-op")
}

func TestSQLite_ErrorsNameTheKey(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "user")
	require.ErrorContains(t, err, `read "user"`)

	err = r.Set(ctx, "user", []byte("v"))
	require.ErrorContains(t, err, `write "user"`)

	err = r.Delete(ctx, "user", "userIsAdmin")
	require.ErrorContains(t, err, `delete ["user" "userIsAdmin"]`)
}

func TestSQLite_WritesJoinTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := NewSQLiteRepository(tx)
		if err := r.Set(ctx, "user", []byte(`{"id":1}`)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, countRows(t, db), "rolled back")

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := NewSQLiteRepository(tx)
		if err := r.Set(ctx, "user", []byte(`{"id":1}`)); err != nil {
			return err
		}
		return r.Set(ctx, "userIsAdmin", []byte("true"))
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countRows(t, db))
}
