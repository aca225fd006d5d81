package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cubekit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndGetSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create("UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB", "R U R' U'", 4, SourceExternal)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	solve, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, solve.SolveID)
	assert.Equal(t, "R U R' U'", solve.Solution)
	assert.Equal(t, 4, solve.MoveCount)
	assert.Equal(t, SourceExternal, solve.Source)
	assert.False(t, solve.CreatedAt.IsZero())
}

func TestGetMissingSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	_, err := repo.Get("no-such-id")
	assert.Error(t, err)
}

func TestListSolves(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	for i := 0; i < 3; i++ {
		_, err := repo.Create("UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB", "R2", 1, SourceLayers)
		require.NoError(t, err)
	}

	solves, err := repo.List(2)
	require.NoError(t, err)
	assert.Len(t, solves, 2)

	solves, err = repo.List(10)
	require.NoError(t, err)
	assert.Len(t, solves, 3)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubekit.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not re-apply migrations.
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	var version int
	require.NoError(t, db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version))
	assert.Equal(t, 1, version)
}
