package source

import (
	"context"
	"database/sql"
	"testing"

	"github.com/hupe1980/tabview/record"
	"github.com/hupe1980/tabview/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openUsersDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Every connection of an in-memory database is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE users (id INTEGER, name TEXT, email TEXT, role TEXT, status TEXT, score REAL)`)
	require.NoError(t, err)

	for _, u := range testutil.Users() {
		_, err := db.Exec(`INSERT INTO users VALUES (?, ?, ?, ?, ?, NULL)`,
			u.Get("id").I64, u.Get("name").Text(), u.Get("email").Text(), u.Get("role").Text(), u.Get("status").Text())
		require.NoError(t, err)
	}
	return db
}

func TestSQL(t *testing.T) {
	db := openUsersDB(t)

	st, err := Open(context.Background(), NewSQL(db, `SELECT id, name, role, status, score FROM users ORDER BY id`))
	require.NoError(t, err)

	assert.Equal(t, 7, st.Len())
	assert.Equal(t, record.Schema{"id", "name", "role", "status", "score"}, st.Schema())
	assert.Equal(t, record.Int(1), st.At(0).Get("id"))
	assert.Equal(t, "John Doe", st.At(0).Get("name").Text())
	assert.True(t, st.At(0).Get("score").IsNull())
	assert.Equal(t, []record.Value{record.String("Admin"), record.String("User")}, st.DistinctValues("role"))
}

func TestSQLArgs(t *testing.T) {
	db := openUsersDB(t)

	tbl, err := NewSQL(db, `SELECT id FROM users WHERE role = ? ORDER BY id`, "User").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4", "6"}, testutil.IDs(tbl.Records))
}

func TestSQLError(t *testing.T) {
	db := openUsersDB(t)

	_, err := NewSQL(db, `SELECT * FROM missing`).WithTimeout(0).Load(context.Background())
	assert.Error(t, err)
}
