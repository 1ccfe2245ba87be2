package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tabview/record"
)

func TestUsersMatchesJSON(t *testing.T) {
	var decoded []record.Record
	require.NoError(t, json.Unmarshal([]byte(UsersJSON), &decoded))

	users := Users()
	require.Len(t, decoded, len(users))
	for i := range users {
		assert.Equal(t, users[i].Texts(UserFields), decoded[i].Texts(UserFields))
	}
}

func TestUsersStore(t *testing.T) {
	st := UsersStore()
	assert.Equal(t, 7, st.Len())
	assert.Equal(t, record.Schema(UserFields), st.Schema())
}

func TestRandomRecordsDeterministic(t *testing.T) {
	a := RandomRecords(42, 20)
	b := RandomRecords(42, 20)
	assert.Equal(t, IDs(a), IDs(b))
	for i := range a {
		assert.Equal(t, a[i].Get("name").Text(), b[i].Get("name").Text())
	}
}
