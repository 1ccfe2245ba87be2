package testutil

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/tabview/record"
	"github.com/hupe1980/tabview/store"
)

// UserFields is the column order of the users fixture.
var UserFields = []string{"id", "name", "email", "role", "status"}

// UsersJSON is the users fixture as a JSON document.
const UsersJSON = `[
  {"id": 1, "name": "John Doe", "email": "john@example.com", "role": "Admin", "status": "Active"},
  {"id": 2, "name": "Jane Smith", "email": "jane@example.com", "role": "User", "status": "Inactive"},
  {"id": 3, "name": "Alice Johnson", "email": "alice@example.com", "role": "Admin", "status": "Active"},
  {"id": 4, "name": "Charlie Brown", "email": "charlie@example.com", "role": "User", "status": "Inactive"},
  {"id": 5, "name": "David Wilson", "email": "david@example.com", "role": "Admin", "status": "Active"},
  {"id": 6, "name": "Eve Davis", "email": "eve@example.com", "role": "User", "status": "Active"},
  {"id": 7, "name": "Frank Miller", "email": "frank@example.com", "role": "Admin", "status": "Inactive"}
]`

// Users returns the seven-user fixture.
func Users() []record.Record {
	user := func(id int, name, email, role, status string) record.Record {
		return record.Record{
			"id":     record.Int(int64(id)),
			"name":   record.String(name),
			"email":  record.String(email),
			"role":   record.String(role),
			"status": record.String(status),
		}
	}
	return []record.Record{
		user(1, "John Doe", "john@example.com", "Admin", "Active"),
		user(2, "Jane Smith", "jane@example.com", "User", "Inactive"),
		user(3, "Alice Johnson", "alice@example.com", "Admin", "Active"),
		user(4, "Charlie Brown", "charlie@example.com", "User", "Inactive"),
		user(5, "David Wilson", "david@example.com", "Admin", "Active"),
		user(6, "Eve Davis", "eve@example.com", "User", "Active"),
		user(7, "Frank Miller", "frank@example.com", "Admin", "Inactive"),
	}
}

// UsersStore returns a store holding Users in UserFields order.
func UsersStore() *store.Store {
	return store.MustNew(Users(), store.WithSchema(UserFields...))
}

// IDs returns the "id" field of each record as text.
func IDs(recs []record.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Get("id").Text()
	}
	return out
}

// RandomRecords generates n records with a small set of repeating values,
// suitable for property-style tests. The same seed yields the same records.
func RandomRecords(seed int64, n int) []record.Record {
	rng := rand.New(rand.NewSource(seed))
	roles := []string{"Admin", "User", "Guest"}
	statuses := []string{"Active", "Inactive"}

	out := make([]record.Record, n)
	for i := range out {
		out[i] = record.Record{
			"id":     record.Int(int64(i + 1)),
			"name":   record.String(fmt.Sprintf("user-%03d", rng.Intn(n*2+1))),
			"score":  record.Float(float64(rng.Intn(50)) / 2),
			"role":   record.String(roles[rng.Intn(len(roles))]),
			"status": record.String(statuses[rng.Intn(len(statuses))]),
		}
	}
	return out
}
