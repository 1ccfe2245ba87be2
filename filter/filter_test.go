package filter

import (
	"testing"

	"github.com/hupe1980/tabview/record"
	"github.com/hupe1980/tabview/store"
	"github.com/stretchr/testify/assert"
)

func users() []record.Record {
	return []record.Record{
		{"id": record.Int(1), "role": record.String("Admin"), "status": record.String("Active")},
		{"id": record.Int(2), "role": record.String("User"), "status": record.String("Inactive")},
		{"id": record.Int(3), "role": record.String("Admin"), "status": record.String("Active")},
		{"id": record.Int(4), "role": record.String("User"), "status": record.String("Inactive")},
		{"id": record.Int(5), "role": record.String("Admin"), "status": record.String("Active")},
		{"id": record.Int(6), "role": record.String("User"), "status": record.String("Active")},
		{"id": record.Int(7), "role": record.String("Admin"), "status": record.String("Inactive")},
	}
}

func TestSetMatches(t *testing.T) {
	rec := record.Record{"id": record.Int(1), "role": record.String("Admin")}

	tests := []struct {
		name string
		set  Set
		want bool
	}{
		{"Nil", nil, true},
		{"EmptyConstraint", Set{"role": record.String("")}, true},
		{"NullConstraint", Set{"role": record.Null()}, true},
		{"Equal", Set{"role": record.String("Admin")}, true},
		{"CaseSensitive", Set{"role": record.String("admin")}, false},
		{"CoercedNumber", Set{"id": record.String("1")}, true},
		{"MissingField", Set{"status": record.String("Active")}, false},
		{"AndSemantics", Set{"role": record.String("Admin"), "id": record.Int(2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Matches(rec))
		})
	}
}

func TestSetWith(t *testing.T) {
	var s Set
	s = s.With("role", record.String("Admin"))
	assert.Equal(t, 1, s.Len())

	s2 := s.With("status", record.String("Active"))
	assert.Equal(t, 1, s.Len(), "With must not modify the receiver")
	assert.Equal(t, 2, s2.Len())

	s3 := s2.With("role", record.String(""))
	assert.Equal(t, map[string]string{"status": "Active"}, s3.Active())
}

func TestRows(t *testing.T) {
	st := store.MustNew(users(), store.WithSchema("id", "role", "status"))

	assert.Len(t, Rows(st, nil), 7)
	assert.Equal(t, []int{0, 2, 4, 6}, Rows(st, Set{"role": record.String("Admin")}))
	assert.Equal(t, []int{6}, Rows(st, Set{"role": record.String("Admin"), "status": record.String("Inactive")}))
	assert.Empty(t, Rows(st, Set{"role": record.String("Guest")}))
}

func TestRowsResidual(t *testing.T) {
	st := store.MustNew(users(), store.WithSchema("id", "role", "status"), store.WithIndexedFields("role"))

	// status is not indexed and is checked per record.
	assert.Equal(t, []int{1, 3}, Rows(st, Set{"role": record.String("User"), "status": record.String("Inactive")}))
	assert.Equal(t, []int{0, 2, 4, 5}, Rows(st, Set{"status": record.String("Active")}))
}

func TestRowsAgreesWithMatches(t *testing.T) {
	indexed := store.MustNew(users(), store.WithSchema("id", "role", "status"))
	partial := store.MustNew(users(), store.WithSchema("id", "role", "status"), store.WithIndexedFields("status"))

	sets := []Set{
		nil,
		{"role": record.String("User")},
		{"status": record.String("Active"), "role": record.String("User")},
		{"id": record.Int(4)},
		{"id": record.String("9")},
	}

	for _, st := range []*store.Store{indexed, partial} {
		for _, s := range sets {
			var want []int
			for i, rec := range st.All() {
				if s.Matches(rec) {
					want = append(want, i)
				}
			}
			got := Rows(st, s)
			if want == nil {
				assert.Empty(t, got, "set %v", s)
				continue
			}
			assert.Equal(t, want, got, "set %v", s)
		}
	}
}

func TestMonotonicity(t *testing.T) {
	st := store.MustNew(users(), store.WithSchema("id", "role", "status"))

	s := Set{}
	prev := len(Rows(st, s))
	assert.LessOrEqual(t, prev, st.Len())

	for _, c := range []struct{ f, v string }{{"role", "Admin"}, {"status", "Active"}, {"id", "3"}} {
		s = s.With(c.f, record.String(c.v))
		n := len(Rows(st, s))
		assert.LessOrEqual(t, n, prev)
		prev = n
	}
	assert.Equal(t, 1, prev)
}
