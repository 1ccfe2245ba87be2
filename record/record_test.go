package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordGetMissingField(t *testing.T) {
	r := Record{"name": String("Jane")}

	assert.True(t, r.Get("email").IsNull())
	assert.Equal(t, "Jane", r.Get("name").Text())

	var nilRecord Record
	assert.True(t, nilRecord.Get("name").IsNull())
}

func TestRecordTexts(t *testing.T) {
	r := Record{"id": Int(2), "name": String("Jane Smith")}
	assert.Equal(t, []string{"2", "Jane Smith", ""}, r.Texts(Schema{"id", "name", "role"}))
}

func TestRecordClone(t *testing.T) {
	r := Record{"id": Int(1)}
	c := r.Clone()
	c["id"] = Int(2)

	assert.Equal(t, int64(1), r["id"].I64)
	assert.Nil(t, Record(nil).Clone())
}

func TestSchema(t *testing.T) {
	s := Schema{"id", "name", "email"}

	assert.True(t, s.Has("name"))
	assert.False(t, s.Has("role"))
	assert.Equal(t, 2, s.Index("email"))
	assert.Equal(t, -1, s.Index("role"))

	assert.Equal(t, Schema{"a", "b"}, SchemaOf(Record{"b": Int(1), "a": Int(2)}))
}

func TestFieldOrder(t *testing.T) {
	s, err := FieldOrder([]byte(`{"id":1,"name":"John","meta":{"x":[1,2]},"status":"Active"}`))
	require.NoError(t, err)
	assert.Equal(t, Schema{"id", "name", "meta", "status"}, s)

	_, err = FieldOrder([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    Value
		wantErr bool
	}{
		{"Nil", nil, Null(), false},
		{"String", "x", String("x"), false},
		{"Int", 3, Int(3), false},
		{"Uint8", uint8(3), Int(3), false},
		{"Float64", 1.5, Float(1.5), false},
		{"Bool", true, Bool(true), false},
		{"JSONNumberInt", json.Number("12"), Int(12), false},
		{"JSONNumberFloat", json.Number("1.25"), Float(1.25), false},
		{"Value", Int(5), Int(5), false},
		{"UintOverflow", ^uint64(0), Value{}, true},
		{"Slice", []int{1}, Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordsFromAny(t *testing.T) {
	rows, err := RecordsFromAny([]map[string]any{
		{"id": 1, "name": "John Doe"},
		{"id": 2, "name": "Jane Smith"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jane Smith", rows[1].Get("name").Text())

	_, err = RecordsFromAny([]map[string]any{{"bad": []string{"x"}}})
	assert.ErrorContains(t, err, "record 0")

	assert.Panics(t, func() { MustRecord(map[string]any{"bad": struct{}{}}) })
}
