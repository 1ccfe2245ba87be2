package record

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueText(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"Null", Null(), ""},
		{"Zero", Value{}, ""},
		{"Int", Int(42), "42"},
		{"NegativeInt", Int(-7), "-7"},
		{"IntegralFloat", Float(3), "3"},
		{"Float", Float(2.5), "2.5"},
		{"NaN", Float(math.NaN()), "NaN"},
		{"String", String("John Doe"), "John Doe"},
		{"True", Bool(true), "true"},
		{"False", Bool(false), "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Text())
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestValueAccessors(t *testing.T) {
	s, ok := String("a").AsString()
	assert.True(t, ok)
	assert.Equal(t, "a", s)

	_, ok = Int(1).AsString()
	assert.False(t, ok)

	i, ok := Int(9).AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(9), i)

	f, ok := Int(9).AsFloat64()
	assert.True(t, ok)
	assert.Equal(t, 9.0, f)

	_, ok = String("9").AsFloat64()
	assert.False(t, ok)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	assert.True(t, Null().IsEmpty())
	assert.True(t, String("").IsEmpty())
	assert.False(t, Int(0).IsEmpty())
	assert.True(t, Float(1).IsNumber())
	assert.False(t, String("1").IsNumber())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"SameString", String("Admin"), String("Admin"), true},
		{"CaseSensitive", String("Admin"), String("admin"), false},
		{"IntAndFloat", Int(1), Float(1), true},
		{"IntAndString", Int(1), String("1"), true},
		{"NullNull", Null(), Null(), true},
		{"NullEmptyString", Null(), String(""), false},
		{"BoolAndString", Bool(true), String("true"), true},
		{"Different", Int(1), Int(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestValueJSON(t *testing.T) {
	b, err := json.Marshal(Record{"id": Int(1), "name": String("Eve"), "x": Null()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Eve","x":null}`, string(b))

	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"ok":true,"name":"Frank"}`), &r))
	assert.Equal(t, "7", r.Get("id").Text())
	assert.Equal(t, KindBool, r.Get("ok").Kind)
	assert.Equal(t, "Frank", r.Get("name").Text())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
