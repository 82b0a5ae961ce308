package enumkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnum_SetGetDelete(t *testing.T) {
	e := New()

	require.NoError(t, e.Set("Red", "#ff0000"))
	require.NoError(t, e.Set("Blue", "#0000ff"))
	assert.Equal(t, 2, e.Len())

	v, ok := e.Get("Red")
	assert.True(t, ok)
	assert.Equal(t, "#ff0000", v)

	_, ok = e.Get("Green")
	assert.False(t, ok)

	e.Delete("Red")
	assert.Equal(t, 1, e.Len())
	assert.Equal(t, []string{"Blue"}, e.Keys())

	e.Delete("Gone") // no-op
	assert.Equal(t, 1, e.Len())
}

func TestEnum_SetRejectsInvalidValues(t *testing.T) {
	e := New()

	err := e.Set("A", true)
	require.ErrorIs(t, err, ErrInvalidValue)

	err = e.Set("A", []string{"x"})
	require.ErrorIs(t, err, ErrInvalidValue)

	err = e.Set("A", nil)
	require.ErrorIs(t, err, ErrInvalidValue)

	assert.Equal(t, 0, e.Len(), "failed Set leaves the enum untouched")
}

func TestEnum_ReplaceKeepsPosition(t *testing.T) {
	e := New()
	require.NoError(t, e.Set("A", 1))
	require.NoError(t, e.Set("B", 2))
	require.NoError(t, e.Set("A", 10))

	assert.Equal(t, []string{"A", "B"}, e.Keys())
	v, _ := e.Get("A")
	assert.Equal(t, 10, v)
}

func TestEnum_KeysValuesOrder(t *testing.T) {
	e := New()
	require.NoError(t, e.Set("z", 26))
	require.NoError(t, e.Set("a", 1))
	require.NoError(t, e.Set("m", 13))

	assert.Equal(t, []string{"z", "a", "m"}, e.Keys())
	assert.Equal(t, []any{26, 1, 13}, e.Values())
}

func TestFromMap(t *testing.T) {
	e := FromMap(map[string]int{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, e.Keys(), "plain maps insert in sorted order")

	type level string
	derived := FromMap(map[string]level{"Low": "low"})
	v, ok := derived.Get("Low")
	assert.True(t, ok)
	assert.Equal(t, level("low"), v)
}

func TestFromPairs(t *testing.T) {
	e, err := FromPairs(Pair{Key: "One", Value: 1}, Pair{Key: "Two", Value: "2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two"}, e.Keys())

	_, err = FromPairs(Pair{Key: "Bad", Value: true})
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestEnum_JSONRoundTrip(t *testing.T) {
	in := []byte(`{"Red":"#ff0000","Blue":"#0000ff","Weight":2}`)

	var e Enum
	require.NoError(t, json.Unmarshal(in, &e))

	assert.Equal(t, []string{"Red", "Blue", "Weight"}, e.Keys(), "document order preserved")
	v, _ := e.Get("Weight")
	assert.Equal(t, 2.0, v, "JSON numbers decode as float64")

	out, err := json.Marshal(&e)
	require.NoError(t, err)
	assert.JSONEq(t, string(in), string(out))
	assert.Equal(t, string(in), string(out), "marshal keeps insertion order")
}

func TestEnum_JSONInvalid(t *testing.T) {
	var e Enum

	err := json.Unmarshal([]byte(`{"A":true}`), &e)
	require.ErrorIs(t, err, ErrInvalidValue)

	err = json.Unmarshal([]byte(`{"A":{"nested":1}}`), &e)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`["A"]`), &e)
	require.Error(t, err)
}

func TestEnum_YAMLRoundTrip(t *testing.T) {
	in := "Red: '#ff0000'\nBlue: '#0000ff'\nWeight: 2\nRatio: 0.5\n"

	var e Enum
	require.NoError(t, yaml.Unmarshal([]byte(in), &e))

	assert.Equal(t, []string{"Red", "Blue", "Weight", "Ratio"}, e.Keys())

	w, _ := e.Get("Weight")
	assert.Equal(t, int64(2), w, "YAML integers decode as int64")
	r, _ := e.Get("Ratio")
	assert.Equal(t, 0.5, r)

	out, err := yaml.Marshal(&e)
	require.NoError(t, err)

	var back Enum
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, e.Keys(), back.Keys(), "round trip keeps order")
}

func TestEnum_YAMLInvalid(t *testing.T) {
	var e Enum

	err := yaml.Unmarshal([]byte("A: true\n"), &e)
	require.ErrorIs(t, err, ErrInvalidValue)

	err = yaml.Unmarshal([]byte("- a\n- b\n"), &e)
	require.Error(t, err)
}

func TestEnum_WorksWithLookups(t *testing.T) {
	var e Enum
	require.NoError(t, yaml.Unmarshal([]byte("Low: 1\nMedium: 2\nHigh: 3\n"), &e))

	v, err := ToEnumValue(&e, "2", WithConvert())
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	// The value-type Enum works too.
	k, ok, err := KeyByValue(e, int64(3))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "High", k)
}
