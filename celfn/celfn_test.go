package celfn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enumkit/enumkit"
)

func TestNormalizer(t *testing.T) {
	norm, err := Normalizer(`type(value) == string ? value.trim() : value`)
	require.NoError(t, err)

	assert.Equal(t, "blue", norm("  blue  "))
	assert.Equal(t, int64(2), norm(2))
	assert.Nil(t, norm(nil))
}

func TestNormalizer_CompileError(t *testing.T) {
	_, err := Normalizer(`value +`)
	require.Error(t, err)
}

func TestNormalizer_EvalErrorPanics(t *testing.T) {
	norm, err := Normalizer(`value.lowerAscii()`)
	require.NoError(t, err)

	// lowerAscii on an int fails at evaluation time; the hook panics like a
	// failing Go closure would.
	require.Panics(t, func() { norm(5) })
}

func TestNormalizer_WithLookup(t *testing.T) {
	norm, err := Normalizer(`type(value) == string ? value.trim().lowerAscii() : value`)
	require.NoError(t, err)

	statuses := map[string]string{"Open": "open", "Closed": "closed"}
	v, err := enumkit.ToEnumValue(statuses, "  OPEN  ", enumkit.WithNormalize(norm))
	require.NoError(t, err)
	assert.Equal(t, "open", v)
}

func TestConverter(t *testing.T) {
	conv, err := Converter(`type(value) == string ? double(value) * 2.0 : value`)
	require.NoError(t, err)

	v, err := enumkit.ToEnumValue(map[string]int{"Two": 2}, "1",
		enumkit.WithConvert(), enumkit.WithConverter(conv))
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestConverter_FailureYieldsNil(t *testing.T) {
	conv, err := Converter(`double(value)`)
	require.NoError(t, err)

	// double("abc") fails at evaluation time: conversion failure, not panic.
	assert.Nil(t, conv("abc"))
	assert.Nil(t, conv(nil))
}

func TestConverter_NonPrimitiveResultYieldsNil(t *testing.T) {
	conv, err := Converter(`[value]`)
	require.NoError(t, err)

	assert.Nil(t, conv("x"))
}

func TestConverter_CompileError(t *testing.T) {
	_, err := Converter(`]broken`)
	require.Error(t, err)
}
