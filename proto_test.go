package enumkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestFromProtoEnum(t *testing.T) {
	e := FromProtoEnum(structpb.NullValue(0))

	assert.Equal(t, []string{"NULL_VALUE"}, e.Keys())
	v, ok := e.Get("NULL_VALUE")
	assert.True(t, ok)
	assert.Equal(t, int32(0), v)
}

func TestFromProtoEnum_DeclarationOrder(t *testing.T) {
	e := FromProtoEnum(descriptorpb.FieldDescriptorProto_Type(1))

	require.Greater(t, e.Len(), 1)
	assert.Equal(t, "TYPE_DOUBLE", e.Keys()[0], "first declared value comes first")

	v, ok := e.Get("TYPE_BOOL")
	require.True(t, ok)
	assert.Equal(t, int32(8), v)
}

func TestFromProtoEnum_Lookups(t *testing.T) {
	e := FromProtoEnum(descriptorpb.FieldDescriptorProto_Type(1))

	// Untrusted numeric strings resolve to proto enum names.
	k, ok, err := ToEnumKey(e, "8", WithConvert())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "TYPE_BOOL", k)

	// And names resolve to numbers, case-insensitively if requested.
	v, err := ValueByKey(e, "type_bool", WithIgnoreCase())
	require.NoError(t, err)
	assert.Equal(t, int32(8), v)

	ok, err = IsEnumValue(e, 8, WithConvert())
	require.NoError(t, err)
	assert.True(t, ok)
}
