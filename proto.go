package enumkit

import (
	"google.golang.org/protobuf/reflect/protoreflect"
)

// FromProtoEnum builds an Enum from a Protocol Buffer enum, mapping value
// names to their numbers in declaration order. Any value of a generated enum
// type works:
//
//	e := enumkit.FromProtoEnum(pb.ScanType(0))
//	key, ok, err := enumkit.ToEnumKey(e, input, enumkit.WithConvert())
//
// Proto enum numbers are stored as int32, matching the generated Go types.
func FromProtoEnum(pe protoreflect.Enum) *Enum {
	values := pe.Descriptor().Values()
	e := New()
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		e.put(string(v.Name()), int32(v.Number()))
	}
	return e
}
