package abi

/*
Identifies one Solidity type kind a schema node can describe. Dispatch is a
single switch over this tag; there's no reflection-based type inspection
anywhere in the decoder.
*/
type SchemaKind uint8

const (
	_ SchemaKind = iota
	KindBool
	KindAddress
	KindUint
	KindInt
	KindBytesN
	KindDynamicBytes
	KindUtf8String
	KindStaticArray
	KindDynamicArray
	KindStaticStruct
	KindDynamicStruct
)

func (self SchemaKind) String() string {
	switch self {
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindBytesN:
		return "bytesN"
	case KindDynamicBytes:
		return "bytes"
	case KindUtf8String:
		return "string"
	case KindStaticArray:
		return "staticArray"
	case KindDynamicArray:
		return "dynamicArray"
	case KindStaticStruct:
		return "staticStruct"
	case KindDynamicStruct:
		return "dynamicStruct"
	default:
		return "unknown"
	}
}

/*
A schema node describes one Solidity type, as a tagged variant rather than a
host-language type. Composite nodes carry their children directly, so struct
field lists never need to be rediscovered from anywhere else at decode time.
*/
type Schema struct {
	Kind SchemaKind

	// Bit width for Uint/Int. Must be a multiple of 8 in [8, 256].
	Bits int

	// Byte length for BytesN, or element count for StaticArray.
	Size int

	// Element schema for StaticArray/DynamicArray.
	Elem *Schema

	// Field schemas, in declaration order, for StaticStruct/DynamicStruct.
	Fields []Schema

	// Optional field names, parallel to Fields. Nil if the tuple is unnamed.
	FieldNames []string
}

// A single-bit boolean, encoded as a full word equal to exactly 1 or not.
func Bool() Schema { return Schema{Kind: KindBool} }

// A 20-byte account address, encoded identically to Uint(160).
func Address() Schema { return Schema{Kind: KindAddress} }

// An unsigned integer of the given bit width, which must be a multiple of 8
// in [8, 256].
func Uint(bits int) Schema { return Schema{Kind: KindUint, Bits: bits} }

// A signed two's-complement integer of the given bit width.
func Int(bits int) Schema { return Schema{Kind: KindInt, Bits: bits} }

// A fixed-length byte string of "n" bytes, n in [1, 32], right-padded with
// zeros inside its word.
func BytesN(n int) Schema { return Schema{Kind: KindBytesN, Size: n} }

// A variable-length byte string.
func DynamicBytes() Schema { return Schema{Kind: KindDynamicBytes} }

// A variable-length UTF-8 string.
func Utf8String() Schema { return Schema{Kind: KindUtf8String} }

// A fixed-length array of "n" elements of "elem". Zero-length arrays are
// rejected at decode time with KindInvalidSchema, not here, so that schemas
// built programmatically can be validated uniformly alongside decode errors.
func StaticArray(elem Schema, n int) Schema {
	return Schema{Kind: KindStaticArray, Elem: &elem, Size: n}
}

// A variable-length array of "elem".
func DynamicArray(elem Schema) Schema {
	return Schema{Kind: KindDynamicArray, Elem: &elem}
}

/*
Builds a tuple (Solidity struct) from its field schemas, classifying it as
KindStaticStruct or KindDynamicStruct based on whether any field is dynamic,
transitively. This is the schema-driven replacement for the two separate
struct-discovery paths a reflection-based decoder would otherwise need: field
lists are always authoritative here, so there is only one way to build one.
*/
func Tuple(fields ...Schema) Schema {
	return NamedTuple(nil, fields...)
}

// Like Tuple, but attaches a parallel list of field names for lookup by name.
// Panics if names is non-nil and doesn't match fields in length.
func NamedTuple(names []string, fields ...Schema) Schema {
	if names != nil && len(names) != len(fields) {
		panic("field name count does not match field count")
	}

	kind := KindStaticStruct
	for i := range fields {
		if fields[i].IsDynamic() {
			kind = KindDynamicStruct
			break
		}
	}

	return Schema{Kind: kind, Fields: fields, FieldNames: names}
}

/*
Reports whether this type's encoding requires offset indirection rather than
being packed inline. A StaticArray of dynamic elements is itself dynamic, even
though its own node kind is "static": the array decoder uses this, not the
node kind, to choose between the packed and the offset-indirected layout.
*/
func (self Schema) IsDynamic() bool {
	switch self.Kind {
	case KindDynamicBytes, KindUtf8String, KindDynamicArray, KindDynamicStruct:
		return true
	case KindStaticArray:
		return self.Elem.IsDynamic()
	default:
		return false
	}
}

/*
The number of words a static type occupies. Meaningless for dynamic types,
which always contribute exactly one offset word to their containing tuple's
head region instead; callers must check IsDynamic first.
*/
func (self Schema) WordCount() int {
	switch self.Kind {
	case KindStaticArray:
		return self.Size * self.Elem.WordCount()
	case KindStaticStruct:
		count := 0
		for i := range self.Fields {
			count += self.Fields[i].WordCount()
		}
		return count
	default:
		return 1
	}
}

// Looks up a field's index by name. Reports false if this schema has no
// field names, or the name isn't found.
func (self Schema) FieldIndex(name string) (int, bool) {
	for i, candidate := range self.FieldNames {
		if candidate == name {
			return i, true
		}
	}
	return 0, false
}
