package abi

import "math/big"

/*
A decoded value. Its shape mirrors the Schema it was decoded against: exactly
one of the payload fields is meaningful for any given Schema.Kind, selected
the same way the schema itself is, by tag rather than by host type.
*/
type Value struct {
	Schema Schema

	// Bool, Address, Uint, Int.
	Bool bool
	Int  *big.Int

	// Address (20 bytes), BytesN (N bytes, N<=32), DynamicBytes.
	Bytes []byte

	// Utf8String.
	Str string

	// StaticArray, DynamicArray, StaticStruct, DynamicStruct, in order.
	Items []Value
}

// Looks up a struct field by name, per the originating schema's FieldNames.
// Reports false if the schema has no such field name.
func (self Value) Field(name string) (Value, bool) {
	idx, ok := self.Schema.FieldIndex(name)
	if !ok || idx >= len(self.Items) {
		return Value{}, false
	}
	return self.Items[idx], true
}
