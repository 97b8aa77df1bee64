package abi

/*
A default recursion guard, in schema-nesting levels, applied when a Decoder's
MaxDepth is left at its zero value. Protects the call stack against
pathologically nested schemas; see Decoder.MaxDepth.
*/
const DefaultMaxDepth = 32

/*
Decodes ABI-encoded data against a schema. The zero value is ready to use,
with MaxDepth defaulting to DefaultMaxDepth. Decoder is stateless and safe for
concurrent use: every method is a pure function of its arguments.
*/
type Decoder struct {
	// Maximum schema nesting depth. Zero means DefaultMaxDepth.
	MaxDepth int

	// When set, Utf8String fails with KindInvalidUtf8 on malformed
	// sequences instead of the default lenient replacement.
	StrictUtf8 bool
}

// Decodes "input" (raw bytes, not hex) against "schema", starting at byte 0.
func (self Decoder) Decode(input []byte, schema Schema) (Value, error) {
	maxDepth := self.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return self.decode(input, 0, schema, maxDepth)
}

// Hex-decodes "input" (optionally "0x"-prefixed) and decodes it against
// "schema". Convenience wrapper around Decode for the common case where the
// caller has a hex string rather than raw bytes.
func (self Decoder) DecodeHex(input string, schema Schema) (Value, error) {
	raw, err := decodeAbiHex(input)
	if err != nil {
		return Value{}, err
	}
	return self.Decode(raw, schema)
}

// Shorthand for Decoder{}.DecodeHex.
func DecodeHex(input string, schema Schema) (Value, error) {
	return Decoder{}.DecodeHex(input, schema)
}

/*
The single dispatch point: every recursive call, whether from an array or a
struct decoder, re-enters here. Schema.Kind alone decides the layout; there is
no inspection of any host type.
*/
func (self Decoder) decode(input []byte, offset int, schema Schema, depth int) (Value, error) {
	if depth <= 0 {
		return Value{}, kindErrorf(KindInvalidSchema, "schema nesting exceeds the maximum depth")
	}

	switch schema.Kind {
	case KindBool:
		return self.decodeBool(input, offset, schema)
	case KindAddress:
		return self.decodeAddress(input, offset, schema)
	case KindUint:
		return self.decodeUint(input, offset, schema)
	case KindInt:
		return self.decodeInt(input, offset, schema)
	case KindBytesN:
		return self.decodeBytesN(input, offset, schema)
	case KindDynamicBytes:
		return self.decodeDynamicBytes(input, offset, schema)
	case KindUtf8String:
		return self.decodeUtf8String(input, offset, schema)
	case KindStaticArray:
		return self.decodeStaticArray(input, offset, schema, depth)
	case KindDynamicArray:
		return self.decodeDynamicArray(input, offset, schema, depth)
	case KindStaticStruct:
		return self.decodeStaticStruct(input, offset, schema, depth)
	case KindDynamicStruct:
		return self.decodeDynamicStruct(input, offset, schema, depth)
	default:
		return Value{}, kindErrorf(KindUnsupported, "unsupported schema kind %v", schema.Kind)
	}
}

/*
Resolves a head word at "headOffset" as an offset relative to "base", bounds
checking the result against the input length. Shared by the array and struct
decoders so that every offset indirection in the engine fails closed the same
way rather than leaving an out-of-range offset to surface later as a
confusing error.
*/
func resolveOffset(input []byte, base int, headOffset int) (int, error) {
	delta, err := offsetAt(input, headOffset)
	if err != nil {
		return 0, err
	}

	target := base + delta
	if target < base || target > len(input) {
		return 0, kindErrorf(KindOffsetOutOfRange,
			"offset %d (base %d + delta %d) is out of range for input of %d bytes",
			target, base, delta, len(input))
	}
	return target, nil
}
