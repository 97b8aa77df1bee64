package abi

/*
Returns, in words, how much space the value at "offset" would consume if
packed contiguously rather than referenced by an offset. For DynamicBytes and
Utf8String this depends on the data itself (the length word plus
⌈length/32⌉ payload words); for StaticStruct it's the recursive flattened
field count; for everything else it's 1.

The array/struct decoders in this package never pack a dynamic element
contiguously; dynamic elements always get head offsets instead, and the
static decoders advance their cursors by Schema.WordCount, so no decode path
calls this function. It is exercised directly in tests.
*/
func (self Decoder) singleElementLength(input []byte, offset int, schema Schema) (int, error) {
	switch schema.Kind {
	case KindDynamicBytes, KindUtf8String:
		word, err := wordAt(input, offset)
		if err != nil {
			return 0, err
		}
		length, err := asUsize(word.AsUint(256))
		if err != nil {
			return 0, err
		}
		return (length+31)/32 + 1, nil

	case KindStaticStruct:
		total := 0
		cursor := offset
		for i := range schema.Fields {
			n, err := self.singleElementLength(input, cursor, schema.Fields[i])
			if err != nil {
				return 0, err
			}
			total += n
			cursor += n * 32
		}
		return total, nil

	default:
		return 1, nil
	}
}

/*
Returns the byte offset stored in the head word at "headOffset", relative to
nothing in particular (the caller adds its own base) when "schema" is
dynamic; returns 0 for a static schema, which has no head offset to read.
Lets array decoders locate payloads uniformly regardless of element kind.
*/
func getDataOffset(input []byte, headOffset int, schema Schema) (int, error) {
	if !schema.IsDynamic() {
		return 0, nil
	}
	return offsetAt(input, headOffset)
}

// Reads the word at "headOffset" and narrows it to a host offset value.
func offsetAt(input []byte, headOffset int) (int, error) {
	word, err := wordAt(input, headOffset)
	if err != nil {
		return 0, err
	}
	return asUsize(word.AsUint(256))
}
