package abi

/*
Decodes a fixed-length array. If the element type is dynamic (including a
StaticArray of dynamic elements, per Schema.IsDynamic), each slot in the
array's own region is a head offset, resolved relative to the array's start,
with no synthetic length prefix anywhere. If the element type is static, the
elements are packed contiguously and the cursor advances by the element's
word count each time.
*/
func (self Decoder) decodeStaticArray(input []byte, offset int, schema Schema, depth int) (Value, error) {
	n := schema.Size
	if n <= 0 {
		return Value{}, kindErrorf(KindInvalidSchema, "static array length must be positive, got %d", n)
	}

	elem := *schema.Elem
	items := make([]Value, n)

	if elem.IsDynamic() {
		for i := 0; i < n; i++ {
			target, err := resolveOffset(input, offset, offset+i*32)
			if err != nil {
				return Value{}, err
			}
			val, err := self.decode(input, target, elem, depth-1)
			if err != nil {
				return Value{}, err
			}
			items[i] = val
		}
	} else {
		wordCount := elem.WordCount()
		cursor := offset
		for i := 0; i < n; i++ {
			val, err := self.decode(input, cursor, elem, depth-1)
			if err != nil {
				return Value{}, err
			}
			items[i] = val
			cursor += wordCount * 32
		}
	}

	return Value{Schema: schema, Items: items}, nil
}

/*
Decodes a variable-length array: a length word, then the same head/tail
layout decodeStaticArray uses, applied to a payload region starting one word
past the length. Dynamic elements get a run of head-offset words, resolved
relative to the payload region's start, followed by their tails; static
elements are packed contiguously.
*/
func (self Decoder) decodeDynamicArray(input []byte, offset int, schema Schema, depth int) (Value, error) {
	word, err := wordAt(input, offset)
	if err != nil {
		return Value{}, err
	}

	length, err := asUsize(word.AsUint(256))
	if err != nil {
		return Value{}, err
	}

	payloadOffset := offset + 32
	elem := *schema.Elem
	items := make([]Value, length)

	if elem.IsDynamic() {
		if headsEnd := payloadOffset + length*32; headsEnd < payloadOffset || headsEnd > len(input) {
			return Value{}, kindErrorf(KindLengthOverflow,
				"array of %d dynamic elements needs %d head bytes at %d, input has %d bytes",
				length, length*32, payloadOffset, len(input))
		}

		for i := 0; i < length; i++ {
			target, err := resolveOffset(input, payloadOffset, payloadOffset+i*32)
			if err != nil {
				return Value{}, err
			}
			val, err := self.decode(input, target, elem, depth-1)
			if err != nil {
				return Value{}, err
			}
			items[i] = val
		}
	} else {
		wordCount := elem.WordCount()
		needed := length * wordCount * 32
		if end := payloadOffset + needed; end < payloadOffset || end > len(input) {
			return Value{}, kindErrorf(KindLengthOverflow,
				"array of %d elements needs %d bytes at %d, input has %d bytes",
				length, needed, payloadOffset, len(input))
		}

		cursor := payloadOffset
		for i := 0; i < length; i++ {
			val, err := self.decode(input, cursor, elem, depth-1)
			if err != nil {
				return Value{}, err
			}
			items[i] = val
			cursor += wordCount * 32
		}
	}

	return Value{Schema: schema, Items: items}, nil
}
