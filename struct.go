package abi

// All fields are static: decode them left to right at an advancing cursor.
// Nested static structs recurse at the same cursor, so their field words are
// flattened into the enclosing layout rather than introducing a boundary.
func (self Decoder) decodeStaticStruct(input []byte, offset int, schema Schema, depth int) (Value, error) {
	items := make([]Value, len(schema.Fields))
	cursor := offset

	for i := range schema.Fields {
		field := schema.Fields[i]
		val, err := self.decode(input, cursor, field, depth-1)
		if err != nil {
			return Value{}, err
		}
		items[i] = val
		cursor += field.WordCount() * 32
	}

	return Value{Schema: schema, Items: items}, nil
}

/*
A two-pass algorithm for structs that mix static and dynamic fields.

Pass 1 walks the fields left to right. Static fields (including nested static
structs) decode inline at the cursor, which advances by their word count.
Dynamic fields instead contribute one head word, an offset resolved relative
to the struct's own start; decoding is deferred and the resolved offset is
recorded. Offsets must land inside the input and strictly increase over the
previous dynamic field's offset, failing with OffsetOutOfRange otherwise:
failing closed here catches a malformed or adversarial layout before any
tail gets decoded against the wrong boundaries.

Pass 2 resolves each deferred field's tail: it runs from its recorded offset
up to the next dynamic field's offset, or to the end of the input for the
last one. That boundary rule, not any self-declared total length, is what
makes this work without an authoritative outer length.
*/
func (self Decoder) decodeDynamicStruct(input []byte, offset int, schema Schema, depth int) (Value, error) {
	type pending struct {
		index  int
		field  Schema
		target int
	}

	items := make([]Value, len(schema.Fields))
	var deferred []pending
	cursor := offset

	for i := range schema.Fields {
		field := schema.Fields[i]

		if field.IsDynamic() {
			target, err := resolveOffset(input, offset, cursor)
			if err != nil {
				return Value{}, err
			}
			if len(deferred) > 0 && target <= deferred[len(deferred)-1].target {
				return Value{}, kindErrorf(KindOffsetOutOfRange,
					"dynamic field %d offset %d does not strictly increase over previous field offset %d",
					i, target, deferred[len(deferred)-1].target)
			}
			deferred = append(deferred, pending{index: i, field: field, target: target})
			cursor += 32
			continue
		}

		val, err := self.decode(input, cursor, field, depth-1)
		if err != nil {
			return Value{}, err
		}
		items[i] = val
		cursor += field.WordCount() * 32
	}

	for i, def := range deferred {
		end := len(input)
		if i+1 < len(deferred) {
			end = deferred[i+1].target
		}

		val, err := self.decode(input[:end], def.target, def.field, depth-1)
		if err != nil {
			return Value{}, err
		}
		items[def.index] = val
	}

	return Value{Schema: schema, Items: items}, nil
}
