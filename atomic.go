package abi

import (
	"strings"
	"unicode/utf8"
)

// A word decodes to true only when it's exactly equal to 1; any other value,
// including other nonzero values, decodes to false. This preserves the
// non-strict behavior of the decoder this package was learned from rather
// than the arguably-cleaner "nonzero is true" reading.
func (self Decoder) decodeBool(input []byte, offset int, schema Schema) (Value, error) {
	word, err := wordAt(input, offset)
	if err != nil {
		return Value{}, err
	}
	return Value{Schema: schema, Bool: word.AsUint(256).Cmp(bigOne) == 0}, nil
}

// An address is a uint160, stored both as a big integer and as its 20 raw
// bytes for convenient display.
func (self Decoder) decodeAddress(input []byte, offset int, schema Schema) (Value, error) {
	word, err := wordAt(input, offset)
	if err != nil {
		return Value{}, err
	}
	return Value{Schema: schema, Int: word.AsUint(160), Bytes: append([]byte(nil), word[12:]...)}, nil
}

func (self Decoder) decodeUint(input []byte, offset int, schema Schema) (Value, error) {
	if err := checkIntWidth(schema.Bits); err != nil {
		return Value{}, err
	}
	word, err := wordAt(input, offset)
	if err != nil {
		return Value{}, err
	}
	return Value{Schema: schema, Int: word.AsUint(schema.Bits)}, nil
}

func (self Decoder) decodeInt(input []byte, offset int, schema Schema) (Value, error) {
	if err := checkIntWidth(schema.Bits); err != nil {
		return Value{}, err
	}
	word, err := wordAt(input, offset)
	if err != nil {
		return Value{}, err
	}
	return Value{Schema: schema, Int: word.AsInt(schema.Bits)}, nil
}

func checkIntWidth(bits int) error {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return kindErrorf(KindInvalidSchema, "invalid integer width %d: must be a multiple of 8 in [8, 256]", bits)
	}
	return nil
}

// The first "n" bytes of the word; the remaining 32-n bytes are padding and
// are ignored regardless of their content.
func (self Decoder) decodeBytesN(input []byte, offset int, schema Schema) (Value, error) {
	if schema.Size < 1 || schema.Size > 32 {
		return Value{}, kindErrorf(KindInvalidSchema, "invalid fixed byte array length %d: must be in [1, 32]", schema.Size)
	}
	word, err := wordAt(input, offset)
	if err != nil {
		return Value{}, err
	}
	return Value{Schema: schema, Bytes: append([]byte(nil), word[:schema.Size]...)}, nil
}

/*
Reads a length word, then the ⌈length/32⌉ words that follow, returning the
first "length" bytes. The length is pre-checked against the remaining input
before any allocation, so a bogus declared length fails cleanly instead of
driving a huge allocation.
*/
func (self Decoder) decodeDynamicBytes(input []byte, offset int, schema Schema) (Value, error) {
	raw, err := readDynamicBytes(input, offset)
	if err != nil {
		return Value{}, err
	}
	return Value{Schema: schema, Bytes: raw}, nil
}

// As DynamicBytes, then decoded as UTF-8. Lenient by default (malformed
// sequences are replaced), matching the source; strict mode is opt-in via
// Decoder.StrictUtf8 and fails closed with KindInvalidUtf8.
func (self Decoder) decodeUtf8String(input []byte, offset int, schema Schema) (Value, error) {
	raw, err := readDynamicBytes(input, offset)
	if err != nil {
		return Value{}, err
	}

	if self.StrictUtf8 {
		if !utf8.Valid(raw) {
			return Value{}, kindErrorf(KindInvalidUtf8, "string field contains malformed UTF-8")
		}
		return Value{Schema: schema, Str: string(raw)}, nil
	}

	return Value{Schema: schema, Str: strings.ToValidUTF8(string(raw), "�")}, nil
}

func readDynamicBytes(input []byte, offset int) ([]byte, error) {
	word, err := wordAt(input, offset)
	if err != nil {
		return nil, err
	}

	length, err := asUsize(word.AsUint(256))
	if err != nil {
		return nil, err
	}

	dataOffset := offset + 32
	wordsNeeded := (length + 31) / 32
	end := dataOffset + wordsNeeded*32
	if end < dataOffset || end > len(input) {
		return nil, kindErrorf(KindLengthOverflow,
			"declared length %d needs %d bytes starting at %d, input has %d bytes",
			length, wordsNeeded*32, dataOffset, len(input))
	}

	return append([]byte(nil), input[dataOffset:dataOffset+length]...), nil
}

