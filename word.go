package abi

import "math/big"

/*
The ABI's atomic cell: 32 bytes of arbitrary content. Every static value, and
every offset pointer, occupies whole words. Mirrors the "Word" type the
retrieval pack's RPC-facing code uses for hashes and topics, except here it's
purely an internal decoding primitive with no text/JSON encoding of its own.
*/
type Word [32]byte

var bigOne = big.NewInt(1)

const maxHostInt = int(^uint(0) >> 1)

/*
Reads the word starting at the given byte offset. Fails with
"KindTruncatedInput" if the input doesn't have a full word there.
*/
func wordAt(input []byte, offset int) (Word, error) {
	if offset < 0 || offset+32 > len(input) {
		return Word{}, kindErrorf(KindTruncatedInput,
			"need a word at byte offset %d, input has %d bytes", offset, len(input))
	}
	var out Word
	copy(out[:], input[offset:offset+32])
	return out, nil
}

/*
Interprets the rightmost "bits/8" bytes of the word as a big-endian unsigned
integer, ignoring any high-order padding. "bits" must be a multiple of 8 in
the inclusive range [8, 256]; it isn't checked here, so callers validate it
first (decodeUint and decodeInt do so via checkIntWidth).
*/
func (self Word) AsUint(bits int) *big.Int {
	return new(big.Int).SetBytes(self[32-bits/8:])
}

/*
Interprets the rightmost "bits/8" bytes of the word as a big-endian two's
complement signed integer. The sign bit is the most significant bit of that
slice, not of the full word.
*/
func (self Word) AsInt(bits int) *big.Int {
	nbytes := bits / 8
	raw := self[32-nbytes:]

	out := new(big.Int).SetBytes(raw)
	if nbytes > 0 && raw[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(bigOne, uint(bits))
		out.Sub(out, mod)
	}
	return out
}

/*
Narrows a decoded length or offset to a host "int", failing with
"KindLengthOverflow" if it's negative or doesn't fit. This is the single
choke point protecting every allocation driven by untrusted input.
*/
func asUsize(val *big.Int) (int, error) {
	if val.Sign() < 0 {
		return 0, kindErrorf(KindLengthOverflow, "length or offset %v is negative", val)
	}
	if !val.IsUint64() || val.Uint64() > uint64(maxHostInt) {
		return 0, kindErrorf(KindLengthOverflow, "length or offset %v does not fit host addressing", val)
	}
	return int(val.Uint64()), nil
}
