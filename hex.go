package abi

import "encoding/hex"

/*
Hex-decodes ABI input for the decoder's entry point. The input may carry an
optional "0x"/"0X" prefix, which is stripped; its length, after stripping,
must be a multiple of 64 hex chars (one word). This is the only place in the
package that deals in hex characters: everything past this point operates on
raw byte offsets instead of hex-character offsets, which keeps the rest of
the decoder's arithmetic in terms of the actual byte buffer it's indexing.
*/
func decodeAbiHex(input string) ([]byte, error) {
	raw := input
	if len(raw) >= 2 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'X') {
		raw = raw[2:]
	}

	if len(raw)%64 != 0 {
		return nil, kindErrorf(KindInvalidHex,
			"hex input has %d chars after stripping any 0x prefix, want a multiple of 64", len(raw))
	}

	out := make([]byte, len(raw)/2)
	_, err := hex.Decode(out, []byte(raw))
	if err != nil {
		return nil, kindErrorf(KindInvalidHex, "malformed hex input: %v", err)
	}
	return out, nil
}
