package rpctrans

import (
	"encoding/hex"
	"unsafe"

	"github.com/pkg/errors"
)

/*
Similar to "hex.Encode" from "encoding/hex". Writes a hex-encoded string
representing the input into the output buffer, prepending "0x". Requires the
input and output sizes to match exactly: the output size must be
"hexEncodedLen(len(input))".
*/
func hexEncodeTo(output []byte, input []byte) error {
	if hexEncodedLen(len(input)) != len(output) {
		return errors.Errorf("hex-encoded output has %d bytes, have space for %d",
			hexEncodedLen(len(input)), len(output))
	}
	output[0] = '0'
	output[1] = 'x'
	hex.Encode(output[2:], input)
	return nil
}

// Version of "hexEncodeTo" that always allocates the output.
func hexEncode(input []byte) []byte {
	out := make([]byte, hexEncodedLen(len(input)))
	err := hexEncodeTo(out, input)
	if err != nil {
		panic(err)
	}
	return out
}

/*
Similar to "hex.Decode" from "encoding/hex". Hex-decodes the input, dropping
the mandatory "0x" prefix, and writes it to the output. Requires the input and
output sizes to match exactly: the output size must be
"hexDecodedLen(len(input))". Empty or nil input is ok.
*/
func hexDecodeTo(output []byte, input []byte) error {
	raw, err := drop0x(input)
	if err != nil {
		return err
	}
	if hexDecodedLen(len(input)) != len(output) {
		return errors.Errorf("hex input %s has %d bytes, want %d",
			input, hexDecodedLen(len(input)), len(output))
	}
	_, err = hex.Decode(output, raw)
	return errors.WithStack(err)
}

// Version of "hexDecodeTo" that always allocates the output.
func hexDecode(input []byte) ([]byte, error) {
	output := make([]byte, hexDecodedLen(len(input)))
	err := hexDecodeTo(output, input)
	return output, err
}

func drop0x(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil
	}
	if len(input) >= 2 && input[0] == '0' && input[1] == 'x' {
		return input[2:], nil
	}
	return input, errors.Errorf("malformed input %s: missing 0x prefix", input)
}

// Analogous to "hex.EncodedLen", but accounting for the "0x" prefix.
func hexEncodedLen(length int) int { return (length * 2) + 2 }

// Analogous to "hex.DecodedLen", but accounting for the "0x" prefix. Empty
// input size is ok and requires zero output.
func hexDecodedLen(length int) int {
	if length < 2 {
		return 0
	}
	return (length - 2) / 2
}

func hexEncodeQuoted(input []byte) []byte {
	out := make([]byte, hexEncodedLen(len(input))+2)
	out[0] = '"'
	hexEncodeTo(out[1:len(out)-1], input)
	out[len(out)-1] = '"'
	return out
}

/*
Reinterprets a byte slice as a string, saving an allocation. Borrowed from the
standard library. Reasonably safe.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

/*
Returns a byte slice backed by the provided string. Mutations are reflected
in the source string, unless it's backed by constant storage, in which case
they trigger a segfault. Should be safe as long as the bytes are treated as
read-only.
*/
func stringToBytesUnsafe(str string) []byte {
	type sliceHeader struct {
		dat uintptr
		len int
		cap int
	}
	slice := *(*sliceHeader)(unsafe.Pointer(&str))
	slice.cap = slice.len
	return *(*[]byte)(unsafe.Pointer(&slice))
}
