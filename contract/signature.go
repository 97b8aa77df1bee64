package contract

import (
	"golang.org/x/crypto/sha3"

	"github.com/purelabio/abi"
	"github.com/purelabio/abi/abitype"
)

// Builds the canonical type string for one parameter, expanding tuple
// components recursively (e.g. "(uint256,address)[]"), the way a Solidity
// compiler's own signature computation does. Plain JSON ABI "type" strings
// only say "tuple" and leave the field types in "components", so selector
// computation can't just concatenate the "Type" fields verbatim once tuples
// are involved.
func signatureType(param abitype.Param) string {
	if len(param.Components) == 0 {
		return param.Type
	}

	suffix := param.Type[len("tuple"):]

	out := "("
	for i, component := range param.Components {
		if i > 0 {
			out += ","
		}
		out += signatureType(component)
	}
	out += ")" + suffix
	return out
}

// Builds the canonical signature string for a function or event, e.g.
// "transfer(address,uint256)".
func Signature(name string, params []abitype.Param) string {
	out := name + "("
	for i, param := range params {
		if i > 0 {
			out += ","
		}
		out += signatureType(param)
	}
	out += ")"
	return out
}

/*
Computes the 32-byte Keccak256 checksum of a function or event signature.
The first 4 bytes are a function selector; the full 32 bytes are an event
topic.
*/
func SignatureChecksum(name string, params []abitype.Param) abi.Word {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(Signature(name, params)))

	var out abi.Word
	copy(out[:], hash.Sum(nil))
	return out
}

// The first 4 bytes of SignatureChecksum, used as a function call's
// selector prefix.
func FunctionSelector(name string, params []abitype.Param) [4]byte {
	sum := SignatureChecksum(name, params)
	var out [4]byte
	copy(out[:], sum[:4])
	return out
}
