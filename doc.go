/*
Package abi decodes Ethereum Contract ABI-encoded data: the inverse of the
canonical encoding used to pass arguments to, and receive results from,
smart contracts.

Given a byte stream (or, via DecodeHex, a hex string) and a Schema describing
the expected Solidity types, Decode walks the head/tail layout the ABI spec
defines (inlined static values and struct fields in the head region,
offset-addressed dynamic payloads in the tail) and reconstructs a Value tree
mirroring the schema.

This package is only the decoding engine: building a Schema from a Solidity
type string or a JSON ABI fragment lives in the sibling "abitype" package;
computing function selectors and decoding contract calls and event logs
against a full contract ABI lives in "contract".

Basic usage:

	schema := abi.Tuple(abi.Uint(256), abi.Utf8String())
	val, err := abi.DecodeHex("0x...", schema)
	if err != nil {
		var decErr abi.Error
		if errors.As(err, &decErr) {
			// decErr.Kind identifies the failure category.
		}
	}
	n := val.Items[0].Int
	s := val.Items[1].Str

Decoder is stateless: every method is a pure function of its arguments, so a
single Decoder value (or its zero value) can be shared and called
concurrently without synchronization.
*/
package abi
