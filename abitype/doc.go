/*
Package abitype builds abi.Schema values from the type descriptions a
Solidity compiler actually emits: either a bare type string such as
"uint256[2][]", or a JSON ABI parameter object carrying a "components" list
for tuples.

The decoding engine in the sibling "abi" package deliberately doesn't know
how to parse a type string; this package fills that gap, extending a
regex-driven approach to parsing type names with the go-ethereum JSON ABI
convention for tuple components.
*/
package abitype
