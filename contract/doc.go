/*
Package contract is the orchestration layer above the core decoding engine:
computing function selectors and event topics, decoding "eth_call" return
data against a function's output parameters, and decoding event logs
(including go-ethereum/Parity's indexed/non-indexed topic split) against an
event's parameters.

It does not implement the ABI encoder: building calldata for a function call
is explicitly out of scope for this module, same as for the core decoder.
Callers supply already-encoded calldata to Client.Call; what this package
adds on top is turning the response, or a watched log entry, back into a
Value tree.
*/
package contract
