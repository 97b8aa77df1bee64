/*
Package rpctrans implements the JSON-RPC transports used to talk to an
Ethereum node: a stateless HTTP transport and a stateful, auto-reconnecting
WebSocket transport that also supports server-push subscriptions (used for
watching event logs).

This is deliberately narrower than a full Ethereum client: it carries only
the request/response/subscription plumbing and the handful of wire types
(Address, HexBytes, HexInt, LogEntry, TxMsg) that "eth_call" and
"eth_subscribe('logs')" need. A contract-call/event-decoding layer built on
top lives in the sibling "contract" package.
*/
package rpctrans
