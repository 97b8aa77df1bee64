package rpctrans

import (
	"database/sql/driver"
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

var null = []byte{'n', 'u', 'l', 'l'}

// Version of "[]byte" that uses "0x"-prefixed hex encoding and decoding, the
// wire format "eth_call"/"eth_sendTransaction" use for calldata and logs.
type HexBytes []byte

func (self HexBytes) MarshalText() ([]byte, error) { return hexEncode(self), nil }

func (self *HexBytes) UnmarshalText(input []byte) error {
	out, err := hexDecode(input)
	if err != nil {
		return err
	}
	*self = HexBytes(out)
	return nil
}

func (self HexBytes) MarshalJSON() ([]byte, error) {
	if len(self) == 0 {
		return null, nil
	}
	return hexEncodeQuoted(self), nil
}

func (self HexBytes) String() string { return bytesToMutableString(hexEncode(self)) }

// Version of "big.Int" that encodes/decodes in base 16 with the "0x" prefix,
// the wire format for quantities such as balances, gas prices and block
// numbers.
type HexInt big.Int

func (self *HexInt) MarshalText() ([]byte, error) {
	out := make([]byte, 0, 16)
	out = append(out, '0', 'x')
	return (*big.Int)(self).Append(out, 16), nil
}

func (self *HexInt) UnmarshalText(input []byte) error {
	input, err := drop0x(input)
	if err != nil {
		return err
	}
	_, ok := (*big.Int)(self).SetString(bytesToMutableString(input), 16)
	if !ok {
		return errors.Errorf("failed to decode %q as a hex integer", input)
	}
	return nil
}

func (self *HexInt) String() string {
	bytes, _ := self.MarshalText()
	return bytesToMutableString(bytes)
}

// Version of "uint64" that encodes/decodes in base 16 with the "0x" prefix.
type HexUint64 uint64

func (self HexUint64) MarshalText() ([]byte, error) {
	out := make([]byte, 0, 16)
	out = append(out, '0', 'x')
	return strconv.AppendUint(out, uint64(self), 16), nil
}

func (self *HexUint64) UnmarshalText(input []byte) error {
	input, err := drop0x(input)
	if err != nil {
		return err
	}
	out, err := strconv.ParseUint(bytesToMutableString(input), 16, 64)
	*self = HexUint64(out)
	return err
}

func (self HexUint64) String() string {
	bytes, _ := self.MarshalText()
	return bytesToMutableString(bytes)
}

/*
Compact representation of an Ethereum address. A zero-initialized Address{}
JSON-encodes as "null" and text-encodes as "", to avoid confusing the empty
value with the 20-zero-byte address.
*/
type Address [20]byte

var ZeroAddress Address

func ParseAddress(input string) (Address, error) {
	var out Address
	err := out.UnmarshalText(stringToBytesUnsafe(input))
	return out, err
}

func (self Address) MarshalText() ([]byte, error) {
	if self == ZeroAddress {
		return nil, nil
	}
	return hexEncode(self[:]), nil
}

func (self *Address) UnmarshalText(input []byte) error {
	if len(input) == 0 {
		*self = Address{}
		return nil
	}
	return hexDecodeTo(self[:], input)
}

func (self Address) MarshalJSON() ([]byte, error) {
	if self == ZeroAddress {
		return null, nil
	}
	return hexEncodeQuoted(self[:]), nil
}

func (self Address) String() string { return bytesToMutableString(hexEncode(self[:])) }

// Implements "sql.Scanner" in terms of "UnmarshalText".
func (self *Address) Scan(src interface{}) error {
	switch src := src.(type) {
	case string:
		return self.UnmarshalText(stringToBytesUnsafe(src))
	case []byte:
		return self.UnmarshalText(src)
	default:
		return errors.Errorf("unrecognized input for %T: %T %v", self, src, src)
	}
}

// Implements "sql/driver.Valuer". A zero-initialized Address{} encodes as "null".
func (self Address) Value() (driver.Value, error) {
	if self == ZeroAddress {
		return null, nil
	}
	return self.MarshalText()
}

/*
A 32-byte word: the wire representation of hashes and log/event topics, and
(as "randomId") of JSON-RPC request identifiers.
*/
type Word [32]byte

func (self Word) MarshalText() ([]byte, error) { return hexEncode(self[:]), nil }

func (self *Word) UnmarshalText(input []byte) error {
	if len(input) == 0 {
		*self = Word{}
		return nil
	}
	return hexDecodeTo(self[:], input)
}

func (self Word) String() string { return bytesToMutableString(hexEncode(self[:])) }

// Represents the input for a non-mutating contract call ("eth_call").
type TxMsg struct {
	From     Address  `json:"from"`
	To       Address  `json:"to"`
	Data     HexBytes `json:"data"`
	Value    *HexInt  `json:"value,omitempty"`
	GasPrice *HexInt  `json:"gasPrice,omitempty"`
	GasLimit *HexInt  `json:"gas,omitempty"`
}

// "Magic" words understood by RPC methods that expect a block number.
const (
	BlockNumberEarliest = "earliest"
	BlockNumberLatest   = "latest"
	BlockNumberPending  = "pending"
)

/*
Stand-in for anything representing a block number: a regular number, a
hex-encoded number, or one of the BlockNumberX magic strings.
*/
type BlockNumber interface{}

/*
A log entry, as returned by "eth_getLogs" and delivered by the "logs"
subscription; the wire shape a contract event decodes against.

Original definitions in go-ethereum and Parity:
https://github.com/ethereum/go-ethereum/blob/master/core/types/log.go
https://github.com/paritytech/parity-ethereum/blob/master/rpc/src/v1/types/log.rs
*/
type LogEntry struct {
	Address          Address   `json:"address"`
	Topics           []Word    `json:"topics"`
	Data             HexBytes  `json:"data"`
	BlockHash        Word      `json:"blockHash"`
	BlockNumber      HexUint64 `json:"blockNumber"`
	TransactionHash  Word      `json:"transactionHash"`
	TransactionIndex HexUint64 `json:"transactionIndex"`
	LogIndex         HexUint64 `json:"logIndex"`
	Removed          bool      `json:"removed"`
}

/*
LogFilter is passed to "eth_getLogs" and to the "logs" subscription. See
https://wiki.parity.io/JSONRPC-eth-module.html#eth_newfilter.
*/
type LogFilter struct {
	FromBlock BlockNumber `json:"fromBlock,omitempty"`
	ToBlock   BlockNumber `json:"toBlock,omitempty"`
	Address   []Address   `json:"address,omitempty"`
	Topics    []*Word     `json:"topics,omitempty"`
}

// https://www.jsonrpc.org/specification#request_object
type rpcRequest struct {
	Jsonrpc string        `json:"jsonrpc"`
	Id      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// https://www.jsonrpc.org/specification#notification
// Specialized for Parity/geth subscription notifications:
// https://wiki.parity.io/JSONRPC-eth_pubsub-module.html
type rpcNotification struct {
	Jsonrpc string              `json:"jsonrpc"`
	Method  string              `json:"method"`
	Params  rpcNotificationBody `json:"params"`
}

type rpcNotificationBody struct {
	Subscription string          `json:"subscription"`
	Result       json.RawMessage `json:"result"`
}

// https://www.jsonrpc.org/specification#response_object
type rpcResponse struct {
	Jsonrpc string          `json:"jsonrpc"`
	Id      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result"`
	Error   *RpcError       `json:"error"`
}

// Represents an error that arrives over JSON-RPC. See
// https://www.jsonrpc.org/specification#error_object.
type RpcError struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (self RpcError) Error() string {
	str := "RPC error " + strconv.FormatInt(self.Code, 10) + ": " + self.Message
	if len(self.Data) > 0 {
		str += " Additional details: " + string(self.Data)
	}
	return str
}

type either struct {
	val []byte
	err error
}
