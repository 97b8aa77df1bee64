package rpctrans

import (
	"encoding/json"
	"math/big"
	"testing"
)

func TestAddressTextRoundTrip(t *testing.T) {
	addr, err := ParseAddress("0x00000000000000000000000000000000000000ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr[19] != 0xab {
		t.Fatalf("expected last byte 0xab, got %#x", addr[19])
	}

	text, err := addr.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(text) != "0x00000000000000000000000000000000000000ab" {
		t.Fatalf("unexpected text encoding: %s", text)
	}
}

func TestZeroAddressEncodesAsNull(t *testing.T) {
	text, err := ZeroAddress.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(text) != "null" {
		t.Fatalf("expected \"null\", got %s", text)
	}
}

func TestHexIntTextRoundTrip(t *testing.T) {
	val := HexInt(*big.NewInt(3735928559))
	text, err := val.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(text) != "0xdeadbeef" {
		t.Fatalf("expected 0xdeadbeef, got %s", text)
	}

	var decoded HexInt
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (*big.Int)(&decoded).Cmp(big.NewInt(3735928559)) != 0 {
		t.Fatalf("round trip mismatch: got %v", (*big.Int)(&decoded))
	}
}

func TestHexUint64TextRoundTrip(t *testing.T) {
	val := HexUint64(255)
	text, err := val.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(text) != "0xff" {
		t.Fatalf("expected 0xff, got %s", text)
	}

	var decoded HexUint64
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != 255 {
		t.Fatalf("expected 255, got %d", decoded)
	}
}

func TestHexBytesJSONRoundTrip(t *testing.T) {
	val := HexBytes{0x01, 0x02, 0xff}
	out, err := json.Marshal(val)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `"0x0102ff"` {
		t.Fatalf("unexpected JSON encoding: %s", out)
	}

	var decoded HexBytes
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(decoded) != string(val) {
		t.Fatalf("round trip mismatch: got %x, want %x", decoded, val)
	}
}

func TestEmptyHexBytesEncodesAsNull(t *testing.T) {
	out, err := HexBytes(nil).MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("expected \"null\", got %s", out)
	}
}

func TestRpcErrorMessage(t *testing.T) {
	err := RpcError{Code: -32000, Message: "execution reverted"}
	got := err.Error()
	want := "RPC error -32000: execution reverted"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLogEntryUnmarshalJSON(t *testing.T) {
	const input = `{
		"address": "0x00000000000000000000000000000000000000ab",
		"topics": ["0x0000000000000000000000000000000000000000000000000000000000000001"],
		"data": "0x01",
		"blockHash": "0x0000000000000000000000000000000000000000000000000000000000000002",
		"blockNumber": "0x10",
		"transactionHash": "0x0000000000000000000000000000000000000000000000000000000000000003",
		"transactionIndex": "0x1",
		"logIndex": "0x0",
		"removed": false
	}`

	var entry LogEntry
	if err := json.Unmarshal([]byte(input), &entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.BlockNumber != 16 {
		t.Fatalf("expected block number 16, got %d", entry.BlockNumber)
	}
	if len(entry.Topics) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(entry.Topics))
	}
}
