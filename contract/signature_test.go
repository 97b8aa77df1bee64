package contract

import (
	"encoding/hex"
	"testing"

	"github.com/purelabio/abi/abitype"
)

func TestSignatureFlatParams(t *testing.T) {
	params := []abitype.Param{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}}
	got := Signature("transfer", params)
	want := "transfer(address,uint256)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSignatureTupleExpansion(t *testing.T) {
	params := []abitype.Param{
		{
			Name: "batch",
			Type: "tuple[]",
			Components: []abitype.Param{
				{Name: "to", Type: "address"},
				{Name: "amount", Type: "uint256"},
			},
		},
	}
	got := Signature("batchTransfer", params)
	want := "batchTransfer((address,uint256)[])"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// The well-known ERC-20 "transfer(address,uint256)" selector, 0xa9059cbb,
// pins this package's Keccak256 usage against a value every Ethereum tool
// agrees on.
func TestFunctionSelectorKnownValue(t *testing.T) {
	params := []abitype.Param{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}}
	got := FunctionSelector("transfer", params)

	want, err := hex.DecodeString("a9059cbb")
	if err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
		t.Fatalf("got selector %x, want %x", got, want)
	}
}

// The well-known ERC-20 "Transfer(address,address,uint256)" event topic.
func TestSignatureChecksumKnownValue(t *testing.T) {
	params := []abitype.Param{
		{Name: "from", Type: "address", Indexed: true},
		{Name: "to", Type: "address", Indexed: true},
		{Name: "value", Type: "uint256"},
	}
	got := SignatureChecksum("Transfer", params)

	want, err := hex.DecodeString("ddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
	if err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
		t.Fatalf("got topic %x, want %x", got, want)
	}
}
