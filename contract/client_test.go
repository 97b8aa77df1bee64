package contract

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/purelabio/abi/rpctrans"
)

func TestClientCallDecodesResult(t *testing.T) {
	parsed := parseErc20(t)
	fn := parsed.Functions["balanceOf"]

	var word [32]byte
	new(big.Int).SetUint64(1000).FillBytes(word[:])
	result := rpctrans.HexBytes(word[:]).String()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Id     string `json:"id"`
			Method string `json:"method"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Method != "eth_call" {
			t.Fatalf("server: expected method eth_call, got %q", req.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.Id,
			"result":  result,
		})
	}))
	defer server.Close()

	rpcUrl, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client := Client{Trans: rpctrans.HttpTrans{Url: *rpcUrl}}
	owner, err := rpctrans.ParseAddress("0x00000000000000000000000000000000000000ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, err := client.Call(context.Background(), fn, owner, []byte{0x01, 0x02})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.Int.Cmp(big.NewInt(1000)) != 0 {
		t.Fatalf("expected 1000, got %v", val.Int)
	}
}

// fakeTrans is a minimal rpctrans.Trans that replays a fixed sequence of raw
// log payloads over Subscribe, letting WatchLogs be tested without a real or
// mocked WebSocket server.
type fakeTrans struct {
	payloads [][]byte
}

func (self fakeTrans) Call(context.Context, interface{}, string, ...interface{}) error {
	return nil
}

func (self fakeTrans) Subscribe(ctx context.Context, out chan []byte, params ...interface{}) error {
	defer close(out)
	for _, payload := range self.payloads {
		select {
		case out <- payload:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (self fakeTrans) Connected() chan struct{} { return nil }

func TestClientWatchLogsDecodesMatchingEntries(t *testing.T) {
	parsed := parseErc20(t)
	event := parsed.Events["Transfer"]

	from := rpctrans.Word{}
	from[31] = 0x01
	to := rpctrans.Word{}
	to[31] = 0x02

	var value [32]byte
	new(big.Int).SetUint64(42).FillBytes(value[:])

	matching := rpctrans.LogEntry{
		Topics: []rpctrans.Word{event.Topic, from, to},
		Data:   rpctrans.HexBytes(value[:]),
	}
	nonMatching := rpctrans.LogEntry{Topics: []rpctrans.Word{{0xff}}}

	matchingPayload, err := json.Marshal(matching)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nonMatchingPayload, err := json.Marshal(nonMatching)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client := Client{Trans: fakeTrans{payloads: [][]byte{nonMatchingPayload, matchingPayload}}}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := client.WatchLogs(ctx, rpctrans.LogFilter{}, event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case decoded, ok := <-out:
		if !ok {
			t.Fatalf("expected a decoded log, channel closed early")
		}
		valueField, ok := decoded.Value.Field("value")
		if !ok || valueField.Int.Cmp(big.NewInt(42)) != 0 {
			t.Fatalf("expected value=42, got %+v", decoded.Value)
		}
	case <-ctx.Done():
		t.Fatalf("timed out waiting for a decoded log")
	}

	select {
	case _, ok := <-out:
		if ok {
			t.Fatalf("expected the channel to close after the one matching entry")
		}
	case <-ctx.Done():
		t.Fatalf("timed out waiting for the output channel to close")
	}
}
