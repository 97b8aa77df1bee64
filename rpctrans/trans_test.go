package rpctrans

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestHttpTransCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("server: failed to decode request: %v", err)
		}
		if req.Method != "eth_call" {
			t.Fatalf("server: expected method eth_call, got %q", req.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rpcResponse{
			Jsonrpc: jsonRpcVersion,
			Id:      json.RawMessage(`"` + req.Id + `"`),
			Result:  "0x2a",
		})
	}))
	defer server.Close()

	rpcUrl, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	trans := HttpTrans{Url: *rpcUrl}

	select {
	case <-trans.Connected():
	default:
		t.Fatalf("expected HttpTrans to always report connected")
	}

	var out string
	err = trans.Call(context.Background(), &out, "eth_call", TxMsg{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0x2a" {
		t.Fatalf("expected 0x2a, got %q", out)
	}
}

func TestHttpTransCallError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		json.NewDecoder(r.Body).Decode(&req)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rpcResponse{
			Jsonrpc: jsonRpcVersion,
			Id:      json.RawMessage(`"` + req.Id + `"`),
			Error:   &RpcError{Code: -32000, Message: "execution reverted"},
		})
	}))
	defer server.Close()

	rpcUrl, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	trans := HttpTrans{Url: *rpcUrl}

	var out string
	err = trans.Call(context.Background(), &out, "eth_call", TxMsg{})
	if err == nil {
		t.Fatalf("expected an RPC error to surface")
	}
}

func TestHttpTransSubscribeUnsupported(t *testing.T) {
	trans := HttpTrans{}
	err := trans.Subscribe(context.Background(), make(chan []byte))
	if err == nil {
		t.Fatalf("expected HttpTrans.Subscribe to always fail")
	}
}

func TestDialChoosesTransportByScheme(t *testing.T) {
	trans, err := Dial("http://localhost:8545", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := trans.(HttpTrans); !ok {
		t.Fatalf("expected an HttpTrans for an http:// URL, got %T", trans)
	}

	_, err = Dial("not-a-url://whatever", nil)
	if err == nil {
		t.Fatalf("expected an error for an unsupported scheme")
	}
}
