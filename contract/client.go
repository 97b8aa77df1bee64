package contract

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/purelabio/abi"
	"github.com/purelabio/abi/rpctrans"
)

/*
Client pairs an RPC transport with decoding: it performs "eth_call" and
"eth_subscribe('logs')" the way rpctrans.Trans already supports, then hands
the raw response to a Function or Event to decode. It holds no state of its
own beyond the transport, and is safe for concurrent use exactly to the
extent the underlying Trans is (HttpTrans always is; WsTrans is).
*/
type Client struct {
	Trans rpctrans.Trans
}

// Invokes a read-only contract method and decodes its return value against
// "fn"'s output parameters. "data" must already contain the 4-byte selector
// followed by ABI-encoded arguments; building that payload is an encoding
// concern, out of scope here.
func (self Client) Call(ctx context.Context, fn Function, to rpctrans.Address, data []byte) (abi.Value, error) {
	var out rpctrans.HexBytes
	err := self.Trans.Call(ctx, &out, "eth_call",
		rpctrans.TxMsg{To: to, Data: rpctrans.HexBytes(data)},
		rpctrans.BlockNumberLatest)
	if err != nil {
		return abi.Value{}, errors.WithStack(err)
	}
	return fn.DecodeOutput([]byte(out))
}

// One decoded event log: the raw entry alongside its decoded fields.
type DecodedLog struct {
	Entry rpctrans.LogEntry
	Value abi.Value
}

/*
Subscribes to event logs matching "filter" and decodes each one against
"event", sending decoded values over the returned channel. The channel is
closed when the subscription ends (context cancellation or a connection
drop); malformed or non-matching log entries are skipped rather than ending
the subscription early.

Requires a transport that supports subscriptions (WsTrans); HttpTrans
returns an error immediately.
*/
func (self Client) WatchLogs(ctx context.Context, filter rpctrans.LogFilter, event Event) (chan DecodedLog, error) {
	switch self.Trans.(type) {
	case rpctrans.HttpTrans, *rpctrans.HttpTrans:
		return nil, errors.New("HTTP RPC transport doesn't support streaming")
	}

	raw := make(chan []byte, 16)
	out := make(chan DecodedLog, 16)

	go func() {
		// Errors surface to the caller only via the closed "raw" channel;
		// WatchLogs has already returned, so there's nothing left to hand
		// this to.
		_ = self.Trans.Subscribe(ctx, raw, "logs", filter)
	}()

	go func() {
		defer close(out)
		for payload := range raw {
			var entry rpctrans.LogEntry
			if json.Unmarshal(payload, &entry) != nil {
				continue
			}

			val, err := event.DecodeLog(entry)
			if err != nil {
				continue
			}
			out <- DecodedLog{Entry: entry, Value: val}
		}
	}()

	return out, nil
}
