package rpctrans

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const jsonRpcVersion = "2.0"

/*
Common interface implemented by RPC transports. Obtained via "Dial" and
passed to "contract.Client".
*/
type Trans interface {
	/*
		Makes an RPC request and decodes the response body into "out", which
		must be a pointer. Returns a request error or a decoding error.
	*/
	Call(ctx context.Context, out interface{}, method string, params ...interface{}) error

	/*
		Registers a subscription and blocks until it's finished, sending raw
		result payloads over the provided channel and returning the error
		that interrupted it, if any. Always closes the output channel before
		returning, and unsubscribes from the server if possible.

		If the channel is full, new values may be dropped; the caller must
		ensure it has enough buffer.
	*/
	Subscribe(ctx context.Context, out chan []byte, params ...interface{}) error

	/*
		Returns a channel that becomes closed when the transport is
		connected. Stateless transports such as HTTP always return an
		already-closed channel.
	*/
	Connected() chan struct{}
}

// Chooses the appropriate transport for the given URL. Waits until
// connected, if possible.
func Dial(rpcPath string, logger *log.Logger) (Trans, error) {
	rpcUrl, err := url.Parse(rpcPath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if rpcUrl.Scheme == "ws" || rpcUrl.Scheme == "wss" {
		return DialWs(*rpcUrl, logger)
	}

	if rpcUrl.Scheme == "http" || rpcUrl.Scheme == "https" {
		return HttpTrans{Url: *rpcUrl}, nil
	}

	return nil, errors.Errorf("unsupported RPC path: %v", rpcPath)
}

// Stateless HTTP transport. Doesn't support subscriptions, so it can't be
// used to watch event logs; use WsTrans for that.
type HttpTrans struct {
	Url url.URL
}

func (self HttpTrans) Connected() chan struct{} { return alwaysConnected }

var alwaysConnected = func() chan struct{} {
	out := make(chan struct{})
	close(out)
	return out
}()

func (self HttpTrans) Call(ctx context.Context, out interface{}, method string, params ...interface{}) error {
	var body bytes.Buffer
	err := json.NewEncoder(&body).Encode(rpcRequest{
		Jsonrpc: jsonRpcVersion,
		Id:      randomId(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, self.Url.String(), &body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		text, _ := ioutil.ReadAll(res.Body)
		return errors.Errorf("RPC error: %s\n%s", res.Status, text)
	}

	rpcRes := rpcResponse{Result: out}
	err = json.NewDecoder(res.Body).Decode(&rpcRes)
	if err != nil {
		return errors.Wrap(err, "failed to decode RPC response")
	}
	// Note: `error((*RpcError)(nil)) != nil` !!!
	if rpcRes.Error != nil {
		return errors.WithStack(*rpcRes.Error)
	}
	return nil
}

// Not implemented for the HTTP transport. Closes the output channel and
// always returns an error.
func (self HttpTrans) Subscribe(_ context.Context, out chan []byte, _ ...interface{}) error {
	close(out)
	return errors.New("HTTP RPC transport doesn't support streaming")
}

/*
Stateful websocket transport. Supports RPC calls, subscriptions, and
automatic reconnect. ".ReconnectInterval" defaults to 1s.
*/
type WsTrans struct {
	Url               url.URL
	Logger            *log.Logger
	ReconnectInterval time.Duration

	connected chan struct{}

	writeLock sync.Mutex
	Conn      *websocket.Conn

	subLock sync.Mutex
	subs    map[string]chan either
}

/*
Establishes a websocket connection to the RPC node at the given URL and
waits until connected. Starts a persistent background loop; there is no way
to stop an active transport, so don't make more than needed.
*/
func DialWs(url url.URL, logger *log.Logger) (*WsTrans, error) {
	transport := &WsTrans{
		Url:               url,
		Logger:            logger,
		ReconnectInterval: defaultReconnectInterval,
		connected:         make(chan struct{}),
		subs:              map[string]chan either{},
	}

	err := transport.connect()
	if err != nil {
		return nil, err
	}

	go transport.run()
	return transport, nil
}

var defaultReconnectInterval = time.Second

func (self *WsTrans) run() {
	for {
		err := self.receiveLoop()
		maybePrintf(self.Logger, "disconnected from %v: %v", self.Url.String(), err)

		for {
			maybePrintf(self.Logger, "waiting before reconnecting to %v", self.Url.String())

			time.Sleep(self.ReconnectInterval)
			err := self.connect()
			if err == nil {
				break
			}

			maybePrintf(self.Logger, "failed to connect to %v: %v", self.Url.String(), err)
		}
	}
}

func (self *WsTrans) connect() error {
	conn, _, err := websocket.DefaultDialer.Dial(self.Url.String(), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	self.Conn = conn
	close(self.connected)
	return nil
}

func (self *WsTrans) receiveLoop() error {
	conn := self.Conn

	defer func() {
		self.connected = make(chan struct{})
		conn.Close()
		self.clearSubs(errors.New("disconnected from RPC server"))
	}()

	/*
		We receive and unmarshal separately. A receiving failure indicates a
		disconnect. An unmarshaling error indicates a malformed message, but
		not necessarily a connection problem.
	*/
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var head struct{ Id string }
		err = json.Unmarshal(payload, &head)
		if err != nil {
			maybePrintf(self.Logger, "failed to decode RPC message from %v: %v", self.Url.String(), err)
			continue
		}

		if len(head.Id) != 0 {
			var body json.RawMessage
			res := rpcResponse{Result: &body}
			err = json.Unmarshal(payload, &res)
			if err != nil {
				maybePrintf(self.Logger, "failed to decode RPC message from %v as a response: %v",
					self.Url.String(), err)
				continue
			}

			// Note: `error((*RpcError)(nil)) != nil` !!!
			if res.Error != nil {
				err = errors.WithStack(*res.Error)
			}

			self.dispatchToSub(head.Id, []byte(body), err)
			continue
		}

		// When ID is missing, assume it's a notification:
		// https://www.jsonrpc.org/specification#notification
		var notification rpcNotification
		err = json.Unmarshal(payload, &notification)
		if err != nil {
			maybePrintf(self.Logger, "failed to decode RPC message from %v as a notification: %v",
				self.Url.String(), err)
			continue
		}
		id := notification.Params.Subscription
		val := notification.Params.Result
		self.dispatchToSub(id, val, nil)
	}
}

func (self *WsTrans) Connected() chan struct{} { return self.connected }

func (self *WsTrans) Call(ctx context.Context, out interface{}, method string, params ...interface{}) error {
	id := randomId()
	sub := make(chan either, 1)
	self.registerSub(id, sub)
	defer self.unregisterSub(id)

	err := self.send(id, method, params...)
	if err != nil {
		return errors.WithStack(err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case either := <-sub:
		if either.err != nil {
			return either.err
		}
		if either.val == nil {
			return nil
		}
		err := json.Unmarshal(either.val, out)
		return errors.WithStack(err)
	}
}

func (self *WsTrans) send(id string, method string, params ...interface{}) error {
	self.writeLock.Lock()
	defer self.writeLock.Unlock()
	err := self.Conn.WriteJSON(rpcRequest{
		Jsonrpc: jsonRpcVersion,
		Id:      id,
		Method:  method,
		Params:  params,
	})
	return errors.WithStack(err)
}

/*
Creates a subscription with the given params, sending raw messages over the
provided channel. The caller handles decoding. See
https://wiki.parity.io/JSONRPC-eth_pubsub-module.html for the subscriptions
API used for watching event logs ("logs") and block heads ("newHeads").

Returns an error when the context is canceled or the connection is
interrupted. Does NOT automatically resubscribe.
*/
func (self *WsTrans) Subscribe(ctx context.Context, out chan []byte, params ...interface{}) error {
	defer close(out)

	var subId string
	err := self.Call(ctx, &subId, "eth_subscribe", params...)
	if err != nil {
		return err
	}
	if subId == "" {
		return errors.New("failed to subscribe: received empty subscription ID")
	}
	defer func() {
		go self.send(randomId(), "eth_unsubscribe", subId)
	}()

	sub := make(chan either, cap(out))
	self.registerSub(subId, sub)
	defer self.unregisterSub(subId)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case either, ok := <-sub:
			if !ok {
				return nil
			}
			if either.err != nil {
				return either.err
			}
			out <- either.val
		}
	}
}

func (self *WsTrans) registerSub(id string, sub chan either) {
	self.subLock.Lock()
	self.subs[id] = sub
	self.subLock.Unlock()
}

func (self *WsTrans) unregisterSub(id string) {
	self.subLock.Lock()
	delete(self.subs, id)
	self.subLock.Unlock()
}

func (self *WsTrans) dispatchToSub(id string, val []byte, err error) {
	self.subLock.Lock()
	sub := self.subs[id]
	self.subLock.Unlock()

	if sub != nil {
		select {
		case sub <- either{val: val, err: err}:
		default:
		}
	}
}

func (self *WsTrans) clearSubs(err error) {
	self.subLock.Lock()
	defer self.subLock.Unlock()

	for _, sub := range self.subs {
		if err != nil {
			select {
			case sub <- either{err: err}:
			default:
			}
		}
		close(sub)
	}
	self.subs = map[string]chan either{}
}

var (
	rnd     = rand.New(rand.NewSource(time.Now().UnixNano()))
	rndLock sync.Mutex
)

// Tens of times faster than "crypto/rand". Request IDs only need to avoid
// colliding with other in-flight requests on the same connection, not resist
// an adversary.
func randomId() string {
	var buf Word
	rndLock.Lock()
	rnd.Read(buf[:])
	rndLock.Unlock()
	return buf.String()
}

func maybePrintf(logger *log.Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}
