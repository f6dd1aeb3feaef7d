package rpcclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/xrpl-wasm/xrpl-go/pkg/core/transaction"
)

// WSClient is a websocket-enabled RPC client. It keeps a persistent
// connection to the node and exposes the functionality that is only
// provided via websockets, the transaction stream in particular, which
// allows to wait for a submitted transaction to be validated.
type WSClient struct {
	Client

	// Notifications is a channel that receives transaction stream events
	// for subscribed accounts. The channel is closed when the connection
	// is lost or the client is closed.
	Notifications chan TransactionEvent

	ws        *websocket.Conn
	log       *zap.Logger
	done      chan struct{}
	responses chan wsResponse
	requests  chan map[string]interface{}
	shutdown  chan struct{}
}

// TransactionEvent is one event of the node's transaction stream.
type TransactionEvent struct {
	Type         string          `json:"type"`
	Validated    bool            `json:"validated"`
	EngineResult string          `json:"engine_result"`
	Hash         string          `json:"hash"`
	Transaction  json.RawMessage `json:"transaction"`
}

// wsResponse is what the node sends back for an identified request.
type wsResponse struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
	raw    json.RawMessage
}

// wsMessage is a combined type for responses and stream events since we can
// get any of them from the socket.
type wsMessage struct {
	ID     string          `json:"id"`
	Type   string          `json:"type"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
}

const (
	// Message limit for the receiving side.
	wsReadLimit = 10 * 1024 * 1024

	// Disconnection timeout.
	wsPongLimit = 60 * time.Second

	// Ping period for connection liveness check.
	wsPingPeriod = wsPongLimit / 2

	// Write deadline.
	wsWriteLimit = wsPingPeriod / 2
)

// NewWS returns a new WSClient ready to use (with established websocket
// connection). You need to use a websocket URL for it like `ws://1.2.3.4/`.
// The logger may be nil, in which case nothing is logged.
func NewWS(ctx context.Context, endpoint string, opts Options, log *zap.Logger) (*WSClient, error) {
	cl, err := New(ctx, endpoint, opts)
	if err != nil {
		return nil, err
	}
	cl.cli = nil

	if log == nil {
		log = zap.NewNop()
	}
	dialer := websocket.Dialer{HandshakeTimeout: cl.opts.DialTimeout}
	ws, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	wsc := &WSClient{
		Client:        *cl,
		Notifications: make(chan TransactionEvent),

		ws:        ws,
		log:       log,
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
		responses: make(chan wsResponse),
		requests:  make(chan map[string]interface{}),
	}
	go wsc.wsReader()
	go wsc.wsWriter()
	wsc.requestF = wsc.makeWSRequest
	return wsc, nil
}

// Close closes the connection to the remote side rendering this client
// instance unusable.
func (c *WSClient) Close() {
	// Closing the shutdown channel signals wsWriter to break out of its
	// loop closing the network connection, which in turn makes wsReader
	// fail and close the done channel in its shutdown sequence.
	close(c.shutdown)
	<-c.done
}

func (c *WSClient) wsReader() {
	c.ws.SetReadLimit(wsReadLimit)
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(wsPongLimit))
	})
	for {
		_ = c.ws.SetReadDeadline(time.Now().Add(wsPongLimit))
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			// Timeout/connection loss/malformed response.
			c.log.Debug("websocket read failed", zap.Error(err))
			break
		}
		var msg wsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.log.Debug("malformed websocket message", zap.Error(err))
			break
		}
		if msg.ID != "" {
			c.responses <- wsResponse{
				ID:     msg.ID,
				Status: msg.Status,
				Result: msg.Result,
				raw:    raw,
			}
			continue
		}
		if msg.Type == "transaction" {
			var ev TransactionEvent
			if err := json.Unmarshal(raw, &ev); err != nil {
				c.log.Debug("malformed transaction event", zap.Error(err))
				break
			}
			c.Notifications <- ev
			continue
		}
		// Anything else (ledger closes and the like) is dropped.
	}
	close(c.done)
	close(c.responses)
	close(c.Notifications)
}

func (c *WSClient) wsWriter() {
	pingTicker := time.NewTicker(wsPingPeriod)
	defer c.ws.Close()
	defer pingTicker.Stop()
	for {
		select {
		case <-c.shutdown:
			return
		case <-c.done:
			return
		case req, ok := <-c.requests:
			if !ok {
				return
			}
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.opts.RequestTimeout))
			if err := c.ws.WriteJSON(req); err != nil {
				c.log.Debug("websocket write failed", zap.Error(err))
				return
			}
		case <-pingTicker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(wsWriteLimit))
			if err := c.ws.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		}
	}
}

// makeWSRequest flattens the command parameters into a single websocket
// message with a unique id and waits for the matching response.
func (c *WSClient) makeWSRequest(r *Request) (*Response, error) {
	msg := map[string]interface{}{
		"id":      uuid.NewString(),
		"command": r.Method,
	}
	if len(r.Params) > 0 {
		raw, err := json.Marshal(r.Params[0])
		if err != nil {
			return nil, err
		}
		var fields map[string]interface{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		for k, v := range fields {
			msg[k] = v
		}
	}
	select {
	case <-c.done:
		return nil, errors.New("connection lost")
	case c.requests <- msg:
	}
	for {
		select {
		case <-c.done:
			return nil, errors.New("connection lost")
		case resp, ok := <-c.responses:
			if !ok {
				return nil, errors.New("connection lost")
			}
			if resp.ID != msg["id"] {
				continue
			}
			if resp.Status == "error" {
				// Websocket errors are reported at the top level of
				// the message, feed the whole thing to the status
				// check.
				return &Response{Result: resp.raw}, nil
			}
			return &Response{Result: resp.Result}, nil
		}
	}
}

// subscribeParams is the parameter object of the subscribe command.
type subscribeParams struct {
	Accounts []string `json:"accounts"`
}

// SubscribeAccounts subscribes to the transaction stream of the given
// accounts. Events are delivered to the Notifications channel which must be
// drained by the caller.
func (c *WSClient) SubscribeAccounts(accounts ...string) error {
	var resp json.RawMessage
	return c.performRequest("subscribe", subscribeParams{Accounts: accounts}, &resp)
}

// SubmitAndWait signs and submits a transaction body (*ContractCreate or
// *ContractCall) and blocks until the node reports it validated or the
// context is done. The signing account's transaction stream is subscribed
// to before submission so the validation event can't be missed.
func (c *WSClient) SubmitAndWait(ctx context.Context, tx interface{}, sctx SigningContext) (*TransactionEvent, error) {
	if err := c.SubscribeAccounts(sctx.Account()); err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", sctx.Account(), err)
	}
	// The stream reports every validated transaction touching the
	// subscribed account and shares the socket with responses, so events
	// can arrive before the submit response does. They have to be drained
	// concurrently with the submit round-trip, otherwise an early event
	// would block the reader and the response would never be read.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var (
		hashC  = make(chan string, 1)
		matchC = make(chan TransactionEvent, 1)
		errC   = make(chan error, 1)
	)
	go c.awaitValidation(wctx, hashC, matchC, errC)

	var (
		res *SubmitResult
		err error
	)
	switch tx := tx.(type) {
	case *transaction.ContractCreate:
		res, err = c.SubmitContractCreate(tx, sctx)
	case *transaction.ContractCall:
		res, err = c.SubmitContractCall(tx, sctx)
	default:
		return nil, fmt.Errorf("unsupported transaction body %T", tx)
	}
	if err != nil {
		return nil, err
	}
	var txMeta struct {
		Hash string `json:"hash"`
	}
	if err := json.Unmarshal(res.TxJSON, &txMeta); err != nil || txMeta.Hash == "" {
		return nil, errors.New("submit result carries no transaction hash")
	}
	c.log.Info("transaction submitted, awaiting validation",
		zap.String("hash", txMeta.Hash),
		zap.String("engine_result", res.EngineResult))
	hashC <- txMeta.Hash
	select {
	case ev := <-matchC:
		return &ev, nil
	case err := <-errC:
		return nil, err
	}
}

// awaitValidation drains the transaction stream, buffering events until the
// awaited hash arrives on hashC and reporting the first validated event
// matching it.
func (c *WSClient) awaitValidation(ctx context.Context, hashC <-chan string, matchC chan<- TransactionEvent, errC chan<- error) {
	var (
		backlog []TransactionEvent
		hash    string
	)
	for {
		select {
		case <-ctx.Done():
			errC <- ctx.Err()
			return
		case hash = <-hashC:
			for _, ev := range backlog {
				if ev.Validated && ev.Hash == hash {
					matchC <- ev
					return
				}
			}
			backlog = nil
		case ev, ok := <-c.Notifications:
			if !ok {
				errC <- errors.New("connection lost")
				return
			}
			if hash == "" {
				backlog = append(backlog, ev)
				continue
			}
			if ev.Validated && ev.Hash == hash {
				matchC <- ev
				return
			}
		}
	}
}
