package rpcclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/xrpl-wasm/xrpl-go/pkg/core/transaction"
	"github.com/xrpl-wasm/xrpl-go/pkg/smartcontract"
)

const testTxHash = "9D6BBB22A595331B1D17B7EF7BC04A7A1E235F1FCDC37F3F4BF2FDE3A3CEF808"

// initTestWSServer starts a websocket node stub answering subscribe and
// submit commands and emitting a validated transaction event right after a
// successful submit. With earlyEvent set it also reports an unrelated
// validated transaction between the subscribe response and the submit
// response, the way a live stream does for an active account.
func initTestWSServer(t *testing.T, submitStatus string, earlyEvent bool) *WSClient {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ws, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			t.Log("upgrade failed:", err)
			return
		}
		defer ws.Close()
		for {
			var msg map[string]interface{}
			if err := ws.ReadJSON(&msg); err != nil {
				return
			}
			id, _ := msg["id"].(string)
			switch msg["command"] {
			case "subscribe":
				err = ws.WriteJSON(map[string]interface{}{
					"id": id, "status": "success", "result": map[string]interface{}{},
				})
				if err == nil && earlyEvent {
					err = ws.WriteJSON(map[string]interface{}{
						"type":          "transaction",
						"validated":     true,
						"engine_result": "tesSUCCESS",
						"hash":          strings.Repeat("00", 32),
						"transaction":   map[string]interface{}{},
					})
				}
			case "submit":
				if submitStatus == "error" {
					err = ws.WriteJSON(map[string]interface{}{
						"id": id, "status": "error", "error": "invalidTransaction",
					})
					break
				}
				err = ws.WriteJSON(map[string]interface{}{
					"id": id, "status": "success", "result": map[string]interface{}{
						"status":        "success",
						"accepted":      true,
						"engine_result": "tesSUCCESS",
						"tx_json":       map[string]interface{}{"hash": testTxHash},
					},
				})
				if err == nil {
					err = ws.WriteJSON(map[string]interface{}{
						"type":          "transaction",
						"validated":     true,
						"engine_result": "tesSUCCESS",
						"hash":          testTxHash,
						"transaction":   map[string]interface{}{},
					})
				}
			}
			if err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	c, err := NewWS(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"), Options{}, nil)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestSubmitAndWait(t *testing.T) {
	c := initTestWSServer(t, "success", false)

	tx, err := transaction.NewContractCall(signerAcc, smartcontract.NewName("ping"), nil, 100)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ev, err := c.SubmitAndWait(ctx, tx, &testSigner{account: signerAcc})
	require.NoError(t, err)
	require.True(t, ev.Validated)
	require.Equal(t, testTxHash, ev.Hash)
	require.Equal(t, "tesSUCCESS", ev.EngineResult)
}

func TestSubmitAndWaitEarlyEvent(t *testing.T) {
	// An unrelated validated transaction arrives on the stream before the
	// submit response. It must not stall the response read and must not be
	// mistaken for the awaited one.
	c := initTestWSServer(t, "success", true)

	tx, err := transaction.NewContractCall(signerAcc, smartcontract.NewName("ping"), nil, 100)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ev, err := c.SubmitAndWait(ctx, tx, &testSigner{account: signerAcc})
	require.NoError(t, err)
	require.True(t, ev.Validated)
	require.Equal(t, testTxHash, ev.Hash)
}

func TestSubmitAndWaitNodeError(t *testing.T) {
	c := initTestWSServer(t, "error", false)

	tx, err := transaction.NewContractCall(signerAcc, smartcontract.NewName("ping"), nil, 100)
	require.NoError(t, err)

	_, err = c.SubmitAndWait(context.Background(), tx, &testSigner{account: signerAcc})
	var rpcErr *Error
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, "invalidTransaction", rpcErr.Code)
}

func TestSubmitAndWaitUnsupportedBody(t *testing.T) {
	c := initTestWSServer(t, "success", false)

	_, err := c.SubmitAndWait(context.Background(), struct{}{}, &testSigner{account: signerAcc})
	require.Error(t, err)
}

func TestSubscribeAccounts(t *testing.T) {
	c := initTestWSServer(t, "success", false)
	require.NoError(t, c.SubscribeAccounts(signerAcc))
}

func TestNotificationStream(t *testing.T) {
	c := initTestWSServer(t, "success", false)
	require.NoError(t, c.SubscribeAccounts(signerAcc))

	tx, err := transaction.NewContractCall(signerAcc, smartcontract.NewName("ping"), nil, 100)
	require.NoError(t, err)
	res, err := c.SubmitContractCall(tx, &testSigner{account: signerAcc})
	require.NoError(t, err)

	var txMeta struct {
		Hash string `json:"hash"`
	}
	require.NoError(t, json.Unmarshal(res.TxJSON, &txMeta))
	require.Equal(t, testTxHash, txMeta.Hash)

	select {
	case ev := <-c.Notifications:
		require.True(t, ev.Validated)
		require.Equal(t, testTxHash, ev.Hash)
	case <-time.After(5 * time.Second):
		t.Fatal("no transaction event received")
	}
}

func TestNewWSError(t *testing.T) {
	_, err := NewWS(context.Background(), "ws://127.0.0.1:0", Options{DialTimeout: time.Second}, nil)
	require.Error(t, err)
}
