package lsp

import (
	"context"
	"net"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sourcegraph/jsonrpc2"
	wsrpc "github.com/sourcegraph/jsonrpc2/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ez80asm/asm"
)

func TestServe(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(nil)
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, listener)
	}()

	for range 2 {
		nc, err := net.Dial("tcp", listener.Addr().String())
		require.NoError(t, err)

		conn := jsonrpc2.NewConn(ctx, jsonrpc2.NewBufferedStream(nc, jsonrpc2.VSCodeObjectCodec{}), &client{})

		var init InitializeResult
		assert.NoError(conn.Call(ctx, "initialize", InitializeParams{}, &init))
		assert.Equal(SOURCE, init.ServerInfo.Name)
		conn.Close()
	}

	cancel()
	assert.ErrorIs(<-done, context.Canceled)
}

func TestWebSocket(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := NewServer(nil)
	hs := httptest.NewServer(srv.WebSocket(ctx))
	defer hs.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(hs.URL, "http"), nil)
	require.NoError(t, err)

	cl := &client{published: make(chan PublishDiagnosticsParams, 1)}
	conn := jsonrpc2.NewConn(ctx, wsrpc.NewObjectStream(ws), cl)
	defer conn.Close()

	var init InitializeResult
	require.NoError(t, conn.Call(ctx, "initialize", InitializeParams{}, &init))
	assert.Equal(1, init.Capabilities.TextDocumentSync)

	require.NoError(t, conn.Notify(ctx, "textDocument/didOpen", DidOpenTextDocumentParams{
		TextDocument: TextDocumentItem{
			URI:  "file:///nowhere/main.asm",
			Text: "  ld a,\n",
		},
	}))

	p := cl.wait(t)
	if assert.Len(p.Diagnostics, 1) {
		assert.Equal(0, p.Diagnostics[0].Range.Start.Line)
		assert.Equal(asm.ErrOperandMissing.Error(), p.Diagnostics[0].Message)
	}
}

// brokenListener fails every Accept and counts Close calls.
type brokenListener struct {
	net.Listener
	closes atomic.Int32
}

func (bl *brokenListener) Accept() (net.Conn, error) {
	return nil, net.ErrClosed
}

func (bl *brokenListener) Close() error {
	bl.closes.Add(1)
	return nil
}

func (bl *brokenListener) Addr() net.Addr {
	return &net.TCPAddr{}
}

func TestServe_AcceptError(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bl := &brokenListener{}
	err := NewServer(nil).Serve(ctx, bl)
	assert.ErrorIs(err, net.ErrClosed)
	assert.Equal(int32(1), bl.closes.Load())

	cancel()
	assert.Never(func() bool {
		return bl.closes.Load() != 1
	}, 100*time.Millisecond, 10*time.Millisecond)
}

func TestServeWebSocket_Error(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := NewServer(nil).ServeWebSocket(ctx, "256.0.0.1:bad")
	assert.Error(err)
	assert.NoError(ctx.Err())
}
