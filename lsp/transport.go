package lsp

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"
	"github.com/sourcegraph/jsonrpc2"
	wsrpc "github.com/sourcegraph/jsonrpc2/websocket"
)

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	return errors.Join(os.Stdin.Close(), os.Stdout.Close())
}

// ServeConn serves one client on rwc until it disconnects or ctx is done.
func (srv *Server) ServeConn(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	return srv.serve(ctx, stream)
}

func (srv *Server) serve(ctx context.Context, stream jsonrpc2.ObjectStream) (err error) {
	conn := jsonrpc2.NewConn(ctx, stream, srv)

	select {
	case <-conn.DisconnectNotify():
	case <-ctx.Done():
		err = errors.Join(ctx.Err(), conn.Close())
	}

	return
}

// ServeStdio serves one client on standard input and output.
func (srv *Server) ServeStdio(ctx context.Context) error {
	glog.V(1).Infof("lsp: serving stdio")
	return srv.ServeConn(ctx, stdrwc{})
}

// ServeTCP accepts clients on addr until ctx is done.
func (srv *Server) ServeTCP(ctx context.Context, addr string) (err error) {
	lc := net.ListenConfig{}
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return
	}

	err = srv.Serve(ctx, listener)
	return
}

// Serve accepts clients on listener until ctx is done. The listener is
// closed on return.
func (srv *Server) Serve(ctx context.Context, listener net.Listener) (err error) {
	defer listener.Close()

	stop := context.AfterFunc(ctx, func() {
		listener.Close()
	})
	defer stop()

	glog.Infof("lsp: listening on %v", listener.Addr())

	for id := 1; ; id++ {
		var conn net.Conn
		conn, err = listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				err = ctx.Err()
			}
			return
		}

		glog.V(1).Infof("lsp: connection #%d from %v", id, conn.RemoteAddr())
		go func() {
			err := srv.ServeConn(ctx, conn)
			if err != nil {
				glog.V(1).Infof("lsp: connection #%d: %v", id, err)
			}
			glog.V(1).Infof("lsp: connection #%d closed", id)
		}()
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocket returns an HTTP handler serving clients over WebSocket.
func (srv *Server) WebSocket(ctx context.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			glog.Warningf("lsp: websocket upgrade: %v", err)
			return
		}

		glog.V(1).Infof("lsp: websocket from %v", r.RemoteAddr)
		err = srv.serve(ctx, wsrpc.NewObjectStream(ws))
		if err != nil {
			glog.V(1).Infof("lsp: websocket %v: %v", r.RemoteAddr, err)
		}
	})
}

// ServeWebSocket accepts WebSocket clients on addr until ctx is done.
func (srv *Server) ServeWebSocket(ctx context.Context, addr string) (err error) {
	mux := http.NewServeMux()
	mux.Handle("/", srv.WebSocket(ctx))

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	stop := context.AfterFunc(ctx, func() {
		server.Close()
	})
	defer stop()

	glog.Infof("lsp: websocket listening on %v", addr)

	err = server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) && ctx.Err() != nil {
		err = ctx.Err()
	}
	return
}
