// Package lsp serves assembler diagnostics over JSON-RPC, using the
// language server protocol's document synchronization messages.
package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"path"
	"sync"

	"github.com/golang/glog"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/ezrec/ez80asm/asm"
	"github.com/ezrec/ez80asm/config"
	"github.com/ezrec/ez80asm/preproc"
	"github.com/ezrec/ez80asm/slot"
	"github.com/ezrec/ez80asm/source"
)

const (
	SOURCE = "ez80asm" // Diagnostic source name.
)

// Server assembles open documents and reports their diagnostics.
type Server struct {
	Config *config.Config // Nil is config.Default.

	mutex     sync.Mutex
	documents map[DocumentURI]TextDocumentItem
}

// NewServer returns a server using the settings in cfg.
func NewServer(cfg *config.Config) *Server {
	return &Server{
		Config:    cfg,
		documents: map[DocumentURI]TextDocumentItem{},
	}
}

func (srv *Server) config() *config.Config {
	if srv.Config == nil {
		return config.Default()
	}
	return srv.Config
}

// Handle implements jsonrpc2.Handler.
func (srv *Server) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	glog.V(1).Infof("lsp: %v", req.Method)

	var err error
	switch req.Method {
	case "initialize":
		err = srv.initialize(ctx, conn, req)
	case "initialized":
	case "textDocument/didOpen":
		err = srv.didOpen(ctx, conn, req)
	case "textDocument/didChange":
		err = srv.didChange(ctx, conn, req)
	case "textDocument/didClose":
		err = srv.didClose(ctx, conn, req)
	case "textDocument/diagnostic":
		err = srv.diagnostic(ctx, conn, req)
	case "shutdown":
		err = conn.Reply(ctx, req.ID, nil)
	case "exit":
		err = conn.Close()
	default:
		if !req.Notif {
			err = conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeMethodNotFound,
				Message: f("method %v not found", req.Method),
			})
		}
	}

	if err != nil {
		glog.Warningf("lsp: %v: %v", req.Method, err)
	}
}

// params decodes the request parameters, replying with an error if they
// are invalid.
func params(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request, v any) (err error) {
	if req.Params == nil {
		err = ErrParams
	} else {
		err = json.Unmarshal(*req.Params, v)
	}
	if err == nil {
		return
	}

	if !req.Notif {
		rerr := &jsonrpc2.Error{
			Code:    jsonrpc2.CodeInvalidParams,
			Message: err.Error(),
		}
		err = errors.Join(err, conn.ReplyWithError(ctx, req.ID, rerr))
	}
	return
}

func (srv *Server) initialize(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (err error) {
	var p InitializeParams
	err = params(ctx, conn, req, &p)
	if err != nil {
		return
	}

	result := InitializeResult{}
	result.Capabilities.TextDocumentSync = 1
	result.ServerInfo.Name = SOURCE

	err = conn.Reply(ctx, req.ID, result)
	return
}

func (srv *Server) didOpen(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (err error) {
	var p DidOpenTextDocumentParams
	err = params(ctx, conn, req, &p)
	if err != nil {
		return
	}

	srv.mutex.Lock()
	if srv.documents == nil {
		srv.documents = map[DocumentURI]TextDocumentItem{}
	}
	srv.documents[p.TextDocument.URI] = p.TextDocument
	srv.mutex.Unlock()

	err = srv.publish(ctx, conn, p.TextDocument)
	return
}

func (srv *Server) didChange(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (err error) {
	var p DidChangeTextDocumentParams
	err = params(ctx, conn, req, &p)
	if err != nil {
		return
	}

	srv.mutex.Lock()
	doc, ok := srv.documents[p.TextDocument.URI]
	if ok {
		doc.Version = p.TextDocument.Version
		if count := len(p.ContentChanges); count > 0 {
			doc.Text = p.ContentChanges[count-1].Text
		}
		srv.documents[p.TextDocument.URI] = doc
	}
	srv.mutex.Unlock()

	if !ok {
		err = ErrDocument
		return
	}

	err = srv.publish(ctx, conn, doc)
	return
}

func (srv *Server) didClose(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (err error) {
	var p DidCloseTextDocumentParams
	err = params(ctx, conn, req, &p)
	if err != nil {
		return
	}

	srv.mutex.Lock()
	delete(srv.documents, p.TextDocument.URI)
	srv.mutex.Unlock()

	err = conn.Notify(ctx, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         p.TextDocument.URI,
		Diagnostics: []Diagnostic{},
	})
	return
}

func (srv *Server) diagnostic(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (err error) {
	var p DocumentDiagnosticParams
	err = params(ctx, conn, req, &p)
	if err != nil {
		return
	}

	srv.mutex.Lock()
	doc, ok := srv.documents[p.TextDocument.URI]
	srv.mutex.Unlock()

	if !ok {
		err = conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeInvalidParams,
			Message: ErrDocument.Error(),
		})
		return
	}

	err = conn.Reply(ctx, req.ID, DocumentDiagnosticReport{
		Kind:  "full",
		Items: srv.Check(ctx, doc),
	})
	return
}

func (srv *Server) publish(ctx context.Context, conn *jsonrpc2.Conn, doc TextDocumentItem) error {
	return conn.Notify(ctx, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     doc.Version,
		Diagnostics: srv.Check(ctx, doc),
	})
}

// Check assembles the document and returns its diagnostics. Includes are
// resolved from the document's directory, then the configured include
// path.
func (srv *Server) Check(ctx context.Context, doc TextDocumentItem) (diags []Diagnostic) {
	diags = []Diagnostic{}

	dir, name, err := splitURI(doc.URI)
	if err != nil {
		diags = append(diags, toDiagnostic(name, err))
		return
	}

	cfg := srv.config()
	assembler := cfg.Assembler()
	assembler.Loader = slot.NewStore(append([]string{dir}, cfg.IncludePath...)...)

	res, err := assembler.Build(ctx, name, source.FromString(doc.Text, name))
	if err != nil {
		diags = append(diags, toDiagnostic(name, err))
		return
	}

	for _, err := range res.Diagnostics {
		diags = append(diags, toDiagnostic(name, err))
	}

	glog.V(1).Infof("lsp: %v: %d diagnostics", doc.URI, len(diags))

	return
}

// splitURI returns the directory and base name of a file URI.
func splitURI(uri DocumentURI) (dir string, name string, err error) {
	u, err := url.Parse(string(uri))
	if err != nil {
		return
	}

	if u.Scheme != "file" && len(u.Scheme) != 0 {
		err = ErrURI
		return
	}

	if len(u.Path) == 0 || u.Path[len(u.Path)-1] == '/' {
		err = ErrURI
		return
	}

	dir, name = path.Dir(u.Path), path.Base(u.Path)
	return
}

// toDiagnostic places err on its source line when that line is in the
// document name, and at the top of the document otherwise.
func toDiagnostic(name string, err error) (diag Diagnostic) {
	diag = Diagnostic{
		Severity: SEVERITY_ERROR,
		Source:   SOURCE,
		Message:  err.Error(),
	}

	var line source.Line
	var message string

	var serr *asm.ErrSyntax
	var ierr *preproc.ErrInclude
	switch {
	case errors.As(err, &serr):
		line = serr.Line
		message = serr.Err.Error()
	case errors.As(err, &ierr):
		line = ierr.Line
		message = ierr.Err.Error()
		if len(ierr.Name) > 0 {
			message = f("%v: %v", message, ierr.Name)
		}
	default:
		return
	}

	if line.Name != name || line.LineNo < 1 {
		return
	}

	diag.Message = message
	diag.Range.Start.Line = line.LineNo - 1
	diag.Range.End.Line = line.LineNo - 1
	diag.Range.End.Character = len(line.Text)

	return
}
