package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"raster/internal/diag"
	"raster/internal/driver"
	"raster/internal/opcode"
	"raster/internal/source"
	"raster/internal/token"
)

var (
	// ErrExit signals a graceful shutdown after receiving "exit".
	ErrExit = errors.New("lsp exit")
	// ErrExitWithoutShutdown signals an "exit" without a preceding "shutdown".
	ErrExitWithoutShutdown = errors.New("lsp exit without shutdown")
)

// ServerOptions configures LSP server behavior.
type ServerOptions struct {
	CPU            opcode.CPU
	MaxDiagnostics int
	// Cache ускоряет построение индекса определений; nil допустим.
	Cache *driver.DiskCache
	// SkipWorkspaceIndex disables indexing on initialize (tests).
	SkipWorkspaceIndex bool
}

// document is the live state of one open editor buffer: the overlay text
// plus the scan results for it. Replaced wholesale on every change.
type document struct {
	text    string
	version int
	fileSet *source.FileSet
	file    *source.File
	stream  *token.Stream
	bag     *diag.Bag
}

// Server handles stdio JSON-RPC for the assembly language server.
// Сканирование однопроходное и дешёвое, поэтому каждый didChange
// пересканирует буфер синхронно — без дебаунса и фоновых горутин.
type Server struct {
	in     *bufio.Reader
	out    *bufio.Writer
	sendMu sync.Mutex

	mu                sync.Mutex
	docs              map[string]*document
	workspaceRoot     string
	index             *driver.Index
	shutdownRequested bool

	cpu            opcode.CPU
	mnemonics      *opcode.Table
	maxDiagnostics int
	cache          *driver.DiskCache
	skipIndex      bool
	baseCtx        context.Context
}

// NewServer constructs a new LSP server.
func NewServer(in io.Reader, out io.Writer, opts ServerOptions) *Server {
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = 100
	}
	return &Server{
		in:             bufio.NewReader(in),
		out:            bufio.NewWriter(out),
		docs:           make(map[string]*document),
		cpu:            opts.CPU,
		mnemonics:      opcode.ForCPU(opts.CPU),
		maxDiagnostics: maxDiagnostics,
		cache:          opts.Cache,
		skipIndex:      opts.SkipWorkspaceIndex,
	}
}

// Run serves LSP requests until shutdown.
func (s *Server) Run(ctx context.Context) error {
	s.baseCtx = ctx
	for {
		payload, err := readMessage(s.in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logf("failed to parse message: %v", err)
			continue
		}
		if msg.Method == "" {
			continue
		}
		if err := s.handleMessage(&msg); err != nil {
			return err
		}
	}
}

func (s *Server) handleMessage(msg *rpcMessage) error {
	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "initialized":
		return nil
	case "shutdown":
		return s.handleShutdown(msg)
	case "exit":
		if s.shutdownRequested {
			return ErrExit
		}
		return ErrExitWithoutShutdown
	case "textDocument/didOpen":
		return s.handleDidOpen(msg)
	case "textDocument/didChange":
		return s.handleDidChange(msg)
	case "textDocument/didClose":
		return s.handleDidClose(msg)
	case "textDocument/hover":
		return s.handleHover(msg)
	case "textDocument/definition":
		return s.handleDefinition(msg)
	case "textDocument/completion":
		return s.handleCompletion(msg)
	default:
		if len(msg.ID) > 0 {
			return s.sendError(msg.ID, -32601, "method not found")
		}
		return nil
	}
}

func (s *Server) handleInitialize(msg *rpcMessage) error {
	var params initializeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	root := ""
	if params.RootURI != "" {
		root = uriToPath(params.RootURI)
	}
	if root == "" && params.RootPath != "" {
		root = params.RootPath
	}
	if root == "" && len(params.WorkspaceFolders) > 0 {
		root = uriToPath(params.WorkspaceFolders[0].URI)
	}
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}
	s.mu.Lock()
	s.workspaceRoot = root
	s.mu.Unlock()

	if root != "" && !s.skipIndex {
		s.rebuildIndex(root)
	}

	result := initializeResult{
		Capabilities: serverCapabilities{
			TextDocumentSync: textDocumentSyncOptions{
				OpenClose: true,
				Change:    2,
			},
			HoverProvider:      true,
			DefinitionProvider: true,
			CompletionProvider: &completionOptions{
				TriggerCharacters: []string{"!"},
			},
		},
	}
	return s.sendResponse(msg.ID, result)
}

// rebuildIndex сканирует рабочую директорию и подменяет индекс целиком.
func (s *Server) rebuildIndex(root string) {
	ctx := s.baseCtx
	if ctx == nil {
		ctx = context.Background()
	}
	index, _, err := driver.BuildIndex(ctx, driver.IndexOptions{
		Dir:            root,
		CPU:            s.cpu,
		MaxDiagnostics: s.maxDiagnostics,
		Cache:          s.cache,
	})
	if err != nil {
		s.logf("workspace index failed: %v", err)
		return
	}
	s.mu.Lock()
	s.index = index
	s.mu.Unlock()
}

func (s *Server) handleShutdown(msg *rpcMessage) error {
	s.mu.Lock()
	s.shutdownRequested = true
	s.mu.Unlock()
	return s.sendResponse(msg.ID, nil)
}

func (s *Server) handleDidOpen(msg *rpcMessage) error {
	var params didOpenTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	doc := s.rescan(uri, params.TextDocument.Text, params.TextDocument.Version)
	return s.publishFor(uri, doc)
}

func (s *Server) handleDidChange(msg *rpcMessage) error {
	var params didChangeTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	text := ""
	if doc, ok := s.docs[uri]; ok {
		text = doc.text
	}
	s.mu.Unlock()
	text = applyChanges(text, params.ContentChanges)
	doc := s.rescan(uri, text, params.TextDocument.Version)
	return s.publishFor(uri, doc)
}

func (s *Server) handleDidClose(msg *rpcMessage) error {
	var params didCloseTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	_, wasOpen := s.docs[uri]
	delete(s.docs, uri)
	s.mu.Unlock()
	if wasOpen {
		// очистить опубликованные диагностики закрытого буфера
		return s.sendPublish(uri, nil)
	}
	return nil
}

// rescan replaces the document state with a fresh scan of the overlay text.
func (s *Server) rescan(uri, text string, version int) *document {
	res := driver.TokenizeBytes(uriToPath(uri), []byte(text), s.cpu, s.maxDiagnostics)
	doc := &document{
		text:    text,
		version: version,
		fileSet: res.FileSet,
		file:    res.File,
		stream:  res.Stream,
		bag:     res.Bag,
	}
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

func (s *Server) documentFor(uri string) *document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[canonicalURI(uri)]
}

func (s *Server) currentIndex() *driver.Index {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// publishFor maps scan diagnostics onto the wire format and pushes them.
func (s *Server) publishFor(uri string, doc *document) error {
	list := make([]lspDiagnostic, 0, doc.bag.Len())
	for _, d := range doc.bag.Items() {
		list = append(list, lspDiagnostic{
			Range:    rangeForSpan(doc.file, d.Primary),
			Severity: lspSeverity(d.Severity),
			Code:     d.Code.ID(),
			Source:   "raster",
			Message:  d.Message,
		})
	}
	return s.sendPublish(uri, list)
}

func lspSeverity(sev diag.Severity) int {
	switch sev {
	case diag.SevError:
		return 1
	case diag.SevWarning:
		return 2
	}
	return 3
}

// tokenForPosition finds the token under the cursor in an open document.
func (s *Server) tokenForPosition(uri string, pos position) (*document, token.Token, bool) {
	doc := s.documentFor(uri)
	if doc == nil {
		return nil, token.Token{}, false
	}
	offset := offsetForPositionInFile(doc.file, pos)
	tok, ok := doc.stream.TokenAt(offset)
	return doc, tok, ok
}

func (s *Server) sendResponse(id json.RawMessage, result any) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      json.RawMessage(id),
		"result":  result,
	}
	return s.send(msg)
}

func (s *Server) sendError(id json.RawMessage, code int, message string) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      json.RawMessage(id),
		"error": rpcError{
			Code:    code,
			Message: message,
		},
	}
	return s.send(msg)
}

func (s *Server) sendPublish(uri string, list []lspDiagnostic) error {
	if list == nil {
		list = []lspDiagnostic{}
	}
	msg := map[string]any{
		"jsonrpc": "2.0",
		"method":  "textDocument/publishDiagnostics",
		"params": publishDiagnosticsParams{
			URI:         uri,
			Diagnostics: list,
		},
	}
	return s.send(msg)
}

func (s *Server) send(msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if err := writeMessage(s.out, payload); err != nil {
		return err
	}
	return s.out.Flush()
}

func (s *Server) logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "lsp: "+format+"\n", args...)
}
