// Package toolapi exposes engine operations behind a transport-agnostic
// tool contract: JSON arguments in, a JSON result or structured error out.
package toolapi

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
)

// Error codes surfaced to callers.
const (
	CodeUnknownTool   = "unknown_tool"
	CodeInvalidParams = "invalid_params"
	CodeInternal      = "internal_error"
)

// Error is the structured failure returned to the caller.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// InvalidParams builds an invalid_params error.
func InvalidParams(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidParams, Message: fmt.Sprintf(format, args...)}
}

// HandlerFunc executes one tool invocation.
type HandlerFunc func(ctx context.Context, args json.RawMessage) (any, error)

// Tool is a named operation with a published input schema.
type Tool struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Handler     HandlerFunc
}

// Server dispatches tool invocations. The host serializes calls, so the
// server keeps no locks.
type Server struct {
	tools      map[string]Tool
	names      []string
	onDispatch func()
}

// NewServer returns an empty Server.
func NewServer() *Server {
	return &Server{tools: make(map[string]Tool)}
}

// OnDispatch installs a hook that runs once per inbound invocation,
// before the handler. The engine uses it to advance idle decay.
func (s *Server) OnDispatch(fn func()) {
	s.onDispatch = fn
}

// Register adds a tool. Duplicate names are a wiring bug.
func (s *Server) Register(t Tool) error {
	if t.Name == "" || t.Handler == nil {
		return fmt.Errorf("tool needs a name and a handler")
	}
	if _, exists := s.tools[t.Name]; exists {
		return fmt.Errorf("tool %q already registered", t.Name)
	}
	s.tools[t.Name] = t
	s.names = append(s.names, t.Name)
	return nil
}

// Tools returns the registered tools in registration order.
func (s *Server) Tools() []Tool {
	out := make([]Tool, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.tools[name])
	}
	return out
}

// Dispatch runs one invocation and normalizes failures into *Error.
func (s *Server) Dispatch(ctx context.Context, name string, args json.RawMessage) (any, *Error) {
	if s.onDispatch != nil {
		s.onDispatch()
	}

	tool, ok := s.tools[name]
	if !ok {
		return nil, &Error{Code: CodeUnknownTool, Message: fmt.Sprintf("no such tool: %q", name)}
	}

	result, err := tool.Handler(ctx, args)
	if err != nil {
		var terr *Error
		if e, ok := err.(*Error); ok {
			terr = e
		} else {
			terr = &Error{Code: CodeInternal, Message: err.Error()}
		}
		slog.Warn("tool invocation failed", "tool", name, "code", terr.Code, "error", terr.Message)
		return nil, terr
	}
	return result, nil
}

type request struct {
	Tool string          `json:"tool"`
	Args json.RawMessage `json:"args"`
}

type response struct {
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

// Run serves newline-delimited JSON requests until EOF or context
// cancellation. Malformed lines produce an error response and the loop
// keeps going; parse failures never escape.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			if encErr := enc.Encode(response{OK: false, Error: InvalidParams("malformed request: %v", err)}); encErr != nil {
				return encErr
			}
			continue
		}

		result, terr := s.Dispatch(ctx, req.Tool, req.Args)
		resp := response{OK: terr == nil, Result: result, Error: terr}
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ObjectSchema builds an object input schema from property schemas and
// the required field names.
func ObjectSchema(properties map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
