package mcp

import (
	"context"
	"encoding/json"

	"github.com/st3v0rr/mcp-kanboard/pkg/clog"
	"github.com/st3v0rr/mcp-kanboard/pkg/panicerr"
)

// Gateway routes top-level JSON-RPC methods to the dispatcher and wraps
// everything in JSON-RPC envelopes. It is stateless across requests.
type Gateway struct {
	dispatcher *Dispatcher
	info       ServerInfo
}

func NewGateway(dispatcher *Dispatcher, name, version string) *Gateway {
	return &Gateway{
		dispatcher: dispatcher,
		info:       ServerInfo{Name: name, Version: version},
	}
}

// ServerInfo returns the identity advertised during initialize.
func (g *Gateway) ServerInfo() ServerInfo {
	return g.info
}

// ToolNames returns the catalog's tool names in order.
func (g *Gateway) ToolNames() []string {
	tools := g.dispatcher.Tools()
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}
	return names
}

// Dispatcher exposes the tool dispatcher for auxiliary endpoints (smoke test).
func (g *Gateway) Dispatcher() *Dispatcher {
	return g.dispatcher
}

// HandleRPC processes one JSON-RPC request and always produces a response
// envelope. A panic below this layer becomes a -32603 error; the process
// never dies on a request.
func (g *Gateway) HandleRPC(ctx context.Context, req *Request) *Response {
	clog.AddAttribute(ctx, "rpc_method", req.Method)

	var resp *Response
	err := panicerr.Safe(func() error {
		resp = g.route(ctx, req)
		return nil
	})()
	if err != nil {
		return errorResponse(req.ID, CodeInternalError, err.Error())
	}
	return resp
}

func (g *Gateway) route(ctx context.Context, req *Request) *Response {
	switch req.Method {
	case "initialize":
		return resultResponse(req.ID, InitializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities: ServerCapabilities{
				Tools: ToolsCapability{ListChanged: false},
			},
			ServerInfo: g.info,
		})
	case "ping", "notifications/initialized":
		return resultResponse(req.ID, struct{}{})
	case "tools/list":
		return resultResponse(req.ID, ToolsListResult{Tools: g.dispatcher.Tools()})
	case "tools/call":
		return g.callTool(ctx, req)
	case "resources/list":
		return resultResponse(req.ID, map[string]any{"resources": []any{}})
	case "prompts/list":
		return resultResponse(req.ID, map[string]any{"prompts": []any{}})
	default:
		return errorResponse(req.ID, CodeMethodNotFound, "Method not found")
	}
}

func (g *Gateway) callTool(ctx context.Context, req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, CodeInvalidParams, "Invalid tool call parameters")
	}
	clog.AddAttribute(ctx, "tool", params.Name)

	result, ok := g.dispatcher.Dispatch(ctx, params.Name, params.Arguments)
	if !ok {
		return errorResponse(req.ID, CodeMethodNotFound, "Tool not found")
	}
	return resultResponse(req.ID, textResult(result))
}
