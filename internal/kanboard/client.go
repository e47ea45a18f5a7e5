// Package kanboard is a JSON-RPC 2.0 client for the Kanboard API
// (<base>/jsonrpc.php, HTTP Basic auth). All failures are returned as values:
// Call never panics and never returns a Go error, it folds backend errors and
// transport errors into the same Result shape consumed by the tool handlers.
package kanboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/st3v0rr/mcp-kanboard/internal/metrics"
)

const callTimeout = 15 * time.Second

// Client talks to a single Kanboard instance with fixed credentials.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
}

func New(baseURL, username, password string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		http:     &http.Client{Timeout: callTimeout},
	}
}

// BaseURL returns the configured Kanboard base URL without a trailing slash.
// The tool handlers use it to build browseable links.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint() string {
	return c.baseURL + "/jsonrpc.php"
}

// Result is the uniform outcome of a backend call.
type Result struct {
	Success bool
	Data    any
	Err     string
}

func failure(format string, args ...any) Result {
	return Result{Err: fmt.Sprintf(format, args...)}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	ID      string `json:"id"`
	Params  any    `json:"params,omitempty"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Call issues a single JSON-RPC request. The request id is a ULID, which is
// time-ordered and unique across concurrent calls.
func (c *Client) Call(ctx context.Context, method string, params any) Result {
	start := time.Now()
	defer func() {
		metrics.ObserveKanboardCall(method, time.Since(start))
	}()

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		ID:      ulid.Make().String(),
		Params:  params,
	})
	if err != nil {
		return failure("failed to encode %s request: %v", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return failure("failed to build %s request: %v", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.http.Do(req)
	if err != nil {
		return failure("kanboard unreachable: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure("failed to read kanboard response: %v", err)
	}

	var rpcResp rpcResponse
	decodeErr := json.Unmarshal(respBody, &rpcResp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Kanboard reports some failures (e.g. bad credentials) as non-2xx
		// with a JSON-RPC error body; prefer that message when present.
		if decodeErr == nil && rpcResp.Error != nil {
			return failure("kanboard error: %s", rpcResp.Error.Message)
		}
		return failure("kanboard returned status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return failure("invalid kanboard response: %v", decodeErr)
	}
	if rpcResp.Error != nil {
		return failure("kanboard error: %s", rpcResp.Error.Message)
	}

	var data any
	if len(rpcResp.Result) > 0 {
		if err := json.Unmarshal(rpcResp.Result, &data); err != nil {
			return failure("invalid kanboard result: %v", err)
		}
	}
	return Result{Success: true, Data: data}
}
