package kanboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallSuccess(t *testing.T) {
	var gotAuthUser, gotAuthPass string
	var gotReq map[string]any
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/jsonrpc.php", r.URL.Path)
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"1.2.35"}`))
	}))
	defer backend.Close()

	c := New(backend.URL, "jsonrpc", "token")
	res := c.Call(context.Background(), "getVersion", nil)

	require.True(t, res.Success)
	assert.Empty(t, res.Err)
	assert.Equal(t, "1.2.35", res.Data)

	assert.Equal(t, "jsonrpc", gotAuthUser)
	assert.Equal(t, "token", gotAuthPass)
	assert.Equal(t, "2.0", gotReq["jsonrpc"])
	assert.Equal(t, "getVersion", gotReq["method"])
	assert.NotEmpty(t, gotReq["id"])
}

func TestCallForwardsParams(t *testing.T) {
	var gotReq map[string]any
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":true}`))
	}))
	defer backend.Close()

	c := New(backend.URL, "jsonrpc", "token")
	res := c.Call(context.Background(), "closeTask", map[string]any{"task_id": 42})

	require.True(t, res.Success)
	params, ok := gotReq["params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), params["task_id"])
}

func TestCallBackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32603,"message":"Task not found"}}`))
	}))
	defer backend.Close()

	c := New(backend.URL, "jsonrpc", "token")
	res := c.Call(context.Background(), "getTask", map[string]any{"task_id": 9999})

	require.False(t, res.Success)
	assert.Equal(t, "kanboard error: Task not found", res.Err)
}

func TestCallNon2xxWithErrorBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":401,"message":"Authentication failed"}}`))
	}))
	defer backend.Close()

	c := New(backend.URL, "jsonrpc", "bad-token")
	res := c.Call(context.Background(), "getAllProjects", nil)

	require.False(t, res.Success)
	assert.Equal(t, "kanboard error: Authentication failed", res.Err)
}

func TestCallNon2xxPlainBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))
	defer backend.Close()

	c := New(backend.URL, "jsonrpc", "token")
	res := c.Call(context.Background(), "getAllProjects", nil)

	require.False(t, res.Success)
	assert.Equal(t, "kanboard returned status 500", res.Err)
}

func TestCallTransportError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // connection refused from here on

	c := New(backend.URL, "jsonrpc", "token")
	res := c.Call(context.Background(), "getAllProjects", nil)

	require.False(t, res.Success)
	assert.Contains(t, res.Err, "kanboard unreachable")
}

func TestCallInvalidResponseBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer backend.Close()

	c := New(backend.URL, "jsonrpc", "token")
	res := c.Call(context.Background(), "getAllProjects", nil)

	require.False(t, res.Success)
	assert.Contains(t, res.Err, "invalid kanboard response")
}

func TestBaseURLTrimsTrailingSlash(t *testing.T) {
	c := New("http://kanboard.local/", "u", "p")
	assert.Equal(t, "http://kanboard.local", c.BaseURL())
	assert.Equal(t, "http://kanboard.local/jsonrpc.php", c.endpoint())
}
