package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/st3v0rr/mcp-kanboard/internal/kanboard"
	"github.com/st3v0rr/mcp-kanboard/internal/metrics"
	"github.com/st3v0rr/mcp-kanboard/pkg/panicerr"
)

// Args are the raw tool arguments from tools/call. JSON numbers arrive as
// float64; the accessors coerce. There is no local schema enforcement, a
// missing required argument is forwarded as its zero value and rejected by
// the backend.
type Args map[string]any

func (a Args) Int(key string, def int) int {
	switch v := a[key].(type) {
	case float64:
		return int(v)
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return def
}

func (a Args) String(key, def string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return def
}

func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

type toolFunc func(ctx context.Context, args Args) (map[string]any, error)

// Dispatcher routes tool invocations to their Kanboard-backed handlers.
type Dispatcher struct {
	kb       *kanboard.Client
	tools    []Tool
	handlers map[string]toolFunc
}

func NewDispatcher(kb *kanboard.Client) *Dispatcher {
	d := &Dispatcher{
		kb:    kb,
		tools: catalog(),
	}
	d.handlers = map[string]toolFunc{
		"list_projects":     d.listProjects,
		"get_project":       d.getProject,
		"create_project":    d.createProject,
		"get_board":         d.getBoard,
		"list_tasks":        d.listTasks,
		"get_task":          d.getTask,
		"create_task":       d.createTask,
		"update_task":       d.updateTask,
		"move_task":         d.moveTask,
		"close_task":        d.closeTask,
		"get_columns":       d.getColumns,
		"list_users":        d.listUsers,
		"get_my_dashboard":  d.getMyDashboard,
		"get_overdue_tasks": d.getOverdueTasks,
		"search_tasks":      d.searchTasks,
		"add_comment":       d.addComment,
		"list_comments":     d.listComments,
	}
	for _, tool := range d.tools {
		if _, ok := d.handlers[tool.Name]; !ok {
			panic("mcp: catalog tool without handler: " + tool.Name)
		}
	}
	return d
}

// Tools returns the catalog in its advertised order.
func (d *Dispatcher) Tools() []Tool {
	return d.tools
}

// Dispatch runs the named tool and folds every failure mode (backend error,
// handler error, handler panic) into a {success:false, error} result. The
// second return value is false when the tool name is unknown; that case is a
// protocol error, not a tool result.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, rawArgs map[string]any) (map[string]any, bool) {
	handler, ok := d.handlers[name]
	if !ok {
		return nil, false
	}

	var result map[string]any
	err := panicerr.Safe(func() error {
		var err error
		result, err = handler(ctx, Args(rawArgs))
		return err
	})()
	metrics.CountToolInvocation(name, err == nil)

	if err != nil {
		return map[string]any{"success": false, "error": err.Error()}, true
	}
	if result == nil {
		result = map[string]any{}
	}
	result["success"] = true
	return result, true
}

// call unwraps a backend Result into data or an error for the handlers.
func (d *Dispatcher) call(ctx context.Context, method string, params any) (any, error) {
	res := d.kb.Call(ctx, method, params)
	if !res.Success {
		return nil, errors.New(res.Err)
	}
	return res.Data, nil
}
