package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/st3v0rr/mcp-kanboard/internal/format"
	"github.com/st3v0rr/mcp-kanboard/internal/kanboard"
)

// ownerLabel picks the best available assignee display value. Kanboard only
// embeds usernames in some payloads; elsewhere there is just owner_id.
func ownerLabel(t map[string]any) string {
	if username := kanboard.String(t, "assignee_username"); username != "" {
		return username
	}
	if name := kanboard.String(t, "assignee_name"); name != "" {
		return name
	}
	if ownerID := kanboard.Int(t, "owner_id"); ownerID > 0 {
		return fmt.Sprintf("User #%d", ownerID)
	}
	return "Unassigned"
}

// taskSummary is the list-view shape shared by list_tasks, search_tasks and
// the dashboard.
func (d *Dispatcher) taskSummary(t map[string]any) map[string]any {
	id := kanboard.Int(t, "id")
	projectID := kanboard.Int(t, "project_id")
	return map[string]any{
		"id":          id,
		"title":       kanboard.String(t, "title"),
		"description": format.Truncate(kanboard.String(t, "description"), descriptionListLimit),
		"priority":    format.PriorityLabel(kanboard.Int(t, "priority")),
		"due_date":    format.Date(kanboard.Int64(t, "date_due")),
		"owner":       ownerLabel(t),
		"url":         format.TaskURL(d.kb.BaseURL(), id, projectID),
	}
}

func (d *Dispatcher) listTasks(ctx context.Context, args Args) (map[string]any, error) {
	params := map[string]any{
		"project_id": args.Int("project_id", 0),
		"status_id":  args.Int("status_id", 1),
	}
	data, err := d.call(ctx, "getAllTasks", params)
	if err != nil {
		return nil, err
	}

	items := kanboard.Items(data)
	tasks := make([]map[string]any, 0, len(items))
	for _, t := range items {
		tasks = append(tasks, d.taskSummary(t))
	}
	return map[string]any{"tasks": tasks, "total": len(tasks)}, nil
}

func (d *Dispatcher) getTask(ctx context.Context, args Args) (map[string]any, error) {
	data, err := d.call(ctx, "getTask", map[string]any{"task_id": args.Int("task_id", 0)})
	if err != nil {
		return nil, err
	}

	t := kanboard.Object(data)
	if t == nil {
		return nil, errors.New("task not found")
	}
	id := kanboard.Int(t, "id")
	projectID := kanboard.Int(t, "project_id")
	status := "closed"
	if kanboard.Int(t, "is_active") == 1 {
		status = "open"
	}
	return map[string]any{
		"task": map[string]any{
			"id":          id,
			"title":       kanboard.String(t, "title"),
			"description": format.Truncate(kanboard.String(t, "description"), descriptionDetailLimit),
			"priority":    format.PriorityLabel(kanboard.Int(t, "priority")),
			"status":      status,
			"project_id":  projectID,
			"column_id":   kanboard.Int(t, "column_id"),
			"owner":       ownerLabel(t),
			"due_date":    format.Date(kanboard.Int64(t, "date_due")),
			"created":     format.Date(kanboard.Int64(t, "date_creation")),
			"modified":    format.Date(kanboard.Int64(t, "date_modification")),
			"url":         format.TaskURL(d.kb.BaseURL(), id, projectID),
		},
	}, nil
}

func (d *Dispatcher) createTask(ctx context.Context, args Args) (map[string]any, error) {
	projectID := args.Int("project_id", 0)
	params := map[string]any{
		"title":      args.String("title", ""),
		"project_id": projectID,
		"priority":   args.Int("priority", 0),
	}
	if args.Has("description") {
		params["description"] = args.String("description", "")
	}
	if args.Has("column_id") {
		params["column_id"] = args.Int("column_id", 0)
	}
	if args.Has("owner_id") {
		params["owner_id"] = args.Int("owner_id", 0)
	}
	if args.Has("date_due") {
		params["date_due"] = args.String("date_due", "")
	}

	data, err := d.call(ctx, "createTask", params)
	if err != nil {
		return nil, err
	}

	id := kanboard.ToInt(data)
	return map[string]any{
		"task_id": id,
		"message": "Task created successfully",
		"url":     format.TaskURL(d.kb.BaseURL(), id, projectID),
	}, nil
}

func (d *Dispatcher) updateTask(ctx context.Context, args Args) (map[string]any, error) {
	taskID := args.Int("task_id", 0)
	params := map[string]any{"id": taskID}
	if args.Has("title") {
		params["title"] = args.String("title", "")
	}
	if args.Has("description") {
		params["description"] = args.String("description", "")
	}
	if args.Has("priority") {
		params["priority"] = args.Int("priority", 0)
	}
	if args.Has("owner_id") {
		params["owner_id"] = args.Int("owner_id", 0)
	}
	if args.Has("date_due") {
		params["date_due"] = args.String("date_due", "")
	}

	if _, err := d.call(ctx, "updateTask", params); err != nil {
		return nil, err
	}
	return map[string]any{
		"task_id": taskID,
		"message": "Task updated successfully",
	}, nil
}

func (d *Dispatcher) moveTask(ctx context.Context, args Args) (map[string]any, error) {
	taskID := args.Int("task_id", 0)
	columnID := args.Int("column_id", 0)
	params := map[string]any{
		"project_id":  args.Int("project_id", 0),
		"task_id":     taskID,
		"column_id":   columnID,
		"position":    args.Int("position", 1),
		"swimlane_id": args.Int("swimlane_id", 1),
	}

	if _, err := d.call(ctx, "moveTaskPosition", params); err != nil {
		return nil, err
	}
	return map[string]any{
		"task_id":   taskID,
		"column_id": columnID,
		"message":   "Task moved successfully",
	}, nil
}

func (d *Dispatcher) closeTask(ctx context.Context, args Args) (map[string]any, error) {
	taskID := args.Int("task_id", 0)
	if _, err := d.call(ctx, "closeTask", map[string]any{"task_id": taskID}); err != nil {
		return nil, err
	}
	return map[string]any{
		"task_id": taskID,
		"message": "Task closed successfully",
	}, nil
}

func (d *Dispatcher) getOverdueTasks(ctx context.Context, _ Args) (map[string]any, error) {
	data, err := d.call(ctx, "getOverdueTasks", nil)
	if err != nil {
		return nil, err
	}

	items := kanboard.Items(data)
	tasks := make([]map[string]any, 0, len(items))
	for _, t := range items {
		id := kanboard.Int(t, "id")
		projectID := kanboard.Int(t, "project_id")
		tasks = append(tasks, map[string]any{
			"id":           id,
			"title":        kanboard.String(t, "title"),
			"project_id":   projectID,
			"project_name": kanboard.String(t, "project_name"),
			"due_date":     format.Date(kanboard.Int64(t, "date_due")),
			"owner":        ownerLabel(t),
			"url":          format.TaskURL(d.kb.BaseURL(), id, projectID),
		})
	}
	return map[string]any{"tasks": tasks, "total": len(tasks)}, nil
}

func (d *Dispatcher) searchTasks(ctx context.Context, args Args) (map[string]any, error) {
	query := args.String("query", "")
	params := map[string]any{
		"project_id": args.Int("project_id", 0),
		"query":      query,
	}
	data, err := d.call(ctx, "searchTasks", params)
	if err != nil {
		return nil, err
	}

	items := kanboard.Items(data)
	tasks := make([]map[string]any, 0, len(items))
	for _, t := range items {
		tasks = append(tasks, d.taskSummary(t))
	}
	return map[string]any{"query": query, "tasks": tasks, "total": len(tasks)}, nil
}
