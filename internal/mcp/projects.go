package mcp

import (
	"context"
	"errors"

	"github.com/st3v0rr/mcp-kanboard/internal/format"
	"github.com/st3v0rr/mcp-kanboard/internal/kanboard"
)

// Description budgets: list views keep entries short, detail views allow more.
const (
	descriptionListLimit   = 100
	descriptionDetailLimit = 150
)

func projectStatus(p map[string]any) string {
	if kanboard.Int(p, "is_active") == 1 {
		return "active"
	}
	return "inactive"
}

func (d *Dispatcher) listProjects(ctx context.Context, _ Args) (map[string]any, error) {
	data, err := d.call(ctx, "getAllProjects", nil)
	if err != nil {
		return nil, err
	}

	items := kanboard.Items(data)
	projects := make([]map[string]any, 0, len(items))
	for _, p := range items {
		id := kanboard.Int(p, "id")
		projects = append(projects, map[string]any{
			"id":          id,
			"name":        kanboard.String(p, "name"),
			"description": format.Truncate(kanboard.String(p, "description"), descriptionListLimit),
			"status":      projectStatus(p),
			"url":         format.BoardURL(d.kb.BaseURL(), id),
		})
	}
	return map[string]any{"projects": projects, "total": len(projects)}, nil
}

func (d *Dispatcher) getProject(ctx context.Context, args Args) (map[string]any, error) {
	projectID := args.Int("project_id", 0)
	data, err := d.call(ctx, "getProjectById", map[string]any{"project_id": projectID})
	if err != nil {
		return nil, err
	}

	p := kanboard.Object(data)
	if p == nil {
		return nil, errors.New("project not found")
	}
	id := kanboard.Int(p, "id")
	return map[string]any{
		"project": map[string]any{
			"id":            id,
			"name":          kanboard.String(p, "name"),
			"description":   format.Truncate(kanboard.String(p, "description"), descriptionDetailLimit),
			"status":        projectStatus(p),
			"last_modified": format.Date(kanboard.Int64(p, "last_modified")),
			"board_url":     format.BoardURL(d.kb.BaseURL(), id),
			"url":           format.ProjectURL(d.kb.BaseURL(), id),
		},
	}, nil
}

func (d *Dispatcher) createProject(ctx context.Context, args Args) (map[string]any, error) {
	params := map[string]any{"name": args.String("name", "")}
	if args.Has("description") {
		params["description"] = args.String("description", "")
	}

	data, err := d.call(ctx, "createProject", params)
	if err != nil {
		return nil, err
	}

	id := kanboard.ToInt(data)
	return map[string]any{
		"project_id": id,
		"message":    "Project created successfully",
		"url":        format.BoardURL(d.kb.BaseURL(), id),
	}, nil
}

func (d *Dispatcher) getBoard(ctx context.Context, args Args) (map[string]any, error) {
	projectID := args.Int("project_id", 0)
	data, err := d.call(ctx, "getBoard", map[string]any{"project_id": projectID})
	if err != nil {
		return nil, err
	}

	columns := make([]map[string]any, 0)
	total := 0
	for _, swimlane := range kanboard.Items(data) {
		for _, col := range kanboard.Items(swimlane["columns"]) {
			tasks := kanboard.Items(col["tasks"])
			entries := make([]map[string]any, 0, len(tasks))
			for _, t := range tasks {
				entries = append(entries, map[string]any{
					"id":       kanboard.Int(t, "id"),
					"title":    kanboard.String(t, "title"),
					"owner":    ownerLabel(t),
					"priority": format.PriorityLabel(kanboard.Int(t, "priority")),
				})
			}
			count := kanboard.Int(col, "nb_tasks")
			if count == 0 {
				count = len(entries)
			}
			total += count
			columns = append(columns, map[string]any{
				"id":         kanboard.Int(col, "id"),
				"title":      kanboard.String(col, "title"),
				"task_count": count,
				"tasks":      entries,
			})
		}
	}
	return map[string]any{
		"project_id":  projectID,
		"columns":     columns,
		"total_tasks": total,
		"url":         format.BoardURL(d.kb.BaseURL(), projectID),
	}, nil
}

func (d *Dispatcher) getColumns(ctx context.Context, args Args) (map[string]any, error) {
	projectID := args.Int("project_id", 0)
	data, err := d.call(ctx, "getColumns", map[string]any{"project_id": projectID})
	if err != nil {
		return nil, err
	}

	items := kanboard.Items(data)
	columns := make([]map[string]any, 0, len(items))
	for _, col := range items {
		columns = append(columns, map[string]any{
			"id":         kanboard.Int(col, "id"),
			"title":      kanboard.String(col, "title"),
			"position":   kanboard.Int(col, "position"),
			"task_limit": kanboard.Int(col, "task_limit"),
		})
	}
	return map[string]any{"project_id": projectID, "columns": columns}, nil
}
