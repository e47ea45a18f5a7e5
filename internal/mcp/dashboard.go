package mcp

import (
	"context"

	"github.com/st3v0rr/mcp-kanboard/internal/format"
	"github.com/st3v0rr/mcp-kanboard/internal/kanboard"
)

func (d *Dispatcher) listUsers(ctx context.Context, _ Args) (map[string]any, error) {
	data, err := d.call(ctx, "getAllUsers", nil)
	if err != nil {
		return nil, err
	}

	items := kanboard.Items(data)
	users := make([]map[string]any, 0, len(items))
	for _, u := range items {
		users = append(users, map[string]any{
			"id":       kanboard.Int(u, "id"),
			"username": kanboard.String(u, "username"),
			"name":     kanboard.String(u, "name"),
			"email":    kanboard.String(u, "email"),
			"role":     kanboard.String(u, "role"),
		})
	}
	return map[string]any{"users": users, "total": len(users)}, nil
}

// getMyDashboard issues two sequential backend calls and is all-or-nothing:
// if either fails, the whole result is the first error. No partial data.
func (d *Dispatcher) getMyDashboard(ctx context.Context, _ Args) (map[string]any, error) {
	projectData, err := d.call(ctx, "getAllProjects", nil)
	if err != nil {
		return nil, err
	}
	taskData, err := d.call(ctx, "getMyTasks", nil)
	if err != nil {
		return nil, err
	}

	projectItems := kanboard.Items(projectData)
	projects := make([]map[string]any, 0, len(projectItems))
	for _, p := range projectItems {
		id := kanboard.Int(p, "id")
		projects = append(projects, map[string]any{
			"id":   id,
			"name": kanboard.String(p, "name"),
			"url":  format.BoardURL(d.kb.BaseURL(), id),
		})
	}

	taskItems := kanboard.Items(taskData)
	tasks := make([]map[string]any, 0, len(taskItems))
	for _, t := range taskItems {
		tasks = append(tasks, d.taskSummary(t))
	}

	return map[string]any{
		"projects":       projects,
		"my_tasks":       tasks,
		"total_projects": len(projects),
		"total_tasks":    len(tasks),
	}, nil
}
