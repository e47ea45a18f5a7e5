package mcp

// The tool catalog is fixed at process start. Order matters: tools/list
// returns the descriptors exactly in this order.

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func numberProp(description string) map[string]any {
	return map[string]any{"type": "number", "description": description}
}

func numberPropDefault(description string, def int) map[string]any {
	return map[string]any{"type": "number", "description": description, "default": def}
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	if required == nil {
		required = []string{}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func catalog() []Tool {
	return []Tool{
		{
			Name:        "list_projects",
			Description: "List all projects visible to the configured Kanboard user",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "get_project",
			Description: "Get details of a single project by its ID",
			InputSchema: objectSchema(map[string]any{
				"project_id": numberProp("Project ID"),
			}, "project_id"),
		},
		{
			Name:        "create_project",
			Description: "Create a new project",
			InputSchema: objectSchema(map[string]any{
				"name":        stringProp("Project name"),
				"description": stringProp("Project description"),
			}, "name"),
		},
		{
			Name:        "get_board",
			Description: "Get the board of a project with its columns and tasks",
			InputSchema: objectSchema(map[string]any{
				"project_id": numberProp("Project ID"),
			}, "project_id"),
		},
		{
			Name:        "list_tasks",
			Description: "List tasks of a project, open tasks by default",
			InputSchema: objectSchema(map[string]any{
				"project_id": numberProp("Project ID"),
				"status_id":  numberPropDefault("Task status: 1 = open, 0 = closed", 1),
			}, "project_id"),
		},
		{
			Name:        "get_task",
			Description: "Get details of a single task by its ID",
			InputSchema: objectSchema(map[string]any{
				"task_id": numberProp("Task ID"),
			}, "task_id"),
		},
		{
			Name:        "create_task",
			Description: "Create a new task in a project",
			InputSchema: objectSchema(map[string]any{
				"title":       stringProp("Task title"),
				"project_id":  numberProp("Project ID"),
				"description": stringProp("Task description"),
				"column_id":   numberProp("Column to place the task in"),
				"owner_id":    numberProp("User ID to assign the task to"),
				"priority":    numberPropDefault("Priority from 0 (none) to 4 (urgent)", 0),
				"date_due":    stringProp("Due date, e.g. 2026-12-31"),
			}, "title", "project_id"),
		},
		{
			Name:        "update_task",
			Description: "Update title, description, priority, assignee or due date of a task",
			InputSchema: objectSchema(map[string]any{
				"task_id":     numberProp("Task ID"),
				"title":       stringProp("New task title"),
				"description": stringProp("New task description"),
				"priority":    numberProp("New priority from 0 to 4"),
				"owner_id":    numberProp("New assignee user ID"),
				"date_due":    stringProp("New due date, e.g. 2026-12-31"),
			}, "task_id"),
		},
		{
			Name:        "move_task",
			Description: "Move a task to another column on the board",
			InputSchema: objectSchema(map[string]any{
				"task_id":     numberProp("Task ID"),
				"project_id":  numberProp("Project ID"),
				"column_id":   numberProp("Target column ID"),
				"position":    numberPropDefault("Position inside the column, starting at 1", 1),
				"swimlane_id": numberPropDefault("Swimlane ID", 1),
			}, "task_id", "project_id", "column_id"),
		},
		{
			Name:        "close_task",
			Description: "Close a task",
			InputSchema: objectSchema(map[string]any{
				"task_id": numberProp("Task ID"),
			}, "task_id"),
		},
		{
			Name:        "get_columns",
			Description: "List the board columns of a project",
			InputSchema: objectSchema(map[string]any{
				"project_id": numberProp("Project ID"),
			}, "project_id"),
		},
		{
			Name:        "list_users",
			Description: "List all Kanboard users",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "get_my_dashboard",
			Description: "Get the personal dashboard: all projects plus the tasks assigned to the configured user",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "get_overdue_tasks",
			Description: "List overdue tasks across all projects",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "search_tasks",
			Description: "Search tasks in a project using Kanboard's query syntax",
			InputSchema: objectSchema(map[string]any{
				"project_id": numberProp("Project ID"),
				"query":      stringProp("Search query, e.g. 'status:open assignee:me'"),
			}, "project_id", "query"),
		},
		{
			Name:        "add_comment",
			Description: "Add a comment to a task",
			InputSchema: objectSchema(map[string]any{
				"task_id": numberProp("Task ID"),
				"content": stringProp("Comment text (Markdown supported)"),
				"user_id": numberPropDefault("Author user ID", 0),
			}, "task_id", "content"),
		},
		{
			Name:        "list_comments",
			Description: "List all comments of a task",
			InputSchema: objectSchema(map[string]any{
				"task_id": numberProp("Task ID"),
			}, "task_id"),
		},
	}
}
