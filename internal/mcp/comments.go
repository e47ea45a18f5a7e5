package mcp

import (
	"context"

	"github.com/st3v0rr/mcp-kanboard/internal/format"
	"github.com/st3v0rr/mcp-kanboard/internal/kanboard"
)

func (d *Dispatcher) addComment(ctx context.Context, args Args) (map[string]any, error) {
	params := map[string]any{
		"task_id": args.Int("task_id", 0),
		"user_id": args.Int("user_id", 0),
		"content": args.String("content", ""),
	}
	data, err := d.call(ctx, "createComment", params)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"comment_id": kanboard.ToInt(data),
		"message":    "Comment added successfully",
	}, nil
}

func (d *Dispatcher) listComments(ctx context.Context, args Args) (map[string]any, error) {
	data, err := d.call(ctx, "getAllComments", map[string]any{"task_id": args.Int("task_id", 0)})
	if err != nil {
		return nil, err
	}

	items := kanboard.Items(data)
	comments := make([]map[string]any, 0, len(items))
	for _, c := range items {
		author := kanboard.String(c, "name")
		if author == "" {
			author = kanboard.String(c, "username")
		}
		if author == "" {
			author = "Unknown"
		}
		comments = append(comments, map[string]any{
			"id":      kanboard.Int(c, "id"),
			"author":  author,
			"date":    format.Date(kanboard.Int64(c, "date_creation")),
			"content": kanboard.String(c, "comment"),
		})
	}
	return map[string]any{"comments": comments, "total": len(comments)}, nil
}
