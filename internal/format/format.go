// Package format holds the pure display helpers applied when reshaping
// Kanboard payloads into tool results.
package format

import (
	"fmt"
	"time"
)

// DateUnset is returned for absent or zero timestamps.
const DateUnset = "Not set"

// Date renders epoch seconds as "2006-01-02 15:04" in UTC, or DateUnset for
// zero/negative input.
func Date(epoch int64) string {
	if epoch <= 0 {
		return DateUnset
	}
	return time.Unix(epoch, 0).UTC().Format("2006-01-02 15:04")
}

var priorityLabels = map[int]string{
	0: "⚪ None",
	1: "🟢 Low",
	2: "🟡 Medium",
	3: "🟠 High",
	4: "🔴 Urgent",
}

// PriorityLabel maps a Kanboard priority code to its display label.
func PriorityLabel(code int) string {
	if label, ok := priorityLabels[code]; ok {
		return label
	}
	return "Unknown"
}

// Truncate caps s at max runes, appending "..." when anything was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// TaskURL builds the browseable Kanboard task view URL.
func TaskURL(base string, taskID, projectID int) string {
	return fmt.Sprintf("%s/?controller=TaskViewController&action=show&task_id=%d&project_id=%d", base, taskID, projectID)
}

// BoardURL builds the browseable Kanboard board view URL.
func BoardURL(base string, projectID int) string {
	return fmt.Sprintf("%s/?controller=BoardViewController&action=show&project_id=%d", base, projectID)
}

// ProjectURL builds the browseable Kanboard project overview URL.
func ProjectURL(base string, projectID int) string {
	return fmt.Sprintf("%s/?controller=ProjectViewController&action=show&project_id=%d", base, projectID)
}
