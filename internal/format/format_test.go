package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	assert.Equal(t, DateUnset, Date(0))
	assert.Equal(t, DateUnset, Date(-1))
	// 1700000000 is 2023-11-14 22:13:20 UTC.
	assert.Equal(t, "2023-11-14 22:13", Date(1700000000))
}

func TestPriorityLabel(t *testing.T) {
	for code := 0; code <= 4; code++ {
		label := PriorityLabel(code)
		assert.NotEmpty(t, label, "priority %d", code)
		assert.NotEqual(t, "Unknown", label, "priority %d", code)
	}
	assert.Equal(t, "Unknown", PriorityLabel(5))
	assert.Equal(t, "Unknown", PriorityLabel(-1))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 200)
	got := Truncate(long, 100)
	assert.Len(t, got, 103)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, long[:100], got[:100])

	short := "fits"
	assert.Equal(t, short, Truncate(short, 100))

	exact := strings.Repeat("y", 150)
	assert.Equal(t, exact, Truncate(exact, 150))
}

func TestTruncateMultibyte(t *testing.T) {
	s := strings.Repeat("ä", 120)
	got := Truncate(s, 100)
	assert.Equal(t, strings.Repeat("ä", 100)+"...", got)
}

func TestURLs(t *testing.T) {
	base := "http://kanboard.local"
	assert.Equal(t,
		"http://kanboard.local/?controller=TaskViewController&action=show&task_id=42&project_id=7",
		TaskURL(base, 42, 7))
	assert.Equal(t,
		"http://kanboard.local/?controller=BoardViewController&action=show&project_id=7",
		BoardURL(base, 7))
	assert.Equal(t,
		"http://kanboard.local/?controller=ProjectViewController&action=show&project_id=7",
		ProjectURL(base, 7))
}
