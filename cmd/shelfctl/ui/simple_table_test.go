package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleTableRendersHeadersAndRows(t *testing.T) {
	table := NewSimpleTable([]string{"ID", "Name"})
	table.AddRow("1", "George Orwell")
	table.AddRow("2", "Jane Austen")

	view := table.View(DefaultStyles())
	assert.Contains(t, view, "ID")
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "George Orwell")
	assert.Contains(t, view, "Jane Austen")
}

func TestSimpleTableTruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", MaxCellText+20)
	table := NewSimpleTable([]string{"Description"})
	table.AddRow(long)

	view := table.View(DefaultStyles())
	assert.NotContains(t, view, long)
	assert.Contains(t, view, "...")
}

func TestSimpleTableIgnoresExtraCells(t *testing.T) {
	table := NewSimpleTable([]string{"ID"})
	table.AddRow("1", "spilled over")

	view := table.View(DefaultStyles())
	assert.NotContains(t, view, "spilled over")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "lo...", truncate("longer", 5))
}
