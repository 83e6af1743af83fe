package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"shelfctl/internal/catalog"
)

type saveCall struct {
	id     int64
	values map[string]string
}

// fakePage is an in-memory page adapter for exercising the screens without
// a server.
type fakePage struct {
	title    string
	singular string
	cols     []string

	items     []catalog.Item
	fetchErr  error
	fields    []catalog.Field
	fieldsErr error
	saveErr   error
	deleteErr error

	fetches int
	saves   []saveCall
	deletes []int64
}

func newFakePage() *fakePage {
	return &fakePage{
		title:    "Authors",
		singular: "author",
		cols:     []string{"ID", "Name"},
	}
}

func (f *fakePage) Title() string     { return f.title }
func (f *fakePage) Singular() string  { return f.singular }
func (f *fakePage) Columns() []string { return f.cols }

func (f *fakePage) Fetch(context.Context) ([]catalog.Item, error) {
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]catalog.Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakePage) Fields(_ context.Context, item *catalog.Item) ([]catalog.Field, error) {
	fields := make([]catalog.Field, len(f.fields))
	copy(fields, f.fields)
	if item != nil {
		for i := range fields {
			fields[i].Value = item.Values[fields[i].Key]
		}
	}
	return fields, f.fieldsErr
}

func (f *fakePage) Save(_ context.Context, id int64, values map[string]string) error {
	f.saves = append(f.saves, saveCall{id: id, values: values})
	return f.saveErr
}

func (f *fakePage) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, id)
	return nil
}

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: 1, Cells: []string{"1", "Alice Walker"}, SearchText: "alice walker"},
		{ID: 2, Cells: []string{"2", "Bob Woodward"}, SearchText: "bob woodward"},
		{ID: 3, Cells: []string{"3", "Carol Shields"}, SearchText: "carol shields"},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes a command tree and returns the leaf messages.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// findItemsMsg picks the fetch result out of a command's messages.
func findItemsMsg(t *testing.T, msgs []tea.Msg) itemsMsg {
	t.Helper()
	for _, m := range msgs {
		if im, ok := m.(itemsMsg); ok {
			return im
		}
	}
	t.Fatal("no itemsMsg among command results")
	return itemsMsg{}
}
