package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shelfctl/internal/api"
	"shelfctl/internal/catalog"
)

// ListPage is one entity screen: the full collection as last fetched, the
// locally filtered view of it, and the add/edit/delete actions. Fetching is
// asynchronous; a sequence counter ties responses to the request that is
// still relevant, so a reply landing after a reload or page switch is
// dropped instead of clobbering newer state.
type ListPage struct {
	index   int
	adapter catalog.Page

	search  textinput.Model
	spin    spinner.Model
	styles  Styles
	width   int
	height  int

	items    []catalog.Item
	filtered []catalog.Item
	cursor   int

	loading bool
	fetched bool
	errMsg  string
	seq     int

	searchFocused bool
}

// NewListPage builds the screen for one entity adapter.
func NewListPage(index int, adapter catalog.Page, styles Styles) *ListPage {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search " + strings.ToLower(adapter.Title())
	search.CharLimit = 128

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Info

	return &ListPage{
		index:   index,
		adapter: adapter,
		search:  search,
		spin:    spin,
		styles:  styles,
	}
}

// Title is the screen heading.
func (p *ListPage) Title() string { return p.adapter.Title() }

// Adapter exposes the page adapter for the root model's save/delete wiring.
func (p *ListPage) Adapter() catalog.Page { return p.adapter }

// Activate fetches the collection the first time the page is shown.
func (p *ListPage) Activate() tea.Cmd {
	if p.fetched || p.loading {
		return nil
	}
	return p.Reload()
}

// Reload discards interest in any in-flight fetch and starts a new one.
func (p *ListPage) Reload() tea.Cmd {
	p.loading = true
	p.errMsg = ""
	p.seq++

	adapter, index, seq := p.adapter, p.index, p.seq
	fetch := func() tea.Msg {
		items, err := adapter.Fetch(context.Background())
		return itemsMsg{page: index, seq: seq, items: items, err: err}
	}
	return tea.Batch(fetch, p.spin.Tick)
}

// ApplyItems installs a fetch result. Stale responses are discarded.
func (p *ListPage) ApplyItems(msg itemsMsg) {
	if msg.seq != p.seq {
		return
	}
	p.loading = false
	p.fetched = true
	if msg.err != nil {
		p.errMsg = api.DisplayMessage(msg.err, "Failed to load "+strings.ToLower(p.adapter.Title()))
		p.items = nil
		p.filtered = nil
		p.cursor = 0
		return
	}
	p.errMsg = ""
	p.items = msg.items
	p.applyFilter()
}

// RemoveItem drops the record with the given id from both the full and the
// filtered collections.
func (p *ListPage) RemoveItem(id int64) {
	p.items = removeByID(p.items, id)
	p.filtered = removeByID(p.filtered, id)
	p.clampCursor()
}

// SelectedItem returns the highlighted record, nil when the list is empty.
func (p *ListPage) SelectedItem() *catalog.Item {
	if p.cursor < 0 || p.cursor >= len(p.filtered) {
		return nil
	}
	item := p.filtered[p.cursor]
	return &item
}

// Items returns the full collection as last fetched.
func (p *ListPage) Items() []catalog.Item { return p.items }

// Filtered returns the collection view after the search filter.
func (p *ListPage) Filtered() []catalog.Item { return p.filtered }

// SetSearch replaces the search term and recomputes the filtered view.
func (p *ListPage) SetSearch(term string) {
	p.search.SetValue(term)
	p.applyFilter()
}

func (p *ListPage) applyFilter() {
	p.filtered = filterItems(p.items, p.search.Value())
	p.clampCursor()
}

func (p *ListPage) clampCursor() {
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// SetSize resizes the page.
func (p *ListPage) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.search.Width = w - 10
}

// Update handles page-local messages and key presses.
func (p *ListPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.loading {
			return nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return cmd

	case tea.KeyMsg:
		if p.searchFocused {
			return p.updateSearch(msg)
		}
		return p.updateList(msg)
	}
	return nil
}

func (p *ListPage) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		p.searchFocused = false
		p.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	p.applyFilter()
	return cmd
}

func (p *ListPage) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		p.searchFocused = true
		return p.search.Focus()
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
		}
	case "g", "home":
		p.cursor = 0
	case "G", "end":
		p.cursor = len(p.filtered) - 1
		p.clampCursor()
	case "r":
		return p.Reload()
	case "a":
		index := p.index
		return func() tea.Msg {
			return openFormMsg{page: index, item: nil}
		}
	case "e", "enter":
		item := p.SelectedItem()
		if item == nil {
			return nil
		}
		index := p.index
		return func() tea.Msg {
			return openFormMsg{page: index, item: item}
		}
	case "d", "delete", "backspace":
		item := p.SelectedItem()
		if item == nil {
			return nil
		}
		index := p.index
		prompt := fmt.Sprintf("Are you sure you want to delete this %s?", p.adapter.Singular())
		id := item.ID
		return func() tea.Msg {
			return confirmRequestMsg{page: index, id: id, prompt: prompt}
		}
	}
	return nil
}

// SearchFocused reports whether keystrokes currently go to the search box.
func (p *ListPage) SearchFocused() bool { return p.searchFocused }

// View renders the page body.
func (p *ListPage) View() string {
	var sb strings.Builder

	count := fmt.Sprintf("%d of %d", len(p.filtered), len(p.items))
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		p.styles.Title.Render(p.adapter.Title()),
		"  ",
		p.styles.Muted.Render(count),
	))
	sb.WriteString("\n")
	sb.WriteString(p.search.View())
	sb.WriteString("\n\n")

	switch {
	case p.loading:
		sb.WriteString(p.spin.View())
		sb.WriteString(p.styles.Muted.Render(" Loading " + strings.ToLower(p.adapter.Title()) + "..."))
	case p.errMsg != "":
		sb.WriteString(p.styles.ErrorPanel.Render(p.errMsg))
	case len(p.filtered) == 0:
		sb.WriteString(p.styles.Muted.Render("No " + strings.ToLower(p.adapter.Title()) + " found."))
	default:
		table := NewSimpleTable(p.adapter.Columns())
		for _, item := range p.filtered {
			table.AddRow(item.Cells...)
		}
		table.Selected = p.cursor
		sb.WriteString(table.View(p.styles))
	}

	return sb.String()
}

// filterItems returns the subset whose searchable text contains the term as
// a case-insensitive substring. An empty term returns the input unchanged,
// so filtering twice with the same term is a no-op.
func filterItems(items []catalog.Item, term string) []catalog.Item {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return items
	}
	out := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(item.SearchText, t) {
			out = append(out, item)
		}
	}
	return out
}

func removeByID(items []catalog.Item, id int64) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}
