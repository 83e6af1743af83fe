package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"shelfctl/internal/api"
	"shelfctl/internal/catalog"
)

type pendingDelete struct {
	page int
	id   int64
}

// App is the root model: the tab bar over the entity pages, the toast
// stack, and at most one open modal (form or confirmation dialog).
type App struct {
	pages  []*ListPage
	active int

	styles Styles
	toasts ToastStack

	form         *Form
	confirm      *ConfirmDialog
	confirmToken int
	pending      pendingDelete

	width  int
	height int

	log *zap.Logger
}

// NewApp wires the four entity pages onto the services.
func NewApp(services *catalog.Services, styles Styles, log *zap.Logger) App {
	if log == nil {
		log = zap.NewNop()
	}
	adapters := catalog.Pages(services)
	pages := make([]*ListPage, len(adapters))
	for i, adapter := range adapters {
		pages[i] = NewListPage(i, adapter, styles)
	}
	return App{
		pages:  pages,
		styles: styles,
		toasts: NewToastStack(),
		log:    log,
	}
}

// Init fetches the first page.
func (a App) Init() tea.Cmd {
	return a.pages[a.active].Activate()
}

// Update routes messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, p := range a.pages {
			p.SetSize(msg.Width, contentHeight(msg.Height))
		}
		if a.form != nil {
			a.form.SetWidth(msg.Width - 8)
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case spinner.TickMsg:
		var cmds []tea.Cmd
		for _, p := range a.pages {
			if cmd := p.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return a, tea.Batch(cmds...)

	case itemsMsg:
		a.pages[msg.page].ApplyItems(msg)
		return a, nil

	case openFormMsg:
		return a, a.loadFormCmd(msg)

	case fieldsMsg:
		form := NewForm(msg.page, a.pages[msg.page].Adapter(), msg.id, msg.fields)
		form.SetWidth(a.width - 8)
		a.form = &form
		if msg.optErr != nil {
			a.log.Warn("dropdown load failed", zap.Error(msg.optErr))
			return a, a.toasts.Push(ToastError, "Failed to load dropdown data")
		}
		return a, nil

	case confirmRequestMsg:
		a.confirmToken++
		dialog := NewConfirmDialog(a.confirmToken, "Confirm", msg.prompt)
		a.confirm = &dialog
		a.pending = pendingDelete{page: msg.page, id: msg.id}
		return a, nil

	case confirmAnsweredMsg:
		if msg.token != a.confirmToken {
			return a, nil
		}
		a.confirm = nil
		if !msg.confirmed {
			return a, nil
		}
		return a, a.deleteCmd(a.pending)

	case deleteDoneMsg:
		page := a.pages[msg.page]
		if msg.err != nil {
			text := api.DisplayMessage(msg.err, "Delete failed")
			return a, a.toasts.Push(ToastError, text)
		}
		page.RemoveItem(msg.id)
		return a, a.toasts.Push(ToastSuccess,
			capitalize(page.Adapter().Singular())+" deleted successfully!")

	case saveDoneMsg:
		page := a.pages[msg.page]
		singular := page.Adapter().Singular()
		if msg.err != nil {
			if a.form != nil {
				a.form.SaveFailed()
			}
			text := api.DisplayMessage(msg.err, "Failed to save "+singular)
			return a, a.toasts.Push(ToastError, text)
		}
		verb := "created"
		if msg.id != 0 {
			verb = "updated"
		}
		a.form = nil
		return a, tea.Batch(
			a.toasts.Push(ToastSuccess, capitalize(singular)+" "+verb+" successfully!"),
			page.Reload(),
		)

	case formDismissedMsg:
		a.form = nil
		return a, nil

	case toastExpiredMsg:
		a.toasts.Expire(msg.id)
		return a, nil
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.confirm != nil {
		dialog, cmd, done := a.confirm.Update(msg)
		if done {
			a.confirm = nil
		} else {
			a.confirm = &dialog
		}
		return a, cmd
	}

	if a.form != nil {
		form, cmd := a.form.Update(msg)
		a.form = &form
		return a, cmd
	}

	page := a.pages[a.active]
	if !page.SearchFocused() {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "tab":
			return a.switchPage((a.active + 1) % len(a.pages))
		case "shift+tab":
			return a.switchPage((a.active + len(a.pages) - 1) % len(a.pages))
		case "1", "2", "3", "4":
			return a.switchPage(int(msg.String()[0] - '1'))
		}
	}

	return a, page.Update(msg)
}

func (a App) switchPage(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(a.pages) {
		return a, nil
	}
	a.active = idx
	return a, a.pages[idx].Activate()
}

func (a App) loadFormCmd(msg openFormMsg) tea.Cmd {
	adapter := a.pages[msg.page].Adapter()
	page := msg.page
	item := msg.item
	var id int64
	if item != nil {
		id = item.ID
	}
	return func() tea.Msg {
		fields, err := adapter.Fields(context.Background(), item)
		return fieldsMsg{page: page, id: id, fields: fields, optErr: err}
	}
}

func (a App) deleteCmd(pending pendingDelete) tea.Cmd {
	adapter := a.pages[pending.page].Adapter()
	return func() tea.Msg {
		err := adapter.Delete(context.Background(), pending.id)
		return deleteDoneMsg{page: pending.page, id: pending.id, err: err}
	}
}

// View renders the whole screen.
func (a App) View() string {
	var tabs []string
	for i, p := range a.pages {
		style := a.styles.TabInactive
		if i == a.active {
			style = a.styles.TabActive
		}
		tabs = append(tabs, style.Render(p.Title()))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	body := a.pages[a.active].View()
	if a.form != nil {
		body = lipgloss.Place(a.width, contentHeight(a.height),
			lipgloss.Center, lipgloss.Center, a.form.View(a.styles))
	} else if a.confirm != nil {
		body = lipgloss.Place(a.width, contentHeight(a.height),
			lipgloss.Center, lipgloss.Center, a.confirm.View(a.styles))
	}

	footer := a.styles.Footer.Render(
		"a add · e edit · d delete · / search · r reload · tab switch · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		tabBar,
		a.toasts.View(a.styles),
		body,
		footer,
	)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
