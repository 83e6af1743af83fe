package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shelfctl/internal/catalog"
)

// Form is the modal create/edit view, driven entirely by the field schema
// the page adapter supplies. Create mode when id is zero, edit mode
// otherwise. While a save is in flight the saving flag disables every
// control; on failure the form stays open with the entered values intact.
type Form struct {
	page     int
	adapter  catalog.Page
	id       int64
	fields   []catalog.Field
	inputs   []textinput.Model
	selected []int // option index per select field, -1 for none
	focus    int   // fields, then Save, then Cancel
	saving   bool
	hint     string
	width    int
}

// NewForm builds a form over the seeded schema.
func NewForm(pageIdx int, adapter catalog.Page, id int64, fields []catalog.Field) Form {
	f := Form{
		page:     pageIdx,
		adapter:  adapter,
		id:       id,
		fields:   fields,
		inputs:   make([]textinput.Model, len(fields)),
		selected: make([]int, len(fields)),
		width:    ModalMinWidth,
	}
	for i, field := range fields {
		f.selected[i] = -1
		if field.Kind == catalog.FieldSelect {
			for j, opt := range field.Options {
				if opt.Value != "" && opt.Value == field.Value {
					f.selected[i] = j
					break
				}
			}
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 512
		in.SetValue(field.Value)
		f.inputs[i] = in
	}
	f.setFocus(0)
	return f
}

// Page returns the owning page index.
func (f Form) Page() int { return f.page }

// ID returns the record id being edited, zero in create mode.
func (f Form) ID() int64 { return f.id }

// Saving reports whether a save request is in flight.
func (f Form) Saving() bool { return f.saving }

// SaveFailed re-enables the controls after a failed save.
func (f *Form) SaveFailed() {
	f.saving = false
}

func (f *Form) setFocus(idx int) {
	total := len(f.fields) + 2
	f.focus = ((idx % total) + total) % total
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	if f.focus < len(f.fields) && f.fields[f.focus].Kind != catalog.FieldSelect {
		f.inputs[f.focus].Focus()
	}
}

func (f Form) saveButton() int   { return len(f.fields) }
func (f Form) cancelButton() int { return len(f.fields) + 1 }

func (f Form) dismiss() tea.Cmd {
	page := f.page
	return func() tea.Msg {
		return formDismissedMsg{page: page}
	}
}

// Values returns the current trimmed field values keyed by schema key.
func (f Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for i, field := range f.fields {
		if field.Kind == catalog.FieldSelect {
			if f.selected[i] >= 0 && f.selected[i] < len(field.Options) {
				values[field.Key] = field.Options[f.selected[i]].Value
			} else {
				values[field.Key] = ""
			}
			continue
		}
		values[field.Key] = strings.TrimSpace(f.inputs[i].Value())
	}
	return values
}

// Update handles a key press.
func (f Form) Update(msg tea.KeyMsg) (Form, tea.Cmd) {
	if f.saving {
		return f, nil
	}

	switch msg.String() {
	case "esc":
		return f, f.dismiss()
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return f, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return f, nil
	case "enter":
		switch {
		case f.focus == f.saveButton():
			return f.submit()
		case f.focus == f.cancelButton():
			return f, f.dismiss()
		default:
			f.setFocus(f.focus + 1)
			return f, nil
		}
	}

	if f.focus < len(f.fields) {
		field := f.fields[f.focus]
		if field.Kind == catalog.FieldSelect {
			switch msg.String() {
			case "left", "h":
				f.cycle(f.focus, -1)
			case "right", "l", " ":
				f.cycle(f.focus, 1)
			}
			return f, nil
		}
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f *Form) cycle(idx, dir int) {
	n := len(f.fields[idx].Options)
	if n == 0 {
		return
	}
	f.selected[idx] = (f.selected[idx] + dir + n) % n
}

// submit validates required fields and issues the save request.
func (f Form) submit() (Form, tea.Cmd) {
	values := f.Values()
	for i, field := range f.fields {
		if field.Required && values[field.Key] == "" {
			f.hint = field.Label + " is required"
			f.setFocus(i)
			return f, nil
		}
	}
	f.hint = ""
	f.saving = true

	adapter, page, id := f.adapter, f.page, f.id
	return f, func() tea.Msg {
		err := adapter.Save(context.Background(), id, values)
		return saveDoneMsg{page: page, id: id, err: err}
	}
}

// SetWidth resizes the form inputs.
func (f *Form) SetWidth(w int) {
	if w > ModalMaxWidth {
		w = ModalMaxWidth
	}
	if w < ModalMinWidth {
		w = ModalMinWidth
	}
	f.width = w
	for i := range f.inputs {
		f.inputs[i].Width = w - 8
	}
}

// Title renders the modal heading, e.g. "Edit book".
func (f Form) Title() string {
	verb := "Add"
	if f.id != 0 {
		verb = "Edit"
	}
	return verb + " " + f.adapter.Singular()
}

// View renders the modal.
func (f Form) View(styles Styles) string {
	var parts []string
	parts = append(parts, styles.Title.Render(f.Title()), "")

	for i, field := range f.fields {
		label := styles.FieldLabel.Render(field.Label)
		if i == f.focus {
			label = styles.FieldFocused.Render(field.Label)
		}
		parts = append(parts, label)

		if field.Kind == catalog.FieldSelect {
			text := "(none)"
			if f.selected[i] >= 0 && f.selected[i] < len(field.Options) {
				text = field.Options[f.selected[i]].Text
			}
			marker := styles.Muted
			if i == f.focus {
				marker = styles.Body
			}
			parts = append(parts, marker.Render("< "+text+" >"))
		} else {
			parts = append(parts, f.inputs[i].View())
		}
		parts = append(parts, "")
	}

	if f.hint != "" {
		parts = append(parts, styles.Error.Render(f.hint), "")
	}

	saveLabel := "Save"
	if f.saving {
		saveLabel = "Saving..."
	}
	save := styles.ButtonInactive.Render(saveLabel)
	cancel := styles.ButtonInactive.Render("Cancel")
	if f.focus == f.saveButton() {
		save = styles.ButtonActive.Render(saveLabel)
	}
	if f.focus == f.cancelButton() {
		cancel = styles.ButtonActive.Render("Cancel")
	}
	parts = append(parts,
		lipgloss.JoinHorizontal(lipgloss.Top, save, "  ", cancel),
		"",
		styles.Muted.Render("tab to move, enter to choose, esc to close"),
	)

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return styles.ModalBox.Width(f.width).Render(body)
}
