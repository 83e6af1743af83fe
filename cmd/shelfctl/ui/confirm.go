package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmDialog is a modal yes/no question. Only one exists at a time; the
// root model replaces any unresolved dialog with a new one and ignores the
// stale answer via the token. Every dismissal path other than an explicit
// Yes resolves to No.
type ConfirmDialog struct {
	token   int
	title   string
	message string
	yes     bool // currently highlighted button
}

// NewConfirmDialog builds a dialog with No highlighted.
func NewConfirmDialog(token int, title, message string) ConfirmDialog {
	return ConfirmDialog{token: token, title: title, message: message}
}

// Token identifies which request this dialog answers.
func (d ConfirmDialog) Token() int { return d.token }

func (d ConfirmDialog) answer(confirmed bool) tea.Cmd {
	token := d.token
	return func() tea.Msg {
		return confirmAnsweredMsg{token: token, confirmed: confirmed}
	}
}

// Update handles a key press. done reports whether the dialog resolved.
func (d ConfirmDialog) Update(msg tea.KeyMsg) (ConfirmDialog, tea.Cmd, bool) {
	switch msg.String() {
	case "left", "right", "tab", "h", "l":
		d.yes = !d.yes
		return d, nil, false
	case "y", "Y":
		return d, d.answer(true), true
	case "n", "N", "esc", "q":
		return d, d.answer(false), true
	case "enter":
		return d, d.answer(d.yes), true
	}
	return d, nil, false
}

// View renders the dialog box.
func (d ConfirmDialog) View(styles Styles) string {
	yesBtn := styles.ButtonInactive.Render("Yes")
	noBtn := styles.ButtonActive.Render("No")
	if d.yes {
		yesBtn = styles.ButtonActive.Render("Yes")
		noBtn = styles.ButtonInactive.Render("No")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(d.title),
		"",
		styles.Body.Render(d.message),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, yesBtn, "  ", noBtn),
		"",
		styles.Muted.Render("y/n to answer, arrows to move, enter to choose"),
	)
	return styles.ModalBox.Render(body)
}
