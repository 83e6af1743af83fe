package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultToastTimeout is how long a toast stays on screen.
const DefaultToastTimeout = 3 * time.Second

// ToastLevel is the severity of a toast banner.
type ToastLevel int

const (
	ToastSuccess ToastLevel = iota
	ToastError
	ToastWarning
	ToastInfo
)

type toast struct {
	id    int
	level ToastLevel
	text  string
}

// ToastStack holds the active toast banners. Each banner expires on its
// own timer, independent of the others; any number may coexist.
type ToastStack struct {
	toasts  []toast
	nextID  int
	timeout time.Duration
}

// NewToastStack creates an empty stack with the default timeout.
func NewToastStack() ToastStack {
	return ToastStack{timeout: DefaultToastTimeout}
}

// Push adds a banner and returns the command that expires it.
func (t *ToastStack) Push(level ToastLevel, text string) tea.Cmd {
	id := t.nextID
	t.nextID++
	t.toasts = append(t.toasts, toast{id: id, level: level, text: text})

	return tea.Tick(t.timeout, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Expire removes the banner with the given id, if still present.
func (t *ToastStack) Expire(id int) {
	for i, banner := range t.toasts {
		if banner.id == id {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			return
		}
	}
}

// Len reports the number of active banners.
func (t *ToastStack) Len() int { return len(t.toasts) }

// View renders the active banners side by side, newest last.
func (t *ToastStack) View(styles Styles) string {
	if len(t.toasts) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(t.toasts))
	for _, banner := range t.toasts {
		var style lipgloss.Style
		switch banner.level {
		case ToastSuccess:
			style = styles.ToastSuccess
		case ToastError:
			style = styles.ToastError
		case ToastWarning:
			style = styles.ToastWarning
		default:
			style = styles.ToastInfo
		}
		rendered = append(rendered, style.Render(banner.text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
