package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastTTL is how long a toast stays visible unless dismissed.
const toastTTL = 3 * time.Second

// ToastModel is the process-wide overlay queue. Insertion ordered,
// unbounded; each toast self-expires or can be dismissed with esc.
type ToastModel struct {
	toasts []Toast
	styles Styles
}

// NewToastModel creates an empty overlay.
func NewToastModel(styles Styles) ToastModel {
	return ToastModel{styles: styles}
}

// Update handles enqueue and expiry messages.
func (m ToastModel) Update(msg tea.Msg) (ToastModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ToastMsg:
		m.toasts = append(m.toasts, msg.Toast)
		id := msg.Toast.ID
		return m, tea.Tick(toastTTL, func(time.Time) tea.Msg {
			return toastExpireMsg{id: id}
		})
	case toastExpireMsg:
		m.remove(msg.id)
	}
	return m, nil
}

// DismissNewest drops the most recent toast, bound to esc in the app.
func (m *ToastModel) DismissNewest() {
	if len(m.toasts) > 0 {
		m.toasts = m.toasts[:len(m.toasts)-1]
	}
}

func (m *ToastModel) remove(id int64) {
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// Active reports whether any toast is visible.
func (m ToastModel) Active() bool { return len(m.toasts) > 0 }

// Count returns the number of queued toasts.
func (m ToastModel) Count() int { return len(m.toasts) }

// View renders the toast stack, newest last.
func (m ToastModel) View() string {
	if len(m.toasts) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, t := range m.toasts {
		var color lipgloss.Color
		var icon string
		switch t.Kind {
		case ToastSuccess:
			color, icon = Success, "✓"
		case ToastError:
			color, icon = Destructive, "✗"
		case ToastWarning:
			color, icon = Warning, "!"
		default:
			color, icon = Info, "i"
		}
		style := m.styles.ToastBase.BorderForeground(color).Foreground(color)
		sb.WriteString(style.Render(icon + " " + t.Text))
		if i < len(m.toasts)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
